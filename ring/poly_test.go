package ring

import "testing"

func mustNew(t *testing.T, m int64, coefs []int64) Poly {
	t.Helper()
	p, err := New(m, coefs)
	if err != nil {
		t.Fatalf("New(%d, %v): %v", m, coefs, err)
	}
	return p
}

func TestBalanceRangeEven(t *testing.T) {
	p := mustNew(t, Q, []int64{Q, Q + 1, -Q - 1, 3 * Q})
	half := int64(Q / 2)
	for i, c := range p.Coeffs() {
		if c < -half || c > half-1 {
			t.Fatalf("coeff %d = %d out of balanced range [%d, %d)", i, c, -half, half)
		}
	}
}

func TestBalanceRangeOdd(t *testing.T) {
	p := mustNew(t, 3, []int64{3, 4, -4, 7})
	for i, c := range p.Coeffs() {
		if c < -1 || c > 1 {
			t.Fatalf("coeff %d = %d out of balanced range [-1, 1]", i, c)
		}
	}
}

func TestConstructorWraps(t *testing.T) {
	// A list longer than N must wrap by summing into coefs[i % N].
	long := make([]int64, 2*N+3)
	for i := range long {
		long[i] = 1
	}
	p := mustNew(t, Q, long)
	c := p.Coeffs()
	// indices 0,1,2 receive 3 copies (2N, 2N+1, 2N+2 wrap back to them), the rest 2.
	for i := 3; i < N; i++ {
		if c[i] != 2 {
			t.Fatalf("coeff %d = %d, want 2", i, c[i])
		}
	}
	for i := 0; i < 3; i++ {
		if c[i] != 3 {
			t.Fatalf("coeff %d = %d, want 3", i, c[i])
		}
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	a := mustNew(t, Q, []int64{1, 2, 3, -4, 5})
	b := mustNew(t, Q, []int64{10, -20, 30, 40, -50})
	sum, err := Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Sub(sum, b)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(a, back) {
		t.Fatalf("(a+b)-b = %v, want %v", back, a)
	}
}

func TestMulCommutative(t *testing.T) {
	a := mustNew(t, Q, []int64{1, 2, 3, -4, 5})
	b := mustNew(t, Q, []int64{-1, 0, 2, 7, -9})
	ab, err := Mul(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Mul(b, a)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(ab, ba) {
		t.Fatalf("a*b != b*a: %v vs %v", ab, ba)
	}
}

func TestMulMatchesSchoolbookWrap(t *testing.T) {
	a := mustNew(t, Q, []int64{1, 2, 3})
	b := mustNew(t, Q, []int64{4, 5, 6})
	got, err := Mul(a, b)
	if err != nil {
		t.Fatal(err)
	}
	var want [N]int64
	ac, bc := a.Coeffs(), b.Coeffs()
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			want[(i+j)%N] += ac[i] * bc[j]
		}
	}
	wantPoly := mustNew(t, Q, want[:])
	if !Equal(got, wantPoly) {
		t.Fatalf("Mul result does not match schoolbook-mod-(X^N-1) product")
	}
}

func TestSizeMismatch(t *testing.T) {
	a := mustNew(t, Q, nil)
	b := mustNew(t, 3, nil)
	if _, err := Add(a, b); err == nil {
		t.Fatal("expected size-mismatch error adding polys of different moduli")
	}
	if _, err := Mul(a, b); err == nil {
		t.Fatal("expected size-mismatch error multiplying polys of different moduli")
	}
}

func TestChangeRingRoundTrip(t *testing.T) {
	a := mustNew(t, Q, []int64{1, -1, 0, 2047, -2048})
	lifted, err := a.ChangeRing(3 * Q)
	if err != nil {
		t.Fatal(err)
	}
	back, err := lifted.ChangeRing(Q)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(a, back) {
		t.Fatalf("change_ring round trip via 3q: got %v, want %v", back, a)
	}
}
