package ring

import "testing"

func TestInvertUnitIsItself(t *testing.T) {
	one := mustNew(t, Q, []int64{1})
	inv, ok := InvertQ(one)
	if !ok {
		t.Fatal("expected the unit polynomial to be invertible")
	}
	if !Equal(one, inv) {
		t.Fatalf("inverse of 1 = %v, want 1", inv)
	}
}

func TestInvertZeroFails(t *testing.T) {
	zero := Zero(Q)
	if _, ok := InvertQ(zero); ok {
		t.Fatal("expected the zero polynomial to be non-invertible")
	}
}

func TestInvertRoundTrip(t *testing.T) {
	coefs := make([]int64, N)
	for i := range coefs {
		coefs[i] = int64((i*7+3)%5) - 2
	}
	f := mustNew(t, Q, coefs)
	inv, ok := InvertQ(f)
	if !ok {
		t.Skip("sampled polynomial happened to be non-invertible mod q")
	}
	prod, err := Mul(f, inv)
	if err != nil {
		t.Fatal(err)
	}
	one := mustNew(t, Q, []int64{1})
	if !Equal(prod, one) {
		t.Fatalf("f * f^-1 = %v, want 1", prod)
	}
}

func TestInvertDeterministic(t *testing.T) {
	coefs := make([]int64, N)
	for i := range coefs {
		coefs[i] = int64((i*11+1)%7) - 3
	}
	f := mustNew(t, Q, coefs)
	a, okA := InvertQ(f)
	b, okB := InvertQ(f)
	if okA != okB {
		t.Fatalf("InvertQ not deterministic in its ok result: %v vs %v", okA, okB)
	}
	if okA && !Equal(a, b) {
		t.Fatalf("InvertQ not deterministic: %v vs %v", a, b)
	}
}

func TestInvertPAndQConsistentWithInvert(t *testing.T) {
	coefs := make([]int64, N)
	for i := range coefs {
		coefs[i] = int64((i*13+2)%5) - 2
	}
	f := mustNew(t, Q, coefs)

	fp, fq, ok := InvertPAndQ(f, Q)
	if !ok {
		t.Skip("sampled polynomial happened to be non-invertible mod 3q")
	}

	wantFq, okFq := InvertQ(f)
	if !okFq {
		t.Fatal("f invertible mod 3q but InvertQ reports failure mod q")
	}
	if !Equal(fq, wantFq) {
		t.Fatalf("InvertPAndQ fq = %v, want %v", fq, wantFq)
	}

	f3, err := f.ChangeRing(3)
	if err != nil {
		t.Fatal(err)
	}
	wantFp, okFp := Invert(f3, 3)
	if !okFp {
		t.Fatal("f invertible mod 3q but Invert reports failure mod 3")
	}
	if !Equal(fp, wantFp) {
		t.Fatalf("InvertPAndQ fp = %v, want %v", fp, wantFp)
	}
}
