package ring

import (
	"os"

	"github.com/amossys-team/ntrukem/internal/dbg"
)

// invertMatrix runs Gauss-Jordan elimination on the N x (N+1) matrix
// whose left block is the circulant of coefs and whose last column
// starts as the unit basis e0 (spec §4.2). It returns the coefficient
// vector of the inverse in Z/mZ, or false if coefs is not invertible
// mod m.
//
// m is assumed to be 2^k or 3*2^k (spec §9 "Composite-modulus
// pivoting"): an element of Z/mZ is a unit exactly when it is odd and,
// if 3 divides m, not itself a multiple of 3.
func invertMatrix(coefs [N]int64, m int64) ([N]int64, bool) {
	dbg.Printf(os.Stderr, "[ring] invertMatrix N=%d m=%d\n", N, m)

	var M [N][N + 1]int64
	for j := 0; j < N; j++ {
		for i := 0; i < N; i++ {
			v := coefs[i] % m
			if v < 0 {
				v += m
			}
			M[(i+j)%N][j] = v
		}
	}
	M[0][N] = 1 % m

	m3 := m%3 == 0
	pivotUsable := func(x int64) bool {
		if x%2 == 0 {
			return false
		}
		if m3 && x%3 == 0 {
			return false
		}
		return true
	}

	used := make([]bool, N)
	pivotRow := make([]int, N)

	for j := 0; j < N; j++ {
		found := -1
		for i := 0; i < N; i++ {
			if used[i] {
				continue
			}
			if pivotUsable(M[i][j]) {
				found = i
				break
			}
		}
		if found == -1 {
			return [N]int64{}, false
		}
		used[found] = true
		pivotRow[j] = found

		inv, ok := modInverse(M[found][j], m)
		if !ok {
			return [N]int64{}, false
		}
		for k := j; k <= N; k++ {
			M[found][k] = modMul(M[found][k], inv, m)
		}

		for i := 0; i < N; i++ {
			if i == found {
				continue
			}
			c := M[i][j]
			if c == 0 {
				continue
			}
			for k := j; k <= N; k++ {
				M[i][k] = modSub(M[i][k], modMul(c, M[found][k], m), m)
			}
		}
	}

	var out [N]int64
	for j := 0; j < N; j++ {
		out[j] = M[pivotRow[j]][N]
	}
	return out, true
}

// Invert returns the inverse of pol in Z/mZ, or (Poly{}, false) if
// pol is not a unit mod m.
func Invert(pol Poly, m int64) (Poly, bool) {
	out, ok := invertMatrix(pol.coefs, m)
	if !ok {
		return Poly{}, false
	}
	inv, err := New(m, out[:])
	if err != nil {
		return Poly{}, false
	}
	return inv, true
}

// InvertQ returns pol^-1 in R_q, where q = pol.Modulus() is a power
// of two (spec §4.2 "invert_q").
func InvertQ(pol Poly) (Poly, bool) {
	return Invert(pol, pol.m)
}

// InvertPAndQ returns (f^-1 mod 3, f^-1 mod q) computed from a single
// Gauss-Jordan pass over Z/3qZ (spec §4.2 "invert_p_and_q"), or false
// if f is not invertible mod 3q.
func InvertPAndQ(pol Poly, q int64) (fp Poly, fq Poly, ok bool) {
	out, ok2 := invertMatrix(pol.coefs, 3*q)
	if !ok2 {
		return Poly{}, Poly{}, false
	}
	var err error
	fp, err = New(3, out[:])
	if err != nil {
		return Poly{}, Poly{}, false
	}
	fq, err = New(q, out[:])
	if err != nil {
		return Poly{}, Poly{}, false
	}
	return fp, fq, true
}
