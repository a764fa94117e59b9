package kem

import "github.com/amossys-team/ntrukem/ring"

// RandomSparse returns a polynomial in R_q with exactly d nonzero
// coefficients, each independently +1 or -1, placed at d distinct
// positions chosen uniformly at random (spec §4.4 "random_sparse").
// Positions are drawn via a partial Fisher-Yates shuffle over [0, N)
// rather than rejection sampling, per spec §9 "random selection
// without replacement": the distribution over d-subsets is the same,
// but each position costs one swap instead of O(N) in the worst case.
func RandomSparse(r *Rand, d int) ring.Poly {
	if d > ring.N {
		panic("kem: RandomSparse requires d <= N")
	}
	indices := make([]int, ring.N)
	for i := range indices {
		indices[i] = i
	}
	coefs := make([]int64, ring.N)
	for i := 0; i < d; i++ {
		j := i + r.Intn(ring.N-i)
		indices[i], indices[j] = indices[j], indices[i]
		coefs[indices[i]] = r.Sign()
	}
	p, err := ring.New(ring.Q, coefs)
	if err != nil {
		panic(err)
	}
	return p
}

// RandomTernary returns a polynomial in R_q with every coefficient
// independently uniform in {-1, 0, 1} (spec §4.4 "random_ternary").
func RandomTernary(r *Rand) ring.Poly {
	coefs := make([]int64, ring.N)
	for i := range coefs {
		coefs[i] = r.Trit()
	}
	p, err := ring.New(ring.Q, coefs)
	if err != nil {
		panic(err)
	}
	return p
}
