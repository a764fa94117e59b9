package ring

import "math/big"

// modAdd, modSub and modMul operate on non-negative residues mod m,
// the same small helper shape as the teacher's invert.go (modAdd/
// modSub/modMul/modInv), kept here for the Gauss-Jordan row
// arithmetic used by Invert.
func modAdd(x, y, m int64) int64 {
	r := (x + y) % m
	if r < 0 {
		r += m
	}
	return r
}

func modSub(x, y, m int64) int64 {
	r := (x - y) % m
	if r < 0 {
		r += m
	}
	return r
}

func modMul(x, y, m int64) int64 {
	r := (x * y) % m
	if r < 0 {
		r += m
	}
	return r
}

// modInverse returns the inverse of a modulo m via extended Euclid
// (math/big.Int.ModInverse, as the teacher's own modInv helper does),
// or false if a is not a unit mod m.
func modInverse(a, m int64) (int64, bool) {
	A := big.NewInt(a)
	M := big.NewInt(m)
	inv := new(big.Int).ModInverse(A, M)
	if inv == nil {
		return 0, false
	}
	return inv.Int64(), true
}
