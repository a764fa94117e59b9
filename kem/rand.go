package kem

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Rand draws the randomness consumed by RandomSparse and RandomTernary.
// It wraps an io.Reader the way the teacher's RNG wraps a math/rand
// source, but is backed by crypto/rand.Reader by default so sampling
// meets the "cryptographically strong source" requirement; tests may
// substitute a deterministic reader (e.g. a seeded stream cipher) to
// get reproducible keys.
type Rand struct {
	reader io.Reader
}

// NewRand returns a Rand backed by crypto/rand.Reader.
func NewRand() *Rand {
	return &Rand{reader: rand.Reader}
}

// NewRandFrom returns a Rand backed by an arbitrary reader, for tests
// that need deterministic output.
func NewRandFrom(r io.Reader) *Rand {
	return &Rand{reader: r}
}

// Intn returns a uniformly random integer in [0, n) via rejection
// sampling over the reader, mirroring the teacher's RandBigInt helper.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("kem: Intn requires a positive bound")
	}
	v, err := rand.Int(r.reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}
	return int(v.Int64())
}

// Sign returns +1 or -1 with equal probability.
func (r *Rand) Sign() int64 {
	if r.Intn(2) == 0 {
		return 1
	}
	return -1
}

// Trit returns a uniformly random value in {-1, 0, 1}.
func (r *Rand) Trit() int64 {
	return int64(r.Intn(3)) - 1
}
