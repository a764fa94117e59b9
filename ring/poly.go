package ring

import (
	"fmt"
	"strings"
)

// Poly is an immutable polynomial of degree < N over Z/mZ, reduced
// modulo X^N - 1. Every coefficient is kept in the balanced residue
// range for m: [-m/2, m/2-1] when m is even, [-(m-1)/2, (m-1)/2] when
// m is odd. Operations never mutate a Poly in place; each returns a
// fresh value (spec §3/§9).
type Poly struct {
	m     int64
	coefs [N]int64
}

// New builds a Poly modulo m from a raw coefficient list. Lists longer
// than N wrap by summing into coefs[i % N] before balancing (spec
// §4.1). m must be >= 2.
func New(m int64, coefs []int64) (Poly, error) {
	if m < 2 {
		return Poly{}, fmt.Errorf("ring: modulus must be >= 2, got %d", m)
	}
	var p Poly
	p.m = m
	for i, c := range coefs {
		p.coefs[i%N] += c
	}
	p.balance()
	return p, nil
}

// Zero returns the zero polynomial modulo m.
func Zero(m int64) Poly {
	p, err := New(m, nil)
	if err != nil {
		panic(err)
	}
	return p
}

// Modulus returns the modulus m this polynomial is defined over.
func (p Poly) Modulus() int64 { return p.m }

// Coeffs returns a copy of the balanced coefficient array, length N.
func (p Poly) Coeffs() []int64 {
	out := make([]int64, N)
	copy(out, p.coefs[:])
	return out
}

// balance centers every coefficient into the canonical range for m:
// coef <- ((coef + floor(m/2)) mod m) - floor(m/2), using mathematical
// (non-negative) mod (spec §4.1).
func (p *Poly) balance() {
	half := p.m / 2
	for i, c := range p.coefs {
		r := (c + half) % p.m
		if r < 0 {
			r += p.m
		}
		p.coefs[i] = r - half
	}
}

func requireSameRing(a, b Poly) error {
	if a.m != b.m {
		return fmt.Errorf("ring: size mismatch, moduli %d and %d", a.m, b.m)
	}
	return nil
}

// Add returns a + b, balanced modulo m. a and b must share a modulus.
func Add(a, b Poly) (Poly, error) {
	if err := requireSameRing(a, b); err != nil {
		return Poly{}, err
	}
	c := make([]int64, N)
	for i := 0; i < N; i++ {
		c[i] = a.coefs[i] + b.coefs[i]
	}
	return New(a.m, c)
}

// Sub returns a - b, balanced modulo m. a and b must share a modulus.
func Sub(a, b Poly) (Poly, error) {
	if err := requireSameRing(a, b); err != nil {
		return Poly{}, err
	}
	c := make([]int64, N)
	for i := 0; i < N; i++ {
		c[i] = a.coefs[i] - b.coefs[i]
	}
	return New(a.m, c)
}

// MulScalar returns k*a, balanced modulo m.
func (a Poly) MulScalar(k int64) Poly {
	c := make([]int64, N)
	for i := 0; i < N; i++ {
		c[i] = a.coefs[i] * k
	}
	p, err := New(a.m, c)
	if err != nil {
		// a.m is already a valid modulus; New cannot fail here.
		panic(err)
	}
	return p
}

// Mul returns the convolution product a*b modulo X^N-1, balanced
// modulo m. Intermediate products are accumulated in int64, which is
// large enough for N=101 and |coef| <= q/2 (spec §9).
func Mul(a, b Poly) (Poly, error) {
	if err := requireSameRing(a, b); err != nil {
		return Poly{}, err
	}
	var acc [N]int64
	for i := 0; i < N; i++ {
		ai := a.coefs[i]
		if ai == 0 {
			continue
		}
		for j := 0; j < N; j++ {
			acc[(i+j)%N] += ai * b.coefs[j]
		}
	}
	return New(a.m, acc[:])
}

// ChangeRing reinterprets a's balanced coefficients, taken as plain
// integers, modulo a new modulus m2, rebalancing into the new range
// (spec §4.1).
func (a Poly) ChangeRing(m2 int64) (Poly, error) {
	return New(m2, a.coefs[:])
}

// Equal reports whether a and b share a modulus and every coefficient.
func Equal(a, b Poly) bool {
	if a.m != b.m {
		return false
	}
	return a.coefs == b.coefs
}

// String renders the coefficient vector, mirroring the Python
// original's __str__/__repr__ (a flat list dump), for debug use.
func (p Poly) String() string {
	parts := make([]string, N)
	for i, c := range p.coefs {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
