// Package codec implements the bit-exact byte encodings used to move
// PolyRing values on and off the wire: packq/unpackq for R_q and
// pack3/unpack3 for R_3 (spec §4.3).
package codec

import (
	"fmt"

	"github.com/amossys-team/ntrukem/ring"
)

// PackQ encodes pol, a polynomial in R_q, as a little-endian bit
// string of ceil(N*log2(q)/8) bytes. Coefficient i contributes log2(q)
// bits starting at bit offset log2(q)*i, least significant bit first.
func PackQ(pol ring.Poly) ([]byte, error) {
	if pol.Modulus() != ring.Q {
		return nil, fmt.Errorf("codec: PackQ requires modulus %d, got %d", ring.Q, pol.Modulus())
	}
	out := make([]byte, ring.PackQSize)
	coefs := pol.Coeffs()
	for i, coef := range coefs {
		c := coef % ring.Q
		if c < 0 {
			c += ring.Q
		}
		for j := 0; j < ring.LogQ; j++ {
			if (c>>uint(j))&1 == 0 {
				continue
			}
			pos := ring.LogQ*i + j
			out[pos/8] |= 1 << uint(pos%8)
		}
	}
	return out, nil
}

// UnpackQ is the inverse of PackQ: it reads N groups of log2(q) bits,
// least significant bit first, and returns the resulting polynomial in
// R_q (spec §4.3).
func UnpackQ(data []byte) (ring.Poly, error) {
	if len(data) != ring.PackQSize {
		return ring.Poly{}, fmt.Errorf("codec: UnpackQ expects %d bytes, got %d", ring.PackQSize, len(data))
	}
	coefs := make([]int64, ring.N)
	pos := 0
	for i := 0; i < ring.N; i++ {
		for j := 0; j < ring.LogQ; j++ {
			bit := (data[pos/8] >> uint(pos%8)) & 1
			coefs[i] |= int64(bit) << uint(j)
			pos++
		}
	}
	return ring.New(ring.Q, coefs)
}

// Pack3 encodes pol, a polynomial in R_3 with coefficients in
// {-1, 0, 1}, as ceil(N/5) bytes: five balanced coefficients are
// mapped to base-3 digits (2 standing for -1) and packed five to a
// byte, least significant digit first. The final byte carries only
// N mod 5 meaningful digits (1 for N=101); the unused high digits are
// masked to zero so unpack3 round-trips (spec §4.3, §9 "pack3 unused
// digit masking").
func Pack3(pol ring.Poly) ([]byte, error) {
	if pol.Modulus() != 3 {
		return nil, fmt.Errorf("codec: Pack3 requires modulus 3, got %d", pol.Modulus())
	}
	coefs := pol.Coeffs()
	out := make([]byte, ring.Pack3Size)
	lastFull := ring.N % 5 // digits that belong to the final byte
	if lastFull == 0 {
		lastFull = 5
	}
	for i := range out {
		start := i * 5
		count := 5
		if start+count > ring.N {
			count = ring.N - start
		}
		var b int64
		pow := int64(1)
		for j := 0; j < count; j++ {
			d := coefs[start+j] % 3
			if d < 0 {
				d += 3
			}
			b += d * pow
			pow *= 3
		}
		// Unused high digits (beyond `count`) stay at zero by
		// construction: the loop above never touches them.
		out[i] = byte(b)
	}
	return out, nil
}

// Unpack3 is the inverse of Pack3: it extracts five base-3 digits from
// each byte except the last, which yields only N mod 5 digits, each
// digit mapped back to a balanced coefficient (2 -> -1) (spec §4.3).
//
// Unlike the source this was distilled from, every byte (including the
// last) gets its own local accumulator that is divided by 3 as its
// digits are peeled off, rather than reusing a stale accumulator left
// over from the previous byte (spec §9 "source defect").
func Unpack3(data []byte) (ring.Poly, error) {
	if len(data) != ring.Pack3Size {
		return ring.Poly{}, fmt.Errorf("codec: Unpack3 expects %d bytes, got %d", ring.Pack3Size, len(data))
	}
	lastDigits := ring.N % 5
	if lastDigits == 0 {
		lastDigits = 5
	}
	coefs := make([]int64, 0, ring.N)
	for i, raw := range data {
		digits := 5
		if i == len(data)-1 {
			digits = lastDigits
		}
		if raw > 242 {
			return ring.Poly{}, fmt.Errorf("codec: Unpack3 invalid byte %d (>242) at position %d", raw, i)
		}
		b := int64(raw)
		for j := 0; j < digits; j++ {
			coefs = append(coefs, b%3)
			b /= 3
		}
		if i == len(data)-1 && b != 0 {
			return ring.Poly{}, fmt.Errorf("codec: Unpack3 nonzero unused high digits in final byte")
		}
	}
	return ring.New(3, coefs)
}
