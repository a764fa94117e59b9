// Package kem implements the NTRU-style key encapsulation mechanism:
// key generation, encapsulation and decapsulation over the rings
// defined in package ring, packed to bytes via package codec.
package kem

import (
	"fmt"
	"os"

	"golang.org/x/crypto/sha3"

	"github.com/amossys-team/ntrukem/codec"
	"github.com/amossys-team/ntrukem/internal/dbg"
	"github.com/amossys-team/ntrukem/ring"
)

// PrivateKeySize and PublicKeySize are the on-disk blob lengths (spec
// §3): pack3(f) + pack3(fp) + packq(hq), and packq(h) respectively.
const (
	PrivateKeySize = 2*ring.Pack3Size + ring.PackQSize
	PublicKeySize  = ring.PackQSize
)

// KeyGen samples a fresh NTRU key pair, retrying internally whenever a
// sampled polynomial happens not to be invertible (spec §4.4 step 1
// and step 4; the InvertibilityRetry error kind never escapes this
// function).
func KeyGen(r *Rand) (private, public []byte, err error) {
	for {
		f := RandomSparse(r, ring.D)
		fp, fq, ok := ring.InvertPAndQ(f, ring.Q)
		if !ok {
			dbg.Printf(os.Stderr, "[kem] KeyGen: f not invertible mod 3q, retrying\n")
			continue
		}

		g := RandomSparse(r, ring.D)
		fqg, err := ring.Mul(fq, g)
		if err != nil {
			return nil, nil, fmt.Errorf("kem: KeyGen: %w", err)
		}
		h := fqg.MulScalar(3)

		hq, ok := ring.InvertQ(h)
		if !ok {
			dbg.Printf(os.Stderr, "[kem] KeyGen: h not invertible mod q, restarting\n")
			continue
		}

		f3, err := f.ChangeRing(3)
		if err != nil {
			return nil, nil, fmt.Errorf("kem: KeyGen: %w", err)
		}
		packF, err := codec.Pack3(f3)
		if err != nil {
			return nil, nil, fmt.Errorf("kem: KeyGen: %w", err)
		}
		packFp, err := codec.Pack3(fp)
		if err != nil {
			return nil, nil, fmt.Errorf("kem: KeyGen: %w", err)
		}
		packHq, err := codec.PackQ(hq)
		if err != nil {
			return nil, nil, fmt.Errorf("kem: KeyGen: %w", err)
		}
		packH, err := codec.PackQ(h)
		if err != nil {
			return nil, nil, fmt.Errorf("kem: KeyGen: %w", err)
		}

		private = make([]byte, 0, PrivateKeySize)
		private = append(private, packF...)
		private = append(private, packFp...)
		private = append(private, packHq...)
		public = packH
		return private, public, nil
	}
}

// Encapsulate derives a fresh 32-byte shared key from a public key
// blob and returns it alongside the encapsulation blob to send
// (spec §4.4 "Encapsulate").
func Encapsulate(r *Rand, public []byte) (key [32]byte, ciphertext []byte, err error) {
	if len(public) != PublicKeySize {
		return key, nil, fmt.Errorf("kem: Encapsulate: public key is %d bytes, want %d: %w", len(public), PublicKeySize, ErrMalformedInput)
	}
	h, err := codec.UnpackQ(public)
	if err != nil {
		return key, nil, fmt.Errorf("kem: Encapsulate: %w", ErrMalformedInput)
	}

	rPoly := RandomSparse(r, ring.D)
	mPoly := RandomTernary(r)

	hr, err := ring.Mul(h, rPoly)
	if err != nil {
		return key, nil, fmt.Errorf("kem: Encapsulate: %w", err)
	}
	c, err := ring.Add(hr, mPoly)
	if err != nil {
		return key, nil, fmt.Errorf("kem: Encapsulate: %w", err)
	}

	key, err = sharedKey(rPoly, mPoly)
	if err != nil {
		return key, nil, fmt.Errorf("kem: Encapsulate: %w", err)
	}
	ciphertext, err = codec.PackQ(c)
	if err != nil {
		return key, nil, fmt.Errorf("kem: Encapsulate: %w", err)
	}
	return key, ciphertext, nil
}

// Decapsulate recovers the 32-byte shared key from a private key blob
// and an encapsulation blob produced by Encapsulate for the matching
// public key (spec §4.4 "Decapsulate").
func Decapsulate(private, ciphertext []byte) (key [32]byte, err error) {
	if len(private) != PrivateKeySize {
		return key, fmt.Errorf("kem: Decapsulate: private key is %d bytes, want %d: %w", len(private), PrivateKeySize, ErrMalformedInput)
	}
	if len(ciphertext) != ring.PackQSize {
		return key, fmt.Errorf("kem: Decapsulate: ciphertext is %d bytes, want %d: %w", len(ciphertext), ring.PackQSize, ErrMalformedInput)
	}

	f3, err := codec.Unpack3(private[:ring.Pack3Size])
	if err != nil {
		return key, fmt.Errorf("kem: Decapsulate: %w", ErrMalformedInput)
	}
	fp, err := codec.Unpack3(private[ring.Pack3Size : 2*ring.Pack3Size])
	if err != nil {
		return key, fmt.Errorf("kem: Decapsulate: %w", ErrMalformedInput)
	}
	hq, err := codec.UnpackQ(private[2*ring.Pack3Size:])
	if err != nil {
		return key, fmt.Errorf("kem: Decapsulate: %w", ErrMalformedInput)
	}
	f, err := f3.ChangeRing(ring.Q)
	if err != nil {
		return key, fmt.Errorf("kem: Decapsulate: %w", err)
	}

	c, err := codec.UnpackQ(ciphertext)
	if err != nil {
		return key, fmt.Errorf("kem: Decapsulate: %w", ErrMalformedInput)
	}

	cf, err := ring.Mul(c, f)
	if err != nil {
		return key, fmt.Errorf("kem: Decapsulate: %w", err)
	}
	a, err := cf.ChangeRing(3)
	if err != nil {
		return key, fmt.Errorf("kem: Decapsulate: %w", err)
	}
	afp, err := ring.Mul(a, fp)
	if err != nil {
		return key, fmt.Errorf("kem: Decapsulate: %w", err)
	}
	mPoly, err := afp.ChangeRing(ring.Q)
	if err != nil {
		return key, fmt.Errorf("kem: Decapsulate: %w", err)
	}

	cMinusM, err := ring.Sub(c, mPoly)
	if err != nil {
		return key, fmt.Errorf("kem: Decapsulate: %w", err)
	}
	rPoly, err := ring.Mul(cMinusM, hq)
	if err != nil {
		return key, fmt.Errorf("kem: Decapsulate: %w", err)
	}

	return sharedKey(rPoly, mPoly)
}

// sharedKey derives the 32-byte session key as SHA3-256 of the packed
// (r, m) pair (spec §4.4 steps 5/6).
func sharedKey(rPoly, mPoly ring.Poly) ([32]byte, error) {
	var key [32]byte
	r3, err := rPoly.ChangeRing(3)
	if err != nil {
		return key, err
	}
	m3, err := mPoly.ChangeRing(3)
	if err != nil {
		return key, err
	}
	packR, err := codec.Pack3(r3)
	if err != nil {
		return key, err
	}
	packM, err := codec.Pack3(m3)
	if err != nil {
		return key, err
	}
	return sha3.Sum256(append(packR, packM...)), nil
}
