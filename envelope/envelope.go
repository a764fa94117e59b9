// Package envelope implements the symmetric file-encryption layer
// that sits on top of a KEM-derived shared key: AES-256-CBC with
// PKCS#7 padding and a random IV (spec §4.5).
//
// This is implemented directly on crypto/aes and crypto/cipher: no
// library in the example pack offers a plain CBC+PKCS7 construction
// (only AEAD modes), and the spec requires bit-for-bit compatibility
// with a Python Crypto.Cipher.AES / MODE_CBC + Util.Padding.pad
// implementation, so there is no ecosystem helper to wire in instead.
package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

const blockSize = aes.BlockSize // 16

// ErrInvalidPadding is returned by Open when the final block does not
// decode to valid PKCS#7 padding.
var ErrInvalidPadding = errors.New("envelope: invalid padding")

// Seal pads plaintext to a multiple of the block size with PKCS#7,
// draws a fresh random IV, and returns IV ∥ ciphertext.
func Seal(key [32]byte, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("envelope: Seal: %w", err)
	}

	padded := pkcs7Pad(plaintext, blockSize)
	out := make([]byte, blockSize+len(padded))
	iv := out[:blockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("envelope: Seal: %w", err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[blockSize:], padded)
	return out, nil
}

// Open reverses Seal: it splits the leading IV, CBC-decrypts the
// remainder, and strips PKCS#7 padding.
func Open(key [32]byte, blob []byte) ([]byte, error) {
	if len(blob) < blockSize || len(blob)%blockSize != 0 {
		return nil, fmt.Errorf("envelope: Open: blob length %d is not a positive multiple of %d plus IV", len(blob), blockSize)
	}
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("envelope: Open: %w", err)
	}

	iv, body := blob[:blockSize], blob[blockSize:]
	if len(body) == 0 {
		return nil, fmt.Errorf("envelope: Open: %w", ErrInvalidPadding)
	}
	plainPadded := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plainPadded, body)

	return pkcs7Unpad(plainPadded, blockSize)
}

func pkcs7Pad(data []byte, size int) []byte {
	padLen := size - len(data)%size
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

func pkcs7Unpad(data []byte, size int) ([]byte, error) {
	if len(data) == 0 || len(data)%size != 0 {
		return nil, fmt.Errorf("envelope: %w", ErrInvalidPadding)
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > size || padLen > len(data) {
		return nil, fmt.Errorf("envelope: %w", ErrInvalidPadding)
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("envelope: %w", ErrInvalidPadding)
		}
	}
	return data[:len(data)-padLen], nil
}
