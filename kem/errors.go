package kem

import "errors"

// ErrMalformedInput is returned when a key or ciphertext blob has the
// wrong length or fails to decode (spec §7 "MalformedInput"). Wrapped
// with fmt.Errorf("...: %w", ErrMalformedInput) so callers can test
// with errors.Is.
var ErrMalformedInput = errors.New("kem: malformed input")
