package crypto

import "errors"

var (
	// ErrInvalidKey is returned when a key cannot be used by a cipher.
	ErrInvalidKey = errors.New("invalid key")
	// ErrNotInvertible is returned when a value or matrix has no inverse modulo 26.
	ErrNotInvertible = errors.New("not invertible")
	// ErrInvalidLength is returned when ciphertext is not aligned to the cipher's block size.
	ErrInvalidLength = errors.New("invalid length")
)
