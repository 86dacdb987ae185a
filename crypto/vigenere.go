// Package crypto contains Hill, Playfair and Vigenère encryption and decryption
package crypto

import (
	"fmt"
	"strings"
)

type Vigenere struct {
	key []byte
}

// NewVigenere normalizes key to upper-case letters. A key without any
// letters is rejected.
func NewVigenere(key string) (*Vigenere, error) {
	normalized := Normalize(key)
	if normalized == "" {
		return nil, fmt.Errorf("%w: key must contain at least one alphabetic character", ErrInvalidKey)
	}
	return &Vigenere{key: []byte(normalized)}, nil
}

// Key returns the normalized key.
func (v *Vigenere) Key() string {
	return string(v.key)
}

// KeyStream repeats the key and truncates it to exactly n letters.
func (v *Vigenere) KeyStream(n int) string {
	if n <= 0 {
		return ""
	}
	stream := make([]byte, n)
	for i := range stream {
		stream[i] = v.key[i%len(v.key)]
	}
	return string(stream)
}

func (v *Vigenere) Encrypt(plaintext string) string {
	return v.shift(Normalize(plaintext), 1)
}

func (v *Vigenere) Decrypt(ciphertext string) string {
	return v.shift(Normalize(ciphertext), -1)
}

func (v *Vigenere) shift(text string, dir int) string {
	out := make([]byte, len(text))
	keyLen := len(v.key)

	for i := 0; i < len(text); i++ {
		k := int(v.key[i%keyLen] - 'A')
		// (P + K) mod 26 to encrypt, (C - K) mod 26 to decrypt
		out[i] = byte(mod(int(text[i]-'A')+dir*k, Modulus)) + 'A'
	}

	return string(out)
}

// TabulaRecta returns the 26 rows of the Vigenère square; row r is the
// alphabet shifted left by r.
func TabulaRecta() [Modulus]string {
	var table [Modulus]string
	for row := 0; row < Modulus; row++ {
		var b strings.Builder
		for col := 0; col < Modulus; col++ {
			b.WriteByte(byte((row+col)%Modulus) + 'A')
		}
		table[row] = b.String()
	}
	return table
}
