package crypto

import (
	"fmt"
	"strings"
)

// BlockStep describes one block passing through a Hill key matrix.
type BlockStep struct {
	Index   int
	Decrypt bool
	Input   []int
	Output  []int
}

// HillOption configures a Hill cipher.
type HillOption func(*Hill)

// WithKeepPadding disables stripping trailing filler letters after decryption.
func WithKeepPadding() HillOption {
	return func(h *Hill) {
		h.keepPadding = true
	}
}

// WithBlockObserver registers fn to receive every processed block.
func WithBlockObserver(fn func(BlockStep)) HillOption {
	return func(h *Hill) {
		h.observe = fn
	}
}

// Hill is a Hill cipher over A-Z with J merged into I.
type Hill struct {
	key         Matrix
	inverse     Matrix
	n           int
	keepPadding bool
	observe     func(BlockStep)
}

// MaxHillSize bounds the key dimension; determinant and adjugate use
// cofactor expansion, which grows factorially with n.
const MaxHillSize = 8

// NewHill validates key and precomputes its inverse modulo 26.
func NewHill(key Matrix, opts ...HillOption) (*Hill, error) {
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(key) > MaxHillSize {
		return nil, fmt.Errorf("%w: %d×%d key exceeds the %d×%d limit",
			ErrInvalidKey, len(key), len(key), MaxHillSize, MaxHillSize)
	}

	reduced := reduce(key, Modulus)
	det := DeterminantMod(reduced, Modulus)
	if GCD(det, Modulus) != 1 {
		return nil, fmt.Errorf("%w: determinant %d is not coprime with %d: %w",
			ErrInvalidKey, det, Modulus, ErrNotInvertible)
	}

	inverse, err := InverseMod(reduced, Modulus)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	if !MulMod(reduced, inverse, Modulus).Equal(Identity(len(key))) {
		return nil, fmt.Errorf("%w: inverse verification failed", ErrInvalidKey)
	}

	h := &Hill{
		key:     reduced,
		inverse: inverse,
		n:       len(key),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Size returns the block size n.
func (h *Hill) Size() int {
	return h.n
}

// Key returns a copy of the key matrix with entries reduced mod 26.
func (h *Hill) Key() Matrix {
	return h.key.Clone()
}

// InverseKey returns a copy of the decryption matrix.
func (h *Hill) InverseKey() Matrix {
	return h.inverse.Clone()
}

// Encrypt pads the normalized plaintext with X to a multiple of n and
// multiplies each block by the key.
func (h *Hill) Encrypt(plaintext string) string {
	nums := toNumbers(NormalizeMerged(plaintext))
	if rem := len(nums) % h.n; rem != 0 {
		for i := 0; i < h.n-rem; i++ {
			nums = append(nums, int(Filler-'A'))
		}
	}
	return toLetters(h.apply(h.key, nums, false))
}

// Decrypt multiplies each block by the inverse key. Trailing X letters are
// stripped unless WithKeepPadding was given; genuine trailing X letters in the
// plaintext are lost in that case.
func (h *Hill) Decrypt(ciphertext string) (string, error) {
	nums := toNumbers(NormalizeMerged(ciphertext))
	if len(nums)%h.n != 0 {
		return "", fmt.Errorf("%w: %d letters is not a multiple of block size %d",
			ErrInvalidLength, len(nums), h.n)
	}
	plain := toLetters(h.apply(h.inverse, nums, true))
	if h.keepPadding {
		return plain, nil
	}
	return strings.TrimRight(plain, string(Filler)), nil
}

func (h *Hill) apply(m Matrix, nums []int, decrypt bool) []int {
	out := make([]int, 0, len(nums))
	for i := 0; i < len(nums); i += h.n {
		block := nums[i : i+h.n]
		res := MulVecMod(m, block, Modulus)
		if h.observe != nil {
			h.observe(BlockStep{
				Index:   i / h.n,
				Decrypt: decrypt,
				Input:   append([]int(nil), block...),
				Output:  res,
			})
		}
		out = append(out, res...)
	}
	return out
}
