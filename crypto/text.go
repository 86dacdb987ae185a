package crypto

import "strings"

// Modulus is the size of the Latin alphabet used by every cipher here.
const Modulus = 26

// Filler pads Hill blocks and splits Playfair digraphs.
const Filler = 'X'

// normalize keeps only ASCII letters, upper-cased. When mergeJ is set J becomes I.
func normalize(text string, mergeJ bool) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			r -= 'a' - 'A'
		case r >= 'A' && r <= 'Z':
		default:
			continue
		}
		if mergeJ && r == 'J' {
			r = 'I'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize returns text the way Vigenère sees it.
func Normalize(text string) string {
	return normalize(text, false)
}

// NormalizeMerged returns text the way Hill and Playfair see it (J merged into I).
func NormalizeMerged(text string) string {
	return normalize(text, true)
}

func toNumbers(text string) []int {
	nums := make([]int, len(text))
	for i := 0; i < len(text); i++ {
		nums[i] = int(text[i] - 'A')
	}
	return nums
}

func toLetters(nums []int) string {
	buf := make([]byte, len(nums))
	for i, n := range nums {
		buf[i] = byte(mod(n, Modulus)) + 'A'
	}
	return string(buf)
}

// mod returns a in [0, m).
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
