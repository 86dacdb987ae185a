// Package analysis is made to measure letter statistics of plain and cipher text
package analysis

import (
	"cipher-backend/crypto"
)

// LetterCount is the number of occurrences of one letter.
type LetterCount struct {
	Letter  string  `json:"letter"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// KeyPatternReport shows how a Vigenère key repeats across a text.
type KeyPatternReport struct {
	Key       string        `json:"key"`
	Length    int           `json:"length"`
	Stream    string        `json:"stream"`
	Frequency []LetterCount `json:"frequency"`
}

// Comparison contrasts the letter distribution of a plaintext and its ciphertext.
type Comparison struct {
	Plain       []LetterCount `json:"plain"`
	Cipher      []LetterCount `json:"cipher"`
	PlainIOC    float64       `json:"plain_ioc"`
	CipherIOC   float64       `json:"cipher_ioc"`
	PlainCount  int           `json:"plain_letters"`
	CipherCount int           `json:"cipher_letters"`
}

func counts(letters string) [crypto.Modulus]int {
	var c [crypto.Modulus]int
	for i := 0; i < len(letters); i++ {
		c[letters[i]-'A']++
	}
	return c
}

// LetterFrequency returns the letters present in text in alphabetical order.
func LetterFrequency(text string) []LetterCount {
	letters := crypto.Normalize(text)
	c := counts(letters)

	out := make([]LetterCount, 0, crypto.Modulus)
	total := float64(len(letters))
	for i, n := range c {
		if n == 0 {
			continue
		}
		out = append(out, LetterCount{
			Letter:  string(rune('A' + i)),
			Count:   n,
			Percent: float64(n) / total * 100,
		})
	}
	return out
}

// IndexOfCoincidence is the probability that two letters drawn from text
// are equal. English sits near 0.066 and uniform text near 0.038.
func IndexOfCoincidence(text string) float64 {
	letters := crypto.Normalize(text)
	n := len(letters)
	if n < 2 {
		return 0.0
	}

	var sum float64
	for _, k := range counts(letters) {
		sum += float64(k) * float64(k-1)
	}
	return sum / (float64(n) * float64(n-1))
}

// KeyPattern repeats the Vigenère key over n letters.
func KeyPattern(v *crypto.Vigenere, n int) KeyPatternReport {
	stream := v.KeyStream(n)
	return KeyPatternReport{
		Key:       v.Key(),
		Length:    len(stream),
		Stream:    stream,
		Frequency: LetterFrequency(stream),
	}
}

func Compare(plain, cipher string) Comparison {
	return Comparison{
		Plain:       LetterFrequency(plain),
		Cipher:      LetterFrequency(cipher),
		PlainIOC:    IndexOfCoincidence(plain),
		CipherIOC:   IndexOfCoincidence(cipher),
		PlainCount:  len(crypto.Normalize(plain)),
		CipherCount: len(crypto.Normalize(cipher)),
	}
}
