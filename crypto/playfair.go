package crypto

import (
	"fmt"
	"strings"
)

// playfairAlphabet is A-Z without J.
const playfairAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

type position struct {
	row, col int
}

// DigraphStep describes one digraph passing through the key square.
type DigraphStep struct {
	Index   int
	Decrypt bool
	Input   string
	Output  string
	Rule    string // "row", "column" or "rectangle"
}

// PlayfairOption configures a Playfair cipher.
type PlayfairOption func(*Playfair)

// WithKeepFiller disables the filler cleanup performed after decryption.
func WithKeepFiller() PlayfairOption {
	return func(p *Playfair) {
		p.keepFiller = true
	}
}

// WithDigraphObserver registers fn to receive every processed digraph.
func WithDigraphObserver(fn func(DigraphStep)) PlayfairOption {
	return func(p *Playfair) {
		p.observe = fn
	}
}

// Playfair is a Playfair cipher using a 5×5 square with I and J merged.
type Playfair struct {
	square     [5][5]byte
	pos        map[byte]position
	keepFiller bool
	observe    func(DigraphStep)
}

// NewPlayfair builds the key square from key. Any key is accepted; an empty
// key yields the plain alphabet square.
func NewPlayfair(key string, opts ...PlayfairOption) *Playfair {
	p := &Playfair{pos: make(map[byte]position, 25)}

	letters := make([]byte, 0, 25)
	seen := make(map[byte]bool, 25)
	for _, c := range []byte(NormalizeMerged(key) + playfairAlphabet) {
		if seen[c] {
			continue
		}
		seen[c] = true
		letters = append(letters, c)
	}
	for i, c := range letters {
		r, col := i/5, i%5
		p.square[r][col] = c
		p.pos[c] = position{row: r, col: col}
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Square returns a copy of the key square.
func (p *Playfair) Square() [5][5]byte {
	return p.square
}

// Digraphs splits normalized text into pairs, inserting X between doubled
// letters and after a trailing lone letter.
func (p *Playfair) Digraphs(text string) []string {
	text = NormalizeMerged(text)
	pairs := make([]string, 0, len(text)/2+1)
	for i := 0; i < len(text); {
		if i == len(text)-1 || text[i] == text[i+1] {
			pairs = append(pairs, string([]byte{text[i], Filler}))
			i++
			continue
		}
		pairs = append(pairs, text[i:i+2])
		i += 2
	}
	return pairs
}

// Encrypt applies the row, column and rectangle rules to every digraph.
func (p *Playfair) Encrypt(plaintext string) string {
	var b strings.Builder
	for i, pair := range p.Digraphs(plaintext) {
		b.WriteString(p.transform(i, pair, 1))
	}
	return b.String()
}

// Decrypt reverses Encrypt. The ciphertext must hold an even number of
// letters. Unless WithKeepFiller was given, one trailing X is dropped and
// every X between two equal letters is removed, which also removes genuine
// X letters in that position.
func (p *Playfair) Decrypt(ciphertext string) (string, error) {
	text := NormalizeMerged(ciphertext)
	if len(text)%2 != 0 {
		return "", fmt.Errorf("%w: %d letters is not a whole number of digraphs",
			ErrInvalidLength, len(text))
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i += 2 {
		b.WriteString(p.transform(i/2, text[i:i+2], -1))
	}
	if p.keepFiller {
		return b.String(), nil
	}
	return stripFiller(b.String()), nil
}

// transform shifts along rows and columns by dir (1 encrypts, -1 decrypts).
func (p *Playfair) transform(index int, pair string, dir int) string {
	a, b := p.pos[pair[0]], p.pos[pair[1]]
	var out [2]byte
	var rule string
	switch {
	case a.row == b.row:
		rule = "row"
		out[0] = p.square[a.row][mod(a.col+dir, 5)]
		out[1] = p.square[b.row][mod(b.col+dir, 5)]
	case a.col == b.col:
		rule = "column"
		out[0] = p.square[mod(a.row+dir, 5)][a.col]
		out[1] = p.square[mod(b.row+dir, 5)][b.col]
	default:
		rule = "rectangle"
		out[0] = p.square[a.row][b.col]
		out[1] = p.square[b.row][a.col]
	}
	res := string(out[:])
	if p.observe != nil {
		p.observe(DigraphStep{
			Index:   index,
			Decrypt: dir < 0,
			Input:   pair,
			Output:  res,
			Rule:    rule,
		})
	}
	return res
}

func stripFiller(text string) string {
	text = strings.TrimSuffix(text, string(Filler))
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if i < len(text)-2 && text[i] == text[i+2] && text[i+1] == Filler {
			b.WriteByte(text[i])
			i++
			continue
		}
		b.WriteByte(text[i])
	}
	return b.String()
}
