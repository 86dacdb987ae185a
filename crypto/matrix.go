package crypto

import "fmt"

// Matrix is a square integer matrix stored row-major.
type Matrix [][]int

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]int, n)
		m[i][i] = 1
	}
	return m
}

// Size returns the number of rows.
func (m Matrix) Size() int {
	return len(m)
}

// Validate checks that m is non-empty and square.
func (m Matrix) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("matrix is empty")
	}
	for i, row := range m {
		if len(row) != len(m) {
			return fmt.Errorf("row %d has %d entries, want %d", i, len(row), len(m))
		}
	}
	return nil
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether both matrices hold the same entries.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// minor returns m without row r and column c.
func (m Matrix) minor(r, c int) Matrix {
	out := make(Matrix, 0, len(m)-1)
	for i, row := range m {
		if i == r {
			continue
		}
		next := make([]int, 0, len(row)-1)
		next = append(next, row[:c]...)
		next = append(next, row[c+1:]...)
		out = append(out, next)
	}
	return out
}

// Determinant computes the exact integer determinant by cofactor expansion
// along the first row. The empty matrix has determinant 1.
func Determinant(m Matrix) int {
	switch len(m) {
	case 0:
		return 1
	case 1:
		return m[0][0]
	case 2:
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}
	det := 0
	sign := 1
	for c := range m[0] {
		if m[0][c] != 0 {
			det += sign * m[0][c] * Determinant(m.minor(0, c))
		}
		sign = -sign
	}
	return det
}

// DeterminantMod returns det(m) reduced into [0, modulus). Entries are
// reduced first so large keys do not overflow.
func DeterminantMod(m Matrix, modulus int) int {
	return mod(Determinant(reduce(m, modulus)), modulus)
}

// ExtendedGCD returns g = gcd(a, b) and x, y with a*x + b*y = g.
// Inputs are expected to be non-negative.
func ExtendedGCD(a, b int) (g, x, y int) {
	if a == 0 {
		return b, 0, 1
	}
	g, x1, y1 := ExtendedGCD(b%a, a)
	return g, y1 - (b/a)*x1, x1
}

// GCD returns the non-negative greatest common divisor.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModInverse returns x in [0, modulus) with a*x ≡ 1 (mod modulus).
func ModInverse(a, modulus int) (int, error) {
	g, x, _ := ExtendedGCD(mod(a, modulus), modulus)
	if g != 1 {
		return 0, fmt.Errorf("%d mod %d: %w", a, modulus, ErrNotInvertible)
	}
	return mod(x, modulus), nil
}

// Adjugate returns the transpose of the cofactor matrix, so that
// m · Adjugate(m) = det(m) · I. Entries are exact integers.
func Adjugate(m Matrix) Matrix {
	n := len(m)
	if n == 1 {
		return Matrix{{1}}
	}
	if n == 2 {
		return Matrix{
			{m[1][1], -m[0][1]},
			{-m[1][0], m[0][0]},
		}
	}
	adj := make(Matrix, n)
	for i := range adj {
		adj[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cofactor := Determinant(m.minor(i, j))
			if (i+j)%2 == 1 {
				cofactor = -cofactor
			}
			adj[j][i] = cofactor
		}
	}
	return adj
}

// InverseMod returns the inverse of m modulo modulus, every entry in [0, modulus).
func InverseMod(m Matrix, modulus int) (Matrix, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	reduced := reduce(m, modulus)
	det := mod(Determinant(reduced), modulus)
	detInv, err := ModInverse(det, modulus)
	if err != nil {
		return nil, fmt.Errorf("determinant %d: %w", det, err)
	}
	adj := Adjugate(reduced)
	for i := range adj {
		for j := range adj[i] {
			adj[i][j] = mod(detInv*mod(adj[i][j], modulus), modulus)
		}
	}
	return adj, nil
}

// MulVecMod computes (m · v) mod modulus with v treated as a column.
func MulVecMod(m Matrix, v []int, modulus int) []int {
	out := make([]int, len(m))
	for i, row := range m {
		sum := 0
		for j, k := range row {
			sum += k * v[j]
		}
		out[i] = mod(sum, modulus)
	}
	return out
}

// MulMod computes (a · b) mod modulus.
func MulMod(a, b Matrix, modulus int) Matrix {
	out := make(Matrix, len(a))
	for i := range a {
		out[i] = make([]int, len(b[0]))
		for j := range b[0] {
			sum := 0
			for k := range b {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = mod(sum, modulus)
		}
	}
	return out
}

func reduce(m Matrix, modulus int) Matrix {
	out := m.Clone()
	for i := range out {
		for j := range out[i] {
			out[i][j] = mod(out[i][j], modulus)
		}
	}
	return out
}
