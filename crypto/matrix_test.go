package crypto

import (
	"errors"
	"testing"
)

func TestDeterminant(t *testing.T) {
	cases := []struct {
		name string
		m    Matrix
		want int
	}{
		{"1x1", Matrix{{7}}, 7},
		{"2x2", Matrix{{3, 2}, {5, 7}}, 11},
		{"2x2 negative", Matrix{{1, 2}, {3, 4}}, -2},
		{"3x3", Matrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}, 441},
		{"4x4", Matrix{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}, 30},
	}
	for _, tc := range cases {
		if got := Determinant(tc.m); got != tc.want {
			t.Errorf("%s: Determinant=%d want %d", tc.name, got, tc.want)
		}
	}
}

func TestDeterminantMod(t *testing.T) {
	if got := DeterminantMod(Matrix{{1, 2}, {3, 4}}, 26); got != 24 {
		t.Fatalf("got %d want 24", got)
	}
	if got := DeterminantMod(Matrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}, 26); got != 25 {
		t.Fatalf("got %d want 25", got)
	}
}

func TestExtendedGCD(t *testing.T) {
	pairs := [][2]int{{240, 46}, {11, 26}, {0, 26}, {26, 0}, {17, 5}, {13, 26}}
	for _, p := range pairs {
		g, x, y := ExtendedGCD(p[0], p[1])
		if g != GCD(p[0], p[1]) {
			t.Errorf("ExtendedGCD(%d,%d): g=%d want %d", p[0], p[1], g, GCD(p[0], p[1]))
		}
		if p[0]*x+p[1]*y != g {
			t.Errorf("ExtendedGCD(%d,%d): %d*%d + %d*%d != %d", p[0], p[1], p[0], x, p[1], y, g)
		}
	}
}

func TestModInverse(t *testing.T) {
	cases := map[int]int{1: 1, 3: 9, 11: 19, 25: 25, -1: 25, 37: 19}
	for a, want := range cases {
		got, err := ModInverse(a, 26)
		if err != nil {
			t.Fatalf("ModInverse(%d): %v", a, err)
		}
		if got != want {
			t.Errorf("ModInverse(%d)=%d want %d", a, got, want)
		}
	}
	for _, a := range []int{0, 2, 13, 24} {
		if _, err := ModInverse(a, 26); !errors.Is(err, ErrNotInvertible) {
			t.Errorf("ModInverse(%d): err=%v want ErrNotInvertible", a, err)
		}
	}
}

func TestAdjugate(t *testing.T) {
	got := Adjugate(Matrix{{3, 2}, {5, 7}})
	want := Matrix{{7, -2}, {-5, 3}}
	if !got.Equal(want) {
		t.Fatalf("Adjugate 2x2 = %v want %v", got, want)
	}

	m := Matrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}
	adj := Adjugate(m)
	det := Determinant(m)
	for i := range m {
		for j := range m {
			sum := 0
			for k := range m {
				sum += m[i][k] * adj[k][j]
			}
			want := 0
			if i == j {
				want = det
			}
			if sum != want {
				t.Fatalf("(m·adj)[%d][%d]=%d want %d", i, j, sum, want)
			}
		}
	}
}

func TestInverseMod(t *testing.T) {
	cases := []struct {
		m    Matrix
		want Matrix
	}{
		{Matrix{{3, 2}, {5, 7}}, Matrix{{3, 14}, {9, 5}}},
		{Matrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}, Matrix{{8, 5, 10}, {21, 8, 21}, {21, 12, 8}}},
	}
	for _, tc := range cases {
		inv, err := InverseMod(tc.m, 26)
		if err != nil {
			t.Fatalf("InverseMod(%v): %v", tc.m, err)
		}
		if !inv.Equal(tc.want) {
			t.Errorf("InverseMod(%v)=%v want %v", tc.m, inv, tc.want)
		}
		if !MulMod(tc.m, inv, 26).Equal(Identity(len(tc.m))) {
			t.Errorf("m·inv is not the identity for %v", tc.m)
		}
	}

	if _, err := InverseMod(Matrix{{1, 2}, {3, 4}}, 26); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("expected ErrNotInvertible, got %v", err)
	}
	if _, err := InverseMod(Matrix{{1, 2}}, 26); err == nil {
		t.Fatalf("expected error for non-square matrix")
	}
}

func TestMulVecMod(t *testing.T) {
	got := MulVecMod(Matrix{{3, 2}, {5, 7}}, []int{7, 4}, 26)
	if got[0] != 3 || got[1] != 11 {
		t.Fatalf("got %v want [3 11]", got)
	}
}
