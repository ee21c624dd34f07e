package rtmath

import (
	"math"
	"testing"
)

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{7, 2, 3},
		{-1, 2, -1},
		{-2, 2, -1},
		{-3, 2, -2},
		{0, 4, 0},
		{15, 16, 0},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Errorf("FloorDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestArgMax3(t *testing.T) {
	cases := []struct {
		a, b, c int
	}{
		{1, 2, 3}, // 2
		{3, 2, 1}, // 0
		{1, 3, 2}, // 1
		{5, 5, 5}, // 0 (tie -> lowest index)
		{5, 5, 1}, // 0
		{1, 5, 5}, // 1
		{2, 1, 2}, // 0 (a ties c, lowest index)
	}
	wants := []int{2, 0, 1, 0, 0, 1, 0}
	for i, c := range cases {
		if got := ArgMax3(c.a, c.b, c.c); got != wants[i] {
			t.Errorf("ArgMax3(%d,%d,%d) = %d, want %d", c.a, c.b, c.c, got, wants[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	t0, t1, ok := SolveQuadratic(1, -3, 2)
	if !ok {
		t.Fatal("expected real roots")
	}
	if math.Abs(t0-1) > 1e-9 || math.Abs(t1-2) > 1e-9 {
		t.Errorf("got t0=%v t1=%v, want 1,2", t0, t1)
	}

	_, _, ok = SolveQuadratic(1, 0, 1)
	if ok {
		t.Error("expected no real roots for x^2+1=0")
	}
}

func TestReverseBits32(t *testing.T) {
	if got := ReverseBits32(1); got != 0x80000000 {
		t.Errorf("ReverseBits32(1) = %#x, want 0x80000000", got)
	}
	if got := ReverseBits32(0); got != 0 {
		t.Errorf("ReverseBits32(0) = %#x, want 0", got)
	}
	// Reversing twice is the identity.
	x := uint32(0x12345678)
	if got := ReverseBits32(ReverseBits32(x)); got != x {
		t.Errorf("double reverse = %#x, want %#x", got, x)
	}
}

func TestNormalCDFInverse(t *testing.T) {
	if !math.IsNaN(NormalCDFInverse(0)) {
		t.Error("expected NaN for p=0")
	}
	if !math.IsNaN(NormalCDFInverse(1)) {
		t.Error("expected NaN for p=1")
	}
	if got := NormalCDFInverse(0.5); math.Abs(got) > 1e-6 {
		t.Errorf("NormalCDFInverse(0.5) = %v, want ~0", got)
	}
	// Phi^-1(0.8413...) ~= 1
	got := NormalCDFInverse(0.8413447460685429)
	if math.Abs(got-1) > 1e-4 {
		t.Errorf("NormalCDFInverse(0.8413...) = %v, want ~1", got)
	}
}

func TestPowerHeuristic(t *testing.T) {
	// Equal strategies with equal counts/pdfs should weight 0.5.
	w := PowerHeuristic(1, 1, 1, 1)
	if math.Abs(w-0.5) > 1e-9 {
		t.Errorf("PowerHeuristic equal = %v, want 0.5", w)
	}
	if w := PowerHeuristic(1, 0, 1, 0); w != 0 {
		t.Errorf("PowerHeuristic zero pdfs = %v, want 0", w)
	}
}
