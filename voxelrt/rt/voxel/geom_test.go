package voxel

import "testing"

func TestVec3iArithmetic(t *testing.T) {
	a := Vec3i{1, 2, 3}
	b := Vec3i{4, -1, 2}
	if got := a.Add(b); got != (Vec3i{5, 1, 5}) {
		t.Fatalf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec3i{-3, 3, 1}) {
		t.Fatalf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec3i{2, 4, 6}) {
		t.Fatalf("Scale: got %v", got)
	}
}

func TestVec3iAxisAccessors(t *testing.T) {
	v := Vec3i{7, 8, 9}
	for i, want := range []int{7, 8, 9} {
		if got := v.Axis(i); got != want {
			t.Fatalf("Axis(%d): got %d want %d", i, got, want)
		}
	}
	got := v.WithAxis(1, 100)
	if got != (Vec3i{7, 100, 9}) {
		t.Fatalf("WithAxis: got %v", got)
	}
}

func TestVec3iFloorDivModNegative(t *testing.T) {
	v := Vec3i{-1, -16, -17}
	d := v.FloorDiv(16)
	if d != (Vec3i{-1, -1, -2}) {
		t.Fatalf("FloorDiv: got %v", d)
	}
	m := v.FloorMod(16)
	if m != (Vec3i{15, 0, 15}) {
		t.Fatalf("FloorMod: got %v", m)
	}
}

func TestBoxiEmptyAndVolume(t *testing.T) {
	b := Boxi{Min: Vec3i{0, 0, 0}, Max: Vec3i{2, 3, 4}}
	if b.Empty() {
		t.Fatalf("non-degenerate box reported empty")
	}
	if got := b.Volume(); got != 24 {
		t.Fatalf("Volume: got %d want 24", got)
	}
	degenerate := Boxi{Min: Vec3i{5, 0, 0}, Max: Vec3i{5, 3, 3}}
	if !degenerate.Empty() {
		t.Fatalf("degenerate box not reported empty")
	}
	if v := degenerate.Volume(); v != 0 {
		t.Fatalf("degenerate Volume: got %d want 0", v)
	}
}

func TestBoxiContains(t *testing.T) {
	b := Boxi{Min: Vec3i{0, 0, 0}, Max: Vec3i{2, 2, 2}}
	if !b.Contains(Vec3i{0, 0, 0}) {
		t.Fatalf("expected min corner contained")
	}
	if b.Contains(Vec3i{2, 0, 0}) {
		t.Fatalf("max corner must not be contained (half-open)")
	}
	if b.Contains(Vec3i{-1, 0, 0}) {
		t.Fatalf("point below min must not be contained")
	}
}

func TestBoxiMaxAxisTieBreak(t *testing.T) {
	b := Boxi{Min: Vec3i{0, 0, 0}, Max: Vec3i{4, 4, 2}}
	if got := b.MaxAxis(); got != 0 {
		t.Fatalf("tie between X and Y extents must resolve to axis 0, got %d", got)
	}
	bz := Boxi{Min: Vec3i{0, 0, 0}, Max: Vec3i{2, 2, 8}}
	if got := bz.MaxAxis(); got != 2 {
		t.Fatalf("expected axis 2 (Z) to dominate, got %d", got)
	}
}

func TestBoxiSplitCoversWithoutOverlap(t *testing.T) {
	b := Boxi{Min: Vec3i{0, 0, 0}, Max: Vec3i{7, 1, 1}}
	left, right, mid := b.Split(0)
	if mid != 3 {
		t.Fatalf("expected mid=3, got %d", mid)
	}
	if left.Max.X != mid || right.Min.X != mid {
		t.Fatalf("split halves don't meet at mid: left=%v right=%v", left, right)
	}
	if left.Min != b.Min || right.Max != b.Max {
		t.Fatalf("split halves don't span the original box: left=%v right=%v", left, right)
	}
	// Every integer point in b belongs to exactly one half.
	for x := b.Min.X; x < b.Max.X; x++ {
		p := Vec3i{x, 0, 0}
		inLeft, inRight := left.Contains(p), right.Contains(p)
		if inLeft == inRight {
			t.Fatalf("point %v must belong to exactly one half, left=%v right=%v", p, inLeft, inRight)
		}
	}
}
