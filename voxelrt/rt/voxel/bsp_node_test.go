package voxel

import "testing"

func TestPackLeafLeafRoundTrip(t *testing.T) {
	for axis := 0; axis < 3; axis++ {
		n := PackLeafLeaf(axis, 7, 12345)
		if n.Axis() != axis {
			t.Fatalf("axis: got %d want %d", n.Axis(), axis)
		}
		if n.Type() != LeafLeaf {
			t.Fatalf("type: got %v want LeafLeaf", n.Type())
		}
		left, right := n.LeafLeafValues()
		if left != 7 || right != 12345 {
			t.Fatalf("values: got left=%v right=%v", left, right)
		}
	}
}

func TestPackLeafBranchRoundTrip(t *testing.T) {
	cases := []struct {
		full, onRight bool
		val           Voxel
	}{
		{true, true, 0},
		{false, false, MaxVoxel14},
		{true, false, 99},
		{false, true, 1},
	}
	for _, c := range cases {
		n := PackLeafBranch(1, c.full, c.onRight, c.val)
		full, onRight, val := n.LeafBranchInfo()
		if full != c.full || onRight != c.onRight || val != c.val {
			t.Fatalf("case %+v: got full=%v onRight=%v val=%v", c, full, onRight, val)
		}
		if n.Type() != LeafBranch {
			t.Fatalf("type: got %v want LeafBranch", n.Type())
		}
	}
}

func TestPackShortBranchBranchRoundTrip(t *testing.T) {
	const maxOffset = (1 << 26) - 1
	n := PackShortBranchBranch(2, true, false, maxOffset)
	leftFull, rightFull, offset := n.ShortBranchBranchInfo()
	if !leftFull || rightFull || offset != maxOffset {
		t.Fatalf("got leftFull=%v rightFull=%v offset=%d", leftFull, rightFull, offset)
	}
	if n.Type() != ShortBranchBranch {
		t.Fatalf("type: got %v want ShortBranchBranch", n.Type())
	}
}

func TestPackShortBranchBranchOffsetOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on offset exceeding 26 bits")
		}
	}()
	PackShortBranchBranch(0, false, false, 1<<26)
}

func TestPackLongBranchBranchRoundTrip(t *testing.T) {
	const maxOffset = (1 << 28) - 1
	n := PackLongBranchBranch(0, maxOffset)
	if n.LongBranchBranchOffset() != maxOffset {
		t.Fatalf("got offset=%d want %d", n.LongBranchBranchOffset(), maxOffset)
	}
	if n.Type() != LongBranchBranch {
		t.Fatalf("type: got %v want LongBranchBranch", n.Type())
	}
}

func TestPackLongBranchBranchOffsetOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on offset exceeding 28 bits")
		}
	}()
	PackLongBranchBranch(0, 1<<28)
}

func TestVoxelUnify(t *testing.T) {
	if v, ok := Unify(5, 5); !ok || v != 5 {
		t.Fatalf("equal unify: got v=%v ok=%v", v, ok)
	}
	if v, ok := Unify(Wildcard, 9); !ok || v != 9 {
		t.Fatalf("wildcard/value unify: got v=%v ok=%v", v, ok)
	}
	if v, ok := Unify(9, Wildcard); !ok || v != 9 {
		t.Fatalf("value/wildcard unify: got v=%v ok=%v", v, ok)
	}
	if _, ok := Unify(3, 4); ok {
		t.Fatalf("distinct non-wildcard values must not unify")
	}
}
