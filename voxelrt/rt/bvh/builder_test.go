package bvh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTwoObjectsSplit(t *testing.T) {
	// Create two AABBs far apart
	aabbs := [][2]mgl32.Vec3{
		// Object 1 at -100
		{{-100, -1, -1}, {-98, 1, 1}},
		// Object 2 at 100
		{{100, -1, -1}, {102, 1, 1}},
	}

	builder := &TLASBuilder{}
	nodes := builder.BuildNodes(aabbs)

	// Should have Root, Left, Right (3 nodes total)
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}

	root := nodes[0]
	if root.Min.X() > -100 {
		t.Errorf("root min X should be <= -100, got %f", root.Min.X())
	}
	if root.Max.X() < 100 {
		t.Errorf("root max X should be >= 100, got %f", root.Max.X())
	}

	if root.Left == -1 {
		t.Error("left index should not be -1 (should point to child)")
	}
	if root.Right == -1 {
		t.Error("right index should not be -1 (should point to child)")
	}
	if root.Left == root.Right {
		t.Error("left and right indices should be different")
	}

	if nodes[root.Left].LeafCount != 1 {
		t.Errorf("left child should be a leaf, got LeafCount=%d", nodes[root.Left].LeafCount)
	}
	if nodes[root.Right].LeafCount != 1 {
		t.Errorf("right child should be a leaf, got LeafCount=%d", nodes[root.Right].LeafCount)
	}
}

func TestSingleObject(t *testing.T) {
	aabbs := [][2]mgl32.Vec3{
		{{0, 0, 0}, {1, 1, 1}},
	}

	builder := &TLASBuilder{}
	nodes := builder.BuildNodes(aabbs)

	// Should have 1 node (root is leaf)
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}

	root := nodes[0]
	if root.Left != -1 || root.Right != -1 {
		t.Error("root should be a leaf (left and right = -1)")
	}
	if root.LeafFirst != 0 || root.LeafCount != 1 {
		t.Errorf("leaf should reference object 0, got first=%d count=%d", root.LeafFirst, root.LeafCount)
	}
}

func TestEmptyBVH(t *testing.T) {
	builder := &TLASBuilder{}
	nodes := builder.BuildNodes(nil)

	// Should still create a minimal root node
	if len(nodes) != 1 {
		t.Fatalf("expected a single sentinel root node, got %d", len(nodes))
	}
	if nodes[0].LeafCount != 0 {
		t.Errorf("expected an empty sentinel leaf, got LeafCount=%d", nodes[0].LeafCount)
	}
}
