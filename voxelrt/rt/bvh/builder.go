package bvh

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// BVHNode is one node of a median-split bounding-volume hierarchy:
// LeafCount>0 nodes are leaves referencing LeafCount consecutive
// entries starting at LeafFirst in the index the tree was built over;
// all other nodes are internal, with Left/Right child indices into the
// same node slice, except the sentinel root of an empty build, which
// has LeafCount 0 and Left/Right -1.
type BVHNode struct {
	Min       mgl32.Vec3
	Max       mgl32.Vec3
	Left      int32
	Right     int32
	LeafFirst int32
	LeafCount int32
}

type AABBItem struct {
	Min      mgl32.Vec3
	Max      mgl32.Vec3
	Centroid mgl32.Vec3
	Index    int
}

type TLASBuilder struct{}

// BuildNodes runs a median-split build over aabbs, returning the node
// tree (root at index 0) for a CPU-side caller (Scene) to walk
// directly.
func (b *TLASBuilder) BuildNodes(aabbs [][2]mgl32.Vec3) []BVHNode {
	if len(aabbs) == 0 {
		return []BVHNode{{Left: -1, Right: -1, LeafFirst: -1, LeafCount: 0}}
	}

	items := make([]AABBItem, len(aabbs))
	for i, bounds := range aabbs {
		items[i] = AABBItem{
			Min:      bounds[0],
			Max:      bounds[1],
			Centroid: bounds[0].Add(bounds[1]).Mul(0.5),
			Index:    i,
		}
	}

	nodes := []BVHNode{}
	b.recursiveBuild(items, &nodes)
	return nodes
}

func (b *TLASBuilder) recursiveBuild(items []AABBItem, nodes *[]BVHNode) int32 {
	idx := int32(len(*nodes))
	*nodes = append(*nodes, BVHNode{Left: -1, Right: -1, LeafFirst: -1, LeafCount: 0})

	// Compute bounds
	minB := mgl32.Vec3{float32(math.Inf(1)), float32(math.Inf(1)), float32(math.Inf(1))}
	maxB := mgl32.Vec3{float32(math.Inf(-1)), float32(math.Inf(-1)), float32(math.Inf(-1))}

	for _, it := range items {
		minB = mgl32.Vec3{min(minB.X(), it.Min.X()), min(minB.Y(), it.Min.Y()), min(minB.Z(), it.Min.Z())}
		maxB = mgl32.Vec3{max(maxB.X(), it.Max.X()), max(maxB.Y(), it.Max.Y()), max(maxB.Z(), it.Max.Z())}
	}

	(*nodes)[idx].Min = minB
	(*nodes)[idx].Max = maxB

	if len(items) == 1 {
		(*nodes)[idx].LeafFirst = int32(items[0].Index)
		(*nodes)[idx].LeafCount = 1
		return idx
	}

	// Split
	extent := maxB.Sub(minB)
	axis := 0
	if extent.Y() > extent.X() {
		axis = 1
	}
	if extent.Z() > extent[axis] {
		axis = 2
	} // mgl32.Vec3 is defined as [3]float32, so it can be indexed by axis.

	sort.Slice(items, func(i, j int) bool {
		return items[i].Centroid[axis] < items[j].Centroid[axis]
	})

	mid := len(items) / 2
	(*nodes)[idx].Left = b.recursiveBuild(items[:mid], nodes)
	(*nodes)[idx].Right = b.recursiveBuild(items[mid:], nodes)

	return idx
}

func min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
func max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
