package voxel

import "math"

// Decision is returned by a traversal callback to say whether the walk
// should stop at the hit just reported or keep looking. Because the BSP
// always splits the box the ray currently occupies, the first non-empty
// leaf reached along a walk is the nearest one, so both Intersect and
// IntersectP always answer Stop on the first hit.
type Decision int

const (
	Continue Decision = iota
	Stop
)

// callback receives a non-empty leaf voxel (or UnknownVoxel, when the
// full-bit optimization opaques out an entire subtree for an occlusion
// query) and the RayEntry at which it was struck.
type callback func(v Voxel, entry RayEntry) Decision

// UnknownVoxel is reported instead of a real voxel id when the full-bit
// optimization treats an entire "full" branch as one opaque hit without
// resolving which leaf was actually struck (§4.3 step 7). Only used by
// occlusion queries, which don't need the identity of what they hit.
const UnknownVoxel Voxel = -1

// walk descends the tree rooted at nodes[0] inside rootBox, invoking cb
// for every non-empty leaf reached along ray's path through
// [entry,exit], honoring cb's Decision. useFullBit enables the
// shadow-ray fast path (§4.3 step 7): a "full" branch is reported as one
// opaque UnknownVoxel hit instead of being descended into.
func walk(nodes []Node, nodeIdx int, box Boxi, entry, exit RayEntry, ray RayV, useFullBit bool, cb callback) bool {
	node := nodes[nodeIdx]
	axis := node.Axis()
	left, right, mid := box.Split(axis)

	tMid := midCrossing(ray, axis, mid)

	firstIsLeft := entry.PHit[axis] < float32(mid)

	crossesToSecond := tMid > entry.THit && tMid < exit.THit

	firstExit := exit
	if crossesToSecond {
		firstExit = RayEntry{
			PHit:        ray.PointAt(tMid),
			THit:        tMid,
			OnSurface:   true,
			SurfaceAxis: axis,
			SurfaceNeg:  ray.DirIsNeg[axis],
		}
	}

	leftIsLeaf, leftVoxel, leftIdx, leftFull := decodeLeft(node, nodeIdx)
	rightIsLeaf, rightVoxel, rightIdx, rightFull := decodeRight(node, nodeIdx)

	var firstBox, secondBox Boxi
	var firstIsLeaf, secondIsLeaf bool
	var firstVoxel, secondVoxel Voxel
	var firstIdx, secondIdx int
	var firstFull, secondFull bool

	if firstIsLeft {
		firstBox, secondBox = left, right
		firstIsLeaf, firstVoxel, firstIdx, firstFull = leftIsLeaf, leftVoxel, leftIdx, leftFull
		secondIsLeaf, secondVoxel, secondIdx, secondFull = rightIsLeaf, rightVoxel, rightIdx, rightFull
	} else {
		firstBox, secondBox = right, left
		firstIsLeaf, firstVoxel, firstIdx, firstFull = rightIsLeaf, rightVoxel, rightIdx, rightFull
		secondIsLeaf, secondVoxel, secondIdx, secondFull = leftIsLeaf, leftVoxel, leftIdx, leftFull
	}

	if descend(nodes, firstIsLeaf, firstVoxel, firstIdx, firstFull, firstBox, entry, firstExit, ray, useFullBit, cb) {
		return true
	}

	if !crossesToSecond {
		return false
	}

	secondEntry := firstExit
	return descend(nodes, secondIsLeaf, secondVoxel, secondIdx, secondFull, secondBox, secondEntry, exit, ray, useFullBit, cb)
}

// midCrossing returns the ray parameter at which it crosses the
// box-splitting plane axis=mid. When the ray never moves along axis, it
// returns +Inf or -Inf depending on which side of mid the ray already
// sits on, so the caller's crossesToSecond test naturally resolves to
// "never crosses".
func midCrossing(ray RayV, axis, mid int) float32 {
	if ray.dirIsZero[axis] {
		if ray.Orig[axis] < float32(mid) {
			return float32(math.Inf(1))
		}
		return float32(math.Inf(-1))
	}
	return (float32(mid) - ray.Orig[axis]) * ray.DirInv[axis]
}

func decodeLeft(node Node, nodeIdx int) (isLeaf bool, voxel Voxel, idx int, full bool) {
	switch node.Type() {
	case LeafLeaf:
		l, _ := node.LeafLeafValues()
		return true, l, 0, l != Empty
	case LeafBranch:
		branchFull, leafOnRight, leafVal := node.LeafBranchInfo()
		if leafOnRight {
			return false, 0, nodeIdx + 1, branchFull
		}
		return true, leafVal, 0, leafVal != Empty
	case ShortBranchBranch:
		leftFull, _, _ := node.ShortBranchBranchInfo()
		return false, 0, nodeIdx + 1, leftFull
	default: // LongBranchBranch
		return false, 0, nodeIdx + 1, false
	}
}

func decodeRight(node Node, nodeIdx int) (isLeaf bool, voxel Voxel, idx int, full bool) {
	switch node.Type() {
	case LeafLeaf:
		_, r := node.LeafLeafValues()
		return true, r, 0, r != Empty
	case LeafBranch:
		branchFull, leafOnRight, leafVal := node.LeafBranchInfo()
		if leafOnRight {
			return true, leafVal, 0, leafVal != Empty
		}
		return false, 0, nodeIdx + 1, branchFull
	case ShortBranchBranch:
		_, rightFull, offset := node.ShortBranchBranchInfo()
		return false, 0, nodeIdx + int(offset), rightFull
	default: // LongBranchBranch
		offset := node.LongBranchBranchOffset()
		return false, 0, nodeIdx + int(offset), false
	}
}

func descend(nodes []Node, isLeaf bool, voxel Voxel, idx int, full bool, box Boxi, entry, exit RayEntry, ray RayV, useFullBit bool, cb callback) bool {
	if isLeaf {
		if voxel == Empty {
			return false
		}
		return cb(voxel, entry) == Stop
	}
	if useFullBit && full {
		return cb(UnknownVoxel, entry) == Stop
	}
	return walk(nodes, idx, box, entry, exit, ray, useFullBit, cb)
}
