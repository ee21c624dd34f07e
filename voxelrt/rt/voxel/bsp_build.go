package voxel

import "errors"

// Construction errors surfaced by CompileBSP. No partial tree is ever
// observable: on error, CompileBSP returns nil nodes.
var (
	ErrEmptyRootBox   = errors.New("voxel: root box is empty")
	ErrVoxelOverflow  = errors.New("voxel: voxel id exceeds 14 bits")
	ErrOffsetOverflow = errors.New("voxel: branch offset exceeds 28 bits")
)

// CompileBSP compiles grid's content over root into a densely packed
// node array, root at index 0. The tree always splits at the integer
// midpoint of root's (recursively derived) longest axis; see spec.md
// §4.2 and SPEC_FULL.md §E for the full-bit / offset-width tradeoffs.
//
// A wholly homogeneous root collapses to zero nodes: no branch is
// needed to describe it, so rootIsLeaf reports true and rootVoxel
// carries root's single voxel id (Empty if root is entirely empty).
// Callers that walk nodes must special-case rootIsLeaf themselves,
// since there is no node to hand to walk.
func CompileBSP(grid *VoxelGrid, root Boxi) (nodes []Node, rootIsLeaf bool, rootVoxel Voxel, err error) {
	if root.Empty() {
		return nil, false, 0, ErrEmptyRootBox
	}
	c := &compiler{grid: grid}
	isLeaf, leafVoxel, _, err := c.build(root)
	if err != nil {
		return nil, false, 0, err
	}
	return c.nodes, isLeaf, leafVoxel, nil
}

type compiler struct {
	grid  *VoxelGrid
	nodes []Node
}

// build compiles box, returning (isLeaf, leafVoxel, full, err). full is
// true iff the compiled subtree contains no Empty voxel. When isLeaf is
// true no node was emitted for box; its content is entirely leafVoxel.
// Otherwise the subtree's root node was appended to c.nodes (its index
// is implied by tree structure: self+1 for the left/sole branch child,
// or an encoded offset for the right branch child).
func (c *compiler) build(box Boxi) (isLeaf bool, leafVoxel Voxel, full bool, err error) {
	if v, ok := c.grid.Homogeneous(box); ok {
		if v > MaxVoxel14 || v < 0 {
			return false, 0, false, ErrVoxelOverflow
		}
		return true, v, v != Empty, nil
	}

	axis := box.MaxAxis()
	left, right, _ := box.Split(axis)

	selfIdx := len(c.nodes)
	c.nodes = append(c.nodes, Node(0)) // reserved slot, fixed up below

	leftLeaf, leftVoxel, leftFull, err := c.build(left)
	if err != nil {
		return false, 0, false, err
	}

	rightStart := len(c.nodes)
	rightLeaf, rightVoxel, rightFull, err := c.build(right)
	if err != nil {
		return false, 0, false, err
	}

	var node Node
	switch {
	case leftLeaf && rightLeaf:
		node = PackLeafLeaf(axis, leftVoxel, rightVoxel)

	case leftLeaf != rightLeaf:
		leafOnRight := rightLeaf
		var leafVal Voxel
		var branchFull bool
		if leftLeaf {
			leafVal = leftVoxel
			branchFull = rightFull
		} else {
			leafVal = rightVoxel
			branchFull = leftFull
		}
		node = PackLeafBranch(axis, branchFull, leafOnRight, leafVal)

	default:
		offset := uint32(rightStart - selfIdx)
		if offset <= shortBBOffsetMask {
			node = PackShortBranchBranch(axis, leftFull, rightFull, offset)
		} else if offset <= longBBOffsetMask {
			// Open Question 1: a long offset forfeits the full-bit
			// optimization for this branch rather than widening the
			// node past 32 bits.
			node = PackLongBranchBranch(axis, offset)
		} else {
			return false, 0, false, ErrOffsetOverflow
		}
	}

	c.nodes[selfIdx] = node
	selfFull := leftFull && rightFull
	return false, 0, selfFull, nil
}
