package voxel

// LumpRadius is the edge length of a Lump, the dense storage granule of
// the sparse VoxelGrid.
const LumpRadius = 16

// Lump is a dense 16x16x16 block of voxels, row-major with index
// x + y*R + z*R^2.
type Lump struct {
	voxels [LumpRadius * LumpRadius * LumpRadius]Voxel
}

func lumpIndex(local Vec3i) int {
	return local.X + local.Y*LumpRadius + local.Z*LumpRadius*LumpRadius
}

func (l *Lump) get(local Vec3i) Voxel {
	return l.voxels[lumpIndex(local)]
}

func (l *Lump) set(local Vec3i, v Voxel) {
	l.voxels[lumpIndex(local)] = v
}

// VoxelGrid is a sparse, lump-chunked map from integer position to
// voxel id. Missing lumps read as Empty everywhere.
type VoxelGrid struct {
	lumps map[Vec3i]*Lump
}

// NewVoxelGrid returns an empty grid.
func NewVoxelGrid() *VoxelGrid {
	return &VoxelGrid{lumps: make(map[Vec3i]*Lump)}
}

func lumpPos(pos Vec3i) Vec3i {
	return pos.FloorDiv(LumpRadius)
}

func localPos(pos, lp Vec3i) Vec3i {
	return pos.Sub(lp.Scale(LumpRadius))
}

// Get reads the voxel at pos; a missing lump reads as Empty.
func (g *VoxelGrid) Get(pos Vec3i) Voxel {
	lp := lumpPos(pos)
	lump, ok := g.lumps[lp]
	if !ok {
		return Empty
	}
	return lump.get(localPos(pos, lp))
}

// Set writes the voxel at pos, allocating its owning lump on first write.
func (g *VoxelGrid) Set(pos Vec3i, val Voxel) {
	lp := lumpPos(pos)
	lump, ok := g.lumps[lp]
	if !ok {
		lump = &Lump{}
		g.lumps[lp] = lump
	}
	lump.set(localPos(pos, lp), val)
}

// Homogeneous scans the half-open box and reports the unified voxel if
// every voxel in it unifies under Unify, or ok=false otherwise. This is
// a building block for the BSP compiler, not a hot path.
func (g *VoxelGrid) Homogeneous(box Boxi) (Voxel, bool) {
	if box.Empty() {
		return Empty, true
	}
	acc := Wildcard
	for z := box.Min.Z; z < box.Max.Z; z++ {
		for y := box.Min.Y; y < box.Max.Y; y++ {
			for x := box.Min.X; x < box.Max.X; x++ {
				v := g.Get(Vec3i{x, y, z})
				u, ok := Unify(acc, v)
				if !ok {
					return 0, false
				}
				acc = u
			}
		}
	}
	return acc, true
}

// Finger is a cursor over a VoxelGrid that caches the current lump
// pointer, making neighbor walks O(1) in the common case (same-lump
// shift) instead of a full map lookup per step. It borrows the grid
// immutably and must not outlive it.
type Finger struct {
	grid    *VoxelGrid
	lump    *Lump // nil if the current lump position has no allocated lump
	lumpPos Vec3i
	pos     Vec3i
}

// FingerAt returns a cursor positioned at pos.
func (g *VoxelGrid) FingerAt(pos Vec3i) Finger {
	lp := lumpPos(pos)
	return Finger{grid: g, lump: g.lumps[lp], lumpPos: lp, pos: pos}
}

// Pos returns the finger's current absolute position.
func (f Finger) Pos() Vec3i { return f.pos }

// Voxel returns the voxel at the finger's current position.
func (f Finger) Voxel() Voxel {
	if f.lump == nil {
		return Empty
	}
	return f.lump.get(localPos(f.pos, f.lumpPos))
}

// Shift returns a fresh cursor at pos+delta. If the new position stays
// within the same lump, the cached lump pointer is reused with no map
// lookup; otherwise one lookup is performed.
func (f Finger) Shift(delta Vec3i) Finger {
	newPos := f.pos.Add(delta)
	newLumpPos := lumpPos(newPos)
	if newLumpPos == f.lumpPos {
		return Finger{grid: f.grid, lump: f.lump, lumpPos: f.lumpPos, pos: newPos}
	}
	return Finger{grid: f.grid, lump: f.grid.lumps[newLumpPos], lumpPos: newLumpPos, pos: newPos}
}

// ShiftAxis is Shift specialized to a single-axis step, the common case
// for neighbor walks.
func (f Finger) ShiftAxis(axis, delta int) Finger {
	var d Vec3i
	d = d.WithAxis(axis, delta)
	return f.Shift(d)
}
