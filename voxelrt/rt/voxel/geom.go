// Package voxel implements the sparse authoring grid, the compiled
// binary-space-partition tree over it, and the slab/DDA-hybrid ray
// traversal that reports the first surface a ray crosses.
package voxel

import "github.com/gekko3d/voxcore/voxelrt/rt/rtmath"

// Vec3i is an integer lattice point or extent.
type Vec3i struct {
	X, Y, Z int
}

// Add returns v+o componentwise.
func (v Vec3i) Add(o Vec3i) Vec3i {
	return Vec3i{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o componentwise.
func (v Vec3i) Sub(o Vec3i) Vec3i {
	return Vec3i{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by k componentwise.
func (v Vec3i) Scale(k int) Vec3i {
	return Vec3i{v.X * k, v.Y * k, v.Z * k}
}

// Axis returns the i-th component (0=X, 1=Y, 2=Z).
func (v Vec3i) Axis(i int) int {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// WithAxis returns a copy of v with axis i set to val.
func (v Vec3i) WithAxis(i, val int) Vec3i {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}

// FloorDiv applies rtmath.FloorDiv componentwise, used to map a voxel
// position to its owning lump coordinate.
func (v Vec3i) FloorDiv(d int) Vec3i {
	return Vec3i{rtmath.FloorDiv(v.X, d), rtmath.FloorDiv(v.Y, d), rtmath.FloorDiv(v.Z, d)}
}

// FloorMod applies rtmath.FloorMod componentwise.
func (v Vec3i) FloorMod(d int) Vec3i {
	return Vec3i{rtmath.FloorMod(v.X, d), rtmath.FloorMod(v.Y, d), rtmath.FloorMod(v.Z, d)}
}

// Boxi is a half-open axis-aligned integer box [Min, Max).
type Boxi struct {
	Min, Max Vec3i
}

// Empty reports whether the box contains no integer points.
func (b Boxi) Empty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y || b.Max.Z <= b.Min.Z
}

// Volume returns the number of integer points in b.
func (b Boxi) Volume() int {
	if b.Empty() {
		return 0
	}
	return (b.Max.X - b.Min.X) * (b.Max.Y - b.Min.Y) * (b.Max.Z - b.Min.Z)
}

// Contains reports whether p lies in the half-open box.
func (b Boxi) Contains(p Vec3i) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y &&
		p.Z >= b.Min.Z && p.Z < b.Max.Z
}

// MaxAxis returns the axis (0, 1, or 2) of the box's largest extent,
// ties resolved to the lowest axis index.
func (b Boxi) MaxAxis() int {
	ext := b.Max.Sub(b.Min)
	return rtmath.ArgMax3(ext.X, ext.Y, ext.Z)
}

// Split partitions b along axis at the integer midpoint
// mid = (Min[axis]+Max[axis])/2 (Go's truncating integer division).
// left has Max[axis]=mid; right has Min[axis]=mid.
func (b Boxi) Split(axis int) (left, right Boxi, mid int) {
	mid = (b.Min.Axis(axis) + b.Max.Axis(axis)) / 2
	left = b
	left.Max = left.Max.WithAxis(axis, mid)
	right = b
	right.Min = right.Min.WithAxis(axis, mid)
	return left, right, mid
}
