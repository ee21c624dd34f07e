package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RayV is a ray in voxel space with its per-ray precomputed terms.
type RayV struct {
	Orig, Dir, DirInv mgl32.Vec3
	TMin, TMax        float32
	DirIsNeg          [3]bool
	dirIsZero         [3]bool
}

// NewRayV precomputes dir_inv and dir_is_neg for a voxel-space ray.
// A zero direction component is treated as not intersecting that axis'
// slab (spec.md §4.3 numerical policy): DirInv is set to +Inf so any
// arithmetic degrades gracefully, but callers must consult dirIsZero
// (via the degenerate-axis handling in slab tests) rather than rely on
// IEEE semantics alone.
func NewRayV(orig, dir mgl32.Vec3, tMin, tMax float32) RayV {
	r := RayV{Orig: orig, Dir: dir, TMin: tMin, TMax: tMax}
	for i := 0; i < 3; i++ {
		d := dir[i]
		if d == 0 {
			r.dirIsZero[i] = true
			r.DirInv[i] = float32(math.Inf(1))
			r.DirIsNeg[i] = false
			continue
		}
		r.DirInv[i] = 1 / d
		r.DirIsNeg[i] = d < 0
	}
	return r
}

// PointAt evaluates the ray at parameter t.
func (r RayV) PointAt(t float32) mgl32.Vec3 {
	return r.Orig.Add(r.Dir.Mul(t))
}

// Normal returns the unit outward normal for a surface crossing on the
// given axis, oriented per the surfaceNeg convention (surfaceNeg equals
// the ray's own DirIsNeg[axis] at the crossing, per spec.md §4.3).
func Normal(axis int, surfaceNeg bool) mgl32.Vec3 {
	var n mgl32.Vec3
	if surfaceNeg {
		n[axis] = 1
	} else {
		n[axis] = -1
	}
	return n
}

// RayEntry describes where and how a ray enters (or exits) a box:
// the hit point, the ray parameter, whether the point lies on an actual
// box face (as opposed to the ray's own clipped t-range), and which
// axis/orientation that face has.
type RayEntry struct {
	PHit        mgl32.Vec3
	THit        float32
	OnSurface   bool
	SurfaceAxis int
	SurfaceNeg  bool
}

// SlabIntersect performs the root/per-node slab test of ray against box,
// returning the entry and exit records and whether the ray intersects
// box's [TMin, TMax] span at all.
func SlabIntersect(box Boxi, ray RayV) (entry, exit RayEntry, hit bool) {
	tEntry, tExit := ray.TMin, ray.TMax
	entryAxis, exitAxis := -1, -1

	for axis := 0; axis < 3; axis++ {
		if ray.dirIsZero[axis] {
			o := ray.Orig[axis]
			if o < float32(box.Min.Axis(axis)) || o >= float32(box.Max.Axis(axis)) {
				return RayEntry{}, RayEntry{}, false
			}
			continue
		}
		t1 := (float32(box.Min.Axis(axis)) - ray.Orig[axis]) * ray.DirInv[axis]
		t2 := (float32(box.Max.Axis(axis)) - ray.Orig[axis]) * ray.DirInv[axis]
		near, far := t1, t2
		if near > far {
			near, far = far, near
		}
		if near > tEntry {
			tEntry = near
			entryAxis = axis
		}
		if far < tExit {
			tExit = far
			exitAxis = axis
		}
	}

	if tEntry > tExit {
		return RayEntry{}, RayEntry{}, false
	}

	entry = RayEntry{
		PHit:        ray.PointAt(tEntry),
		THit:        tEntry,
		OnSurface:   entryAxis >= 0,
		SurfaceAxis: max(entryAxis, 0),
		SurfaceNeg:  entryAxis >= 0 && ray.DirIsNeg[entryAxis],
	}
	exit = RayEntry{
		PHit:        ray.PointAt(tExit),
		THit:        tExit,
		OnSurface:   exitAxis >= 0,
		SurfaceAxis: max(exitAxis, 0),
		SurfaceNeg:  exitAxis >= 0 && ray.DirIsNeg[exitAxis],
	}
	return entry, exit, true
}
