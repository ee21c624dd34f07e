package voxel

import (
	"github.com/gekko3d/voxcore/voxelrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

// RayWorld is a ray expressed in the enclosing frame (world space).
type RayWorld struct {
	Orig, Dir  mgl32.Vec3
	TMin, TMax float32
}

// Intersection is the result of a successful Primitive.Intersect call.
type Intersection struct {
	THit   float32
	Point  mgl32.Vec3
	Normal mgl32.Vec3
	// Voxel is the opaque per-voxel material/light handle; resolving it
	// into shading data is the collaborating renderer's concern.
	Voxel Voxel
}

// Primitive is the contract the BSP (and any other acceleration
// structure) offers to the rest of the renderer (spec.md §6).
type Primitive interface {
	Intersect(ray RayWorld) (Intersection, bool)
	IntersectP(ray RayWorld) bool
	Bounds() (min, max mgl32.Vec3)
}

// VoxelGridPrimitive holds a compiled, immutable BSP tree over a voxel
// grid's root box, plus the transform from voxel space into the
// enclosing frame.
type VoxelGridPrimitive struct {
	root      Boxi
	nodes     []Node
	transform *core.Transform
	// rootIsLeaf/rootVoxel carry CompileBSP's collapsed-root case: a
	// wholly homogeneous grid compiles to zero nodes, so Intersect and
	// IntersectP must answer from these instead of walking a tree.
	rootIsLeaf bool
	rootVoxel  Voxel
}

// NewVoxelGridPrimitive compiles grid over root and wraps it with
// transform (nil is treated as identity).
func NewVoxelGridPrimitive(grid *VoxelGrid, root Boxi, transform *core.Transform) (*VoxelGridPrimitive, error) {
	nodes, rootIsLeaf, rootVoxel, err := CompileBSP(grid, root)
	if err != nil {
		return nil, err
	}
	if transform == nil {
		transform = core.NewTransform()
	}
	return &VoxelGridPrimitive{
		root:       root,
		nodes:      nodes,
		transform:  transform,
		rootIsLeaf: rootIsLeaf,
		rootVoxel:  rootVoxel,
	}, nil
}

// RootBox returns the voxel-space root box the tree was compiled over.
func (p *VoxelGridPrimitive) RootBox() Boxi { return p.root }

// Nodes returns the compiled node array (root at index 0), read-only.
func (p *VoxelGridPrimitive) Nodes() []Node { return p.nodes }

func (p *VoxelGridPrimitive) toVoxelSpace(ray RayWorld) RayV {
	w2o := p.transform.WorldToObject()
	orig := w2o.Mul4x1(ray.Orig.Vec4(1)).Vec3()
	dir := w2o.Mul4x1(ray.Dir.Vec4(0)).Vec3()
	return NewRayV(orig, dir, ray.TMin, ray.TMax)
}

func (p *VoxelGridPrimitive) rootBoxF() (mgl32.Vec3, mgl32.Vec3) {
	return mgl32.Vec3{float32(p.root.Min.X), float32(p.root.Min.Y), float32(p.root.Min.Z)},
		mgl32.Vec3{float32(p.root.Max.X), float32(p.root.Max.Y), float32(p.root.Max.Z)}
}

// Intersect reports the first surface the ray crosses, if any.
func (p *VoxelGridPrimitive) Intersect(ray RayWorld) (Intersection, bool) {
	rv := p.toVoxelSpace(ray)
	entry, exit, hit := SlabIntersect(p.root, rv)
	if !hit {
		return Intersection{}, false
	}

	if p.rootIsLeaf {
		if p.rootVoxel == Empty {
			return Intersection{}, false
		}
		return p.hitAt(entry, p.rootVoxel), true
	}

	var found bool
	var foundVoxel Voxel
	var foundEntry RayEntry
	walk(p.nodes, 0, p.root, entry, exit, rv, false, func(v Voxel, e RayEntry) Decision {
		found = true
		foundVoxel = v
		foundEntry = e
		return Stop
	})
	if !found {
		return Intersection{}, false
	}
	return p.hitAt(foundEntry, foundVoxel), true
}

// hitAt converts a voxel-space RayEntry/voxel pair into a world-space
// Intersection.
func (p *VoxelGridPrimitive) hitAt(e RayEntry, v Voxel) Intersection {
	o2w := p.transform.ObjectToWorld()
	worldPoint := o2w.Mul4x1(e.PHit.Vec4(1)).Vec3()
	localNormal := Normal(e.SurfaceAxis, e.SurfaceNeg)
	worldNormal := o2w.Mul4x1(localNormal.Vec4(0)).Vec3().Normalize()

	return Intersection{
		THit:   e.THit,
		Point:  worldPoint,
		Normal: worldNormal,
		Voxel:  v,
	}
}

// IntersectP is an occlusion-only query; it may use the full-bit
// optimization to skip resolving exactly which leaf was struck.
func (p *VoxelGridPrimitive) IntersectP(ray RayWorld) bool {
	rv := p.toVoxelSpace(ray)
	entry, exit, hit := SlabIntersect(p.root, rv)
	if !hit {
		return false
	}

	if p.rootIsLeaf {
		return p.rootVoxel != Empty
	}

	found := false
	walk(p.nodes, 0, p.root, entry, exit, rv, true, func(Voxel, RayEntry) Decision {
		found = true
		return Stop
	})
	return found
}

// Bounds returns the world-space AABB of the voxel grid.
func (p *VoxelGridPrimitive) Bounds() (min, max mgl32.Vec3) {
	minV, maxV := p.rootBoxF()
	corners := [8]mgl32.Vec3{
		{minV.X(), minV.Y(), minV.Z()}, {maxV.X(), minV.Y(), minV.Z()},
		{minV.X(), maxV.Y(), minV.Z()}, {maxV.X(), maxV.Y(), minV.Z()},
		{minV.X(), minV.Y(), maxV.Z()}, {maxV.X(), minV.Y(), maxV.Z()},
		{minV.X(), maxV.Y(), maxV.Z()}, {maxV.X(), maxV.Y(), maxV.Z()},
	}
	o2w := p.transform.ObjectToWorld()
	inf := float32(1e20)
	min = mgl32.Vec3{inf, inf, inf}
	max = mgl32.Vec3{-inf, -inf, -inf}
	for _, c := range corners {
		wc := o2w.Mul4x1(c.Vec4(1)).Vec3()
		min = mgl32.Vec3{minf(min.X(), wc.X()), minf(min.Y(), wc.Y()), minf(min.Z(), wc.Z())}
		max = mgl32.Vec3{maxf(max.X(), wc.X()), maxf(max.Y(), wc.Y()), maxf(max.Z(), wc.Z())}
	}
	return min, max
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
