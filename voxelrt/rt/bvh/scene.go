package bvh

import (
	"math"

	"github.com/gekko3d/voxcore/voxelrt/rt/voxel"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene is a scene-level top-level acceleration structure over any
// number of voxel.Primitive instances (typically one VoxelGridPrimitive
// per voxel object a driver hosts), built from the same median-split
// TLASBuilder the teacher uses for its GPU-bound scene index, but
// walked directly on the CPU against Primitive.Intersect/IntersectP
// instead of serialized for a shader.
type Scene struct {
	prims []voxel.Primitive
	nodes []BVHNode
}

// BuildScene indexes prims by their reported Bounds().
func BuildScene(prims []voxel.Primitive) *Scene {
	aabbs := make([][2]mgl32.Vec3, len(prims))
	for i, p := range prims {
		min, max := p.Bounds()
		aabbs[i] = [2]mgl32.Vec3{min, max}
	}
	b := &TLASBuilder{}
	return &Scene{prims: prims, nodes: b.BuildNodes(aabbs)}
}

// Intersect reports the nearest surface any hosted primitive's
// Intersect reports, or false if none is hit.
func (s *Scene) Intersect(ray voxel.RayWorld) (voxel.Intersection, bool) {
	if len(s.prims) == 0 {
		return voxel.Intersection{}, false
	}
	best := voxel.Intersection{}
	found := false
	s.walk(0, ray, func(prim voxel.Primitive) {
		hit, ok := prim.Intersect(ray)
		if !ok {
			return
		}
		if !found || hit.THit < best.THit {
			best, found = hit, true
			ray.TMax = hit.THit // shrink the search as closer hits are found
		}
	})
	return best, found
}

// IntersectP reports whether any hosted primitive occludes ray.
func (s *Scene) IntersectP(ray voxel.RayWorld) bool {
	if len(s.prims) == 0 {
		return false
	}
	occluded := false
	s.walk(0, ray, func(prim voxel.Primitive) {
		if occluded {
			return
		}
		if prim.IntersectP(ray) {
			occluded = true
		}
	})
	return occluded
}

func (s *Scene) walk(nodeIdx int32, ray voxel.RayWorld, visit func(voxel.Primitive)) {
	if nodeIdx < 0 || int(nodeIdx) >= len(s.nodes) {
		return
	}
	node := &s.nodes[nodeIdx]
	if !rayAABBHit(node.Min, node.Max, ray) {
		return
	}
	if node.LeafCount > 0 {
		for i := int32(0); i < node.LeafCount; i++ {
			visit(s.prims[node.LeafFirst+i])
		}
		return
	}
	s.walk(node.Left, ray, visit)
	s.walk(node.Right, ray, visit)
}

// rayAABBHit is a plain float slab test against a scene-level node AABB,
// the float-space counterpart to voxel.SlabIntersect's integer-box test.
func rayAABBHit(boxMin, boxMax mgl32.Vec3, ray voxel.RayWorld) bool {
	tMin, tMax := ray.TMin, ray.TMax
	for axis := 0; axis < 3; axis++ {
		d := ray.Dir[axis]
		if d == 0 {
			if ray.Orig[axis] < boxMin[axis] || ray.Orig[axis] > boxMax[axis] {
				return false
			}
			continue
		}
		invD := 1 / d
		t1 := (boxMin[axis] - ray.Orig[axis]) * invD
		t2 := (boxMax[axis] - ray.Orig[axis]) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = float32(math.Max(float64(tMin), float64(t1)))
		tMax = float32(math.Min(float64(tMax), float64(t2)))
		if tMin > tMax {
			return false
		}
	}
	return true
}
