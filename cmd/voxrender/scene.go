package main

import (
	"math"

	"github.com/gekko3d/voxcore/voxelrt/rt/voxel"
	"github.com/go-gl/mathgl/mgl32"
)

// buildDemoGrid fills a small sparse grid with a solid sphere at the
// centre of the box and a floor slab (the two lowest Y layers), giving the traversal something nontrivial to
// compile and walk — grounded on the teacher's own `rt_main.go`/`asset_
// procedural.go` "construct a scene worth looking at" demo convention.
func buildDemoGrid(radius int) (*voxel.VoxelGrid, voxel.Boxi) {
	g := voxel.NewVoxelGrid()
	extent := 2 * radius
	root := voxel.Boxi{Min: voxel.Vec3i{0, 0, 0}, Max: voxel.Vec3i{extent, extent, extent}}

	center := voxel.Vec3i{radius, radius, radius}
	r2 := float64(radius) * float64(radius) * 0.45 * 0.45
	for z := 0; z < extent; z++ {
		for y := 0; y < extent; y++ {
			for x := 0; x < extent; x++ {
				p := voxel.Vec3i{x, y, z}
				d := p.Sub(center)
				dist2 := float64(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
				if dist2 <= r2 {
					g.Set(p, 1)
				}
			}
		}
		for y := 0; y < 2; y++ {
			for x := 0; x < extent; x++ {
				g.Set(voxel.Vec3i{x, y, z}, 2)
			}
		}
	}
	return g, root
}

// demoPalette maps a voxel id to a base linear-RGB color for the
// driver's minimal shading model.
func demoPalette(v voxel.Voxel) (r, g, b float32) {
	switch v {
	case 1:
		return 0.8, 0.3, 0.25
	case 2:
		return 0.3, 0.5, 0.3
	default:
		return 0.6, 0.6, 0.6
	}
}

// pinholeRay builds a world-space ray through normalized device
// coordinates (ndcX, ndcY in [-1,1]) for a simple axis-aligned pinhole
// camera looking down +Z from eye, with the given vertical half-field-
// of-view in radians and aspect ratio width/height.
func pinholeRay(eye mgl32.Vec3, ndcX, ndcY, halfFovY, aspect float32) (orig, dir mgl32.Vec3) {
	tanFov := float32(math.Tan(float64(halfFovY)))
	dir = mgl32.Vec3{ndcX * tanFov * aspect, ndcY * tanFov, 1}.Normalize()
	return eye, dir
}
