package bvh

import (
	"testing"

	"github.com/gekko3d/voxcore/voxelrt/rt/core"
	"github.com/gekko3d/voxcore/voxelrt/rt/voxel"
	"github.com/go-gl/mathgl/mgl32"
)

func buildTestPrimitive(t *testing.T, offsetX float32, voxelID voxel.Voxel) voxel.Primitive {
	t.Helper()
	g := voxel.NewVoxelGrid()
	g.Set(voxel.Vec3i{2, 2, 2}, voxelID)
	root := voxel.Boxi{Min: voxel.Vec3i{0, 0, 0}, Max: voxel.Vec3i{4, 4, 4}}
	transform := core.NewTransform()
	transform.Position = mgl32.Vec3{offsetX, 0, 0}
	prim, err := voxel.NewVoxelGridPrimitive(g, root, transform)
	if err != nil {
		t.Fatalf("NewVoxelGridPrimitive: %v", err)
	}
	return prim
}

func TestSceneIntersectFindsNearestAcrossPrimitives(t *testing.T) {
	near := buildTestPrimitive(t, 0, 10)
	far := buildTestPrimitive(t, 100, 20)

	scene := BuildScene([]voxel.Primitive{far, near})

	ray := voxel.RayWorld{Orig: mgl32.Vec3{2.5, 2.5, -10}, Dir: mgl32.Vec3{0, 0, 1}, TMin: 0, TMax: 1000}
	hit, ok := scene.Intersect(ray)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if hit.Voxel != 10 {
		t.Fatalf("expected the nearer primitive's voxel (10), got %v", hit.Voxel)
	}
}

func TestSceneIntersectPAcrossPrimitives(t *testing.T) {
	a := buildTestPrimitive(t, 0, 1)
	b := buildTestPrimitive(t, 100, 2)
	scene := BuildScene([]voxel.Primitive{a, b})

	hitRay := voxel.RayWorld{Orig: mgl32.Vec3{102.5, 2.5, -10}, Dir: mgl32.Vec3{0, 0, 1}, TMin: 0, TMax: 1000}
	if !scene.IntersectP(hitRay) {
		t.Fatalf("expected occlusion from the far primitive")
	}

	missRay := voxel.RayWorld{Orig: mgl32.Vec3{50, 50, -10}, Dir: mgl32.Vec3{0, 0, 1}, TMin: 0, TMax: 1000}
	if scene.IntersectP(missRay) {
		t.Fatalf("expected no occlusion between primitives")
	}
}

func TestSceneWithNoPrimitivesNeverHits(t *testing.T) {
	scene := BuildScene(nil)
	ray := voxel.RayWorld{Orig: mgl32.Vec3{0, 0, -10}, Dir: mgl32.Vec3{0, 0, 1}, TMin: 0, TMax: 1000}
	if _, ok := scene.Intersect(ray); ok {
		t.Fatalf("an empty scene must never report a hit")
	}
	if scene.IntersectP(ray) {
		t.Fatalf("an empty scene must never report occlusion")
	}
}
