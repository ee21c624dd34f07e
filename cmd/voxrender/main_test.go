package main

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/gekko3d/voxcore/voxelrt/rt/voxel"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestBuildDemoGridIsNonEmpty(t *testing.T) {
	grid, root := buildDemoGrid(4)
	found := false
	for z := root.Min.Z; z < root.Max.Z && !found; z++ {
		for y := root.Min.Y; y < root.Max.Y && !found; y++ {
			for x := root.Min.X; x < root.Max.X && !found; x++ {
				if grid.Get(voxel.Vec3i{X: x, Y: y, Z: z}) != voxel.Empty {
					found = true
				}
			}
		}
	}
	require.True(t, found, "demo grid must contain at least one solid voxel")
}

func TestRenderProducesADecodablePNG(t *testing.T) {
	grid, root := buildDemoGrid(4)
	prim, err := voxel.NewVoxelGridPrimitive(grid, root, nil)
	require.NoError(t, err)

	f, err := render(prim, 16, 16, 1, nil)
	require.NoError(t, err)
	require.Equal(t, 16, f.Width())
	require.Equal(t, 16, f.Height())

	var buf bytes.Buffer
	require.NoError(t, f.WritePNG(&buf, nil, 0, 0))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 16, img.Bounds().Dx())
	require.Equal(t, 16, img.Bounds().Dy())
}

func TestRenderHitsSomethingNearCenterOfSphere(t *testing.T) {
	radius := 8
	grid, root := buildDemoGrid(radius)
	prim, err := voxel.NewVoxelGridPrimitive(grid, root, nil)
	require.NoError(t, err)

	center := float32(radius)
	ray := voxel.RayWorld{
		Orig: mgl32.Vec3{center, center, -100},
		Dir:  mgl32.Vec3{0, 0, 1},
		TMin: 0,
		TMax: 1000,
	}
	_, ok := prim.Intersect(ray)
	require.True(t, ok, "a ray through the sphere's center must hit")
}
