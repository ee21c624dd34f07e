// Command voxrender is a minimal end-to-end demonstration driver: it
// compiles a small voxel grid into a BSP, fires stratified samples
// through a pinhole camera, merges the result into an atomic film, and
// writes a PNG — wiring the voxel, sampler, and film cores together the
// way the teacher's own voxelrt/rt_main.go wires its GPU pipeline
// together for a live demo, but purely on the CPU.
package main

import (
	"flag"
	"math/rand"
	"os"

	gekko "github.com/gekko3d/voxcore"
	"github.com/gekko3d/voxcore/voxelrt/rt/film"
	"github.com/gekko3d/voxcore/voxelrt/rt/sampler"
	"github.com/gekko3d/voxcore/voxelrt/rt/voxel"
	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	width := flag.Int("width", 128, "output image width in pixels")
	height := flag.Int("height", 128, "output image height in pixels")
	spp := flag.Int("spp", 4, "samples per pixel (must be a perfect square)")
	out := flag.String("out", "voxrender.png", "output PNG path")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := gekko.NewDefaultLogger("voxrender", *debug)

	grid, root := buildDemoGrid(8)
	prim, err := voxel.NewVoxelGridPrimitive(grid, root, nil)
	if err != nil {
		logger.Errorf("compiling BSP: %v", err)
		os.Exit(1)
	}
	logger.Infof("compiled BSP over root box %v", root)

	img, err := render(prim, *width, *height, *spp, logger)
	if err != nil {
		logger.Errorf("render: %v", err)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		logger.Errorf("creating %s: %v", *out, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := img.WritePNG(f, nil, 0, 0); err != nil {
		logger.Errorf("writing PNG: %v", err)
		os.Exit(1)
	}
	logger.Infof("wrote %s (%dx%d, %d spp)", *out, *width, *height, *spp)
}

// render fires spp stratified samples per pixel through prim (spp is
// rounded up to the next perfect square) and returns the reconstructed
// film.
func render(prim voxel.Primitive, width, height, spp int, logger gekko.Logger) (*film.Film, error) {
	side := 1
	for side*side < spp {
		side++
	}
	spp = side * side

	atomicFilm := film.NewAtomicFilm(width, height)
	eye := mgl32.Vec3{8, 8, -24}
	const halfFovY = 0.6
	aspect := float32(width) / float32(height)

	for py := 0; py < height; py++ {
		s := sampler.NewStratifiedSampler(side, side, 0, 1, true, rand.New(rand.NewSource(int64(py)+1)))
		for px := 0; px < width; px++ {
			s.StartPixel(px, py)
			tile := film.NewTile(px, py, px+1, py+1)
			for s.StartPixelSample() {
				jx, jy := s.Get2D()
				ndcX := (float32(px)+jx)/float32(width)*2 - 1
				ndcY := 1 - (float32(py)+jy)/float32(height)*2
				orig, dir := pinholeRay(eye, ndcX, ndcY, halfFovY, aspect)
				ray := voxel.RayWorld{Orig: orig, Dir: dir, TMin: 0, TMax: 1000}

				var c film.Spectrum
				if hit, ok := prim.Intersect(ray); ok {
					r, g, b := demoPalette(hit.Voxel)
					lightDir := mgl32.Vec3{0.4, 0.7, -0.6}.Normalize()
					nDotL := hit.Normal.Dot(lightDir)
					if nDotL < 0 {
						nDotL = 0
					}
					shade := float32(0.25) + 0.75*nDotL
					c = film.Spectrum{r * shade, g * shade, b * shade}
				} else {
					c = film.Spectrum{0.05, 0.06, 0.09}
				}
				tile.AddSample(px, py, c, 1)
			}
			atomicFilm.AddTile(tile)
		}
		if logger != nil && logger.DebugEnabled() {
			logger.Debugf("rendered row %d/%d", py+1, height)
		}
	}

	return atomicFilm.IntoFilm(film.BoxFilter{R: 1}), nil
}
