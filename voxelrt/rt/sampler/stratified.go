package sampler

import (
	"math/rand"

	"github.com/gekko3d/voxcore/voxelrt/rt/mcsampling"
)

// StratifiedSampler divides each pixel's samplesPerPixel draws into an
// nx-by-ny jittered grid for 2-D slots (and matching 1-D stratified
// bins), then shuffles each dimension's vector independently so
// adjacent samples aren't correlated across dimensions (spec.md §4.5,
// testable property 8 / scenario F).
type StratifiedSampler struct {
	base
	nx, ny int
	jitter bool
}

// NewStratifiedSampler builds a sampler drawing nx*ny samples per pixel
// (2-D slots stratified over an nx-by-ny grid, 1-D slots over nx*ny
// bins), supporting num1DDims/num2DDims distinct non-array
// random_1d/random_2d call sites. jitter=false degrades to regular grid
// sampling, useful for deterministic tests.
func NewStratifiedSampler(nx, ny, num1DDims, num2DDims int, jitter bool, rng *rand.Rand) *StratifiedSampler {
	return &StratifiedSampler{
		base:   newBase(nx*ny, num1DDims, num2DDims, rng),
		nx:     nx,
		ny:     ny,
		jitter: jitter,
	}
}

func (s *StratifiedSampler) StartPixel(x, y int) {
	n := s.samplesPerPixel
	for d := 0; d < s.num1DDims; d++ {
		vec := make([]float32, n)
		stratified1D(vec, s.jitter, s.rng)
		mcsampling.Shuffle(vec, n, 1, s.rng)
		s.samples1D[d] = vec
	}
	for d := 0; d < s.num2DDims; d++ {
		vec := stratified2D(s.nx, s.ny, s.jitter, s.rng)
		flat := flatten2D(vec)
		mcsampling.Shuffle(flat, n, 2, s.rng)
		s.samples2D[d] = unflatten2D(flat)
	}
	for i, sz := range s.arraySizes1D {
		buf := s.sampleArray1D[i]
		for samp := 0; samp < n; samp++ {
			chunk := buf[samp*sz : samp*sz+sz]
			stratified1D(chunk, s.jitter, s.rng)
			mcsampling.Shuffle(chunk, sz, 1, s.rng)
		}
	}
	for i, sz := range s.arraySizes2D {
		buf := s.sampleArray2D[i]
		for samp := 0; samp < n; samp++ {
			chunk := buf[samp*sz : samp*sz+sz]
			lhs := make([]float32, sz*2)
			mcsampling.LatinHypercube(lhs, sz, 2, s.rng)
			for k := range chunk {
				chunk[k] = [2]float32{lhs[k*2], lhs[k*2+1]}
			}
		}
	}
	s.currentPixelSampleIndex = -1
}

func (s *StratifiedSampler) StartPixelSample() bool { return s.startPixelSample() }
func (s *StratifiedSampler) Get1D() float32         { return s.get1D() }
func (s *StratifiedSampler) Get2D() (float32, float32) { return s.get2D() }

func (s *StratifiedSampler) Split(seed int64) Sampler {
	child := rand.New(rand.NewSource(childSeed(s.rng, seed)))
	return NewStratifiedSampler(s.nx, s.ny, s.num1DDims, s.num2DDims, s.jitter, child)
}

// stratified1D fills dst (length n) with jittered samples one per bin
// [i/n, (i+1)/n).
func stratified1D(dst []float32, jitter bool, rng *rand.Rand) {
	n := len(dst)
	invN := 1 / float32(n)
	for i := range dst {
		j := float32(0.5)
		if jitter {
			j = rng.Float32()
		}
		dst[i] = (float32(i) + j) * invN
	}
}

// stratified2D returns an nx*ny slice of jittered samples, one per cell
// of an nx-by-ny grid, in row-major order.
func stratified2D(nx, ny int, jitter bool, rng *rand.Rand) [][2]float32 {
	out := make([][2]float32, 0, nx*ny)
	invX, invY := 1/float32(nx), 1/float32(ny)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			jx, jy := float32(0.5), float32(0.5)
			if jitter {
				jx, jy = rng.Float32(), rng.Float32()
			}
			out = append(out, [2]float32{(float32(x) + jx) * invX, (float32(y) + jy) * invY})
		}
	}
	return out
}

func flatten2D(v [][2]float32) []float32 {
	out := make([]float32, len(v)*2)
	for i, p := range v {
		out[i*2], out[i*2+1] = p[0], p[1]
	}
	return out
}

func unflatten2D(flat []float32) [][2]float32 {
	out := make([][2]float32, len(flat)/2)
	for i := range out {
		out[i] = [2]float32{flat[i*2], flat[i*2+1]}
	}
	return out
}
