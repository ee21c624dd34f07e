// Package sampler implements the stratified and (0,2)-sequence sampler
// substrate that feeds Monte-Carlo path samples to the ray-BSP
// traversal: per-pixel lifecycles, per-request sample arrays, and
// deterministic per-worker RNG splitting (spec.md §4.5).
package sampler

import "math/rand"

// Sampler is the contract integrators drive: one call to StartPixel per
// pixel, one call to StartPixelSample per sample within that pixel
// (returns false once samplesPerPixel samples have been drawn), then
// Get1D/Get2D/GetArray1D/GetArray2D to read the current sample's values.
type Sampler interface {
	StartPixel(x, y int)
	StartPixelSample() bool
	Get1D() float32
	Get2D() (float32, float32)
	RequestArray1D(n int) int
	RequestArray2D(n int) int
	GetArray1D(idx int) []float32
	GetArray2D(idx int) [][2]float32
	SamplesPerPixel() int
	// Split returns an independent sampler for a worker thread, with a
	// child RNG deterministically derived from seed (§4.5, §9).
	Split(seed int64) Sampler
}

// base holds the state shared by StratifiedSampler and
// ZeroTwoSequenceSampler: the fixed samples-per-pixel count, the
// per-worker RNG, the current-sample 1D/2D slot vectors and their read
// cursors, and the per-request sample arrays (spec.md §3 "Sampler
// state").
type base struct {
	samplesPerPixel int
	num1DDims       int
	num2DDims       int
	rng             *rand.Rand

	currentPixelSampleIndex int // -1 before the first StartPixelSample call

	samples1D [][]float32    // [dim][sampleIndex], len samplesPerPixel each
	samples2D [][][2]float32 // [dim][sampleIndex]
	current1D int
	current2D int

	arraySizes1D  []int
	arraySizes2D  []int
	sampleArray1D [][]float32    // [reqIdx][sampleIndex*n : sampleIndex*n+n]
	sampleArray2D [][][2]float32
}

func newBase(samplesPerPixel, num1DDims, num2DDims int, rng *rand.Rand) base {
	return base{
		samplesPerPixel:         samplesPerPixel,
		num1DDims:               num1DDims,
		num2DDims:               num2DDims,
		rng:                     rng,
		currentPixelSampleIndex: -1,
		samples1D:               make([][]float32, num1DDims),
		samples2D:               make([][][2]float32, num2DDims),
	}
}

func (b *base) SamplesPerPixel() int { return b.samplesPerPixel }

func (b *base) RequestArray1D(n int) int {
	b.arraySizes1D = append(b.arraySizes1D, n)
	b.sampleArray1D = append(b.sampleArray1D, make([]float32, n*b.samplesPerPixel))
	return len(b.arraySizes1D) - 1
}

func (b *base) RequestArray2D(n int) int {
	b.arraySizes2D = append(b.arraySizes2D, n)
	b.sampleArray2D = append(b.sampleArray2D, make([][2]float32, n*b.samplesPerPixel))
	return len(b.arraySizes2D) - 1
}

func (b *base) GetArray1D(idx int) []float32 {
	n := b.arraySizes1D[idx]
	start := b.currentPixelSampleIndex * n
	return b.sampleArray1D[idx][start : start+n]
}

func (b *base) GetArray2D(idx int) [][2]float32 {
	n := b.arraySizes2D[idx]
	start := b.currentPixelSampleIndex * n
	return b.sampleArray2D[idx][start : start+n]
}

// startPixelSample advances the shared cursor; returns false once every
// sample for the pixel has been drawn.
func (b *base) startPixelSample() bool {
	b.currentPixelSampleIndex++
	b.current1D = 0
	b.current2D = 0
	return b.currentPixelSampleIndex < b.samplesPerPixel
}

func (b *base) get1D() float32 {
	if b.current1D < len(b.samples1D) {
		v := b.samples1D[b.current1D][b.currentPixelSampleIndex]
		b.current1D++
		return v
	}
	return b.rng.Float32()
}

func (b *base) get2D() (float32, float32) {
	if b.current2D < len(b.samples2D) {
		v := b.samples2D[b.current2D][b.currentPixelSampleIndex]
		b.current2D++
		return v[0], v[1]
	}
	return b.rng.Float32(), b.rng.Float32()
}

// splitSeed is the golden-ratio multiplier the teacher's particle
// system uses to derive independent per-worker seeds from a base seed
// (particles_ecs.go: seedBase + int64(widx+1)*0x9e3779b1).
const splitSeed = 0x9e3779b1

// childSeed draws one 32-bit value from rng and mixes it with seed to
// produce a deterministic, independent child seed (spec.md §9 "Sampler
// split").
func childSeed(rng *rand.Rand, seed int64) int64 {
	draw := int64(rng.Uint32())
	return seed + draw*splitSeed
}
