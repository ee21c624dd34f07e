package sampler

import (
	"math/rand"

	"github.com/gekko3d/voxcore/voxelrt/rt/mcsampling"
)

// ZeroTwoSequenceSampler draws each pixel's samples from a scrambled
// (0,2)-sequence: van der Corput in the first dimension, the XOR-folded
// Sobol generator in the second, so that for samplesPerPixel a power of
// two, every elementary dyadic box of area 1/samplesPerPixel holds
// exactly one sample (spec.md §4.5, testable property 9).
//
// Per-pixel decorrelation shuffles samples in two passes, mirroring how
// the teacher's particle pool reshuffles per-worker batches without
// touching the sub-batch layout: each requested array's per-sample
// chunk is shuffled internally, then the samplesPerPixel chunks are
// shuffled against each other as blocks. This keeps paired
// (1-D, 2-D) samples sharing index i aligned while still breaking
// correlation between adjacent pixels.
type ZeroTwoSequenceSampler struct {
	base
}

// NewZeroTwoSequenceSampler builds a sampler drawing samplesPerPixel
// low-discrepancy samples per pixel, which should be a power of two for
// the (0,2)-net guarantee to hold.
func NewZeroTwoSequenceSampler(samplesPerPixel, num1DDims, num2DDims int, rng *rand.Rand) *ZeroTwoSequenceSampler {
	return &ZeroTwoSequenceSampler{base: newBase(samplesPerPixel, num1DDims, num2DDims, rng)}
}

func (s *ZeroTwoSequenceSampler) StartPixel(x, y int) {
	n := s.samplesPerPixel
	for d := 0; d < s.num1DDims; d++ {
		vec := make([]float32, n)
		generateVanDerCorput(vec, 1, n, s.rng)
		s.samples1D[d] = vec
	}
	for d := 0; d < s.num2DDims; d++ {
		s.samples2D[d] = generateSobol2D(1, n, s.rng)
	}
	for i, sz := range s.arraySizes1D {
		generateVanDerCorput(s.sampleArray1D[i], sz, n, s.rng)
	}
	for i, sz := range s.arraySizes2D {
		s.sampleArray2D[i] = generateSobol2D(sz, n, s.rng)
	}
	s.currentPixelSampleIndex = -1
}

func (s *ZeroTwoSequenceSampler) StartPixelSample() bool { return s.startPixelSample() }
func (s *ZeroTwoSequenceSampler) Get1D() float32         { return s.get1D() }
func (s *ZeroTwoSequenceSampler) Get2D() (float32, float32) { return s.get2D() }

func (s *ZeroTwoSequenceSampler) Split(seed int64) Sampler {
	child := rand.New(rand.NewSource(childSeed(s.rng, seed)))
	return NewZeroTwoSequenceSampler(s.samplesPerPixel, s.num1DDims, s.num2DDims, child)
}

// generateVanDerCorput fills dst (nSamplesPerPixelSample*nPixelSamples
// values) with a scrambled van der Corput sequence, then shuffles each
// per-pixel-sample chunk internally before shuffling the chunks against
// each other, so a single-value request (nSamplesPerPixelSample=1)
// reduces to one whole-array shuffle.
func generateVanDerCorput(dst []float32, chunk, nPixelSamples int, rng *rand.Rand) {
	scramble := rng.Uint32()
	for i := range dst {
		dst[i] = VanDerCorput(uint32(i), scramble)
	}
	shuffleChunks(dst, chunk, 1, nPixelSamples, rng)
}

func generateSobol2D(chunk, nPixelSamples int, rng *rand.Rand) [][2]float32 {
	total := chunk * nPixelSamples
	s0, s1 := rng.Uint32(), rng.Uint32()
	flat := make([]float32, total*2)
	for i := 0; i < total; i++ {
		flat[i*2] = VanDerCorput(uint32(i), s0)
		flat[i*2+1] = Sobol2(uint32(i), s1)
	}
	shuffleChunks(flat, chunk, 2, nPixelSamples, rng)
	out := make([][2]float32, total)
	for i := range out {
		out[i] = [2]float32{flat[i*2], flat[i*2+1]}
	}
	return out
}

// shuffleChunks treats dst as nPixelSamples consecutive chunks of
// chunkSize samples, each sample elemsPerItem floats wide. It shuffles
// the samples inside each chunk (keeping each sample's floats
// together), then shuffles the nPixelSamples chunks against each other
// as blocks (pbrt's "VanDerCorput" shuffle idiom, adapted to this
// sampler's flat buffers).
func shuffleChunks(dst []float32, chunkSize, elemsPerItem, nPixelSamples int, rng *rand.Rand) {
	block := chunkSize * elemsPerItem
	for i := 0; i < nPixelSamples; i++ {
		mcsampling.Shuffle(dst[i*block:(i+1)*block], chunkSize, elemsPerItem, rng)
	}
	mcsampling.Shuffle(dst, nPixelSamples, block, rng)
}
