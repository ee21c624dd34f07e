package sampler

import "github.com/gekko3d/voxcore/voxelrt/rt/rtmath"

const oneOver2To32 = 2.3283064365386963e-10 // 1 / 2^32

// VanDerCorput returns the n-th value of the scrambled van der Corput
// radical-inverse sequence in base 2 (spec.md §9 "reverse_bits"):
// reverse n's bits and XOR in scramble before scaling to [0,1).
func VanDerCorput(n, scramble uint32) float32 {
	n = rtmath.ReverseBits32(n)
	n ^= scramble
	return float32(float64(n) * oneOver2To32)
}

// Sobol2 returns the n-th value of the second dimension of the Sobol
// (0,2)-sequence generator, built by XOR-folding the direction vector
// of each set bit of n (in plain binary order, not Gray-code order) into
// scramble (spec.md §9 "sobol2").
func Sobol2(n, scramble uint32) float32 {
	v := uint32(1) << 31
	for ; n != 0; n >>= 1 {
		if n&1 != 0 {
			scramble ^= v
		}
		v ^= v >> 1
	}
	return float32(float64(scramble) * oneOver2To32)
}
