// Package mcsampling provides the Monte-Carlo sampling primitives the
// voxel traversal's callers need to turn uniform [0,1) samples into
// directions/points over common domains, plus the shuffles the sampler
// package uses to decorrelate stratified and Latin-hypercube samples.
package mcsampling

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformSampleHemisphere maps u in [0,1)^2 to a direction uniformly
// distributed over the unit hemisphere around +Z.
func UniformSampleHemisphere(u [2]float32) mgl32.Vec3 {
	z := u[0]
	r := float32(math.Sqrt(math.Max(0, float64(1-z*z))))
	phi := 2 * math.Pi * float64(u[1])
	return mgl32.Vec3{r * float32(math.Cos(phi)), r * float32(math.Sin(phi)), z}
}

// UniformHemispherePdf is the area-measure pdf of UniformSampleHemisphere
// (constant over the hemisphere).
func UniformHemispherePdf() float32 {
	return float32(1 / (2 * math.Pi))
}

// UniformSampleSphere maps u in [0,1)^2 to a direction uniformly
// distributed over the full unit sphere.
func UniformSampleSphere(u [2]float32) mgl32.Vec3 {
	z := 1 - 2*u[0]
	r := float32(math.Sqrt(math.Max(0, float64(1-z*z))))
	phi := 2 * math.Pi * float64(u[1])
	return mgl32.Vec3{r * float32(math.Cos(phi)), r * float32(math.Sin(phi)), z}
}

// UniformSpherePdf is the area-measure pdf of UniformSampleSphere.
func UniformSpherePdf() float32 {
	return float32(1 / (4 * math.Pi))
}

// ConcentricSampleDisk maps u in [0,1)^2 to a point on the unit disk
// using Shirley's concentric mapping (avoids the polar map's density
// distortion near the origin).
func ConcentricSampleDisk(u [2]float32) (x, y float32) {
	ox := 2*u[0] - 1
	oy := 2*u[1] - 1
	if ox == 0 && oy == 0 {
		return 0, 0
	}
	var r, theta float32
	if float32(math.Abs(float64(ox))) > float32(math.Abs(float64(oy))) {
		r = ox
		theta = (math.Pi / 4) * (oy / ox)
	} else {
		r = oy
		theta = (math.Pi / 2) - (math.Pi/4)*(ox/oy)
	}
	return r * float32(math.Cos(float64(theta))), r * float32(math.Sin(float64(theta)))
}

// CosineSampleHemisphere maps u in [0,1)^2 to a direction around +Z
// distributed proportionally to cos(theta), via Malley's method: lift a
// concentric disk sample onto the hemisphere.
func CosineSampleHemisphere(u [2]float32) mgl32.Vec3 {
	x, y := ConcentricSampleDisk(u)
	z := float32(math.Sqrt(math.Max(0, float64(1-x*x-y*y))))
	return mgl32.Vec3{x, y, z}
}

// CosineHemispherePdf is the pdf of CosineSampleHemisphere at the given
// cosine of the angle from +Z.
func CosineHemispherePdf(cosTheta float32) float32 {
	return cosTheta / math.Pi
}

// SampleCone maps u in [0,1)^2 to a direction within an axis-aligned
// cone of the given half-angle, styled after the teacher's
// sampleDirectionRng cone-sampling idiom (spread around +Z here; the
// caller rotates into the cone's actual axis).
func SampleCone(u [2]float32, cosThetaMax float32) mgl32.Vec3 {
	cosTheta := (1 - u[0]) + u[0]*cosThetaMax
	sinTheta := float32(math.Sqrt(math.Max(0, float64(1-cosTheta*cosTheta))))
	phi := 2 * math.Pi * float64(u[1])
	return mgl32.Vec3{
		sinTheta * float32(math.Cos(phi)),
		sinTheta * float32(math.Sin(phi)),
		cosTheta,
	}
}

// UniformConePdf is the solid-angle pdf of SampleCone.
func UniformConePdf(cosThetaMax float32) float32 {
	return 1 / (2 * math.Pi * (1 - cosThetaMax))
}

// LatinHypercube fills samples (n points of dim dimensions, laid out
// row-major n*dim) with a Latin hypercube pattern: stratify each
// dimension independently into n cells, then permute each dimension's
// cell assignment independently so the n points' projections onto every
// axis are a single sample per stratum.
func LatinHypercube(samples []float32, n, dim int, rng *rand.Rand) {
	if len(samples) != n*dim {
		panic("mcsampling: LatinHypercube size mismatch")
	}
	invN := 1 / float32(n)
	for i := 0; i < n; i++ {
		for d := 0; d < dim; d++ {
			samples[i*dim+d] = (float32(i) + rng.Float32()) * invN
		}
	}
	for d := 0; d < dim; d++ {
		for i := n - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			samples[i*dim+d], samples[j*dim+d] = samples[j*dim+d], samples[i*dim+d]
		}
	}
}

// Shuffle permutes the n blocks of elemsPerItem contiguous floats each
// (Fisher-Yates), used both to decorrelate stratified 1-D slots and to
// shuffle (0,2)-sequence chunks.
func Shuffle(items []float32, n, elemsPerItem int, rng *rand.Rand) {
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		for k := 0; k < elemsPerItem; k++ {
			ii, jj := i*elemsPerItem+k, j*elemsPerItem+k
			items[ii], items[jj] = items[jj], items[ii]
		}
	}
}
