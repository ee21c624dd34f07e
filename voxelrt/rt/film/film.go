package film

import "github.com/google/uuid"

// Spectrum is a 3-channel linear RGB radiance value.
type Spectrum [3]float32

// Add returns the component-wise sum of s and o.
func (s Spectrum) Add(o Spectrum) Spectrum {
	return Spectrum{s[0] + o[0], s[1] + o[1], s[2] + o[2]}
}

// Scale returns s scaled by k.
func (s Spectrum) Scale(k float32) Spectrum {
	return Spectrum{s[0] * k, s[1] * k, s[2] * k}
}

// Filter is the minimal reconstruction-filter contract a pixel's
// accumulated samples are weighed through when read out of an
// AtomicFilm (spec.md §4.4 "into_film(filter)"). A filter only needs to
// report the per-sample weight at an offset (dx, dy) from the pixel
// center, in pixels.
type Filter interface {
	Weight(dx, dy float32) float32
	Radius() float32
}

// BoxFilter is the trivial filter: every sample within its radius
// contributes equal weight 1; anything farther than R on either axis
// gets weight 0.
type BoxFilter struct{ R float32 }

func (f BoxFilter) Weight(dx, dy float32) float32 {
	if dx < -f.R || dx > f.R || dy < -f.R || dy > f.R {
		return 0
	}
	return 1
}
func (f BoxFilter) Radius() float32 { return f.R }

// pixel holds one cell's accumulated weighted radiance and weight sum,
// the plain (non-atomic) per-pixel state both Film and the result of
// AtomicFilm.IntoFilm share.
type pixel struct {
	Sum    Spectrum
	Weight float32
}

// Film is the plain, single-threaded accumulator a filter reconstructs
// a final image into: AddSample splats a filtered sample into every
// pixel within the filter's radius (spec.md §4.4).
type Film struct {
	id            uuid.UUID
	width, height int
	pixels        []pixel
}

// NewFilm allocates a width-by-height film, all pixels black.
func NewFilm(width, height int) *Film {
	return &Film{
		id:     uuid.New(),
		width:  width,
		height: height,
		pixels: make([]pixel, width*height),
	}
}

// ID returns the film's stable identity, for drivers keying
// per-film statistics or caches across frames.
func (f *Film) ID() uuid.UUID { return f.id }

func (f *Film) Width() int  { return f.width }
func (f *Film) Height() int { return f.height }

// AddSample splats a radiance sample at continuous film position
// (px, py) through filter, weighing its contribution into every pixel
// within filter.Radius() of the sample.
func (f *Film) AddSample(px, py float32, radiance Spectrum, filter Filter) {
	r := filter.Radius()
	x0, x1 := clampRange(px-r, px+r, f.width)
	y0, y1 := clampRange(py-r, py+r, f.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := (float32(x) + 0.5) - px
			dy := (float32(y) + 0.5) - py
			w := filter.Weight(dx, dy)
			if w == 0 {
				continue
			}
			idx := y*f.width + x
			f.pixels[idx].Sum = f.pixels[idx].Sum.Add(radiance.Scale(w))
			f.pixels[idx].Weight += w
		}
	}
}

// At returns the reconstructed (weight-normalized) color at (x, y); a
// never-touched pixel reads as black.
func (f *Film) At(x, y int) Spectrum {
	p := f.pixels[y*f.width+x]
	if p.Weight == 0 {
		return Spectrum{}
	}
	return p.Sum.Scale(1 / p.Weight)
}

func clampRange(lo, hi float32, size int) (int, int) {
	l := int(lo)
	h := int(hi) + 1
	if l < 0 {
		l = 0
	}
	if h > size {
		h = size
	}
	if l > h {
		l = h
	}
	return l, h
}
