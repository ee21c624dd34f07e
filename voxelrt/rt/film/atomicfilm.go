package film

import "github.com/google/uuid"

type atomicPixel struct {
	Sum    AtomicSpectrum
	Weight AtomicFloat
}

// AtomicFilm is the parallel-safe accumulation target worker tiles
// merge into: AddTile is commutative (tile merge order never changes
// the result, spec.md testable property 7), and IntoFilm reconstructs
// a final plain Film by convolving the raw per-pixel sums with a
// reconstruction filter.
type AtomicFilm struct {
	id            uuid.UUID
	width, height int
	cells         []atomicPixel
}

// NewAtomicFilm allocates a width-by-height atomic accumulator, all
// cells zero.
func NewAtomicFilm(width, height int) *AtomicFilm {
	return &AtomicFilm{
		id:     uuid.New(),
		width:  width,
		height: height,
		cells:  make([]atomicPixel, width*height),
	}
}

// ID returns the film's stable identity (spec.md §9 "film identity",
// adapted from the teacher's entity-id convention).
func (f *AtomicFilm) ID() uuid.UUID { return f.id }

func (f *AtomicFilm) Width() int  { return f.width }
func (f *AtomicFilm) Height() int { return f.height }

// AddTile atomically merges tile's accumulated pixels into this film.
// Safe to call concurrently from any number of workers, each owning a
// disjoint or overlapping tile: every add is a single CAS-loop add per
// channel, so concurrent merges never lose a contribution regardless
// of interleaving. Pixels of t that fall outside the film (routine for
// edge tiles when the resolution isn't a multiple of the tile size)
// are silently dropped, mirroring Film.AddSample's clamping.
func (f *AtomicFilm) AddTile(t *Tile) {
	for y := t.Y0; y < t.Y1; y++ {
		if y < 0 || y >= f.height {
			continue
		}
		for x := t.X0; x < t.X1; x++ {
			if x < 0 || x >= f.width {
				continue
			}
			p := t.pixels[(y-t.Y0)*t.width+(x-t.X0)]
			if p.Weight == 0 {
				continue
			}
			idx := y*f.width + x
			f.cells[idx].Sum.Add(p.Sum)
			f.cells[idx].Weight.Add(p.Weight)
		}
	}
}

// IntoFilm reconstructs a final plain Film by convolving each output
// pixel with every raw accumulated cell within filter's radius,
// weighted by filter.Weight evaluated at the integer-pixel offset.
func (f *AtomicFilm) IntoFilm(filter Filter) *Film {
	out := NewFilm(f.width, f.height)
	r := int(filter.Radius())
	if r < 1 {
		r = 1
	}
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			var sum Spectrum
			var wsum float32
			for ny := y - r; ny <= y+r; ny++ {
				if ny < 0 || ny >= f.height {
					continue
				}
				for nx := x - r; nx <= x+r; nx++ {
					if nx < 0 || nx >= f.width {
						continue
					}
					cell := &f.cells[ny*f.width+nx]
					cw := cell.Weight.Load()
					if cw == 0 {
						continue
					}
					fw := filter.Weight(float32(nx-x), float32(ny-y))
					if fw == 0 {
						continue
					}
					sum = sum.Add(cell.Sum.Load().Scale(fw))
					wsum += cw * fw
				}
			}
			if wsum > 0 {
				out.pixels[y*out.width+x] = pixel{Sum: sum, Weight: wsum}
			}
		}
	}
	return out
}
