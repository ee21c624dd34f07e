package film

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
)

// toneMap clamps and gamma-corrects a linear radiance value into
// [0,255], a minimal Reinhard-free debug tonemap (not meant to be
// physically accurate, just visualize the accumulator).
func toneMap(v float32) uint8 {
	if v < 0 {
		v = 0
	}
	g := float32(math.Pow(float64(v), 1/2.2))
	if g > 1 {
		g = 1
	}
	return uint8(g*255 + 0.5)
}

func (f *Film) toImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: toneMap(c[0]),
				G: toneMap(c[1]),
				B: toneMap(c[2]),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG writes the full-resolution tonemapped image to full, and (if
// thumbW/thumbH are both > 0) a nearest-neighbor-resized preview to
// thumb, mirroring the teacher's debug-dump-alongside-full-output
// pattern.
func (f *Film) WritePNG(full io.Writer, thumb io.Writer, thumbW, thumbH int) error {
	img := f.toImage()
	if err := png.Encode(full, img); err != nil {
		return fmt.Errorf("film: encode full-resolution PNG: %w", err)
	}
	if thumb == nil || thumbW <= 0 || thumbH <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, thumbW, thumbH))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	if err := png.Encode(thumb, dst); err != nil {
		return fmt.Errorf("film: encode thumbnail PNG: %w", err)
	}
	return nil
}
