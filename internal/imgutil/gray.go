// Package imgutil provides pixel access helpers shared by the pipeline
// stages, and synthetic image builders used by their tests.
package imgutil

import (
	"image"

	"github.com/disintegration/imaging"
)

// Luminance returns the brightness of the pixel at (x, y) on a 0-255 scale.
// Typed fast paths avoid the interface conversion cost of image.Image.At,
// which dominates profile extraction otherwise.
func Luminance(img image.Image, x, y int) float64 {
	switch p := img.(type) {
	case *image.Gray:
		return float64(p.Pix[p.PixOffset(x, y)])
	case *image.NRGBA:
		i := p.PixOffset(x, y)
		return float64(uint32(p.Pix[i])+uint32(p.Pix[i+1])+uint32(p.Pix[i+2])) / 3
	case *image.RGBA:
		i := p.PixOffset(x, y)
		return float64(uint32(p.Pix[i])+uint32(p.Pix[i+1])+uint32(p.Pix[i+2])) / 3
	}

	r, g, b, _ := img.At(x, y).RGBA()
	return float64(r+g+b) / 3 / 257
}

// MeanBrightness returns the mean luminance over the rectangle, sampling
// every rowStride-th row. The rectangle is clamped to the image bounds.
func MeanBrightness(img image.Image, r image.Rectangle, rowStride int) float64 {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return 0
	}
	if rowStride < 1 {
		rowStride = 1
	}

	var sum float64
	var n int
	for y := r.Min.Y; y < r.Max.Y; y += rowStride {
		for x := r.Min.X; x < r.Max.X; x++ {
			sum += Luminance(img, x, y)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Grayscale converts any image to *image.Gray, giving downstream stages the
// fastest Luminance path. Color is flattened with imaging's gamma-aware
// grayscale before the single-channel copy.
func Grayscale(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}

	flat := imaging.Grayscale(img)
	b := flat.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := flat.Pix[y*flat.Stride:]
		dst := out.Pix[y*out.Stride:]
		for x := 0; x < b.Dx(); x++ {
			dst[x] = src[x*4]
		}
	}
	return out
}
