package imgutil

import (
	"image"
	"math"
)

// Uniform builds a w×h grayscale image filled with value v.
func Uniform(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// VerticalStripe builds a uniform background with a darker (or lighter)
// vertical stripe centered on column x, halfWidth pixels to each side.
func VerticalStripe(w, h, x, halfWidth int, bg, fg uint8) *image.Gray {
	return TiltedStripe(w, h, float64(x), 0, halfWidth, bg, fg)
}

// TiltedStripe builds a uniform background with a stripe whose center line
// passes through column xMid at mid-height, tilted by tiltDeg degrees from
// vertical. Positive tilt leans the bottom of the stripe toward larger x.
func TiltedStripe(w, h int, xMid, tiltDeg float64, halfWidth int, bg, fg uint8) *image.Gray {
	img := Uniform(w, h, bg)
	slope := math.Tan(tiltDeg * math.Pi / 180)
	for y := 0; y < h; y++ {
		cx := xMid + slope*(float64(y)-float64(h)/2)
		lo := int(math.Round(cx)) - halfWidth
		hi := int(math.Round(cx)) + halfWidth
		for x := lo; x <= hi; x++ {
			if x >= 0 && x < w {
				img.Pix[y*img.Stride+x] = fg
			}
		}
	}
	return img
}

// FillColumns overwrites columns [x0, x1) with value v. Useful for adding
// dark scanner background outside a synthetic page.
func FillColumns(img *image.Gray, x0, x1 int, v uint8) {
	b := img.Bounds()
	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	if x1 > b.Max.X {
		x1 = b.Max.X
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := x0; x < x1; x++ {
			img.Pix[(y-b.Min.Y)*img.Stride+(x-b.Min.X)] = v
		}
	}
}

// FillRow overwrites a single row with value v, simulating a corrupted
// (saturated) scan line.
func FillRow(img *image.Gray, y int, v uint8) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	row := img.Pix[(y-b.Min.Y)*img.Stride:]
	for x := 0; x < b.Dx(); x++ {
		row[x] = v
	}
}
