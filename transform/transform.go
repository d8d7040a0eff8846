// Package transform turns a fold measurement into corrected page images:
// optional rotation that makes the fold vertical, the split at the fold
// column, and optional trimming to the detected document edges.
//
// The rotation is the only stage producing a non-trivial coordinate
// mapping, so its affine parameters are retained on the [Result] together
// with the crop origins; callers can map any output coordinate back to the
// source image.
package transform

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/tsawler/plica/model"
)

// defaultMinRotationDeg is the tilt below which rotation is skipped as
// negligible.
const defaultMinRotationDeg = 0.05

// Options control the correction applied during the split.
type Options struct {
	// Rotate straightens the fold to vertical before cropping when the
	// measured tilt exceeds MinRotationDeg.
	Rotate bool

	// SmartCrop additionally trims each page by the detected document
	// edge margins. The fold-side edge is never trimmed; it is the
	// spine, not a content boundary.
	SmartCrop bool

	// MinRotationDeg overrides the negligible-tilt threshold in degrees.
	// Zero or negative selects the default of 0.05.
	MinRotationDeg float64
}

// Result is the outcome of a split. When FoldPresent is false the source
// image passes through untouched as Single; otherwise Left and Right hold
// the two pages and Single is nil.
type Result struct {
	FoldPresent bool

	Left   *image.NRGBA
	Right  *image.NRGBA
	Single image.Image

	// Rotated reports whether a rotation was applied; Angle is the tilt
	// that was corrected, in degrees.
	Rotated bool
	Angle   float64

	// Matrix maps source coordinates into the working (post-rotation)
	// frame; Inverse maps back. Both are the identity when no rotation
	// was applied.
	Matrix  model.Matrix
	Inverse model.Matrix

	// LeftOrigin and RightOrigin are the working-frame coordinates of
	// each page's top-left pixel, completing the bookkeeping needed to
	// map page coordinates back to the source.
	LeftOrigin  image.Point
	RightOrigin image.Point
}

// SourcePoint maps a working-frame point back into source-image
// coordinates.
func (r Result) SourcePoint(p model.Point) model.Point {
	return r.Inverse.Apply(p)
}

// Split crops a spread into its two pages using a fold measurement. An
// absent fold is a normal outcome: the original image is returned
// untouched with FoldPresent false. Margins are ignored unless
// opts.SmartCrop is set.
func Split(img image.Image, fr model.FoldResult, margins model.Margins, opts Options) (Result, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return Result{}, fmt.Errorf("%w: %dx%d", model.ErrEmptyImage, b.Dx(), b.Dy())
	}

	result := Result{
		Matrix:  model.Identity(),
		Inverse: model.Identity(),
	}

	if !fr.Present {
		result.Single = img
		return result, nil
	}
	result.FoldPresent = true

	minRot := opts.MinRotationDeg
	if minRot <= 0 {
		minRot = defaultMinRotationDeg
	}

	// Normalize into a zero-origin working frame, rotating about the
	// fold midpoint if requested and the measured tilt is significant.
	// The matrix alone cannot signal rotation: a non-zero-origin source
	// already yields a non-identity bounds shift.
	working, m, rotated := normalize(img, fr, opts.Rotate && fr.AngleKind == model.AngleMeasured &&
		math.Abs(fr.Fold.Angle) > minRot)
	result.Matrix = m
	if inv, ok := m.Invert(); ok {
		result.Inverse = inv
	}
	if rotated {
		result.Rotated = true
		result.Angle = fr.Fold.Angle
	}

	// The rotation pivots on the fold midpoint, so the fold column is
	// unchanged in the working frame (minus the bounds offset).
	cut := int(math.Round(fr.Fold.X)) - b.Min.X
	w := working.Bounds().Dx()
	h := working.Bounds().Dy()
	if cut < 1 {
		cut = 1
	}
	if cut > w-1 {
		cut = w - 1
	}

	trimLeft, trimRight := 0, 0
	if opts.SmartCrop {
		trimLeft = margins.OuterLeft
		trimRight = margins.OuterRight
	}
	if trimLeft >= cut {
		trimLeft = 0
	}
	if trimRight >= w-cut {
		trimRight = 0
	}

	result.Left = crop(working, image.Rect(trimLeft, 0, cut, h))
	result.Right = crop(working, image.Rect(cut, 0, w-trimRight, h))
	result.LeftOrigin = image.Pt(trimLeft, 0)
	result.RightOrigin = image.Pt(cut, 0)

	return result, nil
}

// normalize copies the source into a zero-origin NRGBA working image,
// applying the straightening rotation when rotate is set. The returned
// matrix maps source coordinates to working coordinates; the boolean
// reports whether a rotation was actually applied.
func normalize(img image.Image, fr model.FoldResult, rotate bool) (*image.NRGBA, model.Matrix, bool) {
	b := img.Bounds()
	working := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	shift := model.Translate(float64(-b.Min.X), float64(-b.Min.Y))
	if !rotate {
		draw.Draw(working, working.Bounds(), img, b.Min, draw.Src)
		if b.Min == image.Pt(0, 0) {
			return working, model.Identity(), false
		}
		return working, shift, false
	}

	// Rotate by the negated tilt about the fold midpoint so the fold
	// line ends up vertical. Corners swept in from outside the source
	// stay paper-white rather than black.
	theta := -fr.Fold.Angle * math.Pi / 180
	center := model.Point{
		X: fr.Fold.X - float64(b.Min.X),
		Y: float64(b.Dy()) / 2,
	}
	m := model.RotateAbout(theta, center).Multiply(shift)

	draw.Draw(working, working.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	xdraw.BiLinear.Transform(working, f64.Aff3{
		m[0], m[2], m[4],
		m[1], m[3], m[5],
	}, img, b, xdraw.Src, nil)

	return working, m, true
}

// crop copies a working-frame rectangle into a standalone zero-origin
// image. The rectangle is clamped to the working bounds and kept at least
// one pixel wide.
func crop(src *image.NRGBA, r image.Rectangle) *image.NRGBA {
	r = r.Intersect(src.Bounds())
	if r.Dx() < 1 {
		r.Max.X = r.Min.X + 1
	}
	if r.Dy() < 1 {
		r.Max.Y = r.Min.Y + 1
	}

	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), src, r.Min, draw.Src)
	return out
}
