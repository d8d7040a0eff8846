package fold

import (
	"image"

	"github.com/tsawler/plica/internal/imgutil"
	"github.com/tsawler/plica/model"
)

// AutoDetectSide decides where the fold sits from global brightness alone.
// It compares the mean brightness of three fixed strips: the left fifth,
// the right fifth, and a central band around the midline. The fold shadow
// darkens the strip it sits in, so:
//
//   - Center wins when the central strip is markedly darker than both
//     outer strips, or when the outer strips are too close to call
//     (within Config.SideBiasDelta). Ties resolve toward Center; a fold
//     near the middle is the common case for symmetric spreads.
//   - Otherwise the darker outer strip wins.
//
// There is no error state; one of Left, Right or Center is always returned.
func AutoDetectSide(img image.Image, cfg model.Config) model.Side {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	stride := cfg.StrideFor(h)

	left := imgutil.MeanBrightness(img, image.Rect(b.Min.X, b.Min.Y, b.Min.X+w/5, b.Max.Y), stride)
	right := imgutil.MeanBrightness(img, image.Rect(b.Min.X+w*4/5, b.Min.Y, b.Max.X, b.Max.Y), stride)
	center := imgutil.MeanBrightness(img, image.Rect(b.Min.X+w*2/5, b.Min.Y, b.Min.X+w*3/5, b.Max.Y), stride)

	min := left
	if right < min {
		min = right
	}

	diff := left - right
	if diff < 0 {
		diff = -diff
	}

	if center < min-cfg.CenterDarkDelta || diff < cfg.SideBiasDelta {
		return model.SideCenter
	}
	if left < right {
		return model.SideLeft
	}
	return model.SideRight
}
