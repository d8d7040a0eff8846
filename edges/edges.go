// Package edges detects the physical page boundary so the split can trim
// scanner background instead of cropping blindly at the fold.
//
// Detection walks a smoothed brightness profile outward from the fold
// toward the relevant image edge and looks for the drop where paper ends.
// A position qualifies only when it passes both an absolute drop threshold
// and a relative darkness threshold; the dual test avoids noise triggers in
// bright regions and missed detections in low-contrast ones. When nothing
// qualifies the margin is zero, which crops conservatively at the image
// edge rather than guessing.
package edges

import (
	"fmt"
	"image"
	"math"

	"github.com/tsawler/plica/internal/imgutil"
	"github.com/tsawler/plica/model"
	"github.com/tsawler/plica/profile"
)

// Detect measures trim margins for the outward document edge(s): both
// edges for a center fold, the single outer edge for a left or right fold.
// The fold-side edge is never measured, since the spine is not a content
// boundary.
func Detect(img image.Image, side model.Side, xFold float64, cfg model.Config) (model.Margins, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return model.Margins{}, fmt.Errorf("%w: %dx%d", model.ErrEmptyImage, b.Dx(), b.Dy())
	}
	fx := int(math.Round(xFold))
	if fx < b.Min.X || fx >= b.Max.X {
		return model.Margins{}, fmt.Errorf("fold column %f outside image bounds %v", xFold, b)
	}

	var m model.Margins
	switch side {
	case model.SideLeft:
		m.OuterRight = outwardMargin(img, fx, +1, cfg)
	case model.SideRight:
		m.OuterLeft = outwardMargin(img, fx, -1, cfg)
	case model.SideCenter:
		m.OuterLeft = outwardMargin(img, fx, -1, cfg)
		m.OuterRight = outwardMargin(img, fx, +1, cfg)
	default:
		return model.Margins{}, fmt.Errorf("cannot detect edges for side %v", side)
	}
	return m, nil
}

// outwardMargin walks from the fold toward one image edge (dir ±1) and
// returns the number of pixels to trim from that edge, or zero when no
// qualifying document edge exists.
func outwardMargin(img image.Image, fx, dir int, cfg model.Config) int {
	b := img.Bounds()
	stride := cfg.StrideFor(b.Dy())

	// Per-column mean brightness from the fold outward.
	var n int
	if dir > 0 {
		n = b.Max.X - fx
	} else {
		n = fx - b.Min.X + 1
	}
	if n < 2 {
		return 0
	}

	p := make([]float64, n)
	for i := 0; i < n; i++ {
		x := fx + dir*i
		var sum float64
		var rows int
		for y := b.Min.Y; y < b.Max.Y; y += stride {
			sum += imgutil.Luminance(img, x, y)
			rows++
		}
		p[i] = sum / float64(rows)
	}
	p = profile.MovingAverage(3)(p)

	// Content-adaptive derivative window.
	window := n / 4
	if window > 3 {
		window = 3
	}
	if window < 1 {
		return 0
	}

	max := p[0]
	for _, v := range p {
		if v > max {
			max = v
		}
	}

	for i := window; i+window <= n; i++ {
		inner := avg(p[i-window : i])
		outer := avg(p[i : i+window])
		drop := inner - outer
		if drop > cfg.EdgeAbsoluteThreshold && p[i] < cfg.EdgeRelativeFraction*max {
			return n - i
		}
	}
	return 0
}

func avg(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
