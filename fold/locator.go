package fold

import (
	"math"

	"github.com/tsawler/plica/model"
)

// Location is the outcome of sub-pixel fold localization over an enhanced
// profile. X is expressed in ROI-local columns; the caller converts it to
// the full-image frame.
type Location struct {
	Kind     model.FoldKind
	X        float64
	Window   float64
	Parabola model.Parabola
}

// Locate finds the fold column in an enhanced (already smoothed) profile by
// fitting a parabola around the profile minimum and taking its vertex.
//
// The analysis window adapts to the fold's pronouncedness: with
// depth = (max − min) / 2, the window is 2·sqrt(depth/|a|) clamped to
// [MinWindow, MaxWindow]. Deep folds justify a wide window; shallow folds
// keep a narrow, precise one.
//
// Degradation is explicit, never an error: a flat profile yields
// FoldAbsent, and a degenerate or diverging fit yields FoldFallback at the
// raw minimum with the fixed empirical window.
func Locate(enhanced []float64, cfg model.Config) Location {
	n := len(enhanced)
	if n < 3 {
		return Location{Kind: model.FoldAbsent}
	}

	lo, hi := enhanced[0], enhanced[0]
	center := 0
	for i, v := range enhanced {
		if v < lo {
			lo = v
			center = i
		}
		if v > hi {
			hi = v
		}
	}

	// A profile without contrast has no credible fold: blank page,
	// blown-out scan. First-class outcome, not an error.
	if hi-lo < cfg.MinFoldDepth {
		return Location{Kind: model.FoldAbsent}
	}
	depth := (hi - lo) / 2

	fallback := Location{
		Kind:   model.FoldFallback,
		X:      clampColumn(float64(center), n),
		Window: float64(cfg.FallbackWindow),
	}

	// Initial fit over the empirical window to estimate curvature.
	initial, ok := fitWindow(enhanced, center, cfg.FallbackWindow)
	if !ok || initial.A < degenerateCurvature {
		return fallback
	}

	// Adaptive window from curvature, then the refining fit.
	width := 2 * math.Sqrt(depth/math.Abs(initial.A))
	width = math.Min(math.Max(width, float64(cfg.MinWindow)), float64(cfg.MaxWindow))

	refined, ok := fitWindow(enhanced, center, int(math.Round(width)))
	if !ok || refined.A < degenerateCurvature {
		return fallback
	}

	vertex := refined.Vertex()
	// A vertex escaping its own window means the fit diverged from the
	// observed minimum; trust the minimum instead.
	if math.Abs(vertex-float64(center)) > width {
		return fallback
	}

	return Location{
		Kind:     model.FoldFitted,
		X:        clampColumn(vertex, n),
		Window:   width,
		Parabola: refined,
	}
}

// fitWindow fits a parabola to the profile slice of the given width
// centered on the column, clamped to the profile bounds.
func fitWindow(enhanced []float64, center, width int) (model.Parabola, bool) {
	half := width / 2
	lo := center - half
	if lo < 0 {
		lo = 0
	}
	hi := center + half + 1
	if hi > len(enhanced) {
		hi = len(enhanced)
	}
	return fitParabola(enhanced[lo:hi], lo)
}

// clampColumn keeps a fold column at least one pixel inside the profile
// bounds, guarding against boundary artifacts in the fit.
func clampColumn(x float64, n int) float64 {
	if x < 1 {
		return 1
	}
	if max := float64(n - 2); x > max {
		return max
	}
	return x
}
