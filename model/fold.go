package model

// FoldKind tags how the fold position was obtained.
type FoldKind int

const (
	// FoldAbsent means no credible fold was found. This is an expected
	// outcome for blank or blown-out images, not an error.
	FoldAbsent FoldKind = iota
	// FoldFitted means the position came from a converged parabola fit.
	FoldFitted
	// FoldFallback means the curve fit was degenerate and the position is
	// the raw profile minimum with an empirical fixed window. Lower
	// confidence, but still usable.
	FoldFallback
)

// String returns the lowercase tag name.
func (k FoldKind) String() string {
	switch k {
	case FoldFitted:
		return "fitted"
	case FoldFallback:
		return "fallback"
	}
	return "absent"
}

// AngleKind tags whether the tilt angle could be measured.
type AngleKind int

const (
	// AngleAbsent means fewer than two fold-point samples were found, so
	// no regression was possible. Downstream stages apply no rotation.
	AngleAbsent AngleKind = iota
	// AngleMeasured means the angle came from a valid regression.
	AngleMeasured
)

// String returns the lowercase tag name.
func (k AngleKind) String() string {
	if k == AngleMeasured {
		return "measured"
	}
	return "absent"
}

// Parabola holds the coefficients of the fitted curve a·x² + b·x + c,
// exposed for diagnostic visualizers.
type Parabola struct {
	A, B, C float64
}

// Vertex returns the x coordinate of the parabola's extremum. Callers must
// check that A is not degenerate first.
func (p Parabola) Vertex() float64 {
	return -p.B / (2 * p.A)
}

// At evaluates the parabola at x.
func (p Parabola) At(x float64) float64 {
	return p.A*x*x + p.B*x + p.C
}

// Fold describes a located fold line in full-image coordinates:
// the sub-pixel column at mid-height, the tilt in degrees, and the
// regression line x = Slope·y + Intercept it was derived from.
type Fold struct {
	X         float64
	Angle     float64
	Slope     float64
	Intercept float64
}

// XAt returns the fold column at row y, following the regression line.
// When no angle was measured the line is vertical and XAt returns X.
func (f Fold) XAt(y float64) float64 {
	if f.Slope == 0 && f.Intercept == 0 {
		return f.X
	}
	return f.Slope*y + f.Intercept
}

// FoldResult is the complete outcome of fold detection. Fields beyond
// Present are meaningless when Present is false.
type FoldResult struct {
	Present   bool
	Kind      FoldKind
	AngleKind AngleKind
	Fold      Fold
	Side      Side
	ROI       ROI

	// Diagnostic artifacts for external visualizers. The core never
	// renders anything itself.
	Parabola Parabola
	Enhanced []float64 // enhanced profile, ROI-local columns
	Samples  []Point   // fold-point samples fed to the regression
	Window   float64   // analysis window width in pixels
}

// Margins are trim offsets, in pixels, measured inward from the outer image
// edges to where page content begins. A zero margin means no qualifying
// document edge was found on that side and the crop stays conservative.
type Margins struct {
	OuterLeft  int
	OuterRight int
}
