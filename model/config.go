package model

// Config holds every algorithm threshold used by the pipeline. Each stage
// receives the value by copy, so per-image invocations with different
// configurations never interfere.
type Config struct {
	// OutlierSigma is the standard-deviation multiple within which a
	// profile row's mean intensity must fall to survive outlier rejection.
	// 1.5 keeps roughly 86% of a normal distribution.
	OutlierSigma float64

	// MinWindow and MaxWindow clamp the adaptive curve-fit window, in
	// pixels. Deeper folds justify a wider window; shallow folds keep a
	// narrow, precise one.
	MinWindow int
	MaxWindow int

	// FallbackWindow is the fixed empirical width used when the curve fit
	// is degenerate.
	FallbackWindow int

	// MinFoldDepth is the minimum peak-to-trough contrast, in intensity
	// units, below which the enhanced profile is considered flat and no
	// fold is reported.
	MinFoldDepth float64

	// EdgeAbsoluteThreshold is the minimum brightness drop, in intensity
	// units, for a position to qualify as a document edge.
	EdgeAbsoluteThreshold float64

	// EdgeRelativeFraction is the fraction of the profile maximum below
	// which a position's own brightness must fall to qualify as a
	// document edge. The dual threshold avoids noise triggers in bright
	// regions and missed detections in low-contrast ones.
	EdgeRelativeFraction float64

	// RowSampleStride is the vertical distance between sampled rows for
	// profile extraction and angle estimation. Zero selects an automatic
	// stride of height/32, clamped to at least 1.
	RowSampleStride int

	// SideBiasDelta is the brightness difference below which left and
	// right strips are considered tied and side detection resolves to
	// Center. Scanner and lighting dependent; recalibrate per setup.
	SideBiasDelta float64

	// CenterDarkDelta is how much darker the central strip must be than
	// both outer strips for side detection to choose Center outright.
	CenterDarkDelta float64

	// LowpassCutoff is the cutoff frequency of the discrete low-pass
	// filter applied to raw brightness profiles.
	LowpassCutoff float64

	// MinRotationDeg is the tilt magnitude, in degrees, below which
	// rotation is skipped as negligible.
	MinRotationDeg float64
}

// DefaultConfig returns the calibrated defaults.
func DefaultConfig() Config {
	return Config{
		OutlierSigma:          1.5,
		MinWindow:             7,
		MaxWindow:             50,
		FallbackWindow:        20,
		MinFoldDepth:          2.0,
		EdgeAbsoluteThreshold: 3.0,
		EdgeRelativeFraction:  0.75,
		RowSampleStride:       0,
		SideBiasDelta:         5.0,
		CenterDarkDelta:       10.0,
		LowpassCutoff:         0.1,
		MinRotationDeg:        0.05,
	}
}

// StrideFor resolves the effective row sampling stride for an image of the
// given height.
func (c Config) StrideFor(height int) int {
	stride := c.RowSampleStride
	if stride <= 0 {
		stride = height / 32
	}
	if stride < 1 {
		stride = 1
	}
	return stride
}
