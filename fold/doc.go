// Package fold locates the physical crease separating the two pages of a
// scanned book spread and estimates its tilt.
//
// # Detectors
//
// Detection is performed by types implementing the [Detector] interface.
// The package provides:
//
//   - [ProfileDetector] - brightness-profile analysis with parabola fitting
//
// Detector factories are registered globally; fresh instances are created
// by name:
//
//	detector := fold.NewDetector("profile")
//	result, err := detector.Detect(img, model.SideAuto)
//
// # Profile Detection
//
// The [ProfileDetector] runs a multi-step pipeline:
//
//  1. Side resolution (auto-detection from strip brightness if requested)
//  2. Profile extraction and outlier filtering within the side's ROI
//  3. Sub-pixel fold localization via least-squares parabola fit
//  4. Tilt estimation via per-row sampling and linear regression
//
// Each step degrades gracefully: a degenerate curve fit falls back to the
// raw profile minimum, an unusable regression reports the angle as absent,
// and a flat profile reports no fold at all. None of these are errors;
// only malformed input (zero-size image, empty ROI) fails.
package fold
