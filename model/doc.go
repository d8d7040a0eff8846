// Package model provides the shared data types for the fold-detection
// pipeline.
//
// This package defines the user-facing structures that every pipeline stage
// consumes and produces. All detection and transformation operations
// ultimately speak these types, making them the primary API for consuming
// results.
//
// # Geometry
//
// Geometric primitives support position and coordinate-frame calculations:
//
//   - [Point] - 2D point with distance calculation
//   - [Matrix] - 2D affine transformation matrix with inversion
//   - [Frame] - translation between ROI-local and full-image coordinates
//   - [ROI] - the axis-aligned region analyzed for fold signal
//
// # Detection Results
//
// The [FoldResult] type carries everything a caller needs after detection:
//
//   - Fold - sub-pixel fold column, tilt angle, and the regression line
//   - Kind - whether the fold was fitted, recovered by fallback, or absent
//   - Parabola - the fitted curve coefficients, for diagnostics
//
// Degraded outcomes are tagged variants ([FoldFitted], [FoldFallback],
// [FoldAbsent]), never sentinel values, so callers must handle them
// explicitly.
//
// # Configuration
//
// [Config] holds every algorithm threshold as an immutable value passed into
// each stage. Stages never read module-level state, so concurrent
// invocations with different configurations cannot interfere.
package model
