// Package profile turns a two-dimensional image region into the robust
// one-dimensional brightness signal the fold locator fits against.
//
// # Pipeline
//
// Extraction samples rows of the region of interest into a [Set] of
// per-row brightness profiles. Rows whose mean intensity deviates too far
// from the ensemble are rejected as outliers (dust, saturated scan lines),
// with an explicit fallback to the unfiltered set so the pipeline never
// fails on filtering alone. The surviving rows are collapsed into the
// enhanced profile: elementwise mean plus standard deviation, which
// amplifies the fold signature, since fold regions carry both a brightness
// dip and extra variance from shadow gradients.
//
// # Filters
//
// Smoothing is modeled as an ordered list of pure [Filter] functions
// composed with [Chain], not ad hoc inline smoothing, so each stage is
// independently testable:
//
//	smooth := profile.Chain(profile.Lowpass(0.1), profile.MovingAverage(3))
package profile
