package fold

import (
	"image"
	"math"

	"github.com/tsawler/plica/internal/imgutil"
	"github.com/tsawler/plica/model"
)

// Angle is the outcome of tilt estimation along a located fold.
type Angle struct {
	Kind      model.AngleKind
	Degrees   float64
	Slope     float64
	Intercept float64
	Samples   []model.Point
}

// minRowContrast is the brightness span below which a row carries no usable
// fold-point signal and is skipped.
const minRowContrast = 1.0

// EstimateAngle measures the fold tilt. For a regular vertical stride, it
// finds the darkest column within a narrow strip around xFold on each
// sampled row, then regresses x = slope·y + intercept through the samples.
// The fold is modeled as straight but potentially tilted; physical scans
// are rarely aligned to the sensor.
//
// xFold is a full-image column; samples and the regression line are in
// full-image coordinates. With fewer than two usable sample rows the
// estimate is explicitly absent rather than a meaningless regression.
func EstimateAngle(img image.Image, xFold float64, cfg model.Config) Angle {
	b := img.Bounds()
	half := cfg.FallbackWindow / 2
	if half < 1 {
		half = 1
	}

	x0 := int(math.Round(xFold)) - half
	x1 := int(math.Round(xFold)) + half + 1
	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	if x1 > b.Max.X {
		x1 = b.Max.X
	}
	if x1-x0 < 1 {
		return Angle{Kind: model.AngleAbsent}
	}

	stride := cfg.StrideFor(b.Dy())
	var samples []model.Point
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		minX := x0
		minV := imgutil.Luminance(img, x0, y)
		maxV := minV
		for x := x0 + 1; x < x1; x++ {
			v := imgutil.Luminance(img, x, y)
			if v < minV {
				minV = v
				minX = x
			}
			if v > maxV {
				maxV = v
			}
		}
		if maxV-minV < minRowContrast {
			continue
		}
		samples = append(samples, model.Point{X: float64(minX), Y: float64(y)})
	}

	slope, intercept, ok := linearFit(samples)
	if !ok {
		return Angle{Kind: model.AngleAbsent, Samples: samples}
	}

	return Angle{
		Kind:      model.AngleMeasured,
		Degrees:   math.Atan(slope) * 180 / math.Pi,
		Slope:     slope,
		Intercept: intercept,
		Samples:   samples,
	}
}
