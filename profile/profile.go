package profile

import (
	"fmt"
	"image"

	"github.com/tsawler/plica/internal/imgutil"
	"github.com/tsawler/plica/model"
)

// Sample is one row's brightness profile within the region of interest.
// Values are indexed by ROI-local column.
type Sample struct {
	Row    int // full-image row the profile was taken from
	Values []float64
	Mean   float64
}

// Set is a collection of row profiles extracted from one region, together
// with the coordinate frame its columns are expressed in.
type Set struct {
	Samples []Sample
	Frame   model.Frame
	Width   int
}

// Extract samples rows of the ROI into a profile set, smoothing each row
// with the given filter (nil means no smoothing). The ROI must be non-empty
// and inside the image bounds; violations are caller bugs and fail fast.
func Extract(img image.Image, roi model.ROI, smooth Filter, cfg model.Config) (Set, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return Set{}, fmt.Errorf("%w: %dx%d", model.ErrEmptyImage, b.Dx(), b.Dy())
	}
	if roi.IsEmpty() {
		return Set{}, fmt.Errorf("%w: %+v", model.ErrEmptyROI, roi)
	}
	if clamped := roi.Clamp(b); clamped != roi {
		return Set{}, fmt.Errorf("roi %+v exceeds image bounds %v", roi, b)
	}

	stride := cfg.StrideFor(roi.Height())
	set := Set{
		Frame: model.FrameOf(roi),
		Width: roi.Width(),
	}

	for y := roi.Y0; y < roi.Y1; y += stride {
		values := make([]float64, roi.Width())
		for i := range values {
			values[i] = imgutil.Luminance(img, roi.X0+i, y)
		}
		if smooth != nil {
			values = smooth(values)
		}
		set.Samples = append(set.Samples, Sample{
			Row:    y,
			Values: values,
			Mean:   mean(values),
		})
	}

	return set, nil
}

// RejectOutliers drops rows whose mean intensity falls outside sigma
// standard deviations of the ensemble mean, discarding dust and corrupted
// scan lines. When filtering would empty the set, the unfiltered set is
// returned instead and degraded reports true; filtering never fails the
// pipeline.
func (s Set) RejectOutliers(sigma float64) (filtered Set, degraded bool) {
	if len(s.Samples) == 0 {
		return s, false
	}

	means := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		means[i] = smp.Mean
	}
	m := mean(means)
	sd := stddev(means)
	if sd == 0 {
		return s, false
	}

	filtered = Set{Frame: s.Frame, Width: s.Width}
	for _, smp := range s.Samples {
		if smp.Mean >= m-sigma*sd && smp.Mean <= m+sigma*sd {
			filtered.Samples = append(filtered.Samples, smp)
		}
	}

	if len(filtered.Samples) == 0 {
		return s, true
	}
	return filtered, false
}

// Enhanced collapses the set into a single profile: elementwise mean plus
// standard deviation across rows, followed by a final smoothing pass (nil
// means none). Fold columns score high through the variance term even when
// their mean dip is shallow.
func (s Set) Enhanced(post Filter) []float64 {
	if len(s.Samples) == 0 || s.Width == 0 {
		return nil
	}

	column := make([]float64, len(s.Samples))
	out := make([]float64, s.Width)
	for x := 0; x < s.Width; x++ {
		for i, smp := range s.Samples {
			column[i] = smp.Values[x]
		}
		out[x] = mean(column) + stddev(column)
	}

	if post != nil {
		out = post(out)
	}
	return out
}
