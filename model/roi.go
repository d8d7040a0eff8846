package model

import (
	"errors"
	"fmt"
	"image"
)

// ErrEmptyImage is returned when a caller supplies an image with zero width
// or height. This is a contract violation, not a noisy-input condition, so
// it fails fast rather than degrading.
var ErrEmptyImage = errors.New("image has zero width or height")

// ErrEmptyROI is returned when a region of interest resolves to zero area.
var ErrEmptyROI = errors.New("region of interest is empty")

// ROI is an axis-aligned rectangle [X0, X1) × [Y0, Y1) in full-image
// coordinates. It bounds the area analyzed for fold signal.
type ROI struct {
	X0, X1 int
	Y0, Y1 int
}

// Width returns the number of columns covered by the ROI.
func (r ROI) Width() int { return r.X1 - r.X0 }

// Height returns the number of rows covered by the ROI.
func (r ROI) Height() int { return r.Y1 - r.Y0 }

// IsEmpty reports whether the ROI covers no pixels.
func (r ROI) IsEmpty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Contains reports whether the full-image column x falls inside the ROI.
func (r ROI) Contains(x int) bool { return x >= r.X0 && x < r.X1 }

// Rect converts the ROI to an image.Rectangle.
func (r ROI) Rect() image.Rectangle {
	return image.Rect(r.X0, r.Y0, r.X1, r.Y1)
}

// Clamp restricts the ROI to the given image bounds, guaranteeing the
// containment invariant even for hand-built regions.
func (r ROI) Clamp(bounds image.Rectangle) ROI {
	out := r
	if out.X0 < bounds.Min.X {
		out.X0 = bounds.Min.X
	}
	if out.Y0 < bounds.Min.Y {
		out.Y0 = bounds.Min.Y
	}
	if out.X1 > bounds.Max.X {
		out.X1 = bounds.Max.X
	}
	if out.Y1 > bounds.Max.Y {
		out.Y1 = bounds.Max.Y
	}
	return out
}

// ROIForSide derives the analysis region from the side and the image
// dimensions: right side uses [0.8W, W), left [0, 0.2W) and center
// [0.3W, 0.7W). The full image height is always covered.
func ROIForSide(side Side, width, height int) (ROI, error) {
	if width <= 0 || height <= 0 {
		return ROI{}, fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}

	var roi ROI
	switch side {
	case SideLeft:
		roi = ROI{X0: 0, X1: width / 5, Y0: 0, Y1: height}
	case SideRight:
		roi = ROI{X0: width * 4 / 5, X1: width, Y0: 0, Y1: height}
	case SideCenter:
		roi = ROI{X0: width * 3 / 10, X1: width * 7 / 10, Y0: 0, Y1: height}
	default:
		return ROI{}, fmt.Errorf("cannot derive ROI for side %v", side)
	}

	if roi.IsEmpty() {
		return ROI{}, fmt.Errorf("%w: side %v on %dx%d image", ErrEmptyROI, side, width, height)
	}
	return roi, nil
}
