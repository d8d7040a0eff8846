package fold

import (
	"fmt"
	"image"

	"github.com/tsawler/plica/model"
	"github.com/tsawler/plica/profile"
)

// Detector is the interface for fold detection algorithms
type Detector interface {
	// Detect locates the fold in a spread image. side may be
	// model.SideAuto to request automatic side detection.
	Detect(img image.Image, side model.Side) (model.FoldResult, error)

	// Name returns the detector name
	Name() string

	// Configure sets detector parameters
	Configure(cfg model.Config) error
}

// ProfileDetector implements fold detection from brightness profiles: it
// collapses the side-dependent region of interest into an outlier-filtered
// enhanced profile, fits a parabola for sub-pixel localization, and
// regresses the tilt from per-row fold points.
type ProfileDetector struct {
	config model.Config
}

// NewProfileDetector creates a profile detector with default configuration.
func NewProfileDetector() *ProfileDetector {
	return &ProfileDetector{config: model.DefaultConfig()}
}

// Name returns the detector's identifier ("profile").
func (d *ProfileDetector) Name() string {
	return "profile"
}

// Configure sets the detector configuration.
func (d *ProfileDetector) Configure(cfg model.Config) error {
	d.config = cfg
	return nil
}

// Detect runs the full measurement pipeline on one image. The only errors
// are caller contract violations (zero-size image, empty ROI); noisy input
// degrades to fallback or absent results instead.
func (d *ProfileDetector) Detect(img image.Image, side model.Side) (model.FoldResult, error) {
	cfg := d.config
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return model.FoldResult{}, fmt.Errorf("%w: %dx%d", model.ErrEmptyImage, b.Dx(), b.Dy())
	}

	// Step 1: resolve the side and its region of interest.
	if side == model.SideAuto {
		side = AutoDetectSide(img, cfg)
	}
	roi, err := model.ROIForSide(side, b.Dx(), b.Dy())
	if err != nil {
		return model.FoldResult{}, err
	}
	roi = model.ROI{
		X0: roi.X0 + b.Min.X, X1: roi.X1 + b.Min.X,
		Y0: roi.Y0 + b.Min.Y, Y1: roi.Y1 + b.Min.Y,
	}

	// Step 2: build the enhanced profile. The smoothing cascade is an
	// explicit filter chain: per-row low-pass, then a moving average over
	// the combined profile before fitting.
	smooth := profile.Chain(profile.Lowpass(cfg.LowpassCutoff))
	set, err := profile.Extract(img, roi, smooth, cfg)
	if err != nil {
		return model.FoldResult{}, err
	}
	filtered, _ := set.RejectOutliers(cfg.OutlierSigma)
	enhanced := filtered.Enhanced(profile.MovingAverage(3))

	result := model.FoldResult{
		Side:     side,
		ROI:      roi,
		Enhanced: enhanced,
	}

	// Step 3: sub-pixel localization.
	loc := Locate(enhanced, cfg)
	if loc.Kind == model.FoldAbsent {
		return result, nil
	}
	result.Present = true
	result.Kind = loc.Kind
	result.Parabola = loc.Parabola
	result.Window = loc.Window
	result.Fold.X = filtered.Frame.GlobalX(loc.X)

	// Step 4: tilt estimation. It only ever runs on a fold that
	// localized; an absent angle means no rotation downstream, not a
	// pipeline failure.
	angle := EstimateAngle(img, result.Fold.X, cfg)
	result.AngleKind = angle.Kind
	result.Samples = angle.Samples
	if angle.Kind == model.AngleMeasured {
		result.Fold.Angle = angle.Degrees
		result.Fold.Slope = angle.Slope
		result.Fold.Intercept = angle.Intercept
	}

	return result, nil
}

// Factory creates a fresh detector instance. The registry hands out new
// instances rather than shared ones, so Configure on one call can never
// leak into another.
type Factory func() Detector

// DetectorRegistry holds registered detector factories
type DetectorRegistry struct {
	factories map[string]Factory
}

// NewRegistry creates a new detector registry
func NewRegistry() *DetectorRegistry {
	return &DetectorRegistry{
		factories: make(map[string]Factory),
	}
}

// Register registers a detector factory under a name
func (r *DetectorRegistry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// New creates a fresh detector by name, or nil when the name is unknown
func (r *DetectorRegistry) New(name string) Detector {
	factory, ok := r.factories[name]
	if !ok {
		return nil
	}
	return factory()
}

// List returns all registered detector names
func (r *DetectorRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// RegisterDetector registers a detector factory globally
func RegisterDetector(name string, factory Factory) {
	globalRegistry.Register(name, factory)
}

// NewDetector creates a fresh detector by name from the global registry
func NewDetector(name string) Detector {
	return globalRegistry.New(name)
}

// ListDetectors returns all registered detector names
func ListDetectors() []string {
	return globalRegistry.List()
}

func init() {
	// Register default detectors
	RegisterDetector("profile", func() Detector { return NewProfileDetector() })
}
