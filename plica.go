// Package plica measures and corrects scanned book spreads: it locates the
// physical crease ("fold") between the two pages, estimates its tilt, and
// splits the spread into corrected single-page images.
//
// Basic usage:
//
//	result, err := plica.Detect(img)
//	if err != nil {
//	    // handle error
//	}
//	if result.Present {
//	    log.Printf("fold at %.1f, tilt %.2f degrees", result.Fold.X, result.Fold.Angle)
//	}
//
// Splitting with correction:
//
//	pages, err := plica.Split(img, plica.WithRotation(), plica.WithSmartCrop())
//
// The engine is deterministic and stateless per image; batches parallelize
// across images with no shared state. For lower-level access the fold,
// profile, edges and transform packages are also available.
package plica

import (
	"fmt"
	"image"

	"github.com/tsawler/plica/edges"
	"github.com/tsawler/plica/fold"
	"github.com/tsawler/plica/model"
	"github.com/tsawler/plica/transform"
)

// Detect locates the fold in a spread image. An image without a credible
// fold yields a result with Present set to false, not an error.
func Detect(img image.Image, opts ...Option) (model.FoldResult, error) {
	s := resolve(opts)
	d, err := detector(s)
	if err != nil {
		return model.FoldResult{}, err
	}
	return d.Detect(img, s.side)
}

// DetectEdges measures document-edge trim margins around a located fold.
// It is only useful when smart cropping is wanted.
func DetectEdges(img image.Image, side model.Side, xFold float64, opts ...Option) (model.Margins, error) {
	s := resolve(opts)
	return edges.Detect(img, side, xFold, s.cfg)
}

// Split runs the full pipeline: detection, optional edge measurement, and
// the crop into page images. When no fold is found the source image passes
// through untouched as the result's Single field.
func Split(img image.Image, opts ...Option) (transform.Result, error) {
	s := resolve(opts)
	d, err := detector(s)
	if err != nil {
		return transform.Result{}, err
	}

	fr, err := d.Detect(img, s.side)
	if err != nil {
		return transform.Result{}, err
	}

	var margins model.Margins
	if s.smartCrop && fr.Present {
		margins, err = edges.Detect(img, fr.Side, fr.Fold.X, s.cfg)
		if err != nil {
			return transform.Result{}, err
		}
	}

	return transform.Split(img, fr, margins, transform.Options{
		Rotate:         s.rotate,
		SmartCrop:      s.smartCrop,
		MinRotationDeg: s.cfg.MinRotationDeg,
	})
}

// detector instantiates a fresh, configured detector for one call. The
// registry hands out new instances, so concurrent calls with different
// configurations cannot interfere.
func detector(s settings) (fold.Detector, error) {
	d := fold.NewDetector(s.detector)
	if d == nil {
		return nil, fmt.Errorf("unknown fold detector %q (registered: %v)", s.detector, fold.ListDetectors())
	}
	if err := d.Configure(s.cfg); err != nil {
		return nil, err
	}
	return d, nil
}
