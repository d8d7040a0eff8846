package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/tsawler/plica"
	"github.com/tsawler/plica/internal/imgutil"
	"github.com/tsawler/plica/model"
)

var (
	detectSide string
	detectJSON bool
)

// foldReport is the printable shape of one detection result. The numeric
// fields carry no omitempty: a measured angle of exactly zero is a real
// result (a perfectly vertical fold), not a missing one.
type foldReport struct {
	File      string  `json:"file"`
	Present   bool    `json:"fold_present"`
	Kind      string  `json:"kind,omitempty"`
	Side      string  `json:"side,omitempty"`
	X         float64 `json:"x_fold"`
	Angle     float64 `json:"angle"`
	AngleKind string  `json:"angle_kind,omitempty"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

var detectCmd = &cobra.Command{
	Use:   "detect FILE...",
	Short: "Locate the fold in spread images and print its geometry",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		side, err := model.ParseSide(detectSide)
		if err != nil {
			return err
		}
		cfg := engineConfig()

		var reports []foldReport
		for _, path := range args {
			img, err := imaging.Open(path, imaging.AutoOrientation(true))
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}

			result, err := plica.Detect(imgutil.Grayscale(img),
				plica.WithConfig(cfg), plica.WithSide(side))
			if err != nil {
				return fmt.Errorf("detect %s: %w", path, err)
			}

			r := foldReport{File: path, Present: result.Present}
			if result.Present {
				r.Kind = result.Kind.String()
				r.Side = result.Side.String()
				r.X = result.Fold.X
				r.Angle = result.Fold.Angle
				r.AngleKind = result.AngleKind.String()
				r.Slope = result.Fold.Slope
				r.Intercept = result.Fold.Intercept
			}
			reports = append(reports, r)
		}

		if detectJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		}
		for _, r := range reports {
			if !r.Present {
				fmt.Printf("%s: no fold\n", r.File)
				continue
			}
			fmt.Printf("%s: fold at %.2f (%s, side %s), angle %.2f deg (%s)\n",
				r.File, r.X, r.Kind, r.Side, r.Angle, r.AngleKind)
		}
		return nil
	},
}

func init() {
	detectCmd.Flags().StringVar(&detectSide, "side", "auto", "fold side: auto, left, right or center")
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "print results as JSON")
}
