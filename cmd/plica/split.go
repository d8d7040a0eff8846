package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/plica"
	"github.com/tsawler/plica/internal/imgutil"
	"github.com/tsawler/plica/model"
	"github.com/tsawler/plica/transform"
)

var (
	splitSide      string
	splitOutDir    string
	splitRotate    bool
	splitSmartCrop bool
	splitWorkers   int
)

var splitCmd = &cobra.Command{
	Use:   "split FILE...",
	Short: "Split spread images into corrected single pages",
	Long: `Split detects the fold in each input image and writes the two pages
next to the input (or into --out-dir) as NAME_left and NAME_right.
Images without a detectable fold are copied through unchanged as
NAME_single.

Images are independent, so batches run on a bounded worker pool.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		side, err := model.ParseSide(splitSide)
		if err != nil {
			return err
		}
		cfg := engineConfig()

		if splitWorkers < 1 {
			splitWorkers = 1
		}
		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(splitWorkers)

		for _, path := range args {
			path := path
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return splitOne(path, side, cfg)
			})
		}
		return g.Wait()
	},
}

func init() {
	splitCmd.Flags().StringVar(&splitSide, "side", "auto", "fold side: auto, left, right or center")
	splitCmd.Flags().StringVarP(&splitOutDir, "out-dir", "o", "", "output directory (default: alongside input)")
	splitCmd.Flags().BoolVar(&splitRotate, "rotate", false, "straighten the fold to vertical before splitting")
	splitCmd.Flags().BoolVar(&splitSmartCrop, "smart-crop", false, "trim pages to the detected document edges")
	splitCmd.Flags().IntVar(&splitWorkers, "workers", 4, "concurrent images")
}

// splitOne runs the full pipeline for a single file. Detection works on a
// grayscale copy for speed; the crop is applied to the original so color
// scans keep their color.
func splitOne(path string, side model.Side, cfg model.Config) error {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	fr, err := plica.Detect(imgutil.Grayscale(img),
		plica.WithConfig(cfg), plica.WithSide(side))
	if err != nil {
		return fmt.Errorf("detect %s: %w", path, err)
	}

	var margins model.Margins
	if splitSmartCrop && fr.Present {
		margins, err = plica.DetectEdges(img, fr.Side, fr.Fold.X, plica.WithConfig(cfg))
		if err != nil {
			return fmt.Errorf("edges %s: %w", path, err)
		}
	}

	res, err := transform.Split(img, fr, margins, transform.Options{
		Rotate:         splitRotate,
		SmartCrop:      splitSmartCrop,
		MinRotationDeg: cfg.MinRotationDeg,
	})
	if err != nil {
		return fmt.Errorf("split %s: %w", path, err)
	}

	if !res.FoldPresent {
		logger.Warn("no fold found, passing image through", "file", path)
		out := outputPath(path, "single")
		if err := imaging.Save(res.Single, out); err != nil {
			return fmt.Errorf("save %s: %w", out, err)
		}
		return nil
	}

	logger.Info("split spread",
		"file", path,
		"x_fold", fmt.Sprintf("%.2f", fr.Fold.X),
		"angle", fmt.Sprintf("%.2f", fr.Fold.Angle),
		"side", fr.Side.String(),
		"rotated", res.Rotated,
	)

	left := outputPath(path, "left")
	if err := imaging.Save(res.Left, left); err != nil {
		return fmt.Errorf("save %s: %w", left, err)
	}
	right := outputPath(path, "right")
	if err := imaging.Save(res.Right, right); err != nil {
		return fmt.Errorf("save %s: %w", right, err)
	}
	return nil
}

// outputPath derives NAME_suffix.EXT, honoring --out-dir.
func outputPath(path, suffix string) string {
	dir := filepath.Dir(path)
	if splitOutDir != "" {
		dir = splitOutDir
	}
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".png"
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", name, suffix, ext))
}
