package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/plica/model"
)

var (
	cfgFile  string
	logLevel string
	logJSON  bool

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "plica",
	Short: "Fold detection and page splitting for scanned book spreads",
	Long: `Plica locates the crease between the two pages of a scanned book
spread, measures its tilt, and splits the spread into corrected
single-page images.

The pipeline includes:
  - Automatic fold side detection from global brightness
  - Sub-pixel fold localization via curve fitting
  - Tilt estimation and optional straightening
  - Optional smart cropping to the detected document edges`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./plica.yaml or ~/.plica/plica.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "info", "log level: debug, info, warn or error",
	)
	rootCmd.PersistentFlags().BoolVar(
		&logJSON, "log-json", false, "emit structured JSON logs",
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		return initLogger()
	}

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig layers the config file and PLICA_* environment variables over
// the engine defaults.
func initConfig() error {
	defaults := model.DefaultConfig()
	viper.SetDefault("outlier_sigma", defaults.OutlierSigma)
	viper.SetDefault("min_window", defaults.MinWindow)
	viper.SetDefault("max_window", defaults.MaxWindow)
	viper.SetDefault("fallback_window", defaults.FallbackWindow)
	viper.SetDefault("min_fold_depth", defaults.MinFoldDepth)
	viper.SetDefault("edge_absolute_threshold", defaults.EdgeAbsoluteThreshold)
	viper.SetDefault("edge_relative_fraction", defaults.EdgeRelativeFraction)
	viper.SetDefault("row_sample_stride", defaults.RowSampleStride)
	viper.SetDefault("side_bias_delta", defaults.SideBiasDelta)
	viper.SetDefault("center_dark_delta", defaults.CenterDarkDelta)
	viper.SetDefault("lowpass_cutoff", defaults.LowpassCutoff)
	viper.SetDefault("min_rotation_deg", defaults.MinRotationDeg)

	viper.SetEnvPrefix("PLICA")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("plica")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.plica")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// engineConfig builds the immutable engine configuration from the current
// viper state.
func engineConfig() model.Config {
	return model.Config{
		OutlierSigma:          viper.GetFloat64("outlier_sigma"),
		MinWindow:             viper.GetInt("min_window"),
		MaxWindow:             viper.GetInt("max_window"),
		FallbackWindow:        viper.GetInt("fallback_window"),
		MinFoldDepth:          viper.GetFloat64("min_fold_depth"),
		EdgeAbsoluteThreshold: viper.GetFloat64("edge_absolute_threshold"),
		EdgeRelativeFraction:  viper.GetFloat64("edge_relative_fraction"),
		RowSampleStride:       viper.GetInt("row_sample_stride"),
		SideBiasDelta:         viper.GetFloat64("side_bias_delta"),
		CenterDarkDelta:       viper.GetFloat64("center_dark_delta"),
		LowpassCutoff:         viper.GetFloat64("lowpass_cutoff"),
		MinRotationDeg:        viper.GetFloat64("min_rotation_deg"),
	}
}

func initLogger() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if logJSON {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	logger = slog.New(h)
	return nil
}
