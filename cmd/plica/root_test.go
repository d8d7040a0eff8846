package main

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/tsawler/plica/model"
)

func TestEngineConfigDefaults(t *testing.T) {
	viper.Reset()
	if err := initConfig(); err != nil {
		t.Fatalf("initConfig: %v", err)
	}

	got := engineConfig()
	want := model.DefaultConfig()
	if got != want {
		t.Errorf("engineConfig() = %+v, want defaults %+v", got, want)
	}
}

func TestEngineConfigEnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("PLICA_MIN_WINDOW", "11")
	t.Setenv("PLICA_OUTLIER_SIGMA", "2.5")
	if err := initConfig(); err != nil {
		t.Fatalf("initConfig: %v", err)
	}

	got := engineConfig()
	if got.MinWindow != 11 {
		t.Errorf("MinWindow = %d, want 11 from PLICA_MIN_WINDOW", got.MinWindow)
	}
	if got.OutlierSigma != 2.5 {
		t.Errorf("OutlierSigma = %g, want 2.5 from PLICA_OUTLIER_SIGMA", got.OutlierSigma)
	}
	if got.MaxWindow != model.DefaultConfig().MaxWindow {
		t.Errorf("MaxWindow = %d, want untouched default", got.MaxWindow)
	}
}
