package profile

import (
	"math"
	"testing"

	"github.com/tsawler/plica/internal/imgutil"
	"github.com/tsawler/plica/model"
)

func TestChainIdentity(t *testing.T) {
	in := []float64{1, 2, 3}
	out := Chain()(in)
	if len(out) != 3 || out[0] != 1 || out[2] != 3 {
		t.Errorf("empty Chain should be identity, got %v", out)
	}
}

func TestChainOrder(t *testing.T) {
	addOne := func(xs []float64) []float64 {
		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = x + 1
		}
		return ys
	}
	double := func(xs []float64) []float64 {
		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = x * 2
		}
		return ys
	}

	got := Chain(addOne, double)([]float64{3})
	if got[0] != 8 {
		t.Errorf("Chain(addOne, double)(3) = %f, want 8 (left to right)", got[0])
	}
	got = Chain(double, addOne)([]float64{3})
	if got[0] != 7 {
		t.Errorf("Chain(double, addOne)(3) = %f, want 7", got[0])
	}
}

func TestLowpassSuppressesNoise(t *testing.T) {
	// Alternating noise around a constant level flattens out.
	xs := make([]float64, 100)
	for i := range xs {
		xs[i] = 100
		if i%2 == 0 {
			xs[i] = 110
		}
	}

	ys := Lowpass(0.05)(xs)
	if len(ys) != len(xs) {
		t.Fatalf("Lowpass changed length: %d", len(ys))
	}
	for i := 20; i < len(ys); i++ {
		if ys[i] < 100 || ys[i] > 110 {
			t.Fatalf("Lowpass out of range at %d: %f", i, ys[i])
		}
		if math.Abs(ys[i]-ys[i-1]) > 3 {
			t.Fatalf("Lowpass still noisy at %d: %f -> %f", i-1, ys[i-1], ys[i])
		}
	}

	// Input must not be mutated.
	if xs[0] != 110 {
		t.Error("Lowpass mutated its input")
	}
}

func TestMovingAverage(t *testing.T) {
	xs := []float64{0, 0, 9, 0, 0}
	ys := MovingAverage(3)(xs)
	if ys[2] != 3 {
		t.Errorf("MovingAverage center = %f, want 3", ys[2])
	}
	if ys[0] != 0 {
		t.Errorf("MovingAverage edge = %f, want 0", ys[0])
	}
	if xs[2] != 9 {
		t.Error("MovingAverage mutated its input")
	}
}

func TestExtractBasic(t *testing.T) {
	img := imgutil.VerticalStripe(100, 64, 50, 2, 200, 40)
	roi := model.ROI{X0: 30, X1: 70, Y0: 0, Y1: 64}
	cfg := model.DefaultConfig()
	cfg.RowSampleStride = 8

	set, err := Extract(img, roi, nil, cfg)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(set.Samples) != 8 {
		t.Errorf("sample count = %d, want 8", len(set.Samples))
	}
	if set.Width != 40 {
		t.Errorf("set width = %d, want 40", set.Width)
	}
	if set.Frame.OffsetX != 30 {
		t.Errorf("frame offset = %f, want 30", set.Frame.OffsetX)
	}

	// The stripe sits at ROI-local column 20.
	s := set.Samples[0]
	if s.Values[20] != 40 {
		t.Errorf("stripe value = %f, want 40", s.Values[20])
	}
	if s.Values[5] != 200 {
		t.Errorf("background value = %f, want 200", s.Values[5])
	}
	if s.Mean >= 200 || s.Mean <= 40 {
		t.Errorf("row mean = %f, want between stripe and background", s.Mean)
	}
}

func TestExtractRejectsBadInput(t *testing.T) {
	img := imgutil.Uniform(10, 10, 128)
	cfg := model.DefaultConfig()

	if _, err := Extract(img, model.ROI{X0: 5, X1: 5, Y0: 0, Y1: 10}, nil, cfg); err == nil {
		t.Error("Extract with empty ROI should fail")
	}
	if _, err := Extract(img, model.ROI{X0: 0, X1: 20, Y0: 0, Y1: 10}, nil, cfg); err == nil {
		t.Error("Extract with out-of-bounds ROI should fail")
	}
}

func TestRejectOutliersDropsCorruptedRow(t *testing.T) {
	img := imgutil.Uniform(50, 40, 180)
	imgutil.FillRow(img, 8, 0) // saturated black scan line

	cfg := model.DefaultConfig()
	cfg.RowSampleStride = 4
	set, err := Extract(img, model.ROI{X0: 0, X1: 50, Y0: 0, Y1: 40}, nil, cfg)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	filtered, degraded := set.RejectOutliers(cfg.OutlierSigma)
	if degraded {
		t.Error("filtering should not have degraded")
	}
	if len(filtered.Samples) != len(set.Samples)-1 {
		t.Errorf("filtered rows = %d, want %d", len(filtered.Samples), len(set.Samples)-1)
	}
	for _, s := range filtered.Samples {
		if s.Row == 8 {
			t.Error("corrupted row survived outlier rejection")
		}
	}
}

func TestRejectOutliersFallback(t *testing.T) {
	// Two wildly different rows: any sigma window around the mean that
	// excludes both must fall back to the unfiltered set.
	set := Set{
		Width: 2,
		Samples: []Sample{
			{Row: 0, Values: []float64{0, 0}, Mean: 0},
			{Row: 1, Values: []float64{250, 250}, Mean: 250},
		},
	}

	filtered, degraded := set.RejectOutliers(0.1)
	if !degraded {
		t.Error("expected degraded fallback")
	}
	if len(filtered.Samples) != 2 {
		t.Errorf("fallback set has %d rows, want 2", len(filtered.Samples))
	}
}

func TestRejectOutliersUniform(t *testing.T) {
	img := imgutil.Uniform(30, 30, 90)
	cfg := model.DefaultConfig()
	set, err := Extract(img, model.ROI{X0: 0, X1: 30, Y0: 0, Y1: 30}, nil, cfg)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	filtered, degraded := set.RejectOutliers(cfg.OutlierSigma)
	if degraded || len(filtered.Samples) != len(set.Samples) {
		t.Error("identical rows should all survive filtering")
	}
}

func TestEnhancedCombinesMeanAndDeviation(t *testing.T) {
	set := Set{
		Width: 3,
		Samples: []Sample{
			{Values: []float64{10, 100, 10}},
			{Values: []float64{10, 200, 10}},
		},
	}

	out := set.Enhanced(nil)
	if len(out) != 3 {
		t.Fatalf("enhanced length = %d, want 3", len(out))
	}
	if out[0] != 10 {
		t.Errorf("constant column enhanced = %f, want 10 (stddev 0)", out[0])
	}
	// Middle column: mean 150, population stddev 50.
	if math.Abs(out[1]-200) > 1e-9 {
		t.Errorf("variable column enhanced = %f, want 200", out[1])
	}
}

func TestEnhancedEmpty(t *testing.T) {
	if out := (Set{}).Enhanced(nil); out != nil {
		t.Errorf("Enhanced of empty set = %v, want nil", out)
	}
}
