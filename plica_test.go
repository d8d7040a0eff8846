package plica

import (
	"math"
	"testing"

	"github.com/tsawler/plica/internal/imgutil"
	"github.com/tsawler/plica/model"
)

func TestDetectFacade(t *testing.T) {
	img := imgutil.VerticalStripe(400, 256, 200, 2, 220, 30)

	result, err := Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if !result.Present {
		t.Fatal("fold not detected")
	}
	if math.Abs(result.Fold.X-200) > 1 {
		t.Errorf("X = %f, want 200 +/- 1", result.Fold.X)
	}
}

func TestDetectUnknownDetector(t *testing.T) {
	img := imgutil.Uniform(100, 100, 200)
	if _, err := Detect(img, WithDetector("nope")); err == nil {
		t.Error("unknown detector name should fail")
	}
}

func TestDetectWithSideHint(t *testing.T) {
	img := imgutil.VerticalStripe(500, 200, 50, 2, 220, 30)

	result, err := Detect(img, WithSide(model.SideLeft))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if result.Side != model.SideLeft {
		t.Errorf("Side = %v, want left (hint must be honored)", result.Side)
	}
	if !result.Present {
		t.Fatal("fold not detected in left ROI")
	}
	if math.Abs(result.Fold.X-50) > 1 {
		t.Errorf("X = %f, want 50 +/- 1", result.Fold.X)
	}
}

func TestSplitFacadePassthrough(t *testing.T) {
	img := imgutil.Uniform(400, 200, 230)

	res, err := Split(img)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if res.FoldPresent {
		t.Error("uniform image should report no fold")
	}
	if res.Single == nil {
		t.Error("passthrough result should carry the source image")
	}
}

func TestSplitFacadeSmartCrop(t *testing.T) {
	img := imgutil.Uniform(400, 128, 30)
	imgutil.FillColumns(img, 50, 350, 220)
	imgutil.FillColumns(img, 198, 203, 60) // the fold shadow

	res, err := Split(img, WithSide(model.SideCenter), WithSmartCrop())
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if !res.FoldPresent {
		t.Fatal("fold not detected")
	}

	// Both pages lose roughly the 50-pixel background margin.
	if res.Left.Bounds().Dx() > 160 || res.Right.Bounds().Dx() > 160 {
		t.Errorf("smart crop kept margins: widths %d, %d",
			res.Left.Bounds().Dx(), res.Right.Bounds().Dx())
	}
}

func TestDetectConfigReachesEngine(t *testing.T) {
	img := imgutil.VerticalStripe(400, 256, 200, 2, 220, 30)

	cfg := model.DefaultConfig()
	cfg.MinFoldDepth = 10_000 // impossible contrast: nothing qualifies

	result, err := Detect(img, WithConfig(cfg))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if result.Present {
		t.Error("config override did not reach the locator")
	}
}
