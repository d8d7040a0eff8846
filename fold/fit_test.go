package fold

import (
	"math"
	"testing"

	"github.com/tsawler/plica/model"
)

func TestFitParabolaExact(t *testing.T) {
	// y = 2(x-30)^2 + 5 sampled on [20, 40].
	ys := make([]float64, 21)
	for i := range ys {
		x := float64(20 + i)
		ys[i] = 2*(x-30)*(x-30) + 5
	}

	p, ok := fitParabola(ys, 20)
	if !ok {
		t.Fatal("fitParabola failed on exact parabola")
	}
	if math.Abs(p.A-2) > 1e-9 {
		t.Errorf("A = %f, want 2", p.A)
	}
	if v := p.Vertex(); math.Abs(v-30) > 1e-9 {
		t.Errorf("Vertex = %f, want 30", v)
	}
	if y := p.At(30); math.Abs(y-5) > 1e-6 {
		t.Errorf("At(30) = %f, want 5", y)
	}
}

func TestFitParabolaTooFewPoints(t *testing.T) {
	if _, ok := fitParabola([]float64{1, 2}, 0); ok {
		t.Error("fitParabola should fail with fewer than 3 points")
	}
}

func TestFitParabolaFlatLine(t *testing.T) {
	// A flat profile fits with A approximately zero, which the locator
	// treats as degenerate curvature.
	ys := []float64{7, 7, 7, 7, 7, 7, 7}
	p, ok := fitParabola(ys, 0)
	if !ok {
		t.Fatal("fitParabola failed on flat line")
	}
	if math.Abs(p.A) > 1e-9 {
		t.Errorf("flat line A = %g, want ~0", p.A)
	}
}

func TestLinearFitExact(t *testing.T) {
	// x = 0.5y + 10
	points := []model.Point{
		{X: 10, Y: 0},
		{X: 15, Y: 10},
		{X: 20, Y: 20},
		{X: 25, Y: 30},
	}
	slope, intercept, ok := linearFit(points)
	if !ok {
		t.Fatal("linearFit failed")
	}
	if math.Abs(slope-0.5) > 1e-9 || math.Abs(intercept-10) > 1e-9 {
		t.Errorf("linearFit = %f, %f; want 0.5, 10", slope, intercept)
	}
}

func TestLinearFitDegenerate(t *testing.T) {
	if _, _, ok := linearFit([]model.Point{{X: 1, Y: 2}}); ok {
		t.Error("linearFit with one point should fail")
	}
	same := []model.Point{{X: 1, Y: 5}, {X: 2, Y: 5}}
	if _, _, ok := linearFit(same); ok {
		t.Error("linearFit with constant y should fail")
	}
}
