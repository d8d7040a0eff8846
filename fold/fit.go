package fold

import (
	"math"

	"github.com/tsawler/plica/model"
)

// degenerateCurvature is the |a| below which a fitted parabola carries no
// usable curvature information.
const degenerateCurvature = 1e-6

// fitParabola performs a least-squares fit of y = a·x² + b·x + c over the
// points (x0+i, ys[i]). It reports false when the system is singular or
// there are fewer than three points.
func fitParabola(ys []float64, x0 int) (model.Parabola, bool) {
	if len(ys) < 3 {
		return model.Parabola{}, false
	}

	var s0, s1, s2, s3, s4 float64
	var t0, t1, t2 float64
	for i, y := range ys {
		x := float64(x0 + i)
		x2 := x * x
		s0++
		s1 += x
		s2 += x2
		s3 += x2 * x
		s4 += x2 * x2
		t0 += y
		t1 += x * y
		t2 += x2 * y
	}

	a := [3][3]float64{
		{s4, s3, s2},
		{s3, s2, s1},
		{s2, s1, s0},
	}
	b := [3]float64{t2, t1, t0}

	sol, ok := solve3(a, b)
	if !ok {
		return model.Parabola{}, false
	}
	return model.Parabola{A: sol[0], B: sol[1], C: sol[2]}, true
}

// solve3 solves a 3x3 linear system by Gaussian elimination with partial
// pivoting.
func solve3(a [3][3]float64, b [3]float64) ([3]float64, bool) {
	for col := 0; col < 3; col++ {
		pivot := col
		for row := col + 1; row < 3; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return [3]float64{}, false
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for row := col + 1; row < 3; row++ {
			f := a[row][col] / a[col][col]
			for k := col; k < 3; k++ {
				a[row][k] -= f * a[col][k]
			}
			b[row] -= f * b[col]
		}
	}

	var x [3]float64
	for row := 2; row >= 0; row-- {
		sum := b[row]
		for k := row + 1; k < 3; k++ {
			sum -= a[row][k] * x[k]
		}
		x[row] = sum / a[row][row]
	}
	return x, true
}

// linearFit performs a least-squares regression of x on y over the sample
// points, returning x = slope·y + intercept. It reports false when fewer
// than two points are supplied or all points share the same y.
func linearFit(points []model.Point) (slope, intercept float64, ok bool) {
	if len(points) < 2 {
		return 0, 0, false
	}

	var sy, sx, syy, sxy float64
	n := float64(len(points))
	for _, p := range points {
		sy += p.Y
		sx += p.X
		syy += p.Y * p.Y
		sxy += p.X * p.Y
	}
	sy /= n
	sx /= n
	syy /= n
	sxy /= n

	den := syy - sy*sy
	if den == 0 {
		return 0, 0, false
	}
	slope = (sxy - sx*sy) / den
	intercept = sx - slope*sy
	return slope, intercept, true
}
