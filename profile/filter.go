package profile

import "math"

// Filter is a pure smoothing function over a brightness sequence. Filters
// must not mutate their input.
type Filter func([]float64) []float64

// Chain composes filters into one, applied left to right. Chaining nothing
// yields the identity filter.
func Chain(filters ...Filter) Filter {
	return func(xs []float64) []float64 {
		out := xs
		for _, f := range filters {
			out = f(out)
		}
		return out
	}
}

// Lowpass returns a discrete RC low-pass filter with cutoff frequency fc,
// suppressing per-column sensor noise while keeping the fold dip. The
// filter runs forward and then backward, so it is zero-phase: a causal
// single pass would drag the dip sideways and bias sub-pixel localization.
func Lowpass(fc float64) Filter {
	rc := 1.0 / (2 * math.Pi * fc)
	alpha := 1.0 / (rc + 1.0)
	pass := func(xs []float64) []float64 {
		ys := make([]float64, len(xs))
		ys[0] = xs[0]
		for t := 1; t < len(xs); t++ {
			ys[t] = ys[t-1] + alpha*(xs[t]-ys[t-1])
		}
		return ys
	}
	reverse := func(xs []float64) {
		for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
			xs[i], xs[j] = xs[j], xs[i]
		}
	}
	return func(xs []float64) []float64 {
		if len(xs) == 0 {
			return nil
		}
		ys := pass(xs)
		reverse(ys)
		ys = pass(ys)
		reverse(ys)
		return ys
	}
}

// MovingAverage returns a centered moving-average filter. The window is
// truncated near the sequence ends rather than padded.
func MovingAverage(window int) Filter {
	if window < 1 {
		window = 1
	}
	half := window / 2
	return func(xs []float64) []float64 {
		if len(xs) == 0 {
			return nil
		}
		ys := make([]float64, len(xs))
		for i := range xs {
			lo := i - half
			if lo < 0 {
				lo = 0
			}
			hi := i + half + 1
			if hi > len(xs) {
				hi = len(xs)
			}
			var sum float64
			for j := lo; j < hi; j++ {
				sum += xs[j]
			}
			ys[i] = sum / float64(hi-lo)
		}
		return ys
	}
}

// mean computes the arithmetic mean of a slice of float64 values.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev computes the population standard deviation of a slice of values.
func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		diff := v - m
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(values)))
}
