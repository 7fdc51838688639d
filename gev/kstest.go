package gev

import (
	"math"
	"sort"
)

// KSTest runs the two sided one sample Kolmogorov-Smirnov test comparing
// the empirical cdf of sample against the fitted GEV cdf, and returns the
// asymptotic p value. the sample is copied before sorting, the caller's
// slice is never touched.
func KSTest(sample []float64, params Params) float64 {
	n := len(sample)
	if n == 0 {
		return math.NaN()
	}

	sorted := make([]float64, n)
	copy(sorted, sample)
	sort.Float64s(sorted)

	// D is the largest gap between the empirical step function and F,
	// checked on both sides of every step
	d := 0.0
	fn := float64(n)
	for i, v := range sorted {
		f := params.CDF(v)
		upper := float64(i+1)/fn - f
		lower := f - float64(i)/fn
		d = math.Max(d, math.Max(upper, lower))
	}

	// small sample correction from the usual asymptotic approximation
	sqrtN := math.Sqrt(fn)
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d
	return kolmogorovPValue(lambda)
}

// kolmogorovPValue evaluates Q_KS(lambda) = 2 * sum_{k>=1} (-1)^(k-1) exp(-2 k^2 lambda^2).
// the series alternates and converges fast for lambda away from zero,
// when it fails to settle the p value is effectively 1.
func kolmogorovPValue(lambda float64) float64 {
	a2 := -2 * lambda * lambda
	sum, prevTerm := 0.0, 0.0
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := sign * 2 * math.Exp(a2*float64(k)*float64(k))
		sum += term
		if math.Abs(term) <= 0.001*prevTerm || math.Abs(term) <= 1e-8*sum {
			return math.Max(0, math.Min(1, sum))
		}
		prevTerm = math.Abs(term)
		sign = -sign
	}
	return 1
}
