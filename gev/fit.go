package gev

import (
	"fmt"
	"math"

	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/common"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

const (
	// euler-mascheroni constant, used by the gumbel moment estimators
	eulerGamma = 0.5772156649015329

	minFitSampleSize = 5

	// hard bound so a fit that can not converge still returns promptly
	maxFitIterations = 1000

	// finite penalty for parameter points outside the likelihood domain,
	// keeps the nelder-mead simplex moving instead of blowing up on Inf
	domainPenalty = 1e10
)

// Fit estimates GEV parameters for sample by maximum likelihood.
// the optimizer works on (mu, log beta, xi) so the scale stays positive.
// starting values come from the gumbel moment estimators with the shape
// near zero, the usual convention for extreme value fitting.
func Fit(sample []float64) (Params, error) {
	if len(sample) < minFitSampleSize {
		return Params{}, fmt.Errorf("sample size %d too small: %w", len(sample), common.ErrorFitNotConverged)
	}

	mean := stat.Mean(sample, nil)
	stddev := stat.StdDev(sample, nil)
	if stddev <= 0 || math.IsNaN(stddev) || math.IsInf(stddev, 0) {
		return Params{}, fmt.Errorf("degenerate sample, stddev %v: %w", stddev, common.ErrorFitNotConverged)
	}

	scale0 := stddev * math.Sqrt(6) / math.Pi
	x0 := []float64{mean - eulerGamma*scale0, math.Log(scale0), 0.1}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return negLogLikelihood(sample, x)
		},
	}
	settings := &optimize.Settings{MajorIterations: maxFitIterations}

	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil {
		return Params{}, fmt.Errorf("minimize: %v: %w", err, common.ErrorFitNotConverged)
	}
	if err := result.Status.Err(); err != nil {
		return Params{}, fmt.Errorf("minimize status %v: %w", result.Status, common.ErrorFitNotConverged)
	}
	if result.Status == optimize.IterationLimit || result.Status == optimize.FunctionEvaluationLimit {
		return Params{}, fmt.Errorf("iteration limit reached: %w", common.ErrorFitNotConverged)
	}
	if math.IsNaN(result.F) || result.F >= domainPenalty {
		return Params{}, fmt.Errorf("likelihood did not improve: %w", common.ErrorFitNotConverged)
	}

	params := Params{
		Location: result.X[0],
		Scale:    math.Exp(result.X[1]),
		Shape:    result.X[2],
	}
	if !params.Valid() {
		return Params{}, fmt.Errorf("fitted params invalid: %w", common.ErrorFitNotConverged)
	}
	return params, nil
}

// negLogLikelihood evaluates the negative GEV log likelihood at
// x = (mu, log beta, xi). points where any observation falls outside
// the support get a finite penalty that grows with the violation.
func negLogLikelihood(sample []float64, x []float64) float64 {
	mu, logBeta, xi := x[0], x[1], x[2]
	if math.Abs(logBeta) > 50 || math.Abs(xi) > 10 {
		return domainPenalty
	}
	beta := math.Exp(logBeta)

	res := 0.0
	for _, v := range sample {
		s := (v - mu) / beta
		if math.Abs(xi) < gumbelShapeEps {
			res += math.Log(beta) + s + math.Exp(-s)
			continue
		}
		w := 1 + xi*s
		if w <= 0 {
			return domainPenalty + math.Abs(w)
		}
		res += math.Log(beta) + (1+1/xi)*math.Log(w) + math.Pow(w, -1/xi)
	}
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return domainPenalty
	}
	return res
}
