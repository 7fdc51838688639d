package gev

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// below this magnitude the shape is treated as zero and the
// gumbel limiting form is used instead of the general cdf
const gumbelShapeEps = 1e-9

// Params are the GEV parameters estimated from one sample window.
type Params struct {
	Location float64 // mu
	Scale    float64 // beta, always > 0
	Shape    float64 // xi
}

func (p Params) gumbel() distuv.GumbelRight {
	return distuv.GumbelRight{Mu: p.Location, Beta: p.Scale}
}

// CDF returns F(x) for the GEV distribution.
// outside the support: xi > 0 has a lower bound at mu - beta/xi, below it F = 0,
// xi < 0 has an upper bound there, above it F = 1.
func (p Params) CDF(x float64) float64 {
	if math.Abs(p.Shape) < gumbelShapeEps {
		return p.gumbel().CDF(x)
	}
	w := 1 + p.Shape*(x-p.Location)/p.Scale
	if w <= 0 {
		if p.Shape > 0 {
			return 0
		}
		return 1
	}
	return math.Exp(-math.Pow(w, -1/p.Shape))
}

// LogProb returns the log density at x, -Inf outside the support.
func (p Params) LogProb(x float64) float64 {
	if math.Abs(p.Shape) < gumbelShapeEps {
		return p.gumbel().LogProb(x)
	}
	w := 1 + p.Shape*(x-p.Location)/p.Scale
	if w <= 0 {
		return math.Inf(-1)
	}
	return -math.Log(p.Scale) - (1+1/p.Shape)*math.Log(w) - math.Pow(w, -1/p.Shape)
}

// Quantile returns x such that F(x) = u, for u in (0, 1).
func (p Params) Quantile(u float64) float64 {
	if u <= 0 || u >= 1 {
		return math.NaN()
	}
	if math.Abs(p.Shape) < gumbelShapeEps {
		return p.gumbel().Quantile(u)
	}
	return p.Location + p.Scale*(math.Pow(-math.Log(u), -p.Shape)-1)/p.Shape
}

func (p Params) Valid() bool {
	if math.IsNaN(p.Location) || math.IsInf(p.Location, 0) {
		return false
	}
	if math.IsNaN(p.Scale) || math.IsInf(p.Scale, 0) || p.Scale <= 0 {
		return false
	}
	if math.IsNaN(p.Shape) || math.IsInf(p.Shape, 0) {
		return false
	}
	return true
}
