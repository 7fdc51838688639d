package overtop

import (
	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/gev"
	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/utils"
)

// Risk is the probability that one observation exceeds the crest
// elevation, 1 - F(threshold) under the fitted distribution. the GEV
// support edges are handled by the cdf itself, a threshold below a
// positive shape lower bound gives risk 1, above a negative shape
// upper bound gives risk 0.
func Risk(threshold float64, params gev.Params) float64 {
	return 1 - params.CDF(threshold)
}

// ToReturnPeriod converts an exceedance probability into the expected
// number of time steps between exceedances, 1/risk rounded to 3 digits.
// zero risk maps to the finite sentinel instead of Inf so downstream
// consumers stay finite safe.
func ToReturnPeriod(risk float64) float64 {
	if risk == 0 {
		return MaxReturnPeriod
	}
	res := 1 / risk
	if res > MaxReturnPeriod {
		return MaxReturnPeriod
	}
	return utils.FormatFloat(res, 3)
}
