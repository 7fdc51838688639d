package overtop

import (
	"context"
	"fmt"

	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/common"
	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/gev"
	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/model"
	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/utils"
	"go.uber.org/zap"
)

// Analyze runs the rolling window GEV analysis over one structure's series.
// each window gets its own fit, ks test and exceedance probability. a window
// whose fit fails, or that runs past the end of the series, keeps its slot in
// the output with absent statistics, the remaining windows still run.
// the result has fixed length WindowCount(step), in window order.
func Analyze(ctx context.Context, series []float64, threshold float64, step int) []model.WindowStat {
	logger := utils.GetLogger(ctx)

	windows := Windows(step)
	res := make([]model.WindowStat, len(windows))

	for j, w := range windows {
		stat, err := analyzeWindow(series, w, threshold)
		if err != nil {
			logger.Warn("window analysis failed, statistics marked absent",
				zap.Int("window", j), zap.Int("start", w.Start),
				zap.Int("length", w.Length), zap.Error(err))
			continue
		}
		res[j] = stat
	}

	return res
}

func analyzeWindow(series []float64, w Window, threshold float64) (model.WindowStat, error) {
	if w.End() > len(series) {
		return model.WindowStat{}, fmt.Errorf("window [%d:%d) but series has %d samples: %w",
			w.Start, w.End(), len(series), common.ErrorInsufficientData)
	}

	sample := series[w.Start:w.End()]

	params, err := gev.Fit(sample)
	if err != nil {
		return model.WindowStat{}, err
	}

	pValue := gev.KSTest(sample, params)
	risk := Risk(threshold, params)

	return model.WindowStat{
		KSPValue:     utils.Float64Ptr(pValue),
		OvertopRisk:  utils.Float64Ptr(risk),
		ReturnPeriod: utils.Float64Ptr(ToReturnPeriod(risk)),
	}, nil
}
