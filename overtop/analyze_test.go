package overtop

import (
	"context"
	"math/rand"
	"testing"

	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/gev"
	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// genSeries draws n observations from a GEV distribution by quantile inversion.
func genSeries(params gev.Params, n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	res := make([]float64, 0, n)
	for len(res) < n {
		u := rng.Float64()
		if u <= 0 || u >= 1 {
			continue
		}
		res = append(res, params.Quantile(u))
	}
	return res
}

func TestAnalyzeHealthySeries(t *testing.T) {
	params := gev.Params{Location: 90, Scale: 10, Shape: 0.1}
	series := genSeries(params, 50, 11)

	stats := Analyze(context.Background(), series, 100, 1)
	require.Len(t, stats, 22)

	for j, stat := range stats {
		require.False(t, stat.Absent(), "window %d should have statistics", j)
		assert.GreaterOrEqual(t, *stat.KSPValue, 0.0)
		assert.LessOrEqual(t, *stat.KSPValue, 1.0)
		assert.GreaterOrEqual(t, *stat.OvertopRisk, 0.0)
		assert.LessOrEqual(t, *stat.OvertopRisk, 1.0)
		assert.Equal(t, ToReturnPeriod(*stat.OvertopRisk), *stat.ReturnPeriod)
	}
}

func TestAnalyzeConstantSeries(t *testing.T) {
	series := make([]float64, 50)
	for i := range series {
		series[i] = 77.0
	}

	stats := Analyze(context.Background(), series, 100, 1)
	require.Len(t, stats, 22)
	for j, stat := range stats {
		assert.True(t, stat.Absent(), "window %d should be absent on a degenerate series", j)
	}
}

func TestAnalyzeShortSeries(t *testing.T) {
	// 40 samples: sliding windows starting past index 10 run off the end,
	// and so does the full span window. those fail alone, the rest still fit.
	params := gev.Params{Location: 50, Scale: 5, Shape: 0}
	series := genSeries(params, 40, 5)

	stats := Analyze(context.Background(), series, 60, 1)
	require.Len(t, stats, 22)

	for j := 0; j <= 10; j++ {
		assert.False(t, stats[j].Absent(), "window %d fits inside 40 samples", j)
	}
	for j := 11; j <= 21; j++ {
		assert.True(t, stats[j].Absent(), "window %d runs past the series end", j)
	}
}

func TestAnalyzeEmptySeries(t *testing.T) {
	stats := Analyze(context.Background(), nil, 100, 1)
	require.Len(t, stats, 22)
	for _, stat := range stats {
		assert.True(t, stat.Absent())
	}
}

func TestAnalyzeStepTwo(t *testing.T) {
	params := gev.Params{Location: 140, Scale: 5, Shape: 0}
	series := genSeries(params, 50, 23)

	stats := Analyze(context.Background(), series, 150, 2)
	assert.Len(t, stats, 12)
}

func TestAnalyzeDoesNotMutateSeries(t *testing.T) {
	params := gev.Params{Location: 90, Scale: 10, Shape: 0.1}
	series := genSeries(params, 50, 17)
	backup := make([]float64, len(series))
	copy(backup, series)

	Analyze(context.Background(), series, 100, 1)
	assert.Equal(t, backup, series)
}

func TestAnalyzeFullSpanCloseToAnalytical(t *testing.T) {
	// the full span fit over 50 known GEV samples should land near the
	// analytical exceedance probability of the generating parameters
	params := gev.Params{Location: 90, Scale: 10, Shape: 0.1}
	threshold := 100.0
	analytical := 1 - params.CDF(threshold)

	series := genSeries(params, 50, 29)
	stats := Analyze(context.Background(), series, threshold, 1)

	fullSpan := stats[len(stats)-1]
	require.False(t, fullSpan.Absent())
	assert.InDelta(t, analytical, *fullSpan.OvertopRisk, 0.3)
	assert.Equal(t, utils.FormatFloat(1 / *fullSpan.OvertopRisk, 3), *fullSpan.ReturnPeriod)
}
