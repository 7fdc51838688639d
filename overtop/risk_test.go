package overtop

import (
	"testing"

	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/gev"
	"github.com/stretchr/testify/assert"
)

func TestRiskBoundsAndMonotonicity(t *testing.T) {
	tests := []struct {
		name   string
		params gev.Params
	}{
		{"positive shape", gev.Params{Location: 90, Scale: 10, Shape: 0.1}},
		{"negative shape", gev.Params{Location: 190, Scale: 15, Shape: -0.05}},
		{"gumbel", gev.Params{Location: 140, Scale: 5, Shape: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := 2.0
			for x := tt.params.Location - 1000; x <= tt.params.Location+1000; x += 10 {
				r := Risk(x, tt.params)
				assert.GreaterOrEqual(t, r, 0.0)
				assert.LessOrEqual(t, r, 1.0)
				assert.LessOrEqual(t, r, prev, "raising the threshold must not raise the risk")
				prev = r
			}
		})
	}
}

func TestRiskSupportEdges(t *testing.T) {
	// threshold below the lower support bound of a positive shape fit
	heavy := gev.Params{Location: 100, Scale: 10, Shape: 0.5}
	assert.Equal(t, 1.0, Risk(100-10/0.5-1, heavy))

	// threshold above the upper support bound of a negative shape fit
	bounded := gev.Params{Location: 100, Scale: 10, Shape: -0.5}
	assert.Equal(t, 0.0, Risk(100+10/0.5+1, bounded))
}

func TestToReturnPeriod(t *testing.T) {
	assert.Equal(t, 1e12, ToReturnPeriod(0))
	assert.Equal(t, 2.0, ToReturnPeriod(0.5))
	assert.Equal(t, 3.333, ToReturnPeriod(0.3))
	assert.Equal(t, 1.0, ToReturnPeriod(1))
	assert.Equal(t, 1e12, ToReturnPeriod(1e-15), "huge periods are capped at the sentinel")
}
