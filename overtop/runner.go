package overtop

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/common"
	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/model"
	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/utils"
	"go.uber.org/zap"
)

// Runner fans the per structure analysis out over a fixed worker pool.
// the workload is independent per structure, workers only read the shared
// inputs and each writes one slot of the result slice, indexed by the
// structure's input position, so the output order never depends on
// scheduling.
type Runner struct {
	step    int
	workers int
}

func NewRunner(step int, workers int) *Runner {
	if step < 1 {
		step = DefaultStep
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Runner{step: step, workers: workers}
}

// Run analyzes every structure against its observation column. series must
// align positionally with structures, a length mismatch invalidates the whole
// run and aborts with ErrorMalformedInput. a structure whose every window
// fails still gets its result slot, with absent statistics.
func (r *Runner) Run(ctx context.Context, structures []model.Structure, series [][]float64) ([]model.StructureResult, error) {
	if len(series) != len(structures) {
		return nil, fmt.Errorf("%d structures but %d observation columns: %w",
			len(structures), len(series), common.ErrorMalformedInput)
	}

	tasks := make(chan int)
	results := make([]model.StructureResult, len(structures))

	var wg sync.WaitGroup
	for w := 0; w < utils.IntMin(r.workers, len(structures)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				r.runOne(ctx, idx, structures, series, results)
			}
		}()
	}

feed:
	for idx := range structures {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- idx:
		}
	}
	close(tasks)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) runOne(ctx context.Context, idx int, structures []model.Structure,
	series [][]float64, results []model.StructureResult) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("structure analysis recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()),
				zap.String("structure", structures[idx].Name))
			results[idx] = model.StructureResult{Structure: structures[idx]}
		}
	}()

	s := structures[idx]
	results[idx] = model.StructureResult{
		Structure: s,
		Stats:     Analyze(ctx, series[idx], s.CrestElevation, r.step),
	}
}
