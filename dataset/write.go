package dataset

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/utils"
	"go.uber.org/zap"
)

// WriteResults writes the assembled result table, header included, as csv.
func WriteResults(ctx context.Context, path string, table [][]string) error {
	logger := utils.GetLogger(ctx)

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(table); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("result table written", zap.String("path", path), zap.Int("rows", len(table)))
	return nil
}
