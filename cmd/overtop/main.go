package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/config"
	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/dataset"
	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/overtop"
	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/utils"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		utils.GetLogger(ctx).Error("analysis run failed", zap.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if err := utils.SetLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	logger := utils.GetLogger(ctx)
	defer logger.Sync()

	structures, err := dataset.LoadStructures(ctx, cfg.MetadataPath)
	if err != nil {
		return err
	}
	series, err := dataset.LoadObservations(ctx, cfg.ObservationsPath, len(structures))
	if err != nil {
		return err
	}

	logger.Info("starting overtopping analysis",
		zap.Int("structures", len(structures)),
		zap.Int("step", cfg.Step),
		zap.Int("workers", cfg.Workers),
		zap.Int("windows per structure", overtop.WindowCount(cfg.Step)))

	runner := overtop.NewRunner(cfg.Step, cfg.Workers)
	results, err := runner.Run(ctx, structures, series)
	if err != nil {
		return err
	}

	table := overtop.AssembleTable(results, cfg.Step)
	return dataset.WriteResults(ctx, cfg.OutputPath, table)
}
