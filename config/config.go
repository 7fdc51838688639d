// Package config holds the analysis run configuration, loaded by layering
// defaults, an optional yaml file and environment variables.
package config

import (
	"fmt"
	"runtime"

	"github.com/saemrnt59/Dam-Overtopping-Frequency-Analysis/common"
)

type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Step is the sliding window stride in samples. the window lengths
	// themselves are fixed by the analysis convention.
	Step int `koanf:"step"`

	// Workers bounds the structure level worker pool.
	Workers int `koanf:"workers"`

	// MetadataPath is the structure metadata csv.
	MetadataPath string `koanf:"metadata_path"`

	// ObservationsPath is the water level csv, one column per structure.
	ObservationsPath string `koanf:"observations_path"`

	// OutputPath receives the result table.
	OutputPath string `koanf:"output_path"`
}

// New returns a Config with the defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Step:             1,
		Workers:          runtime.NumCPU(),
		MetadataPath:     "structures.csv",
		ObservationsPath: "observations.csv",
		OutputPath:       "results.csv",
	}
}

func (c *Config) Validate() error {
	if c.Step < 1 {
		return fmt.Errorf("step must be >= 1, got %d: %w", c.Step, common.ErrorInvalidValue)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d: %w", c.Workers, common.ErrorInvalidValue)
	}
	if c.MetadataPath == "" || c.ObservationsPath == "" || c.OutputPath == "" {
		return fmt.Errorf("input and output paths must not be empty: %w", common.ErrorInvalidValue)
	}
	return nil
}
