package utils

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

func init() {
	cfg := zap.NewProductionConfig()
	cfg.Level = logLevel
	zap.ReplaceGlobals(zap.Must(cfg.Build()))
}

func GetLogger(ctx context.Context) *zap.Logger {
	return zap.L()
}

// SetLogLevel updates the global logger level, level is one of
// debug, info, warn, error.
func SetLogLevel(level string) error {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	logLevel.SetLevel(parsed)
	return nil
}

func GetPanicInfo() string {
	buf := make([]byte, 16384)
	l := runtime.Stack(buf, false)
	return string(buf[:l])
}
