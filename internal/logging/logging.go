// Package logging configures the application logger. The TUI owns stdout
// and stderr, so logs are written to a file in the config directory.
// Degraded features and recovered faults are logged here and never shown
// in the interface.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a file-backed logger. Callers should defer logger.Sync().
func New(path string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
