// Package logging builds the zap loggers used by the command-line hosts.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to stderr. Verbose enables debug
// output such as rule swaps and clock transitions.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = !verbose
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg.Build()
}

// Must is New for main functions; it falls back to a no-op logger.
func Must(verbose bool) *zap.Logger {
	l, err := New(verbose)
	if err != nil {
		return zap.NewNop()
	}
	return l
}
