// internal/logging/logging.go

// Package logging builds the process logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger for the CLI. Debug lowers the level to
// debug and adds caller information.
func New(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.TimeKey = ""
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg.DisableCaller = true
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.DisableCaller = false
	}
	return cfg.Build()
}

// Must is New that never fails; on error it returns a no-op logger.
func Must(debug bool) *zap.Logger {
	log, err := New(debug)
	if err != nil {
		return zap.NewNop()
	}
	return log
}
