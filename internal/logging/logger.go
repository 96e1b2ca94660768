// Package logging builds the zap logger used by the hopdist binary.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a zap logger configured for human-readable console output
// on stderr. The returned AtomicLevel lets callers change verbosity after
// configuration has been loaded.
func New(level string) (*zap.Logger, zap.AtomicLevel, error) {
	atomicLevel := zap.NewAtomicLevel()
	if err := SetLevel(atomicLevel, level); err != nil {
		return nil, atomicLevel, err
	}
	config := zap.NewProductionConfig()
	config.Level = atomicLevel
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	logger, err := config.Build()
	if err != nil {
		return nil, atomicLevel, err
	}

	return logger, atomicLevel, nil
}

// SetLevel parses level ("debug", "info", "warn", "error") into atomicLevel.
func SetLevel(atomicLevel zap.AtomicLevel, level string) error {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	atomicLevel.SetLevel(parsed)

	return nil
}
