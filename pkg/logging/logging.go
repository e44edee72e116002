// Package logging builds the server's zap logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger writing JSON ("json") or human-readable ("console")
// lines to stdout. The returned level can be changed while the logger is in
// use.
func New(format, level string) (*zap.Logger, zap.AtomicLevel, error) {
	var config zap.Config

	if format == "console" {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.DisableCaller = false
		config.DisableStacktrace = false
	}

	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if err := SetLevel(config.Level, level); err != nil {
		return nil, config.Level, err
	}

	logger, err := config.Build()
	if err != nil {
		return nil, config.Level, err
	}
	return logger, config.Level, nil
}

// SetLevel parses name and applies it to level. An empty name keeps the
// current level.
func SetLevel(level zap.AtomicLevel, name string) error {
	if name == "" {
		return nil
	}
	parsed, err := zapcore.ParseLevel(name)
	if err != nil {
		return err
	}
	level.SetLevel(parsed)
	return nil
}
