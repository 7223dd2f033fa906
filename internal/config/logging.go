package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BuildLogger constructs the logger described by the deal file's logging
// section. levelOverride (from the CLI) takes precedence over the configured
// level; an empty level defaults to info and an empty format to json.
func (lc LoggingConfig) BuildLogger(levelOverride string) (*zap.Logger, error) {
	level := lc.Level
	if levelOverride != "" {
		level = levelOverride
	}
	if level == "" {
		level = "info"
	}
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var zapConfig zap.Config
	switch lc.Format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json", "":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", lc.Format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	if lc.OutputFile != "" {
		zapConfig.OutputPaths = []string{lc.OutputFile}
		zapConfig.ErrorOutputPaths = []string{lc.OutputFile}
	}
	return zapConfig.Build()
}
