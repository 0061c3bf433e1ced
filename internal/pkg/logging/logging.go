package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger: human-readable console output in
// development, JSON in production. Unknown levels fall back to info.
func New(level, env string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	parsed, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(parsed)

	return cfg.Build()
}
