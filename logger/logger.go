// Package logger builds the zap loggers used by the game and its systems.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the logger flavour.
type Config struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"` // json or console
	Development bool   `yaml:"development"`
}

func DefaultConfig() Config {
	return Config{Level: "info", Format: "console"}
}

func DevelopmentConfig() Config {
	return Config{Level: "debug", Format: "console", Development: true}
}

// New builds a logger from cfg. An unknown level falls back to info.
func New(cfg Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
		zc.Sampling = nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "json" {
		zc.Encoding = "json"
	} else {
		zc.Encoding = "console"
	}

	return zc.Build(zap.AddCaller())
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
