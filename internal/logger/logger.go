package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jadenpinto/QuizzifyApp/internal/config"
)

// New builds the application logger. Production uses JSON output, every other environment the
// human-readable development encoder. Logs go to stderr unless a log file is configured,
// keeping stdout for the terminal front-end.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.Log.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zcfg.Level = level
	}

	if cfg.Log.File != "" {
		zcfg.OutputPaths = []string{cfg.Log.File}
	}

	return zcfg.Build()
}
