package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/meshfit/meshfit-backend/config"
)

// NewLogger builds a production logger in production and a development logger elsewhere, both
// at the configured level.
func NewLogger(cfg *config.AppConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	var zc zap.Config
	if cfg.Environment == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("version", cfg.Version)), nil
}
