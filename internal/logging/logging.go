// Package logging builds the zap logger shared by drift's components.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"drift/internal/config"
)

// New returns a JSON logger, or a console logger when cfg.Log.Development is
// set, writing to stderr at the configured level. Stdout is left to the
// command's own output and the MCP transport.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Log.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel())
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Named("drift"), nil
}
