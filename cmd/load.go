package cmd

import (
	"context"
	"fmt"

	"bms-asset-manager/core/config"
	"bms-asset-manager/core/logger"
	"bms-asset-manager/core/reconcile"
	"bms-asset-manager/core/session"

	"go.uber.org/zap"
)

// loadSnapshot is the shared entry point for the read commands: load
// configuration, build a session, and run one synchronous load.
func loadSnapshot(ctx context.Context) (*reconcile.UnifiedModel, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	sess, err := session.New(cfg.Paths, l)
	if err != nil {
		return nil, nil, err
	}

	model, err := sess.Reload(ctx)
	if err != nil {
		return nil, nil, err
	}
	return model, l, nil
}
