package httpserver

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/oliveiraclick/criadorLP/internal/editor"
)

// RunSweeper evicts idle editor sessions until ctx is done.
func RunSweeper(ctx context.Context, reg *editor.Registry, ttl time.Duration, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := reg.Sweep(ttl); n > 0 {
				logger.Info("editor sessions evicted", zap.Int("evicted", n), zap.Int("live", reg.Len()))
			}
		}
	}
}
