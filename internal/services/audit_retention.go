package services

import (
	"context"
	"log/slog"
	"time"
)

// AuditRetention periodically deletes audit logs that have outlived the retention window.
type AuditRetention struct {
	audit     AuditServiceInterface
	retention time.Duration
	interval  time.Duration
	logger    *slog.Logger
}

func NewAuditRetention(audit AuditServiceInterface, retention, interval time.Duration, logger *slog.Logger) *AuditRetention {
	if interval <= 0 {
		interval = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AuditRetention{
		audit:     audit,
		retention: retention,
		interval:  interval,
		logger:    logger,
	}
}

// Run sweeps once immediately and then every interval until ctx is cancelled.
func (r *AuditRetention) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *AuditRetention) sweep(ctx context.Context) int64 {
	deleted, err := r.audit.PurgeExpired(ctx, r.retention)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Error("audit retention sweep failed", slog.String("error", err.Error()))
		}
		return 0
	}

	if deleted > 0 {
		r.logger.Info("audit retention sweep",
			slog.Int64("deleted", deleted),
			slog.Duration("retention", r.retention),
		)
	}
	return deleted
}
