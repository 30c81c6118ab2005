package usecase

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper periodically deletes pending registrations older than the
// retention window, covering both unconfirmed signups and stale reset
// requests. Deletion is a set predicate, so overlapping or missed runs
// are harmless; a failed sweep is logged and retried on the next tick.
type Sweeper struct {
	pending   PendingRepository
	interval  time.Duration
	retention time.Duration
}

// NewSweeper creates a Sweeper that runs every interval and deletes rows
// older than retention.
func NewSweeper(pending PendingRepository, interval, retention time.Duration) *Sweeper {
	return &Sweeper{
		pending:   pending,
		interval:  interval,
		retention: retention,
	}
}

// Run loops until ctx is cancelled. Cancellation is honored between ticks.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("pending sweeper started", "interval", s.interval, "retention", s.retention)
	for {
		select {
		case <-ctx.Done():
			slog.Info("pending sweeper stopped")
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.retention)
			n, err := s.pending.DeleteOlderThan(ctx, cutoff)
			if err != nil {
				slog.Error("pending sweep failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("pending sweep", "deleted", n)
			}
		}
	}
}
