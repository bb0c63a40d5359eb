package scheduler

import (
	"context"
	"log/slog"
	"time"

	"post_watcher/internal/domain"
)

// Runner is the single entry point the driver invokes each tick.
type Runner interface {
	RunCycle(ctx context.Context) (*domain.CycleStats, error)
}

// Scheduler fires one polling cycle per interval. At most one cycle runs at
// a time: a tick that fires while a cycle is still in flight is dropped, not
// queued, so an overrunning cycle skips the next tick instead of catching up.
// There is no cycle-level cancellation; only per-request timeouts bound a
// slow cycle.
type Scheduler struct {
	runner   Runner
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(runner Runner, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		logger:   logger.With("component", "scheduler"),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runCycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
			// Drop the tick that may have fired during the cycle.
			select {
			case <-ticker.C:
			default:
			}
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := s.runner.RunCycle(ctx); err != nil {
		s.logger.Error("cycle failed", "error", err)
	}
}
