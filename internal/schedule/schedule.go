package schedule

import (
	"context"
	"log/slog"
	"time"
)

type Task interface {
	Run(ctx context.Context) error
	Name() string
}

// IntervalRunner runs a task on a fixed interval until ctx is cancelled.
// Each run gets its own timeout so one stuck run cannot stall the loop.
type IntervalRunner struct {
	interval time.Duration
	timeout  time.Duration
}

func NewIntervalRunner(interval, timeout time.Duration) *IntervalRunner {
	return &IntervalRunner{
		interval: interval,
		timeout:  timeout,
	}
}

func (r *IntervalRunner) Run(ctx context.Context, task Task) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Info("scheduled task started", "task", task.Name(), "interval", r.interval)
	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduled task stopped", "task", task.Name())
			return
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(ctx, r.timeout)
			if err := task.Run(runCtx); err != nil {
				slog.Error("scheduled task run failed", "task", task.Name(), "error", err)
			}
			cancel()
		}
	}
}
