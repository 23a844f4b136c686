// Package stats periodically refreshes tutorial count metrics from the database.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"tutorial-hub/internal/repository"
)

// Refresher runs a scheduled job that counts tutorials in the database and
// pushes the results to metric gauges via the injected setters.
type Refresher struct {
	repo         repository.TutorialRepository
	logger       *slog.Logger
	schedule     string
	timeout      time.Duration
	setTotal     func(int64)
	setPublished func(int64)

	cron *cron.Cron
}

// NewRefresher creates a stats refresher.
//
// Environment variables:
//   - STATS_REFRESH_SCHEDULE: cron expression or @every syntax (default: "@every 1m")
//   - STATS_REFRESH_TIMEOUT: duration string for a single refresh (default: 10s)
func NewRefresher(repo repository.TutorialRepository, logger *slog.Logger, setTotal, setPublished func(int64)) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}

	schedule := os.Getenv("STATS_REFRESH_SCHEDULE")
	if schedule == "" {
		schedule = "@every 1m"
	}

	timeout := 10 * time.Second
	if v := os.Getenv("STATS_REFRESH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		} else {
			logger.Warn("invalid STATS_REFRESH_TIMEOUT, using default",
				slog.String("value", v))
		}
	}

	return &Refresher{
		repo:         repo,
		logger:       logger,
		schedule:     schedule,
		timeout:      timeout,
		setTotal:     setTotal,
		setPublished: setPublished,
	}
}

// Start refreshes once immediately, then on the configured schedule.
func (r *Refresher) Start() error {
	r.Refresh(context.Background())

	c := cron.New()
	if _, err := c.AddFunc(r.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		r.Refresh(ctx)
	}); err != nil {
		return fmt.Errorf("Start: invalid schedule %q: %w", r.schedule, err)
	}
	c.Start()
	r.cron = c

	r.logger.Info("stats refresher started",
		slog.String("schedule", r.schedule),
		slog.Duration("timeout", r.timeout))
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (r *Refresher) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
	r.logger.Info("stats refresher stopped")
}

// Refresh reads the current counts and updates the gauges.
// Errors are logged and skipped so the previous gauge values survive a
// transient database failure.
func (r *Refresher) Refresh(ctx context.Context) {
	total, err := r.repo.CountTutorials(ctx)
	if err != nil {
		r.logger.Error("failed to count tutorials", slog.Any("error", err))
		return
	}

	published, err := r.repo.CountPublished(ctx)
	if err != nil {
		r.logger.Error("failed to count published tutorials", slog.Any("error", err))
		return
	}

	r.setTotal(total)
	r.setPublished(published)

	r.logger.Debug("tutorial stats refreshed",
		slog.Int64("total", total),
		slog.Int64("published", published))
}
