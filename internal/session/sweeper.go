package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs the sweeper every five minutes.
const DefaultSweepSchedule = "@every 5m"

// Sweeper periodically expires idle sessions.
type Sweeper struct {
	cron     *cron.Cron
	store    *Store
	schedule string
	logger   *slog.Logger
}

// NewSweeper creates a sweeper for store. An empty schedule uses
// DefaultSweepSchedule.
func NewSweeper(store *Store, schedule string, logger *slog.Logger) *Sweeper {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	return &Sweeper{
		cron:     cron.New(),
		store:    store,
		schedule: schedule,
		logger:   logger,
	}
}

// ValidateSchedule reports whether spec is a usable cron schedule.
func ValidateSchedule(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", spec, err)
	}
	return nil
}

// Start registers the sweep job and starts the scheduler.
func (sw *Sweeper) Start() error {
	if _, err := sw.cron.AddFunc(sw.schedule, func() { sw.store.Sweep() }); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", sw.schedule, err)
	}
	sw.cron.Start()
	sw.logger.Info("session sweeper started", "schedule", sw.schedule, "ttl", sw.store.TTL().String())
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (sw *Sweeper) Stop() {
	<-sw.cron.Stop().Done()
	sw.logger.Info("session sweeper stopped")
}

// Run starts the sweeper and blocks until ctx is cancelled.
func (sw *Sweeper) Run(ctx context.Context) error {
	if err := sw.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	sw.Stop()
	return nil
}
