// Package scheduler wires up the cron job that periodically triggers a
// monitoring run over the current job set.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"jobmate/monitor-service/internal/monitor"
)

// Scheduler wraps robfig/cron and manages the monitoring loop.
type Scheduler struct {
	cron         *cron.Cron
	orchestrator *monitor.Orchestrator
	spec         string // cron spec, e.g. "@every 24h"
	log          zerolog.Logger
}

// New creates a Scheduler that fires every intervalHours hours.
func New(orchestrator *monitor.Orchestrator, intervalHours int, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		orchestrator: orchestrator,
		spec:         fmt.Sprintf("@every %dh", intervalHours),
		log:          log.With().Str("component", "scheduler").Logger(),
	}
}

// Start registers the job and starts the scheduler. Also runs one cycle
// immediately so annotations are fresh without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.log.Info().Str("spec", s.spec).Msg("cron started")

	// Run immediately on startup (non-blocking)
	go s.runCycle(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info().Msg("cron stopped")
}

func (s *Scheduler) runCycle(ctx context.Context) {
	if _, err := s.orchestrator.Run(ctx); err != nil {
		s.log.Error().Err(err).Msg("monitoring run failed")
	}
}
