// Package scheduler wires up the cron timers that drive the ingestion and
// retention routines.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"jobportal-backend/internal/ingest"
)

// Scheduler wraps robfig/cron and owns the two periodic routines: an hourly
// job fetch and a daily cleanup of old scraped jobs. The timers are
// independent; a failed tick is logged and not retried before the next one.
type Scheduler struct {
	cron      *cron.Cron
	ingest    *ingest.Service
	retention *ingest.Retention
}

func New(ingestSvc *ingest.Service, retention *ingest.Retention) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		ingest:    ingestSvc,
		retention: retention,
	}
}

// Start registers both timers and starts the cron loop. One ingestion pass
// runs immediately so the listing is populated without waiting for the
// first hourly tick.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc("0 * * * *", func() { s.runIngest(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc ingest: %w", err)
	}
	if _, err := s.cron.AddFunc("0 0 * * *", func() { s.runRetention(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc retention: %w", err)
	}

	s.cron.Start()
	log.Println("[scheduler] Cron started")

	go s.runIngest(ctx)

	return nil
}

// Stop shuts down the scheduler; in-flight runs are not interrupted.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

func (s *Scheduler) runIngest(ctx context.Context) {
	log.Println("[scheduler] Running scheduled job fetch...")

	result, err := s.ingest.Run(ctx)
	if err != nil {
		log.Printf("[scheduler] Failed to fetch jobs: %v", err)
		return
	}

	log.Printf("[scheduler] Job fetch completed: fetched=%d stored=%d errors=%d",
		result.Fetched, result.Stored, result.Errors)
}

func (s *Scheduler) runRetention(ctx context.Context) {
	log.Println("[scheduler] Deleting old scraped jobs...")

	deleted, err := s.retention.CleanupOldJobs(ctx)
	if err != nil {
		log.Printf("[scheduler] Failed to delete scraped jobs: %v", err)
		return
	}

	log.Printf("[scheduler] Deleted %d scraped jobs", deleted)
}
