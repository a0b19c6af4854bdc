package ingest

import (
	"context"
	"fmt"
	"log"
	"time"
)

// retentionWindow is how long a scraped job lives before the TTL index on
// expiresAt removes it.
const retentionWindow = 7 * 24 * time.Hour

// Result aggregates the counts of one ingestion pass.
type Result struct {
	Fetched int
	Stored  int
	Errors  int
}

// Service runs the periodic ingestion pass: fetch one page from the
// external API, skip postings already stored under their external id,
// insert the rest. Sequential by design, no retry or backoff.
type Service struct {
	fetcher Fetcher
	jobs    JobStore
}

func NewService(fetcher Fetcher, jobs JobStore) *Service {
	return &Service{fetcher: fetcher, jobs: jobs}
}

// Run executes a single ingestion pass. Per-item failures are counted and
// logged without aborting the pass; a fetch failure or malformed response
// aborts the whole pass and propagates to the caller.
func (s *Service) Run(ctx context.Context) (Result, error) {
	log.Println("[ingest] Fetching jobs from RapidAPI...")

	apiJobs, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetch jobs: %w", err)
	}

	result := Result{Fetched: len(apiJobs)}
	for _, api := range apiJobs {
		exists, err := s.jobs.ExistsByExternalID(ctx, api.JobID)
		if err != nil {
			result.Errors++
			log.Printf("[ingest] Error storing job (%s): %v", api.JobID, err)
			continue
		}
		if exists {
			// Stale duplicates are never refreshed.
			log.Printf("[ingest] Skipping existing job: %s", api.Title)
			continue
		}

		job := NormalizeJob(api, time.Now())
		if err := s.jobs.Insert(ctx, job); err != nil {
			result.Errors++
			log.Printf("[ingest] Error storing job (%s): %v", api.JobID, err)
			continue
		}

		result.Stored++
		log.Printf("[ingest] Stored: %s at %s", job.Title, job.Company)
	}

	log.Printf("[ingest] Job fetch completed: fetched=%d stored=%d errors=%d",
		result.Fetched, result.Stored, result.Errors)
	return result, nil
}
