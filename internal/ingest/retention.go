package ingest

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Retention deletes scraped jobs past their retention window.
type Retention struct {
	jobs JobStore

	// cutoff is the timestamp the delete filters on. Nothing assigns it:
	// CleanupOldJobs computes a three-day cutoff locally, but the delete
	// was pointed at this field instead, and the completion log talks
	// about seven days. FIXME: pick one window (3d or 7d), set cutoff
	// from it in NewRetention, and drop the unset guard below.
	cutoff time.Time
}

func NewRetention(jobs JobStore) *Retention {
	return &Retention{jobs: jobs}
}

// CleanupOldJobs removes scraped jobs older than the retention cutoff. As
// wired today it always fails: the three-day cutoff computed here is not
// the cutoff the delete uses (see the field note above), so the routine
// bails out without deleting anything and the TTL index on expiresAt
// remains the only working expiry path.
func (r *Retention) CleanupOldJobs(ctx context.Context) (int64, error) {
	threeDaysAgo := time.Now().Add(-3 * 24 * time.Hour)

	if r.cutoff.IsZero() {
		return 0, fmt.Errorf("retention cutoff unset (computed three-day cutoff %s goes unused)",
			threeDaysAgo.Format(time.RFC3339))
	}

	deleted, err := r.jobs.DeleteScrapedBefore(ctx, r.cutoff)
	if err != nil {
		return 0, err
	}

	log.Printf("[retention] Deleted scraped jobs older than 7 days: deleted=%d", deleted)
	return deleted, nil
}
