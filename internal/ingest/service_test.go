package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal-backend/internal/models"
)

type fakeFetcher struct {
	jobs []APIJob
	err  error
}

func (f *fakeFetcher) Fetch(ctx context.Context) ([]APIJob, error) {
	return f.jobs, f.err
}

type fakeStore struct {
	existing    map[string]bool
	inserted    []models.Job
	insertErr   error
	deleteCalls int
}

func (s *fakeStore) ExistsByExternalID(ctx context.Context, jobID string) (bool, error) {
	return s.existing[jobID], nil
}

func (s *fakeStore) Insert(ctx context.Context, job models.Job) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, job)
	return nil
}

func (s *fakeStore) DeleteScrapedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	s.deleteCalls++
	return 0, nil
}

func TestRun_SkipsExistingJobs(t *testing.T) {
	fetcher := &fakeFetcher{jobs: []APIJob{
		{JobID: "ext-1", Title: "Go Developer", Employer: "Acme"},
		{JobID: "ext-2", Title: "Rust Developer", Employer: "Initech"},
	}}
	store := &fakeStore{existing: map[string]bool{"ext-1": true}}

	result, err := NewService(fetcher, store).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Fetched)
	assert.Equal(t, 1, result.Stored)
	assert.Equal(t, 0, result.Errors)

	// Only the new posting is inserted; the existing one is left alone.
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "ext-2", store.inserted[0].JobID)
}

func TestRun_FetchErrorPropagates(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("invalid API response")}
	store := &fakeStore{existing: map[string]bool{}}

	_, err := NewService(fetcher, store).Run(context.Background())
	require.Error(t, err)
	assert.Empty(t, store.inserted)
}

func TestRun_PerItemErrorsDoNotAbortPass(t *testing.T) {
	fetcher := &fakeFetcher{jobs: []APIJob{
		{JobID: "ext-1", Title: "Go Developer"},
		{JobID: "ext-2", Title: "Rust Developer"},
	}}
	store := &fakeStore{existing: map[string]bool{}, insertErr: errors.New("write failed")}

	result, err := NewService(fetcher, store).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Fetched)
	assert.Equal(t, 0, result.Stored)
	assert.Equal(t, 2, result.Errors)
}

func TestRun_StoresNormalizedJob(t *testing.T) {
	fetcher := &fakeFetcher{jobs: []APIJob{
		{JobID: "ext-9", Title: "Platform Engineer", EmploymentType: "remote", Description: "senior position"},
	}}
	store := &fakeStore{existing: map[string]bool{}}

	_, err := NewService(fetcher, store).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	job := store.inserted[0]
	assert.True(t, job.Scraped)
	assert.Equal(t, models.JobTypeRemote, job.JobType)
	assert.Equal(t, ExperienceSenior, job.Experience)
}
