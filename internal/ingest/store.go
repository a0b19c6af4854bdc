package ingest

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"jobportal-backend/internal/models"
)

// JobStore is the slice of job persistence the ingestion and retention
// routines need.
type JobStore interface {
	ExistsByExternalID(ctx context.Context, jobID string) (bool, error)
	Insert(ctx context.Context, job models.Job) error
	DeleteScrapedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// MongoJobStore backs JobStore with the jobs collection.
type MongoJobStore struct {
	jobs *mongo.Collection
}

func NewMongoJobStore(jobs *mongo.Collection) *MongoJobStore {
	return &MongoJobStore{jobs: jobs}
}

func (s *MongoJobStore) ExistsByExternalID(ctx context.Context, jobID string) (bool, error) {
	err := s.jobs.FindOne(ctx, bson.M{"job_id": jobID}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

func (s *MongoJobStore) Insert(ctx context.Context, job models.Job) error {
	_, err := s.jobs.InsertOne(ctx, job)
	return err
}

func (s *MongoJobStore) DeleteScrapedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.jobs.DeleteMany(ctx, bson.M{
		"scraped":     true,
		"dateFetched": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
