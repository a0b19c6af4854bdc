package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job type enum values. Unrecognized types from the external API are
// normalized to Full-Time.
const (
	JobTypeFullTime   = "Full-Time"
	JobTypePartTime   = "Part-Time"
	JobTypeInternship = "Internship"
	JobTypeContract   = "Contract"
	JobTypeRemote     = "Remote"
	JobTypeHybrid     = "Hybrid"
)

// Job is a single job posting, either scraped from the external search API
// or posted by a job provider. BSON field names match the sortBy values
// accepted by the listing endpoints.
type Job struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	JobID       string              `bson:"job_id,omitempty" json:"job_id,omitempty"` // external id, unique when present
	Title       string              `bson:"title" json:"title"`
	Company     string              `bson:"company" json:"company"`
	Location    string              `bson:"location" json:"location"`
	JobType     string              `bson:"jobType" json:"jobType"`
	Experience  string              `bson:"experience" json:"experience"`
	Salary      string              `bson:"salary,omitempty" json:"salary,omitempty"`
	Description string              `bson:"description" json:"description"`
	Skills      []string            `bson:"skills" json:"skills"`
	PostedBy    *primitive.ObjectID `bson:"postedBy,omitempty" json:"postedBy,omitempty"`
	Scraped     bool                `bson:"scraped" json:"scraped"`
	DateFetched time.Time           `bson:"dateFetched" json:"dateFetched"`
	ExpiresAt   time.Time           `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"` // TTL index removes the record at this time
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}
