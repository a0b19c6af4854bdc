package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles accepted at registration.
const (
	RoleJobSeeker   = "jobseeker"
	RoleJobProvider = "jobprovider"
)

type User struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string               `bson:"name" json:"name"`
	Email       string               `bson:"email" json:"email"` // lowercased and trimmed before storage; unique index
	Password    string               `bson:"password" json:"-"`
	Role        string               `bson:"role" json:"role"`
	SavedJobs   []primitive.ObjectID `bson:"savedJobs" json:"savedJobs"`
	AppliedJobs []primitive.ObjectID `bson:"appliedJobs" json:"appliedJobs"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}
