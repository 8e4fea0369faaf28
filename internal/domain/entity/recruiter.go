package entity

import (
	"time"
)

// Recruiter is the profile record attached one-to-one to a User account.
// A User without a Recruiter is a valid state meaning "no permissions yet".
type Recruiter struct {
	ID          string          `bson:"_id,omitempty" json:"id"`
	UserID      string          `bson:"user_id" json:"user_id"`
	CompanyName string          `bson:"company_name" json:"company_name"`
	CompanySize *string         `bson:"company_size,omitempty" json:"company_size,omitempty"`
	Industry    *string         `bson:"industry,omitempty" json:"industry,omitempty"`
	Status      RecruiterStatus `bson:"status" json:"status"`
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updated_at"`
}

// RecruiterStatus represents the lifecycle state of a recruiter profile
type RecruiterStatus string

const (
	RecruiterStatusActive    RecruiterStatus = "active"
	RecruiterStatusSuspended RecruiterStatus = "suspended"
)
