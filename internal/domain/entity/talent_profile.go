package entity

import (
	"time"
)

// TalentProfile is one uploaded or network-sourced candidate file within a project.
type TalentProfile struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	ProjectID   string        `bson:"project_id" json:"project_id"`
	FullName    string        `bson:"full_name" json:"full_name"`
	FileName    *string       `bson:"file_name,omitempty" json:"file_name,omitempty"`
	Status      ProfileStatus `bson:"status" json:"status"`
	Shortlisted bool          `bson:"shortlisted" json:"shortlisted"`
	Score       *float64      `bson:"score,omitempty" json:"score,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

// ProfileStatus is the scoring state of a single candidate file
type ProfileStatus string

const (
	ProfileStatusAwaiting ProfileStatus = "awaiting"
	ProfileStatusScoring  ProfileStatus = "scoring"
	ProfileStatusScored   ProfileStatus = "scored"
)
