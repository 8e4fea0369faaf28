package entity

import (
	"time"
)

// Payment records one checkout settlement against a project.
type Payment struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	ProjectID string    `bson:"project_id" json:"project_id"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Evaluation stores the scoring output for a talent profile.
type Evaluation struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	TalentProfileID string    `bson:"talent_profile_id" json:"talent_profile_id"`
	ProjectID       string    `bson:"project_id" json:"project_id"`
	Score           float64   `bson:"score" json:"score"`
	Summary         *string   `bson:"summary,omitempty" json:"summary,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// AnalyticsEvent is a fire-and-forget usage event keyed to a user.
type AnalyticsEvent struct {
	ID        string         `bson:"_id,omitempty" json:"id"`
	UserID    *string        `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Name      string         `bson:"name" json:"name"`
	Props     map[string]any `bson:"props,omitempty" json:"props,omitempty"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
}
