package entity

import (
	"fmt"
	"time"
)

// Project is a search campaign owned by exactly one recruiter. It is created
// on checkout completion and carries a unique human-readable code.
type Project struct {
	ID              string          `bson:"_id,omitempty" json:"id"`
	RecruiterID     string          `bson:"recruiter_id" json:"recruiter_id"`
	Code            string          `bson:"code" json:"code"`
	Title           string          `bson:"title" json:"title"`
	Tier            int             `bson:"tier" json:"tier"`
	CandidateSource CandidateSource `bson:"candidate_source" json:"candidate_source"`
	Status          ProjectStatus   `bson:"status" json:"status"`
	PaymentStatus   PaymentStatus   `bson:"payment_status" json:"payment_status"`
	CreatedAt       time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `bson:"updated_at" json:"updated_at"`
}

// ProjectStatus is the scoring lifecycle of a project. Transitions are
// monotonic forward-only; the activation sub-flow runs separately.
type ProjectStatus string

const (
	ProjectStatusAwaiting             ProjectStatus = "awaiting"
	ProjectStatusScoring              ProjectStatus = "scoring"
	ProjectStatusReady                ProjectStatus = "ready"
	ProjectStatusPendingActivation    ProjectStatus = "pending_activation"
	ProjectStatusActivationInProgress ProjectStatus = "activation_in_progress"
)

// statusRank orders the main scoring flow; the activation sub-flow has its own
// two-step order.
var statusRank = map[ProjectStatus]int{
	ProjectStatusAwaiting:             0,
	ProjectStatusScoring:              1,
	ProjectStatusReady:                2,
	ProjectStatusPendingActivation:    0,
	ProjectStatusActivationInProgress: 1,
}

func isActivation(s ProjectStatus) bool {
	return s == ProjectStatusPendingActivation || s == ProjectStatusActivationInProgress
}

// CanTransitionTo reports whether moving from the current status to next keeps
// the forward-only ordering. Moves between the scoring flow and the activation
// sub-flow are allowed only from "ready" into "pending_activation".
func (p *Project) CanTransitionTo(next ProjectStatus) bool {
	cur := p.Status
	if isActivation(cur) != isActivation(next) {
		return cur == ProjectStatusReady && next == ProjectStatusPendingActivation
	}
	curRank, ok := statusRank[cur]
	if !ok {
		return false
	}
	nextRank, ok := statusRank[next]
	if !ok {
		return false
	}
	return nextRank > curRank
}

// CandidateSource distinguishes recruiter-uploaded pools from network-sourced ones
type CandidateSource string

const (
	CandidateSourceOwnUpload CandidateSource = "own_upload"
	CandidateSourceNetwork   CandidateSource = "network"
)

// PaymentStatus tracks whether the project's checkout was settled
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// ProjectTier describes a purchasable tier with its display name and prices.
type ProjectTier struct {
	Tier         int     `json:"tier"`
	Name         string  `json:"name"`
	PriceMonthly float64 `json:"price_monthly"`
	PriceSetup   float64 `json:"price_setup"`
}

// Tiers returns the three purchasable project tiers.
func Tiers() []ProjectTier {
	return []ProjectTier{
		{Tier: 1, Name: "Starter", PriceMonthly: 490, PriceSetup: 0},
		{Tier: 2, Name: "Growth", PriceMonthly: 990, PriceSetup: 250},
		{Tier: 3, Name: "Scale", PriceMonthly: 1990, PriceSetup: 500},
	}
}

// TierByNumber returns the tier definition for n, or an error for an unknown tier.
func TierByNumber(n int) (ProjectTier, error) {
	for _, t := range Tiers() {
		if t.Tier == n {
			return t, nil
		}
	}
	return ProjectTier{}, fmt.Errorf("unknown project tier %d", n)
}
