package mocks

import (
	"context"

	"github.com/natnael-haile/hireflow/internal/dataclient"
	usecasecontract "github.com/natnael-haile/hireflow/internal/usecase/contract"
)

// MockProjectUC is a mock implementation of the project use case
type MockProjectUC struct {
	// Control mock behavior
	ShouldFailCreate     bool
	ShouldFailList       bool
	ShouldFailAddTalent  bool
	ShouldFailListTalent bool
	ShouldFailPayment    bool
	NoRecruiterProfile   bool

	// Return values
	MockProject dataclient.Record
	MockTalent  dataclient.Record
	MockPayment dataclient.Record
}

var _ usecasecontract.IProjectUC = (*MockProjectUC)(nil)

func NewMockProjectUC() *MockProjectUC {
	return &MockProjectUC{
		MockProject: dataclient.Record{
			"id":              "mock-project-id",
			"code":            "PRJ-AB23CD",
			"title":           "Backend Engineer Search",
			"tier":            2,
			"tierName":        "Growth",
			"candidateSource": "own_upload",
			"status":          "awaiting",
			"paymentStatus":   "pending",
		},
		MockTalent: dataclient.Record{
			"id":        "mock-talent-id",
			"projectId": "mock-project-id",
			"fullName":  "Jane Candidate",
			"status":    "awaiting",
		},
		MockPayment: dataclient.Record{
			"id":        "mock-payment-id",
			"projectId": "mock-project-id",
			"amount":    499.0,
			"status":    "paid",
		},
	}
}

func (m *MockProjectUC) CreateProject(ctx context.Context, userID, title string, tier int, candidateSource string) (dataclient.Record, *dataclient.Error) {
	if m.NoRecruiterProfile {
		return nil, &dataclient.Error{Kind: dataclient.KindAuth, Message: "no recruiter profile for this account"}
	}
	if m.ShouldFailCreate {
		return nil, &dataclient.Error{Kind: dataclient.KindValidation, Message: "invalid tier"}
	}
	return m.MockProject, nil
}

func (m *MockProjectUC) ListProjects(ctx context.Context, userID string) ([]dataclient.Record, *dataclient.Error) {
	if m.ShouldFailList {
		return nil, &dataclient.Error{Kind: dataclient.KindTransport, Message: "list failed"}
	}
	return []dataclient.Record{m.MockProject}, nil
}

func (m *MockProjectUC) AddTalent(ctx context.Context, userID, projectID, fullName, fileName string) (dataclient.Record, *dataclient.Error) {
	if m.ShouldFailAddTalent {
		return nil, &dataclient.Error{Kind: dataclient.KindNotFound, Message: "project not found"}
	}
	return m.MockTalent, nil
}

func (m *MockProjectUC) ListTalent(ctx context.Context, userID, projectID string) ([]dataclient.Record, *dataclient.Error) {
	if m.ShouldFailListTalent {
		return nil, &dataclient.Error{Kind: dataclient.KindNotFound, Message: "project not found"}
	}
	return []dataclient.Record{m.MockTalent}, nil
}

func (m *MockProjectUC) RecordPayment(ctx context.Context, userID, projectID string, amount float64, currency string) (dataclient.Record, *dataclient.Error) {
	if m.ShouldFailPayment {
		return nil, &dataclient.Error{Kind: dataclient.KindNotFound, Message: "project not found"}
	}
	return m.MockPayment, nil
}
