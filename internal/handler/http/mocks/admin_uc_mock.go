package mocks

import (
	"context"

	"github.com/natnael-haile/hireflow/internal/dataclient"
	usecasecontract "github.com/natnael-haile/hireflow/internal/usecase/contract"
)

// MockAdminUC is a mock implementation of the admin use case
type MockAdminUC struct {
	ShouldFailMetrics   bool
	ShouldFailGrantRole bool
	NotWhitelisted      bool
	TalentAlreadyScored bool

	MockMetrics dataclient.Record
	MockUser    dataclient.Record
	MockTalent  dataclient.Record
}

var _ usecasecontract.IAdminUC = (*MockAdminUC)(nil)

func NewMockAdminUC() *MockAdminUC {
	return &MockAdminUC{
		MockMetrics: dataclient.Record{
			"totalUsers":          int64(12),
			"totalRecruiters":     int64(8),
			"totalProjects":       int64(5),
			"totalTalentProfiles": int64(40),
			"paidProjects":        int64(3),
			"totalRevenue":        1497.0,
		},
		MockUser: dataclient.Record{
			"id":    "mock-user-id",
			"email": "promoted@example.com",
			"roles": []string{"recruiter", "ops_manager"},
		},
		MockTalent: dataclient.Record{
			"id":          "mock-talent-id",
			"projectId":   "mock-project-id",
			"fullName":    "Mock Candidate",
			"status":      "scored",
			"shortlisted": true,
			"score":       87.5,
		},
	}
}

func (m *MockAdminUC) DashboardMetrics(ctx context.Context) (dataclient.Record, *dataclient.Error) {
	if m.ShouldFailMetrics {
		return nil, &dataclient.Error{Kind: dataclient.KindTransport, Message: "metrics failed"}
	}
	return m.MockMetrics, nil
}

func (m *MockAdminUC) GrantRole(ctx context.Context, grantedBy, email, role string) (dataclient.Record, *dataclient.Error) {
	if m.NotWhitelisted {
		return nil, &dataclient.Error{Kind: dataclient.KindAuth, Message: "email is not whitelisted for admin access"}
	}
	if m.ShouldFailGrantRole {
		return nil, &dataclient.Error{Kind: dataclient.KindValidation, Message: "unknown role"}
	}
	return m.MockUser, nil
}

func (m *MockAdminUC) ScoreTalent(ctx context.Context, talentProfileID string, score float64, shortlisted bool, summary string) (dataclient.Record, *dataclient.Error) {
	if m.TalentAlreadyScored {
		return nil, &dataclient.Error{Kind: dataclient.KindConflict, Message: "talent profile is already scored"}
	}
	return m.MockTalent, nil
}

// MockAnalyticsUC is a mock implementation of the analytics use case
type MockAnalyticsUC struct {
	ShouldFailTrack bool

	TrackedNames []string
}

var _ usecasecontract.IAnalyticsUC = (*MockAnalyticsUC)(nil)

func (m *MockAnalyticsUC) TrackEvent(ctx context.Context, userID *string, name string, props map[string]any) *dataclient.Error {
	if m.ShouldFailTrack {
		return &dataclient.Error{Kind: dataclient.KindTransport, Message: "track failed"}
	}
	m.TrackedNames = append(m.TrackedNames, name)
	return nil
}
