package mocks

import (
	"context"
	"time"

	"github.com/natnael-haile/hireflow/internal/dataclient"
	usecasecontract "github.com/natnael-haile/hireflow/internal/usecase/contract"
)

// MockOnboardingUC is a mock implementation of the onboarding use case
type MockOnboardingUC struct {
	// Control mock behavior
	ShouldFailSignUp      bool
	ShouldFailSignIn      bool
	ShouldFailSignOut     bool
	ShouldFailCurrentUser bool
	SignUpConflict        bool

	// Return values
	MockSession   *dataclient.Session
	MockUser      dataclient.Record
	MockRecruiter dataclient.Record
}

var _ usecasecontract.IOnboardingUC = (*MockOnboardingUC)(nil)

func NewMockOnboardingUC() *MockOnboardingUC {
	return &MockOnboardingUC{
		MockSession: &dataclient.Session{
			AccessToken: "mock-access-token",
			TokenType:   "bearer",
			ExpiresAt:   time.Now().Add(time.Hour),
			UserID:      "mock-user-id",
			Email:       "test@example.com",
			Roles:       []string{"recruiter"},
		},
		MockUser: dataclient.Record{
			"id":       "mock-user-id",
			"email":    "test@example.com",
			"fullName": "Test User",
			"roles":    []string{"recruiter"},
		},
		MockRecruiter: dataclient.Record{
			"id":          "mock-recruiter-id",
			"userId":      "mock-user-id",
			"companyName": "Test Co",
			"status":      "active",
		},
	}
}

func (m *MockOnboardingUC) SignUp(ctx context.Context, email, password, fullName, companyName string) (*dataclient.Session, *dataclient.Error) {
	if m.SignUpConflict {
		return nil, &dataclient.Error{Kind: dataclient.KindConflict, Message: "user already registered"}
	}
	if m.ShouldFailSignUp {
		return nil, &dataclient.Error{Kind: dataclient.KindValidation, Message: "sign up failed"}
	}
	return m.MockSession, nil
}

func (m *MockOnboardingUC) SignIn(ctx context.Context, email, password string) (*dataclient.Session, *dataclient.Error) {
	if m.ShouldFailSignIn {
		return nil, &dataclient.Error{Kind: dataclient.KindAuth, Message: "invalid credentials"}
	}
	return m.MockSession, nil
}

func (m *MockOnboardingUC) SignInWithGoogle(ctx context.Context, email, fullName string) (*dataclient.Session, *dataclient.Error) {
	if m.ShouldFailSignIn {
		return nil, &dataclient.Error{Kind: dataclient.KindAuth, Message: "invalid credentials"}
	}
	return m.MockSession, nil
}

func (m *MockOnboardingUC) SignOut(ctx context.Context) *dataclient.Error {
	if m.ShouldFailSignOut {
		return &dataclient.Error{Kind: dataclient.KindTransport, Message: "sign out failed"}
	}
	return nil
}

func (m *MockOnboardingUC) CurrentUser(ctx context.Context, userID string) (dataclient.Record, dataclient.Record, *dataclient.Error) {
	if m.ShouldFailCurrentUser {
		return nil, nil, &dataclient.Error{Kind: dataclient.KindAuth, Message: "not signed in"}
	}
	return m.MockUser, m.MockRecruiter, nil
}
