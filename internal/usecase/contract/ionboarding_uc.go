package contract

import (
	"context"

	"github.com/natnael-haile/hireflow/internal/dataclient"
)

// IOnboardingUC drives recruiter sign-up and session handling.
type IOnboardingUC interface {
	SignUp(ctx context.Context, email, password, fullName, companyName string) (*dataclient.Session, *dataclient.Error)
	SignIn(ctx context.Context, email, password string) (*dataclient.Session, *dataclient.Error)
	SignInWithGoogle(ctx context.Context, email, fullName string) (*dataclient.Session, *dataclient.Error)
	SignOut(ctx context.Context) *dataclient.Error
	CurrentUser(ctx context.Context, userID string) (user dataclient.Record, recruiter dataclient.Record, err *dataclient.Error)
}
