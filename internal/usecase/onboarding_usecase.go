package usecase

import (
	"context"

	"github.com/natnael-haile/hireflow/internal/dataclient"
	"github.com/natnael-haile/hireflow/internal/domain/contract"
	"github.com/natnael-haile/hireflow/internal/domain/entity"
	usecasecontract "github.com/natnael-haile/hireflow/internal/usecase/contract"
)

// OnboardingUsecase implements recruiter sign-up and session handling over
// the data-access layer.
type OnboardingUsecase struct {
	data      *dataclient.Client
	randomGen contract.IRandomGenerator
	logger    usecasecontract.IAppLogger
	analytics usecasecontract.IAnalyticsUC
}

// NewOnboardingUsecase creates a new OnboardingUsecase instance.
func NewOnboardingUsecase(
	data *dataclient.Client,
	randomGen contract.IRandomGenerator,
	logger usecasecontract.IAppLogger,
	analytics usecasecontract.IAnalyticsUC,
) *OnboardingUsecase {
	return &OnboardingUsecase{
		data:      data,
		randomGen: randomGen,
		logger:    logger,
		analytics: analytics,
	}
}

// check if OnboardingUsecase implements IOnboardingUC
var _ usecasecontract.IOnboardingUC = (*OnboardingUsecase)(nil)

// SignUp registers a User, then creates the Recruiter profile as the sign-up
// side effect this layer owns.
func (uc *OnboardingUsecase) SignUp(ctx context.Context, email, password, fullName, companyName string) (*dataclient.Session, *dataclient.Error) {
	session, err := uc.data.Auth.SignUp(ctx, dataclient.SignUpParams{
		Email:    email,
		Password: password,
		Data:     dataclient.Record{"fullName": fullName},
	})
	if err != nil {
		return nil, err
	}

	res := uc.data.Table("recruiters").
		Upsert(dataclient.Record{
			"userId":      session.UserID,
			"companyName": companyName,
			"status":      string(entity.RecruiterStatusActive),
		}).
		OnConflict("userId").
		Exec(ctx)
	if res.Error != nil {
		// The User exists but the profile does not; callers treat that as
		// "no permissions yet", so surface the failure instead of hiding it.
		uc.logger.Errorf("failed to create recruiter profile for %s: %v", session.UserID, res.Error)
		return nil, res.Error
	}

	uc.track(ctx, session.UserID, "signed_up")
	return session, nil
}

// SignIn exchanges credentials for a session.
func (uc *OnboardingUsecase) SignIn(ctx context.Context, email, password string) (*dataclient.Session, *dataclient.Error) {
	session, err := uc.data.Auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}
	uc.track(ctx, session.UserID, "signed_in")
	return session, nil
}

// SignInWithGoogle signs in an OAuth-verified email, registering the account
// on first sight with a random credential.
func (uc *OnboardingUsecase) SignInWithGoogle(ctx context.Context, email, fullName string) (*dataclient.Session, *dataclient.Error) {
	existing := uc.data.Table("users").Select("id").Eq("email", email).MaybeSingle(ctx)
	if existing.Error != nil {
		return nil, existing.Error
	}
	if existing.Row() == nil {
		password, err := uc.randomGen.GenerateRandomToken(24)
		if err != nil {
			uc.logger.Errorf("failed to generate oauth credential: %v", err)
			return nil, &dataclient.Error{Kind: dataclient.KindAuth, Message: "failed to register oauth user", Err: err}
		}
		// OAuth passwords only need to satisfy the strength checks; the user
		// never types them.
		return uc.SignUp(ctx, email, "Aa1"+password, fullName, "")
	}
	session, serr := uc.data.Auth.SignInWithOAuthEmail(ctx, email)
	if serr != nil {
		return nil, serr
	}
	uc.track(ctx, session.UserID, "signed_in_google")
	return session, nil
}

// SignOut discards the current session token.
func (uc *OnboardingUsecase) SignOut(ctx context.Context) *dataclient.Error {
	return uc.data.Auth.SignOut(ctx)
}

// CurrentUser returns the user row and its recruiter profile. A missing
// profile comes back nil without an error.
func (uc *OnboardingUsecase) CurrentUser(ctx context.Context, userID string) (dataclient.Record, dataclient.Record, *dataclient.Error) {
	userRes := uc.data.Table("users").Select().Eq("id", userID).Single(ctx)
	if userRes.Error != nil {
		return nil, nil, userRes.Error
	}
	user := userRes.Row()
	delete(user, "passwordHash")

	recruiterRes := uc.data.Table("recruiters").Select().Eq("userId", userID).MaybeSingle(ctx)
	if recruiterRes.Error != nil {
		return nil, nil, recruiterRes.Error
	}
	return user, recruiterRes.Row(), nil
}

func (uc *OnboardingUsecase) track(ctx context.Context, userID, event string) {
	if uc.analytics == nil {
		return
	}
	if err := uc.analytics.TrackEvent(ctx, &userID, event, nil); err != nil {
		uc.logger.Warnf("failed to track %s event: %v", event, err)
	}
}
