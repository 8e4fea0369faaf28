package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natnael-haile/hireflow/internal/dataclient"
)

func TestSignUpCreatesRecruiterProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session := f.signUp(t, "recruiter@example.com")

	user, recruiter, err := f.onboarding.CurrentUser(ctx, session.UserID)
	require.Nil(t, err)
	assert.Equal(t, "recruiter@example.com", user["email"])
	assert.NotContains(t, user, "passwordHash")
	require.NotNil(t, recruiter)
	assert.Equal(t, "Test Co", recruiter["companyName"])
	assert.Equal(t, "active", recruiter["status"])

	// Analytics trail: sign-up is tracked.
	events := f.data.Table("analytics_events").Select().Eq("name", "signed_up").Exec(ctx)
	require.Nil(t, events.Error)
	assert.Len(t, events.Rows(), 1)
}

func TestSignUpTwiceKeepsOneProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.signUp(t, "once@example.com")
	_, err := f.onboarding.SignUp(ctx, "once@example.com", "Sup3rSecret", "Test User", "Other Co")
	require.NotNil(t, err)
	assert.Equal(t, dataclient.KindAuth, err.Kind)

	profiles := f.data.Table("recruiters").Select().Exec(ctx)
	require.Nil(t, profiles.Error)
	assert.Len(t, profiles.Rows(), 1)
}

func TestSignInAndOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.signUp(t, "in@example.com")
	require.Nil(t, f.onboarding.SignOut(ctx))

	session, err := f.onboarding.SignIn(ctx, "in@example.com", "Sup3rSecret")
	require.Nil(t, err)
	assert.Equal(t, "in@example.com", session.Email)

	_, badErr := f.onboarding.SignIn(ctx, "in@example.com", "WrongPass1")
	require.NotNil(t, badErr)
	assert.Equal(t, dataclient.KindAuth, badErr.Kind)
}

func TestSignInWithGoogleRegistersOnFirstSight(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.onboarding.SignInWithGoogle(ctx, "google@example.com", "Google User")
	require.Nil(t, err)
	assert.Equal(t, "google@example.com", session.Email)

	// Second sign-in reuses the account.
	again, aerr := f.onboarding.SignInWithGoogle(ctx, "google@example.com", "Google User")
	require.Nil(t, aerr)
	assert.Equal(t, session.UserID, again.UserID)

	users := f.data.Table("users").Select().Eq("email", "google@example.com").Exec(ctx)
	require.Nil(t, users.Error)
	assert.Len(t, users.Rows(), 1)
}

func TestCurrentUserWithoutProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inserted := f.data.Table("users").Insert(dataclient.Record{"email": "bare@example.com"}).Exec(ctx)
	require.Nil(t, inserted.Error)
	userID := dataclient.AsString(inserted.Data.([]dataclient.Record)[0]["id"])

	user, recruiter, err := f.onboarding.CurrentUser(ctx, userID)
	require.Nil(t, err)
	assert.Equal(t, "bare@example.com", user["email"])
	assert.Nil(t, recruiter)
}
