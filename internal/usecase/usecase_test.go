package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/natnael-haile/hireflow/internal/dataclient"
	"github.com/natnael-haile/hireflow/internal/infrastructure/jwt"
	"github.com/natnael-haile/hireflow/internal/infrastructure/logger"
	passwordservice "github.com/natnael-haile/hireflow/internal/infrastructure/password_service"
	randomgenerator "github.com/natnael-haile/hireflow/internal/infrastructure/random_generator"
	"github.com/natnael-haile/hireflow/internal/infrastructure/repository/memory"
	"github.com/natnael-haile/hireflow/internal/infrastructure/store"
	"github.com/natnael-haile/hireflow/internal/infrastructure/uuidgen"
	"github.com/natnael-haile/hireflow/internal/infrastructure/validator"
	"github.com/natnael-haile/hireflow/internal/usecase"
)

// fixture bundles the usecases over one in-memory client.
type fixture struct {
	data       *dataclient.Client
	onboarding *usecase.OnboardingUsecase
	projects   *usecase.ProjectUsecase
	admin      *usecase.AdminUsecase
	analytics  *usecase.AnalyticsUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	manager := jwt.NewJWTManager("test-secret", time.Hour)
	data := dataclient.New(memory.NewStore(), dataclient.DefaultRegistry(), dataclient.Options{
		TokenService: jwt.NewTokenService(manager),
		TokenStore:   store.NewMemoryTokenStore(),
		Hasher:       passwordservice.NewHasher(),
		UUIDGen:      uuidgen.NewGenerator(),
		Validator:    validator.NewValidator(),
	})
	t.Cleanup(data.Close)

	appLogger := logger.NewStdLogger()
	randomGen := randomgenerator.NewRandomGenerator()
	analytics := usecase.NewAnalyticsUsecase(data)
	return &fixture{
		data:       data,
		onboarding: usecase.NewOnboardingUsecase(data, randomGen, appLogger, analytics),
		projects:   usecase.NewProjectUsecase(data, randomGen, appLogger, analytics),
		admin:      usecase.NewAdminUsecase(data, appLogger),
		analytics:  analytics,
	}
}

func (f *fixture) signUp(t *testing.T, email string) *dataclient.Session {
	t.Helper()
	session, err := f.onboarding.SignUp(context.Background(), email, "Sup3rSecret", "Test User", "Test Co")
	if err != nil {
		t.Fatalf("sign up failed: %v", err)
	}
	return session
}
