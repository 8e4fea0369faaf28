package contract

import (
	"context"

	"github.com/natnael-haile/hireflow/internal/dataclient"
)

// IProjectUC drives project creation and candidate management for the
// signed-in recruiter.
type IProjectUC interface {
	CreateProject(ctx context.Context, userID, title string, tier int, candidateSource string) (dataclient.Record, *dataclient.Error)
	ListProjects(ctx context.Context, userID string) ([]dataclient.Record, *dataclient.Error)
	AddTalent(ctx context.Context, userID, projectID, fullName, fileName string) (dataclient.Record, *dataclient.Error)
	ListTalent(ctx context.Context, userID, projectID string) ([]dataclient.Record, *dataclient.Error)
	RecordPayment(ctx context.Context, userID, projectID string, amount float64, currency string) (dataclient.Record, *dataclient.Error)
}
