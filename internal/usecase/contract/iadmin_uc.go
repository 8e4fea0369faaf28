package contract

import (
	"context"

	"github.com/natnael-haile/hireflow/internal/dataclient"
)

// IAdminUC backs the admin dashboard and role management.
type IAdminUC interface {
	DashboardMetrics(ctx context.Context) (dataclient.Record, *dataclient.Error)
	GrantRole(ctx context.Context, grantedBy, email, role string) (dataclient.Record, *dataclient.Error)
	ScoreTalent(ctx context.Context, talentProfileID string, score float64, shortlisted bool, summary string) (dataclient.Record, *dataclient.Error)
}

// IAnalyticsUC ingests fire-and-forget usage events.
type IAnalyticsUC interface {
	TrackEvent(ctx context.Context, userID *string, name string, props map[string]any) *dataclient.Error
}
