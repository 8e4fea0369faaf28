package usecase

import (
	"context"

	"github.com/natnael-haile/hireflow/internal/dataclient"
	usecasecontract "github.com/natnael-haile/hireflow/internal/usecase/contract"
)

// AnalyticsUsecase ingests fire-and-forget usage events.
type AnalyticsUsecase struct {
	data *dataclient.Client
}

// NewAnalyticsUsecase creates a new AnalyticsUsecase instance.
func NewAnalyticsUsecase(data *dataclient.Client) *AnalyticsUsecase {
	return &AnalyticsUsecase{data: data}
}

// check if AnalyticsUsecase implements IAnalyticsUC
var _ usecasecontract.IAnalyticsUC = (*AnalyticsUsecase)(nil)

// TrackEvent stores one analytics event.
func (uc *AnalyticsUsecase) TrackEvent(ctx context.Context, userID *string, name string, props map[string]any) *dataclient.Error {
	if name == "" {
		return &dataclient.Error{Kind: dataclient.KindValidation, Message: "event name is required"}
	}
	rec := dataclient.Record{"name": name}
	if userID != nil && *userID != "" {
		rec["userId"] = *userID
	}
	if len(props) > 0 {
		rec["props"] = props
	}
	res := uc.data.Table("analytics_events").Insert(rec).Exec(ctx)
	return res.Error
}
