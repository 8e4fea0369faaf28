package usecase

import (
	"context"

	"github.com/natnael-haile/hireflow/internal/dataclient"
	"github.com/natnael-haile/hireflow/internal/domain/contract"
	"github.com/natnael-haile/hireflow/internal/domain/entity"
	usecasecontract "github.com/natnael-haile/hireflow/internal/usecase/contract"
)

const projectCodeLength = 6

// ProjectUsecase implements project creation and candidate management.
type ProjectUsecase struct {
	data      *dataclient.Client
	randomGen contract.IRandomGenerator
	logger    usecasecontract.IAppLogger
	analytics usecasecontract.IAnalyticsUC
}

// NewProjectUsecase creates a new ProjectUsecase instance.
func NewProjectUsecase(
	data *dataclient.Client,
	randomGen contract.IRandomGenerator,
	logger usecasecontract.IAppLogger,
	analytics usecasecontract.IAnalyticsUC,
) *ProjectUsecase {
	return &ProjectUsecase{
		data:      data,
		randomGen: randomGen,
		logger:    logger,
		analytics: analytics,
	}
}

// check if ProjectUsecase implements IProjectUC
var _ usecasecontract.IProjectUC = (*ProjectUsecase)(nil)

// recruiterFor resolves the caller's recruiter profile. nil without error
// means the user has no profile yet.
func (uc *ProjectUsecase) recruiterFor(ctx context.Context, userID string) (dataclient.Record, *dataclient.Error) {
	res := uc.data.Table("recruiters").Select().Eq("userId", userID).MaybeSingle(ctx)
	if res.Error != nil {
		return nil, res.Error
	}
	return res.Row(), nil
}

// CreateProject creates a project for the caller's recruiter profile on
// checkout completion.
func (uc *ProjectUsecase) CreateProject(ctx context.Context, userID, title string, tier int, candidateSource string) (dataclient.Record, *dataclient.Error) {
	recruiter, err := uc.recruiterFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if recruiter == nil {
		return nil, &dataclient.Error{Kind: dataclient.KindAuth, Message: "no recruiter profile for this account"}
	}
	if _, terr := entity.TierByNumber(tier); terr != nil {
		return nil, &dataclient.Error{Kind: dataclient.KindValidation, Message: terr.Error()}
	}
	source := entity.CandidateSource(candidateSource)
	if source != entity.CandidateSourceOwnUpload && source != entity.CandidateSourceNetwork {
		return nil, &dataclient.Error{Kind: dataclient.KindValidation, Message: "candidate_source must be own_upload or network"}
	}

	code, cerr := uc.randomGen.GenerateCode("PRJ-", projectCodeLength)
	if cerr != nil {
		uc.logger.Errorf("failed to generate project code: %v", cerr)
		return nil, &dataclient.Error{Kind: dataclient.KindTransport, Message: "failed to generate project code", Err: cerr}
	}

	res := uc.data.Table("projects").Insert(dataclient.Record{
		"recruiterId":     dataclient.AsString(recruiter["id"]),
		"code":            code,
		"title":           title,
		"tier":            tier,
		"candidateSource": candidateSource,
		"status":          string(entity.ProjectStatusAwaiting),
		"paymentStatus":   string(entity.PaymentStatusPending),
	}).Exec(ctx)
	if res.Error != nil {
		return nil, res.Error
	}
	project := res.Data.([]dataclient.Record)[0]
	uc.track(ctx, userID, "project_created", map[string]any{"projectId": project["id"], "tier": tier})
	return project, nil
}

// ListProjects lists the caller's projects with derived display fields. A
// user without a recruiter profile sees an empty list, not an error.
func (uc *ProjectUsecase) ListProjects(ctx context.Context, userID string) ([]dataclient.Record, *dataclient.Error) {
	recruiter, err := uc.recruiterFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if recruiter == nil {
		return []dataclient.Record{}, nil
	}
	res := uc.data.RPC(ctx, "get_recruiter_projects", dataclient.Record{"recruiterId": dataclient.AsString(recruiter["id"])})
	if res.Error != nil {
		return nil, res.Error
	}
	projects, _ := res.Data.([]dataclient.Record)
	if projects == nil {
		projects = []dataclient.Record{}
	}
	return projects, nil
}

// ownedProject checks the project exists and belongs to the caller.
func (uc *ProjectUsecase) ownedProject(ctx context.Context, userID, projectID string) (dataclient.Record, *dataclient.Error) {
	recruiter, err := uc.recruiterFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if recruiter == nil {
		return nil, &dataclient.Error{Kind: dataclient.KindAuth, Message: "no recruiter profile for this account"}
	}
	res := uc.data.Table("projects").Select().
		Eq("id", projectID).
		Eq("recruiterId", dataclient.AsString(recruiter["id"])).
		MaybeSingle(ctx)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.Row() == nil {
		return nil, &dataclient.Error{Kind: dataclient.KindNotFound, Message: "project not found"}
	}
	return res.Row(), nil
}

// AddTalent records one uploaded candidate file on a project.
func (uc *ProjectUsecase) AddTalent(ctx context.Context, userID, projectID, fullName, fileName string) (dataclient.Record, *dataclient.Error) {
	if _, err := uc.ownedProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	rec := dataclient.Record{
		"projectId":   projectID,
		"fullName":    fullName,
		"status":      string(entity.ProfileStatusAwaiting),
		"shortlisted": false,
	}
	if fileName != "" {
		rec["fileName"] = fileName
	}
	res := uc.data.Table("talent_profiles").Insert(rec).Exec(ctx)
	if res.Error != nil {
		return nil, res.Error
	}
	return res.Data.([]dataclient.Record)[0], nil
}

// ListTalent lists a project's candidate files, newest first.
func (uc *ProjectUsecase) ListTalent(ctx context.Context, userID, projectID string) ([]dataclient.Record, *dataclient.Error) {
	if _, err := uc.ownedProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	res := uc.data.Table("talent_profiles").Select().
		Eq("projectId", projectID).
		Order("createdAt", &dataclient.OrderOptions{Ascending: false}).
		Exec(ctx)
	if res.Error != nil {
		return nil, res.Error
	}
	return res.Rows(), nil
}

// RecordPayment stores a settled payment and flips the project to paid.
func (uc *ProjectUsecase) RecordPayment(ctx context.Context, userID, projectID string, amount float64, currency string) (dataclient.Record, *dataclient.Error) {
	if _, err := uc.ownedProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, &dataclient.Error{Kind: dataclient.KindValidation, Message: "amount must be positive"}
	}
	if currency == "" {
		currency = "EUR"
	}
	res := uc.data.Table("payments").Insert(dataclient.Record{
		"projectId": projectID,
		"amount":    amount,
		"currency":  currency,
		"status":    "paid",
	}).Exec(ctx)
	if res.Error != nil {
		return nil, res.Error
	}
	update := uc.data.Table("projects").
		Update(dataclient.Record{"paymentStatus": string(entity.PaymentStatusPaid)}).
		Eq("id", projectID).
		Exec(ctx)
	if update.Error != nil {
		// The payment document is written; the project flag catches up on
		// retry. No cross-document atomicity is offered here.
		uc.logger.Errorf("payment recorded but project %s not marked paid: %v", projectID, update.Error)
		return nil, update.Error
	}
	uc.track(ctx, userID, "payment_recorded", map[string]any{"projectId": projectID, "amount": amount})
	return res.Data.([]dataclient.Record)[0], nil
}

func (uc *ProjectUsecase) track(ctx context.Context, userID, event string, props map[string]any) {
	if uc.analytics == nil {
		return
	}
	if err := uc.analytics.TrackEvent(ctx, &userID, event, props); err != nil {
		uc.logger.Warnf("failed to track %s event: %v", event, err)
	}
}
