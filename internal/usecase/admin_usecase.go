package usecase

import (
	"context"

	"github.com/natnael-haile/hireflow/internal/dataclient"
	"github.com/natnael-haile/hireflow/internal/domain/entity"
	usecasecontract "github.com/natnael-haile/hireflow/internal/usecase/contract"
)

// AdminUsecase backs the admin dashboard and role management.
type AdminUsecase struct {
	data   *dataclient.Client
	logger usecasecontract.IAppLogger
}

// NewAdminUsecase creates a new AdminUsecase instance.
func NewAdminUsecase(data *dataclient.Client, logger usecasecontract.IAppLogger) *AdminUsecase {
	return &AdminUsecase{data: data, logger: logger}
}

// check if AdminUsecase implements IAdminUC
var _ usecasecontract.IAdminUC = (*AdminUsecase)(nil)

// DashboardMetrics aggregates the console counters.
func (uc *AdminUsecase) DashboardMetrics(ctx context.Context) (dataclient.Record, *dataclient.Error) {
	res := uc.data.RPC(ctx, "get_admin_dashboard_metrics", nil)
	if res.Error != nil {
		return nil, res.Error
	}
	metrics, _ := res.Data.(dataclient.Record)
	if metrics == nil {
		return nil, &dataclient.Error{Kind: dataclient.KindTransport, Message: "dashboard metrics unavailable"}
	}
	return metrics, nil
}

// GrantRole appends a role to a user and writes the audit record. Granting
// admin requires the target email on the admin whitelist.
func (uc *AdminUsecase) GrantRole(ctx context.Context, grantedBy, email, role string) (dataclient.Record, *dataclient.Error) {
	granted := entity.UserRole(role)
	switch granted {
	case entity.UserRoleAdmin, entity.UserRoleOpsManager, entity.UserRoleRecruiter:
	default:
		return nil, &dataclient.Error{Kind: dataclient.KindValidation, Message: "unknown role " + role}
	}

	if granted == entity.UserRoleAdmin {
		wl := uc.data.Table("admin_whitelist").Select("id").Eq("email", email).MaybeSingle(ctx)
		if wl.Error != nil {
			return nil, wl.Error
		}
		if wl.Row() == nil {
			return nil, &dataclient.Error{Kind: dataclient.KindAuth, Message: "email is not whitelisted for admin"}
		}
	}

	userRes := uc.data.Table("users").Select().Eq("email", email).Single(ctx)
	if userRes.Error != nil {
		return nil, userRes.Error
	}
	user := userRes.Row()
	userID := dataclient.AsString(user["id"])

	roles := rolesOf(user)
	for _, r := range roles {
		if r == role {
			// Idempotent: the role is already held, just echo the user.
			delete(user, "passwordHash")
			return user, nil
		}
	}
	roles = append(roles, role)

	update := uc.data.Table("users").Update(dataclient.Record{"roles": roles}).Eq("id", userID).Exec(ctx)
	if update.Error != nil {
		return nil, update.Error
	}

	audit := uc.data.Table("user_roles").Insert(dataclient.Record{
		"userId":    userID,
		"role":      role,
		"grantedBy": grantedBy,
	}).Exec(ctx)
	if audit.Error != nil {
		uc.logger.Warnf("role granted but audit record failed for %s: %v", userID, audit.Error)
	}

	user["roles"] = roles
	delete(user, "passwordHash")
	return user, nil
}

// ScoreTalent records an evaluation for one candidate file and advances the
// scoring lifecycle. The profile moves to scored; the owning project enters
// scoring on the first evaluation and becomes ready once every profile in the
// pool is scored.
func (uc *AdminUsecase) ScoreTalent(ctx context.Context, talentProfileID string, score float64, shortlisted bool, summary string) (dataclient.Record, *dataclient.Error) {
	if score < 0 || score > 100 {
		return nil, &dataclient.Error{Kind: dataclient.KindValidation, Message: "score must be between 0 and 100"}
	}

	profileRes := uc.data.Table("talent_profiles").Select().Eq("id", talentProfileID).Single(ctx)
	if profileRes.Error != nil {
		return nil, profileRes.Error
	}
	profile := profileRes.Row()
	if entity.ProfileStatus(dataclient.AsString(profile["status"])) == entity.ProfileStatusScored {
		return nil, &dataclient.Error{Kind: dataclient.KindConflict, Message: "talent profile is already scored"}
	}
	projectID := dataclient.AsString(profile["projectId"])

	eval := dataclient.Record{
		"talentProfileId": talentProfileID,
		"projectId":       projectID,
		"score":           score,
	}
	if summary != "" {
		eval["summary"] = summary
	}
	if res := uc.data.Table("evaluations").Insert(eval).Exec(ctx); res.Error != nil {
		return nil, res.Error
	}

	update := uc.data.Table("talent_profiles").Update(dataclient.Record{
		"status":      string(entity.ProfileStatusScored),
		"score":       score,
		"shortlisted": shortlisted,
	}).Eq("id", talentProfileID).Exec(ctx)
	if update.Error != nil {
		return nil, update.Error
	}

	if err := uc.advanceProjectScoring(ctx, projectID); err != nil {
		// The evaluation and profile are written; the project status catches
		// up on the next scoring call.
		uc.logger.Warnf("talent %s scored but project %s not advanced: %v", talentProfileID, projectID, err)
	}

	profile["status"] = string(entity.ProfileStatusScored)
	profile["score"] = score
	profile["shortlisted"] = shortlisted
	return profile, nil
}

// advanceProjectScoring moves the project forward once its candidate pool
// changes: into scoring while unscored profiles remain, to ready when none do.
func (uc *AdminUsecase) advanceProjectScoring(ctx context.Context, projectID string) *dataclient.Error {
	projRes := uc.data.Table("projects").Select().Eq("id", projectID).MaybeSingle(ctx)
	if projRes.Error != nil {
		return projRes.Error
	}
	if projRes.Row() == nil {
		return &dataclient.Error{Kind: dataclient.KindNotFound, Message: "project not found"}
	}

	pool := uc.data.Table("talent_profiles").Select("id", "status").Eq("projectId", projectID).Exec(ctx)
	if pool.Error != nil {
		return pool.Error
	}
	unscored := 0
	for _, row := range pool.Rows() {
		if entity.ProfileStatus(dataclient.AsString(row["status"])) != entity.ProfileStatusScored {
			unscored++
		}
	}
	next := entity.ProjectStatusReady
	if unscored > 0 {
		next = entity.ProjectStatusScoring
	}

	project := entity.Project{Status: entity.ProjectStatus(dataclient.AsString(projRes.Row()["status"]))}
	if project.CanTransitionTo(next) {
		res := uc.data.Table("projects").
			Update(dataclient.Record{"status": string(next)}).
			Eq("id", projectID).
			Exec(ctx)
		if res.Error != nil {
			return res.Error
		}
	}

	if next == entity.ProjectStatusScoring {
		// The rest of the pool is in scoring until each profile gets its own
		// evaluation. A zero-match update is fine here.
		res := uc.data.Table("talent_profiles").
			Update(dataclient.Record{"status": string(entity.ProfileStatusScoring)}).
			Eq("projectId", projectID).
			Eq("status", string(entity.ProfileStatusAwaiting)).
			Exec(ctx)
		if res.Error != nil {
			return res.Error
		}
	}
	return nil
}

func rolesOf(user dataclient.Record) []string {
	switch vals := user["roles"].(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, v := range vals {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
