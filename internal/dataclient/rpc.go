package dataclient

import (
	"context"

	"github.com/natnael-haile/hireflow/internal/domain/entity"
)

// Procedure is one named server-side computation. Procedures are read-only
// and idempotent; they compose over the query builder's read path.
type Procedure func(ctx context.Context, c *Client, args Record) (any, *Error)

// Dispatcher maps logical procedure names to computations not expressible as
// plain CRUD. The set is fixed at construction.
type Dispatcher struct {
	client *Client
	procs  map[string]Procedure
}

func newDispatcher(c *Client) *Dispatcher {
	d := &Dispatcher{client: c, procs: make(map[string]Procedure)}
	d.procs["is_admin"] = isAdmin
	d.procs["get_admin_dashboard_metrics"] = adminDashboardMetrics
	d.procs["get_recruiter_projects"] = recruiterProjects
	return d
}

// RPC invokes a named procedure. Unknown names resolve to {nil, nil} rather
// than failing: call sites probe for optional capabilities and depend on the
// silent-null fallback.
func (c *Client) RPC(ctx context.Context, name string, args Record) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = errResult(newError(KindTransport, "rpc %q panicked: %v", name, r))
		}
		c.observeRPC(name, res.Error)
	}()
	proc, ok := c.rpc.procs[name]
	if !ok {
		return Result{}
	}
	data, err := proc(c.withToken(ctx), c, args)
	if err != nil {
		return errResult(err)
	}
	return Result{Data: data}
}

// isAdmin reports whether the current session's user holds the admin or
// ops_manager role. No session reads as false, not as an error.
func isAdmin(ctx context.Context, c *Client, _ Record) (any, *Error) {
	user, err := c.Auth.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return false, nil
	}
	for _, role := range toStringSlice(user["roles"]) {
		if role == string(entity.UserRoleAdmin) || role == string(entity.UserRoleOpsManager) {
			return true, nil
		}
	}
	return false, nil
}

func (c *Client) countRows(ctx context.Context, table string) (int, *Error) {
	res := c.Table(table).Select("id").Exec(ctx)
	if res.Error != nil {
		return 0, res.Error
	}
	return len(res.Rows()), nil
}

// adminDashboardMetrics aggregates the counts shown on the admin dashboard.
func adminDashboardMetrics(ctx context.Context, c *Client, _ Record) (any, *Error) {
	metrics := Record{}
	for key, table := range map[string]string{
		"totalUsers":          "users",
		"totalRecruiters":     "recruiters",
		"totalProjects":       "projects",
		"totalTalentProfiles": "talent_profiles",
	} {
		n, err := c.countRows(ctx, table)
		if err != nil {
			return nil, err
		}
		metrics[key] = n
	}

	paid := c.Table("projects").Select("id").Eq("paymentStatus", string(entity.PaymentStatusPaid)).Exec(ctx)
	if paid.Error != nil {
		return nil, paid.Error
	}
	metrics["paidProjects"] = len(paid.Rows())

	payments := c.Table("payments").Select("amount", "status").Eq("status", "paid").Exec(ctx)
	if payments.Error != nil {
		return nil, payments.Error
	}
	var revenue float64
	for _, p := range payments.Rows() {
		if amount, ok := p["amount"].(float64); ok {
			revenue += amount
		}
	}
	metrics["totalRevenue"] = revenue
	return metrics, nil
}

// recruiterProjects lists one recruiter's projects newest-first with the
// derived display fields the console renders.
func recruiterProjects(ctx context.Context, c *Client, args Record) (any, *Error) {
	recruiterID, _ := args["recruiterId"].(string)
	if recruiterID == "" {
		return nil, newError(KindValidation, "get_recruiter_projects: recruiterId is required")
	}
	res := c.Table("projects").Select().
		Eq("recruiterId", recruiterID).
		Order("createdAt", &OrderOptions{Ascending: false}).
		Exec(ctx)
	if res.Error != nil {
		return nil, res.Error
	}

	projects := res.Rows()
	out := make([]Record, 0, len(projects))
	for _, project := range projects {
		row := make(Record, len(project)+3)
		for k, v := range project {
			row[k] = v
		}
		if tierNum, ok := AsInt(project["tier"]); ok {
			if tier, err := entity.TierByNumber(tierNum); err == nil {
				row["tierName"] = tier.Name
			}
		}
		projectID, _ := project["id"].(string)
		talent := c.Table("talent_profiles").Select("id", "shortlisted").Eq("projectId", projectID).Exec(ctx)
		if talent.Error != nil {
			return nil, talent.Error
		}
		shortlisted := 0
		for _, t := range talent.Rows() {
			if flagged, ok := t["shortlisted"].(bool); ok && flagged {
				shortlisted++
			}
		}
		row["talentCount"] = len(talent.Rows())
		row["shortlistedCount"] = shortlisted
		out = append(out, row)
	}
	return out, nil
}
