package dataclient_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natnael-haile/hireflow/internal/dataclient"
)

func TestInsertAndSelectByEq(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	mustInsert(t, c, "users",
		dataclient.Record{"email": "a@example.com", "fullName": "Alpha"},
		dataclient.Record{"email": "b@example.com", "fullName": "Beta"},
	)

	res := c.Table("users").Select().Eq("email", "a@example.com").Exec(ctx)
	require.Nil(t, res.Error)
	rows := res.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Alpha", rows[0]["fullName"])
	assert.NotEmpty(t, rows[0]["id"])
	assert.NotNil(t, rows[0]["createdAt"])
}

func TestChainedEqPredicatesAreAnded(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	mustInsert(t, c, "talent_profiles",
		dataclient.Record{"projectId": "p1", "fullName": "A", "status": "scored", "shortlisted": true},
		dataclient.Record{"projectId": "p1", "fullName": "B", "status": "scored", "shortlisted": false},
		dataclient.Record{"projectId": "p2", "fullName": "C", "status": "scored", "shortlisted": true},
	)

	res := c.Table("talent_profiles").Select().
		Eq("projectId", "p1").
		Eq("shortlisted", true).
		Exec(ctx)
	require.Nil(t, res.Error)
	require.Len(t, res.Rows(), 1)
	assert.Equal(t, "A", res.Rows()[0]["fullName"])
}

func TestSelectProjection(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	mustInsert(t, c, "users", dataclient.Record{"email": "a@example.com", "fullName": "Alpha"})

	res := c.Table("users").Select("id", "email").Eq("email", "a@example.com").Exec(ctx)
	require.Nil(t, res.Error)
	require.Len(t, res.Rows(), 1)
	row := res.Rows()[0]
	assert.Contains(t, row, "id")
	assert.Contains(t, row, "email")
	assert.NotContains(t, row, "fullName")
	assert.NotContains(t, row, "createdAt")
}

func TestOrderDescWithLimit(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mustInsert(t, c, "projects",
		dataclient.Record{"recruiterId": "r1", "code": "PRJ-AAAAAA", "createdAt": base},
		dataclient.Record{"recruiterId": "r1", "code": "PRJ-BBBBBB", "createdAt": base.Add(time.Hour)},
		dataclient.Record{"recruiterId": "r1", "code": "PRJ-CCCCCC", "createdAt": base.Add(2 * time.Hour)},
	)

	res := c.Table("projects").Select().
		Eq("recruiterId", "r1").
		Order("createdAt", &dataclient.OrderOptions{Ascending: false}).
		Limit(2).
		Exec(ctx)
	require.Nil(t, res.Error)
	rows := res.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "PRJ-CCCCCC", rows[0]["code"])
	assert.Equal(t, "PRJ-BBBBBB", rows[1]["code"])
}

func TestOrConditionMatchesEither(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	mustInsert(t, c, "recruiters",
		dataclient.Record{"userId": "u1", "companyName": "Acme GmbH"},
		dataclient.Record{"userId": "u2", "companyName": "Globex"},
		dataclient.Record{"userId": "u3", "companyName": "Initech"},
	)

	res := c.Table("recruiters").Select().
		Or("companyName.ilike.%acme%,userId.eq.u3").
		Exec(ctx)
	require.Nil(t, res.Error)
	assert.Len(t, res.Rows(), 2)

	bad := c.Table("recruiters").Select().Or("companyName.gt.x").Exec(ctx)
	require.NotNil(t, bad.Error)
	assert.Equal(t, dataclient.KindValidation, bad.Error.Kind)
}

func TestSingleCardinality(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	mustInsert(t, c, "talent_profiles",
		dataclient.Record{"projectId": "p1", "fullName": "A"},
		dataclient.Record{"projectId": "p2", "fullName": "B"},
		dataclient.Record{"projectId": "p2", "fullName": "C"},
	)

	one := c.Table("talent_profiles").Select().Eq("projectId", "p1").Single(ctx)
	require.Nil(t, one.Error)
	assert.Equal(t, "A", one.Row()["fullName"])

	none := c.Table("talent_profiles").Select().Eq("projectId", "p9").Single(ctx)
	require.NotNil(t, none.Error)
	assert.Equal(t, dataclient.KindNotFound, none.Error.Kind)

	many := c.Table("talent_profiles").Select().Eq("projectId", "p2").Single(ctx)
	require.NotNil(t, many.Error)
	assert.Equal(t, dataclient.KindValidation, many.Error.Kind)
}

func TestMaybeSingleZeroRows(t *testing.T) {
	c := newTestClient(t)

	res := c.Table("users").Select().Eq("email", "ghost@example.com").MaybeSingle(context.Background())
	assert.Nil(t, res.Error)
	assert.Nil(t, res.Data)
}

func TestInsertMissingRequiredField(t *testing.T) {
	c := newTestClient(t)

	res := c.Table("projects").Insert(dataclient.Record{"code": "PRJ-AAAAAA"}).Exec(context.Background())
	require.NotNil(t, res.Error)
	assert.Equal(t, dataclient.KindValidation, res.Error.Kind)
}

func TestInsertDuplicateUniqueKeyRejectsWholeBatch(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	mustInsert(t, c, "users", dataclient.Record{"email": "taken@example.com"})

	res := c.Table("users").Insert(
		dataclient.Record{"email": "fresh@example.com"},
		dataclient.Record{"email": "taken@example.com"},
	).Exec(ctx)
	require.NotNil(t, res.Error)
	assert.Equal(t, dataclient.KindConflict, res.Error.Kind)

	// The whole batch is rejected, the fresh record must not be written.
	check := c.Table("users").Select().Eq("email", "fresh@example.com").Exec(ctx)
	require.Nil(t, check.Error)
	assert.Empty(t, check.Rows())
}

func TestInsertDuplicateWithinBatch(t *testing.T) {
	c := newTestClient(t)

	res := c.Table("users").Insert(
		dataclient.Record{"email": "dup@example.com"},
		dataclient.Record{"email": "dup@example.com"},
	).Exec(context.Background())
	require.NotNil(t, res.Error)
	assert.Equal(t, dataclient.KindConflict, res.Error.Kind)
}

func TestUpsertInsertsThenReplacesInPlace(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	first := c.Table("recruiters").
		Upsert(dataclient.Record{"userId": "u1", "companyName": "Acme"}).
		OnConflict("userId").
		Exec(ctx)
	require.Nil(t, first.Error)
	created := first.Data.([]dataclient.Record)[0]
	id := created["id"]
	createdAt := created["createdAt"]
	require.NotEmpty(t, id)

	second := c.Table("recruiters").
		Upsert(dataclient.Record{"userId": "u1", "companyName": "Acme International"}).
		OnConflict("userId").
		Exec(ctx)
	require.Nil(t, second.Error)
	replaced := second.Data.([]dataclient.Record)[0]
	assert.Equal(t, id, replaced["id"])
	assert.Equal(t, createdAt, replaced["createdAt"])
	assert.Equal(t, "Acme International", replaced["companyName"])

	all := c.Table("recruiters").Select().Eq("userId", "u1").Exec(ctx)
	require.Nil(t, all.Error)
	assert.Len(t, all.Rows(), 1)
}

func TestUpsertMissingConflictField(t *testing.T) {
	c := newTestClient(t)

	res := c.Table("recruiters").
		Upsert(dataclient.Record{"companyName": "Acme"}).
		OnConflict("userId").
		Exec(context.Background())
	require.NotNil(t, res.Error)
	assert.Equal(t, dataclient.KindValidation, res.Error.Kind)
}

func TestUpdateMatchingZeroRowsSucceeds(t *testing.T) {
	c := newTestClient(t)

	res := c.Table("projects").
		Update(dataclient.Record{"status": "closed"}).
		Eq("id", "no-such-project").
		Exec(context.Background())
	require.Nil(t, res.Error)
	assert.Equal(t, int64(0), res.Count())
}

func TestUpdateAppliesToAllMatches(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	mustInsert(t, c, "talent_profiles",
		dataclient.Record{"projectId": "p1", "status": "awaiting"},
		dataclient.Record{"projectId": "p1", "status": "awaiting"},
		dataclient.Record{"projectId": "p2", "status": "awaiting"},
	)

	res := c.Table("talent_profiles").
		Update(dataclient.Record{"status": "scoring"}).
		Eq("projectId", "p1").
		Exec(ctx)
	require.Nil(t, res.Error)
	assert.Equal(t, int64(2), res.Count())

	untouched := c.Table("talent_profiles").Select().Eq("projectId", "p2").Single(ctx)
	require.Nil(t, untouched.Error)
	assert.Equal(t, "awaiting", untouched.Row()["status"])
}

func TestUnscopedMutationsRejected(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	mustInsert(t, c, "payments", dataclient.Record{"projectId": "p1", "amount": 100.0})

	del := c.Table("payments").Delete().Exec(ctx)
	require.NotNil(t, del.Error)
	assert.Equal(t, dataclient.KindUnscopedMutation, del.Error.Kind)

	upd := c.Table("payments").Update(dataclient.Record{"status": "void"}).Exec(ctx)
	require.NotNil(t, upd.Error)
	assert.Equal(t, dataclient.KindUnscopedMutation, upd.Error.Kind)

	// Nothing was touched.
	left := c.Table("payments").Select().Eq("projectId", "p1").Exec(ctx)
	require.Nil(t, left.Error)
	assert.Len(t, left.Rows(), 1)
}

func TestScopedDeleteReportsCount(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	mustInsert(t, c, "analytics_events",
		dataclient.Record{"name": "clicked", "userId": "u1"},
		dataclient.Record{"name": "clicked", "userId": "u2"},
	)

	res := c.Table("analytics_events").Delete().Eq("name", "clicked").Exec(ctx)
	require.Nil(t, res.Error)
	assert.Equal(t, int64(2), res.Count())
}

func TestUnknownTableSurfacesAtTerminal(t *testing.T) {
	c := newTestClient(t)

	res := c.Table("no_such_table").Select().Exec(context.Background())
	require.NotNil(t, res.Error)
	assert.Equal(t, dataclient.KindUnknownEntity, res.Error.Kind)
}

func TestBuilderChainingDoesNotMutateBase(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	mustInsert(t, c, "talent_profiles",
		dataclient.Record{"projectId": "p1", "status": "awaiting"},
		dataclient.Record{"projectId": "p1", "status": "scored"},
	)

	base := c.Table("talent_profiles").Select().Eq("projectId", "p1")
	narrowed := base.Eq("status", "scored")

	baseRes := base.Exec(ctx)
	require.Nil(t, baseRes.Error)
	assert.Len(t, baseRes.Rows(), 2)

	narrowedRes := narrowed.Exec(ctx)
	require.Nil(t, narrowedRes.Error)
	assert.Len(t, narrowedRes.Rows(), 1)
}
