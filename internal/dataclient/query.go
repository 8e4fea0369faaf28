package dataclient

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/natnael-haile/hireflow/internal/domain/contract"
)

// Result is the uniform {data, error} envelope every terminal operation
// returns. Data is nil only when Error is set, except for MaybeSingle where a
// zero-row lookup legitimately yields both nil.
type Result struct {
	Data  any    `json:"data"`
	Error *Error `json:"error"`
}

func errResult(e *Error) Result {
	return Result{Error: e}
}

// Rows returns the result rows of a select terminal, or nil on error.
func (r Result) Rows() []Record {
	rows, _ := r.Data.([]Record)
	return rows
}

// Row returns the single row of a Single/MaybeSingle terminal, or nil.
func (r Result) Row() Record {
	row, _ := r.Data.(Record)
	return row
}

// Count returns the affected-row count of an update/delete terminal.
func (r Result) Count() int64 {
	row := r.Row()
	if row == nil {
		return 0
	}
	n, _ := row["count"].(int64)
	return n
}

type opKind int

const (
	opSelect opKind = iota
	opInsert
	opUpsert
	opUpdate
	opDelete
)

func (o opKind) String() string {
	switch o {
	case opInsert:
		return "insert"
	case opUpsert:
		return "upsert"
	case opUpdate:
		return "update"
	case opDelete:
		return "delete"
	default:
		return "select"
	}
}

// clause is one accumulated filter predicate with external field naming.
type clause struct {
	field string
	op    contract.Operator
	value any
}

// OrderOptions mirrors the {ascending} directive of the emulated API.
type OrderOptions struct {
	Ascending bool
}

// QueryBuilder is an accumulating immutable descriptor of one query. Chaining
// performs no I/O; the descriptor compiles into a single store query at the
// terminal operation.
type QueryBuilder struct {
	client      *Client
	model       *Model
	err         *Error
	op          opKind
	selects     []string
	preds       []clause
	ors         []clause
	sortField   string
	sortAsc     bool
	hasSort     bool
	limit       int64
	records     []Record
	partial     Record
	conflictKey string
}

// Table starts a query against a logical table. An unknown name is remembered
// and surfaces as UnknownEntity at the terminal.
func (c *Client) Table(name string) *QueryBuilder {
	m, err := c.registry.Lookup(name)
	return &QueryBuilder{client: c, model: m, err: err}
}

func (q *QueryBuilder) clone() *QueryBuilder {
	nq := *q
	nq.selects = slices.Clone(q.selects)
	nq.preds = slices.Clone(q.preds)
	nq.ors = slices.Clone(q.ors)
	nq.records = slices.Clone(q.records)
	return &nq
}

// Select declares a read returning the named fields, or all fields when none
// are given.
func (q *QueryBuilder) Select(fields ...string) *QueryBuilder {
	nq := q.clone()
	nq.op = opSelect
	nq.selects = slices.Clone(fields)
	return nq
}

// Insert declares an insert of one or more records.
func (q *QueryBuilder) Insert(records ...Record) *QueryBuilder {
	nq := q.clone()
	nq.op = opInsert
	nq.records = slices.Clone(records)
	return nq
}

// Upsert declares an insert-or-replace keyed on the conflict field, which
// defaults to the entity's declared unique key. See OnConflict.
func (q *QueryBuilder) Upsert(records ...Record) *QueryBuilder {
	nq := q.clone()
	nq.op = opUpsert
	nq.records = slices.Clone(records)
	return nq
}

// OnConflict overrides the conflict field used by Upsert.
func (q *QueryBuilder) OnConflict(field string) *QueryBuilder {
	nq := q.clone()
	nq.conflictKey = field
	return nq
}

// Update declares a partial update of all matching documents. At least one
// filter predicate is required before the terminal.
func (q *QueryBuilder) Update(partial Record) *QueryBuilder {
	nq := q.clone()
	nq.op = opUpdate
	nq.partial = partial
	return nq
}

// Delete declares a deletion of all matching documents. At least one filter
// predicate is required before the terminal.
func (q *QueryBuilder) Delete() *QueryBuilder {
	nq := q.clone()
	nq.op = opDelete
	return nq
}

// Eq adds an equality predicate; sequential calls are ANDed.
func (q *QueryBuilder) Eq(field string, value any) *QueryBuilder {
	nq := q.clone()
	nq.preds = append(nq.preds, clause{field: field, op: contract.OpEq, value: value})
	return nq
}

// Or adds a disjunction in the "field.op.value" condition syntax, e.g.
// "companyName.ilike.%acme%,email.eq.a@x.com". The disjunction as a whole is
// ANDed with the other predicates.
func (q *QueryBuilder) Or(condition string) *QueryBuilder {
	nq := q.clone()
	clauses, err := parseOrCondition(condition)
	if err != nil && nq.err == nil {
		nq.err = err
	}
	nq.ors = append(nq.ors, clauses...)
	return nq
}

// Order sets the ordering directive. A nil opts defaults to ascending.
func (q *QueryBuilder) Order(field string, opts *OrderOptions) *QueryBuilder {
	nq := q.clone()
	nq.sortField = field
	nq.sortAsc = opts == nil || opts.Ascending
	nq.hasSort = true
	return nq
}

// Limit caps the number of returned rows.
func (q *QueryBuilder) Limit(n int64) *QueryBuilder {
	nq := q.clone()
	nq.limit = n
	return nq
}

func parseOrCondition(condition string) ([]clause, *Error) {
	var clauses []clause
	for _, part := range strings.Split(condition, ",") {
		bits := strings.SplitN(strings.TrimSpace(part), ".", 3)
		if len(bits) != 3 {
			return nil, newError(KindValidation, "malformed or() condition %q", part)
		}
		field, op, raw := bits[0], bits[1], bits[2]
		switch op {
		case "eq":
			clauses = append(clauses, clause{field: field, op: contract.OpEq, value: raw})
		case "ilike":
			clauses = append(clauses, clause{field: field, op: contract.OpContains, value: strings.Trim(raw, "%")})
		default:
			return nil, newError(KindValidation, "unsupported or() operator %q", op)
		}
	}
	return clauses, nil
}

// compile translates the accumulated descriptor into one store query with
// storage-side field names.
func (q *QueryBuilder) compile() contract.Query {
	cq := contract.Query{Collection: q.model.Collection, Limit: q.limit}
	for _, c := range q.preds {
		cq.Filter = append(cq.Filter, contract.Predicate{Field: q.model.StorageField(c.field), Op: c.op, Value: c.value})
	}
	for _, c := range q.ors {
		cq.Or = append(cq.Or, contract.Predicate{Field: q.model.StorageField(c.field), Op: c.op, Value: c.value})
	}
	if q.hasSort {
		cq.Sort = &contract.Sort{Field: q.model.StorageField(q.sortField), Ascending: q.sortAsc}
	}
	return cq
}

// Exec runs the accumulated query. Store-level failures never escape; they
// come back inside the Result error field.
func (q *QueryBuilder) Exec(ctx context.Context) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = errResult(newError(KindTransport, "query execution panicked: %v", r))
		}
		q.client.observeQuery(q.tableName(), q.op.String(), res.Error)
	}()
	if q.err != nil {
		return errResult(q.err)
	}
	ctx = q.client.withToken(ctx)
	switch q.op {
	case opInsert:
		return q.execInsert(ctx)
	case opUpsert:
		return q.execUpsert(ctx)
	case opUpdate:
		return q.execUpdate(ctx)
	case opDelete:
		return q.execDelete(ctx)
	default:
		return q.execSelect(ctx)
	}
}

// Single runs the query and errors unless exactly one row matched.
func (q *QueryBuilder) Single(ctx context.Context) Result {
	res := q.Exec(ctx)
	if res.Error != nil {
		return res
	}
	rows := res.Rows()
	switch len(rows) {
	case 1:
		return Result{Data: rows[0]}
	case 0:
		return errResult(newError(KindNotFound, "no rows found for %s", q.tableName()))
	default:
		return errResult(newError(KindValidation, "expected exactly one row for %s, got %d", q.tableName(), len(rows)))
	}
}

// MaybeSingle runs the query and returns the row, or nil data with nil error
// when no row matched.
func (q *QueryBuilder) MaybeSingle(ctx context.Context) Result {
	res := q.Exec(ctx)
	if res.Error != nil {
		return res
	}
	rows := res.Rows()
	switch len(rows) {
	case 0:
		return Result{}
	case 1:
		return Result{Data: rows[0]}
	default:
		return errResult(newError(KindValidation, "expected at most one row for %s, got %d", q.tableName(), len(rows)))
	}
}

func (q *QueryBuilder) tableName() string {
	if q.model != nil {
		return q.model.Name
	}
	return "unknown"
}

func (q *QueryBuilder) execSelect(ctx context.Context) Result {
	docs, err := q.client.store.Find(ctx, q.compile())
	if err != nil {
		return errResult(classify(err))
	}
	rows := make([]Record, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, q.project(q.model.FromStorage(doc)))
	}
	return Result{Data: rows}
}

func (q *QueryBuilder) project(rec Record) Record {
	if len(q.selects) == 0 {
		return rec
	}
	out := make(Record, len(q.selects))
	for _, f := range q.selects {
		if v, ok := rec[f]; ok {
			out[f] = v
		}
	}
	return out
}

// prepare validates one write payload and fills identity and timestamp
// defaults, returning the completed external record.
func (q *QueryBuilder) prepare(rec Record) (Record, *Error) {
	out := make(Record, len(rec)+3)
	for k, v := range rec {
		out[k] = v
	}
	for _, f := range q.model.Required {
		if v, ok := out[f]; !ok || v == nil || v == "" {
			return nil, newError(KindValidation, "%s: missing required field %q", q.model.Name, f)
		}
	}
	if id, ok := out["id"].(string); !ok || id == "" {
		out["id"] = q.client.uuidGen.NewUUID()
	}
	if q.model.Timestamps {
		now := time.Now().UTC()
		if _, ok := out["createdAt"]; !ok {
			out["createdAt"] = now
		}
		out["updatedAt"] = now
	}
	return out, nil
}

// findByField fetches the documents matching one equality predicate.
func (q *QueryBuilder) findByField(ctx context.Context, field string, value any) ([]contract.Document, error) {
	return q.client.store.Find(ctx, contract.Query{
		Collection: q.model.Collection,
		Filter:     []contract.Predicate{{Field: q.model.StorageField(field), Op: contract.OpEq, Value: value}},
	})
}

func (q *QueryBuilder) execInsert(ctx context.Context) Result {
	if len(q.records) == 0 {
		return errResult(newError(KindValidation, "%s: insert requires at least one record", q.tableName()))
	}
	prepared := make([]Record, 0, len(q.records))
	docs := make([]contract.Document, 0, len(q.records))
	seen := make(map[any]bool)
	for _, rec := range q.records {
		p, perr := q.prepare(rec)
		if perr != nil {
			return errResult(perr)
		}
		// Application-enforced uniqueness: the whole batch is rejected
		// before any document is written.
		if key := q.model.UniqueKey; key != "" {
			val, ok := p[key]
			if ok && val != nil {
				if seen[val] {
					return errResult(newError(KindConflict, "%s: duplicate %s %v in batch", q.model.Name, key, val))
				}
				seen[val] = true
				existing, err := q.findByField(ctx, key, val)
				if err != nil {
					return errResult(classify(err))
				}
				if len(existing) > 0 {
					return errResult(newError(KindConflict, "%s: %s %v already exists", q.model.Name, key, val))
				}
			}
		}
		prepared = append(prepared, p)
		docs = append(docs, q.model.ToStorage(p))
	}
	if err := q.client.store.Insert(ctx, q.model.Collection, docs); err != nil {
		return errResult(classify(err))
	}
	return Result{Data: prepared}
}

func (q *QueryBuilder) execUpsert(ctx context.Context) Result {
	if len(q.records) == 0 {
		return errResult(newError(KindValidation, "%s: upsert requires at least one record", q.tableName()))
	}
	key := q.conflictKey
	if key == "" {
		key = q.model.UniqueKey
	}
	if key == "" {
		return errResult(newError(KindValidation, "%s: upsert requires a conflict field", q.tableName()))
	}
	results := make([]Record, 0, len(q.records))
	for _, rec := range q.records {
		val, ok := rec[key]
		if !ok || val == nil {
			return errResult(newError(KindValidation, "%s: upsert record missing conflict field %q", q.model.Name, key))
		}
		existing, err := q.findByField(ctx, key, val)
		if err != nil {
			return errResult(classify(err))
		}
		if len(existing) > 0 {
			// Replace in place, preserving identity and creation time.
			cur := q.model.FromStorage(existing[0])
			p, perr := q.prepare(rec)
			if perr != nil {
				return errResult(perr)
			}
			p["id"] = cur["id"]
			if created, ok := cur["createdAt"]; ok {
				p["createdAt"] = created
			}
			id, _ := p["id"].(string)
			if err := q.client.store.Replace(ctx, q.model.Collection, id, q.model.ToStorage(p)); err != nil {
				return errResult(classify(err))
			}
			results = append(results, p)
			continue
		}
		p, perr := q.prepare(rec)
		if perr != nil {
			return errResult(perr)
		}
		if err := q.client.store.Insert(ctx, q.model.Collection, []contract.Document{q.model.ToStorage(p)}); err != nil {
			return errResult(classify(err))
		}
		results = append(results, p)
	}
	return Result{Data: results}
}

func (q *QueryBuilder) requireScope() *Error {
	if len(q.preds) == 0 && len(q.ors) == 0 {
		return newError(KindUnscopedMutation, "%s: %s requires at least one filter predicate", q.tableName(), q.op)
	}
	return nil
}

func (q *QueryBuilder) execUpdate(ctx context.Context) Result {
	if err := q.requireScope(); err != nil {
		return errResult(err)
	}
	if len(q.partial) == 0 {
		return errResult(newError(KindValidation, "%s: update requires a non-empty partial record", q.tableName()))
	}
	set := q.model.ToStorage(q.partial)
	delete(set, "_id")
	if q.model.Timestamps {
		set["updated_at"] = time.Now().UTC()
	}
	count, err := q.client.store.Update(ctx, q.compile(), set)
	if err != nil {
		return errResult(classify(err))
	}
	return Result{Data: Record{"count": count}}
}

func (q *QueryBuilder) execDelete(ctx context.Context) Result {
	if err := q.requireScope(); err != nil {
		return errResult(err)
	}
	count, err := q.client.store.Delete(ctx, q.compile())
	if err != nil {
		return errResult(classify(err))
	}
	return Result{Data: Record{"count": count}}
}
