package contract

import (
	"context"
	"errors"
)

// ErrDuplicateKey is returned by stores that enforce unique indexes when an
// insert or replace violates one.
var ErrDuplicateKey = errors.New("duplicate key")

// Document is one schema-less record as held by the store. Field names are the
// storage-side names; the document id lives under "_id".
type Document = map[string]any

// Operator identifies a filter predicate operator
type Operator string

const (
	// OpEq matches documents whose field equals the value.
	OpEq Operator = "eq"
	// OpContains matches documents whose string field contains the value,
	// case-insensitively.
	OpContains Operator = "ilike"
)

// Predicate is one compiled filter clause against a storage-side field.
type Predicate struct {
	Field string
	Op    Operator
	Value any
}

// Sort is an ordering directive on a storage-side field.
type Sort struct {
	Field     string
	Ascending bool
}

// Query is the compiled form of one read or scoped mutation. Filter clauses
// are ANDed; Or clauses are ORed together and ANDed with Filter. Limit of
// zero means no limit.
type Query struct {
	Collection string
	Filter     []Predicate
	Or         []Predicate
	Sort       *Sort
	Limit      int64
}

// IDatastore is the document store boundary. Implementations guarantee
// single-document write atomicity and nothing more; there are no
// cross-document transactions.
type IDatastore interface {
	Find(ctx context.Context, q Query) ([]Document, error)
	Insert(ctx context.Context, collection string, docs []Document) error
	Replace(ctx context.Context, collection string, id string, doc Document) error
	Update(ctx context.Context, q Query, set Document) (int64, error)
	Delete(ctx context.Context, q Query) (int64, error)
}
