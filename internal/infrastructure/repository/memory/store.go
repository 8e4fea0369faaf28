package memory

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/natnael-haile/hireflow/internal/domain/contract"
)

// Store is an in-memory implementation of the contract.IDatastore boundary.
// It backs the test suite and local development without a MongoDB instance.
// Single-document writes are atomic under the store mutex.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]contract.Document
}

var _ contract.IDatastore = (*Store)(nil)

func NewStore() *Store {
	return &Store{collections: make(map[string][]contract.Document)}
}

func copyDoc(doc contract.Document) contract.Document {
	out := make(contract.Document, len(doc))
	for k, v := range doc {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = copyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}

func matches(doc contract.Document, q contract.Query) bool {
	for _, p := range q.Filter {
		if !matchPredicate(doc, p) {
			return false
		}
	}
	if len(q.Or) > 0 {
		any := false
		for _, p := range q.Or {
			if matchPredicate(doc, p) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	return true
}

func matchPredicate(doc contract.Document, p contract.Predicate) bool {
	v, ok := doc[p.Field]
	if !ok {
		return false
	}
	switch p.Op {
	case contract.OpContains:
		s, sok := v.(string)
		sub, subok := p.Value.(string)
		return sok && subok && strings.Contains(strings.ToLower(s), strings.ToLower(sub))
	default:
		return equalValues(v, p.Value)
	}
}

func equalValues(a, b any) bool {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Equal(bt)
		}
		return false
	}
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af == bf
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// lessValues orders two field values for sorting. Mixed types sort by their
// string forms, which keeps the order deterministic.
func lessValues(a, b any) bool {
	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			return at.Before(bt)
		}
	}
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af < bf
		}
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return as < bs
	}
	return stringify(a) < stringify(b)
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func (s *Store) Find(_ context.Context, q contract.Query) ([]contract.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []contract.Document
	for _, doc := range s.collections[q.Collection] {
		if matches(doc, q) {
			out = append(out, copyDoc(doc))
		}
	}
	if q.Sort != nil {
		field, asc := q.Sort.Field, q.Sort.Ascending
		sort.SliceStable(out, func(i, j int) bool {
			if asc {
				return lessValues(out[i][field], out[j][field])
			}
			return lessValues(out[j][field], out[i][field])
		})
	}
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *Store) Insert(_ context.Context, collection string, docs []contract.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range docs {
		s.collections[collection] = append(s.collections[collection], copyDoc(doc))
	}
	return nil
}

func (s *Store) Replace(_ context.Context, collection, id string, doc contract.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.collections[collection] {
		if existing["_id"] == id {
			replacement := copyDoc(doc)
			replacement["_id"] = id
			s.collections[collection][i] = replacement
			return nil
		}
	}
	// Replace of a missing id inserts, matching upsert-style semantics.
	inserted := copyDoc(doc)
	inserted["_id"] = id
	s.collections[collection] = append(s.collections[collection], inserted)
	return nil
}

func (s *Store) Update(_ context.Context, q contract.Query, set contract.Document) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for i, doc := range s.collections[q.Collection] {
		if !matches(doc, q) {
			continue
		}
		updated := copyDoc(doc)
		for k, v := range set {
			updated[k] = copyValue(v)
		}
		s.collections[q.Collection][i] = updated
		count++
	}
	return count, nil
}

func (s *Store) Delete(_ context.Context, q contract.Query) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.collections[q.Collection][:0]
	var count int64
	for _, doc := range s.collections[q.Collection] {
		if matches(doc, q) {
			count++
			continue
		}
		kept = append(kept, doc)
	}
	s.collections[q.Collection] = kept
	return count, nil
}
