package mongodb

import (
	"context"
	"fmt"
	"regexp"

	"github.com/natnael-haile/hireflow/internal/domain/contract"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the MongoDB implementation of the contract.IDatastore boundary.
type Store struct {
	db *mongo.Database
}

var _ contract.IDatastore = (*Store)(nil)

// NewStore creates a Store over the given database.
func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// EnsureIndexes creates the unique indexes backing application-level
// uniqueness. Safe to call repeatedly.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := map[string]string{
		"users":           "email",
		"recruiters":      "user_id",
		"projects":        "code",
		"admin_whitelist": "email",
	}
	for collection, field := range unique {
		_, err := s.db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("failed to create index on %s.%s: %w", collection, field, err)
		}
	}
	return nil
}

func predToBSON(p contract.Predicate) bson.M {
	if p.Op == contract.OpContains {
		pattern := regexp.QuoteMeta(fmt.Sprint(p.Value))
		return bson.M{p.Field: bson.M{"$regex": pattern, "$options": "i"}}
	}
	return bson.M{p.Field: p.Value}
}

// compileFilter builds one bson filter from the query descriptor. Clauses go
// through $and so repeated fields do not collide.
func compileFilter(q contract.Query) bson.M {
	var and []bson.M
	for _, p := range q.Filter {
		and = append(and, predToBSON(p))
	}
	if len(q.Or) > 0 {
		or := make([]bson.M, 0, len(q.Or))
		for _, p := range q.Or {
			or = append(or, predToBSON(p))
		}
		and = append(and, bson.M{"$or": or})
	}
	switch len(and) {
	case 0:
		return bson.M{}
	case 1:
		return and[0]
	default:
		return bson.M{"$and": and}
	}
}

func (s *Store) Find(ctx context.Context, q contract.Query) ([]contract.Document, error) {
	opts := options.Find()
	if q.Sort != nil {
		dir := 1
		if !q.Sort.Ascending {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.Sort.Field, Value: dir}})
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	cur, err := s.db.Collection(q.Collection).Find(ctx, compileFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("find on %s failed: %w", q.Collection, err)
	}
	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode from %s failed: %w", q.Collection, err)
	}
	docs := make([]contract.Document, 0, len(raw))
	for _, doc := range raw {
		docs = append(docs, contract.Document(doc))
	}
	return docs, nil
}

func (s *Store) Insert(ctx context.Context, collection string, docs []contract.Document) error {
	payload := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		payload = append(payload, bson.M(doc))
	}
	_, err := s.db.Collection(collection).InsertMany(ctx, payload)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", contract.ErrDuplicateKey, err)
		}
		return fmt.Errorf("insert into %s failed: %w", collection, err)
	}
	return nil
}

func (s *Store) Replace(ctx context.Context, collection, id string, doc contract.Document) error {
	_, err := s.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, bson.M(doc))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", contract.ErrDuplicateKey, err)
		}
		return fmt.Errorf("replace in %s failed: %w", collection, err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, q contract.Query, set contract.Document) (int64, error) {
	res, err := s.db.Collection(q.Collection).UpdateMany(ctx, compileFilter(q), bson.M{"$set": bson.M(set)})
	if err != nil {
		return 0, fmt.Errorf("update on %s failed: %w", q.Collection, err)
	}
	return res.MatchedCount, nil
}

func (s *Store) Delete(ctx context.Context, q contract.Query) (int64, error) {
	res, err := s.db.Collection(q.Collection).DeleteMany(ctx, compileFilter(q))
	if err != nil {
		return 0, fmt.Errorf("delete on %s failed: %w", q.Collection, err)
	}
	return res.DeletedCount, nil
}
