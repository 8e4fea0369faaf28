package dataclient

import (
	"strings"
	"unicode"

	"github.com/natnael-haile/hireflow/internal/domain/contract"
)

// Record is one row as seen by call sites: external camelCase field names with
// "id" as the identity key. Storage documents use snake_case with "_id"; the
// registry owns the translation in both directions.
type Record = map[string]any

// Model binds a logical table name to its collection and field shape.
type Model struct {
	Name       string
	Collection string
	// UniqueKey is the external name of the field insert conflicts are
	// detected on and the default upsert conflict target. Empty means none.
	UniqueKey string
	Required  []string
	// Timestamps, when set, defaults createdAt/updatedAt on writes.
	Timestamps bool
	Fields     map[string]string

	reverse map[string]string
}

// StorageField maps an external field name to its storage-side name. Fields
// not in the mapping table fall back to mechanical snake_case conversion.
func (m *Model) StorageField(name string) string {
	if name == "id" {
		return "_id"
	}
	if s, ok := m.Fields[name]; ok {
		return s
	}
	return camelToSnake(name)
}

// ExternalField maps a storage-side field name back to its external name.
func (m *Model) ExternalField(name string) string {
	if name == "_id" {
		return "id"
	}
	if e, ok := m.reverse[name]; ok {
		return e
	}
	return snakeToCamel(name)
}

// ToStorage translates an external record into a storage document.
func (m *Model) ToStorage(rec Record) contract.Document {
	doc := make(contract.Document, len(rec))
	for k, v := range rec {
		doc[m.StorageField(k)] = v
	}
	return doc
}

// FromStorage translates a storage document into an external record.
func (m *Model) FromStorage(doc contract.Document) Record {
	rec := make(Record, len(doc))
	for k, v := range doc {
		rec[m.ExternalField(k)] = v
	}
	return rec
}

// Registry resolves logical table names. Pure lookup, no side effects.
type Registry struct {
	models map[string]*Model
}

func NewRegistry() *Registry {
	return &Registry{models: make(map[string]*Model)}
}

// Register adds a model and builds its reverse field map.
func (r *Registry) Register(m *Model) {
	m.reverse = make(map[string]string, len(m.Fields))
	for ext, storage := range m.Fields {
		m.reverse[storage] = ext
	}
	r.models[m.Name] = m
}

// Lookup returns the model for a logical table name.
func (r *Registry) Lookup(name string) (*Model, *Error) {
	m, ok := r.models[name]
	if !ok {
		return nil, newError(KindUnknownEntity, "unknown entity %q", name)
	}
	return m, nil
}

// DefaultRegistry registers every table the product uses.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&Model{
		Name:       "users",
		Collection: "users",
		UniqueKey:  "email",
		Required:   []string{"email"},
		Timestamps: true,
		Fields: map[string]string{
			"email":        "email",
			"passwordHash": "password_hash",
			"fullName":     "full_name",
			"roles":        "roles",
			"createdAt":    "created_at",
			"updatedAt":    "updated_at",
		},
	})
	r.Register(&Model{
		Name:       "recruiters",
		Collection: "recruiters",
		UniqueKey:  "userId",
		Required:   []string{"userId"},
		Timestamps: true,
		Fields: map[string]string{
			"userId":      "user_id",
			"companyName": "company_name",
			"companySize": "company_size",
			"industry":    "industry",
			"status":      "status",
			"createdAt":   "created_at",
			"updatedAt":   "updated_at",
		},
	})
	r.Register(&Model{
		Name:       "projects",
		Collection: "projects",
		UniqueKey:  "code",
		Required:   []string{"recruiterId", "code"},
		Timestamps: true,
		Fields: map[string]string{
			"recruiterId":     "recruiter_id",
			"code":            "code",
			"title":           "title",
			"tier":            "tier",
			"candidateSource": "candidate_source",
			"status":          "status",
			"paymentStatus":   "payment_status",
			"createdAt":       "created_at",
			"updatedAt":       "updated_at",
		},
	})
	r.Register(&Model{
		Name:       "talent_profiles",
		Collection: "talent_profiles",
		Required:   []string{"projectId"},
		Timestamps: true,
		Fields: map[string]string{
			"projectId":   "project_id",
			"fullName":    "full_name",
			"fileName":    "file_name",
			"status":      "status",
			"shortlisted": "shortlisted",
			"score":       "score",
			"createdAt":   "created_at",
			"updatedAt":   "updated_at",
		},
	})
	r.Register(&Model{
		Name:       "payments",
		Collection: "payments",
		Required:   []string{"projectId"},
		Timestamps: true,
		Fields: map[string]string{
			"projectId": "project_id",
			"amount":    "amount",
			"currency":  "currency",
			"status":    "status",
			"createdAt": "created_at",
			"updatedAt": "updated_at",
		},
	})
	r.Register(&Model{
		Name:       "evaluations",
		Collection: "evaluations",
		Required:   []string{"talentProfileId"},
		Timestamps: true,
		Fields: map[string]string{
			"talentProfileId": "talent_profile_id",
			"projectId":       "project_id",
			"score":           "score",
			"summary":         "summary",
			"createdAt":       "created_at",
			"updatedAt":       "updated_at",
		},
	})
	r.Register(&Model{
		Name:       "analytics_events",
		Collection: "analytics_events",
		Required:   []string{"name"},
		Timestamps: true,
		Fields: map[string]string{
			"userId":    "user_id",
			"name":      "name",
			"props":     "props",
			"createdAt": "created_at",
			"updatedAt": "updated_at",
		},
	})
	r.Register(&Model{
		Name:       "user_roles",
		Collection: "user_roles",
		Required:   []string{"userId", "role"},
		Timestamps: true,
		Fields: map[string]string{
			"userId":    "user_id",
			"role":      "role",
			"grantedBy": "granted_by",
			"createdAt": "created_at",
			"updatedAt": "updated_at",
		},
	})
	r.Register(&Model{
		Name:       "admin_whitelist",
		Collection: "admin_whitelist",
		UniqueKey:  "email",
		Required:   []string{"email"},
		Timestamps: true,
		Fields: map[string]string{
			"email":     "email",
			"createdAt": "created_at",
			"updatedAt": "updated_at",
		},
	})
	return r
}

func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}
