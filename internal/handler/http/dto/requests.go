package dto

// SignUpRequest is the sign-up payload.
type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	CompanyName string `json:"company_name"`
}

// LoginRequest is the credential login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateProjectRequest is the checkout-completion payload.
type CreateProjectRequest struct {
	Title           string `json:"title" binding:"required"`
	Tier            int    `json:"tier" binding:"required"`
	CandidateSource string `json:"candidate_source" binding:"required"`
}

// AddTalentRequest registers one candidate file on a project.
type AddTalentRequest struct {
	FullName string `json:"full_name" binding:"required"`
	FileName string `json:"file_name"`
}

// RecordPaymentRequest settles a project checkout.
type RecordPaymentRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Currency string  `json:"currency"`
}

// GrantRoleRequest grants a role to a user by email.
type GrantRoleRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

// ScoreTalentRequest records an evaluation for a candidate file. Score is a
// pointer so a zero score still binds.
type ScoreTalentRequest struct {
	Score       *float64 `json:"score" binding:"required"`
	Shortlisted bool     `json:"shortlisted"`
	Summary     string   `json:"summary"`
}

// TrackEventRequest ingests one analytics event.
type TrackEventRequest struct {
	Name  string         `json:"name" binding:"required"`
	Props map[string]any `json:"props"`
}
