package dto

import (
	"time"

	"github.com/natnael-haile/hireflow/internal/dataclient"
)

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FullName  string   `json:"full_name"`
	Roles     []string `json:"roles"`
	CreatedAt string   `json:"created_at"`
}

// ToUserResponse converts a user record to a UserResponse DTO.
func ToUserResponse(user dataclient.Record) UserResponse {
	out := UserResponse{
		ID:       dataclient.AsString(user["id"]),
		Email:    dataclient.AsString(user["email"]),
		FullName: dataclient.AsString(user["fullName"]),
	}
	switch roles := user["roles"].(type) {
	case []string:
		out.Roles = roles
	case []any:
		for _, r := range roles {
			if s, ok := r.(string); ok {
				out.Roles = append(out.Roles, s)
			}
		}
	}
	if created, ok := dataclient.AsTime(user["createdAt"]); ok {
		out.CreatedAt = created.Format(time.RFC3339)
	}
	return out
}

// SessionResponse is the DTO for a successful login or sign-up.
type SessionResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
}

// ToSessionResponse converts a session to its DTO.
func ToSessionResponse(session *dataclient.Session) SessionResponse {
	return SessionResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresAt:   session.ExpiresAt.Format(time.RFC3339),
		UserID:      session.UserID,
		Email:       session.Email,
	}
}

// RecruiterResponse is the DTO for a recruiter profile.
type RecruiterResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	CompanyName string `json:"company_name"`
	Status      string `json:"status"`
}

// ToRecruiterResponse converts a recruiter record to its DTO.
func ToRecruiterResponse(rec dataclient.Record) RecruiterResponse {
	return RecruiterResponse{
		ID:          dataclient.AsString(rec["id"]),
		UserID:      dataclient.AsString(rec["userId"]),
		CompanyName: dataclient.AsString(rec["companyName"]),
		Status:      dataclient.AsString(rec["status"]),
	}
}

// MeResponse pairs the user with its optional recruiter profile.
type MeResponse struct {
	User      UserResponse       `json:"user"`
	Recruiter *RecruiterResponse `json:"recruiter,omitempty"`
}

// ProjectResponse is the DTO for a project, including the derived display
// fields the console renders.
type ProjectResponse struct {
	ID               string `json:"id"`
	Code             string `json:"code"`
	Title            string `json:"title"`
	Tier             int    `json:"tier"`
	TierName         string `json:"tier_name,omitempty"`
	CandidateSource  string `json:"candidate_source"`
	Status           string `json:"status"`
	PaymentStatus    string `json:"payment_status"`
	TalentCount      int    `json:"talent_count"`
	ShortlistedCount int    `json:"shortlisted_count"`
	CreatedAt        string `json:"created_at"`
}

// ToProjectResponse converts a project record to its DTO.
func ToProjectResponse(rec dataclient.Record) ProjectResponse {
	out := ProjectResponse{
		ID:              dataclient.AsString(rec["id"]),
		Code:            dataclient.AsString(rec["code"]),
		Title:           dataclient.AsString(rec["title"]),
		TierName:        dataclient.AsString(rec["tierName"]),
		CandidateSource: dataclient.AsString(rec["candidateSource"]),
		Status:          dataclient.AsString(rec["status"]),
		PaymentStatus:   dataclient.AsString(rec["paymentStatus"]),
	}
	if tier, ok := dataclient.AsInt(rec["tier"]); ok {
		out.Tier = tier
	}
	if n, ok := dataclient.AsInt(rec["talentCount"]); ok {
		out.TalentCount = n
	}
	if n, ok := dataclient.AsInt(rec["shortlistedCount"]); ok {
		out.ShortlistedCount = n
	}
	if created, ok := dataclient.AsTime(rec["createdAt"]); ok {
		out.CreatedAt = created.Format(time.RFC3339)
	}
	return out
}

// TalentResponse is the DTO for one candidate file.
type TalentResponse struct {
	ID          string   `json:"id"`
	ProjectID   string   `json:"project_id"`
	FullName    string   `json:"full_name"`
	FileName    string   `json:"file_name,omitempty"`
	Status      string   `json:"status"`
	Shortlisted bool     `json:"shortlisted"`
	Score       *float64 `json:"score,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// ToTalentResponse converts a talent profile record to its DTO.
func ToTalentResponse(rec dataclient.Record) TalentResponse {
	out := TalentResponse{
		ID:          dataclient.AsString(rec["id"]),
		ProjectID:   dataclient.AsString(rec["projectId"]),
		FullName:    dataclient.AsString(rec["fullName"]),
		FileName:    dataclient.AsString(rec["fileName"]),
		Status:      dataclient.AsString(rec["status"]),
		Shortlisted: dataclient.AsBool(rec["shortlisted"]),
	}
	if score, ok := dataclient.AsFloat(rec["score"]); ok {
		out.Score = &score
	}
	if created, ok := dataclient.AsTime(rec["createdAt"]); ok {
		out.CreatedAt = created.Format(time.RFC3339)
	}
	return out
}

// MetricsResponse is the DTO for the admin dashboard counters.
type MetricsResponse struct {
	TotalUsers          int     `json:"total_users"`
	TotalRecruiters     int     `json:"total_recruiters"`
	TotalProjects       int     `json:"total_projects"`
	TotalTalentProfiles int     `json:"total_talent_profiles"`
	PaidProjects        int     `json:"paid_projects"`
	TotalRevenue        float64 `json:"total_revenue"`
}

// ToMetricsResponse converts the metrics record to its DTO.
func ToMetricsResponse(rec dataclient.Record) MetricsResponse {
	out := MetricsResponse{}
	if n, ok := dataclient.AsInt(rec["totalUsers"]); ok {
		out.TotalUsers = n
	}
	if n, ok := dataclient.AsInt(rec["totalRecruiters"]); ok {
		out.TotalRecruiters = n
	}
	if n, ok := dataclient.AsInt(rec["totalProjects"]); ok {
		out.TotalProjects = n
	}
	if n, ok := dataclient.AsInt(rec["totalTalentProfiles"]); ok {
		out.TotalTalentProfiles = n
	}
	if n, ok := dataclient.AsInt(rec["paidProjects"]); ok {
		out.PaidProjects = n
	}
	if revenue, ok := dataclient.AsFloat(rec["totalRevenue"]); ok {
		out.TotalRevenue = revenue
	}
	return out
}
