package contract

import (
	"time"
)

// TokenClaims is the decoded content of an access token.
type TokenClaims struct {
	UserID    string
	Email     string
	Roles     []string
	ExpiresAt time.Time
}

// ITokenService issues and verifies the opaque session tokens attached to
// outgoing calls.
type ITokenService interface {
	GenerateAccessToken(userID, email string, roles []string) (string, error)
	VerifyAccessToken(token string) (*TokenClaims, error)
}
