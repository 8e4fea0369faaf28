package jwt

import (
	"github.com/natnael-haile/hireflow/internal/domain/contract"
)

// TokenServiceAdapter adapts JWTManager to the contract.ITokenService
// interface the session manager consumes.
type TokenServiceAdapter struct {
	mgr *JWTManager
}

// NewTokenService creates a contract.ITokenService from a JWTManager.
func NewTokenService(mgr *JWTManager) contract.ITokenService {
	return &TokenServiceAdapter{mgr: mgr}
}

// GenerateAccessToken issues an access token for a user.
func (a *TokenServiceAdapter) GenerateAccessToken(userID, email string, roles []string) (string, error) {
	return a.mgr.GenerateAccessToken(userID, email, roles)
}

// VerifyAccessToken validates an access token and returns its claims.
func (a *TokenServiceAdapter) VerifyAccessToken(token string) (*contract.TokenClaims, error) {
	claims, err := a.mgr.VerifyToken(token)
	if err != nil {
		return nil, err
	}
	out := &contract.TokenClaims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Roles:  claims.Roles,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
