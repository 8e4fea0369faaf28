package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/natnael-haile/hireflow/internal/domain/entity"

	domaincontract "github.com/natnael-haile/hireflow/internal/domain/contract"
)

const (
	// ContextUserID is the gin context key holding the authenticated user id.
	ContextUserID = "userID"
	// ContextRoles is the gin context key holding the authenticated roles.
	ContextRoles = "roles"
)

// AuthMiddleWare verifies the bearer token and stores the caller identity on
// the request context.
func AuthMiddleWare(tokenService domaincontract.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		claims, err := tokenService.VerifyAccessToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRoles, claims.Roles)
		c.Next()
	}
}

// RequireStaff rejects callers whose token lacks a staff role. It must run
// after AuthMiddleWare.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, ok := c.Get(ContextRoles)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		list, _ := roles.([]string)
		for _, r := range list {
			if r == string(entity.UserRoleAdmin) || r == string(entity.UserRoleOpsManager) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
