package middleware

import (
	"net/http"
	"strings"

	"tenthouse_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AdminVerifier is the allow-list check the admin guard layers on top of
// token authentication. Implemented by services.AuthService.
type AdminVerifier interface {
	VerifyAdmin(adminID int64) error
}

// AuthMiddleware creates a Gin middleware for JWT authentication.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authorization header required", ""))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid authorization header format. Use Bearer <token>", ""))
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token", err.Error()))
			return
		}

		// Set admin identity in the context for downstream handlers
		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)

		c.Next()
	}
}

// AdminAuthMiddleware creates a Gin middleware that re-checks the admin
// allow-list flag on every guarded request. A token alone is not enough: the
// account must still exist, be active, and carry the admin flag. Any failure
// denies — the guard never fails open.
func AdminAuthMiddleware(verifier AdminVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminIDRaw, exists := c.Get("adminID")
		if !exists {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required. Ensure AuthMiddleware runs first.", ""))
			return
		}

		adminID, ok := adminIDRaw.(int64)
		if !ok {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Access denied", ""))
			return
		}

		if err := verifier.VerifyAdmin(adminID); err != nil {
			utils.LogWarn(err, "Admin allow-list check denied request")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "You are not an authorized admin.", ""))
			return
		}

		c.Next()
	}
}
