package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"scms/internal/domain/user"
	"scms/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates with a bearer token carrying only the
// principal's email. Roles are read from the store per request so a
// promotion takes effect without reissuing the token.
type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	users          usecase.UserUseCase
}

const (
	ctxUserEmailKey = "user_email"
	ctxUserRoleKey  = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, users usecase.UserUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		users:          users,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		email, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserEmailKey, email)
		c.Next()
	}
}

// ResolveRole loads the principal's current role from the store and stashes
// it in the request context. Unknown principals resolve to the base role.
// Must run after RequireAuth.
func (m *AuthMiddleware) ResolveRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := GetUserEmail(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		role, err := m.users.GetRole(c.Request.Context(), email)
		if err != nil {
			role = user.RoleUser.String()
		}
		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

// RequireAdmin must run after ResolveRole.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetUserEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUserEmailKey)
	if !exists {
		return "", false
	}

	email, ok := v.(string)
	return email, ok
}

func GetUserRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := v.(string)
	return role, ok
}

func IsAdmin(c *gin.Context) bool {
	role, ok := GetUserRole(c)
	return ok && role == user.RoleAdmin.String()
}
