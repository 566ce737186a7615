package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"courtpass/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxStaffIDKey = "staff_id"
	ctxRoleKey    = "staff_role"
)

const (
	RoleMember = "member"
	RoleStaff  = "staff"
	RoleAdmin  = "admin"
)

var roleHierarchy = map[string]int{
	RoleMember: 1,
	RoleStaff:  2,
	RoleAdmin:  3,
}

type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
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

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxStaffIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func hasMinimumRole(role, minRole string) bool {
	level, ok := roleHierarchy[role]
	minLevel, minOK := roleHierarchy[minRole]
	return ok && minOK && level >= minLevel
}

func GetStaffID(c *gin.Context) (uuid.UUID, bool) {
	staffID, exists := c.Get(ctxStaffIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := staffID.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	r, ok := role.(string)
	return r, ok
}
