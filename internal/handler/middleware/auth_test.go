//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"courtpass/internal/handler/middleware"
	"courtpass/internal/pkg/jwt"
	"courtpass/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, minRole string) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := jwt.NewService("test-secret", time.Hour)
	auth := middleware.NewAuthMiddleware(tokens)

	router := gin.New()
	router.POST("/protected",
		auth.RequireAuth(),
		auth.RequireRoleAtLeast(minRole),
		func(c *gin.Context) {
			staffID, ok := middleware.GetStaffID(c)
			require.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"staff_id": staffID})
		},
	)
	return router, tokens
}

func TestRequireAuth(t *testing.T) {
	router, tokens := newAuthRouter(t, middleware.RoleStaff)

	t.Run("accepts a valid bearer token", func(t *testing.T) {
		token, err := tokens.GenerateToken(uuid.New(), middleware.RoleStaff)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, router, http.MethodPost, "/protected", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodPost, "/protected", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejects a forged token", func(t *testing.T) {
		forged := jwt.NewService("wrong-secret", time.Hour)
		token, err := forged.GenerateToken(uuid.New(), middleware.RoleStaff)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, router, http.MethodPost, "/protected", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	cases := []struct {
		name       string
		minRole    string
		tokenRole  string
		expectCode int
	}{
		{"staff meets staff", middleware.RoleStaff, middleware.RoleStaff, http.StatusOK},
		{"admin exceeds staff", middleware.RoleStaff, middleware.RoleAdmin, http.StatusOK},
		{"member falls short of staff", middleware.RoleStaff, middleware.RoleMember, http.StatusForbidden},
		{"staff falls short of admin", middleware.RoleAdmin, middleware.RoleStaff, http.StatusForbidden},
		{"unknown role is refused", middleware.RoleStaff, "superuser", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, tokens := newAuthRouter(t, tc.minRole)
			token, err := tokens.GenerateToken(uuid.New(), tc.tokenRole)
			require.NoError(t, err)

			w := httptest.PerformRequest(t, router, http.MethodPost, "/protected", nil, token)
			assert.Equal(t, tc.expectCode, w.Code)
		})
	}
}
