package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aurumlabs/gold-commerce-platform/internal/api/middleware"
	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

func createTestToken(t *testing.T, userID int64, email string, role models.Role, duration time.Duration, key []byte) string {
	t.Helper()

	claims := &models.Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestAuthenticate(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		require.True(t, ok, "User claims should be in context")
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "buyer@example.com", claims.Email)

		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "Success - Valid Token",
			authHeader:     "Bearer " + createTestToken(t, 42, "buyer@example.com", models.RoleUser, time.Hour, testJwtKey),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Fail - Missing Authorization Header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Fail - Malformed Header",
			authHeader:     "NotBearerToken",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Fail - Malformed Token",
			authHeader:     "Bearer not.a.valid.token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Fail - Wrong Signing Key",
			authHeader:     "Bearer " + createTestToken(t, 42, "buyer@example.com", models.RoleUser, time.Hour, []byte("different-secret-key-0987654321")),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Fail - Expired Token",
			authHeader:     "Bearer " + createTestToken(t, 42, "buyer@example.com", models.RoleUser, -time.Hour, testJwtKey),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			authMiddleware.Authenticate(nextHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	protected := authMiddleware.Authenticate(authMiddleware.RequireAdmin(nextHandler))

	t.Run("Admin Token Passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", nil)
		req.Header.Set("Authorization", "Bearer "+createTestToken(t, 1, "admin@example.com", models.RoleAdmin, time.Hour, testJwtKey))

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("User Token Rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", nil)
		req.Header.Set("Authorization", "Bearer "+createTestToken(t, 42, "buyer@example.com", models.RoleUser, time.Hour, testJwtKey))

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Unauthenticated Rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", nil)

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
