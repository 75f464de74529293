package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/aurumlabs/gold-commerce-platform/internal/api/middleware"
	"github.com/aurumlabs/gold-commerce-platform/internal/models"
)

func newTestRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	return req
}

// newAuthedRequest attaches claims the way the auth middleware would.
func newAuthedRequest(method, target string, body []byte, claims *models.Claims) *http.Request {
	req := newTestRequest(method, target, body)
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)

	return req.WithContext(ctx)
}

func buyerClaims(userID int64, email string) *models.Claims {
	return &models.Claims{UserID: userID, Email: email, Role: models.RoleUser}
}

func adminClaims(userID int64) *models.Claims {
	return &models.Claims{UserID: userID, Email: "admin@example.com", Role: models.RoleAdmin}
}
