package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aurumlabs/gold-commerce-platform/internal/api/handlers"
	appErrors "github.com/aurumlabs/gold-commerce-platform/internal/errors"
	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserHandler(t *testing.T) (*handlers.UserHandler, *mocks.UserService, *mocks.PasswordResetService) {
	t.Helper()

	mockUserService := mocks.NewUserService(t)
	mockResetService := mocks.NewPasswordResetService(t)

	return handlers.NewUserHandler(mockUserService, mockResetService), mockUserService, mockResetService
}

func TestRegisterHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userHandler, mockUserService, _ := newUserHandler(t)

		reqBody := models.SignUpRequest{
			Email:    "buyer@example.com",
			Password: "secret123",
			FullName: "Asha Buyer",
			MobileNo: "9876543210",
		}
		reqBodyBytes, _ := json.Marshal(reqBody)

		expected := &models.User{ID: 7, Email: reqBody.Email, FullName: reqBody.FullName, Role: models.RoleUser}
		mockUserService.On("Register", mock.Anything, &reqBody).Return(expected, nil).Once()

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/auth/signup", reqBodyBytes)

		userHandler.Register().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp struct {
			Data models.User `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.Data.ID)
		assert.Empty(t, resp.Data.Password, "the password hash must never be serialized")
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		userHandler, mockUserService, _ := newUserHandler(t)

		reqBody := models.SignUpRequest{
			Email:    "buyer@example.com",
			Password: "secret123",
			FullName: "Asha Buyer",
			MobileNo: "9876543210",
		}
		reqBodyBytes, _ := json.Marshal(reqBody)

		mockUserService.On("Register", mock.Anything, &reqBody).
			Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/auth/signup", reqBodyBytes)

		userHandler.Register().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Failure - Validation Error", func(t *testing.T) {
		userHandler, mockUserService, _ := newUserHandler(t)

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/auth/signup", []byte(`{"email":"not-an-email"}`))

		userHandler.Register().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUserService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userHandler, mockUserService, _ := newUserHandler(t)

		reqBody := models.SignInRequest{Email: "buyer@example.com", Password: "secret123"}
		reqBodyBytes, _ := json.Marshal(reqBody)

		mockUserService.On("Login", mock.Anything, &reqBody).
			Return(&models.AuthResponse{Success: true, Token: "header.payload.sig", ExpiresIn: 86400}, nil).Once()

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/auth/signin", reqBodyBytes)

		userHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "header.payload.sig")
	})

	t.Run("Failure - Invalid Credentials", func(t *testing.T) {
		userHandler, mockUserService, _ := newUserHandler(t)

		reqBody := models.SignInRequest{Email: "buyer@example.com", Password: "wrong"}
		reqBodyBytes, _ := json.Marshal(reqBody)

		mockUserService.On("Login", mock.Anything, &reqBody).
			Return(&models.AuthResponse{Success: false, Message: "Invalid email or password"}, nil).Once()

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/auth/signin", reqBodyBytes)

		userHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid email or password")
	})

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		userHandler, mockUserService, _ := newUserHandler(t)

		reqBody := models.SignInRequest{Email: "buyer@example.com", Password: "secret123"}
		reqBodyBytes, _ := json.Marshal(reqBody)

		mockUserService.On("Login", mock.Anything, &reqBody).
			Return(&models.AuthResponse{Success: false, RetryAfter: 120, Message: "Too many login attempts"}, nil).Once()

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/auth/signin", reqBodyBytes)

		userHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	})
}

func TestProfileHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userHandler, mockUserService, _ := newUserHandler(t)

		expected := &models.User{ID: 7, Email: "buyer@example.com", FullName: "Asha Buyer"}
		mockUserService.On("GetUserByID", mock.Anything, int64(7)).Return(expected, nil).Once()

		rr := httptest.NewRecorder()
		req := newAuthedRequest(http.MethodGet, "/users/me", nil, buyerClaims(7, "buyer@example.com"))

		userHandler.Profile().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Asha Buyer")
	})

	t.Run("Failure - No Claims", func(t *testing.T) {
		userHandler, mockUserService, _ := newUserHandler(t)

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/users/me", nil)

		userHandler.Profile().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUserService.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})
}

func TestForgotPasswordHandler(t *testing.T) {
	t.Run("Success - Always OK", func(t *testing.T) {
		userHandler, _, mockResetService := newUserHandler(t)

		reqBody := models.ForgotPasswordRequest{Email: "whoever@example.com"}
		reqBodyBytes, _ := json.Marshal(reqBody)

		mockResetService.On("RequestReset", mock.Anything, &reqBody).Return(nil).Once()

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/auth/forgot-password", reqBodyBytes)

		userHandler.ForgotPassword().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "reset link has been sent")
	})
}

func TestVerifyResetTokenHandler(t *testing.T) {
	t.Run("Valid Token", func(t *testing.T) {
		userHandler, _, mockResetService := newUserHandler(t)

		mockResetService.On("VerifyResetToken", mock.Anything, "abc123").Return(nil).Once()

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/auth/reset-password/verify?token=abc123", nil)

		userHandler.VerifyResetToken().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing Token", func(t *testing.T) {
		userHandler, _, mockResetService := newUserHandler(t)

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/auth/reset-password/verify", nil)

		userHandler.VerifyResetToken().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockResetService.AssertNotCalled(t, "VerifyResetToken")
	})

	t.Run("Expired Token", func(t *testing.T) {
		userHandler, _, mockResetService := newUserHandler(t)

		mockResetService.On("VerifyResetToken", mock.Anything, "stale").
			Return(appErrors.BadRequestError("Invalid or expired reset token")).Once()

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/auth/reset-password/verify?token=stale", nil)

		userHandler.VerifyResetToken().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestResetPasswordHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userHandler, _, mockResetService := newUserHandler(t)

		reqBody := models.ResetPasswordRequest{Token: "abc123", NewPassword: "brandnew456"}
		reqBodyBytes, _ := json.Marshal(reqBody)

		mockResetService.On("ResetPassword", mock.Anything, &reqBody).Return(nil).Once()

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/auth/reset-password", reqBodyBytes)

		userHandler.ResetPassword().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Bad Token", func(t *testing.T) {
		userHandler, _, mockResetService := newUserHandler(t)

		reqBody := models.ResetPasswordRequest{Token: "stale", NewPassword: "brandnew456"}
		reqBodyBytes, _ := json.Marshal(reqBody)

		mockResetService.On("ResetPassword", mock.Anything, &reqBody).
			Return(appErrors.BadRequestError("Invalid or expired reset token")).Once()

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/auth/reset-password", reqBodyBytes)

		userHandler.ResetPassword().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
