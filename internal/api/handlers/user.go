package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aurumlabs/gold-commerce-platform/internal/api/middleware"
	"github.com/aurumlabs/gold-commerce-platform/internal/errors"
	models "github.com/aurumlabs/gold-commerce-platform/internal/models"
	service "github.com/aurumlabs/gold-commerce-platform/internal/services"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService  service.UserService
	resetService service.PasswordResetService
	validator    *validator.Validate
}

func NewUserHandler(userService service.UserService, resetService service.PasswordResetService) *UserHandler {
	return &UserHandler{userService: userService, resetService: resetService, validator: validator.New()}
}

// Register godoc
//	@Summary		Register a new user
//	@Description	Creates a new buyer account with the given email, password and profile details.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.SignUpRequest	true	"Registration details"
//	@Success		201		{object}	models.User				"Successfully registered user"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		409		{object}	response.ErrorResponse	"Email already registered"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/auth/signup [post]
func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SignUpRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid signup input")
			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Error("User registration failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User registered", slog.Int64("userID", user.ID))
		response.Success(w, http.StatusCreated, user)
	}
}

// Login godoc
//	@Summary		Sign in
//	@Description	Authenticates a user and returns a signed JWT. Repeated failures for the same email are rate limited.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.SignInRequest	true	"Login credentials"
//	@Success		200			{object}	models.AuthResponse		"Token issued"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		401			{object}	models.AuthResponse		"Invalid credentials"
//	@Failure		429			{object}	models.AuthResponse		"Too many attempts"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/auth/signin [post]
func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SignInRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid signin input")
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Error("Login failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if !resp.Success {
			status := http.StatusUnauthorized
			if resp.RetryAfter > 0 {
				status = http.StatusTooManyRequests
				logger.Warn("Login rate limited", slog.String("email", req.Email))
			} else {
				logger.Warn("Login rejected", slog.String("email", req.Email))
			}

			response.WriteJson(w, status, resp)
			return
		}

		logger.Info("User logged in", slog.String("email", req.Email))
		response.Success(w, http.StatusOK, resp)
	}
}

// Profile godoc
//	@Summary		Get own profile
//	@Description	Returns the authenticated user's profile.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	models.User				"Profile"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"User not found"
//	@Security		BearerAuth
//	@Router			/users/me [get]
func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized profile access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to load profile", slog.Int64("userID", claims.UserID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// UpdateProfile godoc
//	@Summary		Update own profile
//	@Description	Updates the authenticated user's name or mobile number. Omitted fields are left unchanged.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		models.UpdateProfileRequest	true	"Fields to update"
//	@Success		200		{object}	models.User					"Updated profile"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/users/me [patch]
func (h *UserHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized profile update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.UpdateProfileRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid profile update input")
			return
		}

		user, err := h.userService.UpdateProfile(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to update profile", slog.Int64("userID", claims.UserID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Profile updated", slog.Int64("userID", claims.UserID))
		response.Success(w, http.StatusOK, user)
	}
}

// ForgotPassword godoc
//	@Summary		Request a password reset
//	@Description	Sends a reset link to the given email. Always responds with 200 so account existence is not leaked.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.ForgotPasswordRequest	true	"Account email"
//	@Success		200		{object}	map[string]string				"Reset link sent if the account exists"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		500		{object}	response.ErrorResponse			"Internal server error"
//	@Router			/auth/forgot-password [post]
func (h *UserHandler) ForgotPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ForgotPasswordRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid forgot password input")
			return
		}

		if err := h.resetService.RequestReset(r.Context(), &req); err != nil {
			logger.Error("Failed to process reset request", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{
			"message": "If that email is registered, a reset link has been sent",
		})
	}
}

// VerifyResetToken godoc
//	@Summary		Verify a password reset token
//	@Description	Checks whether a reset token is still valid, so the reset form can reject dead links before asking for a new password.
//	@Tags			Auth
//	@Produce		json
//	@Param			token	query		string					true	"Reset token"
//	@Success		200		{object}	map[string]string		"Token is valid"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid or expired token"
//	@Router			/auth/reset-password/verify [get]
func (h *UserHandler) VerifyResetToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		token := r.URL.Query().Get("token")
		if token == "" {
			response.Error(w, errors.BadRequestError("Missing reset token"))
			return
		}

		if err := h.resetService.VerifyResetToken(r.Context(), token); err != nil {
			logger.Warn("Reset token verification failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"message": "Token is valid"})
	}
}

// ResetPassword godoc
//	@Summary		Reset password with a token
//	@Description	Sets a new password using a reset token from the emailed link. Tokens are single use and expire after one hour.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.ResetPasswordRequest	true	"Reset token and new password"
//	@Success		200		{object}	map[string]string			"Password updated"
//	@Failure		400		{object}	response.ErrorResponse		"Invalid or expired token"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/auth/reset-password [post]
func (h *UserHandler) ResetPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ResetPasswordRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid reset password input")
			return
		}

		if err := h.resetService.ResetPassword(r.Context(), &req); err != nil {
			logger.Warn("Password reset rejected", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Password reset completed")
		response.Success(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
	}
}
