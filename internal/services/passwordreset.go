package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/aurumlabs/gold-commerce-platform/internal/api/middleware"
	"github.com/aurumlabs/gold-commerce-platform/internal/errors"
	models "github.com/aurumlabs/gold-commerce-platform/internal/models"
	repository "github.com/aurumlabs/gold-commerce-platform/internal/repositories"
	"github.com/aurumlabs/gold-commerce-platform/pkg/sendgrid"
	"golang.org/x/crypto/bcrypt"
)

const (
	resetTokenTTL  = time.Hour
	resetResendGap = 5 * time.Minute
)

type PasswordResetService interface {
	// RequestReset issues a reset token and emails it. It succeeds silently
	// for unknown emails so the endpoint cannot be used to probe accounts.
	RequestReset(ctx context.Context, req *models.ForgotPasswordRequest) error
	// VerifyResetToken lets the reset form check a token before asking the
	// user for a new password.
	VerifyResetToken(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
}

type passwordResetService struct {
	users    repository.UserRepository
	tokens   repository.TokenRepository
	email    sendgrid.EmailService
	resetURL string
}

func NewPasswordResetService(users repository.UserRepository, tokens repository.TokenRepository, email sendgrid.EmailService, resetURL string) PasswordResetService {
	return &passwordResetService{
		users:    users,
		tokens:   tokens,
		email:    email,
		resetURL: resetURL,
	}
}

func (s *passwordResetService) RequestReset(ctx context.Context, req *models.ForgotPasswordRequest) error {
	logger := middleware.LoggerFromContext(ctx)

	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		logger.Info("Password reset requested for unknown email")

		return nil
	}

	// The response stays identical when a recent token exists, so the
	// throttle is invisible from the outside.
	if latest, err := s.tokens.LatestForUser(ctx, user.ID); err == nil && latest != nil {
		if time.Since(latest.CreatedAt) < resetResendGap {
			logger.Info("Password reset re-requested within resend window", slog.Int64("userId", user.ID))

			return nil
		}
	}

	// A new request supersedes any outstanding token.
	if err := s.tokens.InvalidateForUser(ctx, user.ID); err != nil {
		return errors.DatabaseError("Failed to issue reset token").WithError(err)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return errors.InternalError("Failed to generate reset token").WithError(err)
	}

	token := &models.PasswordResetToken{
		Token:     hex.EncodeToString(raw),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}

	if err := s.tokens.CreateToken(ctx, token); err != nil {
		return errors.DatabaseError("Failed to issue reset token").WithError(err)
	}

	resetLink := fmt.Sprintf("%s?token=%s", s.resetURL, token.Token)

	// The mail is best effort. A provider failure must not change the
	// response, or the endpoint starts answering differently for known
	// and unknown emails.
	if err := s.email.SendPasswordReset(ctx, user.Email, resetLink); err != nil {
		logger.Error("Failed to send password reset email", slog.Any("error", err))
	}

	return nil
}

func (s *passwordResetService) VerifyResetToken(ctx context.Context, token string) error {
	if _, err := s.tokens.GetValidToken(ctx, token); err != nil {
		return errors.BadRequestError("Invalid or expired reset token")
	}

	return nil
}

func (s *passwordResetService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	token, err := s.tokens.GetValidToken(ctx, req.Token)
	if err != nil {
		return errors.BadRequestError("Invalid or expired reset token")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.InternalError("Failed to secure password").WithError(err)
	}

	if err := s.users.UpdatePassword(ctx, token.UserID, string(hashedPassword)); err != nil {
		return errors.DatabaseError("Failed to update password").WithError(err)
	}

	if err := s.tokens.MarkUsed(ctx, token.ID); err != nil {
		return errors.DatabaseError("Failed to consume reset token").WithError(err)
	}

	return nil
}
