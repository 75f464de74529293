package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	apperrors "github.com/aurumlabs/gold-commerce-platform/internal/errors"
	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	service "github.com/aurumlabs/gold-commerce-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeTokenRepo struct {
	tokens []*models.PasswordResetToken
	nextID int64
}

func (f *fakeTokenRepo) CreateToken(_ context.Context, token *models.PasswordResetToken) error {
	f.nextID++
	token.ID = f.nextID
	token.CreatedAt = time.Now()
	f.tokens = append(f.tokens, token)

	return nil
}

func (f *fakeTokenRepo) GetValidToken(_ context.Context, raw string) (*models.PasswordResetToken, error) {
	for _, token := range f.tokens {
		if token.Token == raw && !token.Used && token.ExpiresAt.After(time.Now()) {
			return token, nil
		}
	}

	return nil, sql.ErrNoRows
}

func (f *fakeTokenRepo) MarkUsed(_ context.Context, tokenID int64) error {
	for _, token := range f.tokens {
		if token.ID == tokenID {
			token.Used = true

			return nil
		}
	}

	return sql.ErrNoRows
}

func (f *fakeTokenRepo) InvalidateForUser(_ context.Context, userID int64) error {
	for _, token := range f.tokens {
		if token.UserID == userID {
			token.Used = true
		}
	}

	return nil
}

func (f *fakeTokenRepo) LatestForUser(_ context.Context, userID int64) (*models.PasswordResetToken, error) {
	for i := len(f.tokens) - 1; i >= 0; i-- {
		if f.tokens[i].UserID == userID {
			return f.tokens[i], nil
		}
	}

	return nil, sql.ErrNoRows
}

type fakeEmailService struct {
	resetLinks []string
	resetTos   []string
	sendErr    error
}

func (f *fakeEmailService) SendPasswordReset(_ context.Context, to string, resetLink string) error {
	if f.sendErr != nil {
		return f.sendErr
	}

	f.resetTos = append(f.resetTos, to)
	f.resetLinks = append(f.resetLinks, resetLink)

	return nil
}

func (f *fakeEmailService) SendOrderConfirmation(_ context.Context, _ string, _ *models.Order) error {
	return nil
}

func setupResetServiceTest(t *testing.T) (service.PasswordResetService, service.UserService, *fakeUserRepo, *fakeTokenRepo, *fakeEmailService) {
	t.Helper()

	users := newFakeUserRepo()
	tokens := &fakeTokenRepo{}
	email := &fakeEmailService{}
	userService := service.NewUserService(users, &fakeRateLimiter{allowed: true}, []byte("test-secret-key-123456789012345"), 24*time.Hour)
	resetService := service.NewPasswordResetService(users, tokens, email, "https://shop.example.com/reset-password")

	return resetService, userService, users, tokens, email
}

func TestRequestReset(t *testing.T) {
	t.Run("Known Email Issues Token And Sends Mail", func(t *testing.T) {
		resetService, userService, _, tokens, email := setupResetServiceTest(t)
		user := registerTestUser(t, userService)

		err := resetService.RequestReset(context.Background(), &models.ForgotPasswordRequest{Email: user.Email})

		require.NoError(t, err)
		require.Len(t, tokens.tokens, 1)
		assert.Equal(t, user.ID, tokens.tokens[0].UserID)
		assert.False(t, tokens.tokens[0].Used)
		require.Len(t, email.resetLinks, 1)
		assert.Contains(t, email.resetLinks[0], tokens.tokens[0].Token)
		assert.Equal(t, user.Email, email.resetTos[0])
	})

	t.Run("Unknown Email Succeeds Silently", func(t *testing.T) {
		resetService, _, _, tokens, email := setupResetServiceTest(t)

		err := resetService.RequestReset(context.Background(), &models.ForgotPasswordRequest{Email: "nobody@example.com"})

		require.NoError(t, err)
		assert.Empty(t, tokens.tokens)
		assert.Empty(t, email.resetLinks)
	})

	t.Run("New Request Supersedes Old Token", func(t *testing.T) {
		resetService, userService, _, tokens, _ := setupResetServiceTest(t)
		user := registerTestUser(t, userService)
		ctx := context.Background()

		require.NoError(t, resetService.RequestReset(ctx, &models.ForgotPasswordRequest{Email: user.Email}))
		tokens.tokens[0].CreatedAt = time.Now().Add(-10 * time.Minute)
		require.NoError(t, resetService.RequestReset(ctx, &models.ForgotPasswordRequest{Email: user.Email}))

		require.Len(t, tokens.tokens, 2)
		assert.True(t, tokens.tokens[0].Used, "the first token should be invalidated")
		assert.False(t, tokens.tokens[1].Used)
	})

	t.Run("Mail Failure Keeps The Constant Response", func(t *testing.T) {
		resetService, userService, _, tokens, email := setupResetServiceTest(t)
		user := registerTestUser(t, userService)
		email.sendErr = errors.New("smtp relay down")
		ctx := context.Background()

		knownErr := resetService.RequestReset(ctx, &models.ForgotPasswordRequest{Email: user.Email})
		unknownErr := resetService.RequestReset(ctx, &models.ForgotPasswordRequest{Email: "nobody@example.com"})

		assert.NoError(t, knownErr, "a mail outage must not reveal that the account exists")
		assert.NoError(t, unknownErr)
		assert.Len(t, tokens.tokens, 1, "the token is still issued for a later retry")
	})

	t.Run("Re-Request Within Resend Window Is Dropped", func(t *testing.T) {
		resetService, userService, _, tokens, email := setupResetServiceTest(t)
		user := registerTestUser(t, userService)
		ctx := context.Background()

		require.NoError(t, resetService.RequestReset(ctx, &models.ForgotPasswordRequest{Email: user.Email}))
		err := resetService.RequestReset(ctx, &models.ForgotPasswordRequest{Email: user.Email})

		require.NoError(t, err, "the throttle must look like success from the outside")
		assert.Len(t, tokens.tokens, 1)
		assert.False(t, tokens.tokens[0].Used)
		assert.Len(t, email.resetLinks, 1)
	})
}

func TestVerifyResetToken(t *testing.T) {
	resetService, userService, _, tokens, _ := setupResetServiceTest(t)
	user := registerTestUser(t, userService)
	ctx := context.Background()

	require.NoError(t, resetService.RequestReset(ctx, &models.ForgotPasswordRequest{Email: user.Email}))

	assert.NoError(t, resetService.VerifyResetToken(ctx, tokens.tokens[0].Token))
	assert.Error(t, resetService.VerifyResetToken(ctx, "no-such-token"))

	tokens.tokens[0].ExpiresAt = time.Now().Add(-time.Minute)
	assert.Error(t, resetService.VerifyResetToken(ctx, tokens.tokens[0].Token))
}

func TestResetPassword(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		resetService, userService, users, tokens, _ := setupResetServiceTest(t)
		user := registerTestUser(t, userService)
		ctx := context.Background()

		require.NoError(t, resetService.RequestReset(ctx, &models.ForgotPasswordRequest{Email: user.Email}))

		err := resetService.ResetPassword(ctx, &models.ResetPasswordRequest{
			Token:       tokens.tokens[0].Token,
			NewPassword: "brandnew456",
		})

		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.byID[user.ID].Password), []byte("brandnew456")))
		assert.True(t, tokens.tokens[0].Used, "a consumed token cannot be replayed")
	})

	t.Run("Invalid Token", func(t *testing.T) {
		resetService, _, _, _, _ := setupResetServiceTest(t)

		err := resetService.ResetPassword(context.Background(), &models.ResetPasswordRequest{
			Token:       "no-such-token",
			NewPassword: "whatever123",
		})

		require.Error(t, err)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		resetService, userService, _, tokens, _ := setupResetServiceTest(t)
		user := registerTestUser(t, userService)
		ctx := context.Background()

		require.NoError(t, resetService.RequestReset(ctx, &models.ForgotPasswordRequest{Email: user.Email}))
		tokens.tokens[0].ExpiresAt = time.Now().Add(-time.Minute)

		err := resetService.ResetPassword(ctx, &models.ResetPasswordRequest{
			Token:       tokens.tokens[0].Token,
			NewPassword: "whatever123",
		})

		require.Error(t, err)
	})
}
