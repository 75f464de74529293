package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	apperrors "github.com/aurumlabs/gold-commerce-platform/internal/errors"
	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	service "github.com/aurumlabs/gold-commerce-platform/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[int64]*models.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*models.User{}, byID: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user

	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}

	return user, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}

	return user, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user

	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, userID int64, passwordHash string) error {
	user, ok := f.byID[userID]
	if !ok {
		return sql.ErrNoRows
	}

	user.Password = passwordHash

	return nil
}

type fakeRateLimiter struct {
	allowed    bool
	retryAfter int
}

func (f *fakeRateLimiter) CheckLoginRateLimit(_ context.Context, _ string) (bool, int, int, error) {
	return f.allowed, 3, f.retryAfter, nil
}

func setupUserServiceTest(t *testing.T) (service.UserService, *fakeUserRepo, *fakeRateLimiter) {
	t.Helper()

	repo := newFakeUserRepo()
	limiter := &fakeRateLimiter{allowed: true}
	userService := service.NewUserService(repo, limiter, []byte("test-secret-key-123456789012345"), 24*time.Hour)

	return userService, repo, limiter
}

func registerTestUser(t *testing.T, userService service.UserService) *models.User {
	t.Helper()

	user, err := userService.Register(context.Background(), &models.SignUpRequest{
		Email:    "buyer@example.com",
		Password: "secret123",
		FullName: "Asha Buyer",
		MobileNo: "9876543210",
	})
	require.NoError(t, err)

	return user
}

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userService, repo, _ := setupUserServiceTest(t)

		user := registerTestUser(t, userService)

		assert.Equal(t, models.RoleUser, user.Role)
		assert.True(t, user.IsActive)
		assert.NotEqual(t, "secret123", user.Password, "password must be hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
		assert.Contains(t, repo.byEmail, "buyer@example.com")
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		userService, _, _ := setupUserServiceTest(t)
		registerTestUser(t, userService)

		_, err := userService.Register(context.Background(), &models.SignUpRequest{
			Email:    "buyer@example.com",
			Password: "another123",
			FullName: "Other",
		})

		require.Error(t, err)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeDuplicateEntry, appErr.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userService, _, _ := setupUserServiceTest(t)
		registerTestUser(t, userService)

		resp, err := userService.Login(context.Background(), &models.SignInRequest{
			Email:    "buyer@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Token)
		assert.Positive(t, resp.ExpiresIn)

		claims := &models.Claims{}
		_, err = jwt.ParseWithClaims(resp.Token, claims, func(_ *jwt.Token) (any, error) {
			return []byte("test-secret-key-123456789012345"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, "buyer@example.com", claims.Email)
		assert.Equal(t, models.RoleUser, claims.Role)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userService, _, _ := setupUserServiceTest(t)
		registerTestUser(t, userService)

		resp, err := userService.Login(context.Background(), &models.SignInRequest{
			Email:    "buyer@example.com",
			Password: "wrong",
		})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Empty(t, resp.Token)
	})

	t.Run("Unknown Email Matches Wrong Password Response", func(t *testing.T) {
		userService, _, _ := setupUserServiceTest(t)

		resp, err := userService.Login(context.Background(), &models.SignInRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid email or password", resp.Message)
	})

	t.Run("Rate Limited", func(t *testing.T) {
		userService, _, limiter := setupUserServiceTest(t)
		registerTestUser(t, userService)

		limiter.allowed = false
		limiter.retryAfter = 120

		resp, err := userService.Login(context.Background(), &models.SignInRequest{
			Email:    "buyer@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 120, resp.RetryAfter)
	})
}

func TestUpdateProfile(t *testing.T) {
	userService, _, _ := setupUserServiceTest(t)
	user := registerTestUser(t, userService)

	newName := "Asha B"

	updated, err := userService.UpdateProfile(context.Background(), user.ID, &models.UpdateProfileRequest{
		FullName: &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, "Asha B", updated.FullName)
	assert.Equal(t, "9876543210", updated.MobileNo, "untouched fields keep their values")
}
