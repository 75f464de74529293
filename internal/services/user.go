package service

import (
	"context"
	"time"

	"github.com/aurumlabs/gold-commerce-platform/internal/errors"
	models "github.com/aurumlabs/gold-commerce-platform/internal/models"
	repository "github.com/aurumlabs/gold-commerce-platform/internal/repositories"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *models.SignUpRequest) (*models.User, error)
	Login(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, id int64, req *models.UpdateProfileRequest) (*models.User, error)
}

type userService struct {
	repo        repository.UserRepository
	rateLimiter repository.RateLimitRepository
	jwtKey      []byte
	tokenExpiry time.Duration
}

func NewUserService(repo repository.UserRepository, rateLimiter repository.RateLimitRepository, jwtKey []byte, tokenExpiry time.Duration) UserService {
	return &userService{
		repo:        repo,
		rateLimiter: rateLimiter,
		jwtKey:      jwtKey,
		tokenExpiry: tokenExpiry,
	}
}

func (s *userService) Register(ctx context.Context, req *models.SignUpRequest) (*models.User, error) {
	existingUser, _ := s.repo.GetUserByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, errors.DuplicateEntryError("Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: utils.Sanitize(req.FullName),
		MobileNo: req.MobileNo,
		Role:     models.RoleUser,
		IsActive: true,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("Email already registered")
		}

		return nil, errors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, error) {
	allowed, _, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, req.Email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.AuthResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	// A missing user and a wrong password produce the same response.
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil || !user.IsActive || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return &models.AuthResponse{
			Success: false,
			Message: "Invalid email or password",
		}, nil
	}

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.AuthResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(time.Until(claims.ExpiresAt.Time).Seconds()),
		User:      user,
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("User not found").WithError(err)
	}

	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id int64, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("User not found").WithError(err)
	}

	if req.FullName != nil {
		user.FullName = utils.Sanitize(*req.FullName)
	}

	if req.MobileNo != nil {
		user.MobileNo = *req.MobileNo
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, errors.DatabaseError("Failed to update profile").WithError(err)
	}

	return user, nil
}
