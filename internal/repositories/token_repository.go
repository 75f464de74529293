package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
)

type TokenRepository interface {
	CreateToken(ctx context.Context, token *models.PasswordResetToken) error
	// GetValidToken returns the token only when it is unused and unexpired.
	GetValidToken(ctx context.Context, token string) (*models.PasswordResetToken, error)
	MarkUsed(ctx context.Context, tokenID int64) error
	InvalidateForUser(ctx context.Context, userID int64) error
	LatestForUser(ctx context.Context, userID int64) (*models.PasswordResetToken, error)
}

type tokenRepository struct {
	DB *sql.DB
}

func NewTokenRepo(db *sql.DB) TokenRepository {
	return &tokenRepository{DB: db}
}

func (r *tokenRepository) CreateToken(ctx context.Context, token *models.PasswordResetToken) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO password_reset_tokens (token, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(dbCtx, query, token.Token, token.UserID, token.ExpiresAt).
		Scan(&token.ID, &token.CreatedAt)
}

func (r *tokenRepository) GetValidToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result := &models.PasswordResetToken{}

	query := `
		SELECT id, token, user_id, expires_at, used, created_at
		FROM password_reset_tokens
		WHERE token = $1 AND NOT used AND expires_at > NOW()
	`

	err := r.DB.QueryRowContext(dbCtx, query, token).
		Scan(&result.ID, &result.Token, &result.UserID, &result.ExpiresAt, &result.Used, &result.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return result, nil
}

func (r *tokenRepository) MarkUsed(ctx context.Context, tokenID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE password_reset_tokens SET used = TRUE WHERE id = $1`, tokenID)
	if err != nil {
		return fmt.Errorf("failed to mark token used: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *tokenRepository) InvalidateForUser(ctx context.Context, userID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx,
		`UPDATE password_reset_tokens SET used = TRUE WHERE user_id = $1 AND NOT used`, userID)
	if err != nil {
		return fmt.Errorf("failed to invalidate tokens: %w", err)
	}

	return nil
}

func (r *tokenRepository) LatestForUser(ctx context.Context, userID int64) (*models.PasswordResetToken, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result := &models.PasswordResetToken{}

	query := `
		SELECT id, token, user_id, expires_at, used, created_at
		FROM password_reset_tokens
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	err := r.DB.QueryRowContext(dbCtx, query, userID).
		Scan(&result.ID, &result.Token, &result.UserID, &result.ExpiresAt, &result.Used, &result.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return result, nil
}
