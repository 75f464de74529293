package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
)

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	// GetAddress scopes the lookup to the owner; another user's address
	// reads as sql.ErrNoRows.
	GetAddress(ctx context.Context, addressID, userID int64) (*models.Address, error)
	GetDefaultAddress(ctx context.Context, userID int64) (*models.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Address, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	UpdateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, addressID int64) error
	// ClearDefault unsets the default flag on all of the user's addresses
	// except exceptID (0 clears every one).
	ClearDefault(ctx context.Context, userID, exceptID int64) error
	SetDefault(ctx context.Context, addressID int64) error
}

type addressRepository struct {
	DB *sql.DB
}

func NewAddressRepo(db *sql.DB) AddressRepository {
	return &addressRepository{DB: db}
}

const addressColumns = `id, user_id, full_name, phone_number, address_line1, address_line2, city, state, pincode, is_default, created_at, updated_at`

func scanAddress(row interface{ Scan(...any) error }) (*models.Address, error) {
	a := &models.Address{}

	err := row.Scan(&a.ID, &a.UserID, &a.FullName, &a.PhoneNumber, &a.AddressLine1, &a.AddressLine2,
		&a.City, &a.State, &a.Pincode, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (r *addressRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO addresses (user_id, full_name, phone_number, address_line1, address_line2, city, state, pincode, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		address.UserID, address.FullName, address.PhoneNumber, address.AddressLine1, address.AddressLine2,
		address.City, address.State, address.Pincode, address.IsDefault).
		Scan(&address.ID, &address.CreatedAt, &address.UpdatedAt)
}

func (r *addressRepository) GetAddress(ctx context.Context, addressID, userID int64) (*models.Address, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1 AND user_id = $2`

	address, err := scanAddress(r.DB.QueryRowContext(dbCtx, query, addressID, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return address, nil
}

func (r *addressRepository) GetDefaultAddress(ctx context.Context, userID int64) (*models.Address, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 AND is_default`

	address, err := scanAddress(r.DB.QueryRowContext(dbCtx, query, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return address, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int64) ([]models.Address, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + addressColumns + `
		FROM addresses
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}
	defer rows.Close()

	addresses := []models.Address{}

	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		addresses = append(addresses, *address)
	}

	return addresses, rows.Err()
}

func (r *addressRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int64

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM addresses WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("querying database: %w", err)
	}

	return count, nil
}

func (r *addressRepository) UpdateAddress(ctx context.Context, address *models.Address) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE addresses
		SET full_name = $1, phone_number = $2, address_line1 = $3, address_line2 = $4,
		    city = $5, state = $6, pincode = $7, is_default = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		address.FullName, address.PhoneNumber, address.AddressLine1, address.AddressLine2,
		address.City, address.State, address.Pincode, address.IsDefault, address.ID).
		Scan(&address.UpdatedAt)
}

func (r *addressRepository) DeleteAddress(ctx context.Context, addressID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM addresses WHERE id = $1`, addressID)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *addressRepository) ClearDefault(ctx context.Context, userID, exceptID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx,
		`UPDATE addresses SET is_default = FALSE WHERE user_id = $1 AND id != $2`, userID, exceptID)
	if err != nil {
		return fmt.Errorf("failed to clear default addresses: %w", err)
	}

	return nil
}

func (r *addressRepository) SetDefault(ctx context.Context, addressID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx,
		`UPDATE addresses SET is_default = TRUE WHERE id = $1`, addressID)
	if err != nil {
		return fmt.Errorf("failed to set default address: %w", err)
	}

	return nil
}
