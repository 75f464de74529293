package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
)

type RateRepository interface {
	GetAssetByName(ctx context.Context, name string) (*models.Asset, error)
	ListAssets(ctx context.Context) ([]*models.Asset, error)
	GetRateByAssetAndDate(ctx context.Context, assetID int64, date time.Time) (*models.AssetRate, error)
	UpsertRate(ctx context.Context, rate *models.AssetRate) error
	ListRatesSince(ctx context.Context, assetID int64, from time.Time) ([]*models.AssetRate, error)
}

type rateRepository struct {
	DB *sql.DB
}

func NewRateRepo(db *sql.DB) RateRepository {
	return &rateRepository{DB: db}
}

func (r *rateRepository) GetAssetByName(ctx context.Context, name string) (*models.Asset, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	asset := &models.Asset{}

	query := `SELECT id, name, display_name, unit, is_active FROM assets WHERE name = $1`

	err := r.DB.QueryRowContext(dbCtx, query, name).
		Scan(&asset.ID, &asset.Name, &asset.DisplayName, &asset.Unit, &asset.IsActive)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return asset, nil
}

func (r *rateRepository) ListAssets(ctx context.Context) ([]*models.Asset, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT id, name, display_name, unit, is_active FROM assets WHERE is_active ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	defer rows.Close()

	var assets []*models.Asset

	for rows.Next() {
		asset := &models.Asset{}

		err := rows.Scan(&asset.ID, &asset.Name, &asset.DisplayName, &asset.Unit, &asset.IsActive)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}

		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assets, nil
}

func (r *rateRepository) GetRateByAssetAndDate(ctx context.Context, assetID int64, date time.Time) (*models.AssetRate, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rate := &models.AssetRate{}

	query := `
		SELECT ar.id, ar.asset_id, a.name, ar.date, ar.rate_22k, ar.rate_24k, ar.rate_per_unit, ar.created_at, ar.updated_at
		FROM asset_rates ar
		JOIN assets a ON ar.asset_id = a.id
		WHERE ar.asset_id = $1 AND ar.date = $2
	`

	err := r.DB.QueryRowContext(dbCtx, query, assetID, date.Format("2006-01-02")).
		Scan(&rate.ID, &rate.AssetID, &rate.AssetName, &rate.Date, &rate.Rate22K, &rate.Rate24K, &rate.RatePerUnit, &rate.CreatedAt, &rate.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return rate, nil
}

// UpsertRate relies on the unique (asset_id, date) constraint so that a second
// update for the same day overwrites the first.
func (r *rateRepository) UpsertRate(ctx context.Context, rate *models.AssetRate) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO asset_rates (asset_id, date, rate_22k, rate_24k, rate_per_unit)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (asset_id, date)
		DO UPDATE SET rate_22k = EXCLUDED.rate_22k, rate_24k = EXCLUDED.rate_24k,
			rate_per_unit = EXCLUDED.rate_per_unit, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		rate.AssetID, rate.Date.Format("2006-01-02"), rate.Rate22K, rate.Rate24K, rate.RatePerUnit).
		Scan(&rate.ID, &rate.CreatedAt, &rate.UpdatedAt)
}

func (r *rateRepository) ListRatesSince(ctx context.Context, assetID int64, from time.Time) ([]*models.AssetRate, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ar.id, ar.asset_id, a.name, ar.date, ar.rate_22k, ar.rate_24k, ar.rate_per_unit, ar.created_at, ar.updated_at
		FROM asset_rates ar
		JOIN assets a ON ar.asset_id = a.id
		WHERE ar.asset_id = $1 AND ar.date >= $2
		ORDER BY ar.date DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, assetID, from.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}

	defer rows.Close()

	var rates []*models.AssetRate

	for rows.Next() {
		rate := &models.AssetRate{}

		err := rows.Scan(&rate.ID, &rate.AssetID, &rate.AssetName, &rate.Date, &rate.Rate22K, &rate.Rate24K, &rate.RatePerUnit, &rate.CreatedAt, &rate.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rate: %w", err)
		}

		rates = append(rates, rate)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rates, nil
}
