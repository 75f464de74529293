package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
)

type CouponRepository interface {
	CreateCoupon(ctx context.Context, coupon *models.Coupon) error
	GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error)
	ListCoupons(ctx context.Context) ([]*models.Coupon, error)
}

type couponRepository struct {
	DB *sql.DB
}

func NewCouponRepo(db *sql.DB) CouponRepository {
	return &couponRepository{DB: db}
}

const couponColumns = `id, code, COALESCE(description, ''), discount_type, discount_value, minimum_order_amount,
	maximum_discount_amount, usage_limit, used_count, is_active, valid_from, valid_until, created_at`

func scanCoupon(row interface{ Scan(...any) error }) (*models.Coupon, error) {
	coupon := &models.Coupon{}

	err := row.Scan(&coupon.ID, &coupon.Code, &coupon.Description, &coupon.DiscountType, &coupon.DiscountValue,
		&coupon.MinimumOrderAmount, &coupon.MaximumDiscountAmount, &coupon.UsageLimit, &coupon.UsedCount,
		&coupon.IsActive, &coupon.ValidFrom, &coupon.ValidUntil, &coupon.CreatedAt)
	if err != nil {
		return nil, err
	}

	return coupon, nil
}

func (r *couponRepository) CreateCoupon(ctx context.Context, coupon *models.Coupon) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO coupons (code, description, discount_type, discount_value, minimum_order_amount,
			maximum_discount_amount, usage_limit, is_active, valid_from, valid_until)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, used_count, created_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		coupon.Code, coupon.Description, coupon.DiscountType, coupon.DiscountValue, coupon.MinimumOrderAmount,
		coupon.MaximumDiscountAmount, coupon.UsageLimit, coupon.IsActive, coupon.ValidFrom, coupon.ValidUntil).
		Scan(&coupon.ID, &coupon.UsedCount, &coupon.CreatedAt)
}

func (r *couponRepository) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`

	coupon, err := scanCoupon(r.DB.QueryRowContext(dbCtx, query, code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return coupon, nil
}

func (r *couponRepository) ListCoupons(ctx context.Context) ([]*models.Coupon, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + couponColumns + ` FROM coupons ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}

	defer rows.Close()

	var coupons []*models.Coupon

	for rows.Next() {
		coupon, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan coupon: %w", err)
		}

		coupons = append(coupons, coupon)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return coupons, nil
}
