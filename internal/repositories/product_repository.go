package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) error
	ListProducts(ctx context.Context, category string, activeOnly bool, page, size int) ([]*models.Product, int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, name, description, base_price, discount_percentage, final_price,
		stock_quantity, weight_in_grams, purity, image_url, category, is_active, is_featured,
		created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	p := &models.Product{}

	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.BasePrice, &p.DiscountPercentage, &p.FinalPrice,
		&p.StockQuantity, &p.WeightInGrams, &p.Purity, &p.ImageURL, &p.Category, &p.IsActive, &p.IsFeatured,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (name, description, base_price, discount_percentage, final_price, stock_quantity, weight_in_grams, purity, image_url, category, is_active, is_featured)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		product.Name, product.Description, product.BasePrice, product.DiscountPercentage, product.FinalPrice,
		product.StockQuantity, product.WeightInGrams, product.Purity, product.ImageURL, product.Category,
		product.IsActive, product.IsFeatured).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET name = $1, description = $2, base_price = $3, discount_percentage = $4,
			final_price = $5, stock_quantity = $6, weight_in_grams = $7, purity = $8, image_url = $9,
			category = $10, is_active = $11, is_featured = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		product.Name, product.Description, product.BasePrice, product.DiscountPercentage, product.FinalPrice,
		product.StockQuantity, product.WeightInGrams, product.Purity, product.ImageURL, product.Category,
		product.IsActive, product.IsFeatured, product.ID).
		Scan(&product.UpdatedAt)
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *productRepository) SetActive(ctx context.Context, id int64, active bool) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE products SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update product status: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updated == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *productRepository) ListProducts(ctx context.Context, category string, activeOnly bool, page, size int) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM products WHERE ($1 = '' OR category = $1) AND (NOT $2 OR is_active)`
	if err := r.DB.QueryRowContext(dbCtx, countQuery, category, activeOnly).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	offset := (page - 1) * size

	query := `SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = '' OR category = $1) AND (NOT $2 OR is_active)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.DB.QueryContext(dbCtx, query, category, activeOnly, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}
