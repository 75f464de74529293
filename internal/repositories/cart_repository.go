package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
)

type CartRepository interface {
	GetCartByUserID(ctx context.Context, userID int64) (*models.Cart, error)
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetItem(ctx context.Context, itemID int64) (*models.CartItem, error)
	GetItemByProduct(ctx context.Context, cartID, productID int64) (*models.CartItem, error)
	InsertItem(ctx context.Context, item *models.CartItem) error
	UpdateItem(ctx context.Context, item *models.CartItem) error
	DeleteItem(ctx context.Context, itemID int64) error
	DeleteItemsByCart(ctx context.Context, cartID int64) error
	ListItems(ctx context.Context, cartID int64) ([]models.CartItem, error)
	UpdateTotal(ctx context.Context, cartID int64, total float64) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) GetCartByUserID(ctx context.Context, userID int64) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cart := &models.Cart{}

	query := `
		SELECT id, user_id, total_amount, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, userID).
		Scan(&cart.ID, &cart.UserID, &cart.TotalAmount, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO carts (user_id, total_amount)
		VALUES ($1, 0)
		RETURNING id, total_amount, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, cart.UserID).
		Scan(&cart.ID, &cart.TotalAmount, &cart.CreatedAt, &cart.UpdatedAt)
}

func (r *cartRepository) GetItem(ctx context.Context, itemID int64) (*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	item := &models.CartItem{}

	query := `
		SELECT id, cart_id, product_id, quantity, unit_price, total_price, created_at, updated_at
		FROM cart_items
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, itemID).
		Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return item, nil
}

func (r *cartRepository) GetItemByProduct(ctx context.Context, cartID, productID int64) (*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	item := &models.CartItem{}

	query := `
		SELECT id, cart_id, product_id, quantity, unit_price, total_price, created_at, updated_at
		FROM cart_items
		WHERE cart_id = $1 AND product_id = $2
	`

	err := r.DB.QueryRowContext(dbCtx, query, cartID, productID).
		Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return item, nil
}

func (r *cartRepository) InsertItem(ctx context.Context, item *models.CartItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, item.CartID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *cartRepository) UpdateItem(ctx context.Context, item *models.CartItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE cart_items SET quantity = $1, total_price = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, item.Quantity, item.TotalPrice, item.ID).Scan(&item.UpdatedAt)
}

func (r *cartRepository) DeleteItem(ctx context.Context, itemID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
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

func (r *cartRepository) DeleteItemsByCart(ctx context.Context, cartID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	if err != nil {
		return fmt.Errorf("failed to clear cart items: %w", err)
	}

	return nil
}

func (r *cartRepository) ListItems(ctx context.Context, cartID int64) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.unit_price, ci.total_price, ci.created_at, ci.updated_at, p.name
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at
	`

	rows, err := r.DB.QueryContext(dbCtx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	defer rows.Close()

	var items []models.CartItem

	for rows.Next() {
		var item models.CartItem

		err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.CreatedAt, &item.UpdatedAt, &item.ProductName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepository) UpdateTotal(ctx context.Context, cartID int64, total float64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE carts SET total_amount = $1, updated_at = NOW() WHERE id = $2`, total, cartID)
	if err != nil {
		return fmt.Errorf("failed to update the cart: %w", err)
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
