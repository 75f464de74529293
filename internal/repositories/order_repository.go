package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
)

type OrderRepository interface {
	// CreateOrder persists the order, its items, the stock decrements, the
	// coupon redemption and the cart wipe in a single transaction. It returns
	// ErrInsufficientStock when any product no longer covers the requested
	// quantity and ErrCouponExhausted when the coupon usage limit is hit; in
	// both cases nothing is committed.
	CreateOrder(ctx context.Context, order *models.Order, cartID int64) error
	GetOrderByCode(ctx context.Context, orderCode string) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64, page, size int) ([]*models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, orderCode string, status models.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, orderCode string, status models.PaymentStatus, transactionID string) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order, cartID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	headerQuery := `
		INSERT INTO orders (order_id, user_id, subtotal, discount_amount, tax_amount, shipping_amount, total_amount,
			status, payment_status, payment_method, shipping_address, coupon_code, order_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, headerQuery,
		order.OrderID, order.UserID, order.Subtotal, order.DiscountAmount, order.TaxAmount,
		order.ShippingAmount, order.TotalAmount, order.Status, order.PaymentStatus,
		order.PaymentMethod, order.ShippingAddress, nullString(order.CouponCode), order.OrderNotes).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	// Guarded decrement: the WHERE clause refuses to take stock below zero,
	// so concurrent checkouts cannot oversell.
	stockQuery := `
		UPDATE products SET stock_quantity = stock_quantity - $1, updated_at = NOW()
		WHERE id = $2 AND stock_quantity >= $1
	`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		err = tx.QueryRowContext(dbCtx, itemQuery, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice).
			Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}

		result, err := tx.ExecContext(dbCtx, stockQuery, item.Quantity, item.ProductID)
		if err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}

		if affected == 0 {
			return ErrInsufficientStock
		}
	}

	if order.CouponCode != "" {
		couponQuery := `
			UPDATE coupons SET used_count = used_count + 1, updated_at = NOW()
			WHERE code = $1 AND is_active AND (usage_limit IS NULL OR used_count < usage_limit)
		`

		result, err := tx.ExecContext(dbCtx, couponQuery, order.CouponCode)
		if err != nil {
			return fmt.Errorf("failed to redeem coupon: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}

		if affected == 0 {
			return ErrCouponExhausted
		}
	}

	if _, err := tx.ExecContext(dbCtx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	if _, err := tx.ExecContext(dbCtx, `UPDATE carts SET total_amount = 0, updated_at = NOW() WHERE id = $1`, cartID); err != nil {
		return fmt.Errorf("failed to reset cart total: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

const orderColumns = `id, order_id, user_id, subtotal, discount_amount, tax_amount, shipping_amount, total_amount,
	status, payment_status, payment_method, COALESCE(payment_transaction_id, ''), shipping_address,
	COALESCE(coupon_code, ''), COALESCE(order_notes, ''), created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*models.Order, error) {
	order := &models.Order{}

	err := row.Scan(&order.ID, &order.OrderID, &order.UserID, &order.Subtotal, &order.DiscountAmount,
		&order.TaxAmount, &order.ShippingAmount, &order.TotalAmount, &order.Status, &order.PaymentStatus,
		&order.PaymentMethod, &order.PaymentTransactionID, &order.ShippingAddress, &order.CouponCode,
		&order.OrderNotes, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) GetOrderByCode(ctx context.Context, orderCode string) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, query, orderCode))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	items, err := r.listItems(dbCtx, order.ID)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price, oi.total_price, oi.created_at, p.name
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}

	defer rows.Close()

	var items []models.OrderItem

	for rows.Next() {
		var item models.OrderItem

		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.CreatedAt, &item.ProductName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID int64, page, size int) ([]*models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, userID, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	defer rows.Close()

	var orders []*models.Order

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for _, order := range orders {
		items, err := r.listItems(dbCtx, order.ID)
		if err != nil {
			return nil, 0, err
		}

		order.Items = items
	}

	return orders, total, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, orderCode string, status models.OrderStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE order_id = $2`, status, orderCode)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
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

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, orderCode string, status models.PaymentStatus, transactionID string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`UPDATE orders SET payment_status = $1, payment_transaction_id = COALESCE(NULLIF($2, ''), payment_transaction_id), updated_at = NOW() WHERE order_id = $3`,
		status, transactionID, orderCode)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
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

func nullString(s string) any {
	if s == "" {
		return nil
	}

	return s
}
