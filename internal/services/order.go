package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aurumlabs/gold-commerce-platform/internal/api/middleware"
	"github.com/aurumlabs/gold-commerce-platform/internal/cache"
	"github.com/aurumlabs/gold-commerce-platform/internal/coupon"
	apperrors "github.com/aurumlabs/gold-commerce-platform/internal/errors"
	"github.com/aurumlabs/gold-commerce-platform/internal/metrics"
	models "github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/internal/pricing"
	repository "github.com/aurumlabs/gold-commerce-platform/internal/repositories"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
	"github.com/aurumlabs/gold-commerce-platform/pkg/events"
	"github.com/aurumlabs/gold-commerce-platform/pkg/sendgrid"
	"github.com/google/uuid"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID int64, email string, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, userID int64, isAdmin bool, orderCode string) (*models.Order, error)
	ListOrders(ctx context.Context, userID int64, page, size int) (*models.OrderListResponse, error)
	UpdateOrderStatus(ctx context.Context, orderCode string, req *models.UpdateOrderStatusRequest) (*models.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderCode string, req *models.UpdatePaymentStatusRequest) (*models.Order, error)
	ValidateCoupon(ctx context.Context, req *models.ValidateCouponRequest) (*models.ValidateCouponResponse, error)
}

type orderService struct {
	orders    repository.OrderRepository
	carts     repository.CartRepository
	products  repository.ProductRepository
	coupons   repository.CouponRepository
	cart      CartService
	email     sendgrid.EmailService
	publisher *events.Publisher
	cache     cache.Cache
}

func NewOrderService(
	orders repository.OrderRepository,
	carts repository.CartRepository,
	products repository.ProductRepository,
	coupons repository.CouponRepository,
	cart CartService,
	email sendgrid.EmailService,
	publisher *events.Publisher,
	productCache cache.Cache,
) OrderService {
	return &orderService{
		orders:    orders,
		carts:     carts,
		products:  products,
		coupons:   coupons,
		cart:      cart,
		email:     email,
		publisher: publisher,
		cache:     productCache,
	}
}

// newOrderCode builds a human-readable order code such as ORD-1A2B3C4D. The
// unique constraint on orders.order_id backstops the tiny collision chance.
func newOrderCode() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *orderService) CreateOrder(ctx context.Context, userID int64, email string, req *models.CreateOrderRequest) (*models.Order, error) {
	logger := middleware.LoggerFromContext(ctx)

	cart, err := s.cart.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, apperrors.EmptyCartError("Cart is empty")
	}

	// Pre-checks read current stock for a friendly error; the guarded
	// decrement inside the transaction is what actually prevents overselling.
	var subtotal float64

	items := make([]models.OrderItem, 0, len(cart.Items))

	for _, line := range cart.Items {
		product, err := s.products.GetProductByID(ctx, line.ProductID)
		if err != nil {
			return nil, apperrors.NotFoundError("Product no longer exists").WithError(err)
		}

		if !product.IsActive {
			return nil, apperrors.BadRequestError("Product " + product.Name + " is no longer available")
		}

		if line.Quantity > product.StockQuantity {
			return nil, apperrors.InsufficientStockError("Insufficient stock for " + product.Name)
		}

		subtotal += line.TotalPrice

		items = append(items, models.OrderItem{
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
		})
	}

	subtotal = pricing.Round2(subtotal)

	var discount float64

	couponCode := strings.ToUpper(strings.TrimSpace(req.CouponCode))
	if couponCode != "" {
		c, err := s.coupons.GetCouponByCode(ctx, couponCode)
		if err != nil {
			return nil, apperrors.InvalidCouponError("Coupon not found")
		}

		if err := coupon.Validate(c, subtotal, time.Now()); err != nil {
			return nil, apperrors.InvalidCouponError(err.Error())
		}

		discount = coupon.ComputeDiscount(c, subtotal)
	}

	totals := pricing.OrderTotals(subtotal, discount)

	order := &models.Order{
		OrderID:         newOrderCode(),
		UserID:          userID,
		Items:           items,
		Subtotal:        totals.Subtotal,
		DiscountAmount:  totals.DiscountAmount,
		TaxAmount:       totals.TaxAmount,
		ShippingAmount:  totals.ShippingAmount,
		TotalAmount:     totals.TotalAmount,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: utils.Sanitize(req.ShippingAddress),
		CouponCode:      couponCode,
		OrderNotes:      utils.Sanitize(req.OrderNotes),
	}

	err = s.orders.CreateOrder(ctx, order, cart.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			return nil, apperrors.InsufficientStockError("Insufficient stock for one or more items")
		case errors.Is(err, repository.ErrCouponExhausted):
			return nil, apperrors.InvalidCouponError("Coupon usage limit reached")
		case repository.IsUniqueViolation(err):
			return nil, apperrors.DuplicateEntryError("Order code collision, please retry")
		default:
			return nil, apperrors.DatabaseError("Failed to create order").WithError(err)
		}
	}

	metrics.OrderPlaced()

	// The transaction just changed stock levels, so cached product entries
	// are stale until evicted.
	if s.cache != nil {
		for _, item := range order.Items {
			key := cache.Key(cache.ProductKeyPrefix, fmt.Sprintf("%d", item.ProductID))
			if err := s.cache.Delete(ctx, key); err != nil {
				logger.Warn("Failed to invalidate product cache", slog.String("key", key), slog.Any("error", err))
			}
		}
	}

	// Confirmation email and the order.created event are best effort; the
	// order stands either way.
	if email != "" && s.email != nil {
		if err := s.email.SendOrderConfirmation(ctx, email, order); err != nil {
			logger.Warn("Failed to send order confirmation email", slog.Any("error", err))
		}
	}

	if err := s.publisher.Publish(ctx, events.OrderCreated, order); err != nil {
		logger.Warn("Failed to publish order created event", slog.Any("error", err))
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID int64, isAdmin bool, orderCode string) (*models.Order, error) {
	order, err := s.orders.GetOrderByCode(ctx, orderCode)
	if err != nil {
		return nil, apperrors.NotFoundError("Order not found").WithError(err)
	}

	if !isAdmin && order.UserID != userID {
		// Hide the order's existence from other users.
		return nil, apperrors.NotFoundError("Order not found")
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID int64, page, size int) (*models.OrderListResponse, error) {
	orders, total, err := s.orders.ListOrdersByUser(ctx, userID, page, size)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to list orders").WithError(err)
	}

	return &models.OrderListResponse{
		Orders: orders,
		Total:  total,
		Page:   page,
		Size:   size,
	}, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderCode string, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	order, err := s.orders.GetOrderByCode(ctx, orderCode)
	if err != nil {
		return nil, apperrors.NotFoundError("Order not found").WithError(err)
	}

	if !models.CanTransitionOrder(order.Status, req.Status) {
		return nil, apperrors.BadRequestError("Cannot transition order from " + string(order.Status) + " to " + string(req.Status))
	}

	if err := s.orders.UpdateOrderStatus(ctx, orderCode, req.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, apperrors.DatabaseError("Failed to update order status").WithError(err)
	}

	order.Status = req.Status

	if err := s.publisher.Publish(ctx, events.OrderStatusChanged, order); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to publish order status event", slog.Any("error", err))
	}

	return order, nil
}

func (s *orderService) UpdatePaymentStatus(ctx context.Context, orderCode string, req *models.UpdatePaymentStatusRequest) (*models.Order, error) {
	order, err := s.orders.GetOrderByCode(ctx, orderCode)
	if err != nil {
		return nil, apperrors.NotFoundError("Order not found").WithError(err)
	}

	if !models.CanTransitionPayment(order.PaymentStatus, req.PaymentStatus) {
		return nil, apperrors.BadRequestError("Cannot transition payment from " + string(order.PaymentStatus) + " to " + string(req.PaymentStatus))
	}

	if err := s.orders.UpdatePaymentStatus(ctx, orderCode, req.PaymentStatus, req.TransactionID); err != nil {
		return nil, apperrors.DatabaseError("Failed to update payment status").WithError(err)
	}

	order.PaymentStatus = req.PaymentStatus
	if req.TransactionID != "" {
		order.PaymentTransactionID = req.TransactionID
	}

	// A successful payment confirms a pending order automatically.
	if req.PaymentStatus == models.PaymentStatusPaid && order.Status == models.OrderStatusPending {
		if err := s.orders.UpdateOrderStatus(ctx, orderCode, models.OrderStatusConfirmed); err != nil {
			return nil, apperrors.DatabaseError("Failed to confirm order").WithError(err)
		}

		order.Status = models.OrderStatusConfirmed
	}

	if err := s.publisher.Publish(ctx, events.PaymentCaptured, order); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to publish payment event", slog.Any("error", err))
	}

	return order, nil
}

// ValidateCoupon previews a coupon against an order amount. It never touches
// the usage counter.
func (s *orderService) ValidateCoupon(ctx context.Context, req *models.ValidateCouponRequest) (*models.ValidateCouponResponse, error) {
	c, err := s.coupons.GetCouponByCode(ctx, strings.ToUpper(strings.TrimSpace(req.CouponCode)))
	if err != nil {
		return &models.ValidateCouponResponse{Valid: false, Message: "Coupon not found"}, nil
	}

	if err := coupon.Validate(c, req.OrderAmount, time.Now()); err != nil {
		return &models.ValidateCouponResponse{Valid: false, Message: err.Error()}, nil
	}

	return &models.ValidateCouponResponse{
		Valid:          true,
		DiscountAmount: coupon.ComputeDiscount(c, req.OrderAmount),
	}, nil
}
