package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// orderTransitions is the legal order-status graph. CANCELLED and REFUNDED are
// reachable from every pre-terminal state.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded},
}

func CanTransitionOrder(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {PaymentStatusPaid, PaymentStatusFailed},
	PaymentStatusPaid:    {PaymentStatusRefunded},
}

func CanTransitionPayment(from, to PaymentStatus) bool {
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// OrderItem is an immutable price-frozen copy of a cart line. It references
// the product by id only, never the cart item it came from.
type OrderItem struct {
	ID          int64     `json:"id"`
	OrderID     int64     `json:"-"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
}

type Order struct {
	ID                   int64         `json:"-"`
	OrderID              string        `json:"order_id"` // human-readable code, e.g. ORD-1A2B3C4D
	UserID               int64         `json:"user_id"`
	Items                []OrderItem   `json:"items"`
	Subtotal             float64       `json:"subtotal"`
	DiscountAmount       float64       `json:"discount_amount"`
	TaxAmount            float64       `json:"tax_amount"`
	ShippingAmount       float64       `json:"shipping_amount"`
	TotalAmount          float64       `json:"total_amount"`
	Status               OrderStatus   `json:"status"`
	PaymentStatus        PaymentStatus `json:"payment_status"`
	PaymentMethod        string        `json:"payment_method"`
	PaymentTransactionID string        `json:"payment_transaction_id,omitempty"`
	ShippingAddress      string        `json:"shipping_address"`
	CouponCode           string        `json:"coupon_code,omitempty"`
	OrderNotes           string        `json:"order_notes,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

type CreateOrderRequest struct {
	ShippingAddress string `json:"shipping_address" validate:"required"`
	PaymentMethod   string `json:"payment_method" validate:"required"`
	CouponCode      string `json:"coupon_code,omitempty"`
	OrderNotes      string `json:"order_notes,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=PENDING CONFIRMED PROCESSING SHIPPED DELIVERED CANCELLED REFUNDED"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus PaymentStatus `json:"payment_status" validate:"required,oneof=PENDING PAID FAILED REFUNDED"`
	TransactionID string        `json:"transaction_id,omitempty"`
}

type ValidateCouponRequest struct {
	CouponCode  string  `json:"coupon_code" validate:"required"`
	OrderAmount float64 `json:"order_amount" validate:"required,gt=0"`
}

type ValidateCouponResponse struct {
	Valid          bool    `json:"valid"`
	DiscountAmount float64 `json:"discount_amount"`
	Message        string  `json:"message,omitempty"`
}

type OrderListResponse struct {
	Orders []*Order `json:"orders"`
	Total  int      `json:"total"`
	Page   int      `json:"page"`
	Size   int      `json:"size"`
}
