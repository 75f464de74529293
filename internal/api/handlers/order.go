package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aurumlabs/gold-commerce-platform/internal/api/middleware"
	"github.com/aurumlabs/gold-commerce-platform/internal/errors"
	models "github.com/aurumlabs/gold-commerce-platform/internal/models"
	service "github.com/aurumlabs/gold-commerce-platform/internal/services"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// CreateOrder godoc
//	@Summary		Place an order
//	@Description	Creates an order from the user's current cart. Stock is reserved and any coupon redeemed atomically; the cart is cleared on success.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.CreateOrderRequest	true	"Shipping details, payment method and optional coupon"
//	@Success		201		{object}	models.Order				"Successfully created order"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error, empty cart or invalid coupon"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		409		{object}	response.ErrorResponse		"Insufficient stock"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders [post]
func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized order creation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}
		logger = logger.With(slog.Int64("userID", claims.UserID))

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create order input")
			return
		}

		order, err := h.orderService.CreateOrder(r.Context(), claims.UserID, claims.Email, &req)
		if err != nil {
			logger.Error("Failed to create order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order created", slog.String("orderCode", order.OrderID))
		response.Success(w, http.StatusCreated, order)
	}
}

// GetOrder godoc
//	@Summary		Get an order by code
//	@Description	Returns a single order. Buyers only see their own orders; admins can fetch any order.
//	@Tags			Orders
//	@Produce		json
//	@Param			code	path		string					true	"Order code (e.g. ORD-1A2B3C4D)"
//	@Success		200		{object}	models.Order			"Order details"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Order not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders/{code} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized order access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		code := r.PathValue("code")
		if code == "" {
			response.Error(w, errors.BadRequestError("Missing order code in path"))
			return
		}

		isAdmin := claims.Role == models.RoleAdmin

		order, err := h.orderService.GetOrder(r.Context(), claims.UserID, isAdmin, code)
		if err != nil {
			logger.Warn("Failed to get order", slog.String("orderCode", code), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// ListOrders godoc
//	@Summary		List own orders
//	@Description	Returns a paginated list of the authenticated user's orders, newest first.
//	@Tags			Orders
//	@Produce		json
//	@Param			page		query		int							false	"Page number (default: 1)"	minimum(1)
//	@Param			pageSize	query		int							false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.OrderListResponse	"Order listing"
//	@Failure		401			{object}	response.ErrorResponse		"Authentication required"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized order list attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		page, size := utils.Pagination(r)

		list, err := h.orderService.ListOrders(r.Context(), claims.UserID, page, size)
		if err != nil {
			logger.Error("Failed to list orders", slog.Int64("userID", claims.UserID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, list)
	}
}

// UpdateOrderStatus godoc
//	@Summary		Update order status (Admin)
//	@Description	Moves an order through its fulfilment lifecycle. Illegal transitions are rejected.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			code	path		string							true	"Order code"
//	@Param			status	body		models.UpdateOrderStatusRequest	true	"New order status"
//	@Success		200		{object}	models.Order					"Updated order"
//	@Failure		400		{object}	response.ErrorResponse			"Invalid status transition"
//	@Failure		401		{object}	response.ErrorResponse			"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse			"Admin access required"
//	@Failure		404		{object}	response.ErrorResponse			"Order not found"
//	@Failure		500		{object}	response.ErrorResponse			"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/orders/{code}/status [patch]
func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		code := r.PathValue("code")
		if code == "" {
			response.Error(w, errors.BadRequestError("Missing order code in path"))
			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update order status input")
			return
		}

		order, err := h.orderService.UpdateOrderStatus(r.Context(), code, &req)
		if err != nil {
			logger.Error("Failed to update order status",
				slog.String("orderCode", code),
				slog.String("newStatus", string(req.Status)),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order status updated", slog.String("orderCode", code), slog.String("status", string(req.Status)))
		response.Success(w, http.StatusOK, order)
	}
}

// UpdatePaymentStatus godoc
//	@Summary		Update payment status (Admin)
//	@Description	Records a payment outcome against an order. A successful payment on a pending order confirms it.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			code	path		string								true	"Order code"
//	@Param			status	body		models.UpdatePaymentStatusRequest	true	"New payment status and optional transaction ID"
//	@Success		200		{object}	models.Order						"Updated order"
//	@Failure		400		{object}	response.ErrorResponse				"Invalid payment transition"
//	@Failure		401		{object}	response.ErrorResponse				"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse				"Admin access required"
//	@Failure		404		{object}	response.ErrorResponse				"Order not found"
//	@Failure		500		{object}	response.ErrorResponse				"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/orders/{code}/payment-status [patch]
func (h *OrderHandler) UpdatePaymentStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		code := r.PathValue("code")
		if code == "" {
			response.Error(w, errors.BadRequestError("Missing order code in path"))
			return
		}

		var req models.UpdatePaymentStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update payment status input")
			return
		}

		order, err := h.orderService.UpdatePaymentStatus(r.Context(), code, &req)
		if err != nil {
			logger.Error("Failed to update payment status",
				slog.String("orderCode", code),
				slog.String("newStatus", string(req.PaymentStatus)),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Payment status updated", slog.String("orderCode", code), slog.String("status", string(req.PaymentStatus)))
		response.Success(w, http.StatusOK, order)
	}
}

// ValidateCoupon godoc
//	@Summary		Preview a coupon
//	@Description	Checks a coupon against an order amount and returns the discount it would apply. Does not consume the coupon.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.ValidateCouponRequest	true	"Coupon code and order amount"
//	@Success		200		{object}	models.ValidateCouponResponse	"Validation result"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		401		{object}	response.ErrorResponse			"Authentication required"
//	@Failure		500		{object}	response.ErrorResponse			"Internal server error"
//	@Security		BearerAuth
//	@Router			/coupons/validate [post]
func (h *OrderHandler) ValidateCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ValidateCouponRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid coupon validation input")
			return
		}

		result, err := h.orderService.ValidateCoupon(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to validate coupon", slog.String("couponCode", req.CouponCode), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, result)
	}
}
