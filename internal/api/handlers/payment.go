package handlers

import (
	"io"
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

type PaymentHandler struct {
	paymentService service.PaymentService
	validator      *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validator: validator.New()}
}

// CreatePaymentIntent godoc
//	@Summary		Create a payment intent
//	@Description	Creates a Stripe payment intent for one of the user's pending orders and returns the client secret.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			payment	body		models.CreatePaymentIntentRequest	true	"Order to pay for"
//	@Success		200		{object}	models.PaymentIntentResponse		"Payment intent created"
//	@Failure		400		{object}	response.ErrorResponse				"Validation error or order not payable"
//	@Failure		401		{object}	response.ErrorResponse				"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse				"Order not found"
//	@Failure		500		{object}	response.ErrorResponse				"Internal server error"
//	@Security		BearerAuth
//	@Router			/payments/intent [post]
func (h *PaymentHandler) CreatePaymentIntent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized payment attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreatePaymentIntentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid payment intent input")
			return
		}

		isAdmin := claims.Role == models.RoleAdmin

		intent, err := h.paymentService.CreatePaymentIntent(r.Context(), claims.UserID, isAdmin, &req)
		if err != nil {
			logger.Error("Failed to create payment intent",
				slog.Int64("userID", claims.UserID),
				slog.String("orderCode", req.OrderID),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Payment intent created",
			slog.String("orderCode", req.OrderID),
			slog.String("paymentIntent", intent.PaymentIntent))
		response.Success(w, http.StatusOK, intent)
	}
}

// HandleStripeWebhook godoc
//	@Summary		Stripe webhook
//	@Description	Receives payment events from Stripe. The signature is verified before any order state changes.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	map[string]bool			"Event processed"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid payload or signature"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/payments/webhook [post]
func (h *PaymentHandler) HandleStripeWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("Error reading webhook body", slog.Any("error", err))
			response.Error(w, errors.BadRequestError("Failed to read request body"))
			return
		}

		signature := r.Header.Get("Stripe-Signature")
		if signature == "" {
			logger.Warn("Missing Stripe signature")
			response.Error(w, errors.BadRequestError("Stripe signature is required"))
			return
		}

		if err := h.paymentService.ProcessWebhook(r.Context(), payload, signature); err != nil {
			logger.Error("Failed to process payment webhook", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Payment webhook processed")
		response.Success(w, http.StatusOK, map[string]bool{"received": true})
	}
}

// Refund godoc
//	@Summary		Refund an order (Admin)
//	@Description	Refunds the captured payment for an order through Stripe and marks the order refunded.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			refund	body		models.RefundRequest	true	"Order to refund"
//	@Success		200		{object}	models.RefundResponse	"Refund issued"
//	@Failure		400		{object}	response.ErrorResponse	"Order has no captured payment"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse	"Admin access required"
//	@Failure		404		{object}	response.ErrorResponse	"Order not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/admin/payments/refund [post]
func (h *PaymentHandler) Refund() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RefundRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid refund input")
			return
		}

		refund, err := h.paymentService.Refund(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to refund order", slog.String("orderCode", req.OrderID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order refunded", slog.String("orderCode", req.OrderID), slog.String("refundID", refund.RefundID))
		response.Success(w, http.StatusOK, refund)
	}
}
