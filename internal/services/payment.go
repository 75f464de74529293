package service

import (
	"context"
	"math"

	apperrors "github.com/aurumlabs/gold-commerce-platform/internal/errors"
	models "github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/aurumlabs/gold-commerce-platform/pkg/stripe"
)

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, userID int64, isAdmin bool, req *models.CreatePaymentIntentRequest) (*models.PaymentIntentResponse, error)
	ProcessWebhook(ctx context.Context, payload []byte, signature string) error
	Refund(ctx context.Context, req *models.RefundRequest) (*models.RefundResponse, error)
}

type paymentService struct {
	orders       OrderService
	stripeClient stripe.Client
	currency     string
}

func NewPaymentService(orders OrderService, stripeClient stripe.Client, currency string) PaymentService {
	return &paymentService{orders: orders, stripeClient: stripeClient, currency: currency}
}

// minorUnits converts a rupee amount to paise for Stripe.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, userID int64, isAdmin bool, req *models.CreatePaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	order, err := s.orders.GetOrder(ctx, userID, isAdmin, req.OrderID)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus != models.PaymentStatusPending {
		return nil, apperrors.BadRequestError("Order is not awaiting payment")
	}

	intent, err := s.stripeClient.CreatePaymentIntent(minorUnits(order.TotalAmount), s.currency, "Order "+order.OrderID, order.OrderID)
	if err != nil {
		return nil, apperrors.ThirdPartyError("Failed to create payment intent").WithError(err)
	}

	return &models.PaymentIntentResponse{
		OrderID:       order.OrderID,
		PaymentIntent: intent.ID,
		ClientSecret:  intent.ClientSecret,
		Amount:        order.TotalAmount,
		Currency:      s.currency,
	}, nil
}

func (s *paymentService) ProcessWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.stripeClient.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return apperrors.ThirdPartyError("Webhook signature verification failed").WithError(err)
	}

	switch event.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed":
	default:
		return nil
	}

	object := event.Data.Object

	intentID, _ := object["id"].(string)

	orderCode := ""
	if metadata, ok := object["metadata"].(map[string]any); ok {
		orderCode, _ = metadata["order_code"].(string)
	}

	if orderCode == "" || intentID == "" {
		return apperrors.BadRequestError("Webhook payload is missing the order reference")
	}

	status := models.PaymentStatusPaid
	if event.Type == "payment_intent.payment_failed" {
		status = models.PaymentStatusFailed
	}

	_, err = s.orders.UpdatePaymentStatus(ctx, orderCode, &models.UpdatePaymentStatusRequest{
		PaymentStatus: status,
		TransactionID: intentID,
	})

	return err
}

func (s *paymentService) Refund(ctx context.Context, req *models.RefundRequest) (*models.RefundResponse, error) {
	// Refunds run with admin scope; the handler gates access.
	order, err := s.orders.GetOrder(ctx, 0, true, req.OrderID)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus != models.PaymentStatusPaid {
		return nil, apperrors.BadRequestError("Order has no captured payment to refund")
	}

	if order.PaymentTransactionID == "" {
		return nil, apperrors.BadRequestError("Order has no payment transaction recorded")
	}

	refund, err := s.stripeClient.RefundPayment(order.PaymentTransactionID, minorUnits(order.TotalAmount))
	if err != nil {
		return nil, apperrors.ThirdPartyError("Failed to refund payment").WithError(err)
	}

	if _, err := s.orders.UpdatePaymentStatus(ctx, order.OrderID, &models.UpdatePaymentStatusRequest{
		PaymentStatus: models.PaymentStatusRefunded,
	}); err != nil {
		return nil, err
	}

	return &models.RefundResponse{
		OrderID:  order.OrderID,
		RefundID: refund.ID,
		Status:   string(refund.Status),
	}, nil
}
