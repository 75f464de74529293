package models

type CreatePaymentIntentRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

type PaymentIntentResponse struct {
	OrderID       string  `json:"order_id"`
	PaymentIntent string  `json:"payment_intent_id"`
	ClientSecret  string  `json:"client_secret"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

type RefundRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

type RefundResponse struct {
	OrderID  string `json:"order_id"`
	RefundID string `json:"refund_id"`
	Status   string `json:"status"`
}
