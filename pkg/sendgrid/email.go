package sendgrid

import (
	"context"
	"fmt"

	"github.com/aurumlabs/gold-commerce-platform/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService interface {
	SendPasswordReset(ctx context.Context, to string, resetLink string) error
	SendOrderConfirmation(ctx context.Context, to string, order *models.Order) error
}

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{client: sendgrid.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

func (e *emailService) SendPasswordReset(_ context.Context, to string, resetLink string) error {
	subject := "Reset your password"
	plain := fmt.Sprintf("We received a request to reset your password.\n\nOpen this link to choose a new one: %s\n\nThe link expires in one hour. If you did not request a reset, ignore this email.", resetLink)
	html := fmt.Sprintf(`<p>We received a request to reset your password.</p><p><a href="%s">Choose a new password</a></p><p>The link expires in one hour. If you did not request a reset, ignore this email.</p>`, resetLink)

	return e.send(to, subject, plain, html)
}

func (e *emailService) SendOrderConfirmation(_ context.Context, to string, order *models.Order) error {
	subject := fmt.Sprintf("Order %s confirmed", order.OrderID)
	plain := fmt.Sprintf("Thank you for your order %s.\n\nSubtotal: %.2f\nDiscount: %.2f\nTax: %.2f\nShipping: %.2f\nTotal: %.2f\n\nWe will notify you when it ships.",
		order.OrderID, order.Subtotal, order.DiscountAmount, order.TaxAmount, order.ShippingAmount, order.TotalAmount)
	html := fmt.Sprintf(`<p>Thank you for your order <strong>%s</strong>.</p><table><tr><td>Subtotal</td><td>%.2f</td></tr><tr><td>Discount</td><td>%.2f</td></tr><tr><td>Tax</td><td>%.2f</td></tr><tr><td>Shipping</td><td>%.2f</td></tr><tr><td><strong>Total</strong></td><td><strong>%.2f</strong></td></tr></table><p>We will notify you when it ships.</p>`,
		order.OrderID, order.Subtotal, order.DiscountAmount, order.TaxAmount, order.ShippingAmount, order.TotalAmount)

	return e.send(to, subject, plain, html)
}

func (e *emailService) send(to, subject, plain, html string) error {
	from := mail.NewEmail(e.fromName, e.fromEmail)

	message := mail.NewV3Mail()
	message.SetFrom(from)

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", to))
	personalization.Subject = subject
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", plain))
	message.AddContent(mail.NewContent("text/html", html))

	response, err := e.client.Send(message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}
