package services

import (
	"context"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

// Mailer sends customer-facing notification emails. Failures are reported
// but never block or roll back an order.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, order *model.Order) error
	SendShippingNotification(ctx context.Context, order *model.Order, trackingNumber string) error
	SendTestEmail(ctx context.Context, toEmail string) error
}

// NopMailer stands in when no email provider is configured. Every send
// reports a not-configured error, which callers surface as a warning.
type NopMailer struct{}

var errMailNotConfigured = model.Invalid("email", "email delivery is not configured")

func (NopMailer) SendOrderConfirmation(context.Context, *model.Order) error {
	return errMailNotConfigured
}

func (NopMailer) SendShippingNotification(context.Context, *model.Order, string) error {
	return errMailNotConfigured
}

func (NopMailer) SendTestEmail(context.Context, string) error {
	return errMailNotConfigured
}
