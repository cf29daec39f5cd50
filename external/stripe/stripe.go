package stripe

import (
	"context"
	"errors"
	"os"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

// Client wraps the Stripe PaymentIntent API.
type Client struct {
	publicKey string
}

func NewClient() (*Client, error) {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		return nil, errors.New("STRIPE_SECRET_KEY not set")
	}
	stripe.Key = key
	return &Client{publicKey: os.Getenv("STRIPE_PUBLIC_KEY")}, nil
}

// CreateIntent opens a PaymentIntent for the given amount in minor units.
func (c *Client) CreateIntent(ctx context.Context, amountMinor int64, currency, email, name string) (*model.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	if name == "" {
		name = "Guest"
	}
	params.AddMetadata("customerName", name)
	if email != "" {
		params.AddMetadata("customerEmail", email)
		params.ReceiptEmail = stripe.String(email)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}
	return intentFromStripe(pi), nil
}

// VerifyIntent re-queries the PaymentIntent by id. The returned status is
// the provider's word, not the client's.
func (c *Client) VerifyIntent(ctx context.Context, id string) (*model.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := paymentintent.Get(id, params)
	if err != nil {
		return nil, err
	}
	return intentFromStripe(pi), nil
}

func (c *Client) PublicKey() string {
	return c.publicKey
}

func intentFromStripe(pi *stripe.PaymentIntent) *model.PaymentIntent {
	status := string(pi.Status)
	if pi.Status == stripe.PaymentIntentStatusSucceeded {
		status = model.PaymentIntentStatusSucceeded
	}
	return &model.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Reference:    pi.ID,
		AmountMinor:  pi.Amount,
		Currency:     string(pi.Currency),
		Status:       status,
	}
}
