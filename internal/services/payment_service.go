package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/omosemola/my-ecommerce-web/internal/model"
	"github.com/omosemola/my-ecommerce-web/internal/pricing"
	"github.com/omosemola/my-ecommerce-web/internal/repository"
)

// PaymentProvider is a hosted-payment gateway: Stripe intents or Paystack
// transactions. Amounts are in the minor currency unit.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency, email, name string) (*model.PaymentIntent, error)
	VerifyIntent(ctx context.Context, ref string) (*model.PaymentIntent, error)
	PublicKey() string
}

const verifyTimeout = 30 * time.Second

// PaymentService drives an order through the reconciliation states:
// Created -> ClientPaying -> ProviderVerifying -> Committed, with Failed and
// Abandoned as the terminal off-ramps. The client paying step happens in the
// provider's hosted UI; the server only sees its two ends.
type PaymentService struct {
	Providers map[string]PaymentProvider
	Orders    repository.OrderRepository
	Products  repository.ProductRepository
	Policy    pricing.Policy
	Mailer    Mailer
	Log       *zap.Logger
}

func NewPaymentService(
	providers map[string]PaymentProvider,
	or repository.OrderRepository,
	pr repository.ProductRepository,
	policy pricing.Policy,
	mailer Mailer,
	log *zap.Logger,
) *PaymentService {
	return &PaymentService{
		Providers: providers,
		Orders:    or,
		Products:  pr,
		Policy:    policy,
		Mailer:    mailer,
		Log:       log,
	}
}

func (s *PaymentService) provider(name string) (PaymentProvider, error) {
	p, ok := s.Providers[name]
	if !ok || p == nil {
		return nil, model.Invalid("provider", fmt.Sprintf("unknown payment provider %q", name))
	}
	return p, nil
}

// PublicKey exposes the provider's publishable key for the browser SDK.
func (s *PaymentService) PublicKey(providerName string) (string, error) {
	p, err := s.provider(providerName)
	if err != nil {
		return "", err
	}
	return p.PublicKey(), nil
}

// CreateIntent opens a provider payment intent for the given cart. The
// amount is always recomputed from server-held catalog prices; a client-sent
// amount is only cross-checked, never trusted.
func (s *PaymentService) CreateIntent(
	ctx context.Context,
	providerName string,
	items []model.CartItem,
	currency, email, name string,
	clientAmount *float64,
) (*model.PaymentIntent, error) {
	p, err := s.provider(providerName)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, model.Invalid("items", "cart is empty")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	repriced, err := repriceItems(ctx, s.Products, items)
	if err != nil {
		return nil, err
	}
	breakdown := pricing.Compute(repriced, s.Policy)

	if clientAmount != nil && !amountsEqual(*clientAmount, breakdown.Total) {
		return nil, model.Invalid("amount",
			fmt.Sprintf("does not match server-computed total %.2f", breakdown.Total))
	}

	intent, err := p.CreateIntent(ctx, breakdown.TotalMinor(), currency, email, name)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	s.Log.Info("payment intent created",
		zap.String("provider", providerName),
		zap.String("intent_id", intent.ID),
		zap.Int64("amount_minor", intent.AmountMinor))
	return intent, nil
}

// ProcessPayment is the commit half of the reconciliation flow. The client
// claims the hosted payment succeeded; the server re-verifies with the
// provider, recomputes the total from catalog prices, checks the captured
// amount against it, and only then assembles and persists the order.
//
// Re-delivery of the same callback finds the already committed order by its
// payment reference and returns it unchanged: exactly one order per verified
// intent. A verification that arrives after the client gave up is still
// valid; payment truth lives at the provider, not the client.
func (s *PaymentService) ProcessPayment(
	ctx context.Context,
	providerName string,
	reference string,
	customer model.Customer,
	shipping model.ShippingAddress,
	items []model.CartItem,
) (*model.Order, error) {
	p, err := s.provider(providerName)
	if err != nil {
		return nil, err
	}
	if reference == "" {
		return nil, model.Invalid("reference", "is required")
	}
	if len(items) == 0 {
		return nil, model.Invalid("items", "cart is empty")
	}

	// Idempotency guard: this intent already produced an order.
	if existing, err := s.Orders.FindByPaymentRef(ctx, reference); err == nil {
		s.Log.Info("duplicate payment callback, returning committed order",
			zap.String("order_id", existing.ID),
			zap.String("payment_reference", reference))
		return existing, nil
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	// ProviderVerifying: bounded round-trip to the provider.
	verifyCtx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()
	intent, err := p.VerifyIntent(verifyCtx, reference)
	if err != nil {
		return nil, fmt.Errorf("verify payment: %w", err)
	}
	if !intent.Succeeded() {
		s.Log.Warn("payment not confirmed by provider",
			zap.String("payment_reference", reference),
			zap.String("status", intent.Status))
		return nil, fmt.Errorf("%w: provider status %q", model.ErrPaymentNotVerified, intent.Status)
	}

	repriced, err := repriceItems(ctx, s.Products, items)
	if err != nil {
		return nil, err
	}
	breakdown := pricing.Compute(repriced, s.Policy)
	if intent.AmountMinor != breakdown.TotalMinor() {
		s.Log.Warn("captured amount does not match server-computed total",
			zap.String("payment_reference", reference),
			zap.Int64("captured_minor", intent.AmountMinor),
			zap.Int64("expected_minor", breakdown.TotalMinor()))
		return nil, fmt.Errorf("%w: amount mismatch", model.ErrPaymentNotVerified)
	}

	order, err := AssembleOrder(customer, shipping, repriced, breakdown)
	if err != nil {
		return nil, err
	}
	order.Status = model.OrderStatusCompleted
	order.PaymentMethod = providerName
	order.PaymentReference = intent.ID

	if err := s.Orders.Create(ctx, order); err != nil {
		// Money has been captured but no order row exists. This needs a
		// human, not a quiet 500.
		s.Log.Error("RECONCILIATION ALERT: verified payment with no persisted order",
			zap.String("payment_reference", intent.ID),
			zap.Int64("amount_minor", intent.AmountMinor),
			zap.String("customer_email", customer.Email),
			zap.Error(err))
		return nil, &model.StorageError{Op: "commit order", Err: err}
	}

	s.Log.Info("order committed",
		zap.String("order_id", order.ID),
		zap.String("provider", providerName),
		zap.String("payment_reference", intent.ID))

	dispatchConfirmation(s.Log, s.Mailer, order)
	return order, nil
}
