package model

// PaymentState tracks an order's reconciliation attempt from intent creation
// to commit. Committed, Failed and Abandoned are terminal.
type PaymentState string

const (
	PaymentStateCreated           PaymentState = "created"
	PaymentStateClientPaying      PaymentState = "client_paying"
	PaymentStateProviderVerifying PaymentState = "provider_verifying"
	PaymentStateCommitted         PaymentState = "committed"
	PaymentStateFailed            PaymentState = "failed"
	PaymentStateAbandoned         PaymentState = "abandoned"
)

// PaymentIntentStatusSucceeded is the provider status required before an
// order may be committed.
const PaymentIntentStatusSucceeded = "succeeded"

// PaymentIntent references a provider-owned payment object. AmountMinor is
// in the minor currency unit (kobo / cents).
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret,omitempty"`
	Reference    string `json:"reference,omitempty"`
	AmountMinor  int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// Succeeded reports whether the provider confirmed the payment.
func (p *PaymentIntent) Succeeded() bool {
	return p != nil && p.Status == PaymentIntentStatusSucceeded
}
