// Package pricing derives order totals from cart contents. All arithmetic is
// done in decimals and rounded half-up to the minor currency unit exactly
// once per figure, so repeated-decimal tax rates cannot drift.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

// Policy is the shop's pricing configuration.
//
// Shipping is free only when the subtotal strictly exceeds the threshold; a
// subtotal exactly at the threshold still pays flat shipping.
type Policy struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingCost      decimal.Decimal
	TaxRate               decimal.Decimal
}

// DefaultPolicy: free shipping above 100, flat 10 shipping, 8% tax.
func DefaultPolicy() Policy {
	return Policy{
		FreeShippingThreshold: decimal.NewFromInt(100),
		FlatShippingCost:      decimal.NewFromInt(10),
		TaxRate:               decimal.NewFromFloat(0.08),
	}
}

// Breakdown holds the derived totals. Total == Subtotal + ShippingCost + Tax
// exactly, each already rounded to 2 places.
type Breakdown struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shippingCost"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
}

// TotalMinor returns the grand total in the minor currency unit, as payment
// providers express amounts.
func (b Breakdown) TotalMinor() int64 {
	return decimal.NewFromFloat(b.Total).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// Compute derives the breakdown for a cart snapshot under the policy.
func Compute(items []model.CartItem, p Policy) Breakdown {
	subtotal := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line)
	}
	subtotal = subtotal.Round(2)

	shipping := p.FlatShippingCost
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	// Tax is rounded once on the subtotal, not per item.
	tax := subtotal.Mul(p.TaxRate).Round(2)
	total := subtotal.Add(shipping).Add(tax)

	return Breakdown{
		Subtotal:     subtotal.InexactFloat64(),
		ShippingCost: shipping.InexactFloat64(),
		Tax:          tax.InexactFloat64(),
		Total:        total.InexactFloat64(),
	}
}
