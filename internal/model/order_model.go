package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted,
		OrderStatusShipped, OrderStatusCancelled:
		return true
	}
	return false
}

type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Order is the canonical committed order record. Items are a snapshot taken
// at commit time, never a live reference to a cart. Both the Stripe and the
// Paystack flow produce this one shape.
type Order struct {
	ID               string          `json:"id"`
	Customer         Customer        `json:"customer"`
	Shipping         ShippingAddress `json:"shipping"`
	Items            []CartItem      `json:"items"`
	Subtotal         float64         `json:"subtotal"`
	Tax              float64         `json:"tax"`
	ShippingCost     float64         `json:"shippingCost"`
	Total            float64         `json:"total"`
	Status           OrderStatus     `json:"status"`
	PaymentMethod    string          `json:"paymentMethod,omitempty"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}
