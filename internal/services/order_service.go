package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/omosemola/my-ecommerce-web/internal/model"
	"github.com/omosemola/my-ecommerce-web/internal/pricing"
	"github.com/omosemola/my-ecommerce-web/internal/repository"
)

type OrderService struct {
	Orders   repository.OrderRepository
	Products repository.ProductRepository
	Policy   pricing.Policy
	Mailer   Mailer
	Log      *zap.Logger
}

func NewOrderService(
	or repository.OrderRepository,
	pr repository.ProductRepository,
	policy pricing.Policy,
	mailer Mailer,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		Orders:   or,
		Products: pr,
		Policy:   policy,
		Mailer:   mailer,
		Log:      log,
	}
}

// newOrderID generates a provider-prefixed, globally unique order id.
func newOrderID() string {
	return "ORD-" + uuid.NewString()
}

// AssembleOrder combines customer input, a cart snapshot and the computed
// breakdown into an order record. The items slice is copied; the record
// never aliases the caller's cart.
func AssembleOrder(
	customer model.Customer,
	shipping model.ShippingAddress,
	snapshot []model.CartItem,
	breakdown pricing.Breakdown,
) (*model.Order, error) {
	if err := validateEmail(customer.Email); err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, model.Invalid("items", "cart is empty")
	}
	for _, it := range snapshot {
		if it.Price < 0 {
			return nil, model.Invalid("items", fmt.Sprintf("negative price on product %d", it.ProductID))
		}
		if it.Quantity < 1 {
			return nil, model.Invalid("items", fmt.Sprintf("bad quantity on product %d", it.ProductID))
		}
	}

	items := make([]model.CartItem, len(snapshot))
	copy(items, snapshot)

	return &model.Order{
		ID:           newOrderID(),
		Customer:     customer,
		Shipping:     shipping,
		Items:        items,
		Subtotal:     breakdown.Subtotal,
		Tax:          breakdown.Tax,
		ShippingCost: breakdown.ShippingCost,
		Total:        breakdown.Total,
		Status:       model.OrderStatusPending,
		CreatedAt:    time.Now(),
	}, nil
}

// repriceItems swaps every client-sent unit price for the server-held
// catalog price. Client totals are never authoritative; this is what makes
// price tampering pointless.
func repriceItems(ctx context.Context, products repository.ProductRepository, items []model.CartItem) ([]model.CartItem, error) {
	out := make([]model.CartItem, 0, len(items))
	for _, it := range items {
		p, err := products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, model.Invalid("items", fmt.Sprintf("unknown product %d", it.ProductID))
		}
		if it.Quantity < 1 {
			return nil, model.Invalid("items", fmt.Sprintf("bad quantity on product %d", it.ProductID))
		}
		it.Name = p.Name
		it.Price = p.Price
		if it.Image == "" {
			it.Image = p.Image
		}
		out = append(out, it)
	}
	return out, nil
}

// PlaceOrder handles the direct order path (no payment provider): reprice
// against the catalog, recompute totals, reject a client total that does
// not match, persist, and fire the confirmation email.
func (s *OrderService) PlaceOrder(
	ctx context.Context,
	customer model.Customer,
	shipping model.ShippingAddress,
	items []model.CartItem,
	clientTotal *float64,
) (*model.Order, error) {
	if len(items) == 0 {
		return nil, model.Invalid("items", "cart is empty")
	}

	repriced, err := repriceItems(ctx, s.Products, items)
	if err != nil {
		return nil, err
	}
	breakdown := pricing.Compute(repriced, s.Policy)

	if clientTotal != nil && !amountsEqual(*clientTotal, breakdown.Total) {
		return nil, model.Invalid("total",
			fmt.Sprintf("does not match server-computed total %.2f", breakdown.Total))
	}

	order, err := AssembleOrder(customer, shipping, repriced, breakdown)
	if err != nil {
		return nil, err
	}
	order.Status = model.OrderStatusConfirmed

	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	s.Log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.Total))

	dispatchConfirmation(s.Log, s.Mailer, order)
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*model.Order, error) {
	return s.Orders.FindByID(ctx, id)
}

func (s *OrderService) ByEmail(ctx context.Context, email string) ([]model.Order, error) {
	return s.Orders.FindByEmail(ctx, email)
}

func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	return s.Orders.List(ctx)
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.Orders.Delete(ctx, id)
}

// SendConfirmation re-sends the confirmation email for an existing order.
func (s *OrderService) SendConfirmation(ctx context.Context, orderID string) error {
	order, err := s.Orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	return s.Mailer.SendOrderConfirmation(ctx, order)
}

// SendShippingNotification mails the tracking details for an existing order.
func (s *OrderService) SendShippingNotification(ctx context.Context, orderID, trackingNumber string) error {
	order, err := s.Orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	return s.Mailer.SendShippingNotification(ctx, order, trackingNumber)
}

// DashboardStats summarizes all orders for the admin dashboard.
type DashboardStats struct {
	TotalOrders       int     `json:"totalOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	ThisMonth         int     `json:"thisMonth"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

func (s *OrderService) Dashboard(ctx context.Context) (*DashboardStats, []model.Order, error) {
	orders, err := s.Orders.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	revenue := decimal.Zero
	thisMonth := 0
	now := time.Now()
	for _, o := range orders {
		revenue = revenue.Add(decimal.NewFromFloat(o.Total))
		if o.CreatedAt.Month() == now.Month() && o.CreatedAt.Year() == now.Year() {
			thisMonth++
		}
	}

	stats := &DashboardStats{
		TotalOrders:  len(orders),
		TotalRevenue: revenue.Round(2).InexactFloat64(),
		ThisMonth:    thisMonth,
	}
	if len(orders) > 0 {
		avg := revenue.Div(decimal.NewFromInt(int64(len(orders))))
		stats.AverageOrderValue = avg.Round(2).InexactFloat64()
	}
	return stats, orders, nil
}

// amountsEqual compares two money amounts at minor-unit precision.
func amountsEqual(a, b float64) bool {
	da := decimal.NewFromFloat(a).Round(2)
	db := decimal.NewFromFloat(b).Round(2)
	return da.Equal(db)
}
