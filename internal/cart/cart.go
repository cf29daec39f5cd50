// Package cart holds a session's line items and their quantity-merge rules.
// Every mutation persists the whole cart through the Store before returning,
// so a reload sees the last completed operation.
package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

type Cart struct {
	sessionID string
	store     Store
	items     []model.CartItem
}

// Open loads the cart for the given session, creating an empty one if none
// was persisted yet.
func Open(sessionID string, store Store) (*Cart, error) {
	items, err := store.Load(sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return &Cart{sessionID: sessionID, store: store, items: items}, nil
}

// Add puts quantity units of item into the cart. An existing line with the
// same (product, variant) identity accumulates; otherwise the item is
// appended. A non-positive quantity is rejected.
func (c *Cart) Add(item model.CartItem, quantity int) error {
	if quantity <= 0 {
		return model.Invalid("quantity", "must be at least 1")
	}
	if item.Price < 0 {
		return model.Invalid("price", "must not be negative")
	}

	next := cloneItems(c.items)
	merged := false
	for i := range next {
		if next[i].Key() == item.Key() {
			next[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = quantity
		next = append(next, item)
	}
	return c.persist(next)
}

// Remove deletes the line with the given identity. Removing an absent line
// is a no-op, not an error.
func (c *Cart) Remove(key model.CartKey) error {
	next := make([]model.CartItem, 0, len(c.items))
	for _, it := range c.items {
		if it.Key() != key {
			next = append(next, it)
		}
	}
	if len(next) == len(c.items) {
		return nil
	}
	return c.persist(next)
}

// SetQuantity replaces a line's quantity. Zero or less removes the line.
func (c *Cart) SetQuantity(key model.CartKey, quantity int) error {
	if quantity <= 0 {
		return c.Remove(key)
	}
	next := cloneItems(c.items)
	for i := range next {
		if next[i].Key() == key {
			next[i].Quantity = quantity
			return c.persist(next)
		}
	}
	return model.ErrNotFound
}

// Clear empties the cart. Called after a committed order.
func (c *Cart) Clear() error {
	return c.persist(nil)
}

// Snapshot returns an immutable copy of the cart for order assembly. The
// live cart may keep mutating after checkout begins; callers must never see
// that through the snapshot.
func (c *Cart) Snapshot() []model.CartItem {
	return cloneItems(c.items)
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of line prices, rounded to 2 places.
func (c *Cart) Subtotal() float64 {
	sum := decimal.Zero
	for _, it := range c.items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	return sum.Round(2).InexactFloat64()
}

func (c *Cart) persist(next []model.CartItem) error {
	if err := c.store.Save(c.sessionID, next); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	c.items = next
	return nil
}
