package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

func items(price float64, qty int) []model.CartItem {
	return []model.CartItem{{ProductID: 1, Name: "tee", Price: price, Quantity: qty}}
}

func TestComputeBelowFreeShippingThreshold(t *testing.T) {
	b := Compute(items(49.00, 2), DefaultPolicy())

	assert.Equal(t, 98.00, b.Subtotal)
	assert.Equal(t, 10.00, b.ShippingCost)
	assert.Equal(t, 7.84, b.Tax)
	assert.Equal(t, 115.84, b.Total)
}

func TestComputeAboveFreeShippingThreshold(t *testing.T) {
	b := Compute(items(49.00, 3), DefaultPolicy())

	assert.Equal(t, 147.00, b.Subtotal)
	assert.Equal(t, 0.00, b.ShippingCost)
	assert.Equal(t, 11.76, b.Tax)
	assert.Equal(t, 158.76, b.Total)
}

func TestComputeSubtotalExactlyAtThresholdStillShips(t *testing.T) {
	b := Compute(items(50.00, 2), DefaultPolicy())

	assert.Equal(t, 100.00, b.Subtotal)
	assert.Equal(t, 10.00, b.ShippingCost)
}

func TestComputeEmptyCart(t *testing.T) {
	b := Compute(nil, DefaultPolicy())

	assert.Equal(t, 0.00, b.Subtotal)
	assert.Equal(t, 10.00, b.ShippingCost)
	assert.Equal(t, 0.00, b.Tax)
	assert.Equal(t, 10.00, b.Total)
}

func TestComputeRoundsTaxOnce(t *testing.T) {
	// 19.99 * 0.08 = 1.5992 -> 1.60 when rounded on the subtotal.
	b := Compute(items(19.99, 1), DefaultPolicy())

	assert.Equal(t, 19.99, b.Subtotal)
	assert.Equal(t, 1.60, b.Tax)
	assert.Equal(t, 31.59, b.Total)
}

func TestComputeTotalIsSumOfParts(t *testing.T) {
	cases := [][]model.CartItem{
		items(9.99, 7),
		items(0.01, 1),
		items(33.33, 3),
		{
			{ProductID: 1, Price: 12.99, Quantity: 2},
			{ProductID: 2, Price: 14.99, Quantity: 5},
			{ProductID: 3, Price: 9.99, Quantity: 1},
		},
	}

	for _, c := range cases {
		b := Compute(c, DefaultPolicy())
		assert.InDelta(t, b.Subtotal+b.ShippingCost+b.Tax, b.Total, 1e-9)
	}
}

func TestTotalMinor(t *testing.T) {
	b := Compute(items(49.00, 2), DefaultPolicy())

	assert.Equal(t, int64(11584), b.TotalMinor())
}
