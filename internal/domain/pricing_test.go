package domain

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestComputeTotals(t *testing.T) {
	testCases := []struct {
		name     string
		items    []CartItem
		subtotal float64
		tax      float64
		total    float64
	}{
		{
			name:     "Single line with quantity",
			items:    []CartItem{{ProductID: "p1", Title: "Mouse", Price: 10.00, Quantity: 2}},
			subtotal: 20.00,
			tax:      2.00,
			total:    22.00,
		},
		{
			name: "Tax rounds up at the third decimal",
			items: []CartItem{
				{ProductID: "demo1", Title: "Pro Gaming Headset", Price: 89.99, Quantity: 1},
				{ProductID: "demo2", Title: "Mechanical Keyboard RGB", Price: 129.00, Quantity: 1},
			},
			subtotal: 218.99,
			tax:      21.90,
			total:    240.89,
		},
		{
			name:     "Free item",
			items:    []CartItem{{ProductID: "p1", Title: "Demo", Price: 0, Quantity: 3}},
			subtotal: 0,
			tax:      0,
			total:    0,
		},
		{
			name: "Fractional cents in subtotal",
			items: []CartItem{
				{ProductID: "p1", Title: "Sticker", Price: 0.10, Quantity: 3},
				{ProductID: "p2", Title: "Game", Price: 69.99, Quantity: 3},
			},
			subtotal: 210.27,
			tax:      21.03,
			total:    231.30,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			totals := ComputeTotals(tc.items)

			assert.Equal(t, tc.subtotal, totals.Subtotal.InexactFloat64())
			assert.Equal(t, tc.tax, totals.Tax.InexactFloat64())
			assert.Equal(t, tc.total, totals.Total.InexactFloat64())
		})
	}
}

func TestComputeTotalsInvariant(t *testing.T) {
	prices := []float64{0, 0.01, 0.05, 1.99, 9.95, 19.99, 49.5, 59.99, 89.99, 129, 499.99}

	for _, p := range prices {
		for q := 1; q <= 4; q++ {
			items := []CartItem{
				{ProductID: "a", Title: "a", Price: p, Quantity: q},
				{ProductID: "b", Title: "b", Price: 2.45, Quantity: 1},
			}
			totals := ComputeTotals(items)

			expectedSubtotal := decimal.NewFromFloat(p).Mul(decimal.NewFromInt(int64(q))).Add(decimal.NewFromFloat(2.45))
			assert.True(t, expectedSubtotal.Equal(totals.Subtotal), "subtotal for price %v qty %d", p, q)
			assert.True(t, totals.Tax.Equal(totals.Subtotal.Mul(TaxRate).Round(2)), "tax for price %v qty %d", p, q)
			assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.Tax).Round(2)), "total for price %v qty %d", p, q)
		}
	}
}

func TestNewOrderSnapshotsItems(t *testing.T) {
	req := &CheckoutRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Address: "1 Loop St",
		Items: []CartItem{
			{ProductID: "p1", Title: "Headset", Price: 89.99, Quantity: 1, Image: "https://img/1.png"},
			{ProductID: "p2", Title: "Keyboard", Price: 129, Quantity: 2},
		},
	}
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	order := NewOrder(req, ComputeTotals(req.Items), createdAt)

	assert.Equal(t, "Ada", order.CustomerName)
	assert.Equal(t, "ada@example.com", order.CustomerEmail)
	assert.Equal(t, "1 Loop St", order.Address)
	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, createdAt, order.CreatedAt)
	assert.Equal(t, 347.99, order.Subtotal)
	assert.Equal(t, 34.80, order.Tax)
	assert.Equal(t, 382.79, order.Total)
	assert.Equal(t, []OrderItem{
		{ProductID: "p1", Title: "Headset", Price: 89.99, Quantity: 1, Image: "https://img/1.png"},
		{ProductID: "p2", Title: "Keyboard", Price: 129, Quantity: 2},
	}, order.Items)

	// mutating the request afterwards must not reach the order
	req.Items[0].Price = 1
	assert.Equal(t, 89.99, order.Items[0].Price)
}
