package domain

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestProductValidation(t *testing.T) {
	rating := func(r float64) *float64 { return &r }

	testCases := []struct {
		name    string
		product *Product
		valid   bool
	}{
		{"Valid product", NewProduct("Headset", "accessories", 89.99), true},
		{"Free product", &Product{Title: "Demo", Category: "games", Price: 0}, true},
		{"Missing title", &Product{Category: "games", Price: 1}, false},
		{"Missing category", &Product{Title: "Demo", Price: 1}, false},
		{"Negative price", &Product{Title: "Demo", Category: "games", Price: -1}, false},
		{"Rating at upper bound", &Product{Title: "Demo", Category: "games", Rating: rating(5)}, true},
		{"Rating above range", &Product{Title: "Demo", Category: "games", Rating: rating(5.1)}, false},
		{"Rating below range", &Product{Title: "Demo", Category: "games", Rating: rating(-0.5)}, false},
	}

	v := NewValidation()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := v.Validate(tc.product)

			if tc.valid {
				assert.Empty(t, errs)
			} else {
				assert.NotEmpty(t, errs)
			}
		})
	}
}

func TestCheckoutRequestValidation(t *testing.T) {
	valid := func() *CheckoutRequest {
		return &CheckoutRequest{
			Name:    "Ada",
			Email:   "ada@example.com",
			Address: "1 Loop St",
			Items:   []CartItem{{ProductID: "p1", Title: "Headset", Price: 10, Quantity: 1}},
		}
	}

	testCases := []struct {
		name   string
		mutate func(r *CheckoutRequest)
		field  string
	}{
		{"Valid request", func(r *CheckoutRequest) {}, ""},
		{"Empty items pass the boundary", func(r *CheckoutRequest) { r.Items = []CartItem{} }, ""},
		{"Missing items", func(r *CheckoutRequest) { r.Items = nil }, "CheckoutRequest.Items"},
		{"Missing name", func(r *CheckoutRequest) { r.Name = "" }, "CheckoutRequest.Name"},
		{"Missing email", func(r *CheckoutRequest) { r.Email = "" }, "CheckoutRequest.Email"},
		{"Missing address", func(r *CheckoutRequest) { r.Address = "" }, "CheckoutRequest.Address"},
		{"Zero quantity", func(r *CheckoutRequest) { r.Items[0].Quantity = 0 }, "CheckoutRequest.Items[0].Quantity"},
		{"Negative price", func(r *CheckoutRequest) { r.Items[0].Price = -0.01 }, "CheckoutRequest.Items[0].Price"},
		{"Missing product id", func(r *CheckoutRequest) { r.Items[0].ProductID = "" }, "CheckoutRequest.Items[0].ProductID"},
	}

	v := NewValidation()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(req)

			errs := v.Validate(req)

			if tc.field == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
		})
	}
}

func TestEmptyCartIsValidationError(t *testing.T) {
	var err error = ErrEmptyCart

	var ve ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Cart is empty", ve.Message)
	assert.True(t, errors.Is(err, ErrEmptyCart))
}
