package domain

import "github.com/shopspring/decimal"

// TaxRate is applied to the order subtotal
var TaxRate = decimal.RequireFromString("0.10")

// Totals holds the computed amounts of an order
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals sums price*quantity over the items in their given order.
// Tax and total are rounded to cents, half away from zero. The subtotal is
// left unrounded.
func ComputeTotals(items []CartItem) Totals {
	subtotal := decimal.Zero
	for _, i := range items {
		line := decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
		subtotal = subtotal.Add(line)
	}

	tax := subtotal.Mul(TaxRate).Round(2)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax).Round(2),
	}
}
