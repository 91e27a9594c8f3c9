// Package order aggregates checkout line items into totals and maps order
// statuses to their display labels and lifecycle predicates.
package order

import "github.com/shopspring/decimal"

// DefaultTaxRate is the French standard VAT rate applied when the caller
// does not supply one.
var DefaultTaxRate = decimal.RequireFromString("0.2")

// LineItem is a single priced position of an order.
type LineItem struct {
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
}

// Totals aggregates the computed order components.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// CalculateTotals sums the line items, applies the tax rate and adds the
// shipping cost. No minor-unit rounding happens here; final display
// rounding is the caller's job. An empty item list yields zero subtotal and
// tax, leaving total equal to the shipping cost.
func CalculateTotals(items []LineItem, shippingCost, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}
	tax := subtotal.Mul(taxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax).Add(shippingCost),
	}
}
