package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculateTotals(t *testing.T) {
	items := []LineItem{
		{UnitPrice: d("19.90"), Quantity: 2},
		{UnitPrice: d("5.50"), Quantity: 1},
	}
	totals := CalculateTotals(items, d("4.90"), DefaultTaxRate)
	require.True(t, totals.Subtotal.Equal(d("45.30")), "subtotal = %s", totals.Subtotal)
	require.True(t, totals.Tax.Equal(d("9.060")), "tax = %s", totals.Tax)
	require.True(t, totals.Total.Equal(d("59.26")), "total = %s", totals.Total)
}

func TestCalculateTotalsEmptyItems(t *testing.T) {
	totals := CalculateTotals(nil, d("5"), d("0.2"))
	require.True(t, totals.Subtotal.IsZero())
	require.True(t, totals.Tax.IsZero())
	require.True(t, totals.Total.Equal(d("5")))
}

func TestCalculateTotalsSkipsNonPositiveQuantities(t *testing.T) {
	items := []LineItem{
		{UnitPrice: d("10"), Quantity: 0},
		{UnitPrice: d("10"), Quantity: -3},
		{UnitPrice: d("10"), Quantity: 1},
	}
	totals := CalculateTotals(items, decimal.Zero, decimal.Zero)
	require.True(t, totals.Subtotal.Equal(d("10")))
	require.True(t, totals.Total.Equal(d("10")))
}

func TestCalculateTotalsNoMidSumRounding(t *testing.T) {
	// Three lines at a third of a cent each keep full precision in the sum.
	items := []LineItem{
		{UnitPrice: d("0.333"), Quantity: 1},
		{UnitPrice: d("0.333"), Quantity: 1},
		{UnitPrice: d("0.334"), Quantity: 1},
	}
	totals := CalculateTotals(items, decimal.Zero, decimal.Zero)
	require.True(t, totals.Subtotal.Equal(d("1")))
}
