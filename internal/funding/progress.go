// Package funding computes display progress for project fundraising.
package funding

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Progress converts raised and target amounts into a percentage clamped to
// [0, 100]. A non-positive target yields 0; over-funding is clamped to 100
// for display while the raw amount stays untouched upstream.
func Progress(current, target decimal.Decimal) decimal.Decimal {
	if target.Sign() <= 0 {
		return decimal.Zero
	}
	pct := current.Div(target).Mul(hundred)
	if pct.Sign() < 0 {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// Snapshot pairs the raised amount of a project with its fundraising target.
type Snapshot struct {
	Current decimal.Decimal
	Target  decimal.Decimal
}

// Percent returns the clamped progress percentage for the snapshot.
func (s Snapshot) Percent() decimal.Decimal {
	return Progress(s.Current, s.Target)
}

// Funded reports whether the target has been fully met.
func (s Snapshot) Funded() bool {
	return s.Percent().GreaterThanOrEqual(hundred)
}
