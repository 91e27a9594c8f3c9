// Package points converts money into loyalty points. It covers one-off
// investments (beehives, olive trees, vineyards) and recurring subscription
// allocations. Every function is pure; rule tables are fixed at process
// start and never mutated.
package points

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calculation is the result of a points conversion. TotalPoints is always
// BasePoints + BonusPoints, and EuroValue equals TotalPoints: one point
// redeems for one euro.
type Calculation struct {
	BasePoints     int64           `json:"base_points"`
	BonusPoints    int64           `json:"bonus_points"`
	TotalPoints    int64           `json:"total_points"`
	EuroValue      decimal.Decimal `json:"euro_value"`
	InvestmentType InvestmentType  `json:"investment_type,omitempty"`
	CalculatedAt   time.Time       `json:"calculated_at"`
}

var hundred = decimal.NewFromInt(100)

func newCalculation(base, bonus int64, investmentType InvestmentType, now time.Time) Calculation {
	total := base + bonus
	return Calculation{
		BasePoints:     base,
		BonusPoints:    bonus,
		TotalPoints:    total,
		EuroValue:      decimal.NewFromInt(total),
		InvestmentType: investmentType,
		CalculatedAt:   now,
	}
}
