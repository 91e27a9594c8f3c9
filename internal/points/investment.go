package points

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/racines-club/points-engine/internal/common"
)

// Investment is a transient request to convert money into points. It is
// built by the checkout flow from a persisted project record and discarded
// after the calculation.
type Investment struct {
	Type            InvestmentType  `json:"type"`
	AmountEUR       decimal.Decimal `json:"amount_eur"`
	BonusPercentage decimal.Decimal `json:"bonus_percentage"`
}

// CalculateInvestmentPoints converts an investment into a points grant.
// Base points round up so a fractional euro never converts to zero points;
// bonus points round down. The per-type amount bounds are a separate gate,
// see ValidateInvestmentRules.
func CalculateInvestmentPoints(inv Investment, now time.Time) (Calculation, error) {
	if inv.AmountEUR.Sign() <= 0 {
		return Calculation{}, common.NewValidationError("amount_eur", "Invalid investment amount")
	}
	if inv.BonusPercentage.Sign() < 0 {
		return Calculation{}, common.NewValidationError("bonus_percentage", "Invalid bonus percentage")
	}
	base := inv.AmountEUR.Ceil().IntPart()
	bonus := decimal.NewFromInt(base).Mul(inv.BonusPercentage).Div(hundred).Floor().IntPart()
	return newCalculation(base, bonus, inv.Type, now), nil
}

// ValidateInvestmentRules reports whether the amount falls inside the fixed
// bounds for the investment type, inclusive on both ends. Unknown types
// always reject.
func ValidateInvestmentRules(inv Investment) bool {
	rule, ok := investmentRules[inv.Type]
	if !ok {
		return false
	}
	return inv.AmountEUR.GreaterThanOrEqual(rule.MinAmount) &&
		inv.AmountEUR.LessThanOrEqual(rule.MaxAmount)
}
