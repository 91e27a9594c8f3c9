package points

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/racines-club/points-engine/internal/common"
)

// PlanType identifies a recurring subscription plan.
type PlanType string

const (
	PlanGraine  PlanType = "graine"
	PlanPousse  PlanType = "pousse"
	PlanCanopee PlanType = "canopee"
	PlanForet   PlanType = "foret"
)

// Valid reports whether the plan is one of the four known plans.
func (p PlanType) Valid() bool {
	switch p {
	case PlanGraine, PlanPousse, PlanCanopee, PlanForet:
		return true
	}
	return false
}

// BillingFrequency is how often a subscription is charged.
type BillingFrequency string

const (
	FrequencyMonthly BillingFrequency = "monthly"
	FrequencyAnnual  BillingFrequency = "annual"
)

// Valid reports whether the frequency is a known member of the enum.
func (f BillingFrequency) Valid() bool {
	return f == FrequencyMonthly || f == FrequencyAnnual
}

// SubscriptionInput describes a billing plan for points conversion. The
// monthly allocation is taken verbatim as base points, it is not derived
// from the plan price here.
type SubscriptionInput struct {
	PlanType                PlanType         `json:"plan_type"`
	BillingFrequency        BillingFrequency `json:"billing_frequency"`
	MonthlyPointsAllocation int64            `json:"monthly_points_allocation"`
	BonusPercentage         decimal.Decimal  `json:"bonus_percentage"`
}

// CalculateSubscriptionPoints converts a subscription plan into its monthly
// points grant. Bonus points round half away from zero, unlike the
// investment calculator which floors them.
func CalculateSubscriptionPoints(in SubscriptionInput, now time.Time) (Calculation, error) {
	if !in.PlanType.Valid() {
		return Calculation{}, common.NewValidationError("plan_type", "Unknown subscription plan")
	}
	if !in.BillingFrequency.Valid() {
		return Calculation{}, common.NewValidationError("billing_frequency", "Unknown billing frequency")
	}
	if in.MonthlyPointsAllocation <= 0 {
		return Calculation{}, common.NewValidationError("monthly_points_allocation", "Invalid monthly points allocation")
	}
	if in.BonusPercentage.Sign() < 0 {
		return Calculation{}, common.NewValidationError("bonus_percentage", "Invalid bonus percentage")
	}
	base := in.MonthlyPointsAllocation
	bonus := decimal.NewFromInt(base).Mul(in.BonusPercentage).Div(hundred).Round(0).IntPart()
	return newCalculation(base, bonus, "", now), nil
}

// AnnualAllocation returns twelve monthly grants as a single calculation,
// for annual statements. Rounding is applied to the monthly figure first so
// the annual total is exactly twelve times a monthly grant.
func AnnualAllocation(in SubscriptionInput, now time.Time) (Calculation, error) {
	monthly, err := CalculateSubscriptionPoints(in, now)
	if err != nil {
		return Calculation{}, err
	}
	return newCalculation(monthly.BasePoints*12, monthly.BonusPoints*12, "", now), nil
}
