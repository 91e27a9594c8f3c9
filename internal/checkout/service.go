// Package checkout is the collaborator-facing seam over the pure
// calculators: it composes rule gates, calculation, event emission and
// metrics into the calls the investment and subscription flows make.
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/racines-club/points-engine/internal/common"
	"github.com/racines-club/points-engine/internal/events"
	"github.com/racines-club/points-engine/internal/obs"
	"github.com/racines-club/points-engine/internal/order"
	"github.com/racines-club/points-engine/internal/points"
)

// Service quotes points grants and order totals for callers that are about
// to write a ledger entry.
type Service struct {
	Bus    *events.Bus
	Logger zerolog.Logger
	Now    func() time.Time
}

func (s *Service) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type calculationPayload struct {
	QuoteID        string `json:"quote_id"`
	Kind           string `json:"kind"`
	InvestmentType string `json:"investment_type,omitempty"`
	BasePoints     int64  `json:"base_points"`
	BonusPoints    int64  `json:"bonus_points"`
	TotalPoints    int64  `json:"total_points"`
	EuroValue      string `json:"euro_value"`
}

type totalsPayload struct {
	QuoteID  string `json:"quote_id"`
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// QuoteInvestment validates the investment against the per-type bounds,
// runs the calculator and publishes the result. Unlike the raw calculator,
// the bounds gate is a hard stop here.
func (s *Service) QuoteInvestment(ctx context.Context, inv points.Investment) (points.Calculation, error) {
	if !points.ValidateInvestmentRules(inv) {
		s.count("investment", "rejected")
		return points.Calculation{}, common.NewValidationError("amount_eur",
			fmt.Sprintf("amount %s EUR is outside the allowed range for %q", inv.AmountEUR, string(inv.Type)))
	}
	calc, err := points.CalculateInvestmentPoints(inv, s.now())
	if err != nil {
		s.count("investment", "rejected")
		return points.Calculation{}, err
	}
	s.count("investment", "ok")

	quoteID := uuid.New()
	s.Logger.Debug().
		Str("quote_id", quoteID.String()).
		Str("investment_type", string(inv.Type)).
		Int64("total_points", calc.TotalPoints).
		Msg("investment quoted")
	if err := s.emit(ctx, events.TopicInvestmentCalculated, quoteID, calculationPayload{
		QuoteID:        quoteID.String(),
		Kind:           "investment",
		InvestmentType: string(inv.Type),
		BasePoints:     calc.BasePoints,
		BonusPoints:    calc.BonusPoints,
		TotalPoints:    calc.TotalPoints,
		EuroValue:      calc.EuroValue.String(),
	}); err != nil {
		return calc, err
	}
	return calc, nil
}

// QuoteSubscription runs the subscription calculator and publishes the
// result.
func (s *Service) QuoteSubscription(ctx context.Context, in points.SubscriptionInput) (points.Calculation, error) {
	calc, err := points.CalculateSubscriptionPoints(in, s.now())
	if err != nil {
		s.count("subscription", "rejected")
		return points.Calculation{}, err
	}
	s.count("subscription", "ok")

	quoteID := uuid.New()
	s.Logger.Debug().
		Str("quote_id", quoteID.String()).
		Str("plan_type", string(in.PlanType)).
		Int64("total_points", calc.TotalPoints).
		Msg("subscription quoted")
	if err := s.emit(ctx, events.TopicSubscriptionCalculated, quoteID, calculationPayload{
		QuoteID:     quoteID.String(),
		Kind:        "subscription",
		BasePoints:  calc.BasePoints,
		BonusPoints: calc.BonusPoints,
		TotalPoints: calc.TotalPoints,
		EuroValue:   calc.EuroValue.String(),
	}); err != nil {
		return calc, err
	}
	return calc, nil
}

// PriceOrder aggregates the line items and publishes the computed totals.
func (s *Service) PriceOrder(ctx context.Context, items []order.LineItem, shippingCost, taxRate decimal.Decimal) (order.Totals, error) {
	totals := order.CalculateTotals(items, shippingCost, taxRate)
	s.count("order", "ok")

	quoteID := uuid.New()
	if err := s.emit(ctx, events.TopicOrderTotalsCalculated, quoteID, totalsPayload{
		QuoteID:  quoteID.String(),
		Subtotal: totals.Subtotal.String(),
		Tax:      totals.Tax.String(),
		Total:    totals.Total.String(),
	}); err != nil {
		return totals, err
	}
	return totals, nil
}

func (s *Service) emit(ctx context.Context, topic string, aggregateID uuid.UUID, payload any) error {
	if s.Bus == nil {
		return nil
	}
	_, err := s.Bus.Emit(ctx, topic, aggregateID, payload)
	return err
}

func (s *Service) count(kind, result string) {
	if obs.CalculationsTotal != nil {
		obs.CalculationsTotal.WithLabelValues(kind, result).Inc()
	}
}
