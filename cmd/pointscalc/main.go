// Command pointscalc reads a quote request as JSON from stdin, runs the
// rules engine and prints the result to stdout. Meant for support staff and
// scripted sanity checks against the calculators.
package main

import (
	"context"
	"os"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/racines-club/points-engine/internal/checkout"
	"github.com/racines-club/points-engine/internal/config"
	"github.com/racines-club/points-engine/internal/events"
	"github.com/racines-club/points-engine/internal/obs"
	"github.com/racines-club/points-engine/internal/order"
	"github.com/racines-club/points-engine/internal/points"
)

type request struct {
	Kind         string                    `json:"kind"`
	Investment   *points.Investment        `json:"investment,omitempty"`
	Subscription *points.SubscriptionInput `json:"subscription,omitempty"`
	Order        *orderRequest             `json:"order,omitempty"`
}

type orderRequest struct {
	Items        []order.LineItem `json:"items"`
	ShippingCost *decimal.Decimal `json:"shipping_cost,omitempty"`
	TaxRate      *decimal.Decimal `json:"tax_rate,omitempty"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel)
	obs.MustRegisterDomainMetrics(cfg.MetricsNamespace, nil)

	bus := &events.Bus{Notifiers: []events.Notifier{
		events.LogNotifier{Logger: logger},
		events.MetricsNotifier{Counter: obs.EventsEmittedTotal},
	}}
	svc := &checkout.Service{Bus: bus, Logger: logger}

	var req request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		logger.Error().Err(err).Msg("decode request")
		os.Exit(1)
	}

	ctx := context.Background()
	var result any
	switch req.Kind {
	case "investment":
		if req.Investment == nil {
			logger.Error().Msg("missing investment body")
			os.Exit(1)
		}
		result, err = svc.QuoteInvestment(ctx, *req.Investment)
	case "subscription":
		if req.Subscription == nil {
			logger.Error().Msg("missing subscription body")
			os.Exit(1)
		}
		result, err = svc.QuoteSubscription(ctx, *req.Subscription)
	case "order":
		if req.Order == nil {
			logger.Error().Msg("missing order body")
			os.Exit(1)
		}
		shipping := cfg.DefaultShippingEUR
		if req.Order.ShippingCost != nil {
			shipping = *req.Order.ShippingCost
		}
		taxRate := cfg.DefaultTaxRate
		if req.Order.TaxRate != nil {
			taxRate = *req.Order.TaxRate
		}
		result, err = svc.PriceOrder(ctx, req.Order.Items, shipping, taxRate)
	default:
		logger.Error().Str("kind", req.Kind).Msg("unknown request kind")
		os.Exit(1)
	}
	if err != nil {
		logger.Error().Err(err).Msg("quote failed")
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error().Err(err).Msg("encode result")
		os.Exit(1)
	}
}
