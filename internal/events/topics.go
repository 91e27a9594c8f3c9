package events

// Topic constants for events emitted by the rules engine.
const (
	TopicInvestmentCalculated   = "points.investment_calculated"
	TopicSubscriptionCalculated = "points.subscription_calculated"
	TopicOrderTotalsCalculated  = "order.totals_calculated"
)

// DefaultTopics returns the canonical list of topics the engine emits.
func DefaultTopics() []string {
	return []string{
		TopicInvestmentCalculated,
		TopicSubscriptionCalculated,
		TopicOrderTotalsCalculated,
	}
}
