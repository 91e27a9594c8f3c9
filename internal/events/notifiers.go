package events

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// LogNotifier writes one structured log line per emitted event.
type LogNotifier struct {
	Logger zerolog.Logger
}

// Notify implements Notifier.
func (l LogNotifier) Notify(_ context.Context, event Event) error {
	l.Logger.Info().
		Str("topic", event.Topic).
		Str("event_id", event.ID.String()).
		Str("aggregate_id", event.AggregateID.String()).
		Time("occurred_at", event.OccurredAt).
		RawJSON("payload", event.Payload).
		Msg("domain_event")
	return nil
}

// MetricsNotifier counts emitted events by topic.
type MetricsNotifier struct {
	Counter *prometheus.CounterVec
}

// Notify implements Notifier.
func (m MetricsNotifier) Notify(_ context.Context, event Event) error {
	if m.Counter != nil {
		m.Counter.WithLabelValues(event.Topic).Inc()
	}
	return nil
}
