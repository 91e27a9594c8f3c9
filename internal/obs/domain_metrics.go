package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// CalculationsTotal counts calculator invocations by kind and outcome.
	CalculationsTotal *prometheus.CounterVec
	// EventsEmittedTotal counts emitted domain events by topic.
	EventsEmittedTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers the engine's
// Prometheus collectors. Passing a nil registerer falls back to the default
// one.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		CalculationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Count of points calculations by kind and result.",
		}, []string{"kind", "result"})
		EventsEmittedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_emitted_total",
			Help:      "Count of emitted domain events by topic.",
		}, []string{"topic"})

		mustRegisterCollector(reg, CalculationsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				CalculationsTotal = v
			}
		})
		mustRegisterCollector(reg, EventsEmittedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				EventsEmittedTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
