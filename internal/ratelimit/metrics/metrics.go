package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Decisions     *prometheus.CounterVec
	FallbackUsed  prometheus.Counter
	StoreFailures prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		Decisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "surveygate_ratelimit_decisions_total",
			Help: "Rate limit checks by class and outcome",
		}, []string{"class", "outcome"}), // outcome: "allowed", "limited", "bypassed"
		FallbackUsed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "surveygate_ratelimit_fallback_checks_total",
			Help: "Checks served by the in-memory fallback while the shared store is failing",
		}),
		StoreFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "surveygate_ratelimit_store_failures_total",
			Help: "Errors returned by the shared rate limit store",
		}),
	}
}

func (m *Metrics) IncrementDecision(class, outcome string) {
	if m == nil {
		return
	}
	m.Decisions.WithLabelValues(class, outcome).Inc()
}

func (m *Metrics) IncrementFallback() {
	if m == nil {
		return
	}
	m.FallbackUsed.Inc()
}

func (m *Metrics) IncrementStoreFailure() {
	if m == nil {
		return
	}
	m.StoreFailures.Inc()
}
