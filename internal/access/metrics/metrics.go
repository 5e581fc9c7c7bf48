package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the survey access gate.
type Metrics struct {
	// Access decisions by reason
	Decisions *prometheus.CounterVec
}

// New creates a new Metrics instance with all access metrics registered.
func New() *Metrics {
	return &Metrics{
		Decisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "surveygate_access_decisions_total",
			Help: "Survey fill access decisions by reason",
		}, []string{"reason"}), // reason: "allowed", "profile_incomplete", "not_eligible", "already_responded"
	}
}

func (m *Metrics) IncrementDecision(reason string) {
	if m == nil {
		return
	}
	m.Decisions.WithLabelValues(reason).Inc()
}
