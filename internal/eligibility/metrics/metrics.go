package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the eligibility module.
type Metrics struct {
	// Collaborator fetch latencies by source
	FetchLatency *prometheus.HistogramVec

	// Eligibility outcomes
	Outcomes *prometheus.CounterVec

	// Failed checks by stage
	FailedChecks *prometheus.CounterVec

	// Advanced rules with an operator the evaluator does not implement
	UnknownOperator *prometheus.CounterVec

	// Admin rule document writes
	RuleWrites *prometheus.CounterVec

	// Overall evaluation latency including fetches
	EvaluateLatency prometheus.Histogram
}

// New creates a new Metrics instance with all eligibility metrics registered.
func New() *Metrics {
	return &Metrics{
		FetchLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "surveygate_eligibility_fetch_duration_seconds",
			Help:    "Duration of collaborator fetches by source",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"source"}), // source: "profile", "answers", "rules"

		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "surveygate_eligibility_outcomes_total",
			Help: "Eligibility evaluations by outcome",
		}, []string{"outcome"}), // outcome: "eligible", "ineligible", "open"

		FailedChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "surveygate_eligibility_failed_checks_total",
			Help: "Failed eligibility checks by stage",
		}, []string{"check"}),

		UnknownOperator: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "surveygate_eligibility_unknown_operator_total",
			Help: "Advanced rules evaluated with an unknown operator (treated as satisfied)",
		}, []string{"op"}),

		RuleWrites: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "surveygate_eligibility_rule_writes_total",
			Help: "Rule document writes by action",
		}, []string{"action"}), // action: "save", "delete"

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "surveygate_eligibility_evaluate_duration_seconds",
			Help:    "Duration of full eligibility evaluation including fetches",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// ObserveFetchLatency records the duration of fetching from a source.
func (m *Metrics) ObserveFetchLatency(source string, d time.Duration) {
	if m != nil {
		m.FetchLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// IncrementOutcome records an evaluation outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Outcomes.WithLabelValues(outcome).Inc()
	}
}

// IncrementFailedCheck records one failed stage.
func (m *Metrics) IncrementFailedCheck(check string) {
	if m != nil {
		m.FailedChecks.WithLabelValues(check).Inc()
	}
}

// IncrementUnknownOperator records a rule with an unimplemented operator.
func (m *Metrics) IncrementUnknownOperator(op string) {
	if m != nil {
		m.UnknownOperator.WithLabelValues(op).Inc()
	}
}

// IncrementRuleWrite records an admin write.
func (m *Metrics) IncrementRuleWrite(action string) {
	if m != nil {
		m.RuleWrites.WithLabelValues(action).Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
