package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for profile option settings.
type Metrics struct {
	// Lists served from built-in defaults because the stored value was
	// missing or unreadable
	DefaultFallbacks *prometheus.CounterVec

	// Admin updates of the option lists
	Updates prometheus.Counter
}

// New creates a new Metrics instance with all settings metrics registered.
func New() *Metrics {
	return &Metrics{
		DefaultFallbacks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "surveygate_settings_default_fallbacks_total",
			Help: "Option lists served from defaults by key and reason",
		}, []string{"key", "reason"}), // reason: "missing", "invalid"

		Updates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "surveygate_settings_option_updates_total",
			Help: "Admin updates of the profile option lists",
		}),
	}
}

func (m *Metrics) IncrementDefaultFallback(key, reason string) {
	if m == nil {
		return
	}
	m.DefaultFallbacks.WithLabelValues(key, reason).Inc()
}

func (m *Metrics) IncrementUpdate() {
	if m == nil {
		return
	}
	m.Updates.Inc()
}
