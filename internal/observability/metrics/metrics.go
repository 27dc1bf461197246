package metrics

import "github.com/prometheus/client_golang/prometheus"

// DialogMetrics exposes counters for the appointment dialog.
type DialogMetrics struct {
	turnsTotal         *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
}

func NewDialogMetrics(reg prometheus.Registerer) *DialogMetrics {
	m := &DialogMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lexbot",
			Subsystem: "dialog",
			Name:      "turns_total",
			Help:      "Total dialog turns by resulting directive and invocation source",
		}, []string{"directive", "source"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lexbot",
			Subsystem: "dialog",
			Name:      "validation_failures_total",
			Help:      "Total slot validation failures by violated slot",
		}, []string{"slot"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.validationFailures)
	return m
}

func (m *DialogMetrics) ObserveTurn(directive, source string) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(directive, source).Inc()
}

func (m *DialogMetrics) ObserveValidationFailure(slot string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(slot).Inc()
}
