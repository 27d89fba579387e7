package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/cardkit/card"
)

// Metrics contains the library-level metrics for the card pipeline.
// Instrumentation is opt-in: hosts that want it create a Metrics,
// register it with their Prometheus registry, and call the record
// helpers around parse, validate, and dispatch.
type Metrics struct {
	CardsParsed       *prometheus.CounterVec
	ParseWarnings     prometheus.Counter
	ParseDuration     prometheus.Histogram
	ValidationErrors  *prometheus.CounterVec
	ActionsDispatched *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance with all collectors constructed
// but not yet registered.
func NewMetrics() *Metrics {
	return &Metrics{
		CardsParsed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cardkit",
				Subsystem: "parse",
				Name:      "cards_total",
				Help:      "Total number of cards parsed, by outcome",
			},
			[]string{"status"},
		),

		ParseWarnings: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "cardkit",
				Subsystem: "parse",
				Name:      "warnings_total",
				Help:      "Total number of parse warnings (dropped nodes, unknown types)",
			},
		),

		ParseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "cardkit",
				Subsystem: "parse",
				Name:      "duration_seconds",
				Help:      "Card parse duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),

		ValidationErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cardkit",
				Subsystem: "validate",
				Name:      "errors_total",
				Help:      "Total number of validation diagnostics, by error code",
			},
			[]string{"code"},
		),

		ActionsDispatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cardkit",
				Subsystem: "dispatch",
				Name:      "actions_total",
				Help:      "Total number of actions dispatched, by action type",
			},
			[]string{"type"},
		),
	}
}

// Register registers every collector with the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.CardsParsed,
		m.ParseWarnings,
		m.ParseDuration,
		m.ValidationErrors,
		m.ActionsDispatched,
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// RecordParse records one parse attempt.
func (m *Metrics) RecordParse(result *card.ParseResult, err error, elapsed time.Duration) {
	status := "ok"
	switch {
	case err != nil:
		status = "error"
	case result != nil && len(result.Warnings) > 0:
		status = "degraded"
	}

	m.CardsParsed.WithLabelValues(status).Inc()
	m.ParseDuration.Observe(elapsed.Seconds())
	if result != nil {
		m.ParseWarnings.Add(float64(len(result.Warnings)))
	}
}

// RecordValidation records the diagnostics of one validation pass.
func (m *Metrics) RecordValidation(errs []card.ValidationError) {
	for _, ve := range errs {
		m.ValidationErrors.WithLabelValues(string(ve.Code)).Inc()
	}
}

// RecordDispatch records one dispatched action.
func (m *Metrics) RecordDispatch(a card.Action) {
	m.ActionsDispatched.WithLabelValues(a.TypeName()).Inc()
}
