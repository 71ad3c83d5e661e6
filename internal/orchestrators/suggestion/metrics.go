package suggestion

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/KirkDiggler/interfacing/internal/entities"
)

// Generation outcomes
const (
	outcomeGenerated = "generated"
	outcomeCached    = "cached"
	outcomeFailed    = "failed"
)

// Metrics counts pipeline activity
type Metrics struct {
	generations        *prometheus.CounterVec
	parsedSuggestions  prometheus.Histogram
	executions         *prometheus.CounterVec
	narrationFallbacks prometheus.Counter
}

// NewMetrics registers the pipeline metrics with reg. A nil registerer
// creates collectors that are never exported.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		generations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interfacing_suggestion_generations_total",
				Help: "Suggestion generation rounds by outcome",
			},
			[]string{"mode", "outcome"},
		),
		parsedSuggestions: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "interfacing_suggestions_parsed",
				Help:    "Usable suggestions per model response",
				Buckets: prometheus.LinearBuckets(0, 1, 7),
			},
		),
		executions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interfacing_suggestion_executions_total",
				Help: "Executed suggestions by result type",
			},
			[]string{"result_type"},
		),
		narrationFallbacks: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "interfacing_narration_fallbacks_total",
				Help: "Executions narrated with the canned fallback text",
			},
		),
	}
}

func (m *Metrics) recordGeneration(mode, outcome string) {
	m.generations.WithLabelValues(mode, outcome).Inc()
}

func (m *Metrics) recordParsed(n int) {
	m.parsedSuggestions.Observe(float64(n))
}

func (m *Metrics) recordExecution(rt entities.ResultType) {
	m.executions.WithLabelValues(string(rt)).Inc()
}

func (m *Metrics) recordFallback() {
	m.narrationFallbacks.Inc()
}
