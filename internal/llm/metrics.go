package llm

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/KirkDiggler/interfacing/internal/errors"
)

// Metrics holds the generation client collectors
type Metrics struct {
	requests         *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	promptTokens     *prometheus.HistogramVec
	completionTokens *prometheus.HistogramVec
}

// NewMetrics registers the client metrics with reg; nil skips registration
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interfacing_llm_requests_total",
				Help: "Total number of requests to the generation backend.",
			},
			[]string{"provider", "model", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "interfacing_llm_request_duration_seconds",
				Help:    "Histogram of generation request durations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "model"},
		),
		promptTokens: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "interfacing_llm_prompt_tokens",
				Help:    "Histogram of prompt token counts.",
				Buckets: prometheus.LinearBuckets(250, 250, 12),
			},
			[]string{"provider", "model"},
		),
		completionTokens: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "interfacing_llm_completion_tokens",
				Help:    "Histogram of completion token counts.",
				Buckets: prometheus.LinearBuckets(50, 50, 20),
			},
			[]string{"provider", "model"},
		),
	}
}

func (m *Metrics) observe(p Provider, model string, d time.Duration, resp *Response, err error) {
	status := "success"
	switch {
	case err != nil:
		status = "error"
		if errors.IsDeadlineExceeded(err) {
			status = "timeout"
		}
	case resp == nil || resp.Text == "":
		status = "empty"
	}

	m.requests.WithLabelValues(string(p), model, status).Inc()
	m.duration.WithLabelValues(string(p), model).Observe(d.Seconds())

	if resp != nil && resp.TotalTokens > 0 {
		m.promptTokens.WithLabelValues(string(p), model).Observe(float64(resp.PromptTokens))
		m.completionTokens.WithLabelValues(string(p), model).Observe(float64(resp.CompletionTokens))
	}
}
