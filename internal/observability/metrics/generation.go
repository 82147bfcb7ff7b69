package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kirillkom/brandboost/internal/core/domain"
)

// GenerationMetrics records content generation outcomes. It satisfies
// ports.GenerationRecorder.
type GenerationMetrics struct {
	service  string
	registry *prometheus.Registry

	generationsTotal   *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	remoteFailures     *prometheus.CounterVec
	exportsTotal       *prometheus.CounterVec
	breakerState       *prometheus.GaugeVec
}

func NewGenerationMetrics(service string, registry *prometheus.Registry) *GenerationMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	generationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "generations_total",
			Help:      "Completed generations by content source.",
		},
		[]string{"service", "source"},
	)
	generationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "generation_duration_seconds",
			Help:      "Generation wall-clock duration in seconds by content source.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"service", "source"},
	)
	remoteFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "remote_failures_total",
			Help:      "Remote generation failures served with fallback copy, by reason.",
		},
		[]string{"service", "reason"},
	)
	exportsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "exports_total",
			Help:      "Export attempts by status.",
		},
		[]string{"service", "status"},
	)
	breakerState := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "circuit_breaker_open",
			Help:      "1 while the circuit breaker for an operation is open or half-open.",
		},
		[]string{"service", "operation"},
	)

	registry.MustRegister(generationsTotal, generationDuration, remoteFailures, exportsTotal, breakerState)

	return &GenerationMetrics{
		service:            service,
		registry:           registry,
		generationsTotal:   generationsTotal,
		generationDuration: generationDuration,
		remoteFailures:     remoteFailures,
		exportsTotal:       exportsTotal,
		breakerState:       breakerState,
	}
}

func (m *GenerationMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *GenerationMetrics) RecordGeneration(source domain.ContentSource, duration time.Duration) {
	m.generationsTotal.WithLabelValues(m.service, string(source)).Inc()
	m.generationDuration.WithLabelValues(m.service, string(source)).Observe(duration.Seconds())
}

func (m *GenerationMetrics) RecordRemoteFailure(reason domain.FailureReason) {
	if reason == "" {
		reason = domain.ReasonError
	}
	m.remoteFailures.WithLabelValues(m.service, string(reason)).Inc()
}

func (m *GenerationMetrics) RecordExport(ok bool) {
	status := "success"
	if !ok {
		status = "error"
	}
	m.exportsTotal.WithLabelValues(m.service, status).Inc()
}

// RecordBreakerState matches resilience.Config.OnStateChange.
func (m *GenerationMetrics) RecordBreakerState(operation, _, to string) {
	value := 1.0
	if to == "closed" {
		value = 0
	}
	m.breakerState.WithLabelValues(m.service, operation).Set(value)
}
