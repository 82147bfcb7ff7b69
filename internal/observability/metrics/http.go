package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "brandboost"

// ContentSourceHeader is set by the generate handler to "ai" or "fallback".
// The middleware copies it into the content_source label.
const ContentSourceHeader = "X-Content-Source"

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge
	rejectedTotal   *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string, registry *prometheus.Registry) *HTTPServerMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &HTTPServerMetrics{
		registry: registry,
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, status and, for generate calls, content source.",
		}, []string{"service", "method", "path", "status", "content_source"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			// Generate calls wait on the provider for up to its 20s timeout.
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30},
		}, []string{"service", "method", "path"}),
		requestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "in_flight_requests",
			Help:        "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{"service": service},
		}),
		rejectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rejected_total",
			Help:      "Requests rejected by traffic control, by reason.",
		}, []string{"service", "reason"}),
	}
	registry.MustRegister(m.requestTotal, m.requestDuration, m.requestInFlight, m.rejectedTotal)
	return m
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		route := routeLabel(r.URL.Path)
		recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		source := recorder.Header().Get(ContentSourceHeader)
		if source == "" {
			source = "none"
		}
		m.requestTotal.WithLabelValues(service, r.Method, route, strconv.Itoa(recorder.statusCode), source).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// RecordRejection counts a request turned away by rate limiting or
// backpressure.
func (m *HTTPServerMetrics) RecordRejection(service, reason string) {
	m.rejectedTotal.WithLabelValues(service, reason).Inc()
}

var exactRoutes = map[string]struct{}{
	"/healthz":                         {},
	"/metrics":                         {},
	"/v1/products":                     {},
	"/v1/content/generate":             {},
	"/v1/content/export":               {},
	"/v1/stats":                        {},
	"/v1/about":                        {},
	"/v1/analytics/overview":           {},
	"/v1/analytics/time-savings":       {},
	"/v1/analytics/categories":         {},
	"/v1/analytics/tone-effectiveness": {},
	"/v1/analytics/insights":           {},
}

// routeLabel maps a request path to its route template. Unknown paths share
// one label so scanners cannot grow the series count.
func routeLabel(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/products/"):
		return "/v1/products/{product_id}"
	case strings.HasPrefix(path, "/v1/content/exports/"):
		return "/v1/content/exports/{filename}"
	}
	if _, ok := exactRoutes[path]; ok {
		return path
	}
	return "other"
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
