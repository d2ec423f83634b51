package core

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	apiRequests        *prometheus.CounterVec
	aggregationSeconds *prometheus.HistogramVec
}

// NewMetrics uses its own registry so multiple cores (tests) never collide
// on collector registration.
func NewMetrics(namespace, subsystem string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "api_requests_total",
			Help:      "Count of handled api requests.",
		}, []string{"path", "method", "status"}),
		aggregationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "aggregation_duration_seconds",
			Help:      "Time spent computing journal aggregations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	m.registry.MustRegister(m.apiRequests, m.aggregationSeconds)
	return m
}

func (m *Metrics) CountAPIRequest(path, method, status string) {
	m.apiRequests.WithLabelValues(path, method, status).Inc()
}

func (m *Metrics) ObserveAggregation(operation string, start time.Time) {
	m.aggregationSeconds.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
