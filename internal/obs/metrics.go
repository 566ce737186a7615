// Package obs holds process-wide Prometheus metrics.
package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	adjudicationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pass_adjudications_total",
			Help: "Scan adjudications by action and outcome.",
		},
		[]string{"action", "outcome"},
	)

	sweepTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pass_sweep_transitions_total",
			Help: "Credential state transitions applied by the lifecycle sweeper.",
		},
		[]string{"transition"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, adjudicationsTotal, sweepTransitionsTotal)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveHTTP(method, path, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

func CountAdjudication(action, outcome string) {
	adjudicationsTotal.WithLabelValues(action, outcome).Inc()
}

func CountSweepTransitions(transition string, n int64) {
	if n > 0 {
		sweepTransitionsTotal.WithLabelValues(transition).Add(float64(n))
	}
}
