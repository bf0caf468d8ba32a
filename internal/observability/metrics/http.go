package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics exposes request-level prometheus instruments.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inflight prometheus.Gauge
}

// NewHTTPMetrics registers HTTP instruments on the default registerer.
func NewHTTPMetrics() *HTTPMetrics {
	return NewHTTPMetricsWith(prometheus.DefaultRegisterer)
}

// NewHTTPMetricsWith registers HTTP instruments on the given registerer.
func NewHTTPMetricsWith(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "barflow_http_requests_total",
			Help: "Count of HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "barflow_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "barflow_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.duration, m.inflight)
	}

	return m
}

// GinMiddleware records request counts and latencies.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		m.inflight.Inc()
		start := time.Now()
		c.Next()
		m.inflight.Dec()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}

		m.requests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
