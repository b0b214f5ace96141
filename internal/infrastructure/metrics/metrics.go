package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "reservation_gateway"

// Collector holds the gateway's Prometheus metrics on its own registry.
//
// A nil *Collector is valid and records nothing, so callers never need to
// guard metric calls.
type Collector struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	operations       *prometheus.CounterVec
	conflicts        *prometheus.CounterVec
}

// NewCollector registers the gateway metrics. If registry is nil a new one is created.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		upstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "erp",
			Name:      "requests_total",
			Help:      "ERP calls by endpoint and outcome (HTTP status code, \"transport\" or \"rate_limited\").",
		}, []string{"endpoint", "code"}),
		upstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "erp",
			Name:      "request_duration_seconds",
			Help:      "ERP call latency.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"endpoint"}),
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Gateway operations by name and result.",
		}, []string{"operation", "result"}),
		conflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conflicts_total",
			Help:      "Reserve attempts that found the unit held by another transition, by actual status.",
		}, []string{"actual_status"}),
	}
}

// ObserveUpstream records one ERP call. statusCode 0 means the call never got a response.
func (c *Collector) ObserveUpstream(endpoint string, statusCode int, elapsed time.Duration) {
	if c == nil {
		return
	}
	code := "transport"
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}
	c.upstreamRequests.WithLabelValues(endpoint, code).Inc()
	c.upstreamDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveLimiterAbort counts a call abandoned while waiting for the rate limiter.
// No latency is recorded since the ERP was never contacted.
func (c *Collector) ObserveLimiterAbort(endpoint string) {
	if c == nil {
		return
	}
	c.upstreamRequests.WithLabelValues(endpoint, "rate_limited").Inc()
}

func (c *Collector) ObserveOperation(operation, result string) {
	if c == nil {
		return
	}
	c.operations.WithLabelValues(operation, result).Inc()
}

func (c *Collector) ObserveConflict(actualStatus string) {
	if c == nil {
		return
	}
	c.conflicts.WithLabelValues(actualStatus).Inc()
}

func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
