// Package metrics exposes the storefront's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "flashe"

// Outcome labels for quotes and orders.
const (
	QuotePriced      = "priced"
	QuotePlaceholder = "placeholder"

	OrderPrepared          = "prepared"
	OrderValidationFailed  = "validation_failed"
	OrderRegionUnavailable = "region_unavailable"

	CatalogLoadSuccess = "success"
	CatalogLoadFailure = "failure"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuotesTotal counts quotes by outcome.
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Total number of price quotes",
		},
		[]string{"outcome"},
	)

	// QuoteDuration tracks how long a quote takes to compute.
	QuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_duration_seconds",
			Help:      "Quote computation duration in seconds",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// OrdersTotal counts order submissions by outcome.
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_total",
			Help:      "Total number of order submissions",
		},
		[]string{"outcome"},
	)

	// CatalogLoadsTotal counts catalog load attempts per source.
	CatalogLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_loads_total",
			Help:      "Catalog load attempts by source and result",
		},
		[]string{"source", "result"},
	)

	// CircuitBreakerState is 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuote records one computed quote.
func RecordQuote(duration time.Duration, outcome string) {
	QuoteDuration.Observe(duration.Seconds())
	QuotesTotal.WithLabelValues(outcome).Inc()
}

// RecordOrder records one order submission.
func RecordOrder(outcome string) {
	OrdersTotal.WithLabelValues(outcome).Inc()
}

// RecordCatalogLoad records one attempt to read the catalog from a source.
func RecordCatalogLoad(source, result string) {
	CatalogLoadsTotal.WithLabelValues(source, result).Inc()
}

// SetCircuitBreakerState publishes the state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
