// Package metrics provides Prometheus metrics collection for the cart service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CartMutationsTotal counts completed cart mutations by action.
	CartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Total number of cart mutations",
		},
		[]string{"action"},
	)

	// SnapshotFailuresTotal counts snapshot storage failures by operation.
	// These never fail the mutation that triggered them.
	SnapshotFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_snapshot_failures_total",
			Help: "Total number of failed cart snapshot operations",
		},
		[]string{"operation"},
	)

	// CheckoutsTotal counts checkout attempts by status.
	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_checkouts_total",
			Help: "Total number of checkout attempts",
		},
		[]string{"status"},
	)

	// CheckoutDuration tracks the order submission round trip.
	CheckoutDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cart_checkout_duration_seconds",
			Help:    "Checkout order submission duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// CheckoutAmount tracks the order total handed to the order API, in BDT.
	CheckoutAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cart_checkout_amount_bdt",
			Help:    "Submitted order totals in BDT",
			Buckets: []float64{100, 250, 500, 1000, 2500, 5000, 10000},
		},
	)

	// SessionCacheOperationsTotal tracks session cache operations.
	SessionCacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_session_cache_operations_total",
			Help: "Total number of cart session cache operations",
		},
		[]string{"operation", "result"},
	)

	// ActiveSessions tracks the number of live cart sessions held in memory.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_active_sessions",
			Help: "Number of cart sessions held in memory",
		},
	)

	// ActivityEntriesTotal tracks the activity recorder outcome per entry.
	ActivityEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_activity_entries_total",
			Help: "Total number of cart activity entries by outcome",
		},
		[]string{"result"},
	)

	// CircuitBreakerState exposes each breaker's state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cart_circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
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
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCartMutation counts one completed cart mutation.
func RecordCartMutation(action string) {
	CartMutationsTotal.WithLabelValues(action).Inc()
}

// RecordSnapshotFailure counts one failed snapshot operation.
func RecordSnapshotFailure(operation string) {
	SnapshotFailuresTotal.WithLabelValues(operation).Inc()
}

// RecordCheckout records metrics for a checkout attempt.
// amount is only observed for successful submissions.
func RecordCheckout(duration time.Duration, status string, amount float64) {
	CheckoutDuration.Observe(duration.Seconds())
	CheckoutsTotal.WithLabelValues(status).Inc()
	if status == "success" {
		CheckoutAmount.Observe(amount)
	}
}

// RecordSessionCacheOperation records metrics for a session cache operation.
func RecordSessionCacheOperation(operation, result string) {
	SessionCacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateActiveSessions sets the live session gauge.
func UpdateActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}

// RecordActivityEntry records the outcome of one activity entry.
func RecordActivityEntry(result string) {
	ActivityEntriesTotal.WithLabelValues(result).Inc()
}

// RecordCircuitBreakerState sets the state gauge for the named breaker.
func RecordCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
