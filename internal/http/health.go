package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cart-service/internal/circuitbreaker"
)

// Pinger is a dependency that can report its reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checkers        map[string]Pinger
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
	timeout         time.Duration
}

// NewHealthHandler creates a HealthHandler with no dependencies registered.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]Pinger),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
		timeout:         2 * time.Second,
	}
}

// RegisterChecker adds a dependency to the readiness probe.
func (h *HealthHandler) RegisterChecker(name string, p Pinger) {
	h.checkers[name] = p
}

// RegisterCircuitBreaker adds a circuit breaker to the readiness probe.
func (h *HealthHandler) RegisterCircuitBreaker(cb *circuitbreaker.CircuitBreaker) {
	h.circuitBreakers[cb.Name()] = cb
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
//
// The snapshot store being down does not lose carts in memory, but new
// sessions would start empty, so the instance reports itself degraded.
//
// @Summary     Readiness probe
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is degraded"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]interface{})

	for name, checker := range h.checkers {
		if err := checker.Ping(ctx); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks[name] = "ok"
		}
	}

	names := make([]string, 0, len(h.circuitBreakers))
	for name := range h.circuitBreakers {
		names = append(names, name)
	}
	sort.Strings(names)
	breakers := make([]circuitbreaker.Stats, 0, len(names))
	for _, name := range names {
		stats := h.circuitBreakers[name].GetStats()
		breakers = append(breakers, stats)
		if !stats.IsHealthy {
			status = http.StatusServiceUnavailable
		}
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	body := gin.H{
		"status": map[bool]string{true: "ok", false: "degraded"}[status == http.StatusOK],
		"checks": checks,
	}
	if len(breakers) > 0 {
		body["circuit_breakers"] = breakers
	}
	c.JSON(status, body)
}
