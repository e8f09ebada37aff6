package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/flashe-service/internal/circuitbreaker"
	"github.com/guttosm/flashe-service/internal/service"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether a dependency is usable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckerFunc adapts a function to HealthChecker.
type HealthCheckerFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	catalogs        service.CatalogProvider
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(catalogs service.CatalogProvider) *HealthHandler {
	return &HealthHandler{
		catalogs:        catalogs,
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// RegisterChecker adds a dependency check to the readiness probe.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker registers a circuit breaker for health monitoring.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.circuitBreakers[name] = cb
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router gin.IRoutes) {
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

// Readiness handles the readiness probe endpoint. The storefront keeps
// serving from its loaded catalog when MongoDB is down, so a failed
// dependency marks the service degraded, not unready, unless a circuit is
// open.
// @Summary     Readiness probe
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]any "Service is ready"
// @Failure     503 {object} map[string]any "A circuit breaker is open"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	degraded := false
	checks := make(map[string]any)

	for name, checker := range h.checkers {
		if err := checker.Check(ctx); err != nil {
			checks[name] = err.Error()
			degraded = true
		} else {
			checks[name] = "ok"
		}
	}

	breakers := make(map[string]circuitbreaker.Stats, len(h.circuitBreakers))
	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		breakers[name] = stats
		if !stats.Healthy {
			status = http.StatusServiceUnavailable
		}
	}

	state := "ok"
	switch {
	case status != http.StatusOK:
		state = "unavailable"
	case degraded:
		state = "degraded"
	}

	body := gin.H{"status": state, "checks": checks}
	if len(breakers) > 0 {
		body["circuit_breakers"] = breakers
	}
	if h.catalogs != nil {
		body["catalog_source"] = h.catalogs.Current().Source()
	}
	c.JSON(status, body)
}
