package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/dklebine/productioncalculator/internal/circuitbreaker"
)

// healthCheckTimeout bounds each dependency check of the readiness probe.
const healthCheckTimeout = 2 * time.Second

const (
	readyStatusOK       = "ok"
	readyStatusDegraded = "degraded"
)

// HealthChecker probes one dependency of the service.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// ReadinessReport is the body of /readyz. Checks maps a dependency to "ok" or
// its error, and a breaker name plus "_circuit" to the breaker state.
type ReadinessReport struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checkers map[string]HealthChecker
	breakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a handler with no dependencies registered.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers: map[string]HealthChecker{},
		breakers: map[string]*circuitbreaker.CircuitBreaker{},
	}
}

// RegisterChecker adds a dependency to the readiness probe, e.g. MongoDB or Redis.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker makes readiness fail while cb is open.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.breakers[name] = cb
}

// Register mounts /healthz and /readyz on router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK if the service is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": readyStatusOK})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Returns OK when every registered dependency answers and no circuit breaker is open.
// @Tags        Health
// @Produce     json
// @Success     200 {object} ReadinessReport "Service is ready"
// @Failure     503 {object} ReadinessReport "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	report := h.check(c.Request.Context())
	status := http.StatusOK
	if report.Status != readyStatusOK {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}

// check probes every dependency concurrently, each under its own deadline.
func (h *HealthHandler) check(ctx context.Context) ReadinessReport {
	report := ReadinessReport{Status: readyStatusOK, Checks: map[string]string{}}
	var mu sync.Mutex
	record := func(name, result string, healthy bool) {
		mu.Lock()
		defer mu.Unlock()
		report.Checks[name] = result
		if !healthy {
			report.Status = readyStatusDegraded
		}
	}

	var g errgroup.Group
	for name, checker := range h.checkers {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
			defer cancel()
			if err := checker.Check(checkCtx); err != nil {
				record(name, err.Error(), false)
				return nil
			}
			record(name, readyStatusOK, true)
			return nil
		})
	}
	_ = g.Wait()

	for name, cb := range h.breakers {
		stats := cb.GetStats()
		record(name+"_circuit", stats.State, stats.IsHealthy)
	}

	if len(report.Checks) == 0 {
		report.Checks["service"] = readyStatusOK
	}
	return report
}
