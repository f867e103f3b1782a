package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/department-service/internal/config"
	"github.com/spec-kit/department-service/internal/observability"
	"github.com/spec-kit/department-service/internal/persistence"
)

// HealthHandler responds to liveness and readiness probes and exposes the
// in-process metrics snapshot.
type HealthHandler struct {
	app       config.AppConfig
	startedAt time.Time
	postgres  *persistence.Postgres
	redis     *persistence.Redis
	metrics   *observability.Metrics
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(app config.AppConfig, postgres *persistence.Postgres, redis *persistence.Redis, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{
		app:       app,
		startedAt: time.Now(),
		postgres:  postgres,
		redis:     redis,
		metrics:   metrics,
	}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.app.Name,
		"version": h.app.Version,
		"env":     h.app.Env,
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// Ready reports service readiness by checking dependencies. Components that
// were never configured count as ready: the in-memory store and the disabled
// cache serve traffic without them.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if h.postgres.Handle() == nil {
		depStatus["postgres"] = "not configured"
	} else if err := h.postgres.Ping(ctx); err != nil {
		depStatus["postgres"] = err.Error()
		ready = false
	} else {
		depStatus["postgres"] = "ok"
	}

	if h.redis.Handle() == nil {
		depStatus["redis"] = "not configured"
	} else if err := h.redis.Ping(ctx); err != nil {
		depStatus["redis"] = err.Error()
		ready = false
	} else {
		depStatus["redis"] = "ok"
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": depStatus,
		},
	})
}

// Metrics reports request and error counters collected since startup.
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	requests, errs, latencyMS := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"service":    h.app.Name,
		"requests":   requests,
		"errors":     errs,
		"latency_ms": latencyMS,
	})
}
