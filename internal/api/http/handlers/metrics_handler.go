package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-service/internal/observability"
)

// MetricsHandler exposes request counters in Prometheus format.
type MetricsHandler struct {
	metrics *observability.Metrics
}

// NewMetricsHandler returns a new handler instance.
func NewMetricsHandler(metrics *observability.Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Expose handles GET /metrics.
func (h *MetricsHandler) Expose(c *fiber.Ctx) error {
	var buf bytes.Buffer
	h.metrics.WritePrometheus(&buf)
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.Send(buf.Bytes())
}
