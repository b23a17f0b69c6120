package observability

import (
	"fmt"
	"io"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

// Metrics tracks request and error counters in Prometheus exposition
// format.
type Metrics struct {
	set *metrics.Set
}

// NewMetrics initializes an isolated metric set.
func NewMetrics() *Metrics {
	return &Metrics{set: metrics.NewSet()}
}

// RecordRequest counts a completed request and observes its duration.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.set.GetOrCreateCounter(fmt.Sprintf(
		`http_requests_total{path=%q,method=%q,status="%d"}`, path, method, status)).Inc()
	m.set.GetOrCreateSummary(fmt.Sprintf(
		`http_request_duration_seconds{path=%q,method=%q}`, path, method)).Update(duration.Seconds())
}

// RecordError counts a request that ended in a domain error.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.set.GetOrCreateCounter(fmt.Sprintf(
		`http_request_errors_total{path=%q,method=%q,code=%q}`, path, method, code)).Inc()
}

// WritePrometheus dumps the metric set for the /metrics endpoint.
func (m *Metrics) WritePrometheus(w io.Writer) {
	if m == nil {
		return
	}
	m.set.WritePrometheus(w)
}
