package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	toolInvocations  *prometheus.CounterVec
	upstreamRequests *prometheus.CounterVec
}

// New registers the collectors on reg, or on a fresh registry when nil.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: reg,
		toolInvocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobsmcp",
			Name:      "tool_invocations_total",
			Help:      "MCP tool calls by tool name.",
		}, []string{"tool"}),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobsmcp",
			Name:      "upstream_requests_total",
			Help:      "Adzuna requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
	}

	reg.MustRegister(m.toolInvocations, m.upstreamRequests)
	return m
}

// ToolInvoked counts one call of the named MCP tool.
func (m *Metrics) ToolInvoked(tool string) {
	if m == nil {
		return
	}
	m.toolInvocations.WithLabelValues(tool).Inc()
}

// UpstreamRequest counts one upstream call and its outcome.
func (m *Metrics) UpstreamRequest(endpoint string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
