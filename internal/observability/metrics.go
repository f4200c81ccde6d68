// Package observability provides Prometheus metrics and OpenTelemetry
// tracing for the simulation binaries, adapted from
// coreengine/observability/{metrics,tracing}.go: same promauto-based
// registration style and the same InitTracer shape, retargeted at
// simulation concerns (agents, reveal coverage, bulk-data transfers)
// instead of pipeline/LLM concerns.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	agentsRegisteredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holo_c2_agents_registered_total",
			Help: "Total number of agents that completed registration",
		},
		[]string{"status"}, // status: success, rejected
	)

	agentsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "holo_c2_agents_active",
			Help: "Number of currently active agents",
		},
		nil,
	)

	pointsRevealedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holo_c2_points_revealed_total",
			Help: "Total number of newly revealed point IDs merged into the canonical reveal mask",
		},
		[]string{"agent"},
	)

	mapCoverageRatio = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "holo_c2_map_coverage_ratio",
			Help: "Current |reveal mask| / universe size ratio",
		},
		nil,
	)

	grpcRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holo_c2_grpc_requests_total",
			Help: "Total gRPC requests handled by the control-plane service",
		},
		[]string{"method", "code"},
	)

	bulkDataRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holo_c2_bulk_data_requests_total",
			Help: "Total bulk-data GetBytes requests",
		},
		[]string{"code"},
	)

	bulkDataBytesSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holo_c2_bulk_data_bytes_sent_total",
			Help: "Total bytes sent in DataFrame payloads",
		},
		nil,
	)
)

// RecordAgentRegistered records the outcome of a Register RPC.
func RecordAgentRegistered(status string) {
	agentsRegisteredTotal.WithLabelValues(status).Inc()
}

// SetAgentsActive sets the current active-agent gauge.
func SetAgentsActive(n int) {
	agentsActive.WithLabelValues().Set(float64(n))
}

// RecordPointsRevealed records a cardinality increase from one agent's report.
func RecordPointsRevealed(agentID string, delta uint64) {
	if delta == 0 {
		return
	}
	pointsRevealedTotal.WithLabelValues(agentID).Add(float64(delta))
}

// SetMapCoverageRatio sets the current coverage gauge.
func SetMapCoverageRatio(ratio float64) {
	mapCoverageRatio.WithLabelValues().Set(ratio)
}

// RecordGRPCRequest records one control-plane RPC's outcome.
func RecordGRPCRequest(method, code string) {
	grpcRequestsTotal.WithLabelValues(method, code).Inc()
}

// RecordBulkDataRequest records one GetBytes call's outcome.
func RecordBulkDataRequest(code string) {
	bulkDataRequestsTotal.WithLabelValues(code).Inc()
}

// RecordBulkDataBytesSent adds n to the cumulative bytes-sent counter.
func RecordBulkDataBytesSent(n int) {
	if n <= 0 {
		return
	}
	bulkDataBytesSentTotal.WithLabelValues().Add(float64(n))
}
