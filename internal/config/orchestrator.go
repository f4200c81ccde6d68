// Package config defines the configuration surfaces for every binary in
// this module. Process wiring (addresses, paths, ports) follows
// original_source/crates/sim_agent/src/config.rs's flag-plus-environment-
// variable idiom, generalized from Rust's clap derive to Go's flag package.
// Open-ended tuning knobs (perception noise, tasking thresholds) follow
// coreengine/config/execution_config.go's JSON-tagged struct-with-defaults
// shape instead, since those are the kind of values an operator edits in a
// config file rather than passes on a command line.
package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// OrchestratorConfig configures the orchestrator binary.
type OrchestratorConfig struct {
	ControlListenAddr  string
	BulkDataListenAddr string
	MetricsListenAddr  string
	TracingCollectorAddr string

	PointCloudPath string
	UniverseSize   uint64

	NumAgents                  int
	AgentBinaryPath            string
	AgentMetricsPortRangeStart int
	HealthCheckInterval        time.Duration
	AgentHealthTimeout         time.Duration
}

// ParseOrchestratorConfig builds an OrchestratorConfig from flags, falling
// back to environment variables for any flag left at its zero value, then
// to a hard default. Mirrors config.rs's per-field `env = "..."` attribute:
// every setting here is reachable by either surface.
func ParseOrchestratorConfig(args []string) (*OrchestratorConfig, error) {
	fs := flag.NewFlagSet("orchestrator", flag.ContinueOnError)

	controlAddr := fs.String("control-addr", "", "control-plane gRPC listen address")
	bulkAddr := fs.String("bulk-data-addr", "", "bulk-data gRPC listen address")
	metricsAddr := fs.String("metrics-addr", "", "Prometheus metrics listen address")
	tracingAddr := fs.String("tracing-collector-addr", "", "OTLP/gRPC trace collector address")
	pointCloudPath := fs.String("point-cloud-path", "", "path to the .hypc point cloud file")
	universeSize := fs.Uint64("universe-size", 0, "total point count of the scene")
	numAgents := fs.Int("num-agents", 0, "number of agent processes to spawn")
	agentBinary := fs.String("agent-binary-path", "", "path to the sim_agent-equivalent binary")
	metricsPortStart := fs.Int("agent-metrics-port-start", 0, "first port assigned to spawned agents' metrics servers")
	healthInterval := fs.Duration("health-check-interval", 0, "interval between staleness sweeps")
	healthTimeout := fs.Duration("agent-health-timeout", 0, "time since last_seen before an agent is considered stale")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &OrchestratorConfig{
		ControlListenAddr:          firstNonEmpty(*controlAddr, os.Getenv("ORCHESTRATOR_CONTROL_LISTEN_ADDR"), ":7100"),
		BulkDataListenAddr:         firstNonEmpty(*bulkAddr, os.Getenv("ORCHESTRATOR_BULK_DATA_LISTEN_ADDR"), ":7101"),
		MetricsListenAddr:          firstNonEmpty(*metricsAddr, os.Getenv("ORCHESTRATOR_METRICS_LISTEN_ADDR"), ":7102"),
		TracingCollectorAddr:       firstNonEmpty(*tracingAddr, os.Getenv("ORCHESTRATOR_TRACING_COLLECTOR_ADDR"), ""),
		PointCloudPath:             firstNonEmpty(*pointCloudPath, os.Getenv("POINT_CLOUD_PATH"), ""),
		UniverseSize:               firstNonZeroUint64(*universeSize, envUint64("UNIVERSE_SIZE"), 0),
		NumAgents:                  firstNonZeroInt(*numAgents, envInt("NUM_AGENTS"), 4),
		AgentBinaryPath:            firstNonEmpty(*agentBinary, os.Getenv("AGENT_BINARY_PATH"), "./sim_agent"),
		AgentMetricsPortRangeStart: firstNonZeroInt(*metricsPortStart, envInt("AGENT_METRICS_PORT_RANGE_START"), 9100),
		HealthCheckInterval:        firstNonZeroDuration(*healthInterval, envDuration("HEALTH_CHECK_INTERVAL"), 2*time.Second),
		AgentHealthTimeout:         firstNonZeroDuration(*healthTimeout, envDuration("AGENT_HEALTH_TIMEOUT"), 10*time.Second),
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonZeroInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstNonZeroUint64(values ...uint64) uint64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstNonZeroDuration(values ...time.Duration) time.Duration {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func envInt(name string) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return 0
	}
	return v
}

func envUint64(name string) uint64 {
	v, err := strconv.ParseUint(os.Getenv(name), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func envDuration(name string) time.Duration {
	v, err := time.ParseDuration(os.Getenv(name))
	if err != nil {
		return 0
	}
	return v
}
