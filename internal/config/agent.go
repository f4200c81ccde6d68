package config

import (
	"flag"
	"os"
)

// AgentConfig configures the agent binary, field-for-field grounded on
// original_source/crates/sim_agent/src/config.rs's Config struct.
type AgentConfig struct {
	// OrchestratorGRPCAddr is the control-plane address the agent connects
	// to register itself and report its state.
	OrchestratorGRPCAddr string
	// MetricsListenAddr is the agent's own Prometheus metrics address.
	MetricsListenAddr string
	// PointCloudPath is the filesystem path to the .hypc point cloud file
	// loaded at startup for perception.
	PointCloudPath string
	// SessionID is the session id the orchestrator assigned this process
	// when it was spawned (see internal/agentmanager.spawnAgent).
	SessionID string
}

// ParseAgentConfig builds an AgentConfig from flags, environment variables,
// then hard defaults, in that priority order -- matching
// ParseOrchestratorConfig's resolution order.
func ParseAgentConfig(args []string) (*AgentConfig, error) {
	fs := flag.NewFlagSet("agent", flag.ContinueOnError)

	orchestratorAddr := fs.String("orchestrator-grpc-addr", "", "control-plane gRPC address")
	metricsAddr := fs.String("metrics-listen-addr", "", "this agent's Prometheus metrics listen address")
	pointCloudPath := fs.String("point-cloud-path", "", "path to the .hypc point cloud file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &AgentConfig{
		OrchestratorGRPCAddr: firstNonEmpty(*orchestratorAddr, os.Getenv("ORCHESTRATOR_GRPC_ADDR"), os.Getenv("ORCHESTRATOR_PUBLIC_GRPC_ADDR"), "localhost:7100"),
		MetricsListenAddr:    firstNonEmpty(*metricsAddr, os.Getenv("AGENT_METRICS_LISTEN_ADDR"), metricsAddrFromPort(os.Getenv("AGENT_METRICS_PORT"))),
		PointCloudPath:       firstNonEmpty(*pointCloudPath, os.Getenv("POINT_CLOUD_PATH"), ""),
		SessionID:            os.Getenv("AGENT_SESSION_ID"),
	}, nil
}

func metricsAddrFromPort(port string) string {
	if port == "" {
		return ""
	}
	return ":" + port
}
