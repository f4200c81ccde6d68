// Command orchestrator runs the control-plane process spec.md §4 names: it
// owns canonical state, spawns and supervises agent processes, and serves
// the SimulationControl and BulkData gRPC services. Grounded on
// cmd/main.go's graceful-shutdown wiring style, generalized from one
// kernel service to this module's state/agentmanager/grpcapi stack.
package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"

	"github.com/holographic-c2/simulation/internal/agentmanager"
	"github.com/holographic-c2/simulation/internal/config"
	"github.com/holographic-c2/simulation/internal/grpcapi"
	"github.com/holographic-c2/simulation/internal/logging"
	"github.com/holographic-c2/simulation/internal/observability"
	"github.com/holographic-c2/simulation/internal/simproto"
	"github.com/holographic-c2/simulation/internal/state"
	"github.com/holographic-c2/simulation/internal/tasking"
)

func main() {
	logger := logging.New("orchestrator")

	cfg, err := config.ParseOrchestratorConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("orchestrator: parse config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := observability.InitTracer("orchestrator", cfg.TracingCollectorAddr)
	if err != nil {
		log.Fatalf("orchestrator: init tracer: %v", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracer_shutdown_failed", "error", err.Error())
		}
	}()

	cs := state.New(cfg.UniverseSize, logger)

	mgr := agentmanager.New(agentmanager.Config{
		NumAgents:                  cfg.NumAgents,
		AgentBinaryPath:            cfg.AgentBinaryPath,
		OrchestratorPublicGRPCAddr: cfg.ControlListenAddr,
		AgentMetricsPortRangeStart: cfg.AgentMetricsPortRangeStart,
		HealthCheckInterval:        cfg.HealthCheckInterval,
		AgentHealthTimeout:         cfg.AgentHealthTimeout,
	}, cs, logger)

	if cfg.MetricsListenAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.MetricsListenAddr, mux); err != nil {
				logger.Error("metrics_server_failed", "error", err.Error())
			}
		}()
	}

	controlLis, err := net.Listen("tcp", cfg.ControlListenAddr)
	if err != nil {
		log.Fatalf("orchestrator: listen control: %v", err)
	}
	var bulkLis net.Listener
	if cfg.BulkDataListenAddr == cfg.ControlListenAddr {
		bulkLis = controlLis
	} else {
		bulkLis, err = net.Listen("tcp", cfg.BulkDataListenAddr)
		if err != nil {
			log.Fatalf("orchestrator: listen bulk data: %v", err)
		}
	}

	grpcServer := grpc.NewServer(grpcapi.ServerOptions(logger)...)
	simproto.RegisterSimulationControlServer(grpcServer, grpcapi.NewControlServer(cs, tasking.IdentityHook, logger))
	simproto.RegisterBulkDataServer(grpcServer, grpcapi.NewBulkDataServer(cs, logger))

	go func() {
		logger.Info("grpc_server_listening", "control_addr", cfg.ControlListenAddr, "bulk_data_addr", cfg.BulkDataListenAddr)
		if err := grpcServer.Serve(controlLis); err != nil {
			logger.Error("grpc_server_failed", "error", err.Error())
		}
	}()
	if bulkLis != controlLis {
		go func() {
			if err := grpcServer.Serve(bulkLis); err != nil {
				logger.Error("bulk_data_server_failed", "error", err.Error())
			}
		}()
	}

	if err := mgr.Run(); err != nil {
		log.Fatalf("orchestrator: start agent manager: %v", err)
	}

	<-ctx.Done()
	logger.Info("shutting_down")

	mgr.Shutdown()
	grpcServer.GracefulStop()
}
