// Command agent is the external agent process spec.md §4.7 contracts
// against: it registers with an orchestrator, opens a ReportState stream,
// ticks its local state machine at a fixed rate, and reports accumulated
// discoveries on a cadence the orchestrator recommends at registration.
// Grounded on original_source/crates/sim_agent/src/main.rs, translated from
// a single async task into three goroutines (tick, report-sender,
// response-receiver) joined by a bounded channel.
package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/holographic-c2/simulation/internal/agentruntime"
	"github.com/holographic-c2/simulation/internal/config"
	"github.com/holographic-c2/simulation/internal/logging"
	"github.com/holographic-c2/simulation/internal/perception"
	"github.com/holographic-c2/simulation/internal/simproto"
)

// tickPeriod is 100ms, the 10 Hz rate spec.md §4.7 recommends.
const tickPeriod = 100 * time.Millisecond

func main() {
	logger := logging.New("agent")

	cfg, err := config.ParseAgentConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("agent: parse config: %v", err)
	}
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}

	if cfg.MetricsListenAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.MetricsListenAddr, mux); err != nil {
				logger.Error("metrics_server_failed", "error", err.Error())
			}
		}()
	}

	conn, err := grpc.NewClient(cfg.OrchestratorGRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("agent: dial orchestrator: %v", err)
	}
	defer conn.Close()

	client := simproto.NewSimulationControlClient(conn)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	regResp, err := client.Register(ctx, &simproto.RegisterRequest{
		SessionId:       cfg.SessionID,
		SoftwareVersion: "0.1.0",
		HardwareProfile: "cpu-fallback",
	})
	if err != nil {
		log.Fatalf("agent: register: %v", err)
	}
	logger.Info("agent_registered", "agent_id", regResp.GetAgentId(), "session_id", cfg.SessionID)

	reportInterval := time.Duration(regResp.GetRecommendedReportIntervalMs()) * time.Millisecond
	if reportInterval <= 0 {
		reportInterval = 500 * time.Millisecond
	}

	stream, err := client.ReportState(ctx)
	if err != nil {
		log.Fatalf("agent: open report stream: %v", err)
	}

	rt := agentruntime.New(regResp.GetAgentId(), perception.NewGridPerceiver(8, 0.1))

	// Report channel: bounded per spec.md §5; full means drop the oldest
	// queued report rather than block the report loop.
	reportCh := make(chan *simproto.AgentReport, 32)

	go tickLoop(ctx, rt, logger)
	go reportLoop(ctx, rt, regResp.GetAgentId(), reportInterval, reportCh)
	go senderLoop(ctx, stream, reportCh, logger)
	receiverLoop(stream, rt, logger)

	logger.Info("agent_shutting_down")
}

func tickLoop(ctx context.Context, rt *agentruntime.Runtime, logger logging.Logger) {
	ticker := time.NewTicker(tickPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := rt.Tick(tickPeriod); err != nil {
				logger.Warn("perception_failed", "error", err.Error())
			}
		}
	}
}

func reportLoop(ctx context.Context, rt *agentruntime.Runtime, agentID uint64, interval time.Duration, out chan<- *simproto.AgentReport) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			state, payload, err := rt.SnapshotAndClear()
			if err != nil {
				continue
			}
			report := &simproto.AgentReport{
				AgentId:                    agentID,
				TimestampMs:                time.Now().UnixMilli(),
				State:                      state,
				DiscoveredPointIdsPortable: payload,
			}
			select {
			case out <- report:
			default:
				// Channel full: drop the oldest queued report and enqueue
				// this one, per spec.md's resource-exhausted policy.
				select {
				case <-out:
				default:
				}
				select {
				case out <- report:
				default:
				}
			}
		}
	}
}

func senderLoop(ctx context.Context, stream simproto.SimulationControl_ReportStateClient, in <-chan *simproto.AgentReport, logger logging.Logger) {
	for {
		select {
		case <-ctx.Done():
			_ = stream.CloseSend()
			return
		case report := <-in:
			if err := stream.Send(report); err != nil {
				logger.Error("report_send_failed", "error", err.Error())
				return
			}
		}
	}
}

func receiverLoop(stream simproto.SimulationControl_ReportStateClient, rt *agentruntime.Runtime, logger logging.Logger) {
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			logger.Error("report_recv_failed", "error", err.Error())
			return
		}
		if task := resp.GetAssignedTask(); task != nil {
			logger.Info("task_assigned", "kind", int32(task.GetKind()))
			rt.SetTask(task)
		}
	}
}
