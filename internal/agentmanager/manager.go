// Package agentmanager spawns agent processes, owns their handles until
// registration, and detects and cleans up failed or stale agents. Grounded
// on original_source/crates/sim_orchestrator/src/agent_manager.rs,
// restructured into Go's os/exec + goroutine idiom the way the teacher
// composes long-running subsystems in coreengine/kernel/kernel.go.
package agentmanager

import (
	"fmt"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/holographic-c2/simulation/internal/state"
)

// Logger is the shared structured-logging contract (see
// internal/state.Logger) duplicated per package per the teacher's own
// convention of a local Logger interface in every package that logs.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Config configures the agent manager, mirroring agent_manager.rs's
// AgentManagerConfig field-for-field.
type Config struct {
	NumAgents                  int
	AgentBinaryPath             string
	OrchestratorPublicGRPCAddr  string
	AgentMetricsPortRangeStart  int
	HealthCheckInterval         time.Duration
	AgentHealthTimeout          time.Duration
}

// Manager spawns and supervises agent processes against a shared
// CanonicalState.
type Manager struct {
	cfg    Config
	state  *state.CanonicalState
	logger Logger

	mu          sync.Mutex
	nextMetrics int

	shutdown chan struct{}
	wg       sync.WaitGroup
}

// New constructs a Manager. logger may be nil.
func New(cfg Config, cs *state.CanonicalState, logger Logger) *Manager {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Manager{
		cfg:         cfg,
		state:       cs,
		logger:      logger,
		nextMetrics: cfg.AgentMetricsPortRangeStart,
		shutdown:    make(chan struct{}),
	}
}

// Run spawns the configured number of agents and starts the health-check
// loop. It returns once all spawn attempts have been issued; the health
// loop continues running on its own goroutine until Shutdown is called.
func (m *Manager) Run() error {
	for i := 0; i < m.cfg.NumAgents; i++ {
		if err := m.spawnAgent(); err != nil {
			m.logger.Error("agent_spawn_failed", "index", i, "error", err.Error())
			return fmt.Errorf("agentmanager: spawn agent %d: %w", i, err)
		}
	}

	m.wg.Add(1)
	go m.healthCheckLoop()
	return nil
}

// spawnAgent launches one child process: it is given the orchestrator's
// address and a fresh session id via environment, and a pending
// registration entry is created in canonical state under that session id.
// The session moves through Spawning -> Pending -> Active/Dead as tracked
// by CanonicalState itself (pending table entry, then active agent record);
// LifecycleState names these states but this package no longer duplicates
// that bookkeeping per session, see lifecycle.go.
func (m *Manager) spawnAgent() error {
	sid := state.SessionID(uuid.NewString())

	m.mu.Lock()
	port := m.nextMetrics
	m.nextMetrics++
	m.mu.Unlock()

	cmd := exec.Command(m.cfg.AgentBinaryPath)
	cmd.Env = append(cmd.Env,
		"ORCHESTRATOR_PUBLIC_GRPC_ADDR="+m.cfg.OrchestratorPublicGRPCAddr,
		"AGENT_SESSION_ID="+string(sid),
		"AGENT_METRICS_PORT="+strconv.Itoa(port),
	)

	child, err := startChildProcess(cmd)
	if err != nil {
		return err
	}

	m.state.BeginPendingRegistration(sid, child)

	m.logger.Info("agent_spawned", "session_id", string(sid), "metrics_port", port)
	return nil
}

// healthCheckLoop periodically sweeps for exited or stale active agents
// and for pending registrations that timed out, terminating and removing
// each, then broadcasting once per batch.
func (m *Manager) healthCheckLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.cfg.HealthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.shutdown:
			return
		case <-ticker.C:
			m.sweepOnce()
		}
	}
}

// sweepOnce detects and removes every agent whose Active -> Dead transition
// is now due, by either of the two conditions the health check names:
// the child process has exited on its own, or last_seen predates the
// stale timeout. An agent caught by both is removed once.
func (m *Manager) sweepOnce() {
	removedAny := false

	seen := make(map[state.AgentID]bool)
	removeAndTerminate := func(id state.AgentID, reason string) {
		if seen[id] {
			return
		}
		seen[id] = true
		rec, ok := m.state.RemoveAgent(id)
		if !ok {
			return
		}
		if rec.Process != nil {
			rec.Process.Terminate()
		}
		m.logger.Warn(reason, "agent_id", uint64(id))
		removedAny = true
	}

	for _, id := range m.state.ExitedAgentIDs() {
		removeAndTerminate(id, "agent_removed_exited")
	}

	cutoff := time.Now().Add(-m.cfg.AgentHealthTimeout)
	for _, id := range m.state.StaleAgentIDs(cutoff) {
		removeAndTerminate(id, "agent_removed_stale")
	}

	for _, reg := range m.state.StalePendingRegistrations(cutoff) {
		if reg.Process != nil {
			reg.Process.Terminate()
		}
		m.logger.Warn("pending_registration_timed_out", "session_id", string(reg.SessionID))
	}

	if removedAny {
		if _, err := m.state.Broadcast(); err != nil {
			m.logger.Error("broadcast_after_removal_failed", "error", err.Error())
		}
	}
}

// Shutdown terminates every active and pending agent and stops the health
// loop. Child handles carry "kill on drop" semantics only in the sense
// that Terminate is unconditionally called here on every known handle;
// nothing in this package relies on process-exit-on-parent-exit behavior.
func (m *Manager) Shutdown() {
	close(m.shutdown)
	m.wg.Wait()

	for _, reg := range m.state.AllPendingRegistrations() {
		if reg.Process != nil {
			reg.Process.Terminate()
		}
	}
	for _, proc := range m.state.AllActiveProcessHandles() {
		proc.Terminate()
	}
}
