// Package state implements the orchestrator's canonical state: per-agent
// runtime records, the globally-merged reveal mask, the ticket table, and
// the latest-value-wins world-state broadcast. It is the concurrent,
// multi-reader/multi-writer heart of the orchestrator, shared by reference
// across the control-RPC service, the bulk-data service, the agent
// manager, and the tasking hook.
package state

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/holographic-c2/simulation/internal/broadcast"
	"github.com/holographic-c2/simulation/internal/pointset"
	"github.com/holographic-c2/simulation/internal/simproto"
)

// SchemaVersion is the wire schema version stamped on every message this
// orchestrator produces.
const SchemaVersion uint32 = 1

// RegisterMetadata is returned by RegisterAgent alongside the new agent id.
type RegisterMetadata struct {
	ServerTimeMs                int64
	RecommendedReportIntervalMs uint32
	MaxReportBytes              uint32
	SchemaVersion               uint32
}

// WorldStateSnapshot is the tuple broadcast to viewers.
type WorldStateSnapshot struct {
	TimestampMs      int64
	Agents           []*simproto.AgentState
	RevealMaskTicket Ticket
	MapCoverageRatio float64
	SchemaVersion    uint32
}

// Logger is the ambient logging contract every component in this module
// depends on, matching the teacher's structured key-value Logger interface
// (coreengine/grpc/server.go, coreengine/agents/agent.go).
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

// CanonicalState is the orchestrator's authoritative data and the sole
// owner of the agent map, reveal mask, ticket table, and broadcast
// channel's sender.
type CanonicalState struct {
	universeSize uint64
	logger       Logger

	nextAgentID atomic.Uint64

	agents  *shardedAgents
	pending *pendingTable

	revealMaskMu sync.RWMutex
	revealMask   *pointset.PointSet

	tickets *ticketTable

	broadcastCh *broadcast.Latest[WorldStateSnapshot]
}

// New constructs a CanonicalState for a scene with the given universe size
// (total point count). logger may be nil, in which case log calls are
// dropped.
func New(universeSize uint64, logger Logger) *CanonicalState {
	if logger == nil {
		logger = noopLogger{}
	}
	return &CanonicalState{
		universeSize: universeSize,
		logger:       logger,
		agents:       newShardedAgents(),
		pending:      newPendingTable(),
		revealMask:   pointset.New(),
		tickets:      newTicketTable(),
		broadcastCh:  broadcast.NewLatest[WorldStateSnapshot](),
	}
}

// UniverseSize returns the fixed total point count of the scene.
func (cs *CanonicalState) UniverseSize() uint64 {
	return cs.universeSize
}

// BeginPendingRegistration records a spawned child under sid, to be
// consumed by the matching RegisterAgent call. Called by the agent manager
// immediately after spawning a child process.
func (cs *CanonicalState) BeginPendingRegistration(sid SessionID, proc ProcessHandle) {
	cs.pending.insert(&PendingRegistration{
		SessionID: sid,
		Process:   proc,
		SpawnedAt: time.Now(),
	})
}

// RegisterAgent consumes the pending registration under sid (moving the
// process handle into the new runtime record) and mints a monotonic agent
// id. Returns ErrSessionNotFound if no such pending entry exists. Under N
// concurrent callers racing the same sid, exactly one succeeds.
func (cs *CanonicalState) RegisterAgent(sid SessionID) (AgentID, RegisterMetadata, error) {
	reg, ok := cs.pending.takeForRegistration(sid)
	if !ok {
		return 0, RegisterMetadata{}, ErrSessionNotFound
	}

	id := AgentID(cs.nextAgentID.Add(1))
	cs.agents.store(&AgentRuntimeRecord{
		AgentID:  id,
		LastSeen: time.Now(),
		Process:  reg.Process,
	})

	cs.logger.Info("agent_registered", "agent_id", uint64(id), "session_id", string(sid))

	return id, RegisterMetadata{
		ServerTimeMs:                time.Now().UnixMilli(),
		RecommendedReportIntervalMs: 500,
		MaxReportBytes:              1 << 20,
		SchemaVersion:               SchemaVersion,
	}, nil
}

// UpdateAgentState in-place updates the runtime record for id, preserving
// the process handle, and sets last_seen to now. If id is unknown the
// update is logged and dropped: it never creates an implicit record. This
// closes the known defect in the source where unsolicited reports could
// resurrect dead agents.
func (cs *CanonicalState) UpdateAgentState(id AgentID, newState *simproto.AgentState) {
	if !cs.agents.updateState(id, newState, time.Now()) {
		cs.logger.Warn("update_dropped_unknown_agent", "agent_id", uint64(id))
	}
}

// Touch marks id as seen now without changing its reported state, used
// when a report carries no state payload. Unknown ids are logged and dropped
// like UpdateAgentState.
func (cs *CanonicalState) Touch(id AgentID) {
	if !cs.agents.touch(id, time.Now()) {
		cs.logger.Warn("touch_dropped_unknown_agent", "agent_id", uint64(id))
	}
}

// AgentExists reports whether id names a currently active agent.
func (cs *CanonicalState) AgentExists(id AgentID) bool {
	_, ok := cs.agents.get(id)
	return ok
}

// Agents returns every currently active agent's last reported state. It
// satisfies internal/tasking.View structurally, so CanonicalState can be
// passed directly to a Hook.
func (cs *CanonicalState) Agents() []*simproto.AgentState {
	return cs.agents.snapshot()
}

// MergePoints deserializes data into a point set, unions it into the
// global reveal mask under an exclusive write, and returns the cardinality
// increase. Zero is a valid, successful return (scenario C). Returns a
// *pointset.ParseError for malformed input; never panics on attacker-
// controlled bytes. Ids at or beyond the universe size are rejected,
// resolving spec.md testable property 10.
func (cs *CanonicalState) MergePoints(data []byte) (uint64, error) {
	if len(data) == 0 {
		return 0, nil
	}

	discovered, err := pointset.Deserialize(data)
	if err != nil {
		return 0, err
	}
	if max, ok := discovered.MaxID(); ok && uint64(max) >= cs.universeSize {
		return 0, &pointset.ParseError{Reason: "point id exceeds universe size"}
	}

	cs.revealMaskMu.Lock()
	before := cs.revealMask.Len()
	cs.revealMask.UnionInPlace(discovered)
	after := cs.revealMask.Len()
	cs.revealMaskMu.Unlock()

	return after - before, nil
}

// MintTicket captures a shared, immutable snapshot of the reveal mask and
// inserts it into the bounded ticket table, evicting the oldest entry if
// necessary. Lock order: reveal_mask is read-locked, released, then
// ticket_table is locked independently -- no operation in this package
// holds both at once.
func (cs *CanonicalState) MintTicket() (Ticket, error) {
	cs.revealMaskMu.RLock()
	snapshot := cs.revealMask.Clone()
	cs.revealMaskMu.RUnlock()

	return cs.tickets.mint(snapshot)
}

// LookupTicket is a read-only lookup into the ticket table.
func (cs *CanonicalState) LookupTicket(t Ticket) (*pointset.PointSet, error) {
	snap, ok := cs.tickets.lookup(t)
	if !ok {
		return nil, ErrTicketNotFound
	}
	return snap, nil
}

// CoverageRatio returns |reveal mask| / universe, in [0, 1].
func (cs *CanonicalState) CoverageRatio() float64 {
	cs.revealMaskMu.RLock()
	n := cs.revealMask.Len()
	cs.revealMaskMu.RUnlock()
	if cs.universeSize == 0 {
		return 0
	}
	return float64(n) / float64(cs.universeSize)
}

// Broadcast builds a fresh snapshot (enumerating agents, minting a ticket)
// and publishes it on the latest-value-wins broadcast channel. Ticket
// minting happens after any merge whose effect it should expose, so a
// viewer resolving the broadcast ticket always sees content at least as
// recent as the triggering report (spec.md §5 ordering guarantee).
func (cs *CanonicalState) Broadcast() (WorldStateSnapshot, error) {
	ticket, err := cs.MintTicket()
	if err != nil {
		return WorldStateSnapshot{}, err
	}

	snap := WorldStateSnapshot{
		TimestampMs:      time.Now().UnixMilli(),
		Agents:           cs.agents.snapshot(),
		RevealMaskTicket: ticket,
		MapCoverageRatio: cs.CoverageRatio(),
		SchemaVersion:    SchemaVersion,
	}
	cs.broadcastCh.Publish(snap)
	return snap, nil
}

// SubscribeLatest returns the most recently broadcast snapshot, if any.
func (cs *CanonicalState) SubscribeLatest() (WorldStateSnapshot, bool) {
	return cs.broadcastCh.Load()
}

// WaitNext blocks until the next broadcast after this call began, or until
// done is closed, then returns that snapshot. Used by SubscribeWorldState
// to coalesce: a slow viewer never sees more than the latest snapshot per
// call.
func (cs *CanonicalState) WaitNext(done <-chan struct{}) (WorldStateSnapshot, bool) {
	return cs.broadcastCh.Wait(done)
}

// RemoveAgent deletes id from the active map and returns its last runtime
// record, for the health checker and manual termination paths.
func (cs *CanonicalState) RemoveAgent(id AgentID) (*AgentRuntimeRecord, bool) {
	return cs.agents.remove(id)
}

// StaleAgentIDs returns every active agent whose last report predates the
// cutoff.
func (cs *CanonicalState) StaleAgentIDs(cutoff time.Time) []AgentID {
	return cs.agents.staleIDs(cutoff)
}

// ExitedAgentIDs returns every active agent whose process handle reports it
// has already exited, independent of how recently it last reported state.
func (cs *CanonicalState) ExitedAgentIDs() []AgentID {
	return cs.agents.exitedIDs()
}

// StalePendingRegistrations returns and removes every pending registration
// spawned before cutoff.
func (cs *CanonicalState) StalePendingRegistrations(cutoff time.Time) []*PendingRegistration {
	return cs.pending.takeStale(cutoff)
}

// AllPendingRegistrations returns a snapshot of every still-pending
// registration, used on orchestrator shutdown.
func (cs *CanonicalState) AllPendingRegistrations() []*PendingRegistration {
	return cs.pending.all()
}

// AllActiveProcessHandles returns the process handle of every active
// agent that has one, for orchestrator shutdown.
func (cs *CanonicalState) AllActiveProcessHandles() []ProcessHandle {
	return cs.agents.allProcessHandles()
}

// ActiveAgentCount returns the number of currently active agents.
func (cs *CanonicalState) ActiveAgentCount() int {
	return cs.agents.count()
}

// ResetSimulation clears the reveal mask and invalidates every outstanding
// ticket, then broadcasts a fresh (empty) snapshot. Implements
// IssueCommand{ResetSimulation}.
func (cs *CanonicalState) ResetSimulation() (WorldStateSnapshot, error) {
	cs.revealMaskMu.Lock()
	cs.revealMask = pointset.New()
	cs.revealMaskMu.Unlock()

	cs.tickets.reset()

	return cs.Broadcast()
}
