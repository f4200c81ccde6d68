package state

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/holographic-c2/simulation/internal/simproto"
)

// AgentID is the orchestrator-minted, monotonically increasing identifier
// for a registered agent. Stable for the agent's lifetime; never reused.
type AgentID uint64

// ProcessHandle is the subset of child-process control the agent manager
// needs to keep alongside a runtime record, kept as an interface so tests
// can supply a fake without spawning real children. On removal from the
// active map, the owner calls Terminate as the handle's "destructor" (spec
// §9's process handle ownership rule); it never blocks.
type ProcessHandle interface {
	// Terminate sends a graceful-then-forceful shutdown request
	// asynchronously; it does not wait for the child to exit.
	Terminate()

	// HasExited reports, without blocking, whether the underlying process
	// has already exited on its own. The health checker polls this to
	// detect Active -> Dead transitions caused by a crashed or killed
	// child, independent of the last-seen staleness check.
	HasExited() bool
}

// AgentRuntimeRecord is the orchestrator's authoritative record for one
// registered agent: its last reported state, when it was last heard from,
// and (if this orchestrator spawned it) a handle to the child process.
type AgentRuntimeRecord struct {
	AgentID  AgentID
	State    *simproto.AgentState
	LastSeen time.Time
	Process  ProcessHandle
}

// shardCount is the number of independent lock domains in the agent map.
// Single-key updates to different agents are uncontended across shards;
// this is the sharded generalization of the teacher's single
// sync.RWMutex-guarded session map (coreengine/kernel/orchestrator.go),
// required here because the spec calls for per-shard locking explicitly.
const shardCount = 16

type agentShard struct {
	mu      sync.RWMutex
	records map[AgentID]*AgentRuntimeRecord
}

// shardedAgents is a concurrent map keyed by AgentID with per-shard
// locking.
type shardedAgents struct {
	shards [shardCount]*agentShard
}

func newShardedAgents() *shardedAgents {
	s := &shardedAgents{}
	for i := range s.shards {
		s.shards[i] = &agentShard{records: make(map[AgentID]*AgentRuntimeRecord)}
	}
	return s
}

func (s *shardedAgents) shardFor(id AgentID) *agentShard {
	h := fnv.New64a()
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(id >> (8 * i))
	}
	_, _ = h.Write(buf[:])
	return s.shards[h.Sum64()%shardCount]
}

func (s *shardedAgents) store(rec *AgentRuntimeRecord) {
	sh := s.shardFor(rec.AgentID)
	sh.mu.Lock()
	sh.records[rec.AgentID] = rec
	sh.mu.Unlock()
}

func (s *shardedAgents) get(id AgentID) (*AgentRuntimeRecord, bool) {
	sh := s.shardFor(id)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	rec, ok := sh.records[id]
	return rec, ok
}

// updateState mutates the record's reported state and last-seen timestamp
// in place, preserving the process handle. Returns false if id is unknown
// so the caller can apply the "log and drop" policy without creating an
// implicit record.
func (s *shardedAgents) updateState(id AgentID, newState *simproto.AgentState, now time.Time) bool {
	sh := s.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	rec, ok := sh.records[id]
	if !ok {
		return false
	}
	rec.State = newState
	rec.LastSeen = now
	return true
}

// touch updates only last-seen, used when a report carries no state.
func (s *shardedAgents) touch(id AgentID, now time.Time) bool {
	sh := s.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	rec, ok := sh.records[id]
	if !ok {
		return false
	}
	rec.LastSeen = now
	return true
}

func (s *shardedAgents) remove(id AgentID) (*AgentRuntimeRecord, bool) {
	sh := s.shardFor(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	rec, ok := sh.records[id]
	if ok {
		delete(sh.records, id)
	}
	return rec, ok
}

// snapshot returns a copy of every active runtime record's reported state,
// used to build a WorldStateSnapshot. It never returns the records
// themselves, only their State field, so callers cannot accidentally
// retain a reference into orchestrator-owned memory across a lock release.
func (s *shardedAgents) snapshot() []*simproto.AgentState {
	var out []*simproto.AgentState
	for _, sh := range s.shards {
		sh.mu.RLock()
		for _, rec := range sh.records {
			if rec.State != nil {
				out = append(out, rec.State)
			}
		}
		sh.mu.RUnlock()
	}
	return out
}

// allProcessHandles returns the process handle of every active agent that
// has one, for orchestrator shutdown.
func (s *shardedAgents) allProcessHandles() []ProcessHandle {
	var out []ProcessHandle
	for _, sh := range s.shards {
		sh.mu.RLock()
		for _, rec := range sh.records {
			if rec.Process != nil {
				out = append(out, rec.Process)
			}
		}
		sh.mu.RUnlock()
	}
	return out
}

// staleIDs returns the ids of every active agent whose LastSeen predates
// the cutoff, for the health checker's stale-detection pass.
func (s *shardedAgents) staleIDs(cutoff time.Time) []AgentID {
	var out []AgentID
	for _, sh := range s.shards {
		sh.mu.RLock()
		for id, rec := range sh.records {
			if rec.LastSeen.Before(cutoff) {
				out = append(out, id)
			}
		}
		sh.mu.RUnlock()
	}
	return out
}

// exitedIDs returns the ids of every active agent whose process handle
// reports it has already exited, for the health checker's exit-detection
// pass. Agents with no process handle (e.g. in tests) are never reported.
func (s *shardedAgents) exitedIDs() []AgentID {
	var out []AgentID
	for _, sh := range s.shards {
		sh.mu.RLock()
		for id, rec := range sh.records {
			if rec.Process != nil && rec.Process.HasExited() {
				out = append(out, id)
			}
		}
		sh.mu.RUnlock()
	}
	return out
}

// count returns the number of active agents.
func (s *shardedAgents) count() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.records)
		sh.mu.RUnlock()
	}
	return n
}
