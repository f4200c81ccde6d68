package state

import (
	"sync"
	"time"
)

// SessionID is the opaque, one-time token binding a spawned child process
// to its eventual registration RPC. Textual form of a 128-bit value.
type SessionID string

// PendingRegistration is owned by the agent manager between spawn and
// registration; it lives for at most one health-timeout period.
type PendingRegistration struct {
	SessionID SessionID
	Process   ProcessHandle
	SpawnedAt time.Time
}

// pendingTable holds pending registrations keyed by session id. It is
// disjoint from shardedAgents by session id at every instant: a session id
// exists in exactly one of the two containers, and the move between them
// (in takeForRegistration) is atomic under this table's mutex, satisfying
// spec.md's registration-handoff invariant (§4.2 invariant 2, §8 property 5).
type pendingTable struct {
	mu      sync.Mutex
	entries map[SessionID]*PendingRegistration
}

func newPendingTable() *pendingTable {
	return &pendingTable{entries: make(map[SessionID]*PendingRegistration)}
}

func (p *pendingTable) insert(reg *PendingRegistration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries[reg.SessionID] = reg
}

// takeForRegistration atomically removes and returns the pending entry for
// sid, if any. Under N concurrent callers racing the same sid, exactly one
// observes ok=true.
func (p *pendingTable) takeForRegistration(sid SessionID) (*PendingRegistration, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	reg, ok := p.entries[sid]
	if ok {
		delete(p.entries, sid)
	}
	return reg, ok
}

// takeStale removes and returns every pending entry spawned before cutoff,
// for the health checker's pending-timeout sweep.
func (p *pendingTable) takeStale(cutoff time.Time) []*PendingRegistration {
	p.mu.Lock()
	defer p.mu.Unlock()
	var stale []*PendingRegistration
	for sid, reg := range p.entries {
		if reg.SpawnedAt.Before(cutoff) {
			stale = append(stale, reg)
			delete(p.entries, sid)
		}
	}
	return stale
}

func (p *pendingTable) all() []*PendingRegistration {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*PendingRegistration, 0, len(p.entries))
	for _, reg := range p.entries {
		out = append(out, reg)
	}
	return out
}
