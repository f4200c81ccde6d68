package state

import (
	"crypto/rand"
	"sync"

	"github.com/holographic-c2/simulation/internal/pointset"
)

// Ticket is an opaque, unforgeable 128-bit token referencing an immutable
// reveal-mask snapshot.
type Ticket [16]byte

func newTicket() (Ticket, error) {
	var t Ticket
	if _, err := rand.Read(t[:]); err != nil {
		return Ticket{}, err
	}
	return t, nil
}

// ticketTableCapacity bounds the ticket table; the oldest ticket is
// FIFO-evicted once the bound is reached. This is the suggested bound from
// spec.md §5, resolving the Open Question the source left unbounded.
const ticketTableCapacity = 1024

// ticketTable maps tickets to immutable, reference-counted snapshots with
// bounded size and FIFO eviction. Guarded by its own RWMutex; callers that
// must also touch the reveal mask acquire it first, per the module-wide
// lock order reveal_mask -> ticket_table.
type ticketTable struct {
	mu       sync.RWMutex
	entries  map[Ticket]*pointset.PointSet
	order    []Ticket // FIFO order of insertion, oldest first
}

func newTicketTable() *ticketTable {
	return &ticketTable{entries: make(map[Ticket]*pointset.PointSet)}
}

// mint inserts a new ticket pointing at snapshot, evicting the oldest entry
// first if the table is already at capacity.
func (t *ticketTable) mint(snapshot *pointset.PointSet) (Ticket, error) {
	tk, err := newTicket()
	if err != nil {
		return Ticket{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for len(t.order) >= ticketTableCapacity {
		oldest := t.order[0]
		t.order = t.order[1:]
		delete(t.entries, oldest)
	}

	t.entries[tk] = snapshot
	t.order = append(t.order, tk)
	return tk, nil
}

func (t *ticketTable) lookup(tk Ticket) (*pointset.PointSet, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	snap, ok := t.entries[tk]
	return snap, ok
}

// reset discards every ticket, used by IssueCommand{ResetSimulation}.
func (t *ticketTable) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[Ticket]*pointset.PointSet)
	t.order = nil
}
