package state

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holographic-c2/simulation/internal/pointset"
)

type fakeProcess struct{ terminated bool }

func (f *fakeProcess) Terminate()      { f.terminated = true }
func (f *fakeProcess) HasExited() bool { return false }

func registerOneAgent(t *testing.T, cs *CanonicalState, sid SessionID) AgentID {
	t.Helper()
	cs.BeginPendingRegistration(sid, &fakeProcess{})
	id, _, err := cs.RegisterAgent(sid)
	require.NoError(t, err)
	return id
}

func TestRegisterAgentRequiresPendingEntry(t *testing.T) {
	cs := New(100, nil)
	_, _, err := cs.RegisterAgent("no-such-session")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegisterAgentHandoffAtomicity(t *testing.T) {
	// Property 5: under N concurrent Register(sid) attempts against one
	// pending entry, exactly one succeeds.
	cs := New(100, nil)
	const sid = SessionID("race-session")
	cs.BeginPendingRegistration(sid, &fakeProcess{})

	const n = 32
	var wg sync.WaitGroup
	successes := make(chan AgentID, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if id, _, err := cs.RegisterAgent(sid); err == nil {
				successes <- id
			}
		}()
	}
	wg.Wait()
	close(successes)

	count := 0
	for range successes {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestAgentIDMonotonicity(t *testing.T) {
	cs := New(100, nil)
	var prev AgentID
	for i := 0; i < 10; i++ {
		id := registerOneAgent(t, cs, SessionID(time.Now().Format(time.RFC3339Nano)+string(rune(i))))
		assert.Greater(t, uint64(id), uint64(prev))
		prev = id
	}
}

func TestUpdateAgentStateDropsUnknownAgent(t *testing.T) {
	cs := New(100, nil)
	// No panic, no implicit record created.
	cs.UpdateAgentState(AgentID(9999), nil)
	assert.False(t, cs.AgentExists(AgentID(9999)))
}

func TestMergePointsMonotoneAndIdempotent(t *testing.T) {
	cs := New(100, nil)

	a := pointset.FromIDs(7, 42)
	ab, err := a.Serialize()
	require.NoError(t, err)

	n, err := cs.MergePoints(ab)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)
	assert.InDelta(t, 0.02, cs.CoverageRatio(), 1e-9)

	// Scenario C: re-merging the same points returns 0 but cardinality is
	// unchanged (monotone, idempotent).
	n, err = cs.MergePoints(ab)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)
	assert.InDelta(t, 0.02, cs.CoverageRatio(), 1e-9)
}

func TestMergePointsRejectsIDsBeyondUniverse(t *testing.T) {
	cs := New(100, nil)
	oversized := pointset.FromIDs(7, 500)
	data, err := oversized.Serialize()
	require.NoError(t, err)

	_, err = cs.MergePoints(data)
	require.Error(t, err)
}

func TestTwoAgentUnion(t *testing.T) {
	// Scenario D.
	cs := New(100, nil)

	aBytes, err := pointset.FromIDs(1, 2, 3).Serialize()
	require.NoError(t, err)
	bBytes, err := pointset.FromIDs(3, 4, 5).Serialize()
	require.NoError(t, err)

	_, err = cs.MergePoints(aBytes)
	require.NoError(t, err)
	_, err = cs.MergePoints(bBytes)
	require.NoError(t, err)

	assert.InDelta(t, 0.05, cs.CoverageRatio(), 1e-9)

	ticket, err := cs.MintTicket()
	require.NoError(t, err)
	snap, err := cs.LookupTicket(ticket)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint32{1, 2, 3, 4, 5}, snap.ToSlice())
}

func TestTicketImmutabilityAndEviction(t *testing.T) {
	cs := New(100, nil)
	_, err := cs.MergePoints(mustSerialize(t, 1, 2, 3))
	require.NoError(t, err)

	ticket, err := cs.MintTicket()
	require.NoError(t, err)

	snap1, err := cs.LookupTicket(ticket)
	require.NoError(t, err)
	snap2, err := cs.LookupTicket(ticket)
	require.NoError(t, err)
	assert.ElementsMatch(t, snap1.ToSlice(), snap2.ToSlice())

	// Further merges must not retroactively change an already-minted
	// ticket's snapshot.
	_, err = cs.MergePoints(mustSerialize(t, 99))
	require.NoError(t, err)
	snap3, err := cs.LookupTicket(ticket)
	require.NoError(t, err)
	assert.ElementsMatch(t, snap1.ToSlice(), snap3.ToSlice())

	// Minting a full table's worth of newer tickets FIFO-evicts this one.
	for i := 0; i < ticketTableCapacity; i++ {
		_, err = cs.MintTicket()
		require.NoError(t, err)
	}
	_, err = cs.LookupTicket(ticket)
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestTicketConsistencyWithBroadcast(t *testing.T) {
	// Property 4: every broadcast snapshot's ticket resolves to a point
	// set whose cardinality equals coverage_ratio * universe_size.
	cs := New(100, nil)
	_, err := cs.MergePoints(mustSerialize(t, 1, 2, 3, 4, 5))
	require.NoError(t, err)

	snap, err := cs.Broadcast()
	require.NoError(t, err)

	resolved, err := cs.LookupTicket(snap.RevealMaskTicket)
	require.NoError(t, err)

	expected := int(snap.MapCoverageRatio*float64(cs.UniverseSize()) + 0.5)
	assert.Equal(t, expected, int(resolved.Len()))
}

func TestResetSimulationInvalidatesTickets(t *testing.T) {
	// Scenario F.
	cs := New(100, nil)
	ids := make([]uint32, 10)
	for i := range ids {
		ids[i] = uint32(i + 1)
	}
	data, err := pointset.FromIDs(ids...).Serialize()
	require.NoError(t, err)
	_, err = cs.MergePoints(data)
	require.NoError(t, err)

	ticket, err := cs.MintTicket()
	require.NoError(t, err)

	newSnap, err := cs.ResetSimulation()
	require.NoError(t, err)

	_, err = cs.LookupTicket(ticket)
	require.ErrorIs(t, err, ErrTicketNotFound)

	resolved, err := cs.LookupTicket(newSnap.RevealMaskTicket)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), resolved.Len())
}

func TestStaleAgentDetection(t *testing.T) {
	cs := New(100, nil)
	id := registerOneAgent(t, cs, "sess-1")

	cutoff := time.Now().Add(time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	stale := cs.StaleAgentIDs(cutoff)
	require.Len(t, stale, 1)
	assert.Equal(t, id, stale[0])
}

func TestBroadcastCoalescing(t *testing.T) {
	// Property 9: a slow poller observes only the latest snapshot.
	cs := New(100, nil)
	for i := 0; i < 5; i++ {
		_, err := cs.Broadcast()
		require.NoError(t, err)
	}
	latest, ok := cs.SubscribeLatest()
	require.True(t, ok)
	assert.NotNil(t, latest)
}

func mustSerialize(t *testing.T, ids ...uint32) []byte {
	t.Helper()
	data, err := pointset.FromIDs(ids...).Serialize()
	require.NoError(t, err)
	return data
}
