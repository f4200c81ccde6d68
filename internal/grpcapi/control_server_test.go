package grpcapi

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holographic-c2/simulation/internal/pointset"
	"github.com/holographic-c2/simulation/internal/simproto"
	"github.com/holographic-c2/simulation/internal/state"
)

type testControl struct {
	server *grpc.Server
	cs     *state.CanonicalState
	conn   *grpc.ClientConn
	client simproto.SimulationControlClient
}

func startTestControl(t *testing.T, universeSize uint64) *testControl {
	t.Helper()

	lis, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)

	cs := state.New(universeSize, nil)
	grpcServer := grpc.NewServer()
	simproto.RegisterSimulationControlServer(grpcServer, NewControlServer(cs, nil, nil))

	go func() {
		_ = grpcServer.Serve(lis)
	}()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	return &testControl{
		server: grpcServer,
		cs:     cs,
		conn:   conn,
		client: simproto.NewSimulationControlClient(conn),
	}
}

func (tc *testControl) stop() {
	tc.conn.Close()
	tc.server.GracefulStop()
}

func TestControlServer_RegisterUnknownSessionFails(t *testing.T) {
	tc := startTestControl(t, 1000)
	defer tc.stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := tc.client.Register(ctx, &simproto.RegisterRequest{SessionId: "no-such-session"})
	require.Error(t, err)
}

func TestControlServer_RegisterCompletesPendingHandoff(t *testing.T) {
	// Scenario A, register step: a pending session registers and gets an id.
	tc := startTestControl(t, 1000)
	defer tc.stop()

	tc.cs.BeginPendingRegistration("sess-a", nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	resp, err := tc.client.Register(ctx, &simproto.RegisterRequest{SessionId: "sess-a"})
	require.NoError(t, err)
	assert.NotZero(t, resp.AgentId)
	assert.Equal(t, state.SchemaVersion, resp.SchemaVersion)
}

func TestControlServer_ReportStateRejectsAgentIDChangeMidStream(t *testing.T) {
	// Testable property 7: a stream is bound to the first agent id it reports.
	tc := startTestControl(t, 1000)
	defer tc.stop()

	tc.cs.BeginPendingRegistration("sess-b1", nil)
	tc.cs.BeginPendingRegistration("sess-b2", nil)
	id1, _, err := tc.cs.RegisterAgent("sess-b1")
	require.NoError(t, err)
	id2, _, err := tc.cs.RegisterAgent("sess-b2")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	stream, err := tc.client.ReportState(ctx)
	require.NoError(t, err)

	require.NoError(t, stream.Send(&simproto.AgentReport{AgentId: uint64(id1)}))
	_, err = stream.Recv()
	require.NoError(t, err)

	require.NoError(t, stream.Send(&simproto.AgentReport{AgentId: uint64(id2)}))
	_, err = stream.Recv()
	require.Error(t, err)
}

func TestControlServer_ReportStateMergesPointsAndTriggersBroadcast(t *testing.T) {
	tc := startTestControl(t, 1000)
	defer tc.stop()

	tc.cs.BeginPendingRegistration("sess-c", nil)
	id, _, err := tc.cs.RegisterAgent("sess-c")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	stream, err := tc.client.ReportState(ctx)
	require.NoError(t, err)

	pts := pointset.FromIDs(1, 2, 3)
	payload, err := pts.Serialize()
	require.NoError(t, err)

	require.NoError(t, stream.Send(&simproto.AgentReport{
		AgentId:                    uint64(id),
		State:                      &simproto.AgentState{AgentId: uint64(id)},
		DiscoveredPointIdsPortable: payload,
	}))
	_, err = stream.Recv()
	require.NoError(t, err)

	snap, ok := tc.cs.SubscribeLatest()
	require.True(t, ok)
	assert.Len(t, snap.Agents, 1)
	assert.Greater(t, snap.MapCoverageRatio, 0.0)
}

func TestControlServer_ReportStateBroadcastsEvenWithoutNewDiscoveries(t *testing.T) {
	// Scenario A: a first report with empty discoveries still broadcasts,
	// with the reporting agent present and zero coverage. Scenario C: a
	// report that re-merges already-known points (merge-return 0) still
	// broadcasts, since the agent's reported state may have changed.
	tc := startTestControl(t, 1000)
	defer tc.stop()

	tc.cs.BeginPendingRegistration("sess-scenario-ac", nil)
	id, _, err := tc.cs.RegisterAgent("sess-scenario-ac")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	stream, err := tc.client.ReportState(ctx)
	require.NoError(t, err)

	// First report: state only, no discoveries at all.
	require.NoError(t, stream.Send(&simproto.AgentReport{
		AgentId: uint64(id),
		State:   &simproto.AgentState{AgentId: uint64(id)},
	}))
	_, err = stream.Recv()
	require.NoError(t, err)

	snap, ok := tc.cs.SubscribeLatest()
	require.True(t, ok)
	assert.Len(t, snap.Agents, 1)
	assert.Equal(t, 0.0, snap.MapCoverageRatio)

	// Second report: re-send points already merged into the reveal mask
	// directly below (merge-return 0), but still carrying state.
	pts := pointset.FromIDs(1, 2, 3)
	payload, err := pts.Serialize()
	require.NoError(t, err)
	_, err = tc.cs.MergePoints(payload)
	require.NoError(t, err)
	_, err = tc.cs.Broadcast()
	require.NoError(t, err)
	firstTicket, _ := tc.cs.SubscribeLatest()

	require.NoError(t, stream.Send(&simproto.AgentReport{
		AgentId:                    uint64(id),
		State:                      &simproto.AgentState{AgentId: uint64(id)},
		DiscoveredPointIdsPortable: payload,
	}))
	_, err = stream.Recv()
	require.NoError(t, err)

	secondTicket, ok := tc.cs.SubscribeLatest()
	require.True(t, ok)
	assert.NotEqual(t, firstTicket.RevealMaskTicket, secondTicket.RevealMaskTicket)
}

func TestControlServer_IssueCommandResetClearsCoverage(t *testing.T) {
	tc := startTestControl(t, 1000)
	defer tc.stop()

	_, err := tc.cs.MergePoints(mustSerializePoints(t, 5, 6, 7))
	require.NoError(t, err)
	require.Greater(t, tc.cs.CoverageRatio(), 0.0)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	resp, err := tc.client.IssueCommand(ctx, &simproto.IssueCommandRequest{
		Kind: simproto.CommandKind_COMMAND_KIND_RESET_SIMULATION,
	})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.Equal(t, 0.0, tc.cs.CoverageRatio())
}

func TestControlServer_SubscribeWorldStateSendsInitialSnapshot(t *testing.T) {
	tc := startTestControl(t, 1000)
	defer tc.stop()

	_, err := tc.cs.Broadcast()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	stream, err := tc.client.SubscribeWorldState(ctx, &simproto.SubscribeWorldStateRequest{IncludeInitialSnapshot: true})
	require.NoError(t, err)

	snap, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, state.SchemaVersion, snap.SchemaVersion)
}

func mustSerializePoints(t *testing.T, ids ...uint32) []byte {
	t.Helper()
	data, err := pointset.FromIDs(ids...).Serialize()
	require.NoError(t, err)
	return data
}
