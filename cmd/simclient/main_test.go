package main

import (
	"context"
	"io"
	"net"
	"os"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holographic-c2/simulation/internal/grpcapi"
	"github.com/holographic-c2/simulation/internal/pointset"
	"github.com/holographic-c2/simulation/internal/simproto"
	"github.com/holographic-c2/simulation/internal/state"
)

// startOrchestrator spins up real Control and BulkData services against a
// fresh CanonicalState, the same listener pattern internal/grpcapi's own
// tests use.
func startOrchestrator(t *testing.T, universeSize uint64) (*grpc.ClientConn, *state.CanonicalState, func()) {
	t.Helper()

	lis, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)

	cs := state.New(universeSize, nil)
	grpcServer := grpc.NewServer()
	simproto.RegisterSimulationControlServer(grpcServer, grpcapi.NewControlServer(cs, nil, nil))
	simproto.RegisterBulkDataServer(grpcServer, grpcapi.NewBulkDataServer(cs, nil))

	go func() { _ = grpcServer.Serve(lis) }()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	return conn, cs, func() {
		conn.Close()
		grpcServer.GracefulStop()
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestRunIssueCommandReset(t *testing.T) {
	conn, _, stop := startOrchestrator(t, 1000)
	defer stop()
	client := simproto.NewSimulationControlClient(conn)

	out := captureStdout(t, func() {
		runIssueCommand(context.Background(), client, simproto.CommandKind_COMMAND_KIND_RESET_SIMULATION)
	})
	assert.Contains(t, out, "accepted")
}

func TestRunWatchReceivesInitialSnapshot(t *testing.T) {
	conn, _, stop := startOrchestrator(t, 1000)
	defer stop()
	client := simproto.NewSimulationControlClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out := captureStdout(t, func() {
		runWatch(ctx, client)
	})
	assert.Contains(t, out, "coverage=")
}

func TestRunFetchBytesRoundTrips(t *testing.T) {
	conn, cs, stop := startOrchestrator(t, 1000)
	defer stop()

	ps := pointset.New()
	ps.Add(1)
	ps.Add(2)
	ps.Add(3)
	_, err := cs.MergePoints(mustSerialize(t, ps))
	require.NoError(t, err)
	snap, err := cs.Broadcast()
	require.NoError(t, err)

	ticketHex := hexEncode(snap.RevealMaskTicket[:])

	out := captureStdout(t, func() {
		runFetchBytes(context.Background(), conn, []string{ticketHex})
	})
	assert.Contains(t, out, "revealed points: 3")
}

func mustSerialize(t *testing.T, ps *pointset.PointSet) []byte {
	t.Helper()
	b, err := ps.Serialize()
	require.NoError(t, err)
	return b
}

func hexEncode(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = digits[c>>4]
		out[i*2+1] = digits[c&0xf]
	}
	return string(out)
}
