package grpcapi

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holographic-c2/simulation/internal/pointset"
	"github.com/holographic-c2/simulation/internal/simproto"
	"github.com/holographic-c2/simulation/internal/state"
)

type testBulkData struct {
	server *grpc.Server
	cs     *state.CanonicalState
	conn   *grpc.ClientConn
	client simproto.BulkDataClient
}

func startTestBulkData(t *testing.T, universeSize uint64) *testBulkData {
	t.Helper()

	lis, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)

	cs := state.New(universeSize, nil)
	grpcServer := grpc.NewServer()
	simproto.RegisterBulkDataServer(grpcServer, NewBulkDataServer(cs, nil))

	go func() {
		_ = grpcServer.Serve(lis)
	}()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	return &testBulkData{
		server: grpcServer,
		cs:     cs,
		conn:   conn,
		client: simproto.NewBulkDataClient(conn),
	}
}

func (tb *testBulkData) stop() {
	tb.conn.Close()
	tb.server.GracefulStop()
}

func TestBulkDataServer_GetBytesRejectsUnknownTicket(t *testing.T) {
	tb := startTestBulkData(t, 1000)
	defer tb.stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	stream, err := tb.client.GetBytes(ctx, &simproto.GetBytesRequest{Ticket: make([]byte, 16)})
	require.NoError(t, err)

	_, err = stream.Recv()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
}

func TestBulkDataServer_GetBytesReturnsSchemaThenData(t *testing.T) {
	tb := startTestBulkData(t, 1000)
	defer tb.stop()

	_, err := tb.cs.MergePoints(mustSerializeBulkPoints(t, 1, 2, 3))
	require.NoError(t, err)

	ticket, err := tb.cs.MintTicket()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	stream, err := tb.client.GetBytes(ctx, &simproto.GetBytesRequest{Ticket: ticket[:]})
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err)
	require.NotNil(t, first.GetSchema())

	second, err := stream.Recv()
	require.NoError(t, err)
	require.NotNil(t, second.GetData())

	restored, err := pointset.Deserialize(second.GetData().GetPayload())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), restored.Len())
}

func mustSerializeBulkPoints(t *testing.T, ids ...uint32) []byte {
	t.Helper()
	data, err := pointset.FromIDs(ids...).Serialize()
	require.NoError(t, err)
	return data
}
