// Command simclient is a thin operator CLI against a running orchestrator:
// it can watch world-state snapshots, fetch the revealed-points bitmap a
// snapshot's ticket names, and issue control commands. Not named in
// spec.md directly; added as the viewer process's natural command-line
// sibling, in cmd/envelope/main.go's thin-cmd-dispatches-to-logic style.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/holographic-c2/simulation/internal/pointset"
	"github.com/holographic-c2/simulation/internal/simproto"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	addr := flag.String("addr", "localhost:7100", "orchestrator control-plane gRPC address")
	cmd := os.Args[1]
	if err := flag.CommandLine.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("simclient: dial %s: %v", *addr, err)
	}
	defer conn.Close()

	client := simproto.NewSimulationControlClient(conn)

	switch cmd {
	case "watch":
		runWatch(ctx, client)
	case "reset":
		runIssueCommand(ctx, client, simproto.CommandKind_COMMAND_KIND_RESET_SIMULATION)
	case "start-survey":
		runIssueCommand(ctx, client, simproto.CommandKind_COMMAND_KIND_START_SURVEY)
	case "fetch-bytes":
		runFetchBytes(ctx, conn, flag.Args())
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: simclient watch|reset|start-survey|fetch-bytes [-addr host:port] [<ticket-hex>]")
}

func runWatch(ctx context.Context, client simproto.SimulationControlClient) {
	stream, err := client.SubscribeWorldState(ctx, &simproto.SubscribeWorldStateRequest{IncludeInitialSnapshot: true, SchemaVersion: 1})
	if err != nil {
		log.Fatalf("simclient: subscribe: %v", err)
	}
	for {
		snap, err := stream.Recv()
		if err == io.EOF || ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Fatalf("simclient: recv: %v", err)
		}
		fmt.Printf("t=%d agents=%d coverage=%.4f ticket=%x\n",
			snap.GetTimestampMs(), len(snap.GetAgents()), snap.GetMapCoverageRatio(), snap.GetRevealMaskTicket())
	}
}

func runIssueCommand(ctx context.Context, client simproto.SimulationControlClient, kind simproto.CommandKind) {
	resp, err := client.IssueCommand(ctx, &simproto.IssueCommandRequest{Kind: kind})
	if err != nil {
		log.Fatalf("simclient: issue command: %v", err)
	}
	if !resp.Accepted {
		log.Fatalf("simclient: command rejected: %s", resp.Error)
	}
	fmt.Println("accepted")
}

func runFetchBytes(ctx context.Context, conn *grpc.ClientConn, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: simclient fetch-bytes <16-byte-ticket-hex>")
		os.Exit(2)
	}
	ticket, err := hex.DecodeString(args[0])
	if err != nil {
		log.Fatalf("simclient: decode ticket: %v", err)
	}
	if len(ticket) != 16 {
		log.Fatalf("simclient: ticket must be 32 hex characters (16 bytes), got %d", len(ticket))
	}

	client := simproto.NewBulkDataClient(conn)
	stream, err := client.GetBytes(ctx, &simproto.GetBytesRequest{Ticket: ticket})
	if err != nil {
		log.Fatalf("simclient: get bytes: %v", err)
	}

	var payload []byte
	for {
		frame, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("simclient: recv frame: %v", err)
		}
		if schema := frame.GetSchema(); schema != nil {
			fmt.Fprintf(os.Stderr, "schema: field=%s content_type=%s version=%s\n", schema.GetFieldName(), schema.GetContentType(), schema.GetVersion())
		}
		if data := frame.GetData(); data != nil {
			payload = data.GetPayload()
		}
	}

	revealed, err := pointset.Deserialize(payload)
	if err != nil {
		log.Fatalf("simclient: parse bitmap: %v", err)
	}
	fmt.Printf("revealed points: %d\n", revealed.Len())
}
