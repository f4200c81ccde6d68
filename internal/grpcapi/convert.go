package grpcapi

import (
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/holographic-c2/simulation/internal/pointset"
	"github.com/holographic-c2/simulation/internal/simproto"
	"github.com/holographic-c2/simulation/internal/state"
)

// translateError maps a domain error from internal/state or internal/
// pointset onto a gRPC status code, so handlers never leak a bare Go error
// string as an Unknown status. Grounded on commbus/errors.go's single
// translation-layer pattern: one place decides the wire-visible code, every
// handler just returns what this function gives back.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch err {
	case state.ErrSessionNotFound:
		return status.Error(codes.NotFound, err.Error())
	case state.ErrTicketNotFound:
		return status.Error(codes.NotFound, err.Error())
	case state.ErrUnknownAgent:
		return status.Error(codes.NotFound, err.Error())
	}
	if _, ok := err.(*pointset.ParseError); ok {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// snapshotToProto converts an internal WorldStateSnapshot into its wire
// representation. The ticket is carried opaquely as its raw 16 bytes; a
// viewer treats it as a bulk-data handle, never inspecting its contents.
func snapshotToProto(snap state.WorldStateSnapshot) *simproto.WorldStateSnapshot {
	ticket := snap.RevealMaskTicket
	return &simproto.WorldStateSnapshot{
		TimestampMs:      snap.TimestampMs,
		Agents:           snap.Agents,
		RevealMaskTicket: ticket[:],
		MapCoverageRatio: snap.MapCoverageRatio,
		SchemaVersion:    snap.SchemaVersion,
	}
}

// ticketFromWire reconstructs a state.Ticket from the raw bytes a client
// sent in a GetBytesRequest, rejecting anything but an exact 16-byte token.
func ticketFromWire(raw []byte) (state.Ticket, bool) {
	var t state.Ticket
	if len(raw) != len(t) {
		return state.Ticket{}, false
	}
	copy(t[:], raw)
	return t, true
}

// pointSetToSchemaContentType is the content-type string stamped on every
// SchemaFrame this service emits, naming the wire format DataFrame payloads
// carry.
const pointSetToSchemaContentType = "application/x-roaring"

func schemaFrameFor(version uint8) *simproto.SchemaFrame {
	return &simproto.SchemaFrame{
		FieldName:   "roaring_portable",
		ContentType: pointSetToSchemaContentType,
		Version:     strconv.Itoa(int(version)),
	}
}
