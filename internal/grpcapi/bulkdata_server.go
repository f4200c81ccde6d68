package grpcapi

import (
	"github.com/holographic-c2/simulation/internal/pointset"
	"github.com/holographic-c2/simulation/internal/simproto"
	"github.com/holographic-c2/simulation/internal/state"
)

// BulkDataServer implements simproto.BulkDataServer: resolving a ticket
// minted by a prior broadcast into the two-frame schema-then-data stream
// spec.md's bulk-data service describes.
type BulkDataServer struct {
	simproto.UnimplementedBulkDataServer

	state  *state.CanonicalState
	logger Logger
}

// NewBulkDataServer constructs a BulkDataServer. logger defaults to a no-op.
func NewBulkDataServer(cs *state.CanonicalState, logger Logger) *BulkDataServer {
	if logger == nil {
		logger = noopControlLogger{}
	}
	return &BulkDataServer{state: cs, logger: logger}
}

// GetBytes resolves req's ticket to an immutable point-set snapshot and
// streams it as a SchemaFrame followed by a single DataFrame. Unknown or
// expired tickets (evicted by the bounded ticket table's FIFO policy)
// return NotFound rather than an empty stream, so a viewer can distinguish
// "nothing new" from "ask again with a fresher ticket".
func (s *BulkDataServer) GetBytes(req *simproto.GetBytesRequest, stream simproto.BulkData_GetBytesServer) error {
	tk, ok := ticketFromWire(req.GetTicket())
	if !ok {
		return translateError(state.ErrTicketNotFound)
	}

	snap, err := s.state.LookupTicket(tk)
	if err != nil {
		return translateError(err)
	}

	payload, err := snap.Serialize()
	if err != nil {
		s.logger.Error("bulk_data_serialize_failed", "error", err.Error())
		return translateError(err)
	}

	if err := stream.Send(&simproto.BulkDataFrame{
		Frame: &simproto.BulkDataFrame_Schema{Schema: schemaFrameFor(pointset.WireVersion)},
	}); err != nil {
		return err
	}
	return stream.Send(&simproto.BulkDataFrame{
		Frame: &simproto.BulkDataFrame_Data{Data: &simproto.DataFrame{Payload: payload}},
	})
}
