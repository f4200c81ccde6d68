package state

import "errors"

// Domain errors, checked with errors.Is at call sites and translated to
// gRPC status codes at the transport boundary (internal/grpcapi), matching
// the teacher's commbus/errors.go pattern of sentinel errors over ad hoc
// status.Error construction scattered through business logic.
var (
	// ErrSessionNotFound is returned by RegisterAgent when no pending
	// registration exists under the given session id.
	ErrSessionNotFound = errors.New("state: no pending registration for session id")

	// ErrTicketNotFound is returned by LookupTicket for an unknown or
	// evicted ticket.
	ErrTicketNotFound = errors.New("state: ticket not found")

	// ErrUnknownAgent names the unknown-agent-id condition for the
	// transport's error translation. UpdateAgentState and Touch do not
	// return it: they log and drop updates for unknown ids.
	ErrUnknownAgent = errors.New("state: unknown agent id")
)
