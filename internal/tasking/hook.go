// Package tasking implements the pluggable tasking hook: a pure function
// from a read-only view of canonical state to a map of newly assigned
// tasks. Grounded directly on original_source/crates/sim_orchestrator/src/
// tasking.rs, whose entire body is a stub returning an empty map; this
// package keeps that as the specified default and adds the extension point
// the stub's comments gestured at.
package tasking

import (
	"github.com/holographic-c2/simulation/internal/simproto"
	"github.com/holographic-c2/simulation/internal/state"
)

// View is the read-only slice of canonical state the hook is allowed to
// see. It deliberately exposes no mutation methods.
type View interface {
	// Agents returns every currently active agent's last reported state.
	Agents() []*simproto.AgentState
	// CoverageRatio returns the current |reveal mask| / universe ratio.
	CoverageRatio() float64
}

// Hook assigns at most one new task per agent. Implementations must be
// pure with respect to their input view: same view in, same map out, no
// side effects.
type Hook func(View) map[state.AgentID]*simproto.Task

// IdentityHook is the specified default: it assigns nothing. A valid
// implementation of the hook contract, and the one this module ships
// wired in, per spec.md §4.6 ("the identity function ... is the specified
// default").
func IdentityHook(View) map[state.AgentID]*simproto.Task {
	return map[state.AgentID]*simproto.Task{}
}
