// Package grpcapi wires internal/state, internal/tasking, and
// internal/simproto together into the two services the wire schema
// declares. Grounded on commbus/commbus_server.go's service-struct-holding-
// shared-state shape and coreengine/grpc/server.go's handler style.
package grpcapi

import (
	"context"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/holographic-c2/simulation/internal/simproto"
	"github.com/holographic-c2/simulation/internal/state"
	"github.com/holographic-c2/simulation/internal/tasking"
)

// ControlServer implements simproto.SimulationControlServer against a
// shared CanonicalState and a pluggable tasking hook.
type ControlServer struct {
	simproto.UnimplementedSimulationControlServer

	state  *state.CanonicalState
	hook   tasking.Hook
	logger Logger
}

// NewControlServer constructs a ControlServer. hook defaults to
// tasking.IdentityHook if nil; logger defaults to a no-op.
func NewControlServer(cs *state.CanonicalState, hook tasking.Hook, logger Logger) *ControlServer {
	if hook == nil {
		hook = tasking.IdentityHook
	}
	if logger == nil {
		logger = noopControlLogger{}
	}
	return &ControlServer{state: cs, hook: hook, logger: logger}
}

type noopControlLogger struct{}

func (noopControlLogger) Debug(string, ...any) {}
func (noopControlLogger) Info(string, ...any)  {}
func (noopControlLogger) Warn(string, ...any)  {}
func (noopControlLogger) Error(string, ...any) {}

// Register completes a two-phase agent handoff: the agent manager already
// created a pending entry under the session id the agent was spawned with,
// and this call converts it into an active agent id.
func (s *ControlServer) Register(ctx context.Context, req *simproto.RegisterRequest) (*simproto.RegisterResponse, error) {
	id, meta, err := s.state.RegisterAgent(state.SessionID(req.GetSessionId()))
	if err != nil {
		return nil, translateError(err)
	}

	s.logger.Info("agent_registered", "agent_id", uint64(id), "session_id", req.GetSessionId())

	return &simproto.RegisterResponse{
		AgentId:                     uint64(id),
		ServerTimeMs:                meta.ServerTimeMs,
		RecommendedReportIntervalMs: meta.RecommendedReportIntervalMs,
		MaxReportBytes:              meta.MaxReportBytes,
		SchemaVersion:               meta.SchemaVersion,
	}, nil
}

// ReportState handles the bidirectional report stream: every message after
// the first must carry the same agent id the stream opened with (spec.md
// testable property 7). Every report that carries a state update triggers a
// fresh broadcast, whether or not it merged any new points -- a report with
// zero new discoveries still moves the agent's position and mode, and
// viewers need to see that on the same cadence, not only when the reveal
// mask happens to grow. A report without state also broadcasts when its
// merge grew the reveal mask.
func (s *ControlServer) ReportState(stream simproto.SimulationControl_ReportStateServer) error {
	var boundAgent state.AgentID
	var bound bool

	for {
		report, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		agentID := state.AgentID(report.GetAgentId())
		if !bound {
			if !s.state.AgentExists(agentID) {
				return status.Error(codes.NotFound, "report_state: unknown agent id")
			}
			boundAgent = agentID
			bound = true
		} else if agentID != boundAgent {
			return status.Errorf(codes.InvalidArgument, "report_state: agent id changed mid-stream: bound=%d got=%d", boundAgent, agentID)
		}

		hasState := report.GetState() != nil
		if hasState {
			s.state.UpdateAgentState(boundAgent, report.GetState())
		} else {
			s.state.Touch(boundAgent)
		}

		added, err := s.state.MergePoints(report.GetDiscoveredPointIdsPortable())
		if err != nil {
			return translateError(err)
		}

		if hasState || added > 0 {
			if _, err := s.state.Broadcast(); err != nil {
				s.logger.Error("broadcast_after_report_failed", "error", err.Error())
			}
		}

		assigned := s.hook(s.state)
		resp := &simproto.ReportStateResponse{SchemaVersion: state.SchemaVersion}
		if task, ok := assigned[boundAgent]; ok {
			resp.AssignedTask = task
		}
		if err := stream.Send(resp); err != nil {
			return err
		}
	}
}

// SubscribeWorldState streams coalesced snapshots to a viewer: an optional
// initial snapshot (broadcasting one first if none has been published yet),
// then one send per subsequent broadcast, never more than one outstanding
// send behind the latest publish regardless of how many broadcasts occurred
// in between (spec.md testable property 9).
func (s *ControlServer) SubscribeWorldState(req *simproto.SubscribeWorldStateRequest, stream simproto.SimulationControl_SubscribeWorldStateServer) error {
	if req.GetIncludeInitialSnapshot() {
		snap, ok := s.state.SubscribeLatest()
		if !ok {
			var err error
			if snap, err = s.state.Broadcast(); err != nil {
				return translateError(err)
			}
		}
		if err := stream.Send(snapshotToProto(snap)); err != nil {
			return err
		}
	}

	done := stream.Context().Done()
	for {
		snap, ok := s.state.WaitNext(done)
		if !ok {
			return stream.Context().Err()
		}
		if err := stream.Send(snapshotToProto(snap)); err != nil {
			return err
		}
	}
}

// IssueCommand handles operator commands. ResetSimulation is fully
// implemented; StartSurvey is accepted but has no effect beyond
// acknowledgement, since task assignment policy lives entirely behind the
// pluggable tasking hook.
func (s *ControlServer) IssueCommand(ctx context.Context, req *simproto.IssueCommandRequest) (*simproto.IssueCommandResponse, error) {
	switch req.GetKind() {
	case simproto.CommandKind_COMMAND_KIND_RESET_SIMULATION:
		if _, err := s.state.ResetSimulation(); err != nil {
			return &simproto.IssueCommandResponse{Accepted: false, Error: err.Error()}, nil
		}
		s.logger.Info("simulation_reset")
		return &simproto.IssueCommandResponse{Accepted: true}, nil
	case simproto.CommandKind_COMMAND_KIND_START_SURVEY:
		return &simproto.IssueCommandResponse{Accepted: true}, nil
	default:
		return &simproto.IssueCommandResponse{Accepted: false, Error: "unspecified command kind"}, nil
	}
}
