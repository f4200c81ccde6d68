// Package agentruntime implements the agent-side half of spec.md §4.7: the
// fixed-rate tick loop, the AwaitingTask/Navigating/Perceiving/Idle/Error
// mode machine, and the discovery buffer an agent accumulates between
// reports. Grounded on original_source/crates/sim_agent/src/main.rs's
// simulation loop, translated from a single async task driving an mpsc
// channel into a mutex-guarded Runtime a tick goroutine and a report
// goroutine both touch.
package agentruntime

import (
	"math"
	"sync"
	"time"

	"github.com/holographic-c2/simulation/internal/perception"
	"github.com/holographic-c2/simulation/internal/pointset"
	"github.com/holographic-c2/simulation/internal/simproto"
)

// PerceptionRangeM is the fixed sensing radius used for every Perceive call,
// matching the 50 m range main.rs hardcodes for its PerceptionSystem.
const PerceptionRangeM = 50.0

// Runtime holds one agent's local simulated state: pose, velocity, mode,
// current task, and the discovery buffer awaiting its next report.
type Runtime struct {
	agentID   uint64
	perceiver perception.Perceiver

	mu        sync.Mutex
	pose      perception.Pose
	velocity  perception.Pose
	mode      simproto.AgentMode
	task      *simproto.Task
	sequence  uint64
	discovery *pointset.PointSet
}

// New constructs a Runtime for agentID, starting in AwaitingTask mode at the
// origin.
func New(agentID uint64, perceiver perception.Perceiver) *Runtime {
	return &Runtime{
		agentID:   agentID,
		perceiver: perceiver,
		mode:      simproto.AgentMode_AGENT_MODE_AWAITING_TASK,
		discovery: pointset.New(),
	}
}

// SetTask assigns a newly received task, transitioning AwaitingTask ->
// Navigating. A task received while not AwaitingTask (e.g. still
// Navigating toward a prior target) replaces the target without changing
// mode, since the orchestrator assigns at most one new task per report
// cycle but this runtime may lag behind by one tick.
func (r *Runtime) SetTask(task *simproto.Task) {
	if task == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.task = task
	if r.mode == simproto.AgentMode_AGENT_MODE_AWAITING_TASK {
		r.mode = simproto.AgentMode_AGENT_MODE_NAVIGATING
	}
}

// waypointToleranceM is how close the agent must get to a task's target
// before it is considered reached.
const waypointToleranceM = 0.5

// Tick advances one fixed-rate step: physics integration while Navigating,
// a perception call while Perceiving, and the mode transitions spec.md
// §4.7 names. It returns the number of newly discovered points this tick,
// for metrics.
func (r *Runtime) Tick(dt time.Duration) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.mode {
	case simproto.AgentMode_AGENT_MODE_NAVIGATING:
		r.stepTowardTaskLocked(dt)
	case simproto.AgentMode_AGENT_MODE_PERCEIVING:
		found, err := r.perceiver.Perceive(r.pose, PerceptionRangeM)
		if err != nil {
			r.mode = simproto.AgentMode_AGENT_MODE_ERROR
			return 0, err
		}
		before := r.discovery.Len()
		r.discovery.UnionInPlace(found)
		after := r.discovery.Len()
		r.task = nil
		r.mode = simproto.AgentMode_AGENT_MODE_AWAITING_TASK
		return after - before, nil
	}
	return 0, nil
}

func (r *Runtime) stepTowardTaskLocked(dt time.Duration) {
	if r.task == nil || r.task.GetTargetEcefM() == nil {
		r.mode = simproto.AgentMode_AGENT_MODE_IDLE
		return
	}
	target := r.task.GetTargetEcefM()
	dx := target.GetX() - r.pose.X
	dy := target.GetY() - r.pose.Y
	dz := target.GetZ() - r.pose.Z
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)

	if dist <= waypointToleranceM {
		r.velocity = perception.Pose{}
		r.mode = simproto.AgentMode_AGENT_MODE_PERCEIVING
		return
	}

	const speedMps = 5.0
	step := speedMps * dt.Seconds()
	if step > dist {
		step = dist
	}
	r.velocity = perception.Pose{X: speedMps * dx / dist, Y: speedMps * dy / dist, Z: speedMps * dz / dist}
	r.pose.X += step * dx / dist
	r.pose.Y += step * dy / dist
	r.pose.Z += step * dz / dist
}

// SnapshotAndClear builds the AgentState and serialized discovery buffer for
// the next report, then clears the buffer. The clear happens atomically
// with the snapshot under the same lock, so no point can be both included
// in a report and retained for the next one.
func (r *Runtime) SnapshotAndClear() (*simproto.AgentState, []byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sequence++
	state := &simproto.AgentState{
		AgentId:     r.agentID,
		TimestampMs: time.Now().UnixMilli(),
		PositionEcefM: &simproto.Vec3m{
			X: r.pose.X, Y: r.pose.Y, Z: r.pose.Z,
		},
		VelocityEcefMps: &simproto.Vec3mps{
			X: r.velocity.X, Y: r.velocity.Y, Z: r.velocity.Z,
		},
		OrientationEcef: &simproto.UnitQuaternion{W: 1},
		Mode:            r.mode,
		Sequence:        r.sequence,
		SchemaVersion:   1,
	}

	if r.discovery.Len() == 0 {
		return state, nil, nil
	}
	payload, err := r.discovery.Serialize()
	if err != nil {
		return state, nil, err
	}
	r.discovery = pointset.New()
	return state, payload, nil
}

// Mode returns the runtime's current mode, for tests and metrics.
func (r *Runtime) Mode() simproto.AgentMode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}
