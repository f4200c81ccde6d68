package agentruntime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holographic-c2/simulation/internal/perception"
	"github.com/holographic-c2/simulation/internal/simproto"
)

func TestNewRuntimeStartsAwaitingTask(t *testing.T) {
	r := New(1, perception.NewGridPerceiver(4, 0))
	assert.Equal(t, simproto.AgentMode_AGENT_MODE_AWAITING_TASK, r.Mode())
}

func TestSetTaskTransitionsToNavigating(t *testing.T) {
	r := New(1, perception.NewGridPerceiver(4, 0))
	r.SetTask(&simproto.Task{TargetEcefM: &simproto.Vec3m{X: 10}})
	assert.Equal(t, simproto.AgentMode_AGENT_MODE_NAVIGATING, r.Mode())
}

func TestTickReachesWaypointAndTransitionsToPerceiving(t *testing.T) {
	r := New(1, perception.NewGridPerceiver(4, 0))
	r.SetTask(&simproto.Task{TargetEcefM: &simproto.Vec3m{X: 0.1}})

	_, err := r.Tick(time.Second)
	require.NoError(t, err)
	assert.Equal(t, simproto.AgentMode_AGENT_MODE_PERCEIVING, r.Mode())
}

func TestTickPerceivingReturnsToAwaitingTask(t *testing.T) {
	r := New(1, perception.NewGridPerceiver(4, 0))
	r.SetTask(&simproto.Task{TargetEcefM: &simproto.Vec3m{X: 0.1}})
	_, err := r.Tick(time.Second)
	require.NoError(t, err)
	require.Equal(t, simproto.AgentMode_AGENT_MODE_PERCEIVING, r.Mode())

	_, err = r.Tick(time.Second)
	require.NoError(t, err)
	assert.Equal(t, simproto.AgentMode_AGENT_MODE_AWAITING_TASK, r.Mode())
}

func TestTickNavigatingWithoutTaskGoesIdle(t *testing.T) {
	r := New(1, perception.NewGridPerceiver(4, 0))
	r.SetTask(&simproto.Task{TargetEcefM: &simproto.Vec3m{X: 10}})
	r.task = nil // simulate a task cleared out from under navigation

	_, err := r.Tick(time.Second)
	require.NoError(t, err)
	assert.Equal(t, simproto.AgentMode_AGENT_MODE_IDLE, r.Mode())
}

func TestSnapshotAndClearIsAtomic(t *testing.T) {
	// No point may be both included in a report and retained locally.
	r := New(7, perception.NewGridPerceiver(4, 0))
	r.SetTask(&simproto.Task{TargetEcefM: &simproto.Vec3m{X: 0.1}})
	_, err := r.Tick(time.Second) // -> Perceiving
	require.NoError(t, err)
	_, err = r.Tick(time.Second) // perceives, unions discoveries, -> AwaitingTask
	require.NoError(t, err)

	state, payload1, err := r.SnapshotAndClear()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), state.GetAgentId())

	_, payload2, err := r.SnapshotAndClear()
	require.NoError(t, err)
	if payload1 != nil {
		assert.Nil(t, payload2)
	}
}
