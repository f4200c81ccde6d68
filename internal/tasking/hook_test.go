package tasking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/holographic-c2/simulation/internal/state"
	"github.com/holographic-c2/simulation/internal/tasking"
)

func TestIdentityHookAssignsNothing(t *testing.T) {
	cs := state.New(100, nil)
	got := tasking.IdentityHook(cs)
	assert.Empty(t, got)
}
