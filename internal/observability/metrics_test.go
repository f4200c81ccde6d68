package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAgentRegistered(t *testing.T) {
	RecordAgentRegistered("success")
	count := testutil.ToFloat64(agentsRegisteredTotal.WithLabelValues("success"))
	assert.Greater(t, count, 0.0)
}

func TestRecordPointsRevealedSkipsZeroDelta(t *testing.T) {
	before := testutil.ToFloat64(pointsRevealedTotal.WithLabelValues("agent-zero"))
	RecordPointsRevealed("agent-zero", 0)
	after := testutil.ToFloat64(pointsRevealedTotal.WithLabelValues("agent-zero"))
	assert.Equal(t, before, after)
}

func TestRecordPointsRevealedAccumulates(t *testing.T) {
	RecordPointsRevealed("agent-one", 5)
	RecordPointsRevealed("agent-one", 3)
	count := testutil.ToFloat64(pointsRevealedTotal.WithLabelValues("agent-one"))
	assert.GreaterOrEqual(t, count, 8.0)
}

func TestSetMapCoverageRatio(t *testing.T) {
	SetMapCoverageRatio(0.42)
	assert.Equal(t, 0.42, testutil.ToFloat64(mapCoverageRatio.WithLabelValues()))
}
