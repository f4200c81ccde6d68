package perception

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridPerceiverDiscoversPoints(t *testing.T) {
	p := NewGridPerceiver(8, 0.1)
	discovered, err := p.Perceive(Pose{X: 0, Y: 0, Z: 0}, 50.0)
	require.NoError(t, err)
	assert.Greater(t, discovered.Len(), uint64(0))
}

func TestGridPerceiverZeroRangeDiscoversNothing(t *testing.T) {
	p := NewGridPerceiver(8, 0.1)
	discovered, err := p.Perceive(Pose{}, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), discovered.Len())
}

func TestDecodeKernelBufferClampsToCounter(t *testing.T) {
	// Counter says 2 but the buffer has stale garbage beyond that -- the
	// decode must trust the counter, not the buffer capacity.
	buf := make([]byte, 4+4*5)
	buf[0] = 2 // counter = 2
	putInt64FieldForTest(buf, 4, 111)
	putInt64FieldForTest(buf, 8, 222)
	putInt64FieldForTest(buf, 12, 999) // stale, beyond counter
	putInt64FieldForTest(buf, 16, 999)

	got := DecodeKernelBuffer(buf)
	assert.Equal(t, []uint32{111, 222}, got)
}

func TestDecodeKernelBufferClampsToCapacityWhenCounterOverstates(t *testing.T) {
	buf := make([]byte, 4+4*1)
	buf[0] = 200 // counter claims far more than the buffer actually holds
	putInt64FieldForTest(buf, 4, 7)

	got := DecodeKernelBuffer(buf)
	assert.Equal(t, []uint32{7}, got)
}

func putInt64FieldForTest(buf []byte, offset int, v uint32) {
	buf[offset] = byte(v)
	buf[offset+1] = byte(v >> 8)
	buf[offset+2] = byte(v >> 16)
	buf[offset+3] = byte(v >> 24)
}
