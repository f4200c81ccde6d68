package broadcast

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestLoadBeforePublish(t *testing.T) {
	l := NewLatest[int]()
	_, ok := l.Load()
	assert.False(t, ok)
}

func TestLatestLoadReturnsMostRecentPublish(t *testing.T) {
	l := NewLatest[int]()
	l.Publish(1)
	l.Publish(2)
	l.Publish(3)

	v, ok := l.Load()
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestLatestWaitSkipsBacklog(t *testing.T) {
	l := NewLatest[int]()
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	var observed int
	go func() {
		defer wg.Done()
		v, ok := l.Wait(done)
		require.True(t, ok)
		observed = v
	}()

	// Give the waiter time to register on the current generation channel,
	// then publish many values in a row: the waiter must see only the last.
	time.Sleep(20 * time.Millisecond)
	for i := 1; i <= 10; i++ {
		l.Publish(i)
	}

	wg.Wait()
	assert.Equal(t, 10, observed)
}

func TestLatestWaitUnblocksOnDone(t *testing.T) {
	l := NewLatest[int]()
	done := make(chan struct{})
	close(done)

	_, ok := l.Wait(done)
	assert.False(t, ok)
}
