package sequencer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libpack/internal/engine/sequencer"
)

func TestWorkspaceLock_Exclusive(t *testing.T) {
	lock := sequencer.NewWorkspaceLock()

	release, err := lock.Acquire(context.Background())
	require.NoError(t, err)

	_, ok := lock.TryAcquire()
	assert.False(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = lock.Acquire(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	release()
	release()

	again, ok := lock.TryAcquire()
	require.True(t, ok)
	again()
}

func TestWorkspaceLock_WaitsForRelease(t *testing.T) {
	lock := sequencer.NewWorkspaceLock()

	release, err := lock.Acquire(context.Background())
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		next, err := lock.Acquire(context.Background())
		if err == nil {
			next()
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire must wait for release")
	case <-time.After(20 * time.Millisecond):
	}

	release()
	<-acquired
}
