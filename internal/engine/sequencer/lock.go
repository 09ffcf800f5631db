package sequencer

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// WorkspaceLock serializes access to the installed dependency set of the workspace.
// Every add, build and remove window runs while holding it.
type WorkspaceLock struct {
	sem *semaphore.Weighted
}

// NewWorkspaceLock creates an unlocked WorkspaceLock.
func NewWorkspaceLock() *WorkspaceLock {
	return &WorkspaceLock{sem: semaphore.NewWeighted(1)}
}

// Acquire blocks until the lock is free or ctx is done. The returned release
// function is safe to call more than once.
func (l *WorkspaceLock) Acquire(ctx context.Context) (func(), error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.sem.Release(1) })
	}, nil
}
