package sequencer

import "time"

// SetClock replaces the time source. It is exported for tests only.
func (s *Sequencer) SetClock(now func() time.Time) {
	s.now = now
}

// Lock returns the lock guarding the workspace dependency set.
func (s *Sequencer) Lock() *WorkspaceLock {
	return s.lock
}

// TryAcquire takes the lock without blocking and reports whether it succeeded.
func (l *WorkspaceLock) TryAcquire() (func(), bool) {
	if !l.sem.TryAcquire(1) {
		return nil, false
	}
	return func() { l.sem.Release(1) }, true
}
