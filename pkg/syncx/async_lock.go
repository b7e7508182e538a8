package syncx

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// NewAsyncMutex returns a cooperative backend on a weighted semaphore of size 1.
func NewAsyncMutex() *AsyncMutex {
	return &AsyncMutex{sem: semaphore.NewWeighted(1)}
}

// AsyncMutex parks waiting goroutines on a semaphore queue instead of a
// mutex. Waiters are served in arrival order. It satisfies Backend as well, in
// which case Lock waits without a deadline. Use NewAsyncMutex; the zero value
// is not usable.
type AsyncMutex struct {
	sem  *semaphore.Weighted
	held atomic.Bool
}

func (m *AsyncMutex) Acquire(ctx context.Context) error {
	if err := m.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	m.held.Store(true)
	return nil
}

// Release panics if m is not held.
func (m *AsyncMutex) Release() {
	m.held.Store(false)
	m.sem.Release(1)
}

func (m *AsyncMutex) Lock() {
	// Background is never done, Acquire cannot fail.
	_ = m.Acquire(context.Background())
}

func (m *AsyncMutex) TryLock() bool {
	if !m.sem.TryAcquire(1) {
		return false
	}
	m.held.Store(true)
	return true
}

func (m *AsyncMutex) Unlock() {
	m.Release()
}

func (m *AsyncMutex) IsHeld() bool {
	return m.held.Load()
}
