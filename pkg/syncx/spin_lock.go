package syncx

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	spinAttempts       = 64
	spinInitialBackoff = 50 * time.Microsecond
	spinMaxBackoff     = 5 * time.Millisecond
)

// NewSpinMutex returns a user-space spinning backend.
func NewSpinMutex() *SpinMutex {
	return &SpinMutex{}
}

// SpinMutex is a user-space lock built on a single CAS word. Lock spins
// yielding the processor for a while, then sleeps with exponential back-off
// until the word is free. The zero value is ready to use.
type SpinMutex struct {
	state atomic.Uint32
}

func (m *SpinMutex) Lock() {
	for i := 0; i < spinAttempts; i++ {
		if m.TryLock() {
			return
		}
		runtime.Gosched()
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = spinInitialBackoff
	b.MaxInterval = spinMaxBackoff
	b.MaxElapsedTime = 0
	b.Reset()
	for !m.TryLock() {
		time.Sleep(b.NextBackOff())
	}
}

func (m *SpinMutex) TryLock() bool {
	return m.state.CompareAndSwap(0, 1)
}

// Unlock panics if m is not locked, like sync.Mutex.
func (m *SpinMutex) Unlock() {
	if m.state.Swap(0) == 0 {
		panic("syncx: unlock of unlocked SpinMutex")
	}
}

func (m *SpinMutex) IsHeld() bool {
	return m.state.Load() == 1
}
