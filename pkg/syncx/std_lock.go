package syncx

import (
	"sync"
	"sync/atomic"
)

// NewStdMutex returns a backend around sync.Mutex.
func NewStdMutex() *StdMutex {
	return &StdMutex{}
}

// StdMutex blocks the calling goroutine on a sync.Mutex. The zero value is
// ready to use.
type StdMutex struct {
	mutex sync.Mutex
	held  atomic.Bool
}

func (st *StdMutex) Lock() {
	st.mutex.Lock()
	st.held.Store(true)
}

func (st *StdMutex) TryLock() bool {
	if !st.mutex.TryLock() {
		return false
	}
	st.held.Store(true)
	return true
}

func (st *StdMutex) Unlock() {
	st.held.Store(false)
	st.mutex.Unlock()
}

func (st *StdMutex) IsHeld() bool {
	return st.held.Load()
}
