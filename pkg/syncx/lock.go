package syncx

import "context"

//go:generate mockgen -destination=mocks/backend.go -package=mocks syncpoint/pkg/syncx Backend

// Backend is the blocking lock capability a Point is built on.
type Backend interface {
	// Lock blocks until the backend is free and takes it.
	Lock()
	// TryLock takes the backend if it is free and reports whether it did.
	TryLock() bool
	// Unlock frees the backend. It must be called once per successful
	// Lock or TryLock.
	Unlock()
}

// AsyncBackend is the cooperative lock capability an AsyncPoint is built on.
// Acquire parks only the calling goroutine.
type AsyncBackend interface {
	// Acquire waits until the backend is free and takes it. It only fails
	// with ctx.Err() when ctx is done before the backend was taken.
	Acquire(ctx context.Context) error
	// Release frees the backend taken by Acquire.
	Release()
}

// HeldReporter is implemented by backends that can tell whether they are
// currently held. The answer is for diagnostics only and may be stale by the
// time the caller reads it.
type HeldReporter interface {
	IsHeld() bool
}

// noCopy may be embedded into structs which must not be copied after the
// first use. See go vet -copylocks.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

var (
	_ Backend      = (*StdMutex)(nil)
	_ Backend      = (*SpinMutex)(nil)
	_ Backend      = (*AsyncMutex)(nil)
	_ AsyncBackend = (*AsyncMutex)(nil)
	_ HeldReporter = (*StdMutex)(nil)
	_ HeldReporter = (*SpinMutex)(nil)
	_ HeldReporter = (*AsyncMutex)(nil)
)
