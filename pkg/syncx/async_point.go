package syncx

import "context"

// AsyncPoint is the cooperative counterpart of Point: acquisitions park the
// calling goroutine on an AsyncBackend. It has no TryLock.
type AsyncPoint[T any] struct {
	noCopy  noCopy
	backend AsyncBackend
	payload T
	name    string
}

// NewAsyncPoint returns a point that owns backend and guards payload.
func NewAsyncPoint[T any](backend AsyncBackend, payload T, opts ...PointOption) *AsyncPoint[T] {
	o := pointOption{}
	for _, opt := range opts {
		opt(&o)
	}
	return &AsyncPoint[T]{
		backend: backend,
		payload: payload,
		name:    o.name,
	}
}

// Lock waits for the point. It fails only when ctx is done first, in which
// case the point is not held by the caller.
func (p *AsyncPoint[T]) Lock(ctx context.Context) (*Guard[T], error) {
	if err := p.backend.Acquire(ctx); err != nil {
		return nil, err
	}
	return &Guard[T]{value: &p.payload, release: p.backend.Release}, nil
}

func (p *AsyncPoint[T]) Unlock(g *Guard[T]) {
	if g.value != &p.payload {
		panic("syncx: unlock with a guard of another point")
	}
	g.Release()
}

func (p *AsyncPoint[T]) IsHeld() bool {
	if hr, ok := p.backend.(HeldReporter); ok {
		return hr.IsHeld()
	}
	return false
}

func (p *AsyncPoint[T]) Name() string {
	return pointName(p.name)
}

// Do runs fn while holding p.
func (p *AsyncPoint[T]) Do(ctx context.Context, fn func(*T)) error {
	g, err := p.Lock(ctx)
	if err != nil {
		return err
	}
	defer p.Unlock(g)
	fn(g.Value())
	return nil
}

// SynchronizedAsync is Synchronized for an AsyncPoint. fn does not run if ctx
// ends before the point was taken.
func SynchronizedAsync[T, R any](ctx context.Context, p *AsyncPoint[T], fn func(*T) R) (R, error) {
	g, err := p.Lock(ctx)
	if err != nil {
		var zero R
		return zero, err
	}
	defer p.Unlock(g)
	return fn(g.Value()), nil
}
