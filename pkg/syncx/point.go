package syncx

const (
	emptyName   = "<empty>"
	unknownName = "<unknown>"
)

// Guard is the proof of an acquisition. It gives access to the payload of the
// point it was taken from and must be released exactly once.
type Guard[T any] struct {
	value    *T
	release  func()
	released bool
}

// Value returns the payload. The pointer must not be used after Release.
func (g *Guard[T]) Value() *T {
	if g.released {
		panic("syncx: payload access through a released guard")
	}
	return g.value
}

// Release frees the lock the guard was taken on.
func (g *Guard[T]) Release() {
	if g.released {
		panic("syncx: guard released twice")
	}
	g.released = true
	g.release()
}

// Point is a synchronization point: one Backend plus the payload it guards.
// A Point must not be copied after first use.
type Point[T any] struct {
	noCopy  noCopy
	backend Backend
	payload T
	name    string
}

// NewPoint returns a point that owns backend and guards payload. backend must
// not be shared with any other point.
func NewPoint[T any](backend Backend, payload T, opts ...PointOption) *Point[T] {
	o := pointOption{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Point[T]{
		backend: backend,
		payload: payload,
		name:    o.name,
	}
}

// Lock blocks until the point is free and returns the guard.
func (p *Point[T]) Lock() *Guard[T] {
	p.backend.Lock()
	return p.guard()
}

// TryLock returns a guard if the point was free, nil and false otherwise.
func (p *Point[T]) TryLock() (*Guard[T], bool) {
	if !p.backend.TryLock() {
		return nil, false
	}
	return p.guard(), true
}

// Unlock releases g, which must come from p.
func (p *Point[T]) Unlock(g *Guard[T]) {
	if g.value != &p.payload {
		panic("syncx: unlock with a guard of another point")
	}
	g.Release()
}

// IsHeld reports whether a guard of p is outstanding. It is false for
// backends that do not implement HeldReporter.
func (p *Point[T]) IsHeld() bool {
	if hr, ok := p.backend.(HeldReporter); ok {
		return hr.IsHeld()
	}
	return false
}

// Name returns the point name, "<empty>" for unnamed points, or "<unknown>"
// when built with syncx_nonames.
func (p *Point[T]) Name() string {
	return pointName(p.name)
}

// Do runs fn while holding p. The lock is released even if fn panics.
func (p *Point[T]) Do(fn func(*T)) {
	g := p.Lock()
	defer p.Unlock(g)
	fn(g.Value())
}

func (p *Point[T]) guard() *Guard[T] {
	return &Guard[T]{value: &p.payload, release: p.backend.Unlock}
}

// Synchronized runs fn with the payload of p while holding p and returns its
// result. The lock is released even if fn panics.
func Synchronized[T, R any](p *Point[T], fn func(*T) R) R {
	g := p.Lock()
	defer p.Unlock(g)
	return fn(g.Value())
}

// Anonymous runs fn under a lock of its own: a fresh unnamed point is created
// for the call, so anonymous blocks never wait for each other.
func Anonymous[R any](fn func() R) R {
	p := NewPoint(NewBackend(), struct{}{})
	return Synchronized(p, func(*struct{}) R {
		return fn()
	})
}

func pointName(name string) string {
	if !NamesEnabled {
		return unknownName
	}
	if name == "" {
		return emptyName
	}
	return name
}
