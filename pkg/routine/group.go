package routine

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"

	"syncpoint/pkg/stack"
)

// ErrGroup runs goroutines that return errors. A panic is turned into an
// error carrying the stack. The first error cancels the group context; Wait
// returns every error, combined.
type ErrGroup struct {
	waitGroup sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	sem       chan struct{}
	mu        sync.Mutex
	err       error
}

// NewGroup starts a recoverable goroutine ErrGroup with a context.
func NewGroup(ctx context.Context, opts ...Option) *ErrGroup {
	newCtx, cancel := context.WithCancel(ctx)

	o := option{}
	for _, opt := range opts {
		opt(&o)
	}
	g := &ErrGroup{
		ctx:    newCtx,
		cancel: cancel,
	}
	if o.limit > 0 {
		g.sem = make(chan struct{}, o.limit)
	}
	return g
}

// Go starts a recoverable goroutine with a context.
func (e *ErrGroup) Go(goroutine func(context.Context) error) {
	if e.sem != nil {
		e.sem <- struct{}{}
	}
	e.waitGroup.Add(1)
	go func() {
		var err error
		defer func() {
			if r := recover(); r != nil {
				err = multierr.Append(err, fmt.Errorf("%v.Stack:%s", r, stack.PanicInfo()))
			}
			if err != nil {
				e.mu.Lock()
				e.err = multierr.Append(e.err, err)
				e.mu.Unlock()
				e.cancel()
			}
			if e.sem != nil {
				<-e.sem
			}
			e.waitGroup.Done()
		}()
		err = goroutine(e.ctx)
	}()
}

// Wait blocks until every goroutine returned.
func (e *ErrGroup) Wait() error {
	e.waitGroup.Wait()
	e.cancel()
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}
