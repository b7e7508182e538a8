package routine

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"syncpoint/pkg/logger"
	"syncpoint/pkg/stack"
)

// Pool runs goroutines and keeps a panic in one of them from killing the
// process.
type Pool struct {
	waitGroup sync.WaitGroup
	ctx       context.Context
	option
}

// NewPool creates a Pool.
func NewPool(ctx context.Context, opts ...Option) *Pool {
	p := &Pool{
		ctx:    ctx,
		option: option{recoverFunc: defaultRecoverGoroutine},
	}
	for _, opt := range opts {
		opt(&p.option)
	}
	return p
}

// Go starts a recoverable goroutine with the pool context.
func (p *Pool) Go(goroutine func(context.Context)) {
	p.waitGroup.Add(1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if p.recoverFunc != nil {
					p.recoverFunc(p.ctx, r)
				}
			}
			p.waitGroup.Done()
		}()
		goroutine(p.ctx)
	}()
}

// Wait Waits all started routines, waiting for their termination.
func (p *Pool) Wait() {
	p.waitGroup.Wait()
}

func defaultRecoverGoroutine(ctx context.Context, r interface{}) {
	logger.From(ctx).Error("recover",
		zap.Any("error", r),
		zap.String("stack", stack.PanicInfo()))
}
