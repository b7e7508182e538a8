package routine

import "context"

type option struct {
	limit       int
	recoverFunc func(ctx context.Context, r interface{})
}

type Option func(*option)

// WithLimit bounds the number of goroutines running at once. n <= 0 means
// no bound.
func WithLimit(n int) Option {
	return func(o *option) { o.limit = n }
}

// Recover sets the function called with the value of a recovered panic.
func Recover(f func(context.Context, interface{})) Option {
	return func(o *option) { o.recoverFunc = f }
}
