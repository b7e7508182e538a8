// Package logger builds zap loggers and carries them through context.Context.
package logger

import (
	"context"

	"go.uber.org/zap"
)

type logKey struct{}

// From returns the logger stored in ctx. Without one nothing is logged.
func From(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.NewNop()
	}
	l, ok := ctx.Value(logKey{}).(*zap.Logger)
	if !ok {
		return zap.NewNop()
	}
	return l
}

func With(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, logKey{}, l)
}

// Fields returns a copy of ctx whose logger carries fields.
func Fields(ctx context.Context, fields ...zap.Field) context.Context {
	return With(ctx, From(ctx).With(fields...))
}
