package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type option struct {
	level      string
	encoder    func(zapcore.EncoderConfig) zapcore.Encoder
	writer     io.Writer
	serverName string
	fields     []zap.Field
}

type Option func(*option)

// WithLevel sets the minimum level by name; unknown names mean info.
func WithLevel(level string) Option {
	return func(o *option) {
		o.level = level
	}
}

// WithEncoder replaces the console encoder, e.g. with zapcore.NewJSONEncoder.
func WithEncoder(encoder func(zapcore.EncoderConfig) zapcore.Encoder) Option {
	return func(o *option) {
		o.encoder = encoder
	}
}

func WithWriter(w io.Writer) Option {
	return func(o *option) {
		o.writer = w
	}
}

// WithFields adds fields to every entry of the logger.
func WithFields(fields ...zap.Field) Option {
	return func(o *option) {
		o.fields = append(o.fields, fields...)
	}
}

func WithServerName(name string) Option {
	return func(o *option) {
		o.serverName = name
	}
}
