package logger

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a zap logger writing console lines to stdout at info level
// unless opts say otherwise.
func New(opts ...Option) *zap.Logger {
	o := &option{
		level:   zapcore.InfoLevel.String(),
		encoder: zapcore.NewConsoleEncoder,
		writer:  os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	fields := o.fields
	if o.serverName != "" {
		fields = append(fields, zap.String("service_name", o.serverName))
	}
	core := zapcore.NewCore(
		o.encoder(newEncoderConfig()),
		zap.CombineWriteSyncers(zapcore.AddSync(o.writer)),
		NewChangeLevel(o.level),
	).With(fields)
	// stack traces from dpanic up
	return zap.New(core).WithOptions(zap.AddCaller(), zap.AddStacktrace(zapcore.DPanicLevel))
}

func newEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "Message",
		LevelKey:       "Level",
		TimeKey:        "Time",
		NameKey:        "Logger",
		CallerKey:      "Caller",
		StacktraceKey:  "Stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func newLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		l = zap.InfoLevel
	}
	return l
}

var debug uint32

// SetDebug forces every logger built by New to emit debug entries
// regardless of its configured level.
func SetDebug(on bool) {
	if on {
		atomic.StoreUint32(&debug, 1)
		return
	}
	atomic.StoreUint32(&debug, 0)
}

// Debugging reports whether SetDebug(true) is in effect.
func Debugging() bool {
	return atomic.LoadUint32(&debug) == 1
}

func NewChangeLevel(level string) *changeLevel {
	return &changeLevel{
		level: newLevel(level),
	}
}

type changeLevel struct {
	level zapcore.Level
}

func (ch *changeLevel) Enabled(lvl zapcore.Level) bool {
	if Debugging() {
		return true
	}
	return lvl >= ch.level
}
