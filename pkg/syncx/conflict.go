package syncx

import "go.uber.org/zap"

func warnConflict(l *zap.Logger) {
	l.Warn("syncx: conflicting backend build tags, std is used",
		zap.Strings("tags", []string{"syncx_spin", "syncx_async"}),
		zap.String("backend", BackendName))
}
