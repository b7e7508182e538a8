package syncx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWarnConflict(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	warnConflict(zap.New(core))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Contains(t, entries[0].Message, "conflicting backend build tags")
	assert.Equal(t, BackendName, entries[0].ContextMap()["backend"])
	assert.Equal(t, []interface{}{"syncx_spin", "syncx_async"}, entries[0].ContextMap()["tags"])
}
