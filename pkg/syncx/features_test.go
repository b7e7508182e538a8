package syncx_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"syncpoint/pkg/syncx"
)

func TestFeatures(t *testing.T) {
	expected := syncx.FeatureSet{
		Backend:  syncx.BackendName,
		Async:    syncx.AsyncEnabled,
		Names:    syncx.NamesEnabled,
		Points:   true,
		Conflict: syncx.ConfigConflict,
	}
	if diff := cmp.Diff(expected, syncx.Features); diff != "" {
		t.Errorf("Features mismatch (-want +got):\n%s", diff)
	}

	backend := syncx.NewBackend()
	switch syncx.BackendName {
	case "std":
		assert.IsType(t, &syncx.StdMutex{}, backend)
		assert.False(t, syncx.AsyncEnabled)
	case "spin":
		assert.IsType(t, &syncx.SpinMutex{}, backend)
		assert.False(t, syncx.ConfigConflict)
	case "async":
		assert.IsType(t, &syncx.AsyncMutex{}, backend)
		assert.True(t, syncx.AsyncEnabled)
	default:
		t.Fatalf("unknown backend %q", syncx.BackendName)
	}
	if syncx.ConfigConflict {
		assert.Equal(t, "std", syncx.BackendName)
	}
	assert.IsType(t, &syncx.AsyncMutex{}, syncx.NewAsyncBackend())
}
