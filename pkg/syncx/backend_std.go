//go:build (!syncx_spin && !syncx_async) || (syncx_spin && syncx_async)

package syncx

// BackendName is the default backend of this build.
const BackendName = "std"

// AsyncEnabled is true if the default backend is the cooperative one.
const AsyncEnabled = false

// NewBackend returns a fresh default backend.
func NewBackend() Backend {
	return NewStdMutex()
}
