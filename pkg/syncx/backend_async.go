//go:build syncx_async && !syncx_spin

package syncx

// BackendName is the default backend of this build.
const BackendName = "async"

// AsyncEnabled is true if the default backend is the cooperative one.
const AsyncEnabled = true

// NewBackend returns a fresh default backend.
func NewBackend() Backend {
	return NewAsyncMutex()
}
