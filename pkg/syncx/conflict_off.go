//go:build !(syncx_spin && syncx_async)

package syncx

// ConfigConflict is true if more than one backend tag was set.
const ConfigConflict = false
