// Package syncx provides synchronized blocks: code that runs while holding the
// lock of a synchronization point, so that no two goroutines execute blocks
// bound to the same point at the same time.
//
// A Point owns exactly one Backend (StdMutex, SpinMutex or AsyncMutex) and an
// optional payload that is reachable only through the Guard returned by an
// acquisition:
//
//	counter := syncx.Named("COUNTER", 0)
//	n := syncx.Synchronized(counter, func(v *int) int {
//		*v++
//		return *v
//	})
//
// Named points are shared by name through a Registry. Blocks that need no
// shared identity use Anonymous, which gives every call its own lock.
//
// The default backend is chosen at build time: no tag selects std, the
// syncx_spin tag selects the spinning mutex and syncx_async the semaphore
// backed cooperative mutex. Setting both tags logs a warning and falls back to
// std. The syncx_nonames tag compiles point names out. Features reports the
// result.
//
// Re-entrant acquisition of the same point is not supported and deadlocks.
// Acquiring several points in inconsistent order across call sites is the
// caller's problem.
package syncx
