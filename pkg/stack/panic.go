// Package stack formats the stack of a recovered panic.
package stack

import (
	"bytes"
	"runtime"
)

var (
	panicFrame = []byte("/src/runtime/panic.go")
	goroutine  = []byte("\ngoroutine ")
	line       = []byte("\n")
)

// PanicInfo returns the calling goroutine's stack starting at the frame that
// panicked. It must be called from a deferred recover; elsewhere the whole
// stack is returned.
func PanicInfo() string {
	buf := make([]byte, 1<<16)
	length := runtime.Stack(buf, false)
	return string(trim(buf[:length]))
}

func trim(stack []byte) []byte {
	if start := bytes.Index(stack, panicFrame); start != -1 {
		stack = stack[start:]
		// drop the panic.go file:line itself
		stack = stack[bytes.Index(stack, line)+1:]
	}
	if end := bytes.Index(stack, goroutine); end != -1 {
		stack = stack[:end]
	}
	return bytes.TrimRight(stack, "\n")
}
