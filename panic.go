package parallel

import (
	"fmt"
	"runtime"
)

// PanicError wraps a panic recovered in a spawned goroutine together with
// the goroutine stack trace captured at the point of the panic.
//
// [Scope.Spawn] captures panics this way and re-raises the *PanicError on
// the joining goroutine, after the scope's remaining joins have run, so a
// crashing task can never be silently lost and never leaves siblings
// unjoined.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

// Error returns a human-readable representation of the panic,
// including the value and the full stack trace.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns nil. PanicError does not wrap another error.
func (e *PanicError) Unwrap() error { return nil }

func newPanicError(v any) *PanicError {
	if pe, ok := v.(*PanicError); ok {
		return pe
	}
	// 8 KiB is enough for most stack traces. runtime.Stack truncates
	// gracefully if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}
