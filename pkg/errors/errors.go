// Package errors provides structured error handling for the Flint runtime.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidKind indicates a node descriptor whose kind is neither a
	// tag string, a fragment, nor a component function. Raised by the
	// renderer; the element factory performs no validation.
	KindInvalidKind
	// KindHookOutsideRender indicates a hook call with no active render cursor.
	KindHookOutsideRender
	// KindMissingContainer indicates a mount target that cannot accept children.
	KindMissingContainer
	// KindReentrantRender indicates a state write that tried to trigger a
	// re-render while a render pass was still on the call stack.
	KindReentrantRender
	// KindRender indicates a general rendering failure.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidKind:
		return "invalid-kind"
	case KindHookOutsideRender:
		return "hook-outside-render"
	case KindMissingContainer:
		return "missing-container"
	case KindReentrantRender:
		return "reentrant-render"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// RuntimeError represents a structured error in the Flint runtime.
//
// These are programmer or integration errors, not recoverable runtime
// conditions. The runtime fails fast on them; nothing in the core retries.
type RuntimeError struct {
	// Op is the operation that failed (e.g., "render.Render").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// New constructs a RuntimeError with the stack captured at the call site.
func New(op string, kind ErrorKind, err error) *RuntimeError {
	return &RuntimeError{
		Op:         op,
		Kind:       kind,
		Err:        err,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Runtime.Mount").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the Flint runtime.
type ErrorHandler interface {
	// HandleError is called when a runtime error occurs.
	HandleError(err *RuntimeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
