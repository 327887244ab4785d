// Package errors provides structured, non-fatal error reporting for the
// component runtime.
//
// Nothing in the runtime panics or returns errors for misuse: calling into a
// disposed component, asking for an unregistered component name, or a tooltip
// handler that resolves to nothing all degrade to no-ops. Those conditions are
// reported here instead so they stay observable during development.
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
	// KindMisuse indicates a lifecycle call on a disposed component or a
	// similar programmer error.
	KindMisuse
	// KindMissingDependency indicates an absent collaborator, such as an
	// unregistered component name or a seek bar that does not exist yet.
	KindMissingDependency
	// KindListener indicates an event listener that panicked during dispatch.
	KindListener
	// KindPanic indicates a recovered panic outside of listener dispatch.
	KindPanic
	// KindConfig indicates an invalid configuration value.
	KindConfig
	// KindPlugin indicates a component plugin that could not be installed.
	KindPlugin
)

func (k ErrorKind) String() string {
	switch k {
	case KindMisuse:
		return "misuse"
	case KindMissingDependency:
		return "missing-dependency"
	case KindListener:
		return "listener"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	case KindPlugin:
		return "plugin"
	default:
		return "unknown"
	}
}

// ComponentError represents a structured error in the component runtime.
type ComponentError struct {
	// Op is the operation that failed (e.g., "component.AddChild").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Component is the name of the component involved, if any.
	Component string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ComponentError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s [%s] component=%s: %v", e.Op, e.Kind, e.Component, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ComponentError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "events.Trigger").
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

// DisposedError is the underlying error of KindMisuse reports raised when a
// lifecycle operation reaches a component after its disposal.
type DisposedError struct {
	// Component is the name of the disposed component.
	Component string
	// Call is the operation that was attempted.
	Call string
}

func (e *DisposedError) Error() string {
	return fmt.Sprintf("%s called on disposed component %s", e.Call, e.Component)
}

// NotFoundError is the underlying error of KindMissingDependency reports.
type NotFoundError struct {
	// What describes the missing thing ("component", "element", "seek bar").
	What string
	// Name identifies it.
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.What, e.Name)
}

// ErrorHandler receives errors reported by the runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ComponentError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
