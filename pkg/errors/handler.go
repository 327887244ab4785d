package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every report. Until SetHandler is called it is
	// a LogHandler over a disabled logger, so reports are dropped.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler installs h and returns the handler it replaced. A nil h
// reinstates a silent LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	prev := DefaultHandler
	DefaultHandler = h
	handlerMu.Unlock()
	return prev
}

func current() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Report hands err to the installed handler, stamping it if needed.
func Report(err *ComponentError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	if h := current(); h != nil {
		h.HandleError(err)
	}
}

// ReportMisuse reports a call made on a disposed component.
func ReportMisuse(op, component string) {
	Report(&ComponentError{
		Op:        op,
		Kind:      KindMisuse,
		Component: component,
		Err:       &DisposedError{Component: component, Call: op},
	})
}

// ReportMissing reports a collaborator that could not be found, such as an
// unregistered component name or an element id with no match.
func ReportMissing(op, component, what, name string) {
	Report(&ComponentError{
		Op:        op,
		Kind:      KindMissingDependency,
		Component: component,
		Err:       &NotFoundError{What: what, Name: name},
	})
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	if h := current(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover reports a panic in progress. Use it deferred:
//
//	defer errors.Recover("player.New")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: stackTrace(3)})
}

// RecoverListener reports a panic raised by an event listener as a
// KindListener error. Dispatch to the remaining listeners continues.
func RecoverListener(op, eventType string) {
	r := recover()
	if r == nil {
		return
	}
	Report(&ComponentError{
		Op:         op,
		Kind:       KindListener,
		Err:        &PanicError{Op: op + " " + eventType, Value: r},
		StackTrace: stackTrace(3),
	})
}

// stackTrace formats up to 32 frames of the calling goroutine, skipping
// skip frames (runtime.Callers counts itself as frame 0).
func stackTrace(skip int) string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
