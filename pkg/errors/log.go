package errors

import (
	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes reports to a zerolog logger.
//
// Misuse and missing-dependency reports are expected during normal
// operation (a seek bar that has not been composed yet, a late call into a
// disposed widget) and are logged at debug level. Listener failures and
// panics are logged as errors.
type LogHandler struct {
	// Logger receives the reports. The zero value discards everything.
	Logger zerolog.Logger
	// Verbose adds stack traces to the output.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to logger.
func NewLogHandler(logger zerolog.Logger, verbose bool) *LogHandler {
	return &LogHandler{Logger: logger, Verbose: verbose}
}

// HandleError logs a ComponentError.
func (h *LogHandler) HandleError(err *ComponentError) {
	if err == nil {
		return
	}
	var ev *zerolog.Event
	switch err.Kind {
	case KindMisuse, KindMissingDependency:
		ev = h.Logger.Debug()
	case KindConfig, KindPlugin:
		ev = h.Logger.Warn()
	default:
		ev = h.Logger.Error()
	}
	ev = ev.Str("op", err.Op).Stringer("kind", err.Kind)
	if err.Component != "" {
		ev = ev.Str("component", err.Component)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Err(err.Err).Msg("component runtime error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.Logger.Error().Interface("value", err.Value)
	if err.Op != "" {
		ev = ev.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("recovered panic")
}
