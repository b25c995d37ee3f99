package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the bridge the error occurred
type Phase string

const (
	PhaseChannel   Phase = "channel"   // message channel operations
	PhaseBootstrap Phase = "bootstrap" // bridge state machine
	PhaseAdapter   Phase = "adapter"   // host/browser boundary
	PhaseParse     Phase = "parse"     // puzzle definition parsing
	PhaseSession   Phase = "session"   // puzzle session collaborator
	PhaseCommand   Phase = "command"   // host command routing
)

// Kind categorizes the error
type Kind string

const (
	KindChannelFull    Kind = "channel_full"
	KindOutOfOrder     Kind = "out_of_order_event"
	KindLoadFailed     Kind = "load_failed"
	KindInvalidData    Kind = "invalid_data"
	KindInvalidCommand Kind = "invalid_command"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindNotInitialized Kind = "not_initialized"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	State  string // bridge state when the error surfaced
	Event  string // host event kind involved, if any
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.State != "" || e.Event != "" {
		b.WriteString(": ")
		if e.State != "" && e.Event != "" {
			b.WriteString("event ")
			b.WriteString(e.Event)
			b.WriteString(" in state ")
			b.WriteString(e.State)
		} else if e.Event != "" {
			b.WriteString("event ")
			b.WriteString(e.Event)
		} else {
			b.WriteString("state ")
			b.WriteString(e.State)
		}
	}

	if e.Detail != "" {
		if e.State != "" || e.Event != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// State sets the bridge state name
func (b *Builder) State(s string) *Builder {
	b.err.State = s
	return b
}

// Event sets the host event kind name
func (b *Builder) Event(e string) *Builder {
	b.err.Event = e
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// ChannelFull creates a fail-fast enqueue rejection
func ChannelFull(capacity int) *Error {
	return &Error{
		Phase:  PhaseChannel,
		Kind:   KindChannelFull,
		Detail: fmt.Sprintf("queue at capacity %d", capacity),
		Value:  capacity,
	}
}

// OutOfOrder creates a diagnostic for an event the transition table does not
// accept in the current state
func OutOfOrder(state, event string) *Error {
	return &Error{
		Phase: PhaseBootstrap,
		Kind:  KindOutOfOrder,
		State: state,
		Event: event,
	}
}

// LoadFailed creates a host-side load failure error
func LoadFailed(reason string, cause error) *Error {
	return &Error{
		Phase:  PhaseAdapter,
		Kind:   KindLoadFailed,
		Detail: reason,
		Cause:  cause,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// InvalidCommand creates an unrecognized host command error
func InvalidCommand(verb string) *Error {
	return &Error{
		Phase:  PhaseCommand,
		Kind:   KindInvalidCommand,
		Detail: fmt.Sprintf("unknown command verb %q", verb),
		Value:  verb,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, what string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("%s index %d out of bounds (length %d)", what, index, length),
		Value:  index,
	}
}

// NotInitialized creates a not-initialized error for a missing collaborator
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
