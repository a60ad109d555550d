package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse    Phase = "parse"    // textual signature parsing
	PhaseClassify Phase = "classify" // descriptor derivation
	PhaseRegistry Phase = "registry" // convention registry lookups
	PhaseLower    Phase = "lower"    // wasm signature lowering
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownConvention Kind = "unknown_convention"
	KindInvalidKey        Kind = "invalid_key"
	KindInvalidSignature  Kind = "invalid_signature"
	KindUnsupported       Kind = "unsupported"
	KindArityCeiling      Kind = "arity_ceiling"
	KindInvalidInput      Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	GoType     string
	Convention string
	Detail     string
	Pos        int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Pos > 0 {
		b.WriteString(" at offset ")
		fmt.Fprintf(&b, "%d", e.Pos)
	}

	if e.GoType != "" || e.Convention != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.Convention != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", convention ")
			b.WriteString(e.Convention)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("convention ")
			b.WriteString(e.Convention)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Convention != "" {
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

// Pos sets the input offset for parse errors
func (b *Builder) Pos(pos int) *Builder {
	b.err.Pos = pos
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Convention sets the calling-convention name
func (b *Builder) Convention(c string) *Builder {
	b.err.Convention = c
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

// UnknownConvention creates an error for a convention name outside the closed set
func UnknownConvention(phase Phase, name string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindUnknownConvention,
		Convention: name,
		Detail:     "not in the supported convention set",
		Value:      name,
	}
}

// InvalidKey creates an error for a numeric key outside the registry's image
func InvalidKey(phase Phase, key uint8) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidKey,
		Detail: fmt.Sprintf("key %d has no registered convention", key),
		Value:  key,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// UnsupportedType creates an error for a Go type that cannot be lowered
func UnsupportedType(phase Phase, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		GoType: goType,
		Detail: "no wasm representation",
	}
}

// ArityCeiling creates an error for signatures above the supported arity
func ArityCeiling(phase Phase, arity, max int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindArityCeiling,
		Detail: fmt.Sprintf("arity %d exceeds the supported maximum %d", arity, max),
		Value:  arity,
	}
}

// InvalidSignature creates a malformed signature error
func InvalidSignature(pos int, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidSignature,
		Pos:    pos,
		Detail: detail,
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
