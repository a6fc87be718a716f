package guard

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
)

// Sentinel errors matched by errors.Is against the failures returned by checks.
var (
	// ErrNull matches *NullError.
	ErrNull = errors.New("guard: null value")

	// ErrInvalidArgument matches *ArgumentError.
	ErrInvalidArgument = errors.New("guard: invalid argument")

	// ErrOutOfRange matches *RangeError.
	ErrOutOfRange = errors.New("guard: value out of range")

	// ErrInvalidEnum matches *EnumError.
	ErrInvalidEnum = errors.New("guard: invalid enum value")

	// ErrInvalidUsage reports a malformed check invocation rather than a bad input:
	// nil guard, nil predicate, invalid pattern or inverted range bounds.
	ErrInvalidUsage = errors.New("guard: invalid usage")
)

// MissingParam replaces a blank parameter identity so that every failure is attributable.
const MissingParam = "(missing param)"

// Default messages.
const (
	MsgNull       = "Value cannot be null."
	MsgArgument   = "Value does not fall within the expected range."
	MsgOutOfRange = "Specified argument was out of the range of valid values."
)

// Kind is the machine-readable category of a failure.
type Kind string

const (
	KindNull     Kind = "null"
	KindArgument Kind = "argument"
	KindRange    Kind = "range"
	KindEnum     Kind = "enum"
)

// Failure is implemented by every error a check returns for a violated constraint.
type Failure interface {
	error
	Kind() Kind
	Parameter() string
}

// ParamName returns param, or MissingParam when param is blank.
func ParamName(param string) string {
	if isBlank(param) {
		return MissingParam
	}
	return param
}

// IsFailure reports whether err carries a guard failure.
func IsFailure(err error) bool {
	var f Failure
	return errors.As(err, &f)
}

// NullError reports a nil value.
type NullError struct {
	Param   string
	Message string
}

// NewNullError builds a *NullError for param. A blank message selects MsgNull.
func NewNullError(param, message string) *NullError {
	return &NullError{Param: ParamName(param), Message: orDefault(message, MsgNull)}
}

func (e *NullError) Error() string { return render(e.Param, e.Message) }
func (e *NullError) Kind() Kind { return KindNull }
func (e *NullError) Parameter() string { return e.Param }
func (e *NullError) Is(target error) bool { return target == ErrNull }
func (e *NullError) LogValue() slog.Value { return logValue(e.Kind(), e.Param, e.Message) }

// ArgumentError reports a value that violates a constraint.
// Err is an optional cause, exposed through Unwrap.
type ArgumentError struct {
	Param   string
	Message string
	Err     error
}

// NewArgumentError builds an *ArgumentError for param. A blank message selects MsgArgument.
func NewArgumentError(param, message string) *ArgumentError {
	return &ArgumentError{Param: ParamName(param), Message: orDefault(message, MsgArgument)}
}

// Wrap attaches cause to the error and returns it.
func (e *ArgumentError) Wrap(cause error) *ArgumentError {
	e.Err = cause
	return e
}

func (e *ArgumentError) Error() string { return render(e.Param, e.Message) }
func (e *ArgumentError) Kind() Kind { return KindArgument }
func (e *ArgumentError) Parameter() string { return e.Param }
func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }
func (e *ArgumentError) Unwrap() error { return e.Err }

func (e *ArgumentError) LogValue() slog.Value {
	return logValue(e.Kind(), e.Param, e.Message, slog.Any("cause", e.Err))
}

// RangeError reports a value outside of the inclusive bounds [From, To].
type RangeError struct {
	Param   string
	Message string
	Value   any
	From    any
	To      any
}

// NewRangeError builds a *RangeError for param. A blank message selects MsgOutOfRange.
func NewRangeError(param, message string, value, from, to any) *RangeError {
	return &RangeError{
		Param:   ParamName(param),
		Message: orDefault(message, MsgOutOfRange),
		Value:   value,
		From:    from,
		To:      to,
	}
}

func (e *RangeError) Error() string { return render(e.Param, e.Message) }
func (e *RangeError) Kind() Kind { return KindRange }
func (e *RangeError) Parameter() string { return e.Param }
func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

func (e *RangeError) LogValue() slog.Value {
	return logValue(e.Kind(), e.Param, e.Message,
		slog.Any("value", e.Value),
		slog.Any("from", e.From),
		slog.Any("to", e.To),
	)
}

// EnumError reports a value that is not a declared member of an enumeration.
type EnumError struct {
	Param   string
	Message string
	Value   any
	Type    reflect.Type
}

// NewEnumError builds an *EnumError for the enumeration type E.
// A blank message selects a message naming the parameter, the value and the type.
func NewEnumError[E any](param, message string, value any) *EnumError {
	param = ParamName(param)
	typ := reflect.TypeFor[E]()
	if isBlank(message) {
		message = fmt.Sprintf("The value of argument '%s' (%v) is invalid for Enum type '%s'.", param, value, typeName(typ))
	}
	return &EnumError{Param: param, Message: message, Value: value, Type: typ}
}

func (e *EnumError) Error() string { return render(e.Param, e.Message) }
func (e *EnumError) Kind() Kind { return KindEnum }
func (e *EnumError) Parameter() string { return e.Param }
func (e *EnumError) Is(target error) bool { return target == ErrInvalidEnum }

func (e *EnumError) LogValue() slog.Value {
	return logValue(e.Kind(), e.Param, e.Message,
		slog.Any("value", e.Value),
		slog.String("type", typeName(e.Type)),
	)
}

func render(param, message string) string {
	return param + ": " + message
}

func logValue(kind Kind, param, message string, extra ...slog.Attr) slog.Value {
	attrs := make([]slog.Attr, 0, 3+len(extra))
	attrs = append(attrs,
		slog.String("kind", string(kind)),
		slog.String("param", param),
		slog.String("message", message),
	)
	for _, a := range extra {
		if a.Value.Any() != nil {
			attrs = append(attrs, a)
		}
	}
	return slog.GroupValue(attrs...)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}

func orDefault(message, def string) string {
	if isBlank(message) {
		return def
	}
	return message
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
