package guard

import (
	"reflect"
	"strings"
)

// Default messages of the presence checks.
const (
	MsgDefault    = "Value cannot be default."
	MsgEmpty      = "Value cannot be empty."
	MsgEmptySeq   = "Enumerable cannot be empty."
	MsgWhiteSpace = "Value cannot be whitespace-only."
)

// Null fails with *NullError if input is nil.
// Pointers, maps, slices, channels, funcs and interfaces can be nil;
// any other type always passes.
func Null[T any](g Guard, input T, param string, opts ...Option) (T, error) {
	var zero T
	if err := Use(g); err != nil {
		return zero, err
	}
	if isNil(input) {
		return zero, NewNullError(param, Message(MsgNull, opts...))
	}
	return input, nil
}

// Default fails with *ArgumentError if input is nil or the zero value of its type.
// Types with an IsZero() bool method (time.Time) are asked directly.
func Default[T any](g Guard, input T, param string, opts ...Option) (T, error) {
	var zero T
	if err := Use(g); err != nil {
		return zero, err
	}
	if isNil(input) || isZero(input) {
		return zero, NewArgumentError(param, Message(MsgDefault, opts...))
	}
	return input, nil
}

// NullOrEmpty fails with *ArgumentError if input has zero length.
func NullOrEmpty[S ~string](g Guard, input S, param string, opts ...Option) (S, error) {
	if err := Use(g); err != nil {
		return "", err
	}
	if len(input) == 0 {
		return "", NewArgumentError(param, Message(MsgEmpty, opts...))
	}
	return input, nil
}

// NullOrEmptyPtr fails with *NullError if input is nil, then behaves like NullOrEmpty.
// The custom message applies to the emptiness failure only.
func NullOrEmptyPtr[S ~string](g Guard, input *S, param string, opts ...Option) (S, error) {
	if _, err := Null(g, input, param); err != nil {
		return "", err
	}
	return NullOrEmpty(g, *input, param, opts...)
}

// NullOrEmptySlice fails with *NullError if input is nil
// and with *ArgumentError if it has no elements.
func NullOrEmptySlice[S ~[]E, E any](g Guard, input S, param string, opts ...Option) (S, error) {
	if _, err := Null(g, input, param); err != nil {
		return nil, err
	}
	if len(input) == 0 {
		return nil, NewArgumentError(param, Message(MsgEmptySeq, opts...))
	}
	return input, nil
}

// NullOrEmptyMap fails with *NullError if input is nil
// and with *ArgumentError if it has no entries.
func NullOrEmptyMap[M ~map[K]V, K comparable, V any](g Guard, input M, param string, opts ...Option) (M, error) {
	if _, err := Null(g, input, param); err != nil {
		return nil, err
	}
	if len(input) == 0 {
		return nil, NewArgumentError(param, Message(MsgEmptySeq, opts...))
	}
	return input, nil
}

// NullOrWhiteSpace runs NullOrEmpty first, so an empty input is reported as empty,
// then fails with *ArgumentError if input consists of white space only.
// The custom message applies to the white space failure only.
func NullOrWhiteSpace[S ~string](g Guard, input S, param string, opts ...Option) (S, error) {
	if _, err := NullOrEmpty(g, input, param); err != nil {
		return "", err
	}
	if strings.TrimSpace(string(input)) == "" {
		return "", NewArgumentError(param, Message(MsgWhiteSpace, opts...))
	}
	return input, nil
}

// NullOrWhiteSpacePtr is NullOrWhiteSpace for an optional string.
func NullOrWhiteSpacePtr[S ~string](g Guard, input *S, param string, opts ...Option) (S, error) {
	if _, err := Null(g, input, param); err != nil {
		return "", err
	}
	return NullOrWhiteSpace(g, *input, param, opts...)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

type zeroer interface {
	IsZero() bool
}

// isZero expects a non-nil v. A pointer inherits IsZero from its element
// type but is never zero itself once non-nil, so only non-pointers are asked.
func isZero(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		if z, ok := v.(zeroer); ok {
			return z.IsZero()
		}
	}
	return rv.IsZero()
}
