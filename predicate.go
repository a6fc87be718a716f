package guard

import (
	"fmt"
	"regexp"
)

// Default messages of the predicate checks.
const (
	MsgTrue      = "Value cannot be true."
	MsgFalse     = "Value cannot be false."
	MsgPredicate = "Value does not satisfy the predicate."
	MsgFormat    = "Value cannot be matched by the regex."
)

// True fails with *ArgumentError if input is true.
func True(g Guard, input bool, param string, opts ...Option) (bool, error) {
	if err := Use(g); err != nil {
		return false, err
	}
	if input {
		return false, NewArgumentError(param, Message(MsgTrue, opts...))
	}
	return false, nil
}

// False fails with *ArgumentError if input is false.
func False(g Guard, input bool, param string, opts ...Option) (bool, error) {
	if err := Use(g); err != nil {
		return false, err
	}
	if !input {
		return false, NewArgumentError(param, Message(MsgFalse, opts...))
	}
	return true, nil
}

// InvalidInput fails with *ArgumentError if predicate reports false for input.
func InvalidInput[T any](g Guard, input T, param string, predicate func(T) bool, opts ...Option) (T, error) {
	var zero T
	if err := Use(g); err != nil {
		return zero, err
	}
	if predicate == nil {
		return zero, fmt.Errorf("%w: nil predicate for %q", ErrInvalidUsage, ParamName(param))
	}
	if !predicate(input) {
		return zero, NewArgumentError(param, Message(MsgPredicate, opts...))
	}
	return input, nil
}

// InvalidFormat fails with *ArgumentError unless pattern matches the whole input.
// A match of a substring is not enough: "\d{1,6}" accepts "12345" and rejects "12345X".
// The pattern uses RE2 syntax and is compiled on each call.
func InvalidFormat[S ~string](g Guard, input S, param, pattern string, opts ...Option) (S, error) {
	if err := Use(g); err != nil {
		return "", err
	}
	re, err := compileFull(pattern)
	if err != nil {
		return "", fmt.Errorf("%w: pattern for %q: %w", ErrInvalidUsage, ParamName(param), err)
	}
	if !re.MatchString(string(input)) {
		return "", NewArgumentError(param, Message(MsgFormat, opts...))
	}
	return input, nil
}

// compileFull anchors pattern at both ends. The pattern is compiled on its own
// first so that unbalanced input like "a)(b" cannot be closed by the anchoring group.
func compileFull(pattern string) (*regexp.Regexp, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, err
	}
	return regexp.Compile(`^(?:` + pattern + `)$`)
}
