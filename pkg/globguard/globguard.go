package globguard

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dmitrymomot/guard"
)

// Default messages of the glob checks. WithMessage replaces any of them.
const (
	MsgNotMatch       = "Value does not match the pattern."
	MsgMatch          = "Value cannot match the pattern."
	MsgInvalidPattern = "Value is not a valid glob pattern."
)

// NotMatch fails with *guard.ArgumentError if input does not match pattern.
func NotMatch(g guard.Guard, input, param, pattern string, opts ...guard.Option) (string, error) {
	ok, err := match(g, input, param, pattern)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", guard.NewArgumentError(param, guard.Message(MsgNotMatch, opts...))
	}
	return input, nil
}

// Match fails with *guard.ArgumentError if input matches pattern.
func Match(g guard.Guard, input, param, pattern string, opts ...guard.Option) (string, error) {
	ok, err := match(g, input, param, pattern)
	if err != nil {
		return "", err
	}
	if ok {
		return "", guard.NewArgumentError(param, guard.Message(MsgMatch, opts...))
	}
	return input, nil
}

// InvalidPattern fails with *guard.ArgumentError if input is not a valid pattern.
func InvalidPattern(g guard.Guard, input, param string, opts ...guard.Option) (string, error) {
	if err := guard.Use(g); err != nil {
		return "", err
	}
	if !doublestar.ValidatePattern(input) {
		return "", guard.NewArgumentError(param, guard.Message(MsgInvalidPattern, opts...)).
			Wrap(doublestar.ErrBadPattern)
	}
	return input, nil
}

func match(g guard.Guard, input, param, pattern string) (bool, error) {
	if err := guard.Use(g); err != nil {
		return false, err
	}
	// Match may return before reading the whole pattern, so validate it first.
	if !doublestar.ValidatePattern(pattern) {
		return false, fmt.Errorf("%w: pattern %q for %q: %w", guard.ErrInvalidUsage, pattern, guard.ParamName(param), doublestar.ErrBadPattern)
	}
	return doublestar.Match(pattern, input)
}
