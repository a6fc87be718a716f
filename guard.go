package guard

import "fmt"

// Guard is the capability every check accepts as its first argument.
// It carries no state; Against is the only value callers need.
// Extension packages define new checks as free functions taking a Guard.
type Guard interface {
	guard()
}

type against struct{}

func (against) guard() {}

// Against is the entry point to all checks.
//
//	count, err := guard.Negative(guard.Against, count, "count")
var Against Guard = against{}

// Option configures a single check invocation.
type Option func(*options)

type options struct {
	message string
}

// WithMessage overrides the default failure message of a check.
// A blank message keeps the default.
func WithMessage(msg string) Option {
	return func(o *options) { o.message = msg }
}

// WithMessagef is WithMessage with fmt.Sprintf formatting.
func WithMessagef(format string, args ...any) Option {
	return func(o *options) { o.message = fmt.Sprintf(format, args...) }
}

// Message resolves the custom message from opts, falling back to def.
// Extension checks use it to honor WithMessage the same way built-in checks do.
func Message(def string, opts ...Option) string {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if isBlank(o.message) {
		return def
	}
	return o.message
}

// Use validates the guard handle itself. Every check calls it first;
// extension checks should do the same.
func Use(g Guard) error {
	if g == nil {
		return fmt.Errorf("%w: nil guard, use guard.Against", ErrInvalidUsage)
	}
	return nil
}

// Must returns v, or panics with err if it is not nil.
// It lets a check be inlined in a single expression:
//
//	s.limit = guard.Must(guard.NegativeOrZero(guard.Against, limit, "limit"))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
