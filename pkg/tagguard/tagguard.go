package tagguard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/guard"
)

// validate caches struct metadata internally and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Invalid fails with *guard.ArgumentError if input violates the tag expression.
// The cause is the validator.ValidationErrors returned by the validator.
func Invalid[T any](g guard.Guard, input T, param, tag string, opts ...guard.Option) (T, error) {
	var zero T
	if err := guard.Use(g); err != nil {
		return zero, err
	}
	if strings.TrimSpace(tag) == "" {
		return zero, fmt.Errorf("%w: empty tag for %q", guard.ErrInvalidUsage, guard.ParamName(param))
	}
	err := run(param, func() error { return validate.Var(input, tag) })
	if err != nil {
		return zero, failure(param, err, opts, func(fe validator.FieldError) string {
			return fmt.Sprintf("Value failed the '%s' rule.", fe.Tag())
		})
	}
	return input, nil
}

// InvalidStruct fails with *guard.ArgumentError if a field of the struct input
// violates its `validate` tag. input may be a struct or a pointer to one.
func InvalidStruct[T any](g guard.Guard, input T, param string, opts ...guard.Option) (T, error) {
	var zero T
	if err := guard.Use(g); err != nil {
		return zero, err
	}
	err := run(param, func() error { return validate.Struct(input) })
	if err != nil {
		return zero, failure(param, err, opts, func(fe validator.FieldError) string {
			return fmt.Sprintf("Field '%s' failed the '%s' rule.", fe.Namespace(), fe.Tag())
		})
	}
	return input, nil
}

// run converts the validator's panics on malformed tags into usage errors.
func run(param string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %q: %v", guard.ErrInvalidUsage, guard.ParamName(param), r)
		}
	}()
	return fn()
}

func failure(param string, err error, opts []guard.Option, describe func(validator.FieldError) string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		msg := guard.Message(describe(verrs[0]), opts...)
		return guard.NewArgumentError(param, msg).Wrap(verrs)
	}
	if errors.Is(err, guard.ErrInvalidUsage) {
		return err
	}
	return fmt.Errorf("%w: %q: %w", guard.ErrInvalidUsage, guard.ParamName(param), err)
}
