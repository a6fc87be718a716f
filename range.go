package guard

import (
	"cmp"
	"fmt"
)

// MsgInvertedRange is returned when the lower bound of a range is above the upper bound.
const MsgInvertedRange = "Value of the lower bound cannot be greater than the upper bound."

// OutOfRange fails with *RangeError if input is outside the inclusive range [from, to].
//
// Bounds with from > to are a misuse of the check rather than a bad input. They are
// still reported against param, as an *ArgumentError whose cause is ErrInvalidUsage,
// regardless of input.
//
// Values are ordered with cmp.Compare, so a NaN input is below any range.
func OutOfRange[T cmp.Ordered](g Guard, input T, param string, from, to T, opts ...Option) (T, error) {
	return OutOfRangeFunc(g, input, param, from, to, cmp.Compare[T], opts...)
}

// OutOfRangeFunc is OutOfRange for types ordered by a three-way compare function,
// such as time.Time.Compare.
func OutOfRangeFunc[T any](g Guard, input T, param string, from, to T, compare func(a, b T) int, opts ...Option) (T, error) {
	var zero T
	if err := Use(g); err != nil {
		return zero, err
	}
	if compare == nil {
		return zero, fmt.Errorf("%w: nil compare function for %q", ErrInvalidUsage, ParamName(param))
	}

	if compare(from, to) > 0 {
		return zero, NewArgumentError(param, Message(MsgInvertedRange, opts...)).
			Wrap(fmt.Errorf("%w: range [%v, %v] is inverted", ErrInvalidUsage, from, to))
	}

	if compare(input, from) < 0 || compare(input, to) > 0 {
		return zero, NewRangeError(param, Message(MsgOutOfRange, opts...), input, from, to)
	}

	return input, nil
}
