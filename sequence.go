package guard

import (
	"iter"
	"slices"
)

// NullOrEmptySeq fails with *NullError if input is nil and with *ArgumentError
// if it yields no elements.
//
// input is ranged exactly once, so single-use sequences are safe to check.
// The elements are collected, and the returned sequence replays them; it can be
// ranged any number of times. input must be finite.
func NullOrEmptySeq[E any](g Guard, input iter.Seq[E], param string, opts ...Option) (iter.Seq[E], error) {
	if _, err := Null(g, input, param); err != nil {
		return nil, err
	}
	items := slices.Collect(input)
	if len(items) == 0 {
		return nil, NewArgumentError(param, Message(MsgEmptySeq, opts...))
	}
	return slices.Values(items), nil
}
