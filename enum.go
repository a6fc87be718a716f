package guard

import "slices"

// Enum is implemented by enumeration types that can list their declared members.
//
//	type Status int
//
//	const (
//		StatusActive Status = iota + 1
//		StatusBlocked
//	)
//
//	func (Status) Values() []Status { return []Status{StatusActive, StatusBlocked} }
type Enum[E any] interface {
	comparable
	Values() []E
}

// IntegerEnum is an Enum backed by an integer type.
type IntegerEnum[E any] interface {
	Enum[E]
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// OutOfRangeEnum fails with *EnumError if input is not one of E's declared members.
func OutOfRangeEnum[E Enum[E]](g Guard, input E, param string, opts ...Option) (E, error) {
	var zero E
	if err := Use(g); err != nil {
		return zero, err
	}
	if !slices.Contains(zero.Values(), input) {
		return zero, NewEnumError[E](param, Message("", opts...), input)
	}
	return input, nil
}

// OutOfRangeEnumValue fails with *EnumError if the raw value input does not
// convert to one of E's declared members. Values that do not fit E are rejected
// rather than truncated.
func OutOfRangeEnumValue[E IntegerEnum[E]](g Guard, input int, param string, opts ...Option) (int, error) {
	if err := Use(g); err != nil {
		return 0, err
	}
	var zero E
	member := E(input)
	fits := int(member) == input && (input < 0) == (member < 0)
	if !fits || !slices.Contains(zero.Values(), member) {
		return 0, NewEnumError[E](param, Message("", opts...), input)
	}
	return input, nil
}
