package guard

type Guard interface{ guard() }

type against struct{}

func (against) guard() {}

var Against Guard = against{}

type Option func(*string)

func Null[T any](g Guard, input T, param string, opts ...Option) (T, error) { return input, nil }

func NullOrEmpty[S ~string](g Guard, input S, param string, opts ...Option) (S, error) {
	return input, nil
}

func Zero[T ~int](g Guard, input T, param string, opts ...Option) (T, error) { return input, nil }

func OutOfRange[T ~int](g Guard, input T, param string, from, to T, opts ...Option) (T, error) {
	return input, nil
}

func InvalidInput[T any](g Guard, input T, param string, predicate func(T) bool, opts ...Option) (T, error) {
	return input, nil
}
