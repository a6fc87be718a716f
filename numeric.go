package guard

// Default messages of the sign checks.
const (
	MsgNegative       = "Value cannot be negative."
	MsgZero           = "Value cannot be zero."
	MsgNegativeOrZero = "Value cannot be negative or zero."
)

// Signed is satisfied by numeric types that can hold negative values, time.Duration included.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// Numeric is satisfied by every built-in numeric type.
type Numeric interface {
	Signed |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Negative fails with *ArgumentError if input is less than zero. Zero passes.
func Negative[T Signed](g Guard, input T, param string, opts ...Option) (T, error) {
	if err := Use(g); err != nil {
		return 0, err
	}
	if input < 0 {
		return 0, NewArgumentError(param, Message(MsgNegative, opts...))
	}
	return input, nil
}

// Zero fails with *ArgumentError if input equals zero.
func Zero[T Numeric](g Guard, input T, param string, opts ...Option) (T, error) {
	if err := Use(g); err != nil {
		return 0, err
	}
	if input == 0 {
		return 0, NewArgumentError(param, Message(MsgZero, opts...))
	}
	return input, nil
}

// NegativeOrZero fails with *ArgumentError if input is less than or equal to zero.
// For unsigned types it is equivalent to Zero.
func NegativeOrZero[T Numeric](g Guard, input T, param string, opts ...Option) (T, error) {
	if err := Use(g); err != nil {
		return 0, err
	}
	if input <= 0 {
		return 0, NewArgumentError(param, Message(MsgNegativeOrZero, opts...))
	}
	return input, nil
}
