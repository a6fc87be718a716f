// Package guard provides generic precondition checks for function arguments.
//
// Every check takes the Against handle, the value to check and the name of the
// parameter it came from. It returns the value unchanged when the constraint
// holds, so the check can be inlined into an assignment, and a typed failure
// otherwise. Checks fail fast: the first violated constraint is returned.
//
// # Architecture
//
// Each source file groups a family of checks (`null.go`, `numeric.go`,
// `range.go`, `enum.go`, `predicate.go`, `uuid.go`, `sequence.go`). Checks are
// plain generic functions; numeric checks are written once against the Signed
// and Numeric constraints instead of once per type. There is no global state,
// so every check is safe for concurrent use.
//
// Failures are built by the constructors in `errors.go`, which also enforce the
// naming policy: a blank parameter name becomes MissingParam and a blank
// message becomes the default message of the failure category.
//
// # Usage
//
//	func NewPool(name string, size int, idle time.Duration) (*Pool, error) {
//	    name, err := guard.NullOrWhiteSpace(guard.Against, name, "name")
//	    if err != nil {
//	        return nil, err
//	    }
//	    if _, err := guard.OutOfRange(guard.Against, size, "size", 1, 64); err != nil {
//	        return nil, err
//	    }
//	    if _, err := guard.Negative(guard.Against, idle, "idle"); err != nil {
//	        return nil, err
//	    }
//	    return &Pool{name: name, size: size, idle: idle}, nil
//	}
//
// Must turns a failure into a panic for start-up code where a bad argument is a
// programming error:
//
//	limit := guard.Must(guard.NegativeOrZero(guard.Against, cfg.Limit, "cfg.Limit"))
//
// Passing "" as the parameter name and running the guardname command (see
// cmd/guardname) fills the name in from the argument expression at the call site.
//
// # Error Handling
//
// Failures implement the Failure interface and match a sentinel through
// errors.Is:
//
//	*NullError      ErrNull             nil value
//	*ArgumentError  ErrInvalidArgument  generic constraint violation
//	*RangeError     ErrOutOfRange       value outside [From, To]
//	*EnumError      ErrInvalidEnum      value is not a declared enum member
//
// A malformed invocation (nil guard, nil predicate, invalid pattern) returns an
// error wrapping ErrInvalidUsage instead of a Failure. Inverted OutOfRange
// bounds are reported as an *ArgumentError for the checked parameter that also
// matches ErrInvalidUsage.
//
// # Extending
//
// New checks are free functions in any package that take a Guard first and
// build their failures with NewArgumentError and friends:
//
//	func Hello(g guard.Guard, input, param string, opts ...guard.Option) (string, error) {
//	    if err := guard.Use(g); err != nil {
//	        return "", err
//	    }
//	    if strings.EqualFold(input, "hello") {
//	        return "", guard.NewArgumentError(param, guard.Message("Value cannot be hello.", opts...))
//	    }
//	    return input, nil
//	}
//
// See pkg/globguard, pkg/schemaguard and pkg/tagguard for complete examples.
package guard
