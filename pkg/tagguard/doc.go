// Package tagguard adds guard checks driven by go-playground/validator tag
// expressions, for constraints that are easier to state as "required,email"
// or "min=1,max=64" than as code.
//
//	email, err := tagguard.Invalid(guard.Against, email, "email", "required,email")
//	req, err := tagguard.InvalidStruct(guard.Against, req, "req")
//
// Only the first failing rule is reported. Unknown tags and values the
// validator cannot inspect are reported as guard.ErrInvalidUsage.
package tagguard
