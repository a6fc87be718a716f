// Package paramname defines an analyzer that fills in the parameter names of
// guard checks from the source of the argument being checked.
//
// # Analyzer guardname
//
// guardname: infer guard parameter names from call sites
//
// A guard check is any function whose first parameter is a guard.Guard and
// which declares parameters named input and param, so checks defined outside
// the guard module are recognized too. When the param argument is a blank
// string literal the analyzer reports it and suggests replacing it with the
// source text of the input argument:
//
//	guard.Null(guard.Against, cfg.Pool, "")
//
// becomes
//
//	guard.Null(guard.Against, cfg.Pool, "cfg.Pool")
//
// With -strict it also reports literal names that differ from the argument
// source. Non-literal names (constants, variables, computed strings) are left alone.
package paramname
