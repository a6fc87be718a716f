package ext

import "github.com/dmitrymomot/guard"

func Hello(g guard.Guard, input, param string) (string, error) { return input, nil }

// Lookalike has the right parameter names but no guard handle.
func Lookalike(g any, input, param string) (string, error) { return input, nil }

// Reversed declares param before input.
func Reversed(g guard.Guard, param string, input int) (int, error) { return input, nil }
