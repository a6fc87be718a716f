package schemaguard

import "errors"

var (
	// ErrInvalidSchema is returned by Compile when the schema cannot be compiled.
	ErrInvalidSchema = errors.New("schemaguard: invalid schema")

	// ErrTrailingData is the decode cause when a JSON document is followed by more data.
	ErrTrailingData = errors.New("schemaguard: unexpected data after document")
)
