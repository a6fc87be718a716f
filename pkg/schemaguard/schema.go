package schemaguard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Compile compiles schema, identified by url, into a reusable *jsonschema.Schema.
// Compiled schemas are safe for concurrent use.
func Compile(url, schema string) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, strings.NewReader(schema)); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	return sch, nil
}

// MustCompile is like Compile but panics if the schema cannot be compiled.
func MustCompile(url, schema string) *jsonschema.Schema {
	sch, err := Compile(url, schema)
	if err != nil {
		panic(fmt.Sprintf("schemaguard: compile %q: %v", url, err))
	}
	return sch
}
