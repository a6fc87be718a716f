// Package schemaguard adds guard checks that validate JSON and YAML documents,
// or any value that marshals to JSON, against a compiled JSON Schema.
//
//	var manifestSchema = schemaguard.MustCompile("manifest.json", manifestJSON)
//
//	func Install(raw []byte) error {
//	    raw, err := schemaguard.InvalidYAML(guard.Against, raw, "raw", manifestSchema)
//	    ...
//	}
//
// A document that cannot be decoded or does not conform to the schema fails
// with *guard.ArgumentError; the decoder or *jsonschema.ValidationError is
// available through errors.As. A nil schema is guard.ErrInvalidUsage.
package schemaguard
