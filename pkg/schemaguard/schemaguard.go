package schemaguard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/guard"
)

// Default messages of the schema checks. WithMessage replaces any of them.
const (
	MsgNonconforming = "Value does not conform to the schema."
	MsgInvalidJSON   = "Value is not a valid JSON document."
	MsgInvalidYAML   = "Value is not a valid YAML document."
)

// InvalidJSON fails with *guard.ArgumentError if input is not a single JSON
// document conforming to schema.
func InvalidJSON(g guard.Guard, input []byte, param string, schema *jsonschema.Schema, opts ...guard.Option) ([]byte, error) {
	if err := usable(g, param, schema); err != nil {
		return nil, err
	}
	doc, err := decodeJSON(input)
	if err != nil {
		return nil, guard.NewArgumentError(param, guard.Message(MsgInvalidJSON, opts...)).Wrap(err)
	}
	if err := validate(param, schema, doc, opts); err != nil {
		return nil, err
	}
	return input, nil
}

// InvalidYAML fails with *guard.ArgumentError if input is not a YAML document
// conforming to schema. Mapping keys are compared as strings.
func InvalidYAML(g guard.Guard, input []byte, param string, schema *jsonschema.Schema, opts ...guard.Option) ([]byte, error) {
	if err := usable(g, param, schema); err != nil {
		return nil, err
	}
	var raw any
	if err := yaml.Unmarshal(input, &raw); err != nil {
		return nil, guard.NewArgumentError(param, guard.Message(MsgInvalidYAML, opts...)).Wrap(err)
	}
	doc, err := toJSON(normalize(raw))
	if err != nil {
		return nil, guard.NewArgumentError(param, guard.Message(MsgInvalidYAML, opts...)).Wrap(err)
	}
	if err := validate(param, schema, doc, opts); err != nil {
		return nil, err
	}
	return input, nil
}

// InvalidValue fails with *guard.ArgumentError if the JSON encoding of input
// does not conform to schema. Values that cannot be encoded fail as well.
func InvalidValue[T any](g guard.Guard, input T, param string, schema *jsonschema.Schema, opts ...guard.Option) (T, error) {
	var zero T
	if err := usable(g, param, schema); err != nil {
		return zero, err
	}
	doc, err := toJSON(input)
	if err != nil {
		return zero, guard.NewArgumentError(param, guard.Message(MsgInvalidJSON, opts...)).Wrap(err)
	}
	if err := validate(param, schema, doc, opts); err != nil {
		return zero, err
	}
	return input, nil
}

func usable(g guard.Guard, param string, schema *jsonschema.Schema) error {
	if err := guard.Use(g); err != nil {
		return err
	}
	if schema == nil {
		return fmt.Errorf("%w: nil schema for %q", guard.ErrInvalidUsage, guard.ParamName(param))
	}
	return nil
}

func validate(param string, schema *jsonschema.Schema, doc any, opts []guard.Option) error {
	if err := schema.Validate(doc); err != nil {
		return guard.NewArgumentError(param, guard.Message(MsgNonconforming, opts...)).Wrap(err)
	}
	return nil
}

// decodeJSON decodes exactly one document, keeping numbers as json.Number.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrTrailingData
	}
	return doc, nil
}

func toJSON(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return decodeJSON(data)
}

// normalize converts the map[any]any values yaml.v3 produces for non-string
// keys into map[string]any so the document can be encoded as JSON.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalize(item)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalize(item)
		}
		return val
	default:
		return v
	}
}
