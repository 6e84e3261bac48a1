// Package jsonschema wraps gojsonschema behind a compile-once Schema type
// with aggregated validation errors.
package jsonschema

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is a compiled JSON schema, safe for concurrent use.
type Schema struct {
	compiled *gojsonschema.Schema
}

// Compile parses and compiles a schema document. The schema itself is
// validated here so callers fail fast on a broken schema.
func Compile(schema string) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaCompile, err)
	}
	return &Schema{compiled: compiled}, nil
}

// MustCompile is like Compile but panics on error. Intended for schemas
// declared as package-level constants.
func MustCompile(schema string) *Schema {
	s, err := Compile(schema)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks a document against the schema and returns a single error
// aggregating every validation failure, or nil when the document conforms.
func (s *Schema) Validate(document any) error {
	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(document))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidationSystem, err)
	}
	if result.Valid() {
		return nil
	}
	var errMsg string
	for _, desc := range result.Errors() {
		errMsg += fmt.Sprintf("- %s; ", desc)
	}
	return fmt.Errorf("%w: %s", ErrValidationFailed, errMsg)
}

// ValidateBytes checks a raw JSON document against the schema.
func (s *Schema) ValidateBytes(document []byte) error {
	result, err := s.compiled.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidationSystem, err)
	}
	if result.Valid() {
		return nil
	}
	var errMsg string
	for _, desc := range result.Errors() {
		errMsg += fmt.Sprintf("- %s; ", desc)
	}
	return fmt.Errorf("%w: %s", ErrValidationFailed, errMsg)
}
