package jsonschema

import "errors"

var (
	ErrSchemaCompile    = errors.New("schema compilation failed")
	ErrValidationSystem = errors.New("schema validation system error")
	ErrValidationFailed = errors.New("schema validation failed")
)
