package jsonschema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"userId": { "type": "string" },
		"count": { "type": "integer" }
	},
	"required": ["userId"]
}`

func TestCompileInvalidSchema(t *testing.T) {
	_, err := Compile(`{"type": 42}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaCompile))
}

func TestValidateConformingDocument(t *testing.T) {
	s, err := Compile(testSchema)
	require.NoError(t, err)

	doc := map[string]any{"userId": "u-1", "count": float64(3)}
	assert.NoError(t, s.Validate(doc))
}

func TestValidateNonConformingDocument(t *testing.T) {
	s, err := Compile(testSchema)
	require.NoError(t, err)

	err = s.Validate(map[string]any{"count": "not-an-integer"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidationFailed))
}

func TestValidateBytes(t *testing.T) {
	s, err := Compile(testSchema)
	require.NoError(t, err)

	assert.NoError(t, s.ValidateBytes([]byte(`{"userId":"u-1"}`)))
	assert.Error(t, s.ValidateBytes([]byte(`{"count":1}`)))
}

func TestMustCompilePanicsOnBadSchema(t *testing.T) {
	assert.Panics(t, func() { MustCompile(`{"type": 42}`) })
	assert.NotPanics(t, func() { MustCompile(testSchema) })
}
