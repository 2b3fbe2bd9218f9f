package formats

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/vovakirdan/frotz/internal/games/frotz/core"
)

//go:embed puzzle.schema.json
var puzzleSchemaJSON string

var puzzleSchema = jsonschema.MustCompileString("puzzle.schema.json", puzzleSchemaJSON)

// SchemaError wraps a puzzle document that does not match the schema.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ParseJSON validates a JSON puzzle document against the schema and decodes it.
func ParseJSON(data []byte) (core.Data, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return core.Data{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := puzzleSchema.Validate(doc); err != nil {
		return core.Data{}, &SchemaError{Err: err}
	}
	var d core.Data
	if err := json.Unmarshal(data, &d); err != nil {
		return core.Data{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return d, nil
}

// EncodeJSON renders d as indented JSON.
func EncodeJSON(d core.Data) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate checks already-decoded data against the puzzle schema. Formats
// without a native schema go through the same rules as JSON.
func Validate(d core.Data) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	if err := puzzleSchema.Validate(doc); err != nil {
		return &SchemaError{Err: err}
	}
	return nil
}
