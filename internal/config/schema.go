package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"quickscape/internal/terrain"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const schemaURL = "https://quickscape.local/config.schema.json"

const schemaSource = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "width":          {"type": "number", "exclusiveMinimum": 0},
    "depth":          {"type": "number", "exclusiveMinimum": 0},
    "subdivisions_x": {"type": "integer", "minimum": 0},
    "subdivisions_z": {"type": "integer", "minimum": 0},
    "period":         {"type": "number", "exclusiveMinimum": 0},
    "octaves":        {"type": "integer", "minimum": 1, "maximum": 16},
    "height_scale":   {"type": "number"},
    "seed":           {"type": "integer"},
    "algorithm":      {"enum": ["smooth-simplex", "perlin", "value"]},
    "material":       {"type": "string"}
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString(schemaURL, schemaSource)
	})
	return schema, schemaErr
}

// validateDocument checks a YAML document against the config schema. The
// document is round-tripped through JSON so the validator sees plain JSON
// values.
func validateDocument(raw []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: parse: %v", terrain.ErrInvalidConfiguration, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", terrain.ErrInvalidConfiguration, err)
	}
	var v any
	if err := json.Unmarshal(js, &v); err != nil {
		return fmt.Errorf("%w: %v", terrain.ErrInvalidConfiguration, err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", terrain.ErrInvalidConfiguration, err)
	}
	return nil
}
