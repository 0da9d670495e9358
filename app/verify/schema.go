package verify

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	schemavalidator "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const entitySchemaURL = "entity.json"

// EntitySchema returns the JSON schema of the entity file, reflected from Entity.
func EntitySchema() ([]byte, error) {
	r := &jsonschema.Reflector{DoNotReference: true, Anonymous: true}
	schema := r.Reflect(&Entity{})
	schema.Title = "zenshot entity"
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity schema: %w", err)
	}
	return data, nil
}

// NewEntityValidator compiles the entity schema and returns a validator for yaml entity files.
func NewEntityValidator() (EntityValidator, error) {
	schemaData, err := EntitySchema()
	if err != nil {
		return nil, err
	}

	c := schemavalidator.NewCompiler()
	if err := c.AddResource(entitySchemaURL, bytes.NewReader(schemaData)); err != nil {
		return nil, fmt.Errorf("failed to add entity schema: %w", err)
	}
	sch, err := c.Compile(entitySchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile entity schema: %w", err)
	}

	return func(data []byte) error {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse entity file: %w", err)
		}
		// round-trip through json to get the value types the validator expects
		jsonData, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to convert entity file: %w", err)
		}
		dec := json.NewDecoder(bytes.NewReader(jsonData))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("failed to convert entity file: %w", err)
		}
		if err := sch.Validate(v); err != nil {
			return fmt.Errorf("entity file does not match schema: %w", err)
		}
		return nil
	}, nil
}
