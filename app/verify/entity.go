package verify

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entity is the record created in the vault and opened in zen mode.
type Entity struct {
	Kind   string            `yaml:"kind" json:"kind" jsonschema:"minLength=1,description=entity kind passed to createEntity"`
	Name   string            `yaml:"name" json:"name" jsonschema:"minLength=1,description=entity name"`
	ID     string            `yaml:"id,omitempty" json:"id,omitempty" jsonschema:"description=explicit entity id (the app derives it from name if empty)"`
	Fields map[string]string `yaml:"fields,omitempty" json:"fields,omitempty" jsonschema:"description=entity fields like content and image"`
}

// nonIDChars matches runs of characters the vault drops from entity ids.
var nonIDChars = regexp.MustCompile(`[^a-z0-9]+`)

// EntityValidator validates raw entity file data.
type EntityValidator func(data []byte) error

// DefaultEntity returns the character used when no entity file is given.
func DefaultEntity() Entity {
	return Entity{
		Kind: "character",
		Name: "Hero",
		Fields: map[string]string{
			"content": "# Hero Content",
			"image":   "https://via.placeholder.com/300",
		},
	}
}

// LoadEntity reads an entity from a yaml file. If validator is provided, the data is checked before parsing.
func LoadEntity(path string, validator EntityValidator) (Entity, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from CLI flag
	if err != nil {
		return Entity{}, fmt.Errorf("failed to read entity file: %w", err)
	}

	if validator != nil {
		if err := validator(data); err != nil {
			return Entity{}, err
		}
	}

	var e Entity
	if err := yaml.Unmarshal(data, &e); err != nil {
		return Entity{}, fmt.Errorf("failed to parse entity file: %w", err)
	}
	if err := e.Validate(); err != nil {
		return Entity{}, fmt.Errorf("invalid entity in %s: %w", path, err)
	}
	return e, nil
}

// Validate checks required entity fields.
func (e Entity) Validate() error {
	if strings.TrimSpace(e.Kind) == "" {
		return errors.New("kind is required")
	}
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

// ZenID returns the id the vault is expected to assign to the entity. It is used only when createEntity
// does not report the id back. An explicit id wins; otherwise the lower-cased name with every run of
// characters outside a-z and 0-9 replaced by "-", or "untitled" when nothing is left. "Hero" -> "hero", "Zoë" -> "zo".
func (e Entity) ZenID() string {
	if e.ID != "" {
		return e.ID
	}
	id := strings.Trim(nonIDChars.ReplaceAllString(strings.ToLower(e.Name), "-"), "-")
	if id == "" {
		return "untitled"
	}
	return id
}

// fieldsArg converts fields to the initial data map for page evaluation. An explicit id is passed along.
func (e Entity) fieldsArg() map[string]any {
	res := make(map[string]any, len(e.Fields)+1)
	for k, v := range e.Fields {
		res[k] = v
	}
	if e.ID != "" {
		res["id"] = e.ID
	}
	return res
}
