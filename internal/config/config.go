// Package config loads layout and style overrides from a YAML file.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/tuckbox/tuckbox/internal/dieline"
	"github.com/tuckbox/tuckbox/internal/surface"
)

// ErrConfig is returned for an unreadable or invalid config file.
var ErrConfig = errors.New("invalid config")

// Config is the content of a config file. Keys left out keep their
// defaults.
type Config struct {
	Layout dieline.Layout `yaml:"layout"`
	Style  surface.Style  `yaml:"style"`
}

func Default() Config {
	return Config{
		Layout: dieline.DefaultLayout(),
		Style:  surface.DefaultStyle(),
	}
}

const schemaText = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "layout": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "notch_radius":    {"type": "number", "exclusiveMinimum": 0},
        "tuck_arc_factor": {"type": "number", "exclusiveMinimum": 0},
        "glue_depth":      {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 0.5},
        "side_flap_depth": {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1},
        "chamfer_inset":   {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1},
        "tuck_depth":      {"type": "number", "exclusiveMinimum": 0}
      }
    },
    "style": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "doc_width":  {"type": "integer", "minimum": 1},
        "doc_height": {"type": "integer", "minimum": 1},
        "unit":       {"enum": ["mm", "cm", "in", "pt", "px"]},
        "hairline":   {"type": "number", "exclusiveMinimum": 0},
        "stroke":     {"type": "string", "pattern": "^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[a-zA-Z]+)$"}
      }
    }
  }
}`

var schema = jsonschema.MustCompileString("tuckbox-config.json", schemaText)

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	c, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse validates raw YAML against the config schema and merges it over
// the defaults.
func Parse(raw []byte) (Config, error) {
	c := Default()
	if len(bytes.TrimSpace(raw)) == 0 {
		return c, nil
	}

	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	// the schema validator wants JSON values
	js, err := json.Marshal(doc)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	var v interface{}
	if err := json.Unmarshal(js, &v); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := schema.Validate(v); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := c.Layout.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := c.Style.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return c, nil
}
