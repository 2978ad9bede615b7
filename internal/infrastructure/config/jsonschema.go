package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/invopop/jsonschema"
)

const (
	schemaFileName = "config.schema.json"
	filePerm       = 0o644
)

// GenerateSchemaFile writes config.schema.json into dir for editor
// tooling. It is called when a default config is created.
func GenerateSchemaFile(dir string) (string, error) {
	data, err := json.MarshalIndent(reflectSchema(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}

	schemaFile := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}

func reflectSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:               "toml",
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true, // every key has a default
		// Durations are written like "4s" in the TOML file.
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == reflect.TypeOf(time.Duration(0)) {
				return &jsonschema.Schema{Type: "string", Pattern: `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`}
			}
			return nil
		},
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/codeora/config.schema.json"
	schema.Title = "codeora configuration"
	schema.Description = "Configuration schema for codeora, a desktop shell for a single chat page"
	return schema
}
