package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/bnema/splitter/config.schema.json"

// GenerateSchema reflects the JSON schema of Config.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = schemaID
	schema.Title = "Splitter Configuration"
	schema.Description = "Configuration schema for splitter, a resizable multi-pane layout for the terminal"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes the schema next to config.toml and returns its path.
func GenerateSchemaFile() (string, error) {
	schemaFile, err := GetSchemaFile()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := EnsureDirectories(); err != nil {
		return "", err
	}

	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
