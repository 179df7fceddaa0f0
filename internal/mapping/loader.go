package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML declaration file from the given path.
func LoadFile(path string) (*DeclarationFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	df, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	df.Path = path

	return df, nil
}

// Parse parses YAML data into a DeclarationFile. Unknown top-level or
// resource keys are rejected so that typos do not silently drop settings.
func Parse(data []byte) (*DeclarationFile, error) {
	var df DeclarationFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&df); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	applyDefaults(&df)

	return &df, nil
}

// applyDefaults fills in default values for optional settings.
func applyDefaults(df *DeclarationFile) {
	if df.Version == "" {
		df.Version = "1"
	}

	if df.Package == "" {
		df.Package = "."
	}

	if df.Output == "" {
		df.Output = DefaultOutput
	}
}

// Marshal serializes a DeclarationFile to YAML.
func Marshal(df *DeclarationFile) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(df); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile writes a DeclarationFile to the given path.
func WriteFile(df *DeclarationFile, path string) error {
	data, err := Marshal(df)
	if err != nil {
		return fmt.Errorf("failed to marshal declarations: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write declaration file %s: %w", path, err)
	}

	return nil
}
