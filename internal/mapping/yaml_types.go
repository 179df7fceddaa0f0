package mapping

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// fullFieldDecl is the long form of a field entry.
type fullFieldDecl struct {
	Key      string    `yaml:"key"`
	Field    string    `yaml:"field,omitempty"`
	Optional bool      `yaml:"optional,omitempty"`
	Kind     FieldKind `yaml:"kind,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for FieldDecl.
// Accepts:
//   - Key only: "email" or "phone?"
//   - Key with Go field: {line1: StreetAddress} or {line2?: ExtendedAddress}
//   - Full form: {key: countryCode, field: CountryCodeAlpha2, optional: true}
func (f *FieldDecl) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		*f = FieldDecl{}
		f.Key, f.Optional = splitOptional(str)

		return nil

	case yaml.MappingNode:
		if isFullForm(node) {
			var full fullFieldDecl
			if err := node.Decode(&full); err != nil {
				return err
			}

			*f = FieldDecl(full)

			return nil
		}

		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: a shorthand field maps exactly one key to a Go field", node.Line)
		}

		var key, field string
		if err := node.Content[0].Decode(&key); err != nil {
			return err
		}

		if err := node.Content[1].Decode(&field); err != nil {
			return fmt.Errorf("line %d: Go field of %q must be a string: %w", node.Line, key, err)
		}

		*f = FieldDecl{Field: field}
		f.Key, f.Optional = splitOptional(key)

		return nil

	default:
		return fmt.Errorf("line %d: expected a key or a mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes the shortest form that round-trips.
func (f FieldDecl) MarshalYAML() (any, error) {
	if f.Kind != KindAuto || f.Key == "key" || strings.HasSuffix(f.Key, "?") {
		return fullFieldDecl(f), nil
	}

	key := f.Key
	if f.Optional {
		key += "?"
	}

	if f.Field == "" {
		return key, nil
	}

	return map[string]string{key: f.Field}, nil
}

// isFullForm reports whether a mapping node uses the long form, which is the
// case whenever it has a "key" entry.
func isFullForm(node *yaml.Node) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "key" {
			return true
		}
	}

	return false
}

func splitOptional(key string) (string, bool) {
	if trimmed, ok := strings.CutSuffix(key, "?"); ok {
		return trimmed, true
	}

	return key, false
}
