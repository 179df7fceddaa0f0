package codec

import (
	"fmt"

	"apiresource/resource"

	"gopkg.in/yaml.v3"
)

type yamlCodec struct{}

func YAML() Codec { return yamlCodec{} }

func (yamlCodec) Name() string         { return "yaml" }
func (yamlCodec) ContentType() string  { return "application/yaml" }
func (yamlCodec) Extensions() []string { return []string{".yaml", ".yml"} }

func (yamlCodec) Marshal(d resource.Dictionary) ([]byte, error) {
	return yaml.Marshal(d)
}

func (yamlCodec) Unmarshal(data []byte) (resource.Dictionary, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}

	return toDictionary(v)
}
