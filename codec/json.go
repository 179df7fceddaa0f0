package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"apiresource/resource"
)

type jsonCodec struct{}

// JSON returns a JSON codec. Numbers decode as json.Number so that no
// precision is lost before the resource decoder sees them.
func JSON() Codec { return jsonCodec{} }

func (jsonCodec) Name() string         { return "json" }
func (jsonCodec) ContentType() string  { return "application/json" }
func (jsonCodec) Extensions() []string { return []string{".json"} }

func (jsonCodec) Marshal(d resource.Dictionary) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

func (jsonCodec) Unmarshal(data []byte) (resource.Dictionary, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}

	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, errors.New("json: unexpected data after the top-level value")
	}

	return toDictionary(v)
}
