package codec

import (
	"encoding/json"
	"fmt"

	"apiresource/resource"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// protoCodec carries a dictionary as a google.protobuf.Struct. Numbers come
// back as float64.
type protoCodec struct {
	mo proto.MarshalOptions
	uo proto.UnmarshalOptions
}

func Proto() Codec {
	return protoCodec{
		mo: proto.MarshalOptions{Deterministic: true},
		uo: proto.UnmarshalOptions{DiscardUnknown: true},
	}
}

func (protoCodec) Name() string         { return "proto" }
func (protoCodec) ContentType() string  { return "application/x-protobuf" }
func (protoCodec) Extensions() []string { return []string{".pb", ".binpb"} }

func (p protoCodec) Marshal(d resource.Dictionary) ([]byte, error) {
	n, err := protoValues(d)
	if err != nil {
		return nil, fmt.Errorf("proto: %w", err)
	}

	s, err := structpb.NewStruct(n.(map[string]any))
	if err != nil {
		return nil, fmt.Errorf("proto: %w", err)
	}

	return p.mo.Marshal(s)
}

func (p protoCodec) Unmarshal(data []byte) (resource.Dictionary, error) {
	var s structpb.Struct
	if err := p.uo.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("proto: %w", err)
	}

	return s.AsMap(), nil
}

// protoValues normalizes d and converts json.Number, which structpb does not
// accept, into float64.
func protoValues(d resource.Dictionary) (any, error) {
	n, err := Normalize(map[string]any(d))
	if err != nil {
		return nil, err
	}

	return convertNumbers(n)
}

func convertNumbers(v any) (any, error) {
	switch t := v.(type) {
	case json.Number:
		return t.Float64()
	case map[string]any:
		for k, item := range t {
			c, err := convertNumbers(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}

			t[k] = c
		}

		return t, nil
	case []any:
		for i, item := range t {
			c, err := convertNumbers(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}

			t[i] = c
		}

		return t, nil
	default:
		return v, nil
	}
}
