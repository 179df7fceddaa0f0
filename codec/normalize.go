package codec

import (
	"fmt"

	"apiresource/resource"
)

// Normalize rewrites a decoded document into the shapes the resource decoder
// understands: maps become map[string]any and lists become []any. Scalars are
// kept as decoded. A map key that is not a string is an error.
func Normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			n, err := Normalize(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}

			out[k] = n
		}

		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("map key %v is %T, not a string", k, k)
			}

			n, err := Normalize(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}

			out[key] = n
		}

		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			n, err := Normalize(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}

			out[i] = n
		}

		return out, nil
	case []string:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = item
		}

		return out, nil
	default:
		return v, nil
	}
}

// toDictionary normalizes a decoded document and checks that it is a map.
func toDictionary(v any) (resource.Dictionary, error) {
	n, err := Normalize(v)
	if err != nil {
		return nil, err
	}

	dict, ok := n.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is %T", ErrNotDictionary, v)
	}

	return dict, nil
}
