package primitive

import (
	"encoding/json"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the shape of a raw value as found in an API dictionary.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindNull
	KindString
	KindBool
	KindNumber
	KindList
	KindMap

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Name returns the lower-case name used in diagnostics ("string", "list", ...).
func (k KindEnum) Name() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Of classifies a raw value. Values that cannot appear in a decoded API
// dictionary return the zero KindEnum.
func Of(v any) KindEnum {
	switch v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case bool:
		return KindBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return KindNumber
	case []any, []string, []map[string]any:
		return KindList
	case map[string]any:
		return KindMap
	default:
		return 0
	}
}

// Strings returns the elements of a list value when every element is a string.
// The second result is the index of the first offending element, or -1.
func Strings(v any) ([]string, int, bool) {
	switch list := v.(type) {
	case []string:
		return list, -1, true
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, i, false
			}

			out = append(out, s)
		}

		return out, -1, true
	default:
		return nil, -1, false
	}
}
