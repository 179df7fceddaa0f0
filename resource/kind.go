package resource

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind tags the variant of a ValueType.
type Kind int

const (
	_ Kind = iota

	KindString
	KindStringSet
	KindResource
	KindOptional
)

// Name is the lower-case name used in error messages.
func (k Kind) Name() string {
	switch k {
	case KindString:
		return "string"
	case KindStringSet:
		return "string set"
	case KindResource:
		return "resource"
	case KindOptional:
		return "optional"
	default:
		return "unknown"
	}
}
