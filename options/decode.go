package options

type DecodeEnum int

const (
	DecodeRejectUnknownKeys       DecodeEnum = 1 << iota // keys not declared in the format fail the decode
	DecodeRejectDuplicateSetItems                        // a string set list may not repeat an element

	DecodeAll  DecodeEnum = (1 << iota) - 1 // all options combined
	DecodeNone DecodeEnum = 0               // lenient decoding, unknown keys are ignored
)

// Has reports whether every option in o is enabled.
func (d DecodeEnum) Has(o DecodeEnum) bool {
	return d&o == o
}

// String lists enabled options, "none" when no option is set.
func (d DecodeEnum) String() string {
	if d == DecodeNone {
		return "none"
	}

	var s string
	add := func(name string) {
		if s != "" {
			s += "|"
		}
		s += name
	}

	if d.Has(DecodeRejectUnknownKeys) {
		add("reject-unknown-keys")
	}
	if d.Has(DecodeRejectDuplicateSetItems) {
		add("reject-duplicate-set-items")
	}

	return s
}
