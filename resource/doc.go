// Package resource maps between API dictionaries (decoded JSON-like
// map[string]any trees) and statically typed model structs.
//
// A model type declares its wire layout once, as a Format: an ordered list of
// API keys, each bound to a value type and a field-reference closure. No
// reflection and no method lookup by name is involved; the closures are the
// accessors.
//
//	var addressFormat = resource.MustFormat("Address",
//		resource.Field("line1", resource.String(func(a *Address) *string { return &a.Line1 })),
//		resource.Field("line2", resource.Optional(resource.String(func(a *Address) *string { return &a.Line2 }))),
//	)
//
//	func (*Address) APIFormat() *resource.Format[Address] { return addressFormat }
//
// # Value types
//
//   - String: the raw value must be a string
//   - StringSetOf: the raw value must be a list of strings; the field is a StringSet
//   - Resource: the raw value must be a map, decoded with the nested type's Format
//   - Optional: wraps any of the above; an absent or null value leaves the
//     field at its zero value, and a zero value is omitted on encode
//
// # Decoding
//
// Decode walks the fields in declaration order against a fresh zero value and
// stops at the first failure. Nothing is returned unless every field decoded.
// Failures are *Error values whose Code is one of ErrorResourceSpecificationInvalid,
// ErrorResourceDictionaryMissingKey, ErrorResourceDictionaryInvalid or
// ErrorResourceDictionaryNestedResourceInvalid. Nested failures wrap the inner
// *Error, so Path reports the full key path ("details.billingAddress.line1").
//
// Config tightens decoding: unknown keys and duplicate set items can be
// rejected, and MaxDepth bounds nested recursion.
//
// # Encoding
//
// Encode is the mirror image and cannot fail. String sets are emitted sorted,
// so encoding the same model always produces the same dictionary.
//
// Formats are immutable once built and safe for concurrent use.
package resource
