// Package mapping provides the YAML declaration file that lists which model
// types get a resource format and how their dictionary keys bind to Go fields.
//
// The declaration file is what `apiresource gen` reads. It turns a reviewed
// list of keys into deterministic regeneration of the format tables.
//
// # Schema Overview
//
//	version: "1"
//	package: .                        # Go package pattern, relative to this file
//	output: zz_generated.apiformat.go # written into the package directory
//	resources:
//	  - type: PostalAddress
//	    fields:
//	      - line1: StreetAddress      # key: GoField
//	      - line2?: ExtendedAddress   # trailing "?" marks the key optional
//	      - postalCode                # key only, the Go field is matched by name
//	      - key: countryCode          # full form
//	        field: CountryCodeAlpha2
//	        optional: true
//	  - type: PayerInfo
//	    name: Payer                   # format name used in errors, default: type
//	    fields:
//	      - email
//	      - billingAddress?
//
// # Field forms
//
//   - "key" or "key?": the Go field is found by name during resolution
//   - {key: Field} or {key?: Field}: explicit Go field
//   - {key: ..., field: ..., optional: ..., kind: ...}: full form, needed for an
//     API key literally named "key" or to pin the kind
//
// In a flow sequence a trailing "?" ends the plain scalar early, so the
// optional shorthand must be quoted there: fields: [id, "next?"]. Block
// sequences need no quoting.
//
// The kind (string, stringSet, resource) is derived from the Go field type
// unless pinned. Validate checks a file against the analyzed package; the plan
// package does the field matching and kind derivation.
package mapping
