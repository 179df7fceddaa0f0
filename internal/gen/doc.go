// Package gen renders resolved plans into Go source declaring resource formats.
//
// Generation approach uses text/template + go/format. The output holds one
// package-level format variable per resource, in dependency order, and an
// APIFormat method binding each model to its format:
//
//	var payerInfoFormat = resource.MustFormat("Payer",
//		resource.Field("email", resource.String(func(m *PayerInfo) *string { return &m.Email })),
//	)
//
//	func (*PayerInfo) APIFormat() *resource.Format[PayerInfo] { return payerInfoFormat }
//
// Codegen patterns:
//   - String fields take the field address
//   - String set fields take the address of a resource.StringSet
//   - Nested resources take the address of the pointer field plus the nested format variable
//   - Optional keys wrap the value type in resource.Optional
package gen
