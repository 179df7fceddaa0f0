// Package match provides key normalization, Levenshtein similarity and
// candidate ranking between API keys and Go identifiers.
//
// It is used in two places:
//   - the decoder, to suggest the declared key closest to an unknown one;
//   - the format generator, to pick the Go field behind a declared key when
//     the declaration does not name one.
//
// Key functions:
//   - NormalizeKey: "billing_address", "billingAddress" and "BillingAddress"
//     all normalize to "billingaddress"
//   - Levenshtein / Similarity: edit distance and its 0..1 normalization
//   - Rank, Suggest, Exact: candidate selection
package match
