// Package paypal holds the PayPal resource models exchanged with the payment
// API, together with their generated formats.
//
// Formats are declared in apiformat.yaml and rendered into
// zz_generated.apiformat.go by the apiresource tool:
//
//	go generate ./paypal
//
// Every model is registered in Registry under its format name so tools can
// decode a raw document by name.
package paypal

//go:generate go run ../cmd/apiresource gen --mapping apiformat.yaml
