package resource_test

import (
	"fmt"

	"apiresource/resource"
)

type nonce struct {
	Value   string
	Default string
}

var nonceFormat = resource.MustFormat("Nonce",
	resource.Field("nonce", resource.String(func(n *nonce) *string { return &n.Value })),
	resource.Field("default", resource.Optional(resource.String(func(n *nonce) *string { return &n.Default }))),
)

func (*nonce) APIFormat() *resource.Format[nonce] { return nonceFormat }

func Example() {
	n, err := resource.Decode[nonce](resource.Dictionary{"nonce": "fake-nonce"})
	fmt.Println(n.Value, err)

	fmt.Println(resource.Encode(n))

	_, err = resource.Decode[nonce](resource.Dictionary{"nonce": 12})
	fmt.Println(err)
	// Output:
	// fake-nonce <nil>
	// map[nonce:fake-nonce]
	// apiresource: Nonce: key "nonce": expected string, got number
}

func ExampleError_Path() {
	_, err := envelopeFormat.Decode(resource.Dictionary{
		"payer": map[string]any{
			"email":   "buyer@example.com",
			"scopes":  []any{},
			"address": map[string]any{"line1": 1},
		},
	})

	fmt.Println(err.(*resource.Error).Path())
	// Output:
	// payer.address.line1
}
