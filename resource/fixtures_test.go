package resource_test

import "apiresource/resource"

type address struct {
	Line1 string
	Line2 string
}

var addressFormat = resource.MustFormat("Address",
	resource.Field("line1", resource.String(func(a *address) *string { return &a.Line1 })),
	resource.Field("line2", resource.Optional(resource.String(func(a *address) *string { return &a.Line2 }))),
)

func (*address) APIFormat() *resource.Format[address] { return addressFormat }

type payer struct {
	Email    string
	Scopes   resource.StringSet
	Address  *address
	Shipping *address
	Note     string
}

var payerFormat = resource.MustFormat("Payer",
	resource.Field("email", resource.String(func(p *payer) *string { return &p.Email })),
	resource.Field("scopes", resource.StringSetOf(func(p *payer) *resource.StringSet { return &p.Scopes })),
	resource.Field("address", resource.Resource(func(p *payer) **address { return &p.Address }, addressFormat)),
	resource.Field("shipping", resource.Optional(resource.Resource(func(p *payer) **address { return &p.Shipping }, addressFormat))),
	resource.Field("note", resource.Optional(resource.String(func(p *payer) *string { return &p.Note }))),
)

func (*payer) APIFormat() *resource.Format[payer] { return payerFormat }

type envelope struct {
	Payer *payer
}

var envelopeFormat = resource.MustFormat("Envelope",
	resource.Field("payer", resource.Resource(func(e *envelope) **payer { return &e.Payer }, payerFormat)),
)

func (*envelope) APIFormat() *resource.Format[envelope] { return envelopeFormat }

func validPayer() resource.Dictionary {
	return resource.Dictionary{
		"email":  "buyer@example.com",
		"scopes": []any{"openid", "email"},
		"address": map[string]any{
			"line1": "1 Main St",
		},
	}
}
