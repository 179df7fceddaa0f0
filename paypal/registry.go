package paypal

import "apiresource/resource"

// Registry holds every model of the package under its format name.
var Registry = resource.NewRegistry()

func init() {
	resource.MustRegister[PostalAddress](Registry, "")
	resource.MustRegister[PayerInfo](Registry, "")
	resource.MustRegister[AccountNonce](Registry, "")
	resource.MustRegister[PaymentResource](Registry, "")
	resource.MustRegister[AgreementSetup](Registry, "")
	resource.MustRegister[ApprovalResponse](Registry, "")
	resource.MustRegister[ClientConfiguration](Registry, "")
	resource.MustRegister[Configuration](Registry, "")
	resource.MustRegister[AccountRequest](Registry, "")
}
