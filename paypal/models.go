package paypal

import "apiresource/resource"

// PostalAddress is a billing or shipping address.
type PostalAddress struct {
	RecipientName     string
	StreetAddress     string
	ExtendedAddress   string
	Locality          string
	Region            string
	PostalCode        string
	CountryCodeAlpha2 string
}

// PayerInfo describes the PayPal account holder behind a nonce.
type PayerInfo struct {
	Email           string
	FirstName       string
	LastName        string
	PayerID         string
	PhoneNumber     string `api:"phone"`
	BillingAddress  *PostalAddress
	ShippingAddress *PostalAddress
}

// AccountNonce is the tokenized PayPal account returned after approval.
type AccountNonce struct {
	Nonce       string
	Type        string
	Description string
	Details     *PayerInfo
}

// PaymentResource is the one-time payment created for checkout.
type PaymentResource struct {
	RedirectURL string
}

// AgreementSetup is the billing agreement created for vaulting.
type AgreementSetup struct {
	ApprovalURL string
}

// ApprovalResponse carries whichever of the two approval flows was started.
type ApprovalResponse struct {
	PaymentResource *PaymentResource
	AgreementSetup  *AgreementSetup
}

// ClientConfiguration is the PayPal section of the merchant configuration.
type ClientConfiguration struct {
	ClientID         string
	DisplayName      string
	PrivacyURL       string
	UserAgreementURL string
	CurrencyISOCode  string
}

// Configuration is the merchant configuration fetched before checkout.
// PayPalEnabled is not part of the format: string descriptors cannot carry
// the paypalEnabled bool, so ParseConfiguration reads it from the raw
// dictionary.
type Configuration struct {
	Environment   string
	MerchantID    string
	Challenges    resource.StringSet
	PayPal        *ClientConfiguration
	PayPalEnabled bool
}

// AccountRequest asks the API to start a PayPal approval flow.
type AccountRequest struct {
	ReturnURL       string
	CancelURL       string
	CorrelationID   string
	Intent          string
	Scopes          resource.StringSet
	ShippingAddress *PostalAddress
}
