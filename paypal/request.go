package paypal

import (
	"errors"

	"github.com/google/uuid"

	"apiresource/resource"
)

const (
	IntentAuthorize = "authorize"
	IntentSale      = "sale"
	IntentOrder     = "order"
)

// DefaultScopes are requested when the caller names none.
var DefaultScopes = []string{"email", "profile"}

// NewAccountRequest builds a request with a fresh correlation id and the
// default scopes.
func NewAccountRequest(returnURL, cancelURL string) (*AccountRequest, error) {
	if returnURL == "" || cancelURL == "" {
		return nil, errors.New("paypal: return and cancel URLs are required")
	}

	return &AccountRequest{
		ReturnURL:     returnURL,
		CancelURL:     cancelURL,
		CorrelationID: uuid.NewString(),
		Intent:        IntentAuthorize,
		Scopes:        resource.NewStringSet(DefaultScopes...),
	}, nil
}

// Dictionary returns the request body in its wire form.
func (r *AccountRequest) Dictionary() resource.Dictionary {
	return resource.Encode(r)
}
