package paypal

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var (
	// ErrNoApprovalURL is returned when neither approval flow carries a URL.
	ErrNoApprovalURL = errors.New("paypal: approval response has no approval URL")
	// ErrNoOrderID is returned when an approval URL carries no order token.
	ErrNoOrderID = errors.New("paypal: approval URL has no order token")
)

// orderIDParams are the query parameters that may carry the order id.
// Checkout uses token, billing agreements use ba_token.
var orderIDParams = []string{"token", "ba_token"}

// ApprovalURL returns the URL the payer is sent to. A payment resource
// redirect wins over a billing agreement approval URL.
func (r *ApprovalResponse) ApprovalURL() (string, error) {
	if r == nil {
		return "", ErrNoApprovalURL
	}

	if r.PaymentResource != nil && r.PaymentResource.RedirectURL != "" {
		return r.PaymentResource.RedirectURL, nil
	}

	if r.AgreementSetup != nil && r.AgreementSetup.ApprovalURL != "" {
		return r.AgreementSetup.ApprovalURL, nil
	}

	return "", ErrNoApprovalURL
}

// OrderID extracts the order token from an approval URL. The first token or
// ba_token parameter in URL order wins.
func OrderID(approvalURL string) (string, error) {
	u, err := url.Parse(approvalURL)
	if err != nil {
		return "", fmt.Errorf("paypal: parsing approval URL: %w", err)
	}

	for pair := range strings.SplitSeq(u.RawQuery, "&") {
		rawKey, rawValue, _ := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil || !slices.Contains(orderIDParams, key) {
			continue
		}

		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return "", fmt.Errorf("paypal: parsing %s: %w", key, err)
		}

		if value == "" {
			break
		}

		return value, nil
	}

	return "", ErrNoOrderID
}

// OrderID extracts the order token from the approval URL of the response.
func (r *ApprovalResponse) OrderID() (string, error) {
	approvalURL, err := r.ApprovalURL()
	if err != nil {
		return "", err
	}

	return OrderID(approvalURL)
}
