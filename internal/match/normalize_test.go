package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"billingAddress", "billingaddress"},
		{"billing_address", "billingaddress"},
		{"billing-address", "billingaddress"},
		{"BillingAddress", "billingaddress"},
		{"BILLING_ADDRESS", "billingaddress"},
		{"payerId", "payerid"},
		{"PayerID", "payerid"},
		{"redirectUrl", "redirecturl"},
		{"RedirectURL", "redirecturl"},
		{"", ""},
		{"_", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeKey(tt.input))
		})
	}
}

func TestTokenizeKey(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"approvalURL", []string{"approval", "url"}},
		{"URLScheme", []string{"url", "scheme"}},
		{"ba_token", []string{"ba", "token"}},
		{"CountryCodeAlpha2", []string{"country", "code", "alpha2"}},
		{"ID", []string{"id"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenizeKey(tt.input))
		})
	}
}
