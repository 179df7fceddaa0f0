package paypal

import (
	"errors"
	"fmt"
	"maps"

	"apiresource/resource"
)

const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"
)

// enabledKey holds the merchant-level PayPal switch, a JSON bool.
const enabledKey = "paypalEnabled"

// ErrPayPalDisabled is returned when the merchant has PayPal switched off.
var ErrPayPalDisabled = errors.New("paypal: not enabled for this merchant")

// ParseConfiguration decodes a configuration dictionary. Only a literal true
// under paypalEnabled enables PayPal; anything else, the key missing
// included, yields ErrPayPalDisabled before the rest is decoded.
func ParseConfiguration(raw resource.Dictionary) (*Configuration, error) {
	if enabled, _ := raw[enabledKey].(bool); !enabled {
		return nil, ErrPayPalDisabled
	}

	body := maps.Clone(raw)
	delete(body, enabledKey)

	c, err := resource.Decode[Configuration](body)
	if err != nil {
		return nil, err
	}
	c.PayPalEnabled = true

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the fields the approval flow depends on, in the order the
// client checks them: the switch, the client id, then the environment.
func (c *Configuration) Validate() error {
	if !c.Enabled() {
		return ErrPayPalDisabled
	}

	if c.PayPal.ClientID == "" {
		return errors.New("paypal: configuration has an empty client id")
	}

	switch c.Environment {
	case EnvironmentSandbox, EnvironmentProduction:
		return nil
	default:
		return fmt.Errorf("paypal: unknown environment %q, expected %q or %q",
			c.Environment, EnvironmentSandbox, EnvironmentProduction)
	}
}

// Enabled reports whether the merchant can take PayPal payments: the switch
// is on and the paypal section is present.
func (c *Configuration) Enabled() bool {
	return c.PayPalEnabled && c.PayPal != nil
}

// RequiresChallenge reports whether the merchant asks for the named challenge,
// such as "cvv" or "postal_code".
func (c *Configuration) RequiresChallenge(name string) bool {
	return c.Challenges.Has(name)
}
