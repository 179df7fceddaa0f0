package resource_test

import (
	"sync"
	"testing"

	"apiresource/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := resource.NewRegistry()
	require.NoError(t, resource.Register[payer](r, ""))
	require.NoError(t, resource.Register[address](r, "PostalAddress"))
	assert.Error(t, resource.Register[payer](r, "Payer"), "duplicate name")

	assert.Equal(t, []string{"Payer", "PostalAddress"}, r.Names())

	entry, ok := r.Lookup("Payer")
	require.True(t, ok)
	assert.Equal(t, "Payer", entry.Name())

	model, err := entry.Decode(validPayer(), resource.DefaultConfig())
	require.NoError(t, err)
	require.IsType(t, &payer{}, model)

	raw, err := entry.Encode(model)
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", raw["email"])

	_, err = entry.Encode(&address{})
	assert.Error(t, err)

	assert.Equal(t, payerFormat.Fields(), entry.Describe())

	_, ok = r.Lookup("Missing")
	assert.False(t, ok)
}

func TestRegistryConcurrentLookup(t *testing.T) {
	t.Parallel()

	r := resource.NewRegistry()
	resource.MustRegister[payer](r, "")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			entry, ok := r.Lookup("Payer")
			if assert.True(t, ok) {
				_, err := entry.Decode(validPayer(), resource.DefaultConfig())
				assert.NoError(t, err)
			}
		}()
	}

	wg.Wait()
}

func TestRegistryZeroValue(t *testing.T) {
	t.Parallel()

	var r resource.Registry
	require.NoError(t, resource.Register[address](&r, ""))
	assert.Equal(t, []string{"Address"}, r.Names())
}
