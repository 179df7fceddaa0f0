package codec_test

import (
	"encoding/json"
	"testing"

	"apiresource/codec"
	"apiresource/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() resource.Dictionary {
	return resource.Dictionary{
		"nonce":  "fake-nonce",
		"scopes": []any{"email", "openid"},
		"details": map[string]any{
			"email": "buyer@example.com",
			"shippingAddress": map[string]any{
				"line1": "1 Main St",
			},
		},
		"note": nil,
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"json", "yaml", "cbor", "proto"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c, err := codec.ByName(name)
			require.NoError(t, err)
			assert.Equal(t, name, c.Name())

			data, err := c.Marshal(sample())
			require.NoError(t, err)

			got, err := c.Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, sample(), got)
		})
	}
}

func TestDeterministic(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"json", "yaml", "cbor", "proto"} {
		c, err := codec.ByName(name)
		require.NoError(t, err)

		first, err := c.Marshal(sample())
		require.NoError(t, err)

		for range 10 {
			again, err := c.Marshal(sample())
			require.NoError(t, err)
			assert.Equal(t, first, again, name)
		}
	}
}

func TestNotDictionary(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{
		"json": `["a", "b"]`,
		"yaml": "- a\n- b\n",
	} {
		c, err := codec.ByName(name)
		require.NoError(t, err)

		_, err = c.Unmarshal([]byte(doc))
		assert.ErrorIs(t, err, codec.ErrNotDictionary, name)
	}
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("numbers keep precision", func(t *testing.T) {
		t.Parallel()

		got, err := codec.JSON().Unmarshal([]byte(`{"amount": 10.10, "count": 12345678901234567890}`))
		require.NoError(t, err)
		assert.Equal(t, json.Number("10.10"), got["amount"])
		assert.Equal(t, json.Number("12345678901234567890"), got["count"])
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()

		_, err := codec.JSON().Unmarshal([]byte(`{"a": "b"} {"c": "d"}`))
		assert.Error(t, err)
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		_, err := codec.JSON().Unmarshal([]byte(`{"a": `))
		assert.ErrorContains(t, err, "json:")
	})
}

func TestProtoNumbers(t *testing.T) {
	t.Parallel()

	data, err := codec.Proto().Marshal(resource.Dictionary{"amount": json.Number("1.5"), "count": 3})
	require.NoError(t, err)

	got, err := codec.Proto().Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, resource.Dictionary{"amount": 1.5, "count": 3.0}, got)
}

func TestYAMLNonStringKey(t *testing.T) {
	t.Parallel()

	_, err := codec.YAML().Unmarshal([]byte("outer:\n  1: one\n"))
	assert.ErrorContains(t, err, "outer: map key 1 is int, not a string")
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	got, err := codec.Normalize(map[any]any{
		"list":  []string{"a", "b"},
		"inner": map[any]any{"k": []any{map[any]any{"x": 1}}},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"list":  []any{"a", "b"},
		"inner": map[string]any{"k": []any{map[string]any{"x": 1}}},
	}, got)

	_, err = codec.Normalize([]any{map[any]any{true: "x"}})
	assert.ErrorContains(t, err, "[0]: map key true is bool")
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]string{
		"fixture.json":    "json",
		"fixture.YAML":    "yaml",
		"dir/fixture.yml": "yaml",
		"fixture.cbor":    "cbor",
		"fixture.pb":      "proto",
		"fixture.binpb":   "proto",
	} {
		c, err := codec.ForPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, c.Name(), path)
	}

	_, err := codec.ForPath("fixture.txt")
	assert.Error(t, err)

	c, err := codec.ByName("application/cbor")
	require.NoError(t, err)
	assert.Equal(t, "cbor", c.Name())

	c, err = codec.ByName("JSON")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name())

	_, err = codec.ByName("xml")
	assert.ErrorContains(t, err, "cbor, json, proto, yaml")
}

type account struct {
	Nonce  string
	Scopes resource.StringSet
}

var accountFormat = resource.MustFormat("Account",
	resource.Field("nonce", resource.String(func(a *account) *string { return &a.Nonce })),
	resource.Field("scopes", resource.StringSetOf(func(a *account) *resource.StringSet { return &a.Scopes })),
)

func TestDecodeThroughCodec(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"json", "yaml", "cbor", "proto"} {
		c, err := codec.ByName(name)
		require.NoError(t, err)

		data, err := c.Marshal(resource.Dictionary{"nonce": "n-1", "scopes": []string{"b", "a"}})
		require.NoError(t, err)

		raw, err := c.Unmarshal(data)
		require.NoError(t, err)

		a, err := accountFormat.Decode(raw)
		require.NoError(t, err, name)
		assert.Equal(t, "n-1", a.Nonce)
		assert.Equal(t, []string{"a", "b"}, a.Scopes.Sorted())
	}
}
