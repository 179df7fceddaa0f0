package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	list := Rank("emial", []string{"phone", "email", "firstName"})

	require.Len(t, list, 3)
	assert.Equal(t, "email", list[0].Name)
	assert.Greater(t, list[0].Score, list[1].Score)
}

func TestRank_TiesSortByName(t *testing.T) {
	list := Rank("zzz", []string{"b", "a"})

	assert.Equal(t, []string{"a", "b"}, list.Names())
}

func TestCandidateList_Above(t *testing.T) {
	list := CandidateList{{Name: "a", Score: 0.9}, {Name: "b", Score: 0.6}, {Name: "c", Score: 0.1}}

	assert.Equal(t, []string{"a", "b"}, list.Above(0.6).Names())
	assert.Empty(t, list.Above(0.95))
	assert.Len(t, list.Above(0), 3)
}

func TestSuggest(t *testing.T) {
	got, ok := Suggest("nonse", []string{"nonce", "type", "details"})
	assert.True(t, ok)
	assert.Equal(t, "nonce", got)

	got, ok = Suggest("payer_id", []string{"payerId", "email"})
	assert.True(t, ok)
	assert.Equal(t, "payerId", got)

	_, ok = Suggest("completelyDifferent", []string{"nonce", "type"})
	assert.False(t, ok)

	_, ok = Suggest("nonce", []string{"nonce"})
	assert.False(t, ok, "exact key is never suggested")
}

func TestExact(t *testing.T) {
	fields := []string{"Nonce", "PayerID", "Payer"}

	assert.Equal(t, []string{"PayerID"}, Exact("payerId", fields))
	assert.Equal(t, []string{"Nonce"}, Exact("nonce", fields))
	assert.Empty(t, Exact("email", fields))
}
