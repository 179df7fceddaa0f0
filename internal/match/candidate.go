package match

import (
	"sort"
)

// DefaultThreshold is the minimum KeySimilarity for a suggestion.
const DefaultThreshold = 0.6

// Candidate is a name scored against a wanted key.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by descending score, then by name.
type CandidateList []Candidate

// Rank scores every candidate against key.
func Rank(key string, candidates []string) CandidateList {
	norm := NormalizeKey(key)

	list := make(CandidateList, 0, len(candidates))
	for _, c := range candidates {
		list = append(list, Candidate{Name: c, Score: Similarity(norm, NormalizeKey(c))})
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Score != list[j].Score {
			return list[i].Score > list[j].Score
		}

		return list[i].Name < list[j].Name
	})

	return list
}

// Above returns the candidates scoring at least threshold.
func (l CandidateList) Above(threshold float64) CandidateList {
	for i, c := range l {
		if c.Score < threshold {
			return l[:i]
		}
	}

	return l
}

// Names returns candidate names in rank order.
func (l CandidateList) Names() []string {
	names := make([]string, len(l))
	for i, c := range l {
		names[i] = c.Name
	}

	return names
}

// Suggest returns the best candidate for key when it clears DefaultThreshold.
// An exact match is never suggested: the caller asked because key was not found.
func Suggest(key string, candidates []string) (string, bool) {
	for _, c := range Rank(key, candidates).Above(DefaultThreshold) {
		if c.Name != key {
			return c.Name, true
		}
	}

	return "", false
}

// Exact returns the candidates equal to key after normalization, in input order.
func Exact(key string, candidates []string) []string {
	norm := NormalizeKey(key)

	var out []string
	for _, c := range candidates {
		if NormalizeKey(c) == norm {
			out = append(out, c)
		}
	}

	return out
}
