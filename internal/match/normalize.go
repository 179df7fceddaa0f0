package match

import (
	"strings"
	"unicode"
)

// NormalizeKey folds an API key or Go identifier into a comparable form:
// case-folded with separators removed.
func NormalizeKey(s string) string {
	return strings.Join(TokenizeKey(s), "")
}

// TokenizeKey splits snake_case, kebab-case, camelCase and PascalCase
// identifiers into lower-case words. Acronyms stay together:
// "approvalURL" -> ["approval", "url"], "URLScheme" -> ["url", "scheme"].
func TokenizeKey(s string) []string {
	var (
		tokens []string
		cur    []rune
	)

	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		cur = append(cur, r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsWord reports whether runes[i] begins a new camel-case word.
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	// end of an acronym: "URLScheme" splits before 'S'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
