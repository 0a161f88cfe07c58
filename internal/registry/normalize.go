package registry

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases text, strips diacritics, and collapses runs of
// whitespace to single spaces. It is the canonical form all registry terms
// and incoming query text are matched in.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Decompose, drop combining marks, recompose. The transformer chain is
	// built per call because chains carry state and lookups run concurrently.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}

	return strings.Join(strings.Fields(s), " ")
}

// indexOfTerm returns the byte offset of the first occurrence of term in
// text where both ends fall on word boundaries, or -1. This keeps short
// names from matching inside longer words ("salem" in "jerusalem").
func indexOfTerm(text, term string) int {
	if term == "" {
		return -1
	}
	for start := 0; start <= len(text)-len(term); {
		i := strings.Index(text[start:], term)
		if i < 0 {
			return -1
		}
		i += start
		if boundaryBefore(text, i) && boundaryAfter(text, i+len(term)) {
			return i
		}
		start = i + 1
	}
	return -1
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
