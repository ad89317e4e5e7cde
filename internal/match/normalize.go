package match

import (
	"strings"
	"unicode"
)

// kindSuffixes are dropped by StripKindSuffix, longest first.
var kindSuffixes = []string{"error", "err"}

// NormalizeIdent folds an identifier for fuzzy comparison: CamelCase words
// and separated words are joined and lowercased, so "NetworkError",
// "network_error" and "networkError" all become "networkerror".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// StripKindSuffix normalizes s and drops a trailing "error" or "err" unless
// nothing would be left.
func StripKindSuffix(s string) string {
	norm := NormalizeIdent(s)

	for _, suffix := range kindSuffixes {
		if len(norm) > len(suffix) && strings.HasSuffix(norm, suffix) {
			return strings.TrimSuffix(norm, suffix)
		}
	}

	return norm
}

// TokenizeIdent splits an identifier into lowercase words:
//
//	"NumError"        -> ["num", "error"]
//	"HTTPError"       -> ["http", "error"]
//	"unknown_variant" -> ["unknown", "variant"]
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports whether a new word begins at runes[i]: at a
// lower-to-upper transition ("numError") or at the last capital of an
// acronym followed by a lowercase letter ("HTTPError").
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
