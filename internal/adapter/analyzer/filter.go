package analyzer

import (
	"unicode"
	"unicode/utf8"

	"stopdfa/internal/domain"
)

// Filter drops tokens that are a single non-alphanumeric rune, such as a
// lone comma or bracket. It filters in place and returns the shortened
// slice.
func Filter(tokens []domain.Token) []domain.Token {
	n := 0
	for _, tok := range tokens {
		if Keep(tok.Text) {
			tokens[n] = tok
			n++
		}
	}
	return tokens[:n]
}

// Keep reports whether a token with the given text survives Filter.
func Keep(text string) bool {
	if utf8.RuneCountInString(text) != 1 {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text)
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
