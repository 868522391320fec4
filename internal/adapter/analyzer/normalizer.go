package analyzer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalizer lowercases text for stopword matching. Whitespace and
// punctuation are left untouched.
type Normalizer struct {
	nfc bool
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithNFC composes text to Unicode NFC before lowercasing.
func WithNFC() NormalizerOption {
	return func(n *Normalizer) {
		n.nfc = true
	}
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize returns the lowercase form of s.
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return s
	}
	if n.nfc {
		s = norm.NFC.String(s)
	}
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Lower(language.English).String(s)
}
