package analyzer

import (
	"github.com/kljensen/snowball"
)

// Stemmer reduces English words to their snowball stem.
type Stemmer struct {
	language string
}

// NewStemmer creates a new English stemmer.
func NewStemmer() *Stemmer {
	return &Stemmer{language: "english"}
}

// Stem returns the stem of word, or word itself if it cannot be stemmed.
func (s *Stemmer) Stem(word string) string {
	stemmed, err := snowball.Stem(word, s.language, false)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}
