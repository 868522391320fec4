package port

// Matcher answers exact membership queries against the stopword set.
type Matcher interface {
	// IsStopword reports whether word, already normalized, is a stopword.
	IsStopword(word string) bool
}

// Stemmer reduces a word to its stem.
type Stemmer interface {
	Stem(word string) string
}
