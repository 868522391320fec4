package domain

import (
	"encoding/json"
	"fmt"
)

// Kind is the classification of a token.
type Kind int

const (
	KindNotStopword Kind = iota
	KindStopword
)

func (k Kind) String() string {
	switch k {
	case KindNotStopword:
		return "not_stopword"
	case KindStopword:
		return "stopword"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Token is a lexical unit of the input text.
type Token struct {
	Text  string `json:"text"`
	Norm  string `json:"norm"`
	Kind  Kind   `json:"kind"`
	Line  int    `json:"line"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Stem  string `json:"stem,omitempty"`
}

// IsStopword reports whether the token was classified as a stopword.
func (t Token) IsStopword() bool {
	return t.Kind == KindStopword
}

type Occurrence struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Result is the outcome of classifying one text. Occurrences is sorted by
// Word.
type Result struct {
	Tokens      []Token      `json:"tokens"`
	Occurrences []Occurrence `json:"occurrences"`
}

// Segment is a slice of a line, either plain text or a stopword.
type Segment struct {
	Text     string `json:"text"`
	Stopword bool   `json:"stopword,omitempty"`
}

// Line is one line of highlighted text. A blank line has no segments.
type Line struct {
	Segments []Segment `json:"segments"`
}

// FileResult is the classification of a single scanned file.
type FileResult struct {
	Path        string       `json:"path"`
	Tokens      int          `json:"tokens"`
	Stopwords   int          `json:"stopwords"`
	Occurrences []Occurrence `json:"occurrences"`
}
