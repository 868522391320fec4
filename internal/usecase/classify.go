package usecase

import (
	"fmt"
	"sort"

	"stopdfa/internal/adapter/analyzer"
	"stopdfa/internal/domain"
	"stopdfa/internal/port"
)

// Classifier runs the normalize, tokenize, filter and match pipeline over a
// text. It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	matcher    port.Matcher
	normalizer port.Normalizer
	tokenizer  port.Tokenizer
	stemmer    port.Stemmer
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithNormalizer replaces the default lowercasing normalizer.
func WithNormalizer(n port.Normalizer) ClassifierOption {
	return func(c *Classifier) {
		c.normalizer = n
	}
}

// WithTokenizer replaces the default tokenizer.
func WithTokenizer(t port.Tokenizer) ClassifierOption {
	return func(c *Classifier) {
		c.tokenizer = t
	}
}

// WithStemmer attaches stems to tokens that are not stopwords.
func WithStemmer(s port.Stemmer) ClassifierOption {
	return func(c *Classifier) {
		c.stemmer = s
	}
}

// NewClassifier creates a new Classifier backed by matcher.
func NewClassifier(matcher port.Matcher, opts ...ClassifierOption) (*Classifier, error) {
	c := &Classifier{matcher: matcher}
	for _, opt := range opts {
		opt(c)
	}

	if c.normalizer == nil {
		c.normalizer = analyzer.NewNormalizer()
	}
	if c.tokenizer == nil {
		tok, err := analyzer.NewTokenizer(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create tokenizer: %w", err)
		}
		c.tokenizer = tok
	}

	return c, nil
}

// Classify classifies every token of text and counts stopword occurrences.
// The lexer decides token boundaries without regard to case, so each token
// is normalized after tokenizing and keeps its original surface text.
func (c *Classifier) Classify(text string) domain.Result {
	tokens := analyzer.Filter(c.tokenizer.Tokenize(text))

	result := domain.Result{
		Tokens: make([]domain.Token, 0, len(tokens)),
	}
	counts := make(map[string]int)

	for _, tok := range tokens {
		tok.Norm = c.normalizer.Normalize(tok.Text)
		if c.matcher.IsStopword(tok.Norm) {
			tok.Kind = domain.KindStopword
			counts[tok.Norm]++
		} else if c.stemmer != nil {
			tok.Stem = c.stemmer.Stem(tok.Norm)
		}
		result.Tokens = append(result.Tokens, tok)
	}

	result.Occurrences = sortedOccurrences(counts)
	return result
}

// IsStopword normalizes word and looks it up.
func (c *Classifier) IsStopword(word string) bool {
	return c.matcher.IsStopword(c.normalizer.Normalize(word))
}

func sortedOccurrences(counts map[string]int) []domain.Occurrence {
	occ := make([]domain.Occurrence, 0, len(counts))
	for word, count := range counts {
		occ = append(occ, domain.Occurrence{Word: word, Count: count})
	}
	sort.Slice(occ, func(i, j int) bool {
		return occ[i].Word < occ[j].Word
	})
	return occ
}
