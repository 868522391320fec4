package analyzer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"stopdfa/internal/adapter/automaton"
	"stopdfa/internal/domain"
)

// DefaultContractions are kept as single tokens by the lexer.
var DefaultContractions = []string{
	"aren't", "can't", "couldn't", "didn't", "doesn't", "don't", "hadn't",
	"hasn't", "haven't", "isn't", "mightn't", "mustn't", "needn't", "shan't",
	"shouldn't", "wasn't", "weren't", "won't", "wouldn't",
}

// splits are words the lexer cuts in two after head bytes.
var splits = []struct {
	word string
	head int
}{
	{"cannot", len("can")},
}

// clitics split off the preceding word, longest first.
var clitics = []string{"'ll", "'re", "'ve", "'s", "'m", "'d"}

// Tokenizer splits text into word and punctuation tokens.
type Tokenizer struct {
	contractions *automaton.Trie
}

// NewTokenizer creates a Tokenizer that keeps the given contractions
// atomic. A nil slice selects DefaultContractions.
func NewTokenizer(contractions []string) (*Tokenizer, error) {
	if contractions == nil {
		contractions = DefaultContractions
	}
	trie, err := automaton.Build(contractions)
	if err != nil {
		return nil, fmt.Errorf("failed to build contraction set: %w", err)
	}
	return &Tokenizer{contractions: trie}, nil
}

// Tokenize returns all tokens of text in order.
func (t *Tokenizer) Tokenize(text string) []domain.Token {
	var tokens []domain.Token
	lx := t.Lex(text)
	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Lex returns a Lexer positioned at the start of text.
func (t *Tokenizer) Lex(text string) *Lexer {
	return &Lexer{text: text, line: 1, contractions: t.contractions}
}

// Lexer produces the tokens of one text in a single pass. It cannot be
// rewound.
type Lexer struct {
	text         string
	pos          int
	line         int
	contractions *automaton.Trie
}

// Next returns the next token, or false once the text is exhausted.
func (l *Lexer) Next() (domain.Token, bool) {
	for l.pos < len(l.text) {
		r, size := utf8.DecodeRuneInString(l.text[l.pos:])
		if r == '\n' {
			l.line++
			l.pos += size
			continue
		}
		if unicode.IsSpace(r) {
			l.pos += size
			continue
		}

		start := l.pos
		var end int
		if isWordRune(r) {
			end = l.word(start)
		} else {
			end = l.punct(start, r, size)
		}
		l.pos = end
		return domain.Token{
			Text:  l.text[start:end],
			Line:  l.line,
			Start: start,
			End:   end,
		}, true
	}
	return domain.Token{}, false
}

// word returns the end of the word token starting at start.
func (l *Lexer) word(start int) int {
	if l.afterWord(start) && l.hasNegation(start) {
		return start + len("n't")
	}
	if n := l.contractions.MatchPrefix(l.text[start:], unicode.ToLower); n > 0 && l.boundary(start+n) {
		return start + n
	}
	for _, sp := range splits {
		end := start + len(sp.word)
		if end <= len(l.text) && strings.EqualFold(l.text[start:end], sp.word) && l.boundary(end) {
			return start + sp.head
		}
	}

	i := start
	for i < len(l.text) {
		r, size := utf8.DecodeRuneInString(l.text[i:])
		switch {
		case isWordRune(r):
			if i > start && l.hasNegation(i) {
				return i
			}
		case r == '-':
			if !l.wordRuneAt(i + size) {
				return i
			}
		case r == '.' || r == ',':
			prev, _ := utf8.DecodeLastRuneInString(l.text[:i])
			next, _ := utf8.DecodeRuneInString(l.text[i+size:])
			if !unicode.IsDigit(prev) || !unicode.IsDigit(next) {
				return i
			}
		default:
			return i
		}
		i += size
	}
	return i
}

// punct returns the end of the punctuation token starting at start.
func (l *Lexer) punct(start int, r rune, size int) int {
	if r == '\'' && l.afterWord(start) {
		for _, c := range clitics {
			end := start + len(c)
			if end <= len(l.text) && strings.EqualFold(l.text[start:end], c) && l.boundary(end) {
				return end
			}
		}
	}

	end := start + size
	for end < len(l.text) {
		next, n := utf8.DecodeRuneInString(l.text[end:])
		if next != r {
			break
		}
		end += n
	}
	return end
}

// hasNegation reports whether "n't" starts at i and ends on a boundary.
func (l *Lexer) hasNegation(i int) bool {
	end := i + len("n't")
	return end <= len(l.text) && strings.EqualFold(l.text[i:end], "n't") && l.boundary(end)
}

func (l *Lexer) afterWord(i int) bool {
	if i == 0 {
		return false
	}
	prev, _ := utf8.DecodeLastRuneInString(l.text[:i])
	return isWordRune(prev)
}

func (l *Lexer) wordRuneAt(i int) bool {
	if i >= len(l.text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(l.text[i:])
	return isWordRune(r)
}

func (l *Lexer) boundary(i int) bool {
	return !l.wordRuneAt(i)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}
