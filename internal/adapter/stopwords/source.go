// Package stopwords assembles the stopword list the automaton is built from.
package stopwords

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrUnsupportedLanguage is returned for any language other than English.
	ErrUnsupportedLanguage = errors.New("unsupported stopword language")
	// ErrInvalidEntry is returned for entries that cannot be a single token.
	ErrInvalidEntry = errors.New("invalid stopword entry")
)

// Options selects the stopword list.
type Options struct {
	Language string   // only "english" (or "en") is supported
	Extra    []string // appended to the base list
	File     string   // optional word file, one word per line

	// Fold lowercases each entry. It must match the folding applied to
	// tokens before lookup. Defaults to English lowercasing.
	Fold func(string) string
}

// English returns a copy of the built-in English list.
func English() []string {
	words := make([]string, len(english))
	copy(words, english)
	return words
}

// Load returns the sorted, deduplicated, lowercase stopword list described
// by opts.
func Load(opts Options) ([]string, error) {
	var words []string
	switch strings.ToLower(opts.Language) {
	case "", "english", "en":
		words = English()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, opts.Language)
	}

	words = append(words, opts.Extra...)

	if opts.File != "" {
		fromFile, err := ReadFile(opts.File)
		if err != nil {
			return nil, err
		}
		words = append(words, fromFile...)
	}

	fold := opts.Fold
	if fold == nil {
		fold = cases.Lower(language.English).String
	}
	return normalize(words, fold)
}

// ReadFile reads a word file. Blank lines and lines starting with '#' are
// skipped.
func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stopword file: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stopword file: %w", err)
	}
	return words, nil
}

func normalize(words []string, fold func(string) string) ([]string, error) {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if err := validate(w); err != nil {
			return nil, err
		}
		w = fold(w)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out, nil
}

func validate(w string) error {
	if w == "" {
		return fmt.Errorf("%w: empty word", ErrInvalidEntry)
	}
	if !utf8.ValidString(w) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidEntry, w)
	}
	if strings.IndexFunc(w, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidEntry, w)
	}
	return nil
}
