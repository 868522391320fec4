package usecase

import (
	"fmt"

	"stopdfa/config"
	"stopdfa/internal/adapter/analyzer"
	"stopdfa/internal/adapter/automaton"
	"stopdfa/internal/adapter/stopwords"
)

// Engine bundles the stopword list, its automaton and a classifier built
// from one configuration. It is created once at startup and shared.
type Engine struct {
	Stopwords  []string
	Trie       *automaton.Trie
	Classifier *Classifier
}

// NewEngine loads the stopword list and builds the automaton and classifier.
// Any error here should abort startup.
func NewEngine(cfg *config.Config) (*Engine, error) {
	var normOpts []analyzer.NormalizerOption
	if cfg.Analyzer.NFC {
		normOpts = append(normOpts, analyzer.WithNFC())
	}
	normalizer := analyzer.NewNormalizer(normOpts...)

	// The list is folded exactly like the tokens it is matched against.
	words, err := stopwords.Load(stopwords.Options{
		Language: cfg.Stopwords.Language,
		Extra:    cfg.Stopwords.Extra,
		File:     cfg.Stopwords.File,
		Fold:     normalizer.Normalize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load stopwords: %w", err)
	}

	trie, err := automaton.Build(words)
	if err != nil {
		return nil, fmt.Errorf("failed to build stopword automaton: %w", err)
	}

	var contractions []string
	if cfg.Analyzer.Contractions != nil {
		contractions = make([]string, len(cfg.Analyzer.Contractions))
		for i, c := range cfg.Analyzer.Contractions {
			contractions[i] = normalizer.Normalize(c)
		}
	}
	tokenizer, err := analyzer.NewTokenizer(contractions)
	if err != nil {
		return nil, err
	}

	opts := []ClassifierOption{
		WithTokenizer(tokenizer),
		WithNormalizer(normalizer),
	}
	if cfg.Analyzer.Stem {
		opts = append(opts, WithStemmer(analyzer.NewStemmer()))
	}

	classifier, err := NewClassifier(trie, opts...)
	if err != nil {
		return nil, err
	}

	return &Engine{
		Stopwords:  words,
		Trie:       trie,
		Classifier: classifier,
	}, nil
}
