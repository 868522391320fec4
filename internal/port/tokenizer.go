package port

import "stopdfa/internal/domain"

type Tokenizer interface {
	Tokenize(text string) []domain.Token
}

type Normalizer interface {
	Normalize(text string) string
}
