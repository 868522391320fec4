package usecase

import (
	"strings"

	"stopdfa/internal/domain"
)

// Highlight splits text into lines of plain and stopword segments using the
// token offsets in res, which must come from classifying the same text.
// Joining the segment texts of all lines with "\n" reproduces text.
func Highlight(text string, res domain.Result) []domain.Line {
	if text == "" {
		return nil
	}

	h := &highlighter{}
	pos := 0
	for _, tok := range res.Tokens {
		if !tok.IsStopword() || tok.Start < pos || tok.End > len(text) {
			continue
		}
		h.plain(text[pos:tok.Start])
		h.segs = append(h.segs, domain.Segment{Text: text[tok.Start:tok.End], Stopword: true})
		pos = tok.End
	}
	h.plain(text[pos:])
	h.lines = append(h.lines, domain.Line{Segments: h.segs})

	return h.lines
}

type highlighter struct {
	lines []domain.Line
	segs  []domain.Segment
}

func (h *highlighter) plain(s string) {
	parts := strings.Split(s, "\n")
	for i, part := range parts {
		if i > 0 {
			h.lines = append(h.lines, domain.Line{Segments: h.segs})
			h.segs = nil
		}
		if part != "" {
			h.segs = append(h.segs, domain.Segment{Text: part})
		}
	}
}
