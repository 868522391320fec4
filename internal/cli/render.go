package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/colorstring"

	"stopdfa/internal/domain"
)

// palette holds the escape sequences used for terminal output. All fields
// are empty when colour is disabled.
type palette struct {
	stopword string
	accept   string
	reject   string
	reset    string
}

func newPalette(enabled bool) palette {
	c := colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !enabled,
	}
	return palette{
		stopword: c.Color("[bold][blue]"),
		accept:   c.Color("[green]"),
		reject:   c.Color("[red]"),
		reset:    c.Color("[reset]"),
	}
}

// renderLogs writes one Accept/Reject line per token.
func renderLogs(w io.Writer, tokens []domain.Token, p palette) {
	if len(tokens) == 0 {
		fmt.Fprintln(w, "No tokens.")
		return
	}

	width := 0
	for _, tok := range tokens {
		if n := utf8.RuneCountInString(tok.Norm); n > width {
			width = n
		}
	}

	for _, tok := range tokens {
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(tok.Norm))
		if tok.IsStopword() {
			fmt.Fprintf(w, "%s✔ %s%s  Accept%s\n", p.accept, tok.Norm, pad, p.reset)
			continue
		}
		if tok.Stem != "" && tok.Stem != tok.Norm {
			fmt.Fprintf(w, "%s✘ %s%s  Reject%s  (stem: %s)\n", p.reject, tok.Norm, pad, p.reset, tok.Stem)
			continue
		}
		fmt.Fprintf(w, "%s✘ %s%s  Reject%s\n", p.reject, tok.Norm, pad, p.reset)
	}
}

// renderText writes the original text with stopwords highlighted.
func renderText(w io.Writer, lines []domain.Line, p palette) {
	for _, line := range lines {
		for _, seg := range line.Segments {
			if seg.Stopword {
				fmt.Fprint(w, p.stopword+seg.Text+p.reset)
			} else {
				fmt.Fprint(w, seg.Text)
			}
		}
		fmt.Fprintln(w)
	}
}

// renderCounts writes the occurrence table.
func renderCounts(w io.Writer, occ []domain.Occurrence) {
	if len(occ) == 0 {
		fmt.Fprintln(w, "No stopwords found.")
		return
	}

	width := len("Stopword")
	for _, o := range occ {
		if n := utf8.RuneCountInString(o.Word); n > width {
			width = n
		}
	}
	bar := strings.Repeat("─", width+2)

	fmt.Fprintf(w, "┌%s┬─────────────┐\n", bar)
	fmt.Fprintf(w, "│ %s │ %11s │\n", padRight("Stopword", width), "Occurrences")
	fmt.Fprintf(w, "├%s┼─────────────┤\n", bar)
	for _, o := range occ {
		fmt.Fprintf(w, "│ %s │ %11d │\n", padRight(o.Word, width), o.Count)
	}
	fmt.Fprintf(w, "└%s┴─────────────┘\n", bar)
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "=== %s ===\n", title)
}
