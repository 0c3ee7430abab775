package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"

	"github.com/backmassage/nametag/internal/args"
	"github.com/backmassage/nametag/internal/lexer"
	"github.com/backmassage/nametag/internal/term"
)

// categoryColor maps a token category to its ANSI color. Text is dimmed so
// classified spans stand out.
func categoryColor(c lexer.Category) string {
	switch c {
	case lexer.Year:
		return term.Green
	case lexer.Label:
		return term.Cyan
	case lexer.Delimiter:
		return term.Yellow
	case lexer.Arg:
		return term.Magenta
	default:
		return term.Dim
	}
}

// Highlight renders the tokens back into one string, each colored by
// category and separated by "|" so span boundaries are visible.
func Highlight(toks []lexer.Token) string {
	var sb strings.Builder
	for i, t := range toks {
		if i > 0 {
			sb.WriteString("|")
		}
		sb.WriteString(categoryColor(t.Category) + t.Text + term.NC)
	}
	return sb.String()
}

// padRight pads s to width printable columns, ignoring ANSI sequences.
func padRight(s string, width int) string {
	if n := width - ansi.PrintableRuneWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// argNote names the field and mode an Arg token's spelling edits.
func argNote(t lexer.Token) string {
	if t.Category != lexer.Arg {
		return ""
	}
	spec, mode, ok := args.Lookup(t.Text)
	if !ok {
		return ""
	}
	return fmt.Sprintf("  %s%s %s%s", term.Dim, spec.Name, mode, term.NC)
}

// WriteTokenTable writes input followed by one aligned row per token:
// category, byte span and quoted text. Arg rows also name the field and
// mode of the flag they spell.
func WriteTokenTable(w io.Writer, input string, toks []lexer.Token) error {
	if _, err := fmt.Fprintf(w, "%q\n", input); err != nil {
		return err
	}
	if len(toks) == 0 {
		_, err := fmt.Fprintln(w, "  (no tokens)")
		return err
	}
	if _, err := fmt.Fprintf(w, "  %s\n", Highlight(toks)); err != nil {
		return err
	}
	for _, t := range toks {
		cat := categoryColor(t.Category) + t.Category.String() + term.NC
		span := fmt.Sprintf("[%d,%d)", t.Start, t.End)
		if _, err := fmt.Fprintf(w, "  %s %s %q%s\n", padRight(cat, 10), padRight(span, 9), t.Text, argNote(t)); err != nil {
			return err
		}
	}
	return nil
}
