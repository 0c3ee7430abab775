package naming

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/nametag/internal/lexer"
)

// piece is an editable token. Inserted pieces carry the category they were
// validated as so later edits see them like scanned ones.
type piece struct {
	cat  lexer.Category
	text string
}

// Planner applies one validated set of edits to any number of basenames.
type Planner struct {
	edits Edits
	cat   *lexer.Catalog
}

// NewPlanner validates edits once and returns a planner that tokenizes
// with cat.
func NewPlanner(edits Edits, cat *lexer.Catalog) (*Planner, error) {
	if err := edits.Validate(); err != nil {
		return nil, err
	}
	return &Planner{edits: edits, cat: cat}, nil
}

// Plan returns basename with edits applied. It is shorthand for
// [NewPlanner] followed by [Planner.Plan].
func Plan(basename string, edits Edits, cat *lexer.Catalog) (string, error) {
	p, err := NewPlanner(edits, cat)
	if err != nil {
		return "", err
	}
	return p.Plan(basename), nil
}

// Plan returns basename with the planner's edits applied. The extension is
// never tokenized or changed. An unchanged result means there is nothing
// to do.
func (pl *Planner) Plan(basename string) string {
	edits := pl.edits
	stem, ext := splitExt(basename)
	date, rest := splitDateStamp(stem)

	var ps []piece
	for tok := range pl.cat.Tokenize(rest).All() {
		ps = append(ps, piece{tok.Category, tok.Text})
	}

	// A stamp keeps whatever separated it from the rest of the name,
	// including nothing at all.
	dateSep := ""
	if date != "" && len(ps) > 0 && ps[0].cat == lexer.Delimiter {
		dateSep = ps[0].text
		ps = ps[1:]
	}
	sep := joiner(ps)
	if date == "" || rest == "" {
		dateSep = sep
	}

	ps = setCategory(ps, lexer.Year, edits.YearSet, sep)
	for _, y := range edits.YearAppend {
		ps = appendCategory(ps, lexer.Year, y, sep)
	}
	ps = setCategory(ps, lexer.Label, edits.LabelSet, sep)
	for _, l := range edits.LabelAppend {
		ps = appendCategory(ps, lexer.Label, l, sep)
	}

	if edits.Date != "" {
		date = edits.Date
	}
	var sb strings.Builder
	if date != "" {
		sb.WriteString(date)
		if len(ps) > 0 || rest != "" {
			sb.WriteString(dateSep)
		}
	}
	for _, p := range ps {
		sb.WriteString(p.text)
	}
	sb.WriteString(ext)
	return sb.String()
}

// splitExt splits off the extension. Dotfiles without a further dot keep
// their whole name as the stem.
func splitExt(basename string) (stem, ext string) {
	ext = filepath.Ext(basename)
	stem = strings.TrimSuffix(basename, ext)
	if stem == "" {
		return basename, ""
	}
	return stem, ext
}

// splitDateStamp splits a leading YYYY-MM-DD stamp off stem. The stamp is
// recognized on the raw text, so whatever follows it, delimiter or not,
// stays in rest.
func splitDateStamp(stem string) (date, rest string) {
	if len(stem) < len(dateLayout) {
		return "", stem
	}
	head := stem[:len(dateLayout)]
	if !lexer.IsYear(head[:4]) {
		return "", stem
	}
	if _, err := time.Parse(dateLayout, head); err != nil {
		return "", stem
	}
	return head, stem[len(dateLayout):]
}

// joiner picks the delimiter new pieces are joined with: the most common
// delimiter already in the name, "." when there is none. Ties go to the
// delimiter seen first.
func joiner(ps []piece) string {
	counts := make(map[string]int)
	best, bestN := ".", 0
	for _, p := range ps {
		if p.cat != lexer.Delimiter {
			continue
		}
		counts[p.text]++
		if n := counts[p.text]; n > bestN {
			best, bestN = p.text, n
		}
	}
	return best
}

// setCategory makes v the only token of kind cat: the first existing token
// is replaced, later ones are dropped with the delimiter before them. With
// no existing token v is appended.
func setCategory(ps []piece, cat lexer.Category, v, sep string) []piece {
	if v == "" {
		return ps
	}
	out := make([]piece, 0, len(ps)+2)
	replaced := false
	for _, p := range ps {
		if p.cat != cat {
			out = append(out, p)
			continue
		}
		if !replaced {
			out = append(out, piece{cat, v})
			replaced = true
			continue
		}
		if n := len(out); n > 0 && out[n-1].cat == lexer.Delimiter {
			out = out[:n-1]
		}
	}
	if !replaced {
		return appendCategory(out, cat, v, sep)
	}
	return out
}

// appendCategory inserts v right after the last token of kind cat, or at
// the end of the name when there is none.
func appendCategory(ps []piece, cat lexer.Category, v, sep string) []piece {
	at := len(ps)
	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i].cat == cat {
			at = i + 1
			break
		}
	}
	ins := []piece{{cat, v}}
	if at > 0 && ps[at-1].cat != lexer.Delimiter {
		ins = []piece{{lexer.Delimiter, sep}, {cat, v}}
	}
	out := make([]piece, 0, len(ps)+len(ins))
	out = append(out, ps[:at]...)
	out = append(out, ins...)
	return append(out, ps[at:]...)
}
