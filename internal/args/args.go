// Package args is the catalog of flag spellings nametag understands for
// editing a filename. Each editable field has a long and short spelling that
// sets the value and, optionally, a capitalized pair that appends instead.
//
// The catalog is also the source of the literals the lexer's Arg category
// matches when flag matching is enabled.
package args

import "strings"

// Mode says whether a spelling replaces a field or adds to it.
type Mode uint8

const (
	ModeSet    Mode = iota // Replace existing values.
	ModeAppend             // Keep existing values and add another.
)

func (m Mode) String() string {
	if m == ModeAppend {
		return "append"
	}
	return "set"
}

// Spec describes one editable field. Empty spellings mean the form does not
// exist for that field.
type Spec struct {
	Name        string
	Long        string
	Short       string
	LongAppend  string
	ShortAppend string
	Usage       string
}

var (
	Year = Spec{
		Name: "year", Long: "--year", Short: "-y", LongAppend: "--Year", ShortAppend: "-Y",
		Usage: "Year (19xx or 20xx)",
	}
	Label = Spec{
		Name: "label", Long: "--label", Short: "-l", LongAppend: "--Label", ShortAppend: "-L",
		Usage: "Label (two or more uppercase letters)",
	}
	Date = Spec{
		Name: "date", Long: "--date", Short: "-d",
		Usage: "Leading date stamp (YYYY-MM-DD)",
	}
)

// All lists every editable field in help order.
var All = []Spec{Year, Label, Date}

// Matches reports whether v is any spelling of the field.
func (s Spec) Matches(v string) bool {
	if v == "" {
		return false
	}
	return v == s.Long || v == s.Short || v == s.LongAppend || v == s.ShortAppend
}

// IsAppend reports whether v is one of the field's append spellings.
func (s Spec) IsAppend(v string) bool {
	return v != "" && (v == s.LongAppend || v == s.ShortAppend)
}

// HasAppend reports whether the field can be appended to.
func (s Spec) HasAppend() bool { return s.LongAppend != "" }

// Spellings returns the field's non-empty spellings: long, short, then the
// append forms.
func (s Spec) Spellings() []string {
	var out []string
	for _, v := range []string{s.Long, s.Short, s.LongAppend, s.ShortAppend} {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// FlagName strips leading dashes from a spelling ("--year" -> "year").
func FlagName(spelling string) string {
	return strings.TrimLeft(spelling, "-")
}

// Spellings returns every spelling in the catalog, in [All] order.
func Spellings() []string {
	var out []string
	for _, s := range All {
		out = append(out, s.Spellings()...)
	}
	return out
}

// Lookup finds the field a spelling belongs to and whether it appends.
func Lookup(spelling string) (Spec, Mode, bool) {
	for _, s := range All {
		if !s.Matches(spelling) {
			continue
		}
		if s.IsAppend(spelling) {
			return s, ModeAppend, true
		}
		return s, ModeSet, true
	}
	return Spec{}, ModeSet, false
}
