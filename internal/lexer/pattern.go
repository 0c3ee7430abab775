package lexer

import (
	"regexp"
	"regexp/syntax"
	"sort"
	"strings"
)

// Pattern recognizes one category. Matches come from a single leftmost-first
// scan of Regexp; when Qualify is set a match only counts for Category if
// Qualify accepts its text; otherwise it is left for the surrounding text.
type Pattern struct {
	Category Category
	Regexp   *regexp.Regexp
	Qualify  func(string) bool

	// literals holds the flag spellings an Arg pattern was built from, so
	// NewCatalog can reject empty ones.
	literals []string
}

var (
	reDigits    = regexp.MustCompile(`[[:digit:]]+`)
	reYear      = regexp.MustCompile(`^(19|20)[0-9]{2}$`)
	reLabel     = regexp.MustCompile(`[[:upper:]]{2,}`)
	reDelimiter = regexp.MustCompile(`\s|\.|-`)
)

// IsYear reports whether s is a four-digit 19xx or 20xx year.
func IsYear(s string) bool {
	return len(s) == 4 && reYear.MatchString(s)
}

// YearPattern matches runs of digits and keeps only those that are years.
// Longer runs such as "12345" are never split into a year.
func YearPattern() Pattern {
	return Pattern{Category: Year, Regexp: reDigits, Qualify: IsYear}
}

// LabelPattern matches runs of two or more uppercase letters.
func LabelPattern() Pattern {
	return Pattern{Category: Label, Regexp: reLabel}
}

// DelimiterPattern matches a single whitespace character, '.' or '-'.
func DelimiterPattern() Pattern {
	return Pattern{Category: Delimiter, Regexp: reDelimiter}
}

// ArgPattern matches any of the given flag spellings verbatim. Longer
// spellings are tried first so "--year" is never read as "-" plus text.
// Empty spellings are rejected by [NewCatalog].
func ArgPattern(spellings ...string) Pattern {
	lits := append([]string(nil), spellings...)
	sorted := append([]string(nil), spellings...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	quoted := make([]string, 0, len(sorted))
	for _, s := range sorted {
		if s == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(s))
	}
	p := Pattern{Category: Arg, literals: lits}
	if len(quoted) > 0 {
		p.Regexp = regexp.MustCompile(strings.Join(quoted, "|"))
	}
	return p
}

// validate checks the pattern in isolation.
func (p Pattern) validate() error {
	switch {
	case p.Category == Text:
		return &ConfigError{Category: p.Category, Err: ErrTextPattern}
	case p.Category.rank() < 0:
		return &ConfigError{Category: p.Category, Err: ErrUnknownCategory}
	}
	if p.Category == Arg {
		if len(p.literals) == 0 && p.Regexp == nil {
			return &ConfigError{Category: Arg, Err: ErrEmptyArg}
		}
		for _, s := range p.literals {
			if s == "" {
				return &ConfigError{Category: Arg, Err: ErrEmptyArg}
			}
		}
	}
	if p.Regexp == nil {
		return &ConfigError{Category: p.Category, Err: ErrNilPattern}
	}
	expr := p.Regexp.String()
	re, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return &ConfigError{Category: p.Category, Pattern: expr, Err: err}
	}
	if minLen(re.Simplify()) == 0 {
		return &ConfigError{Category: p.Category, Pattern: expr, Err: ErrEmptyMatch}
	}
	return nil
}

// minLen returns the length in runes of the shortest string re can match.
// Zero-width assertions contribute nothing.
func minLen(re *syntax.Regexp) int {
	switch re.Op {
	case syntax.OpNoMatch:
		// Never matches, so it can never stall a scan either.
		return 1
	case syntax.OpLiteral:
		return len(re.Rune)
	case syntax.OpCharClass, syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return 1
	case syntax.OpCapture, syntax.OpPlus:
		return minLen(re.Sub[0])
	case syntax.OpStar, syntax.OpQuest:
		return 0
	case syntax.OpRepeat:
		return re.Min * minLen(re.Sub[0])
	case syntax.OpConcat:
		n := 0
		for _, sub := range re.Sub {
			n += minLen(sub)
		}
		return n
	case syntax.OpAlternate:
		n := -1
		for _, sub := range re.Sub {
			if m := minLen(sub); n < 0 || m < n {
				n = m
			}
		}
		if n < 0 {
			return 0
		}
		return n
	default:
		// OpEmptyMatch and the anchors and word boundaries.
		return 0
	}
}
