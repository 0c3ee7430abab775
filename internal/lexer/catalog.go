package lexer

import "sort"

// Catalog is an ordered, immutable set of patterns, at most one per
// category. Text has no pattern: it covers whatever no pattern claims.
type Catalog struct {
	patterns []Pattern
}

var defaultCatalog = MustCatalog(YearPattern(), LabelPattern(), DelimiterPattern())

// DefaultCatalog returns the shared Year, Label and Delimiter catalog.
func DefaultCatalog() *Catalog { return defaultCatalog }

// NewCatalog validates patterns and orders them by category priority. The
// argument order does not matter.
func NewCatalog(patterns ...Pattern) (*Catalog, error) {
	seen := make(map[Category]bool, len(patterns))
	ps := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if seen[p.Category] {
			return nil, &ConfigError{Category: p.Category, Err: ErrDuplicateCategory}
		}
		seen[p.Category] = true
		ps = append(ps, p)
	}
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Category.rank() < ps[j].Category.rank()
	})
	return &Catalog{patterns: ps}, nil
}

// MustCatalog is like [NewCatalog] but panics on error. It is intended for
// package-level catalogs built from fixed patterns.
func MustCatalog(patterns ...Pattern) *Catalog {
	c, err := NewCatalog(patterns...)
	if err != nil {
		panic(err)
	}
	return c
}

// WithArgs returns a copy of c whose Arg pattern matches spellings,
// replacing any Arg pattern c already had.
func (c *Catalog) WithArgs(spellings ...string) (*Catalog, error) {
	ps := make([]Pattern, 0, len(c.patterns)+1)
	for _, p := range c.patterns {
		if p.Category != Arg {
			ps = append(ps, p)
		}
	}
	return NewCatalog(append(ps, ArgPattern(spellings...))...)
}

// Categories lists the configured categories in priority order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.patterns))
	for i, p := range c.patterns {
		out[i] = p.Category
	}
	return out
}

// Has reports whether cat has a pattern in c.
func (c *Catalog) Has(cat Category) bool {
	for _, p := range c.patterns {
		if p.Category == cat {
			return true
		}
	}
	return false
}

// Matches returns every qualifying match of cat's pattern in input, in
// order, as one stream would see them before any merging. It returns nil
// when cat is not configured.
func (c *Catalog) Matches(input string, cat Category) []Match {
	for i := range c.patterns {
		if c.patterns[i].Category != cat {
			continue
		}
		cur := newCursor(&c.patterns[i], input)
		var out []Match
		for {
			cur.settle(0)
			m, ok := cur.peek()
			if !ok {
				return out
			}
			out = append(out, m)
			cur.advance()
		}
	}
	return nil
}

// Tokenize starts a fresh single-pass tokenization of input.
func (c *Catalog) Tokenize(input string) *Tokenizer {
	return &Tokenizer{input: input, streams: newStreamSet(c, input)}
}

// Tokenize classifies input with the default catalog and returns every
// token.
func Tokenize(input string) []Token {
	return DefaultCatalog().Tokenize(input).Collect()
}
