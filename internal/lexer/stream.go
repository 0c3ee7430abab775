package lexer

// Match is a half-open byte interval [Start, End) of the input claimed by
// one category's pattern.
type Match struct {
	Category Category
	Start    int
	End      int
}

// matchCursor walks one category's matches, computed eagerly over the whole
// input. Matches never overlap and start offsets strictly increase.
type matchCursor struct {
	pattern *Pattern
	input   string
	spans   [][]int
	next    int
}

func newCursor(p *Pattern, input string) matchCursor {
	return matchCursor{
		pattern: p,
		input:   input,
		spans:   p.Regexp.FindAllStringIndex(input, -1),
	}
}

// peek returns the next unconsumed match without advancing.
func (c *matchCursor) peek() (Match, bool) {
	if c.next >= len(c.spans) {
		return Match{}, false
	}
	sp := c.spans[c.next]
	return Match{Category: c.pattern.Category, Start: sp[0], End: sp[1]}, true
}

// advance consumes the match peek would return.
func (c *matchCursor) advance() {
	if c.next < len(c.spans) {
		c.next++
	}
}

// settle skips matches that can no longer win: those starting before pos,
// already covered by an earlier token, and those the pattern's qualifier
// rejects. Each match is skipped at most once over the cursor's life.
func (c *matchCursor) settle(pos int) {
	for ; c.next < len(c.spans); c.next++ {
		sp := c.spans[c.next]
		if sp[0] < pos {
			continue
		}
		if q := c.pattern.Qualify; q != nil && !q(c.input[sp[0]:sp[1]]) {
			continue
		}
		return
	}
}

// streamSet owns one cursor per configured category, in priority order.
type streamSet struct {
	cursors []matchCursor
}

func newStreamSet(c *Catalog, input string) *streamSet {
	s := &streamSet{cursors: make([]matchCursor, len(c.patterns))}
	for i := range c.patterns {
		s.cursors[i] = newCursor(&c.patterns[i], input)
	}
	return s
}

// consume advances cursor i past its current match.
func (s *streamSet) consume(i int) {
	s.cursors[i].advance()
}
