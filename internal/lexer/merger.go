package lexer

// winner picks the category whose next match should be emitted at pos.
//
// Cursors are visited in priority order. A candidate replaces the current
// winner when its match starts at or before the winner's, so equal starts
// go to the later category: Arg > Delimiter > Label > Year. Matches that
// start before pos or fail their qualifier are never eligible.
//
// It returns the winning cursor index and its match, or ok == false when no
// cursor has an eligible match left.
func (s *streamSet) winner(pos int) (idx int, m Match, ok bool) {
	idx = -1
	for i := range s.cursors {
		cur := &s.cursors[i]
		cur.settle(pos)
		cand, has := cur.peek()
		if !has {
			continue
		}
		if idx < 0 || cand.Start <= m.Start {
			idx, m = i, cand
		}
	}
	return idx, m, idx >= 0
}
