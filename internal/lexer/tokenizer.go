package lexer

import (
	"fmt"
	"iter"
)

// Token is one classified span of the input. Text aliases the input string;
// no bytes are copied.
type Token struct {
	Category Category
	Text     string
	Start    int
	End      int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Category, t.Text)
}

// Tokenizer produces tokens lazily, one per call to [Tokenizer.Next]. It is
// forward-only: to start over, call [Catalog.Tokenize] again.
type Tokenizer struct {
	input   string
	pos     int
	streams *streamSet
}

// Next returns the next token, or ok == false once the whole input has
// been emitted. Calls after exhaustion keep returning ok == false.
//
// Every token is non-empty and starts where the previous one ended.
func (t *Tokenizer) Next() (tok Token, ok bool) {
	if t.pos >= len(t.input) {
		return Token{}, false
	}

	idx, m, found := t.streams.winner(t.pos)
	switch {
	case !found:
		tok = t.text(len(t.input))
	case m.Start == t.pos:
		t.streams.consume(idx)
		tok = Token{Category: m.Category, Text: t.input[m.Start:m.End], Start: m.Start, End: m.End}
	default:
		// The winning match stays queued and wins outright next call.
		tok = t.text(m.Start)
	}
	t.pos = tok.End
	return tok, true
}

func (t *Tokenizer) text(end int) Token {
	return Token{Category: Text, Text: t.input[t.pos:end], Start: t.pos, End: end}
}

// Pos is the byte offset of the next token. It equals the End of the last
// token returned, or 0 before the first call.
func (t *Tokenizer) Pos() int { return t.pos }

// Done reports whether the tokenizer is exhausted.
func (t *Tokenizer) Done() bool { return t.pos >= len(t.input) }

// All returns an iterator over the remaining tokens. Breaking out of the
// loop leaves the tokenizer positioned after the last token yielded.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Collect drains the tokenizer into a slice.
func (t *Tokenizer) Collect() []Token {
	var out []Token
	for tok := range t.All() {
		out = append(out, tok)
	}
	return out
}
