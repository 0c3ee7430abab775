// Package lexer classifies a filename into a contiguous, gap-free sequence
// of spans: years, labels, delimiters, flag spellings and generic text.
//
// A [Catalog] holds one pattern per category. [Catalog.Tokenize] scans the
// input once per pattern up front, then a [Tokenizer] arbitrates between the
// per-category match cursors one token at a time:
//
//	cat := lexer.DefaultCatalog()
//	tz := cat.Tokenize("there2010.echoLABEL")
//	for tok, ok := tz.Next(); ok; tok, ok = tz.Next() {
//		fmt.Println(tok.Category, tok.Text)
//	}
//
// Concatenating the emitted token texts in order reproduces the input
// exactly. When two categories match at the same offset the later one in
// priority order (Year, Label, Delimiter, Arg) wins.
//
// A Catalog is immutable after construction and may be shared by any number
// of goroutines. A Tokenizer is single-pass and must not be shared.
package lexer
