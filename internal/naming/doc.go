// Package naming rewrites filenames from their token stream.
//
// [Plan] splits a basename into stem and extension, tokenizes the stem with
// a lexer catalog, and applies [Edits] at token granularity: a year edit
// touches Year tokens only, a label edit Label tokens only, and every other
// byte of the stem is carried over unchanged. [CollisionResolver] keeps two
// inputs in one batch from claiming the same target.
package naming
