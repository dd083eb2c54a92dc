// Package syntax provides the lossless ECMAScript lexer, parser, and
// concrete syntax tree.
//
// A SyntaxNode tree produced by Parse or ParseModule covers every byte
// of the input text, including whitespace and comments, so the tree can
// be rendered back into exactly the source it was parsed from. Parsing
// never aborts on malformed input: errors are recorded as Diagnostics
// and the parser recovers at the next likely statement boundary.
package syntax
