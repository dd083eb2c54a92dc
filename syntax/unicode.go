package syntax

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// IsLineTerminator reports whether c is one of ECMAScript's four line
// terminator code points (LF, CR, LS, PS), grounded on
// boergens-gotypst/syntax/unicode.go's IsNewline (Typst additionally
// treats VT/FF as newlines; ECMAScript's own LineTerminator production
// names exactly these four and classifies VT/FF as ordinary
// whitespace instead).
func IsLineTerminator(c rune) bool {
	switch c {
	case '\n', '\r', ' ', ' ':
		return true
	}
	return false
}

// IsWhiteSpace reports whether c is ECMAScript WhiteSpace (but not a
// line terminator — the two are tracked separately because ASI cares
// about line terminators specifically, not about whitespace in general).
func IsWhiteSpace(c rune) bool {
	if IsLineTerminator(c) {
		return false
	}
	switch c {
	case '\t', '\v', '\f', ' ', ' ', '﻿':
		return true
	}
	return unicode.Is(unicode.Zs, c)
}

// IsIDStart reports whether c can start an identifier: Unicode
// ID_Start plus ECMAScript's `$` and `_`. Grounded on
// boergens-gotypst/syntax/unicode.go's IsIDStart, generalized from
// Typst's identifier grammar (`_` only) to ECMAScript's (`$` and `_`).
func IsIDStart(c rune) bool {
	return unicode.Is(unicode.L, c) || unicode.Is(unicode.Nl, c) || c == '$' || c == '_'
}

// IsIDContinue reports whether c can continue an identifier: Unicode
// ID_Continue plus `$`, `_`, and the zero-width joiner/non-joiner.
// Grounded on boergens-gotypst/syntax/unicode.go's IsIDContinue
// (which additionally allows `-`, a Typst-only identifier character
// dropped here since ECMAScript identifiers never contain a hyphen).
func IsIDContinue(c rune) bool {
	if c == '\u200C' || c == '\u200D' { // ZWNJ, ZWJ
		return true
	}
	return unicode.Is(unicode.L, c) ||
		unicode.Is(unicode.Nl, c) ||
		unicode.Is(unicode.Mn, c) ||
		unicode.Is(unicode.Mc, c) ||
		unicode.Is(unicode.Nd, c) ||
		unicode.Is(unicode.Pc, c) ||
		c == '$' || c == '_'
}

// IsIdentifierName reports whether s is lexically a valid
// IdentifierName (the check does not exclude reserved words, which is
// a parser-level, not lexer-level, concern).
func IsIdentifierName(s string) bool {
	if len(s) == 0 {
		return false
	}
	runes := []rune(s)
	if !IsIDStart(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !IsIDContinue(r) {
			return false
		}
	}
	return true
}

// DescribeRune names an unexpected rune for a diagnostic message, e.g.
// "U+2019 (RIGHT SINGLE QUOTATION MARK)", reusing
// golang.org/x/text/unicode/runenames exactly as
// boergens-gotypst/syntax/unicode.go's GetScript does.
func DescribeRune(c rune) string {
	name := runenames.Name(c)
	if name == "" {
		return fmt.Sprintf("U+%04X", c)
	}
	return fmt.Sprintf("U+%04X (%s)", c, name)
}
