package syntax

// asi.go implements ECMAScript's Automatic Semicolon Insertion, grounded
// on boergens-gotypst/syntax/parser.go's expect()/expected() pattern for
// "consume or record a diagnostic", adapted to ASI's three escape
// hatches instead of a bare expect(Semicolon).
//
// Per the ECMAScript specification's "Rules of Automatic Semicolon
// Insertion", a missing `;` is inserted automatically when one of:
//   - the offending token is preceded by at least one LineTerminator;
//   - the offending token is `}`;
//   - the offending token is the end of input.
// Every other missing `;` is a genuine syntax error.

// semi consumes a statement-terminating `;`, or silently treats one as
// inserted under the three ASI conditions above, or records a
// diagnostic if none of those apply. errRange is the span of the
// statement being terminated, attached as a secondary span on the
// diagnostic so the reader can see which statement is missing its
// terminator, per original_source/rslint_parser/src/syntax/stmt.rs's
// semi(p, err_range).
func (p *Parser) semi(errRange Range) {
	if p.eatIf(Semicolon) {
		return
	}
	if p.asiApplies() {
		return
	}
	if p.afterError() {
		return
	}
	at := p.currentStart()
	diag := NewDiagnostic(Range{Start: at, End: at}, "expected a semicolon or an implicit semicolon after a statement, but found none")
	diag.AddSecondary(errRange, "which is required to end this statement")
	p.addDiagnostic(diag)
	errNode := ErrorNode(diag, "")
	m := p.beforeTrivia()
	newNodes := make([]*SyntaxNode, 0, len(p.nodes)+1)
	newNodes = append(newNodes, p.nodes[:m]...)
	newNodes = append(newNodes, errNode)
	newNodes = append(newNodes, p.nodes[m:]...)
	p.nodes = newNodes
}

// statementRange reports the span of the statement started at marker m,
// from its first token's start through the current position, the
// err_range RSLint's semi() wants for its secondary span.
func (p *Parser) statementRange(m Marker) Range {
	return Range{Start: p.nodes[m].Span().Start, End: p.currentRange().Start}
}

// asiApplies reports whether the current position qualifies for
// automatic semicolon insertion without consuming anything.
func (p *Parser) asiApplies() bool {
	return p.hadNewlineBefore() || p.at(RightBrace) || p.end()
}

// noLineTerminatorBefore reports whether inserting a statement-internal
// token here would be grammatically legal, i.e. no LineTerminator
// occurred in the trivia immediately before the current token. Used for
// the ECMAScript restricted productions: `return`, `throw`, `break`,
// `continue` (with a label), and postfix `++`/`--`, none of which may
// have a line break between the keyword/operand and what follows.
func (p *Parser) noLineTerminatorBefore() bool {
	return !p.hadNewlineBefore()
}
