package syntax

// trystmt.go parses TryStatement: `try Block Catch? Finally?`, where at
// least one of Catch/Finally must be present, and Catch's binding
// parameter is itself optional (`catch { }` without a parenthesized
// parameter, an ES2019 addition).
//
// Grounded on boergens-gotypst/syntax/parser_code.go's brace-block
// parsing reused here for the try/catch/finally bodies, cross-checked
// against other_examples' goja parser_statement.go's parseTryStatement
// for the catch-without-binding and require-catch-or-finally rules, and
// against original_source/rslint_parser/src/syntax/stmt.rs's
// catch_clause (the `eat('(') || !at('{')` recovery that still parses
// a binding when the open paren is missing) and try_stmt (the
// `finally` keyword + block wrapped as a Finalizer node).
func (p *Parser) tryStmt() {
	m := p.marker()
	p.assert(TryKw)
	p.blockStmt()

	hasCatch := false
	if p.at(CatchKw) {
		hasCatch = true
		cm := p.marker()
		p.assert(CatchKw)
		// This allows recovery from `catch something) {` more
		// effectively: the binding is still parsed as long as the
		// next token isn't `{`, even if `(` itself was missing.
		if p.eatIf(LeftParen) || !p.at(LeftBrace) {
			p.bindingPattern()
			p.expect(RightParen)
		}
		p.blockStmt()
		p.wrap(cm, CatchClause)
	}

	hasFinally := false
	if p.at(FinallyKw) {
		hasFinally = true
		fm := p.marker()
		p.assert(FinallyKw)
		p.blockStmt()
		p.wrap(fm, Finalizer)
	}

	if !hasCatch && !hasFinally {
		diag := NewDiagnostic(p.nodes[m].Span(), "missing catch or finally after try")
		p.addDiagnostic(diag)
	}

	p.wrap(m, TryStmt)
}
