package syntax

// switchstmt.go parses SwitchStatement: `switch (Expr) { CaseBlock }`,
// where CaseBlock is a list of `case Expr:`/`default:` clauses each
// completed as their own CaseClause/DefaultClause node and followed by
// a StatementList (not wrapped in braces of their own), with at most
// one `default` clause permitted anywhere in the list.
//
// Grounded on boergens-gotypst/syntax/parser_code.go's brace-delimited
// list parsing pattern, generalized to the case/default clause grammar,
// cross-checked against other_examples' goja parser_statement.go's
// parseSwitchStatement for the single-default-clause rule, and against
// original_source/rslint_parser/src/syntax/stmt.rs's switch_stmt/
// switch_clause (the discriminant wrapped via condition(), and the
// duplicate-default diagnostic carrying the first default's range as a
// secondary span).
func (p *Parser) switchStmt() {
	m := p.marker()
	p.assert(SwitchKw)
	p.condition()

	brace := p.marker()
	p.expect(LeftBrace)
	saved := p.state
	p.state = p.state.enterSwitch()
	var firstDefault *Range
	for !p.at(RightBrace) && !p.end() {
		cm := p.marker()
		isDefault := p.eatIf(DefaultKw)
		if !isDefault {
			p.expect(CaseKw)
			p.expr(exprFlags{})
		}
		p.expect(Colon)
		// The clause's head range (`default:`/`case expr:`, not the
		// statement list that follows) is captured here, before the
		// body's statements are appended, so it stays a tight span for
		// the duplicate-default diagnostic's secondary label.
		headRange := Range{Start: p.nodes[cm].Span().Start, End: p.nodes[len(p.nodes)-1].Span().End}
		for !p.at(CaseKw) && !p.at(DefaultKw) && !p.at(RightBrace) && !p.end() {
			p.statementListItem()
		}
		if isDefault {
			if firstDefault != nil {
				diag := NewDiagnostic(headRange, "a switch statement may have only one default clause")
				diag.AddSecondary(*firstDefault, "the first default clause is defined here")
				p.addDiagnostic(diag)
			} else {
				firstDefault = &headRange
			}
			p.wrap(cm, DefaultClause)
		} else {
			p.wrap(cm, CaseClause)
		}
	}
	p.state = saved
	p.expectClosingDelimiter(brace, RightBrace)
	p.wrap(m, SwitchStmt)
}
