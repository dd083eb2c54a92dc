package syntax

// funcclass.go parses function and class declarations/expressions: the
// parameter list and body shared by function declarations, function
// expressions, arrow functions, and methods, plus class bodies.
//
// Grounded on boergens-gotypst/syntax/parser_code.go's closure-parameter
// parsing (params/sink/named) generalized to ECMAScript's richer
// parameter grammar (default values, rest parameters, destructuring
// parameters via pattern.go), and cross-checked against other_examples'
// goja parser_funcclass.go for class body member dispatch (static,
// getter/setter, generator, async, fields).

// paramList parses a parenthesized, comma-separated parameter list. Each
// parameter is a BindingPattern (see pattern.go) optionally followed by
// `= AssignmentExpression`, or a rest parameter `...BindingPattern`.
func (p *Parser) paramList() {
	m := p.marker()
	p.expect(LeftParen)
	for !p.at(RightParen) && !p.end() {
		if p.eatIf(DotDotDot) {
			pm := p.marker()
			p.bindingPattern()
			p.wrap(pm, RestParam)
		} else {
			pm := p.marker()
			p.bindingPattern()
			if p.eatIf(Eq) {
				p.assignExpr(exprFlags{})
			}
			p.wrap(pm, Param)
		}
		if !p.at(RightParen) {
			p.expect(Comma)
		}
	}
	p.expect(RightParen)
	p.wrap(m, ParamList)
}

// functionBody parses a function/method/arrow-with-block body: a brace
// enclosed list of statements, with its own directive prologue (so a
// leading `"use strict"` promotes the function to strict mode even when
// the enclosing program/function isn't strict), per
// original_source/rslint_parser/src/syntax/stmt.rs's block_items, called
// from try_stmt/function bodies with directives=true. Returned as a
// BlockStmt node so it has the same shape whether it came from a
// function or an ordinary block.
func (p *Parser) functionBody() {
	m := p.marker()
	p.expect(LeftBrace)
	p.directivePrologue()
	for !p.at(RightBrace) && !p.end() {
		p.statementListItem()
	}
	p.expectClosingDelimiter(m, RightBrace)
	p.wrap(m, BlockStmt)
}

// classTail parses everything after the `class` keyword: an optional
// binding name, an optional `extends` clause, and the class body.
// Shared by class declarations and class expressions, which differ only
// in whether the name is required (declarations require it; expressions
// do not).
func (p *Parser) classTail() {
	p.assert(ClassKw)
	if p.current() == Ident {
		p.eat()
	}
	if p.eatIf(ExtendsKw) {
		p.leftHandSideExpr(exprFlags{})
	}
	p.classBody()
}

func (p *Parser) classBody() {
	m := p.marker()
	p.expect(LeftBrace)
	for !p.at(RightBrace) && !p.end() {
		if p.eatIf(Semicolon) {
			continue
		}
		p.classMember()
	}
	p.expect(RightBrace)
	p.wrap(m, ClassBody)
}

// classMember parses one class element: a method (ordinary, generator,
// async, getter, or setter), a field, or a static block, with an
// optional leading `static` modifier.
func (p *Parser) classMember() {
	m := p.marker()
	p.eatIfContextual(StaticKw)

	// `static { ... }` static initialization block, rare enough that it
	// is parsed as a bare block rather than its own node kind.
	if p.at(LeftBrace) {
		p.blockStmt()
		p.wrap(m, MethodDef)
		return
	}

	async := p.atContextual(AsyncKw) && !p.nextIsPropertyEnd()
	if async {
		p.eat()
	}
	generator := p.eatIf(Star)
	accessor := (p.atContextual(GetKw) || p.atContextual(SetKw)) && !p.nextIsPropertyEnd()
	if accessor {
		p.eat()
	}

	p.propertyKey()

	if p.at(LeftParen) {
		saved := p.state
		p.state = p.state.enterFunction(async, generator)
		p.paramList()
		p.functionBody()
		p.state = saved
		p.wrap(m, MethodDef)
		return
	}

	if p.eatIf(Eq) {
		p.assignExpr(exprFlags{})
	}
	p.semi(p.statementRange(m))
	p.wrap(m, FieldDef)
}

// functionDecl parses a FunctionDeclaration: `function` [`*`] Ident
// ParamList Body.
func (p *Parser) functionDecl(async bool) {
	m := p.marker()
	p.assert(FunctionKw)
	generator := p.eatIf(Star)
	if p.current() == Ident {
		p.eat()
	} else {
		p.expected("function name")
	}
	saved := p.state
	p.state = p.state.enterFunction(async, generator)
	p.paramList()
	p.functionBody()
	p.state = saved
	p.wrap(m, FunctionDecl)
}

// classDecl parses a ClassDeclaration.
func (p *Parser) classDecl() {
	m := p.marker()
	p.classTail()
	p.wrap(m, ClassDecl)
}
