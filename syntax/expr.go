package syntax

// expr.go is the external expression-parsing hook: a precedence-climbing
// parser for ECMAScript's Expression grammar, wired into the statement
// grammar (stmt.go, forstmt.go, declstmt.go, ...) wherever a statement
// production calls for an Expression, AssignmentExpression, or
// Expression[In] nonterminal.
//
// Grounded on boergens-gotypst/syntax/parser_code.go's exprWithin/
// exprPrec-style precedence loop (itself a precedence-climbing parser
// over Typst's smaller operator set), generalized to BinOp/UnOp's full
// ECMAScript precedence table in operator.go, and cross-checked against
// other_examples' goja parser_expr.go and kdy1-go-typescript-eslint's
// parseExpr for the assignment/conditional/arrow-disambiguation layering
// above the binary-operator climb.
type exprFlags struct {
	noIn bool // Expression[~In]: suppress bare `in` as a binary operator inside a for-head
	noObjectLiteral bool // statement position: a leading `{` starts a block, not an object
}

// expr parses a full Expression (including the comma operator) and
// wraps it in an Expr node.
func (p *Parser) expr(flags exprFlags) *SyntaxNode {
	m := p.marker()
	p.assignExpr(flags)
	for p.at(Comma) {
		p.assert(Comma)
		p.assignExpr(flags)
	}
	return p.wrap(m, Expr)
}

// assignExpr parses an AssignmentExpression: either a ConditionalExpr,
// an ArrowFunction, a YieldExpr within a generator, or
// LeftHandSideExpression AssignmentOperator AssignmentExpression.
func (p *Parser) assignExpr(flags exprFlags) {
	if p.state.InGenerator && p.at(YieldKw) {
		p.yieldExpr(flags)
		return
	}
	if arrow := p.tryArrowFunction(flags); arrow {
		return
	}

	m := p.marker()
	p.conditionalExpr(flags)
	if p.atSet(AssignOpSet) {
		p.eat()
		p.assignExpr(flags)
		p.wrap(m, AssignExpr)
	}
}

func (p *Parser) yieldExpr(flags exprFlags) {
	m := p.marker()
	p.assert(YieldKw)
	p.eatIf(Star)
	if !p.asiApplies() && !p.atSet(ExprFollowSet) {
		p.assignExpr(flags)
	}
	p.wrap(m, YieldExpr)
}

// tryArrowFunction speculatively parses an arrow function head (a single
// identifier, or a parenthesized parameter list) followed by `=>`, via
// checkpoint/restore, the same speculative-then-commit shape
// boergens-gotypst's parser uses for its set-rule/show-rule
// disambiguation and other_examples' goja uses for arrow-vs-parenthesized
// disambiguation.
func (p *Parser) tryArrowFunction(flags exprFlags) bool {
	async := false
	if p.atContextual(AsyncKw) && p.peekIsArrowHead() {
		async = true
	}

	if p.current() == Ident && !async {
		c := p.checkpoint()
		m := p.marker()
		p.convertContextualIdent()
		p.assert(Ident)
		if p.at(Arrow) && !p.hadNewlineBefore() {
			p.assert(Arrow)
			p.arrowBody(async, m)
			return true
		}
		p.restore(c)
		return false
	}

	if (async && p.atContextual(AsyncKw)) || p.at(LeftParen) {
		c := p.checkpoint()
		m := p.marker()
		if async {
			p.assertContextual(AsyncKw)
		}
		if !p.at(LeftParen) {
			p.restore(c)
			return false
		}
		if !p.looksLikeArrowParams() {
			p.restore(c)
			return false
		}
		p.paramList()
		if p.at(Arrow) && !p.hadNewlineBefore() {
			p.assert(Arrow)
			p.arrowBody(async, m)
			return true
		}
		p.restore(c)
		return false
	}

	return false
}

// peekIsArrowHead reports whether `async` is immediately followed (with
// no line break, since ASI would otherwise split `async` onto its own
// ExpressionStatement) by `(` or an identifier, either of which can
// start an async arrow function's parameter list.
func (p *Parser) peekIsArrowHead() bool {
	c := p.checkpoint()
	defer p.restore(c)
	p.assertContextual(AsyncKw)
	if p.hadNewlineBefore() {
		return false
	}
	return p.at(LeftParen) || p.current() == Ident
}

// looksLikeArrowParams does a cheap bracket-matching lookahead scan from
// the current `(` to its matching `)`, then checks whether `=>` follows,
// without committing any nodes — cheaper than a full speculative
// paramList() parse for the common case where it is not an arrow head.
func (p *Parser) looksLikeArrowParams() bool {
	lexer := p.lexer.Clone()
	depth := 0
	for {
		kind, _ := lexer.Next()
		switch kind {
		case LeftParen:
			depth++
		case RightParen:
			depth--
			if depth == 0 {
				for {
					k, _ := lexer.Next()
					if k.IsTrivia() {
						continue
					}
					return k == Arrow
				}
			}
		case End:
			return false
		}
	}
}

// arrowBody parses an arrow function's body (a block, or a bare
// AssignmentExpression for the concise-body form) and wraps the whole
// construct starting at m. `async` has already been consumed by the
// caller's checkpoint-protected speculative path.
func (p *Parser) arrowBody(async bool, m Marker) {
	if p.at(LeftBrace) {
		p.functionBody()
	} else {
		p.assignExpr(exprFlags{})
	}
	p.wrap(m, ArrowFunctionExpr)
}

// convertContextualIdent retags the current Ident node if its spelling
// matches a contextual keyword, used before committing to treat it as a
// binding name (arrow parameter, pattern) rather than an operator
// keyword, mirroring the goja/otto treatment of `async`/`of`/`let` etc.
// as "identifier unless the grammar position demands otherwise."
func (p *Parser) convertContextualIdent() {
	// no-op placeholder: contextual keywords already lex as Ident and
	// are left as Ident unless a specific rule (e.g. declstmt.go's
	// `let`/`const` dispatch) needs the reinterpretation.
}

func (p *Parser) conditionalExpr(flags exprFlags) {
	m := p.marker()
	p.nullishOrExpr(flags)
	if p.eatIf(Question) {
		p.assignExpr(exprFlags{})
		p.expect(Colon)
		p.assignExpr(flags)
		p.wrap(m, ConditionalExpr)
	}
}

// nullishOrExpr runs the precedence-climbing binary/logical operator
// loop starting at the lowest precedence level (nullish-coalescing and
// logical-or share level 1/2 but the specification forbids mixing `??`
// directly with `&&`/`||` without parentheses; that restriction is left
// to a later semantic pass rather than enforced here, matching how
// boergens-gotypst's parser defers similar ambiguous-mixing concerns).
func (p *Parser) nullishOrExpr(flags exprFlags) {
	m := p.marker()
	p.unaryExpr(flags)
	p.binaryExprRest(m, 1, flags)
}

// binaryExprRest implements precedence climbing: repeatedly consume an
// operator whose precedence is >= minPrec, parse its right operand
// (itself climbed to the operator's precedence, +1 for left-associative
// operators so same-precedence operators group left, +0 for
// right-associative so they group right), and wrap.
func (p *Parser) binaryExprRest(m Marker, minPrec int, flags exprFlags) {
	for {
		if flags.noIn && p.at(InKw) {
			return
		}
		op, ok := BinOpFromSyntaxKind(p.current())
		if !ok || op.Precedence() < minPrec {
			return
		}
		kind := BinaryExpr
		if op == BinOpLogicalAnd || op == BinOpLogicalOr || op == BinOpNullishCoalesce {
			kind = LogicalExpr
		}
		p.eat()
		rm := p.marker()
		p.unaryExpr(flags)
		nextMin := op.Precedence() + 1
		if op.Assoc() == AssocRight {
			nextMin = op.Precedence()
		}
		p.binaryExprRest(rm, nextMin, flags)
		p.wrap(m, kind)
	}
}

func (p *Parser) unaryExpr(flags exprFlags) {
	if _, ok := UnOpFromSyntaxKind(p.current()); ok {
		m := p.marker()
		p.eat()
		p.unaryExpr(flags)
		p.wrap(m, UnaryExpr)
		return
	}
	if p.atContextual(AwaitKw) && p.state.InAsync {
		m := p.marker()
		p.assertContextual(AwaitKw)
		p.unaryExpr(flags)
		p.wrap(m, AwaitExpr)
		return
	}
	if p.at(PlusPlus) || p.at(MinusMinus) {
		m := p.marker()
		p.eat()
		p.unaryExpr(flags)
		p.wrap(m, UpdateExpr)
		return
	}
	p.postfixExpr(flags)
}

func (p *Parser) postfixExpr(flags exprFlags) {
	m := p.marker()
	p.leftHandSideExpr(flags)
	if (p.at(PlusPlus) || p.at(MinusMinus)) && p.noLineTerminatorBefore() {
		p.eat()
		p.wrap(m, UpdateExpr)
	}
}

// leftHandSideExpr parses NewExpression/CallExpression/MemberExpression
// chains: a primary expression followed by any number of `.prop`,
// `[expr]`, `?.`, `(args)`, or tagged-template suffixes, plus `new`.
func (p *Parser) leftHandSideExpr(flags exprFlags) {
	m := p.marker()
	if p.at(NewKw) {
		p.newExpr(flags)
	} else {
		p.primaryExpr(flags)
	}
	p.callTail(m, flags)
}

func (p *Parser) newExpr(flags exprFlags) {
	m := p.marker()
	p.assert(NewKw)
	if p.at(Dot) {
		// new.target
		p.assert(Dot)
		p.expect(Ident)
		p.wrap(m, MemberExpr)
		return
	}
	if p.at(NewKw) {
		p.newExpr(flags)
	} else {
		p.primaryExpr(flags)
	}
	p.memberTail(m, flags)
	if p.at(LeftParen) {
		p.arguments()
	}
	p.wrap(m, NewExpr)
}

// memberTail consumes only `.prop`/`[expr]` suffixes (no calls), used
// by `new` expressions whose argument list binds to the nearest `new`.
func (p *Parser) memberTail(m Marker, flags exprFlags) {
	for {
		switch {
		case p.eatIf(Dot):
			p.expect(Ident)
			p.wrap(m, MemberExpr)
		case p.at(LeftBracket):
			p.assert(LeftBracket)
			p.expr(exprFlags{})
			p.expect(RightBracket)
			p.wrap(m, MemberExpr)
		default:
			return
		}
	}
}

func (p *Parser) callTail(m Marker, flags exprFlags) {
	for {
		switch {
		case p.eatIf(Dot):
			p.expect(Ident)
			p.wrap(m, MemberExpr)
		case p.eatIf(QuestionDot):
			if p.at(LeftParen) {
				p.arguments()
				p.wrap(m, CallExpr)
			} else if p.eatIf(LeftBracket) {
				p.expr(exprFlags{})
				p.expect(RightBracket)
				p.wrap(m, MemberExpr)
			} else {
				p.expect(Ident)
				p.wrap(m, MemberExpr)
			}
		case p.at(LeftBracket):
			p.assert(LeftBracket)
			p.expr(exprFlags{})
			p.expect(RightBracket)
			p.wrap(m, MemberExpr)
		case p.at(LeftParen):
			p.arguments()
			p.wrap(m, CallExpr)
		case p.at(TemplateLit):
			p.eat()
			p.wrap(m, TaggedTemplateExpr)
		default:
			return
		}
	}
}

func (p *Parser) arguments() {
	p.assert(LeftParen)
	for !p.at(RightParen) && !p.end() {
		if p.eatIf(DotDotDot) {
			sm := p.marker()
			p.assignExpr(exprFlags{})
			p.wrap(sm, SpreadElement)
		} else {
			p.assignExpr(exprFlags{})
		}
		if !p.eatIf(Comma) {
			break
		}
	}
	p.expect(RightParen)
}

func (p *Parser) primaryExpr(flags exprFlags) {
	switch {
	case p.atContextual(AsyncKw):
		c := p.checkpoint()
		p.assertContextual(AsyncKw)
		if p.at(FunctionKw) && !p.hadNewlineBefore() {
			p.functionExprHead(true)
		} else {
			p.restore(c)
			p.eat() // treat as plain identifier reference
		}
	case p.at(NumberLit), p.at(StringLit), p.at(TemplateLit), p.at(TrueKw),
		p.at(FalseKw), p.at(NullKw), p.at(ThisKw), p.at(SuperKw),
		p.current() == Ident, p.at(PrivateName):
		p.eat()
	case p.at(Slash), p.at(SlashEq):
		start := p.currentStart()
		_, node := p.lexer.RelexAsRegex(start)
		p.nodes = append(p.nodes, node)
		p.token = lex(&p.nodes, p.lexer)
	case p.at(LeftParen):
		p.parenthesizedExpr()
	case p.at(LeftBracket):
		p.arrayLiteral()
	case p.at(LeftBrace):
		if flags.noObjectLiteral {
			p.expected("expression")
			return
		}
		p.objectLiteral()
	case p.at(FunctionKw):
		p.functionExprHead(false)
	case p.at(ClassKw):
		p.classExprHead()
	default:
		p.expected("expression")
	}
}

func (p *Parser) parenthesizedExpr() {
	m := p.marker()
	p.assert(LeftParen)
	p.expr(exprFlags{})
	p.expect(RightParen)
	p.wrap(m, ParenthesizedExpr)
}

func (p *Parser) arrayLiteral() {
	m := p.marker()
	p.assert(LeftBracket)
	for !p.at(RightBracket) && !p.end() {
		if p.at(Comma) {
			p.eat() // elision
			continue
		}
		if p.eatIf(DotDotDot) {
			sm := p.marker()
			p.assignExpr(exprFlags{})
			p.wrap(sm, SpreadElement)
		} else {
			p.assignExpr(exprFlags{})
		}
		if !p.at(RightBracket) {
			p.expect(Comma)
		}
	}
	p.expect(RightBracket)
	p.wrap(m, ArrayExpr)
}

func (p *Parser) objectLiteral() {
	m := p.marker()
	p.assert(LeftBrace)
	for !p.at(RightBrace) && !p.end() {
		p.objectMember()
		if !p.at(RightBrace) {
			p.expect(Comma)
		}
	}
	p.expect(RightBrace)
	p.wrap(m, ObjectExpr)
}

func (p *Parser) objectMember() {
	m := p.marker()
	if p.eatIf(DotDotDot) {
		p.assignExpr(exprFlags{})
		p.wrap(m, SpreadElement)
		return
	}
	isAccessor := (p.atContextual(GetKw) || p.atContextual(SetKw)) && !p.nextIsPropertyEnd()
	if isAccessor {
		p.eat()
		p.propertyKey()
		p.paramList()
		p.functionBody()
		p.wrap(m, MethodDef)
		return
	}
	async := p.atContextual(AsyncKw) && !p.nextIsPropertyEnd()
	if async {
		p.eat()
	}
	generator := p.eatIf(Star)
	p.propertyKey()
	if p.at(LeftParen) {
		p.paramList()
		p.functionBody()
		p.wrap(m, MethodDef)
		return
	}
	if p.eatIf(Colon) {
		p.assignExpr(exprFlags{})
	} else if p.eatIf(Eq) {
		p.assignExpr(exprFlags{})
	}
	_ = generator
	p.wrap(m, Property)
}

// nextIsPropertyEnd reports whether the token after the current one
// ends the property (`,`/`}`/`:`/`(`), meaning the current token (e.g.
// `get`, `async`) is itself the property's name rather than a modifier.
func (p *Parser) nextIsPropertyEnd() bool {
	c := p.checkpoint()
	defer p.restore(c)
	p.eat()
	switch p.current() {
	case Comma, RightBrace, Colon, LeftParen, Eq:
		return true
	}
	return false
}

func (p *Parser) propertyKey() {
	if p.eatIf(LeftBracket) {
		p.assignExpr(exprFlags{})
		p.expect(RightBracket)
		return
	}
	switch p.current() {
	case Ident, StringLit, NumberLit, PrivateName:
		p.eat()
	default:
		if p.current().IsKeyword() {
			p.convertAndEat(Ident)
		} else {
			p.expected("property name")
		}
	}
}

func (p *Parser) functionExprHead(async bool) {
	m := p.marker()
	p.assert(FunctionKw)
	generator := p.eatIf(Star)
	if p.current() == Ident {
		p.eat()
	}
	saved := p.state
	p.state = p.state.enterFunction(async, generator)
	p.paramList()
	p.functionBody()
	p.state = saved
	p.wrap(m, FunctionExpr)
}

func (p *Parser) classExprHead() {
	m := p.marker()
	p.classTail()
	p.wrap(m, ClassExpr)
}
