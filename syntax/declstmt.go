package syntax

// declstmt.go parses variable declarations: `var`/`let`/`const`
// followed by one or more VarDeclarators, each a BindingPattern with an
// optional initializer. Shared by the top-level VariableStatement and
// by the C-style for-head's declaration form (which passes
// exprFlags{noIn: true} so a bare `in` inside the head's initializer
// is read by forstmt.go as the for-in keyword rather than a binary
// operator), per the ECMAScript grammar's Expression[In] / [~In]
// parameterization.
//
// Grounded on boergens-gotypst/syntax/parser_code.go's closure-let
// binding parse, generalized to ECMAScript's three declaration
// keywords and multi-declarator lists, with the "Object and Array
// patterns require initializers" and "const declarations must have an
// initialized value" diagnostics ported from
// original_source/rslint_parser/src/syntax/stmt.rs's declarator().

// varDeclStmt parses `var`/`let`/`const` Declarator (`,` Declarator)*,
// wrapped as a VarDeclStmt. The caller is responsible for the
// terminating `;` (via ASI) since the for-head caller does not want one.
func (p *Parser) varDeclStmt(flags exprFlags) {
	m := p.marker()
	kind := p.current()
	if p.atContextual(LetKw) {
		kind = LetKw
		p.assertContextual(LetKw)
	} else {
		p.eat() // VarKw | ConstKw
	}

	count := 0
	for {
		p.varDeclarator(kind, flags)
		count++
		if !p.eatIf(Comma) {
			break
		}
	}
	if kind == ConstKw {
		p.requireInitializers(m, count)
	}
	p.wrap(m, VarDeclStmt)
}

func (p *Parser) varDeclarator(kind SyntaxKind, flags exprFlags) {
	m := p.marker()
	p.bindingPattern()
	patternKind := p.nodes[m].Kind()
	if p.eatIf(Eq) {
		p.assignExpr(flags)
	} else if patternKind == ArrayPattern || patternKind == ObjectPattern {
		diag := NewDiagnostic(p.nodes[m].Span(), "Object and Array patterns require initializers")
		p.addDiagnostic(diag)
	}
	p.wrap(m, VarDeclarator)
}

// requireInitializers re-walks the declarators just wrapped and flags
// any `const` declarator missing an initializer, matching V8's
// "Missing initializer in const declaration" SyntaxError. Implemented
// as a post-hoc check over the freshly parsed nodes rather than inline
// in varDeclarator, since varDeclarator doesn't know which keyword
// introduced it without being threaded an extra flag for this one rule.
//
// A declarator whose pattern is an Array/ObjectPattern is skipped here:
// varDeclarator already flagged it with "patterns require initializers",
// and original_source/rslint_parser/src/syntax/stmt.rs's declarator()
// treats the two checks as mutually exclusive (an else-if), so a missing
// initializer on a destructuring const declarator is reported once, not
// twice.
func (p *Parser) requireInitializers(m Marker, count int) {
	for i := int(m); i < len(p.nodes); i++ {
		node := p.nodes[i]
		if node.Kind() != VarDeclarator {
			continue
		}
		if isAssignmentTail(node.Children()) {
			continue
		}
		if patternKind := firstSignificantChildKind(node.Children()); patternKind == ArrayPattern || patternKind == ObjectPattern {
			continue
		}
		diag := NewDiagnostic(node.Span(), "missing initializer in const declaration")
		p.addDiagnostic(diag)
	}
}

// firstSignificantChildKind returns the kind of the first non-trivia
// child, used to recover a VarDeclarator's pattern kind after wrapping.
func firstSignificantChildKind(children []*SyntaxNode) SyntaxKind {
	for _, c := range children {
		if !c.Kind().IsTrivia() {
			return c.Kind()
		}
	}
	return Error
}

// isAssignmentTail reports whether a VarDeclarator's children end with
// an `=` initializer: the pattern followed by `=` followed by the
// initializer expression (3 children at minimum: pattern, Eq is folded
// into trivia between them so in practice the shape is [pattern, expr]
// once wrapped, so the presence of a second top-level child after the
// pattern is itself the signal, since a bare pattern without `=` wraps
// to exactly one child).
func isAssignmentTail(children []*SyntaxNode) bool {
	significant := 0
	for _, c := range children {
		if !c.Kind().IsTrivia() {
			significant++
		}
	}
	return significant >= 2
}
