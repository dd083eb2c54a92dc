package syntax

// module.go parses ECMAScript module declarations: import declarations
// (default/namespace/named specifiers, bare side-effecting imports) and
// export declarations (named re-exports, default exports, export-all,
// and exporting a declaration directly).
//
// Grounded on boergens-gotypst's package.go import-path parsing (the
// closest Typst analogue, since Typst modules are imported by path too,
// though with a far simpler grammar than ECMAScript's specifier
// clauses), generalized using other_examples' goja/kdy1-go-typescript-eslint
// parseImportDeclaration/parseExportDeclaration as the grammar
// reference for specifier-list shapes.
func (p *Parser) importDecl() {
	m := p.marker()
	p.assert(ImportKw)

	if p.at(StringLit) {
		// Bare `import "module";` with no bindings.
		p.eat()
		p.semi(p.statementRange(m))
		p.wrap(m, ImportDecl)
		return
	}

	needsComma := false
	if p.current() == Ident {
		dm := p.marker()
		p.eat()
		p.wrap(dm, ImportDefaultSpecifier)
		needsComma = true
	}

	if needsComma {
		if !p.atContextual(FromKw) {
			p.expect(Comma)
		}
	}

	if p.at(Star) {
		nm := p.marker()
		p.assert(Star)
		p.expectContextual(AsKw)
		p.expect(Ident)
		p.wrap(nm, ImportNamespaceSpecifier)
	} else if p.at(LeftBrace) {
		p.namedImportList()
	}

	p.expectContextual(FromKw)
	p.expect(StringLit)
	p.semi(p.statementRange(m))
	p.wrap(m, ImportDecl)
}

func (p *Parser) namedImportList() {
	p.assert(LeftBrace)
	for !p.at(RightBrace) && !p.end() {
		sm := p.marker()
		p.importSpecifierName()
		if p.eatIfContextual(AsKw) {
			p.expect(Ident)
		}
		p.wrap(sm, ImportSpecifier)
		if !p.at(RightBrace) {
			p.expect(Comma)
		}
	}
	p.expect(RightBrace)
}

// importSpecifierName accepts an identifier or a reserved word used as
// an imported binding's external name (`import { default as x }`).
func (p *Parser) importSpecifierName() {
	if p.current() == Ident || p.current().IsKeyword() {
		p.eat()
		return
	}
	p.expected("import specifier")
}

func (p *Parser) exportDecl() {
	m := p.marker()
	p.assert(ExportKw)

	switch {
	case p.eatIf(DefaultKw):
		p.exportDefault(m)
	case p.at(Star):
		p.exportAll(m)
	case p.at(LeftBrace):
		p.exportNamed(m)
	default:
		p.exportDeclaration(m)
	}
}

func (p *Parser) exportDefault(m Marker) {
	switch {
	case p.at(FunctionKw):
		p.functionDecl(false)
	case p.at(ClassKw):
		p.classDecl()
	case p.atContextual(AsyncKw):
		if p.peekIsAsyncFunction() {
			fm := p.marker()
			p.assertContextual(AsyncKw)
			p.functionDeclFromAsync(fm)
		} else {
			p.assignExpr(exprFlags{})
			p.semi(p.statementRange(m))
		}
	default:
		p.assignExpr(exprFlags{})
		p.semi(p.statementRange(m))
	}
	p.wrap(m, ExportDefaultDecl)
}

func (p *Parser) exportAll(m Marker) {
	p.assert(Star)
	if p.eatIfContextual(AsKw) {
		p.expect(Ident)
	}
	p.expectContextual(FromKw)
	p.expect(StringLit)
	p.semi(p.statementRange(m))
	p.wrap(m, ExportAllDecl)
}

func (p *Parser) exportNamed(m Marker) {
	p.assert(LeftBrace)
	for !p.at(RightBrace) && !p.end() {
		sm := p.marker()
		p.importSpecifierName()
		if p.eatIfContextual(AsKw) {
			p.importSpecifierName()
		}
		p.wrap(sm, ExportSpecifier)
		if !p.at(RightBrace) {
			p.expect(Comma)
		}
	}
	p.expect(RightBrace)
	if p.eatIfContextual(FromKw) {
		p.expect(StringLit)
	}
	p.semi(p.statementRange(m))
	p.wrap(m, ExportNamedDecl)
}

// exportDeclaration handles `export` directly in front of a declaration
// (`export function f(){}`, `export class C{}`, `export let/const/var`).
func (p *Parser) exportDeclaration(m Marker) {
	switch {
	case p.at(FunctionKw):
		p.functionDecl(false)
	case p.at(ClassKw):
		p.classDecl()
	case p.at(VarKw), p.at(ConstKw), p.atContextual(LetKw):
		p.varDeclStmt(exprFlags{})
		p.semi(p.statementRange(m))
	case p.atContextual(AsyncKw):
		fm := p.marker()
		p.assertContextual(AsyncKw)
		p.functionDeclFromAsync(fm)
	default:
		p.expected("declaration")
	}
	p.wrap(m, ExportNamedDecl)
}
