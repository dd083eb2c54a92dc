// Package syntax: this file implements the marker-based event sink and
// core token-stream operations shared by every statement/expression rule.
//
// Grounded on boergens-gotypst/syntax/parser.go's wrap/wrapError/
// checkpoint/restore/expect/expected/unexpected/depth-check machinery,
// with the Typst-specific AtNewline/NLMode mode-switching dropped: JS
// has one lexical grammar (no markup/math/code mode), so ASI's newline
// sensitivity is carried as a single bool on the token (see asi.go)
// rather than a stack of newline-stop policies.
package syntax

import "github.com/krotik/common/errorutil"

// MaxDepth bounds expression/statement nesting depth so that pathological
// or adversarial input (deeply nested parens, deeply nested template
// literals) fails with a diagnostic instead of overflowing the Go stack.
const MaxDepth = 256

// Marker is a position in the parser's flat node array, captured before
// parsing a construct so it can later be "wrapped" (completed) into an
// inner node once its extent is known — the precede/wrap pattern.
type Marker int

// Token is the current lookahead token plus enough cached lexer state to
// support ASI and the parser's expectation diagnostics.
type Token struct {
	kind          SyntaxKind
	node          *SyntaxNode
	nTrivia       int
	newlineBefore bool
	start         int
	prevEnd       int
}

// Checkpoint captures enough parser state to backtrack a speculative
// parse (e.g. disambiguating `for (` header shapes, or arrow-function
// parameter lists from parenthesized expressions).
type Checkpoint struct {
	nodeLen int
	cursor  int
	token   Token
}

// Parser drives a Lexer and assembles SyntaxNodes into p.nodes, the flat
// append-only event sink spec'd as the tree's "Marker"/"wrap" protocol.
type Parser struct {
	text  string
	lexer *Lexer
	token Token

	nodes []*SyntaxNode
	diags []*Diagnostic

	// balanced tracks whether every opened grouping delimiter has been
	// matched by its closer, mirroring the teacher's field of the same
	// name and purpose.
	balanced bool

	depth int

	state ParserState
}

// NewParser creates a parser over the given source text, positioned at
// the start of the token stream.
func NewParser(text string) *Parser {
	lexer := NewLexer(text)
	nodes := make([]*SyntaxNode, 0, 64)
	token := lex(&nodes, lexer)
	return &Parser{
		text:     text,
		lexer:    lexer,
		token:    token,
		nodes:    nodes,
		balanced: true,
		state:    NewParserState(),
	}
}

// Diagnostics returns every diagnostic collected so far, in source order.
func (p *Parser) Diagnostics() []*Diagnostic {
	return p.diags
}

func (p *Parser) addDiagnostic(d *Diagnostic) {
	p.diags = append(p.diags, d)
}

// finishInto wraps every node produced so far into a single root node.
func (p *Parser) finishInto(kind SyntaxKind) *SyntaxNode {
	return Inner(kind, p.nodes)
}

// current returns the kind of the next token to be eaten.
func (p *Parser) current() SyntaxKind { return p.token.kind }

// at reports whether the current token has the given kind.
func (p *Parser) at(kind SyntaxKind) bool { return p.token.kind == kind }

// atSet reports whether the current token's kind is in the given set.
func (p *Parser) atSet(set SyntaxSet) bool { return set.Contains(p.token.kind) }

// end reports whether the token stream is exhausted.
func (p *Parser) end() bool { return p.at(End) }

// hadNewlineBefore reports whether a line terminator occurred in the
// trivia preceding the current token — the signal ASI's semi() rule
// needs, and the signal §6's "has_linebreak_before_n" op exposes.
func (p *Parser) hadNewlineBefore() bool { return p.token.newlineBefore }

// directlyAt reports whether the current token has the given kind with
// no intervening trivia, used to distinguish e.g. `a` `(` (a call) from
// `a` newline `(` (two statements, under ASI).
func (p *Parser) directlyAt(kind SyntaxKind) bool {
	return p.token.kind == kind && p.token.nTrivia == 0
}

// currentText returns the exact source text of the current token.
func (p *Parser) currentText() string {
	return p.text[p.token.start:p.currentEnd()]
}

func (p *Parser) currentStart() int { return p.token.start }
func (p *Parser) currentEnd() int   { return p.lexer.Cursor() }
func (p *Parser) prevEnd() int      { return p.token.prevEnd }

// currentRange returns the source range of the current token.
func (p *Parser) currentRange() Range {
	return Range{Start: p.currentStart(), End: p.currentEnd()}
}

// marker returns a Marker at the current tail of the node array,
// including any not-yet-consumed trivia nodes queued ahead of it.
func (p *Parser) marker() Marker { return Marker(len(p.nodes)) }

// beforeTrivia returns a Marker pointing before the trivia that precedes
// the current token, i.e. at the end of the last significant token.
func (p *Parser) beforeTrivia() Marker {
	return Marker(len(p.nodes) - p.token.nTrivia)
}

// eatAndGet eats the current token and returns the produced leaf node
// for in-place mutation (e.g. ConvertToKind).
func (p *Parser) eatAndGet() *SyntaxNode {
	offset := len(p.nodes)
	p.eat()
	return p.nodes[offset]
}

// eatIf eats the current token if it has the given kind.
func (p *Parser) eatIf(kind SyntaxKind) bool {
	if p.at(kind) {
		p.eat()
		return true
	}
	return false
}

// assert eats the current token, which the caller guarantees has the
// given kind (a dispatch that already checked `at` before calling in).
func (p *Parser) assert(kind SyntaxKind) {
	errorutil.AssertTrue(p.token.kind == kind, "parser: assert("+kind.Name()+") but current is "+p.token.kind.Name())
	p.eat()
}

// convertAndEat retags the current token's node to another kind (e.g.
// reinterpreting an Ident as a contextual keyword) and eats it.
func (p *Parser) convertAndEat(kind SyntaxKind) {
	p.token.node.ConvertToKind(kind)
	p.eat()
}

// atContextual reports whether the current token is an Ident whose
// exact text spells the given contextual keyword (LetKw, StaticKw,
// AsyncKw, AwaitKw, OfKw, AsKw, FromKw, GetKw, SetKw). The lexer always
// lexes these spellings as plain Ident (see kind.go's ContextualKeywords)
// so that they remain legal ordinary binding names outside the grammar
// positions that reinterpret them; atContextual is that reinterpretation
// check, done by text rather than by kind.
func (p *Parser) atContextual(kw SyntaxKind) bool {
	return p.token.kind == Ident && ContextualKeywords[p.currentText()] == kw
}

// eatIfContextual retags and eats the current token if it spells the
// given contextual keyword, mirroring eatIf for the reserved-keyword case.
func (p *Parser) eatIfContextual(kw SyntaxKind) bool {
	if p.atContextual(kw) {
		p.convertAndEat(kw)
		return true
	}
	return false
}

// assertContextual retags and eats the current token, which the caller
// guarantees spells the given contextual keyword (a dispatch that
// already checked atContextual before calling in), mirroring assert for
// the reserved-keyword case.
func (p *Parser) assertContextual(kw SyntaxKind) {
	errorutil.AssertTrue(p.atContextual(kw), "parser: assertContextual("+kw.Name()+") but current is "+p.token.kind.Name()+" "+p.currentText())
	p.convertAndEat(kw)
}

// expectContextual retags and eats the current token if it spells the
// given contextual keyword, else records an expectation diagnostic,
// mirroring expect for the reserved-keyword case.
func (p *Parser) expectContextual(kw SyntaxKind) bool {
	if p.eatIfContextual(kw) {
		return true
	}
	p.expected(kw.Name())
	return false
}

// eat commits the current token to the node array and advances the lexer.
// The node's span is stamped here rather than by the lexer, since the
// lexer itself never sees a node's final position relative to the
// parser's flat array — only the parser knows "this is the token I am
// about to commit, and here is where it started and ends."
func (p *Parser) eat() {
	p.token.node.SetSpan(p.currentRange())
	p.nodes = append(p.nodes, p.token.node)
	p.token = lex(&p.nodes, p.lexer)
}

// wrap completes the marker: every node from `from` up to (but not
// including) the trivia preceding the current token is spliced out and
// replaced by a single new Inner node of the given kind — the "precede"
// operation rust-analyzer-style parsers use to retroactively establish
// a parent once its children's full extent is known.
func (p *Parser) wrap(from Marker, kind SyntaxKind) *SyntaxNode {
	to := int(p.beforeTrivia())
	fromIdx := int(from)
	if fromIdx > to {
		fromIdx = to
	}

	children := make([]*SyntaxNode, to-fromIdx)
	copy(children, p.nodes[fromIdx:to])
	trailing := make([]*SyntaxNode, len(p.nodes)-to)
	copy(trailing, p.nodes[to:])

	wrapped := Inner(kind, children)
	p.nodes = p.nodes[:fromIdx]
	p.nodes = append(p.nodes, wrapped)
	p.nodes = append(p.nodes, trailing...)
	return wrapped
}

// wrapError is wrap's error-recovery counterpart: the range is spliced
// out and replaced by a single ErrorNode carrying the given message,
// used when a whole construct (e.g. a malformed for-head) could not be
// parsed as anything sensible but its source text must still be kept.
func (p *Parser) wrapError(from Marker, message string) *SyntaxNode {
	to := int(p.beforeTrivia())
	fromIdx := int(from)
	if fromIdx > to {
		fromIdx = to
	}
	var text string
	for i := fromIdx; i < to; i++ {
		text += p.nodes[i].IntoText()
	}
	diag := NewDiagnostic(Range{Start: p.nodes[fromIdx].Span().Start, End: p.nodes[fromIdx].Span().Start + len(text)}, message)
	p.addDiagnostic(diag)
	errNode := ErrorNode(diag, text)

	newNodes := make([]*SyntaxNode, fromIdx+1+len(p.nodes)-to)
	copy(newNodes[:fromIdx], p.nodes[:fromIdx])
	newNodes[fromIdx] = errNode
	copy(newNodes[fromIdx+1:], p.nodes[to:])
	p.nodes = newNodes
	return errNode
}

// lex advances the lexer past trivia and returns the next significant
// token, recording whether any trivia line terminator preceded it.
func lex(nodes *[]*SyntaxNode, lexer *Lexer) Token {
	prevEnd := lexer.Cursor()
	start := prevEnd
	kind, node := lexer.Next()
	nTrivia := 0
	newlineBefore := false

	for kind.IsTrivia() {
		if kind == LineTerminatorTrivia {
			newlineBefore = true
		}
		nTrivia++
		node.SetSpan(Range{Start: start, End: lexer.Cursor()})
		*nodes = append(*nodes, node)
		start = lexer.Cursor()
		kind, node = lexer.Next()
	}

	return Token{
		kind:          kind,
		node:          node,
		nTrivia:       nTrivia,
		newlineBefore: newlineBefore,
		start:         start,
		prevEnd:       prevEnd,
	}
}

// --- checkpoint / restore: speculative parsing without backtracking
// state leaking into the committed tree ---

// checkpoint saves the parser's exact position for a later restore.
func (p *Parser) checkpoint() Checkpoint {
	return Checkpoint{nodeLen: len(p.nodes), cursor: p.lexer.Cursor(), token: p.token}
}

// restore rewinds the parser to a previously captured checkpoint,
// discarding every node and diagnostic produced since. Used for e.g.
// the parenthesized-head speculative parse in exprparen.go that must
// try "arrow function params" before falling back to "expression".
func (p *Parser) restore(c Checkpoint) {
	p.nodes = p.nodes[:c.nodeLen]
	p.lexer.Jump(c.cursor)
	p.token = c.token
}

// --- error handling ---

// expect consumes the current token if it has the given kind, else
// records an expectation diagnostic and leaves the token unconsumed
// (except when a keyword was found where an identifier was wanted, in
// which case it is consumed and retagged into an error so recovery can
// continue past it).
func (p *Parser) expect(kind SyntaxKind) bool {
	if p.at(kind) {
		p.eat()
		return true
	}
	if kind == Ident && p.token.kind.IsKeyword() {
		p.trimErrors()
		p.eatAndGet().Expected(kind.Name())
		return false
	}
	if kind == LeftBrace || kind == LeftParen || kind == LeftBracket {
		p.balanced = false
	}
	p.expected(kind.Name())
	return false
}

// expectClosingDelimiter consumes the closing delimiter or, failing
// that, marks the opening delimiter's node as an unclosed-delimiter
// error, pointing the reader back at the opener rather than just
// complaining at EOF.
func (p *Parser) expectClosingDelimiter(open Marker, kind SyntaxKind) {
	if !p.eatIf(kind) {
		openNode := p.nodes[open]
		diag := NewDiagnostic(openNode.Span(), "unclosed delimiter")
		p.addDiagnostic(diag)
		openNode.ConvertToError("unclosed delimiter")
	}
}

// expected records that `thing` was expected at the current position,
// unless the immediately preceding node is already an error (avoids a
// cascade of near-duplicate diagnostics after one real mistake).
func (p *Parser) expected(thing string) {
	if !p.afterError() {
		p.expectedAt(p.beforeTrivia(), thing)
	}
}

func (p *Parser) afterError() bool {
	m := p.beforeTrivia()
	return int(m) > 0 && p.nodes[m-1].Kind().IsError()
}

// expectedAt inserts a zero-width "expected X" error node at marker m,
// grounded on other_examples' ottomap insertionSpan/synthToken pattern
// for reporting a missing token without consuming anything real.
func (p *Parser) expectedAt(m Marker, thing string) {
	at := p.currentStart()
	diag := NewDiagnostic(Range{Start: at, End: at}, "expected "+thing+", found "+p.token.kind.Name())
	p.addDiagnostic(diag)
	errNode := ErrorNode(diag, "")
	newNodes := make([]*SyntaxNode, 0, len(p.nodes)+1)
	newNodes = append(newNodes, p.nodes[:m]...)
	newNodes = append(newNodes, errNode)
	newNodes = append(newNodes, p.nodes[m:]...)
	p.nodes = newNodes
}

// hint appends a help note to the most recent trailing error, if any.
func (p *Parser) hint(h string) {
	m := p.beforeTrivia()
	if int(m) > 0 {
		p.nodes[m-1].Hint(h)
	}
}

// unexpected consumes the current token and converts it into an
// "unexpected X" error, used by statement dispatch's default case.
func (p *Parser) unexpected() {
	p.trimErrors()
	if p.token.kind == LeftBrace || p.token.kind == LeftParen || p.token.kind == LeftBracket {
		p.balanced = false
	}
	p.eatAndGet().Unexpected()
}

// trimErrors removes trailing zero-length error nodes immediately
// before the current position, preventing an unbroken run of empty
// "expected X" markers from piling up during a long recovery skip.
func (p *Parser) trimErrors() {
	end := int(p.beforeTrivia())
	start := end
	for start > 0 && p.nodes[start-1].Kind().IsError() && p.nodes[start-1].IsEmpty() {
		start--
	}
	if start < end {
		p.nodes = append(p.nodes[:start], p.nodes[end:]...)
	}
}

// synchronize skips tokens until one in `recovery` is reached (or EOF),
// wrapping the skipped span as a single error node. Grounded on
// other_examples' kdy1-go-typescript-eslint synchronize() token-set
// recovery and goja's nextStatement()-style resync after a malformed
// statement.
func (p *Parser) synchronize(recovery SyntaxSet, message string) {
	m := p.marker()
	if p.atSet(recovery) || p.end() {
		p.expected(message)
		return
	}
	for !p.atSet(recovery) && !p.end() {
		p.eat()
	}
	p.wrapError(m, message)
}

// --- depth guard ---

func (p *Parser) increaseDepth() func() {
	if p.depth < MaxDepth {
		p.depth++
		return func() { p.depth-- }
	}
	p.depthCheckError()
	return nil
}

func (p *Parser) depthCheckError() {
	m := p.marker()
	balance := 0
	for {
		switch p.current() {
		case LeftBrace, LeftParen, LeftBracket:
			balance++
		case RightBrace, RightParen, RightBracket:
			balance--
			if balance < 0 {
				balance = 0
			}
		}
		p.eat()
		if (balance == 0 && p.atSet(StmtRecoverySet)) || p.end() {
			break
		}
	}
	p.wrapError(m, "maximum parsing depth exceeded")
}
