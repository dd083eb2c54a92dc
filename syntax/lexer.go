package syntax

// Lexer tokenizes ECMAScript source text into SyntaxNode leaves.
//
// Grounded on boergens-gotypst/syntax/lexer.go's Lexer{s,mode}/Next()
// shape and its Column() backward-scan for diagnostics, retargeted from
// Typst's markup/math/code token set to ECMAScript's. Typst's lexer is
// parameterized over SyntaxMode (markup/math/code); ECMAScript has one
// lexical grammar, so that parameter is dropped (see DESIGN.md) except
// for the single "is `/` a division operator or a regex literal" fork,
// which the statement/expression parser resolves contextually by
// calling RelexAsRegex rather than by a persistent lexer mode, mirroring
// how other_examples' goja/otto parsers resolve the same ambiguity at
// the call site instead of in the lexer.
type Lexer struct {
	s   *Scanner
	err *Diagnostic
}

// NewLexer creates a lexer over the given source text.
func NewLexer(text string) *Lexer {
	return &Lexer{s: NewScanner(text)}
}

// Cursor returns the lexer's current byte offset.
func (l *Lexer) Cursor() int { return l.s.Cursor() }

// Jump repositions the lexer at the given byte offset, used to
// re-lex starting at a previously lexed token's start (e.g. for
// RelexAsRegex, or after `restore`).
func (l *Lexer) Jump(index int) { l.s.Jump(index) }

// Clone returns an independent copy of the lexer positioned at the same
// offset, used for throwaway lookahead scans (e.g. the arrow-function
// parameter-list bracket match in expr.go) that must not disturb the
// real lexer's position or error state.
func (l *Lexer) Clone() *Lexer {
	return &Lexer{s: l.s.Clone()}
}

// Column returns the number of characters between the most recent line
// terminator before index and index itself, used for diagnostic column
// computation when a grapheme-aware LineIndex is not available.
func (l *Lexer) Column(index int) int {
	s := l.s.Clone()
	s.Jump(index)
	before := s.Before()
	count := 0
	runes := []rune(before)
	for i := len(runes) - 1; i >= 0; i-- {
		if IsLineTerminator(runes[i]) {
			break
		}
		count++
	}
	return count
}

func (l *Lexer) error(start int, message string) SyntaxKind {
	l.err = NewDiagnostic(Range{Start: start, End: l.s.Cursor()}, message)
	return Error
}

// Next returns the next token: its kind and the leaf SyntaxNode to
// splice into the tree. Trivia tokens (whitespace, comments, line
// terminators) are returned just like significant tokens — parser.lex
// is responsible for collecting them and folding the resulting
// newlineBefore signal into the next significant Token.
func (l *Lexer) Next() (SyntaxKind, *SyntaxNode) {
	l.err = nil
	start := l.s.Cursor()
	c := l.s.Eat()

	var kind SyntaxKind
	switch {
	case c == 0:
		kind = End
	case c == '#' && start == 0 && l.s.EatIf('!'):
		kind = l.shebang()
	case IsLineTerminator(c):
		l.eatMoreLineTerminators()
		kind = LineTerminatorTrivia
	case IsWhiteSpace(c):
		l.s.EatWhile(IsWhiteSpace)
		kind = Whitespace
	case c == '/' && l.s.EatIf('/'):
		kind = l.lineComment()
	case c == '/' && l.s.EatIf('*'):
		kind = l.blockComment(start)
	case c == '"' || c == '\'':
		kind = l.stringLiteral(start, c)
	case c == '`':
		kind = l.templateLiteral(start)
	case c >= '0' && c <= '9':
		kind = l.number(c)
	case c == '.' && isDigit(l.s.Peek()):
		kind = l.number(c)
	case c == '#' && IsIDStart(l.s.Peek()):
		kind = l.privateName()
	case IsIDStart(c):
		kind = l.identifierOrKeyword(start)
	default:
		kind = l.punctuator(start, c)
	}

	text := l.s.From(start)
	if kind == Error {
		diag := l.err
		if diag == nil {
			diag = NewDiagnostic(Range{Start: start, End: l.s.Cursor()}, "unexpected character "+DescribeRune(c))
		}
		return Error, ErrorNode(diag, text)
	}
	return kind, Leaf(kind, text)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (l *Lexer) eatMoreLineTerminators() {
	// A run of blank lines still counts as one LineTerminatorTrivia node
	// from the parser's point of view (it only needs to know "at least
	// one line terminator occurred"), so whitespace and further
	// terminators are folded into the same trivia span.
	for {
		r := l.s.Peek()
		if IsLineTerminator(r) || IsWhiteSpace(r) {
			l.s.Eat()
			continue
		}
		break
	}
}

func (l *Lexer) shebang() SyntaxKind {
	l.s.EatUntil(IsLineTerminator)
	return Shebang
}

func (l *Lexer) lineComment() SyntaxKind {
	l.s.EatUntil(IsLineTerminator)
	return LineComment
}

func (l *Lexer) blockComment(start int) SyntaxKind {
	for !l.s.Done() {
		if l.s.EatIf('*') && l.s.EatIf('/') {
			return BlockComment
		}
		l.s.Eat()
	}
	return l.error(start, "unterminated block comment")
}

func (l *Lexer) stringLiteral(start int, quote rune) SyntaxKind {
	for {
		if l.s.Done() {
			return l.error(start, "unterminated string literal")
		}
		c := l.s.Peek()
		if IsLineTerminator(c) {
			return l.error(start, "unterminated string literal")
		}
		if c == '\\' {
			l.s.Eat()
			if !l.s.Done() {
				l.s.Eat()
			}
			continue
		}
		l.s.Eat()
		if c == quote {
			return StringLit
		}
	}
}

// templateLiteral consumes an entire template literal, including any
// `${...}` substitutions, as a single opaque token. ecmacst's external
// expression hook (syntax/expr.go) treats a template literal as one
// leaf rather than re-entering statement/expression parsing inside the
// substitution, a deliberate simplification of the full ECMAScript
// grammar (see DESIGN.md): the substitution's *contents* are not part
// of the statement-level CST this parser is responsible for.
func (l *Lexer) templateLiteral(start int) SyntaxKind {
	depth := 0
	for {
		if l.s.Done() {
			return l.error(start, "unterminated template literal")
		}
		c := l.s.Eat()
		switch c {
		case '\\':
			if !l.s.Done() {
				l.s.Eat()
			}
		case '$':
			if l.s.EatIf('{') {
				depth++
			}
		case '}':
			if depth > 0 {
				depth--
			}
		case '`':
			if depth == 0 {
				return TemplateLit
			}
		}
	}
}

func (l *Lexer) number(first rune) SyntaxKind {
	if first == '0' && (l.s.EatIf('x') || l.s.EatIf('X')) {
		l.s.EatWhile(func(r rune) bool {
			return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') || r == '_'
		})
		return l.numberSuffix()
	}
	if first == '0' && (l.s.EatIf('o') || l.s.EatIf('O')) {
		l.s.EatWhile(func(r rune) bool { return (r >= '0' && r <= '7') || r == '_' })
		return l.numberSuffix()
	}
	if first == '0' && (l.s.EatIf('b') || l.s.EatIf('B')) {
		l.s.EatWhile(func(r rune) bool { return r == '0' || r == '1' || r == '_' })
		return l.numberSuffix()
	}

	l.s.EatWhile(func(r rune) bool { return isDigit(r) || r == '_' })
	if first != '.' && l.s.EatIf('.') {
		l.s.EatWhile(func(r rune) bool { return isDigit(r) || r == '_' })
	}
	if l.s.EatIf('e') || l.s.EatIf('E') {
		if !l.s.EatIf('+') {
			l.s.EatIf('-')
		}
		l.s.EatWhile(isDigit)
	}
	return l.numberSuffix()
}

func (l *Lexer) numberSuffix() SyntaxKind {
	l.s.EatIf('n') // BigInt suffix
	return NumberLit
}

func (l *Lexer) privateName() SyntaxKind {
	l.s.EatWhile(IsIDContinue)
	return PrivateName
}

func (l *Lexer) identifierOrKeyword(start int) SyntaxKind {
	l.s.EatWhile(IsIDContinue)
	text := l.s.From(start)
	if kind, ok := Keywords[text]; ok {
		return kind
	}
	return Ident
}

func (l *Lexer) punctuator(start int, c rune) SyntaxKind {
	switch c {
	case '{':
		return LeftBrace
	case '}':
		return RightBrace
	case '(':
		return LeftParen
	case ')':
		return RightParen
	case '[':
		return LeftBracket
	case ']':
		return RightBracket
	case ';':
		return Semicolon
	case ',':
		return Comma
	case '@':
		return At
	case '~':
		return Tilde
	case '.':
		if l.s.At("..") {
			l.s.Advance(2)
			return DotDotDot
		}
		return Dot
	case ':':
		return Colon
	case '?':
		if l.s.EatIf('?') {
			if l.s.EatIf('=') {
				return QuestionQuestionEq
			}
			return QuestionQuestion
		}
		if l.s.EatIf('.') {
			return QuestionDot
		}
		return Question
	case '!':
		if l.s.EatIf('=') {
			if l.s.EatIf('=') {
				return BangEqEq
			}
			return BangEq
		}
		return Bang
	case '=':
		if l.s.EatIf('=') {
			if l.s.EatIf('=') {
				return EqEqEq
			}
			return EqEq
		}
		if l.s.EatIf('>') {
			return Arrow
		}
		return Eq
	case '+':
		if l.s.EatIf('+') {
			return PlusPlus
		}
		if l.s.EatIf('=') {
			return PlusEq
		}
		return Plus
	case '-':
		if l.s.EatIf('-') {
			return MinusMinus
		}
		if l.s.EatIf('=') {
			return MinusEq
		}
		return Minus
	case '*':
		if l.s.EatIf('*') {
			if l.s.EatIf('=') {
				return StarStarEq
			}
			return StarStar
		}
		if l.s.EatIf('=') {
			return StarEq
		}
		return Star
	case '/':
		if l.s.EatIf('=') {
			return SlashEq
		}
		return Slash
	case '%':
		if l.s.EatIf('=') {
			return PercentEq
		}
		return Percent
	case '<':
		if l.s.EatIf('<') {
			if l.s.EatIf('=') {
				return LtLtEq
			}
			return LtLt
		}
		if l.s.EatIf('=') {
			return LtEq
		}
		return Lt
	case '>':
		if l.s.EatIf('>') {
			if l.s.EatIf('>') {
				if l.s.EatIf('=') {
					return GtGtGtEq
				}
				return GtGtGt
			}
			if l.s.EatIf('=') {
				return GtGtEq
			}
			return GtGt
		}
		if l.s.EatIf('=') {
			return GtEq
		}
		return Gt
	case '&':
		if l.s.EatIf('&') {
			if l.s.EatIf('=') {
				return AmpAmpEq
			}
			return AmpAmp
		}
		if l.s.EatIf('=') {
			return AmpEq
		}
		return Amp
	case '|':
		if l.s.EatIf('|') {
			if l.s.EatIf('=') {
				return PipePipeEq
			}
			return PipePipe
		}
		if l.s.EatIf('=') {
			return PipeEq
		}
		return Pipe
	case '^':
		if l.s.EatIf('=') {
			return CaretEq
		}
		return Caret
	}
	return l.error(start, "unexpected character "+DescribeRune(c))
}

// RelexAsRegex re-lexes starting at the given byte offset (which must
// be the start of a token previously lexed as Slash or SlashEq) as a
// regular expression literal instead, the resolution other_examples'
// goja/otto parsers apply at the expression-parsing call site rather
// than inside the lexer, since only the parser's grammar position
// (expression-start vs. divisor) can disambiguate `/`.
func (l *Lexer) RelexAsRegex(start int) (SyntaxKind, *SyntaxNode) {
	l.s.Jump(start)
	l.s.Eat() // opening '/'
	inClass := false
	for {
		if l.s.Done() {
			diag := NewDiagnostic(Range{Start: start, End: l.s.Cursor()}, "unterminated regular expression literal")
			return Error, ErrorNode(diag, l.s.From(start))
		}
		c := l.s.Eat()
		switch {
		case c == '\\' && !l.s.Done():
			l.s.Eat()
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '/' && !inClass:
			l.s.EatWhile(func(r rune) bool { return IsIDContinue(r) && r != '$' })
			return RegexLit, Leaf(RegexLit, l.s.From(start))
		case IsLineTerminator(c):
			diag := NewDiagnostic(Range{Start: start, End: l.s.Cursor()}, "unterminated regular expression literal")
			return Error, ErrorNode(diag, l.s.From(start))
		}
	}
}
