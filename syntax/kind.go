package syntax

// SyntaxKind identifies both lexical tokens and syntax tree node kinds.
type SyntaxKind uint8

const (
	End SyntaxKind = iota
	Error

	// Trivia
	Whitespace
	LineTerminatorTrivia
	LineComment
	BlockComment
	Shebang

	// Literals
	Ident
	PrivateName
	NumberLit
	StringLit
	TemplateLit
	RegexLit
	NoSubstitutionTemplate
	TemplateHead
	TemplateMiddle
	TemplateTail
	TrueKw
	FalseKw
	NullKw

	// Punctuation
	LeftBrace
	RightBrace
	LeftParen
	RightParen
	LeftBracket
	RightBracket
	Semicolon
	Comma
	Dot
	DotDotDot
	Colon
	Question
	QuestionDot
	QuestionQuestion
	Arrow
	Bang

	// Operators
	Plus
	Minus
	Star
	StarStar
	Slash
	Percent
	PlusPlus
	MinusMinus
	LtLt
	GtGt
	GtGtGt
	Amp
	Pipe
	Caret
	Tilde
	AmpAmp
	PipePipe
	Lt
	Gt
	LtEq
	GtEq
	Eq
	EqEq
	EqEqEq
	BangEq
	BangEqEq
	PlusEq
	MinusEq
	StarEq
	StarStarEq
	SlashEq
	PercentEq
	LtLtEq
	GtGtEq
	GtGtGtEq
	AmpEq
	PipeEq
	CaretEq
	AmpAmpEq
	PipePipeEq
	QuestionQuestionEq
	At

	// Keywords
	BreakKw
	CaseKw
	CatchKw
	ClassKw
	ConstKw
	ContinueKw
	DebuggerKw
	DefaultKw
	DeleteKw
	DoKw
	ElseKw
	ExportKw
	ExtendsKw
	FinallyKw
	ForKw
	FunctionKw
	IfKw
	ImportKw
	InKw
	InstanceofKw
	NewKw
	ReturnKw
	SuperKw
	SwitchKw
	ThisKw
	ThrowKw
	TryKw
	TypeofKw
	VarKw
	VoidKw
	WhileKw
	WithKw
	YieldKw
	LetKw
	StaticKw
	AsyncKw
	AwaitKw
	OfKw
	AsKw
	FromKw
	GetKw
	SetKw

	// Tree nodes: program & statements
	Program
	BlockStmt
	EmptyStmt
	ExprStmt
	Condition
	IfStmt
	DoWhileStmt
	WhileStmt
	ForStmt
	ForInStmt
	ForOfStmt
	ContinueStmt
	BreakStmt
	ReturnStmt
	WithStmt
	LabelledStmt
	SwitchStmt
	CaseClause
	DefaultClause
	ThrowStmt
	TryStmt
	CatchClause
	Finalizer
	DebuggerStmt
	VarDeclStmt
	VarDeclarator

	// Declarations
	FunctionDecl
	ClassDecl
	ClassBody
	MethodDef
	FieldDef
	ParamList
	Param
	RestParam

	// Patterns
	ArrayPattern
	ObjectPattern
	ObjectPatternProp
	AssignPattern
	RestElement

	// Modules
	ImportDecl
	ImportDefaultSpecifier
	ImportNamespaceSpecifier
	ImportSpecifier
	ExportNamedDecl
	ExportDefaultDecl
	ExportAllDecl
	ExportSpecifier

	// Expressions (minimal external-hook surface)
	Expr
	SequenceExpr
	AssignExpr
	ConditionalExpr
	BinaryExpr
	LogicalExpr
	UnaryExpr
	UpdateExpr
	CallExpr
	NewExpr
	MemberExpr
	ArrayExpr
	ObjectExpr
	Property
	SpreadElement
	ArrowFunctionExpr
	FunctionExpr
	ClassExpr
	TemplateExpr
	TaggedTemplateExpr
	ParenthesizedExpr
	YieldExpr
	AwaitExpr
)

// IsTrivia reports whether this kind is skipped between significant
// tokens but retained verbatim in the tree for losslessness.
func (k SyntaxKind) IsTrivia() bool {
	switch k {
	case Whitespace, LineTerminatorTrivia, LineComment, BlockComment, Shebang:
		return true
	}
	return false
}

// IsKeyword reports whether this kind is a reserved or contextual keyword.
func (k SyntaxKind) IsKeyword() bool {
	return k >= BreakKw && k <= SetKw
}

// IsError reports whether this kind marks a recovered syntax error.
func (k SyntaxKind) IsError() bool {
	return k == Error
}

// IsAssignOp reports whether this kind is an assignment operator,
// including compound assignment operators.
func (k SyntaxKind) IsAssignOp() bool {
	switch k {
	case Eq, PlusEq, MinusEq, StarEq, StarStarEq, SlashEq, PercentEq,
		LtLtEq, GtGtEq, GtGtGtEq, AmpEq, PipeEq, CaretEq,
		AmpAmpEq, PipePipeEq, QuestionQuestionEq:
		return true
	}
	return false
}

// Name returns a human-readable name for diagnostics.
func (k SyntaxKind) Name() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown token"
}

// String implements fmt.Stringer.
func (k SyntaxKind) String() string {
	return k.Name()
}

var kindNames = map[SyntaxKind]string{
	End:        "end of input",
	Error:      "syntax error",
	Whitespace: "whitespace",

	LineTerminatorTrivia: "line terminator",
	LineComment:          "line comment",
	BlockComment:         "block comment",
	Shebang:              "shebang line",

	Ident:                  "identifier",
	PrivateName:            "private name",
	NumberLit:              "number",
	StringLit:              "string",
	TemplateLit:            "template literal",
	RegexLit:               "regular expression",
	NoSubstitutionTemplate: "template literal",
	TemplateHead:           "template head",
	TemplateMiddle:         "template middle",
	TemplateTail:           "template tail",
	TrueKw:                 "`true`",
	FalseKw:                "`false`",
	NullKw:                 "`null`",

	LeftBrace:        "`{`",
	RightBrace:       "`}`",
	LeftParen:        "`(`",
	RightParen:       "`)`",
	LeftBracket:      "`[`",
	RightBracket:     "`]`",
	Semicolon:        "`;`",
	Comma:            "`,`",
	Dot:              "`.`",
	DotDotDot:        "`...`",
	Colon:            "`:`",
	Question:         "`?`",
	QuestionDot:      "`?.`",
	QuestionQuestion: "`??`",
	Arrow:            "`=>`",
	Bang:             "`!`",

	Eq: "`=`",

	BreakKw:      "keyword `break`",
	CaseKw:       "keyword `case`",
	CatchKw:      "keyword `catch`",
	ClassKw:      "keyword `class`",
	ConstKw:      "keyword `const`",
	ContinueKw:   "keyword `continue`",
	DebuggerKw:   "keyword `debugger`",
	DefaultKw:    "keyword `default`",
	DeleteKw:     "keyword `delete`",
	DoKw:         "keyword `do`",
	ElseKw:       "keyword `else`",
	ExportKw:     "keyword `export`",
	ExtendsKw:    "keyword `extends`",
	FinallyKw:    "keyword `finally`",
	ForKw:        "keyword `for`",
	FunctionKw:   "keyword `function`",
	IfKw:         "keyword `if`",
	ImportKw:     "keyword `import`",
	InKw:         "keyword `in`",
	InstanceofKw: "keyword `instanceof`",
	NewKw:        "keyword `new`",
	ReturnKw:     "keyword `return`",
	SuperKw:      "keyword `super`",
	SwitchKw:     "keyword `switch`",
	ThisKw:       "keyword `this`",
	ThrowKw:      "keyword `throw`",
	TryKw:        "keyword `try`",
	TypeofKw:     "keyword `typeof`",
	VarKw:        "keyword `var`",
	VoidKw:       "keyword `void`",
	WhileKw:      "keyword `while`",
	WithKw:       "keyword `with`",
	YieldKw:      "keyword `yield`",
	LetKw:        "keyword `let`",
	StaticKw:     "keyword `static`",
	AsyncKw:      "keyword `async`",
	AwaitKw:      "keyword `await`",
	OfKw:         "keyword `of`",
	AsKw:         "keyword `as`",
	FromKw:       "keyword `from`",
	GetKw:        "keyword `get`",
	SetKw:        "keyword `set`",

	Program:      "program",
	BlockStmt:    "block statement",
	EmptyStmt:    "empty statement",
	ExprStmt:     "expression statement",
	Condition:    "condition",
	IfStmt:       "if statement",
	DoWhileStmt:  "do-while statement",
	WhileStmt:    "while statement",
	ForStmt:      "for statement",
	ForInStmt:    "for-in statement",
	ForOfStmt:    "for-of statement",
	ContinueStmt: "continue statement",
	BreakStmt:    "break statement",
	ReturnStmt:   "return statement",
	WithStmt:     "with statement",
	LabelledStmt: "labelled statement",
	SwitchStmt:   "switch statement",
	CaseClause:   "case clause",
	DefaultClause: "default clause",
	ThrowStmt:    "throw statement",
	TryStmt:      "try statement",
	CatchClause:  "catch clause",
	Finalizer:    "finalizer",
	DebuggerStmt: "debugger statement",
	VarDeclStmt:  "variable declaration",
	VarDeclarator: "variable declarator",

	FunctionDecl: "function declaration",
	ClassDecl:    "class declaration",
	ClassBody:    "class body",
	MethodDef:    "method definition",
	FieldDef:     "field definition",
	ParamList:    "parameter list",
	Param:        "parameter",
	RestParam:    "rest parameter",

	ArrayPattern:      "array pattern",
	ObjectPattern:     "object pattern",
	ObjectPatternProp: "object pattern property",
	AssignPattern:     "default value pattern",
	RestElement:       "rest element",

	ImportDecl:               "import declaration",
	ImportDefaultSpecifier:   "default import",
	ImportNamespaceSpecifier: "namespace import",
	ImportSpecifier:          "named import",
	ExportNamedDecl:          "named export",
	ExportDefaultDecl:        "default export",
	ExportAllDecl:            "export-all declaration",
	ExportSpecifier:          "export specifier",

	Expr:               "expression",
	SequenceExpr:       "sequence expression",
	AssignExpr:         "assignment expression",
	ConditionalExpr:    "conditional expression",
	BinaryExpr:         "binary expression",
	LogicalExpr:        "logical expression",
	UnaryExpr:          "unary expression",
	UpdateExpr:         "update expression",
	CallExpr:           "call expression",
	NewExpr:            "new expression",
	MemberExpr:         "member expression",
	ArrayExpr:          "array literal",
	ObjectExpr:         "object literal",
	Property:           "property",
	SpreadElement:      "spread element",
	ArrowFunctionExpr:  "arrow function",
	FunctionExpr:       "function expression",
	ClassExpr:          "class expression",
	TemplateExpr:       "template literal",
	TaggedTemplateExpr: "tagged template",
	ParenthesizedExpr:  "parenthesized expression",
	YieldExpr:          "yield expression",
	AwaitExpr:          "await expression",
}

// Keywords maps the spelling of a reserved word to its kind.
// Contextual keywords (let, static, async, await, of, as, from, get, set)
// lex as Ident and are reinterpreted by the parser where the grammar
// requires it, mirroring how the other_examples goja/otto/eslint parsers
// treat them.
var Keywords = map[string]SyntaxKind{
	"break":      BreakKw,
	"case":       CaseKw,
	"catch":      CatchKw,
	"class":      ClassKw,
	"const":      ConstKw,
	"continue":   ContinueKw,
	"debugger":   DebuggerKw,
	"default":    DefaultKw,
	"delete":     DeleteKw,
	"do":         DoKw,
	"else":       ElseKw,
	"export":     ExportKw,
	"extends":    ExtendsKw,
	"finally":    FinallyKw,
	"for":        ForKw,
	"function":   FunctionKw,
	"if":         IfKw,
	"import":     ImportKw,
	"in":         InKw,
	"instanceof": InstanceofKw,
	"new":        NewKw,
	"return":     ReturnKw,
	"super":      SuperKw,
	"switch":     SwitchKw,
	"this":       ThisKw,
	"throw":      ThrowKw,
	"try":        TryKw,
	"typeof":     TypeofKw,
	"var":        VarKw,
	"void":       VoidKw,
	"while":      WhileKw,
	"with":       WithKw,
	"yield":      YieldKw,
	"true":       TrueKw,
	"false":      FalseKw,
	"null":       NullKw,
}

// ContextualKeywords lex as Ident; the parser recognizes these spellings
// by text where the grammar position demands it.
var ContextualKeywords = map[string]SyntaxKind{
	"let":    LetKw,
	"static": StaticKw,
	"async":  AsyncKw,
	"await":  AwaitKw,
	"of":     OfKw,
	"as":     AsKw,
	"from":   FromKw,
	"get":    GetKw,
	"set":    SetKw,
}
