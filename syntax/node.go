package syntax

import (
	"fmt"
	"strings"
)

// SyntaxNode is a node in the lossless concrete syntax tree. It comes in
// three flavors: leaf nodes (tokens, including trivia), inner nodes
// (statements/expressions/etc. with children), and error nodes (a
// malformed span of text with an attached Diagnostic).
//
// The tree is "concrete" because every byte of the source text is
// accounted for by some leaf, including whitespace and comments — the
// defining property tested by CheckLosslessness in parser_test.go.
//
// Grounded on boergens-gotypst/syntax/node.go, with the incremental-
// reparse numbering machinery (Numberize/ReplaceChildren/UpdateParent)
// and LinkedNode navigation dropped: this parser does not support
// incremental reparsing (see DESIGN.md), so there is no consumer for
// edit-stable span numbers or cursor-aware tree navigation.
type SyntaxNode struct {
	data nodeData
}

type nodeData interface {
	kind() SyntaxKind
	len() int
	span() Range
	text() string
	children() []*SyntaxNode
	erroneous() bool
	descendants() int
	spanlessEq(other nodeData) bool
	clone() nodeData
}

type leafNode struct {
	nodeKind SyntaxKind
	nodeText string
	nodeSpan Range
}

func (n *leafNode) kind() SyntaxKind        { return n.nodeKind }
func (n *leafNode) len() int                { return len(n.nodeText) }
func (n *leafNode) span() Range             { return n.nodeSpan }
func (n *leafNode) text() string            { return n.nodeText }
func (n *leafNode) children() []*SyntaxNode { return nil }
func (n *leafNode) erroneous() bool         { return false }
func (n *leafNode) descendants() int        { return 1 }
func (n *leafNode) spanlessEq(other nodeData) bool {
	if o, ok := other.(*leafNode); ok {
		return n.nodeKind == o.nodeKind && n.nodeText == o.nodeText
	}
	return false
}
func (n *leafNode) clone() nodeData {
	return &leafNode{nodeKind: n.nodeKind, nodeText: n.nodeText, nodeSpan: n.nodeSpan}
}

type innerNode struct {
	nodeKind        SyntaxKind
	nodeLen         int
	nodeSpan        Range
	nodeDescendants int
	nodeErroneous   bool
	nodeChildren    []*SyntaxNode
}

func (n *innerNode) kind() SyntaxKind        { return n.nodeKind }
func (n *innerNode) len() int                { return n.nodeLen }
func (n *innerNode) span() Range             { return n.nodeSpan }
func (n *innerNode) text() string            { return "" }
func (n *innerNode) children() []*SyntaxNode { return n.nodeChildren }
func (n *innerNode) erroneous() bool         { return n.nodeErroneous }
func (n *innerNode) descendants() int        { return n.nodeDescendants }
func (n *innerNode) spanlessEq(other nodeData) bool {
	o, ok := other.(*innerNode)
	if !ok || n.nodeKind != o.nodeKind || n.nodeLen != o.nodeLen ||
		n.nodeDescendants != o.nodeDescendants || n.nodeErroneous != o.nodeErroneous ||
		len(n.nodeChildren) != len(o.nodeChildren) {
		return false
	}
	for i, child := range n.nodeChildren {
		if !child.SpanlessEq(o.nodeChildren[i]) {
			return false
		}
	}
	return true
}
func (n *innerNode) clone() nodeData {
	children := make([]*SyntaxNode, len(n.nodeChildren))
	for i, c := range n.nodeChildren {
		children[i] = c.Clone()
	}
	return &innerNode{
		nodeKind:        n.nodeKind,
		nodeLen:         n.nodeLen,
		nodeSpan:        n.nodeSpan,
		nodeDescendants: n.nodeDescendants,
		nodeErroneous:   n.nodeErroneous,
		nodeChildren:    children,
	}
}

type errorNode struct {
	nodeText string
	diag     *Diagnostic
}

func (n *errorNode) kind() SyntaxKind        { return Error }
func (n *errorNode) len() int                { return len(n.nodeText) }
func (n *errorNode) span() Range             { return n.diag.Primary }
func (n *errorNode) text() string            { return n.nodeText }
func (n *errorNode) children() []*SyntaxNode { return nil }
func (n *errorNode) erroneous() bool         { return true }
func (n *errorNode) descendants() int        { return 1 }
func (n *errorNode) spanlessEq(other nodeData) bool {
	if o, ok := other.(*errorNode); ok {
		return n.nodeText == o.nodeText && n.diag.spanlessEq(o.diag)
	}
	return false
}
func (n *errorNode) clone() nodeData {
	return &errorNode{nodeText: n.nodeText, diag: n.diag.Clone()}
}

// --- constructors ---

// Leaf creates a new leaf (token) node. Panics for the Error kind; use
// ErrorNode instead.
func Leaf(kind SyntaxKind, text string) *SyntaxNode {
	if kind == Error {
		panic("syntax: cannot create leaf node with Error kind; use ErrorNode instead")
	}
	return &SyntaxNode{data: &leafNode{nodeKind: kind, nodeText: text, nodeSpan: Detached()}}
}

// Inner creates an inner node of the given kind covering the given
// children; length, descendant count, and erroneous-ness are aggregated
// from the children automatically.
func Inner(kind SyntaxKind, children []*SyntaxNode) *SyntaxNode {
	if kind == Error {
		panic("syntax: cannot create inner node with Error kind; use ErrorNode instead")
	}
	var totalLen int
	descendants := 1
	erroneous := false
	for _, child := range children {
		totalLen += child.Len()
		descendants += child.Descendants()
		erroneous = erroneous || child.Erroneous()
	}
	return &SyntaxNode{data: &innerNode{
		nodeKind:        kind,
		nodeLen:         totalLen,
		nodeSpan:        Detached(),
		nodeDescendants: descendants,
		nodeErroneous:   erroneous,
		nodeChildren:    children,
	}}
}

// ErrorNode creates a new error node wrapping the given malformed text.
func ErrorNode(diag *Diagnostic, text string) *SyntaxNode {
	return &SyntaxNode{data: &errorNode{nodeText: text, diag: diag}}
}

// --- accessors ---

// Kind returns the node's kind.
func (n *SyntaxNode) Kind() SyntaxKind { return n.data.kind() }

// IsEmpty reports whether the node covers zero bytes of source text.
func (n *SyntaxNode) IsEmpty() bool { return n.Len() == 0 }

// Len returns the byte length of the node's source span.
func (n *SyntaxNode) Len() int { return n.data.len() }

// Span returns the node's source range.
func (n *SyntaxNode) Span() Range { return n.data.span() }

// Text returns the node's own text if it is a leaf or error node, or the
// empty string for inner nodes (use IntoText for the full subtree text).
func (n *SyntaxNode) Text() string { return n.data.text() }

// IntoText recursively reconstructs the exact source text this node and
// all its descendants cover, the property CheckLosslessness depends on.
func (n *SyntaxNode) IntoText() string {
	if inner, ok := n.data.(*innerNode); ok {
		var sb strings.Builder
		for _, child := range inner.nodeChildren {
			sb.WriteString(child.IntoText())
		}
		return sb.String()
	}
	return n.data.text()
}

// Children returns the node's direct children, or nil for leaf/error nodes.
func (n *SyntaxNode) Children() []*SyntaxNode { return n.data.children() }

// CastFirst returns the first direct child with the given kind, or nil.
func (n *SyntaxNode) CastFirst(kind SyntaxKind) *SyntaxNode {
	for _, child := range n.Children() {
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// Erroneous reports whether this node or any descendant is an error node.
func (n *SyntaxNode) Erroneous() bool { return n.data.erroneous() }

// Descendants returns the subtree size, including this node.
func (n *SyntaxNode) Descendants() int { return n.data.descendants() }

// Errors collects every Diagnostic contained in this node's subtree.
func (n *SyntaxNode) Errors() []*Diagnostic {
	if !n.Erroneous() {
		return nil
	}
	if err, ok := n.data.(*errorNode); ok {
		return []*Diagnostic{err.diag}
	}
	var out []*Diagnostic
	for _, child := range n.Children() {
		if child.Erroneous() {
			out = append(out, child.Errors()...)
		}
	}
	return out
}

// Hint appends a help note if this is an error node; a no-op otherwise.
func (n *SyntaxNode) Hint(hint string) {
	if err, ok := n.data.(*errorNode); ok {
		err.diag.AddHint(hint)
	}
}

// SpanlessEq reports structural equality ignoring source spans, used by
// tests that compare tree shape without caring about exact offsets.
func (n *SyntaxNode) SpanlessEq(other *SyntaxNode) bool {
	return n.data.spanlessEq(other.data)
}

// Clone returns a deep copy of the node and its subtree.
func (n *SyntaxNode) Clone() *SyntaxNode {
	return &SyntaxNode{data: n.data.clone()}
}

// IsLeaf reports whether this is a token leaf (not inner, not error).
func (n *SyntaxNode) IsLeaf() bool {
	_, ok := n.data.(*leafNode)
	return ok
}

// ConvertToKind retags a node to a different non-Error kind in place,
// used when a speculative parse turns out to need reclassification
// (e.g. a bare Ident reclassified to a LabelledStmt target).
func (n *SyntaxNode) ConvertToKind(kind SyntaxKind) {
	if kind == Error {
		panic("syntax: use ConvertToError to convert to the Error kind")
	}
	switch d := n.data.(type) {
	case *leafNode:
		d.nodeKind = kind
	case *innerNode:
		d.nodeKind = kind
	case *errorNode:
		panic("syntax: cannot convert an error node to another kind")
	}
}

// ConvertToError turns the node into an error node in place (unless it
// already is one), preserving its exact source text.
func (n *SyntaxNode) ConvertToError(message string) {
	if n.Kind() != Error {
		text := n.IntoText()
		n.data = &errorNode{nodeText: text, diag: NewDiagnostic(n.Span(), message)}
	}
}

// Expected converts the node to an error stating that `expected` was
// expected in its place, adding a hint when the found token is a
// keyword masquerading as an identifier/pattern.
func (n *SyntaxNode) Expected(expected string) {
	kind := n.Kind()
	n.ConvertToError(fmt.Sprintf("expected %s, found %s", expected, kind.Name()))
	if kind.IsKeyword() && (expected == "identifier" || expected == "binding name") {
		text := n.Text()
		n.Hint(fmt.Sprintf("%s is a reserved word and cannot be used as an identifier", text))
	}
}

// Unexpected converts the node to an error stating it was unexpected.
func (n *SyntaxNode) Unexpected() {
	n.ConvertToError(fmt.Sprintf("unexpected %s", n.Kind().Name()))
}

// SetSpan sets the source span directly on a leaf or error node.
func (n *SyntaxNode) SetSpan(span Range) {
	switch d := n.data.(type) {
	case *leafNode:
		d.nodeSpan = span
	case *errorNode:
		d.diag.Primary = span
	}
}

// String implements fmt.Stringer for debugging and test failure output.
func (n *SyntaxNode) String() string {
	switch d := n.data.(type) {
	case *leafNode:
		return fmt.Sprintf("%s: %q", d.nodeKind, d.nodeText)
	case *innerNode:
		return fmt.Sprintf("%s: %d", d.nodeKind, d.nodeLen)
	case *errorNode:
		return fmt.Sprintf("Error: %q (%s)", d.nodeText, d.diag.Message)
	}
	return "unknown"
}
