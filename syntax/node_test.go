package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// nodeShape is a projection of a SyntaxNode tree into a plain comparable
// value, since SyntaxNode itself carries parent back-pointers that would
// make a cmp.Diff loop or report noise over implementation details.
type nodeShape struct {
	Kind     string
	Text     string
	Children []nodeShape
}

func shapeOf(n *SyntaxNode) nodeShape {
	shape := nodeShape{Kind: n.Kind().Name()}
	if n.IsLeaf() {
		shape.Text = n.Text()
		return shape
	}
	for _, c := range n.Children() {
		shape.Children = append(shape.Children, shapeOf(c))
	}
	return shape
}

func TestLeafBasics(t *testing.T) {
	n := Leaf(Ident, "foo")
	if n.Kind() != Ident {
		t.Errorf("Kind() = %s, want Ident", n.Kind())
	}
	if n.Text() != "foo" {
		t.Errorf("Text() = %q, want %q", n.Text(), "foo")
	}
	if n.Len() != 3 {
		t.Errorf("Len() = %d, want 3", n.Len())
	}
	if !n.IsLeaf() {
		t.Error("IsLeaf() = false, want true")
	}
	if n.Erroneous() {
		t.Error("Erroneous() = true, want false")
	}
	if n.Descendants() != 1 {
		t.Errorf("Descendants() = %d, want 1", n.Descendants())
	}
}

func TestLeafPanicsOnErrorKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Leaf(Error, ...) should panic")
		}
	}()
	Leaf(Error, "x")
}

func TestInnerAggregatesChildren(t *testing.T) {
	a := Leaf(Ident, "foo")
	b := Leaf(Whitespace, " ")
	c := Leaf(Ident, "bar")
	inner := Inner(BinaryExpr, []*SyntaxNode{a, b, c})

	if inner.Kind() != BinaryExpr {
		t.Errorf("Kind() = %s, want BinaryExpr", inner.Kind())
	}
	if inner.Len() != 7 {
		t.Errorf("Len() = %d, want 7", inner.Len())
	}
	if inner.Descendants() != 4 {
		t.Errorf("Descendants() = %d, want 4", inner.Descendants())
	}
	if inner.IntoText() != "foo bar" {
		t.Errorf("IntoText() = %q, want %q", inner.IntoText(), "foo bar")
	}
	if inner.Erroneous() {
		t.Error("Erroneous() = true, want false")
	}
}

func TestInnerPropagatesErroneous(t *testing.T) {
	diag := NewDiagnostic(Range{Start: 0, End: 1}, "bad token")
	errNode := ErrorNode(diag, "@")
	inner := Inner(ExprStmt, []*SyntaxNode{errNode})
	if !inner.Erroneous() {
		t.Error("Erroneous() = false, want true when a child is an error node")
	}
	if len(inner.Errors()) != 1 {
		t.Errorf("Errors() returned %d diagnostics, want 1", len(inner.Errors()))
	}
}

func TestCastFirst(t *testing.T) {
	a := Leaf(IfKw, "if")
	b := Leaf(LeftParen, "(")
	inner := Inner(IfStmt, []*SyntaxNode{a, b})
	if got := inner.CastFirst(LeftParen); got != b {
		t.Error("CastFirst(LeftParen) did not return the matching child")
	}
	if got := inner.CastFirst(RightParen); got != nil {
		t.Error("CastFirst should return nil for an absent kind")
	}
}

func TestConvertToKind(t *testing.T) {
	n := Leaf(Ident, "let")
	n.ConvertToKind(LetKw)
	if n.Kind() != LetKw {
		t.Errorf("Kind() = %s, want LetKw", n.Kind())
	}
}

func TestConvertToError(t *testing.T) {
	n := Leaf(Ident, "123abc")
	n.SetSpan(Range{Start: 5, End: 11})
	n.ConvertToError("malformed identifier")
	if n.Kind() != Error {
		t.Errorf("Kind() = %s, want Error", n.Kind())
	}
	if !n.Erroneous() {
		t.Error("Erroneous() = false, want true")
	}
	if n.Text() != "123abc" {
		t.Errorf("Text() = %q, want %q", n.Text(), "123abc")
	}
	if n.Span() != (Range{Start: 5, End: 11}) {
		t.Errorf("Span() = %v, want {5 11}", n.Span())
	}
}

func TestExpectedHintsOnReservedWord(t *testing.T) {
	n := Leaf(IfKw, "if")
	n.Expected("identifier")
	if n.Kind() != Error {
		t.Fatal("Expected() should convert the node to an error")
	}
	errs := n.Errors()
	if len(errs) != 1 {
		t.Fatalf("Errors() returned %d diagnostics, want 1", len(errs))
	}
	if len(errs[0].Help) == 0 {
		t.Error("Expected() should attach a reserved-word hint for a keyword")
	}
}

func TestUnexpected(t *testing.T) {
	n := Leaf(At, "@")
	n.Unexpected()
	if n.Kind() != Error {
		t.Error("Unexpected() should convert the node to an error")
	}
}

func TestSpanlessEq(t *testing.T) {
	a := Leaf(Ident, "x")
	a.SetSpan(Range{Start: 0, End: 1})
	b := Leaf(Ident, "x")
	b.SetSpan(Range{Start: 10, End: 11})
	if !a.SpanlessEq(b) {
		t.Error("SpanlessEq should ignore differing spans for otherwise-identical leaves")
	}
	c := Leaf(Ident, "y")
	if a.SpanlessEq(c) {
		t.Error("SpanlessEq should distinguish differing text")
	}
}

func TestClone(t *testing.T) {
	a := Leaf(Ident, "x")
	inner := Inner(ExprStmt, []*SyntaxNode{a})
	clone := inner.Clone()
	if !inner.SpanlessEq(clone) {
		t.Error("Clone() should produce a structurally identical tree")
	}
	clone.Children()[0].ConvertToKind(ThisKw)
	if inner.Children()[0].Kind() == ThisKw {
		t.Error("Clone() should be a deep copy, not share child nodes")
	}
}

func TestParseIsDeterministic(t *testing.T) {
	src := "function f(a, b = 1, ...rest) { return a + b * rest.length; }\n"
	root1, _ := Parse(src)
	root2, _ := Parse(src)
	if diff := cmp.Diff(shapeOf(root1), shapeOf(root2)); diff != "" {
		t.Errorf("parsing the same source twice produced different trees (-first +second):\n%s", diff)
	}
}

func TestCloneProducesStructurallyIdenticalShape(t *testing.T) {
	root, _ := Parse("const {a, b = 1} = x;\n")
	clone := root.Clone()
	if diff := cmp.Diff(shapeOf(root), shapeOf(clone)); diff != "" {
		t.Errorf("Clone() changed tree shape (-original +clone):\n%s", diff)
	}
}

// containsKind reports whether any node in shape's subtree has the
// given kind name.
func containsKind(shape nodeShape, kind string) bool {
	if shape.Kind == kind {
		return true
	}
	for _, c := range shape.Children {
		if containsKind(c, kind) {
			return true
		}
	}
	return false
}

func TestIfStatementWrapsConditionNode(t *testing.T) {
	root, _ := Parse("if (a) b; else c;\n")
	shape := shapeOf(root)
	if !containsKind(shape, IfStmt.Name()) {
		t.Fatal("expected an if statement node")
	}
	if !containsKind(shape, Condition.Name()) {
		t.Error("if statement's parenthesized head should be wrapped as a Condition node")
	}
}

func TestSwitchClausesAreCaseAndDefaultClauses(t *testing.T) {
	root, _ := Parse("switch (x) { case 1: a(); default: b(); }\n")
	shape := shapeOf(root)
	if !containsKind(shape, CaseClause.Name()) {
		t.Error("expected a CaseClause node for the `case 1:` clause")
	}
	if !containsKind(shape, DefaultClause.Name()) {
		t.Error("expected a DefaultClause node for the `default:` clause")
	}
}

func TestTryFinallyWrapsFinalizerNode(t *testing.T) {
	root, _ := Parse("try { f(); } finally { g(); }\n")
	shape := shapeOf(root)
	if !containsKind(shape, Finalizer.Name()) {
		t.Error("expected the `finally` clause to be wrapped as a Finalizer node")
	}
}

func TestSetSpanOnLeaf(t *testing.T) {
	n := Leaf(NumberLit, "42")
	n.SetSpan(Range{Start: 3, End: 5})
	if n.Span() != (Range{Start: 3, End: 5}) {
		t.Errorf("Span() = %v, want {3 5}", n.Span())
	}
}
