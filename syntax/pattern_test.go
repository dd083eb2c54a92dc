package syntax

import "testing"

func parseExprStmtRoot(t *testing.T, src string) (*SyntaxNode, []*Diagnostic) {
	t.Helper()
	root, diags := Parse(src)
	checkLosslessness(t, src, root)
	return root, diags
}

func TestBindingPatternPlainIdentifier(t *testing.T) {
	_, diags := parseExprStmtRoot(t, "let x = 1;\n")
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestBindingPatternArrayWithElisionRestAndDefault(t *testing.T) {
	_, diags := parseExprStmtRoot(t, "let [a, , b = 1, ...rest] = arr;\n")
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestBindingPatternObjectWithShorthandRenameDefaultAndRest(t *testing.T) {
	_, diags := parseExprStmtRoot(t, "let {a, b: c, d = 1, ...rest} = obj;\n")
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestBindingPatternNestedDestructuring(t *testing.T) {
	_, diags := parseExprStmtRoot(t, "let {a: [b, {c}]} = obj;\n")
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestBindingPatternComputedKeyIsNotCheckedForDuplicates(t *testing.T) {
	_, diags := parseExprStmtRoot(t, "let {[a]: x, [b]: y} = obj;\n")
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestBindingPatternDuplicateNameInArrayPatternIsError(t *testing.T) {
	_, diags := Parse("let [a, a] = arr;\n")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for a duplicate binding name")
	}
}

func TestBindingPatternDuplicateNameInObjectPatternIsError(t *testing.T) {
	_, diags := Parse("let {a, a} = obj;\n")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for a duplicate binding name")
	}
}

func TestBindingPatternDuplicateNameInObjectRestIsError(t *testing.T) {
	_, diags := Parse("let {a, ...a} = obj;\n")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for a duplicate binding name")
	}
}

// TestBindingPatternNestedShadowIsFine covers the decided Open Question:
// the same name appearing in two different destructuring nesting levels
// is not treated as a duplicate, since V8 accepts `let [a, {a}] = x`.
func TestBindingPatternNestedShadowIsFine(t *testing.T) {
	_, diags := Parse("let [a, {a}] = x;\n")
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestBindingPatternInFunctionParams(t *testing.T) {
	_, diags := parseExprStmtRoot(t, "function f({a, b: [c, d]}, ...rest) {}\n")
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestBindingPatternInCatchClause(t *testing.T) {
	_, diags := parseExprStmtRoot(t, "try { f(); } catch ({message}) { g(message); }\n")
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestBindingIdentifierReservedWordIsError(t *testing.T) {
	_, diags := Parse("let class = 1;\n")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic: a reserved word cannot be a binding name")
	}
}
