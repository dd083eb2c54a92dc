package syntax

import "testing"

func TestSyntaxSetAddContains(t *testing.T) {
	s := NewSyntaxSet()
	if !s.IsEmpty() {
		t.Fatal("new set should be empty")
	}
	s = s.Add(IfKw)
	if !s.Contains(IfKw) {
		t.Error("set should contain IfKw after Add")
	}
	if s.Contains(WhileKw) {
		t.Error("set should not contain WhileKw")
	}
	if s.IsEmpty() {
		t.Error("set should not report empty after Add")
	}
}

func TestSyntaxSetRemove(t *testing.T) {
	s := SyntaxSetOf(IfKw, WhileKw)
	s = s.Remove(IfKw)
	if s.Contains(IfKw) {
		t.Error("set should not contain IfKw after Remove")
	}
	if !s.Contains(WhileKw) {
		t.Error("set should still contain WhileKw")
	}
}

func TestSyntaxSetUnion(t *testing.T) {
	a := SyntaxSetOf(IfKw)
	b := SyntaxSetOf(WhileKw)
	u := a.Union(b)
	if !u.Contains(IfKw) || !u.Contains(WhileKw) {
		t.Error("union should contain members of both sets")
	}
}

// SyntaxSet covers the full SyntaxKind byte range (0-255), not just the
// 128 bits the teacher's two-word bitset addressed, since ecmacst packs
// both token kinds and node kinds into one enum.
func TestSyntaxSetCoversHighKinds(t *testing.T) {
	s := SyntaxSetOf(AwaitExpr)
	if !s.Contains(AwaitExpr) {
		t.Error("set should contain a kind beyond the first 128 values")
	}
	if s.Contains(YieldExpr) {
		t.Error("set should not contain an unrelated high-valued kind")
	}
}

func TestStmtStartSetContainsStatementStarters(t *testing.T) {
	for _, k := range []SyntaxKind{LeftBrace, IfKw, ForKw, FunctionKw, Ident, Semicolon} {
		if !StmtStartSet.Contains(k) {
			t.Errorf("StmtStartSet should contain %s", k.Name())
		}
	}
	if StmtStartSet.Contains(RightBrace) {
		t.Error("StmtStartSet should not contain RightBrace")
	}
}

func TestStmtRecoverySetAddsTerminators(t *testing.T) {
	if !StmtRecoverySet.Contains(RightBrace) {
		t.Error("StmtRecoverySet should contain RightBrace")
	}
	if !StmtRecoverySet.Contains(End) {
		t.Error("StmtRecoverySet should contain End")
	}
	if !StmtRecoverySet.Contains(IfKw) {
		t.Error("StmtRecoverySet should still contain every StmtStartSet member")
	}
}

func TestAssignOpSetMembership(t *testing.T) {
	for _, k := range []SyntaxKind{Eq, PlusEq, StarStarEq, QuestionQuestionEq} {
		if !AssignOpSet.Contains(k) {
			t.Errorf("AssignOpSet should contain %s", k.Name())
		}
	}
	if AssignOpSet.Contains(EqEq) {
		t.Error("AssignOpSet should not contain the equality operator EqEq")
	}
}

func TestVarDeclKeywordSetMembership(t *testing.T) {
	for _, k := range []SyntaxKind{VarKw, LetKw, ConstKw} {
		if !VarDeclKeywordSet.Contains(k) {
			t.Errorf("VarDeclKeywordSet should contain %s", k.Name())
		}
	}
	if VarDeclKeywordSet.Contains(FunctionKw) {
		t.Error("VarDeclKeywordSet should not contain FunctionKw")
	}
}
