package syntax

import "testing"

func TestNewLineIndexCountsLines(t *testing.T) {
	li := NewLineIndex("a\nb\nc")
	if li.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3", li.LineCount())
	}
}

func TestNewLineIndexEmptyTextHasOneLine(t *testing.T) {
	li := NewLineIndex("")
	if li.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", li.LineCount())
	}
}

func TestLineIndexPositionBasic(t *testing.T) {
	text := "abc\ndef\nghi"
	li := NewLineIndex(text)

	cases := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{3, 1, 4},
		{4, 2, 1},
		{7, 2, 4},
		{8, 3, 1},
	}
	for _, c := range cases {
		line, col := li.Position(c.offset)
		if line != c.line || col != c.col {
			t.Errorf("Position(%d) = (%d,%d), want (%d,%d)", c.offset, line, col, c.line, c.col)
		}
	}
}

func TestLineIndexPositionClampsOutOfRangeOffset(t *testing.T) {
	text := "abc"
	li := NewLineIndex(text)
	line, col := li.Position(1000)
	if line != 1 || col != 4 {
		t.Errorf("Position(1000) = (%d,%d), want (1,4) clamped to end of text", line, col)
	}
}

func TestLineIndexHandlesCRLF(t *testing.T) {
	li := NewLineIndex("a\r\nb\r\nc")
	if li.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3 (CRLF counted once per line, not twice)", li.LineCount())
	}
	line, col := li.Position(4) // 'b'
	if line != 2 || col != 1 {
		t.Errorf("Position(4) = (%d,%d), want (2,1)", line, col)
	}
}

func TestLineIndexHandlesUnicodeLineSeparators(t *testing.T) {
	li := NewLineIndex("a b c")
	if li.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3", li.LineCount())
	}
}

func TestLineIndexColumnCountsGraphemeClustersNotBytes(t *testing.T) {
	// "e" + combining acute accent is two codepoints, one grapheme
	// cluster; the column after it should be 2, not 3.
	text := "éx"
	li := NewLineIndex(text)
	_, col := li.Position(len("é"))
	if col != 2 {
		t.Errorf("column after one combining grapheme cluster = %d, want 2", col)
	}
}

func TestLineIndexLineText(t *testing.T) {
	li := NewLineIndex("first\nsecond\nthird")
	if got := li.LineText(2); got != "second" {
		t.Errorf("LineText(2) = %q, want %q", got, "second")
	}
	if got := li.LineText(1); got != "first" {
		t.Errorf("LineText(1) = %q, want %q", got, "first")
	}
	if got := li.LineText(3); got != "third" {
		t.Errorf("LineText(3) = %q, want %q", got, "third")
	}
}

func TestLineIndexLineTextStripsTrailingTerminator(t *testing.T) {
	li := NewLineIndex("only\r\n")
	if got := li.LineText(1); got != "only" {
		t.Errorf("LineText(1) = %q, want %q (trailing CRLF stripped)", got, "only")
	}
}

func TestLineIndexLineTextOutOfRangeIsEmpty(t *testing.T) {
	li := NewLineIndex("a\nb")
	if got := li.LineText(0); got != "" {
		t.Errorf("LineText(0) = %q, want empty", got)
	}
	if got := li.LineText(99); got != "" {
		t.Errorf("LineText(99) = %q, want empty", got)
	}
}

func TestLineIndexRenderFormatsDiagnostic(t *testing.T) {
	li := NewLineIndex("let x = ;\n")
	diag := NewDiagnostic(Range{Start: 8, End: 9}, "unexpected token")
	got := li.Render(diag)
	want := "1:9: error: unexpected token"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
