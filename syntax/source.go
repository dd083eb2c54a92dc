package syntax

import (
	"strconv"

	"github.com/rivo/uniseg"
)

// LineIndex maps byte offsets into a source text to 1-based line and
// column numbers, for rendering Diagnostic ranges as human-readable
// positions. Columns are counted in extended grapheme clusters via
// github.com/rivo/uniseg rather than bytes or runes, so a diagnostic
// pointing at a position after a multi-codepoint emoji or combining
// accent lands where a reader's eye actually is.
//
// Grounded on boergens-gotypst/syntax/source.go's Source{lines}/line
// lookup machinery, trimmed of Typst's incremental-edit line-tracking
// (replace/edit/resync) since ecmacst has no incremental reparse
// support (see DESIGN.md): LineIndex is built once from the final text
// and never mutated.
type LineIndex struct {
	text        string
	lineStarts  []int // byte offset of the start of each line (0-based line index)
}

// NewLineIndex scans text once, recording the byte offset of every line
// start (i.e. the position right after each LineTerminator).
func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			starts = append(starts, i+1)
		}
		// U+2028/U+2029 are each 3 bytes in UTF-8 (0xE2 0x80 0xA8/0xA9);
		// detect them by their distinctive lead byte to avoid decoding
		// every byte as a rune in this hot scanning loop.
		if c == 0xE2 && i+2 < len(text) && text[i+1] == 0x80 && (text[i+2] == 0xA8 || text[i+2] == 0xA9) {
			starts = append(starts, i+3)
		}
	}
	return &LineIndex{text: text, lineStarts: starts}
}

// LineCount returns the number of lines in the source text.
func (li *LineIndex) LineCount() int {
	return len(li.lineStarts)
}

// Position converts a byte offset to a 1-based (line, column) pair. The
// column is the count of extended grapheme clusters between the start
// of the line and offset, plus one.
func (li *LineIndex) Position(offset int) (line, column int) {
	line = li.lineForOffset(offset)
	lineStart := li.lineStarts[line]
	if offset > len(li.text) {
		offset = len(li.text)
	}
	if offset < lineStart {
		offset = lineStart
	}
	column = 1 + uniseg.GraphemeClusterCount(li.text[lineStart:offset])
	return line + 1, column
}

// lineForOffset returns the 0-based line index containing offset, via
// binary search over the recorded line starts.
func (li *LineIndex) lineForOffset(offset int) int {
	lo, hi := 0, len(li.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if li.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// LineText returns the text of the given 1-based line number, excluding
// its trailing line terminator.
func (li *LineIndex) LineText(line int) string {
	idx := line - 1
	if idx < 0 || idx >= len(li.lineStarts) {
		return ""
	}
	start := li.lineStarts[idx]
	end := len(li.text)
	if idx+1 < len(li.lineStarts) {
		end = li.lineStarts[idx+1]
	}
	lineText := li.text[start:end]
	for len(lineText) > 0 && IsLineTerminator(rune(lineText[len(lineText)-1])) {
		lineText = lineText[:len(lineText)-1]
	}
	return lineText
}

// Render formats a Diagnostic as a single human-readable line:
// "line:column: severity: message".
func (li *LineIndex) Render(d *Diagnostic) string {
	line, column := li.Position(d.Primary.Start)
	return strconv.Itoa(line) + ":" + strconv.Itoa(column) + ": " + d.Severity.String() + ": " + d.Message
}
