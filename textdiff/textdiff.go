// Package textdiff compares two text documents line by line, strictly by
// position: line i of the left document is only ever compared to line i of
// the right document, with no realignment.
package textdiff

import (
	"strings"

	"github.com/seqdiff/seqdiff"
)

// Edit describes the comparison outcome for a single line position.
//
// Line carries the content needed to render the edit: the removed left-hand
// line for Remove, the right-hand line otherwise. It never includes the
// trailing newline.
type Edit struct {
	Op   seqdiff.Op
	Line string
}

// Edits compares the lines of x and y and returns one edit per line position
// up to the length of the longer document.
func Edits[T string | []byte](x, y T) []Edit {
	return Compare(Lines(string(x)), Lines(string(y)))
}

// Compare compares two pre-split line slices. Most callers want [Edits];
// Compare is for inputs that aren't line-based documents, e.g. elements
// extracted from structured data.
func Compare(x, y []string) []Edit {
	edits := make([]Edit, 0, max(len(x), len(y)))
	s, t := 0, 0
	for e := range seqdiff.Slices(x, y) {
		switch e.Op {
		case seqdiff.Keep:
			edits = append(edits, Edit{e.Op, y[t]})
			s++
			t++
		case seqdiff.Change:
			edits = append(edits, Edit{e.Op, e.Elem})
			s++
			t++
		case seqdiff.Remove:
			edits = append(edits, Edit{e.Op, x[s]})
			s++
		case seqdiff.Add:
			edits = append(edits, Edit{e.Op, e.Elem})
			t++
		}
	}
	return edits
}

// Lines splits a document into lines without their trailing newline. A final
// newline does not introduce a trailing empty line.
func Lines(doc string) []string {
	if doc == "" {
		return nil
	}
	doc = strings.TrimSuffix(doc, "\n")
	return strings.Split(doc, "\n")
}

// Format renders edits in a plain text format with one marker column:
// a space for kept lines, '~' for changed lines, '-' for removed lines and
// '+' for added lines. Changed and added lines show the right-hand content.
func Format(edits []Edit) string {
	var sb strings.Builder
	for _, e := range edits {
		switch e.Op {
		case seqdiff.Keep:
			sb.WriteByte(' ')
		case seqdiff.Change:
			sb.WriteByte('~')
		case seqdiff.Remove:
			sb.WriteByte('-')
		case seqdiff.Add:
			sb.WriteByte('+')
		}
		sb.WriteByte(' ')
		sb.WriteString(e.Line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Stats counts the edits per operation.
func Stats(edits []Edit) (keeps, changes, removes, adds int) {
	for _, e := range edits {
		switch e.Op {
		case seqdiff.Keep:
			keeps++
		case seqdiff.Change:
			changes++
		case seqdiff.Remove:
			removes++
		case seqdiff.Add:
			adds++
		}
	}
	return keeps, changes, removes, adds
}
