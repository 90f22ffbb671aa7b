package report

import "fmt"

// TextPosition is the location of a token in the source text: the line and
// column of its first character.  Both are 1-indexed.
type TextPosition struct {
	Line, Col int
}

// NewPosition returns a position at the given line and column.
func NewPosition(line, col int) *TextPosition {
	return &TextPosition{Line: line, Col: col}
}

func (tp *TextPosition) String() string {
	if tp == nil {
		return "?, ?"
	}

	return fmt.Sprintf("%d, %d", tp.Line, tp.Col)
}
