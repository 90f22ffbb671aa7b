package syntax

import (
	"fmt"

	"yog/report"
)

// InvalidTokenError is raised by the scanner for a run of characters that does
// not form a token, for a token too long to be buffered, or for an integer
// literal out of range.
type InvalidTokenError struct {
	Text     string
	Reason   string
	Position *report.TextPosition
}

func (ite *InvalidTokenError) Error() string {
	if ite.Reason == "" {
		return fmt.Sprintf("invalid token %q", ite.Text)
	}

	return fmt.Sprintf("invalid token %q: %s", ite.Text, ite.Reason)
}

func (ite *InvalidTokenError) Pos() *report.TextPosition {
	return ite.Position
}

// UnexpectedTokenError is raised by the parser when the current token is not
// one of the kinds accepted at that point of the grammar.
type UnexpectedTokenError struct {
	Actual   TokenKind
	Expected TokenKind
	Position *report.TextPosition
}

func (ute *UnexpectedTokenError) Error() string {
	if ute.Expected&(ute.Expected-1) == 0 {
		return fmt.Sprintf("expected token \"%s\" but found token \"%s\"", ute.Expected, ute.Actual)
	}

	return fmt.Sprintf("expected token %s but found token \"%s\"", ute.Expected, ute.Actual)
}

func (ute *UnexpectedTokenError) Pos() *report.TextPosition {
	return ute.Position
}
