package lower

import (
	"fmt"

	"yog/report"
	"yog/symtab"
)

// UndeclaredVariableError is raised at the first use of a variable that was
// never declared.
type UndeclaredVariableError struct {
	Symbol   *symtab.Symbol
	Position *report.TextPosition
}

func (uve *UndeclaredVariableError) Error() string {
	return fmt.Sprintf("undeclared variable \"%s\"", uve.Symbol.Name)
}

func (uve *UndeclaredVariableError) Pos() *report.TextPosition {
	return uve.Position
}

// MultipleDeclarationError is raised when a variable is declared again.  The
// first declaration remains in effect.
type MultipleDeclarationError struct {
	Symbol   *symtab.Symbol
	First    *report.TextPosition
	Position *report.TextPosition
}

func (mde *MultipleDeclarationError) Error() string {
	return fmt.Sprintf("multiple declaration of variable \"%s\", first declared at %s", mde.Symbol.Name, mde.First)
}

func (mde *MultipleDeclarationError) Pos() *report.TextPosition {
	return mde.Position
}

// Warning is a problem in the source that does not prevent it from running.
type Warning struct {
	Message  string
	Position *report.TextPosition
}
