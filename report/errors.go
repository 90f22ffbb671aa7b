package report

import (
	"fmt"
	"io"
	"strings"
)

// CompileError is an error detected while compiling a source file.  Every
// stage of the compiler raises its own kind of compile error: the set of kinds
// is closed and consumers are expected to type switch over them.
type CompileError interface {
	error

	// Pos returns the position of the erroneous source text.
	Pos() *TextPosition
}

// ErrorList is the ordered, append-only list of compile errors shared by all
// the stages working on a single source file.  Compilation never stops on a
// compile error: the list is only inspected once all stages have run.
type ErrorList struct {
	errs []CompileError
}

// Add appends a compile error to the list.
func (el *ErrorList) Add(err CompileError) {
	el.errs = append(el.errs, err)
}

// Len returns the number of errors in the list.
func (el *ErrorList) Len() int {
	return len(el.errs)
}

// Empty returns whether no errors have been recorded.
func (el *ErrorList) Empty() bool {
	return len(el.errs) == 0
}

// Errors returns the recorded errors in the order they were detected.
func (el *ErrorList) Errors() []CompileError {
	return el.errs
}

// At returns the nth recorded error.
func (el *ErrorList) At(n int) CompileError {
	return el.errs[n]
}

// Format writes every error on its own line as `(n) line, col - message`
// where n counts from 1.
func (el *ErrorList) Format(w io.Writer) error {
	for i, err := range el.errs {
		if _, werr := fmt.Fprintln(w, FormatError(i+1, err)); werr != nil {
			return werr
		}
	}

	return nil
}

func (el *ErrorList) String() string {
	sb := &strings.Builder{}
	el.Format(sb)
	return sb.String()
}

// FormatError formats a single compile error as the nth entry of a list.
func FormatError(n int, err CompileError) string {
	return fmt.Sprintf("(%d) %s - %s", n, err.Pos(), err.Error())
}
