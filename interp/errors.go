package interp

import (
	"errors"
	"fmt"

	"yog/report"
)

var (
	// ErrDivisionByZero is the cause of a runtime error raised by a division
	// whose divisor evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrStepLimit is the cause of a runtime error raised when a program
	// executes more instructions than it is allowed to.
	ErrStepLimit = errors.New("step limit exceeded")
)

// RuntimeError is an error which halts the interpretation of a program.
type RuntimeError struct {
	// Index is the index of the instruction which failed.
	Index int

	// Position is the source position the instruction was lowered from.  It
	// may be nil.
	Position *report.TextPosition

	Err error
}

func (re *RuntimeError) Error() string {
	if re.Position == nil {
		return fmt.Sprintf("instruction %d: %s", re.Index, re.Err)
	}

	return fmt.Sprintf("instruction %d (%s): %s", re.Index, re.Position, re.Err)
}

func (re *RuntimeError) Unwrap() error {
	return re.Err
}

// InputError is raised when a `read` can't obtain a value for its variable.
type InputError struct {
	Name string

	// Text is the offending line if one was read.
	Text string

	Err error
}

func (ie *InputError) Error() string {
	if ie.Text == "" {
		return fmt.Sprintf("failed to read the value of \"%s\": %s", ie.Name, ie.Err)
	}

	return fmt.Sprintf("invalid value %q for \"%s\": %s", ie.Text, ie.Name, ie.Err)
}

func (ie *InputError) Unwrap() error {
	return ie.Err
}
