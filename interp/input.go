package interp

import (
	"bufio"
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// Input is a source of lines for `read` instructions.  The prompt is shown
// before the line is read if it is not empty.  io.EOF is returned once the
// source is exhausted.
type Input interface {
	ReadLine(prompt string) (string, error)
}

// LineInput reads lines from a plain reader such as a pipe or a file.
type LineInput struct {
	sc *bufio.Scanner

	// out receives the prompts.  It may be nil.
	out io.Writer
}

// NewLineInput creates a line input reading from r and writing its prompts to
// out.
func NewLineInput(r io.Reader, out io.Writer) *LineInput {
	return &LineInput{sc: bufio.NewScanner(r), out: out}
}

func (li *LineInput) ReadLine(prompt string) (string, error) {
	if prompt != "" && li.out != nil {
		if _, err := io.WriteString(li.out, prompt); err != nil {
			return "", err
		}
	}

	if !li.sc.Scan() {
		if err := li.sc.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return li.sc.Text(), nil
}

// TerminalInput reads lines from an interactive terminal with line editing.
type TerminalInput struct {
	rl *readline.Instance
}

// NewTerminalInput opens the terminal for reading.  It must be closed once the
// program has finished.
func NewTerminalInput() (*TerminalInput, error) {
	rl, err := readline.New("")
	if err != nil {
		return nil, err
	}

	return &TerminalInput{rl: rl}, nil
}

func (ti *TerminalInput) ReadLine(prompt string) (string, error) {
	ti.rl.SetPrompt(prompt)

	line, err := ti.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}

	return line, err
}

// Close releases the terminal.
func (ti *TerminalInput) Close() error {
	return ti.rl.Close()
}
