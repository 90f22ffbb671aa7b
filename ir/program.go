package ir

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Program is the result of lowering a source file: a linear sequence of
// instructions addressed by index and the number of temporaries they use.
// Execution starts at the first instruction and ends when control moves past
// the last one.
type Program struct {
	Instrs []Instruction

	TempCount int
}

// Validate checks that every jump of the program targets an instruction of the
// program or the end of the program.
func (p *Program) Validate() error {
	for i, instr := range p.Instrs {
		if !instr.IsJump() {
			continue
		}

		if instr.Dest.Kind != OperandLabel {
			return fmt.Errorf("instruction %d: jump destination is not a label", i)
		}

		if target := instr.Dest.Index(); target < 0 || target > len(p.Instrs) {
			return fmt.Errorf("instruction %d: jump target @%d out of range", i, target)
		}
	}

	return nil
}

// Labels returns whether each instruction index, including the index one past
// the last instruction, is the target of some jump.
func (p *Program) Labels() []bool {
	labels := make([]bool, len(p.Instrs)+1)
	for _, instr := range p.Instrs {
		if instr.IsJump() && instr.Dest.Kind == OperandLabel {
			if target := instr.Dest.Index(); 0 <= target && target < len(labels) {
				labels[target] = true
			}
		}
	}

	return labels
}

// Repr returns the textual listing of the program.
func (p *Program) Repr() string {
	sb := &strings.Builder{}
	Print(sb, p, false)
	return sb.String()
}

// Print writes the listing of the program: one instruction per line prefixed
// by its index.  Jump targets are marked with their label.  If colored is set,
// op codes and labels are colored for a terminal.
func Print(w io.Writer, p *Program, colored bool) {
	opColor := color.New(color.FgCyan)
	labelColor := color.New(color.FgYellow)
	if colored {
		opColor.EnableColor()
		labelColor.EnableColor()
	} else {
		opColor.DisableColor()
		labelColor.DisableColor()
	}

	labels := p.Labels()
	for i, instr := range p.Instrs {
		if labels[i] {
			fmt.Fprintln(w, labelColor.Sprintf("@%d:", i))
		}

		opName := OpCodeName(instr.OpCode)
		operands := strings.TrimPrefix(instr.Repr(), opName)
		fmt.Fprintf(w, "%04d  %s%s\n", i, opColor.Sprint(opName), operands)
	}

	if labels[len(p.Instrs)] {
		fmt.Fprintln(w, labelColor.Sprintf("@%d:", len(p.Instrs)))
	}
}
