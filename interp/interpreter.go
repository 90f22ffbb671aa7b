// Package interp executes lowered programs.
package interp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"yog/ir"
)

// Options configures an interpreter.
type Options struct {
	// Prompt makes every `read` ask for its value.
	Prompt bool

	// MaxSteps is the maximum number of instructions executed before the
	// program is halted.  Zero means unlimited.
	MaxSteps int
}

// Interpreter executes a program.  Variables live in their symbols: the
// interpreter itself only stores the temporaries.
type Interpreter struct {
	prog  *ir.Program
	temps []int64

	in  Input
	out io.Writer

	opts Options

	// pc is the index of the next instruction.
	pc    int
	steps int
}

// NewInterpreter creates an interpreter for prog reading from in and writing
// to out.
func NewInterpreter(prog *ir.Program, in Input, out io.Writer, opts Options) *Interpreter {
	return &Interpreter{
		prog:  prog,
		temps: make([]int64, prog.TempCount),
		in:    in,
		out:   out,
		opts:  opts,
	}
}

// Steps returns the number of instructions executed so far.
func (it *Interpreter) Steps() int {
	return it.steps
}

// Run executes the program until the program counter moves past its last
// instruction or an error occurs.
func (it *Interpreter) Run() error {
	if err := it.prog.Validate(); err != nil {
		return err
	}

	for it.pc < len(it.prog.Instrs) {
		if it.opts.MaxSteps > 0 && it.steps >= it.opts.MaxSteps {
			return it.fail(ErrStepLimit)
		}

		it.steps++

		if err := it.step(); err != nil {
			return err
		}
	}

	return nil
}

// step executes the instruction at the program counter.
func (it *Interpreter) step() error {
	instr := &it.prog.Instrs[it.pc]

	switch instr.OpCode {
	case ir.OpAssign:
		instr.Dest.Sym.Value = it.value(instr.Src1)
	case ir.OpRead:
		v, err := it.read(instr.Dest.Sym.Name)
		if err != nil {
			return it.fail(err)
		}

		instr.Dest.Sym.Value = v
	case ir.OpWrite:
		if _, err := fmt.Fprintf(it.out, "%d\n", it.value(instr.Src1)); err != nil {
			return it.fail(err)
		}
	case ir.OpAdd:
		it.store(instr, it.value(instr.Src1)+it.value(instr.Src2))
	case ir.OpSub:
		it.store(instr, it.value(instr.Src1)-it.value(instr.Src2))
	case ir.OpMul:
		it.store(instr, it.value(instr.Src1)*it.value(instr.Src2))
	case ir.OpDiv:
		divisor := it.value(instr.Src2)
		if divisor == 0 {
			return it.fail(ErrDivisionByZero)
		}

		it.store(instr, it.value(instr.Src1)/divisor)
	case ir.OpPlus:
		it.store(instr, it.value(instr.Src1))
	case ir.OpNeg:
		it.store(instr, -it.value(instr.Src1))
	case ir.OpEq:
		it.store(instr, boolValue(it.value(instr.Src1) == it.value(instr.Src2)))
	case ir.OpNeq:
		it.store(instr, boolValue(it.value(instr.Src1) != it.value(instr.Src2)))
	case ir.OpLt:
		it.store(instr, boolValue(it.value(instr.Src1) < it.value(instr.Src2)))
	case ir.OpLte:
		it.store(instr, boolValue(it.value(instr.Src1) <= it.value(instr.Src2)))
	case ir.OpGt:
		it.store(instr, boolValue(it.value(instr.Src1) > it.value(instr.Src2)))
	case ir.OpGte:
		it.store(instr, boolValue(it.value(instr.Src1) >= it.value(instr.Src2)))
	case ir.OpGoto:
		it.pc = instr.Dest.Index()
		return nil
	case ir.OpBranch:
		if it.value(instr.Src1) != 0 {
			it.pc = instr.Dest.Index()
			return nil
		}
	default:
		return it.fail(fmt.Errorf("unknown op code %d", instr.OpCode))
	}

	it.pc++
	return nil
}

// value returns the current value of an operand.
func (it *Interpreter) value(op ir.Operand) int64 {
	switch op.Kind {
	case ir.OperandTemp:
		return it.temps[op.Index()]
	case ir.OperandSymbol:
		return op.Sym.Value
	default:
		// literals and labels
		return op.Value
	}
}

// store writes the result of an instruction to its destination temporary.
func (it *Interpreter) store(instr *ir.Instruction, v int64) {
	it.temps[instr.Dest.Index()] = v
}

// read obtains the value of a variable from the input.
func (it *Interpreter) read(name string) (int64, error) {
	var prompt string
	if it.opts.Prompt {
		prompt = fmt.Sprintf("enter the value of \"%s\": ", name)
	}

	line, err := it.in.ReadLine(prompt)
	if err != nil {
		return 0, &InputError{Name: name, Err: err}
	}

	text := strings.TrimSpace(line)
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &InputError{Name: name, Text: text, Err: err}
	}

	return v, nil
}

// fail wraps err in a runtime error for the current instruction.
func (it *Interpreter) fail(err error) error {
	re := &RuntimeError{Index: it.pc, Err: err}
	if it.pc < len(it.prog.Instrs) {
		re.Position = it.prog.Instrs[it.pc].Position
	}

	return re
}

func boolValue(b bool) int64 {
	if b {
		return 1
	}

	return 0
}
