package ir

import (
	"strings"

	"yog/report"
)

// Instruction is a single three-address code instruction: at most two source
// operands and one destination.
type Instruction struct {
	// OpCode must be one of the enumerated instruction op codes.
	OpCode int

	Dest, Src1, Src2 Operand

	// Position is the position of the source text the instruction was
	// generated from.
	Position *report.TextPosition
}

// Enumeration of instruction op codes.
const (
	// Data Movement
	OpAssign = iota // dest := src1
	OpRead          // read dest
	OpWrite         // write src1

	// Arithmetic
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPlus // unary plus
	OpNeg

	// Comparison: the result is 1 if the comparison holds and 0 otherwise.
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte

	// Control Flow: the destination is always a label.
	OpGoto
	OpBranch // branch to dest if src1 is not zero
)

// Table of Op Code names
var opCodeNames = []string{
	"assign",
	"read",
	"write",

	"add",
	"sub",
	"mul",
	"div",
	"plus",
	"neg",

	"eq",
	"neq",
	"lt",
	"lte",
	"gt",
	"gte",

	"goto",
	"branch",
}

// OpCodeName returns the name of an op code.
func OpCodeName(opCode int) string {
	return opCodeNames[opCode]
}

// IsJump returns whether the instruction transfers control to a label.
func (instr *Instruction) IsJump() bool {
	return instr.OpCode == OpGoto || instr.OpCode == OpBranch
}

func (instr *Instruction) Repr() string {
	sb := strings.Builder{}

	sb.WriteString(OpCodeName(instr.OpCode))

	first := true
	for _, op := range []Operand{instr.Dest, instr.Src1, instr.Src2} {
		if op.Kind == OperandNone {
			continue
		}

		if first {
			sb.WriteRune(' ')
			first = false
		} else {
			sb.WriteString(", ")
		}

		sb.WriteString(op.Repr())
	}

	return sb.String()
}
