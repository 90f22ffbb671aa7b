package ir

import (
	"strconv"

	"yog/symtab"
)

// Operand is a single operand of an instruction.  Operands are small values
// and are always copied.
type Operand struct {
	// Kind must be one of the enumerated operand kinds.
	Kind int

	// Value is the temporary index, the literal value or the label target
	// depending on the kind of the operand.
	Value int64

	// Sym is the symbol of a symbol operand.  It is owned by the symbol table.
	Sym *symtab.Symbol
}

// Enumeration of operand kinds.
const (
	OperandNone = iota // Unused operand slot.
	OperandTemp        // Temporary value slot.
	OperandLiteral     // Integer constant.
	OperandSymbol      // Variable.
	OperandLabel       // Instruction index.
)

// None returns an empty operand.
func None() Operand {
	return Operand{}
}

// Temp returns an operand referring to the nth temporary.
func Temp(n int) Operand {
	return Operand{Kind: OperandTemp, Value: int64(n)}
}

// Literal returns a constant operand.
func Literal(v int64) Operand {
	return Operand{Kind: OperandLiteral, Value: v}
}

// Symbol returns an operand referring to a variable.
func Symbol(sym *symtab.Symbol) Operand {
	return Operand{Kind: OperandSymbol, Sym: sym}
}

// Label returns an operand referring to the instruction at index target.
func Label(target int) Operand {
	return Operand{Kind: OperandLabel, Value: int64(target)}
}

// Index returns the temporary index or label target of the operand.
func (op Operand) Index() int {
	return int(op.Value)
}

func (op Operand) Repr() string {
	switch op.Kind {
	case OperandTemp:
		return "t" + strconv.FormatInt(op.Value, 10)
	case OperandLiteral:
		return strconv.FormatInt(op.Value, 10)
	case OperandSymbol:
		return op.Sym.Name
	case OperandLabel:
		return "@" + strconv.FormatInt(op.Value, 10)
	default:
		return "_"
	}
}
