package ir

import "yog/report"

// Builder is used to build a program one instruction at a time.  Jumps to
// labels whose position is not yet known are backpatched once the label is
// placed.
type Builder struct {
	prog *Program
}

// JumpLabel is a jump target.  A label is placed at most once: jumps emitted
// before it is placed are recorded as pending and patched when it is.
type JumpLabel struct {
	target  int
	placed  bool
	pending []int
}

// NewBuilder creates a builder for an empty program.
func NewBuilder() *Builder {
	return &Builder{prog: &Program{}}
}

// Program returns the built program.
func (b *Builder) Program() *Program {
	return b.prog
}

// NewTemp allocates a fresh temporary.  Temporaries are never reused.
func (b *Builder) NewTemp() Operand {
	b.prog.TempCount++
	return Temp(b.prog.TempCount - 1)
}

// Emit appends an instruction.
func (b *Builder) Emit(opCode int, dest, src1, src2 Operand, pos *report.TextPosition) {
	b.prog.Instrs = append(b.prog.Instrs, Instruction{
		OpCode:   opCode,
		Dest:     dest,
		Src1:     src1,
		Src2:     src2,
		Position: pos,
	})
}

// NewLabel creates a label which has not been placed yet.
func (b *Builder) NewLabel() *JumpLabel {
	return &JumpLabel{}
}

// PlaceLabel places a label at the current position: the next instruction to
// be emitted.  Every pending jump to the label is patched.
func (b *Builder) PlaceLabel(l *JumpLabel) {
	l.target = len(b.prog.Instrs)
	l.placed = true

	for _, ndx := range l.pending {
		b.prog.Instrs[ndx].Dest = Label(l.target)
	}

	l.pending = nil
}

// EmitGoto emits an unconditional jump to a label.
func (b *Builder) EmitGoto(l *JumpLabel, pos *report.TextPosition) {
	b.emitJump(OpGoto, l, None(), pos)
}

// EmitBranch emits a jump to a label taken if cond is not zero.
func (b *Builder) EmitBranch(cond Operand, l *JumpLabel, pos *report.TextPosition) {
	b.emitJump(OpBranch, l, cond, pos)
}

func (b *Builder) emitJump(opCode int, l *JumpLabel, cond Operand, pos *report.TextPosition) {
	if l.placed {
		b.Emit(opCode, Label(l.target), cond, None(), pos)
		return
	}

	// the destination is a placeholder until the label is placed
	l.pending = append(l.pending, len(b.prog.Instrs))
	b.Emit(opCode, Label(-1), cond, None(), pos)
}
