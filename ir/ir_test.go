package ir

import (
	"testing"

	"github.com/nalgeon/be"

	"yog/symtab"
)

func TestOperandRepr(t *testing.T) {
	sym := symtab.NewTable().Add("count")

	be.Equal(t, Temp(3).Repr(), "t3")
	be.Equal(t, Literal(-12).Repr(), "-12")
	be.Equal(t, Symbol(sym).Repr(), "count")
	be.Equal(t, Label(7).Repr(), "@7")
	be.Equal(t, None().Repr(), "_")
}

func TestBuilderTemporaries(t *testing.T) {
	b := NewBuilder()

	be.Equal(t, b.NewTemp(), Temp(0))
	be.Equal(t, b.NewTemp(), Temp(1))
	be.Equal(t, b.Program().TempCount, 2)
}

func TestBuilderBackpatch(t *testing.T) {
	b := NewBuilder()
	end := b.NewLabel()

	b.EmitBranch(Literal(1), end, nil)
	b.EmitGoto(end, nil)
	b.Emit(OpWrite, None(), Literal(5), None(), nil)

	// not yet placed
	be.Equal(t, b.Program().Instrs[0].Dest, Label(-1))
	be.True(t, b.Program().Validate() != nil)

	b.PlaceLabel(end)

	prog := b.Program()
	be.Equal(t, prog.Instrs[0].Dest, Label(3))
	be.Equal(t, prog.Instrs[1].Dest, Label(3))
	be.Err(t, prog.Validate(), nil)
}

func TestBuilderLabelOperands(t *testing.T) {
	b := NewBuilder()

	var skip *JumpLabel = b.NewLabel()
	b.EmitGoto(skip, nil)
	b.Emit(OpWrite, None(), Literal(1), None(), nil)
	b.PlaceLabel(skip)
	b.EmitBranch(Literal(0), skip, nil)

	prog := b.Program()
	be.Equal(t, prog.Instrs[0].Dest, Label(2))
	be.Equal(t, prog.Instrs[2].Dest, Label(2))
	be.Equal(t, prog.Instrs[2].Repr(), "branch @2, 0")
	be.Equal(t, OpCodeName(prog.Instrs[0].OpCode), "goto")
}

func TestBuilderBackwardJump(t *testing.T) {
	b := NewBuilder()
	start := b.NewLabel()

	b.Emit(OpWrite, None(), Literal(1), None(), nil)
	b.PlaceLabel(start)
	b.Emit(OpWrite, None(), Literal(2), None(), nil)
	b.EmitGoto(start, nil)

	be.Equal(t, b.Program().Instrs[2].Dest, Label(1))
}

func TestProgramRepr(t *testing.T) {
	x := symtab.NewTable().Add("x")

	b := NewBuilder()
	top := b.NewLabel()
	end := b.NewLabel()

	b.PlaceLabel(top)
	t0 := b.NewTemp()
	b.Emit(OpLt, t0, Symbol(x), Literal(3), nil)
	b.EmitBranch(t0, end, nil)
	b.Emit(OpWrite, None(), Symbol(x), None(), nil)
	b.EmitGoto(top, nil)
	b.PlaceLabel(end)

	want := `@0:
0000  lt t0, x, 3
0001  branch @4, t0
0002  write x
0003  goto @0
@4:
`
	be.Equal(t, b.Program().Repr(), want)
}
