package interp

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"yog/ir"
	"yog/lower"
	"yog/report"
	"yog/symtab"
	"yog/syntax"
)

func compile(t *testing.T, src string) *ir.Program {
	t.Helper()

	errs := &report.ErrorList{}
	ast := syntax.ParseSource(strings.NewReader(src), symtab.NewTable(), errs, false)
	prog, _ := lower.Lower(ast, errs, false)
	be.True(t, errs.Empty())

	return prog
}

func run(t *testing.T, src, input string, opts Options) (string, error) {
	t.Helper()

	out := &strings.Builder{}
	it := NewInterpreter(compile(t, src), NewLineInput(strings.NewReader(input), out), out, opts)
	err := it.Run()

	return out.String(), err
}

func TestRunArithmetic(t *testing.T) {
	out, err := run(t, "var x: int; begin x := 2 + 3 * 4; write x; end", "", Options{})
	be.Err(t, err, nil)
	be.Equal(t, out, "14\n")
}

func TestRunRead(t *testing.T) {
	out, err := run(t, "var x: int; y: int; begin read x; read y; write x + y; end", "3\n4\n", Options{})
	be.Err(t, err, nil)
	be.Equal(t, out, "7\n")
}

func TestRunPrompt(t *testing.T) {
	out, err := run(t, "var x: int; begin read x; write -x end", " 12 \n", Options{Prompt: true})
	be.Err(t, err, nil)
	be.Equal(t, out, "enter the value of \"x\": -12\n")
}

func TestRunBranch(t *testing.T) {
	src := "var x: int; begin read x; if (x = 1) begin write 10; else write 20; end; end"

	out, err := run(t, src, "1\n", Options{})
	be.Err(t, err, nil)
	be.Equal(t, out, "10\n")

	out, err = run(t, src, "2\n", Options{})
	be.Err(t, err, nil)
	be.Equal(t, out, "20\n")
}

func TestRunLoop(t *testing.T) {
	out, err := run(t, "var i: int; begin i := 0; while (i < 3) begin write i; i := i + 1; end; end", "", Options{})
	be.Err(t, err, nil)
	be.Equal(t, out, "0\n1\n2\n")
}

func TestRunRelational(t *testing.T) {
	src := `var a: int; b: int;
begin
  read a; read b;
  if (a <> b) begin write 1 else write 0 end;
  if (a <= b) begin write 1 else write 0 end;
  if (a >= b) begin write 1 else write 0 end;
  if (a > b) begin write 1 else write 0 end
end`

	out, err := run(t, src, "5\n5\n", Options{})
	be.Err(t, err, nil)
	be.Equal(t, out, "0\n1\n1\n0\n")
}

func TestRunTruncatedDivision(t *testing.T) {
	out, err := run(t, "var begin write 7 / 2; write -7 / 2; write (0 - 7) / -2 end", "", Options{})
	be.Err(t, err, nil)
	be.Equal(t, out, "3\n-3\n3\n")
}

func TestRunDivisionByZero(t *testing.T) {
	out, err := run(t, "var x: int; begin write 1; x := 0; write 10 / x; write 2 end", "", Options{})
	be.Equal(t, out, "1\n")
	be.Err(t, err, ErrDivisionByZero)

	var re *RuntimeError
	be.True(t, errors.As(err, &re))
	be.Equal(t, re.Index, 2)
	be.Equal(t, re.Position.String(), "1, 45")
}

func TestRunStepLimit(t *testing.T) {
	out, err := run(t, "var begin write 1; while (1 = 1) begin end end", "", Options{MaxSteps: 100})
	be.Equal(t, out, "1\n")
	be.Err(t, err, ErrStepLimit)
}

func TestRunInputExhausted(t *testing.T) {
	_, err := run(t, "var x: int; begin read x; read x end", "1\n", Options{})
	be.Err(t, err, io.EOF)

	var ie *InputError
	be.True(t, errors.As(err, &ie))
	be.Equal(t, ie.Name, "x")
}

func TestRunBadInput(t *testing.T) {
	_, err := run(t, "var x: int; begin read x end", "twelve\n", Options{})

	var ie *InputError
	be.True(t, errors.As(err, &ie))
	be.Equal(t, ie.Text, "twelve")
}

func TestRunBuiltProgram(t *testing.T) {
	table := symtab.NewTable()
	x := table.Add("x")

	b := ir.NewBuilder()
	b.Emit(ir.OpAssign, ir.Symbol(x), ir.Literal(5), ir.None(), nil)

	start := b.NewLabel()
	end := b.NewLabel()
	b.PlaceLabel(start)
	cond := b.NewTemp()
	b.Emit(ir.OpGt, cond, ir.Symbol(x), ir.Literal(0), nil)
	body := b.NewLabel()
	b.EmitBranch(cond, body, nil)
	b.EmitGoto(end, nil)
	b.PlaceLabel(body)
	next := b.NewTemp()
	b.Emit(ir.OpSub, next, ir.Symbol(x), ir.Literal(2), nil)
	b.Emit(ir.OpAssign, ir.Symbol(x), next, ir.None(), nil)
	b.EmitGoto(start, nil)
	b.PlaceLabel(end)

	it := NewInterpreter(b.Program(), NewLineInput(strings.NewReader(""), nil), io.Discard, Options{})
	be.Err(t, it.Run(), nil)
	be.Equal(t, x.Value, int64(-1))
	be.Equal(t, it.Steps(), 1+3*5+3)
}

func TestRunIdempotent(t *testing.T) {
	src := "var n: int; f: int; begin read n; f := 1; while (n > 1) begin f := f * n; n := n - 1 end; write f end"

	first, err := run(t, src, "10\n", Options{})
	be.Err(t, err, nil)
	second, err := run(t, src, "10\n", Options{})
	be.Err(t, err, nil)

	be.Equal(t, first, "3628800\n")
	be.Equal(t, first, second)
}
