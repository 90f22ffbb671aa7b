// Package lower performs the semantic analysis of a parsed source file and
// lowers it into three-address code.
package lower

import (
	"fmt"

	"yog/ir"
	"yog/report"
	"yog/symtab"
	"yog/syntax"
)

// Lowerer is the construct responsible for checking declarations and
// converting the AST into a program.  Errors are recorded in the shared error
// list and never stop the lowering: a literal zero stands in for any variable
// that can't be used.
type Lowerer struct {
	b    *ir.Builder
	errs *report.ErrorList

	// FoldConstants makes expressions whose leaves are all literals lower to a
	// single literal operand.
	FoldConstants bool

	// reported is the set of undeclared symbols an error has already been
	// reported for.
	reported map[*symtab.Symbol]bool

	// used is the set of symbols referenced by a statement.
	used map[*symtab.Symbol]bool

	// declared lists the declared symbols in declaration order.
	declared []*symtab.Symbol

	warnings []Warning
}

// NewLowerer creates a new lowerer appending errors to errs.
func NewLowerer(errs *report.ErrorList) *Lowerer {
	return &Lowerer{
		b:        ir.NewBuilder(),
		errs:     errs,
		reported: make(map[*symtab.Symbol]bool),
		used:     make(map[*symtab.Symbol]bool),
	}
}

// Lower analyzes and lowers a source AST into a program.  The declaration
// section is processed in full before any statement is lowered.
func (l *Lowerer) Lower(src *syntax.ASTBranch) *ir.Program {
	l.declareVariables(src.BranchAt(1))
	l.lowerStatements(src.BranchAt(3))

	for _, sym := range l.declared {
		if !l.used[sym] {
			l.warnings = append(l.warnings, Warning{
				Message:  fmt.Sprintf("variable \"%s\" is declared but never used", sym.Name),
				Position: sym.DeclSite,
			})
		}
	}

	return l.b.Program()
}

// Warnings returns the warnings produced during lowering.
func (l *Lowerer) Warnings() []Warning {
	return l.warnings
}

// Lower is a convenience wrapper which lowers a source AST with a new lowerer.
func Lower(src *syntax.ASTBranch, errs *report.ErrorList, foldConstants bool) (*ir.Program, []Warning) {
	l := NewLowerer(errs)
	l.FoldConstants = foldConstants

	prog := l.Lower(src)
	return prog, l.Warnings()
}

// -----------------------------------------------------------------------------

// declareVariables processes the declaration section.  The first declaration
// of a variable wins: later ones are errors.
func (l *Lowerer) declareVariables(vars *syntax.ASTBranch) {
	for i := range vars.Content {
		idTok := vars.BranchAt(i).LeafAt(0)
		sym := idTok.Sym

		if sym.Declared() {
			l.errs.Add(&MultipleDeclarationError{
				Symbol:   sym,
				First:    sym.DeclSite,
				Position: idTok.Position,
			})

			continue
		}

		sym.DeclState = symtab.DeclInteger
		sym.DeclSite = idTok.Position
		l.declared = append(l.declared, sym)
	}
}

// useVariable returns the operand for a reference to a variable.  If the
// variable is undeclared, an error is reported at its first use and a literal
// zero is returned instead.
func (l *Lowerer) useVariable(sym *symtab.Symbol, pos *report.TextPosition) ir.Operand {
	if sym.Declared() {
		l.used[sym] = true
		return ir.Symbol(sym)
	}

	if !l.reported[sym] {
		l.reported[sym] = true
		l.errs.Add(&UndeclaredVariableError{Symbol: sym, Position: pos})
	}

	return ir.Literal(0)
}
