package lower

import (
	"yog/ir"
	"yog/syntax"
)

// lowerStatements lowers a sequence of statements.
func (l *Lowerer) lowerStatements(stmts *syntax.ASTBranch) {
	for i := range stmts.Content {
		stmt := stmts.BranchAt(i)

		switch stmt.Rule {
		case syntax.RuleAssign:
			l.lowerAssign(stmt)
		case syntax.RuleInput:
			l.lowerInput(stmt)
		case syntax.RuleOutput:
			l.b.Emit(ir.OpWrite, ir.None(), l.lowerExpression(stmt.BranchAt(1)), ir.None(), stmt.Position())
		case syntax.RuleBranch:
			l.lowerBranch(stmt)
		case syntax.RuleLoop:
			l.lowerLoop(stmt)
		}
	}
}

// lowerAssign lowers `x := expr` into a single assign instruction.
func (l *Lowerer) lowerAssign(assign *syntax.ASTBranch) {
	idTok := assign.LeafAt(0)
	dest := l.useVariable(idTok.Sym, idTok.Position)
	src := l.lowerExpression(assign.BranchAt(2))

	if dest.Kind == ir.OperandSymbol {
		l.b.Emit(ir.OpAssign, dest, src, ir.None(), idTok.Position)
	}
}

// lowerInput lowers `read x`.
func (l *Lowerer) lowerInput(input *syntax.ASTBranch) {
	idTok := input.LeafAt(1)
	if idTok.Synthetic {
		return
	}

	if dest := l.useVariable(idTok.Sym, idTok.Position); dest.Kind == ir.OperandSymbol {
		l.b.Emit(ir.OpRead, dest, ir.None(), ir.None(), input.Position())
	}
}

// lowerBranch lowers an if statement as:
//
//	  <cond>             ; result in t
//	  branch @true, t
//	  <else statements>
//	  goto @end
//	@true:
//	  <then statements>
//	@end:
func (l *Lowerer) lowerBranch(branch *syntax.ASTBranch) {
	pos := branch.Position()
	trueLabel := l.b.NewLabel()
	endLabel := l.b.NewLabel()

	cond := l.lowerCondition(branch.BranchAt(1))
	l.b.EmitBranch(cond, trueLabel, pos)

	l.lowerStatements(branch.BranchAt(3))
	l.b.EmitGoto(endLabel, pos)

	l.b.PlaceLabel(trueLabel)
	l.lowerStatements(branch.BranchAt(2))

	l.b.PlaceLabel(endLabel)
}

// lowerLoop lowers a while statement as:
//
//	@start:
//	  <cond>             ; result in t
//	  branch @body, t
//	  goto @end
//	@body:
//	  <statements>
//	  goto @start
//	@end:
func (l *Lowerer) lowerLoop(loop *syntax.ASTBranch) {
	pos := loop.Position()
	startLabel := l.b.NewLabel()
	bodyLabel := l.b.NewLabel()
	endLabel := l.b.NewLabel()

	l.b.PlaceLabel(startLabel)
	cond := l.lowerCondition(loop.BranchAt(1))
	l.b.EmitBranch(cond, bodyLabel, pos)
	l.b.EmitGoto(endLabel, pos)

	l.b.PlaceLabel(bodyLabel)
	l.lowerStatements(loop.BranchAt(2))
	l.b.EmitGoto(startLabel, pos)

	l.b.PlaceLabel(endLabel)
}
