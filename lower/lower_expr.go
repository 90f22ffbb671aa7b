package lower

import (
	"yog/ir"
	"yog/syntax"
)

// relOpCodes maps relational operator tokens to their op codes.
var relOpCodes = map[syntax.TokenKind]int{
	syntax.TOK_EQ:   ir.OpEq,
	syntax.TOK_NEQ:  ir.OpNeq,
	syntax.TOK_LT:   ir.OpLt,
	syntax.TOK_LTEQ: ir.OpLte,
	syntax.TOK_GT:   ir.OpGt,
	syntax.TOK_GTEQ: ir.OpGte,
}

// lowerCondition lowers a condition.  Both sides are evaluated before the
// comparison which stores 0 or 1 in a new temporary.
func (l *Lowerer) lowerCondition(cond *syntax.ASTBranch) ir.Operand {
	lhs := l.lowerExpression(cond.BranchAt(0))
	rhs := l.lowerExpression(cond.BranchAt(2))

	opTok := cond.LeafAt(1)
	result := l.b.NewTemp()
	l.b.Emit(relOpCodes[opTok.Kind], result, lhs, rhs, opTok.Position)

	return result
}

// lowerExpression lowers an expression and returns the operand holding its
// value.
func (l *Lowerer) lowerExpression(expr *syntax.ASTBranch) ir.Operand {
	return l.lowerTree(buildExprTree(expr))
}

// lowerTree lowers an expression tree in post-order: every operator writes its
// result to a fresh temporary.  When constants are folded, any subtree made only
// of literals becomes a single literal.
func (l *Lowerer) lowerTree(tree *ExprTree) ir.Operand {
	if l.FoldConstants && tree.Kind == ExprOperator {
		if v, ok := tree.Eval(); ok {
			return ir.Literal(v)
		}
	}

	switch tree.Kind {
	case ExprLiteral:
		return ir.Literal(tree.Value)
	case ExprVariable:
		return l.useVariable(tree.Sym, tree.Position)
	}

	if tree.IsUnary() {
		operand := l.lowerTree(tree.Right)
		result := l.b.NewTemp()
		l.b.Emit(tree.OpCode, result, operand, ir.None(), tree.Position)
		return result
	}

	lhs := l.lowerTree(tree.Left)
	rhs := l.lowerTree(tree.Right)
	result := l.b.NewTemp()
	l.b.Emit(tree.OpCode, result, lhs, rhs, tree.Position)

	return result
}
