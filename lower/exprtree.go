package lower

import (
	"yog/ir"
	"yog/report"
	"yog/symtab"
	"yog/syntax"
)

// ExprTree is a binary tree representing an expression.  Unary operators only
// use their right child.
type ExprTree struct {
	// Kind must be one of the enumerated expression tree kinds.
	Kind int

	// OpCode is the instruction op code of an operator node.
	OpCode int

	Value int64
	Sym   *symtab.Symbol

	Left, Right *ExprTree

	Position *report.TextPosition
}

// Enumeration of expression tree kinds.
const (
	ExprOperator = iota
	ExprLiteral
	ExprVariable
)

// IsUnary returns whether the node is a unary operator.
func (et *ExprTree) IsUnary() bool {
	return et.Kind == ExprOperator && et.Left == nil
}

// Eval evaluates the tree if every leaf is a literal.  The returned bool is
// false if the tree depends on a variable or divides by zero.
func (et *ExprTree) Eval() (int64, bool) {
	switch et.Kind {
	case ExprLiteral:
		return et.Value, true
	case ExprVariable:
		return 0, false
	}

	r, ok := et.Right.Eval()
	if !ok {
		return 0, false
	}

	if et.IsUnary() {
		if et.OpCode == ir.OpNeg {
			return -r, true
		}

		return r, true
	}

	l, ok := et.Left.Eval()
	if !ok {
		return 0, false
	}

	switch et.OpCode {
	case ir.OpAdd:
		return l + r, true
	case ir.OpSub:
		return l - r, true
	case ir.OpMul:
		return l * r, true
	case ir.OpDiv:
		if r == 0 {
			return 0, false
		}

		return l / r, true
	}

	return 0, false
}

// -----------------------------------------------------------------------------

// binaryOpCodes maps binary operator tokens to their op codes.
var binaryOpCodes = map[syntax.TokenKind]int{
	syntax.TOK_PLUS:  ir.OpAdd,
	syntax.TOK_MINUS: ir.OpSub,
	syntax.TOK_MUL:   ir.OpMul,
	syntax.TOK_DIV:   ir.OpDiv,
}

// buildExprTree converts an expression or a term of the AST into an expression
// tree.  Both rules have the same shape: an operand followed by pairs of
// operator and operand, folded to the left.
func buildExprTree(branch *syntax.ASTBranch) *ExprTree {
	tree := buildOperand(branch.Content[0].(*syntax.ASTBranch))

	for i := 1; i+1 < branch.Len(); i += 2 {
		opTok := branch.LeafAt(i)
		tree = &ExprTree{
			Kind:     ExprOperator,
			OpCode:   binaryOpCodes[opTok.Kind],
			Left:     tree,
			Right:    buildOperand(branch.BranchAt(i + 1)),
			Position: opTok.Position,
		}
	}

	return tree
}

// buildOperand converts a term or a factor into an expression tree.
func buildOperand(branch *syntax.ASTBranch) *ExprTree {
	if branch.Rule != syntax.RuleFactor {
		return buildExprTree(branch)
	}

	first := branch.LeafAt(0)
	switch first.Kind {
	case syntax.TOK_LITERAL:
		return &ExprTree{Kind: ExprLiteral, Value: first.Lit, Position: first.Position}
	case syntax.TOK_IDENTIFIER:
		return &ExprTree{Kind: ExprVariable, Sym: first.Sym, Position: first.Position}
	case syntax.TOK_LPAREN:
		return buildExprTree(branch.BranchAt(1))
	}

	// unary sign
	opCode := ir.OpPlus
	if first.Kind == syntax.TOK_MINUS {
		opCode = ir.OpNeg
	}

	return &ExprTree{
		Kind:     ExprOperator,
		OpCode:   opCode,
		Right:    buildOperand(branch.BranchAt(1)),
		Position: first.Position,
	}
}
