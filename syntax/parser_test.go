package syntax

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"yog/report"
	"yog/symtab"
)

func parseString(src string) (*ASTBranch, *report.ErrorList) {
	errs := &report.ErrorList{}
	ast := ParseSource(strings.NewReader(src), symtab.NewTable(), errs, false)
	return ast, errs
}

// checkComplete fails if any node of the AST is nil or if a branch does not
// have the number of children its rule requires.
func checkComplete(t *testing.T, node ASTNode) {
	t.Helper()

	switch v := node.(type) {
	case *ASTLeaf:
		be.True(t, v.Tok != nil)
	case *ASTBranch:
		switch v.Rule {
		case RuleSource:
			be.Equal(t, v.Len(), 5)
		case RuleDeclaration:
			be.Equal(t, v.Len(), 4)
		case RuleAssign, RuleCondition:
			be.Equal(t, v.Len(), 3)
		case RuleInput, RuleOutput:
			be.Equal(t, v.Len(), 2)
		case RuleBranch:
			be.Equal(t, v.Len(), 4)
		case RuleLoop:
			be.Equal(t, v.Len(), 3)
		case RuleExpression, RuleTerm:
			be.Equal(t, v.Len()%2, 1)
		case RuleFactor:
			be.True(t, v.Len() >= 1)
		}

		for _, child := range v.Content {
			be.True(t, child != nil)
			checkComplete(t, child)
		}
	default:
		t.Fatalf("unexpected node %v", node)
	}
}

func TestParseEmptyDeclarations(t *testing.T) {
	ast, errs := parseString("var begin write 1 end")
	be.True(t, errs.Empty())
	checkComplete(t, ast)

	be.Equal(t, ast.Rule, RuleSource)
	be.Equal(t, ast.BranchAt(1).Len(), 0)

	stmts := ast.BranchAt(3)
	be.Equal(t, stmts.Len(), 1)
	be.Equal(t, stmts.BranchAt(0).Rule, RuleOutput)
}

func TestParseMissingExpression(t *testing.T) {
	ast, errs := parseString("var begin write end")
	be.Equal(t, errs.Len(), 1)
	checkComplete(t, ast)

	ute, ok := errs.At(0).(*UnexpectedTokenError)
	be.True(t, ok)
	be.Equal(t, ute.Actual, TOK_END)
	be.Equal(t, ute.Expected, factorStartKinds)

	factor := ast.BranchAt(3).BranchAt(0).BranchAt(1).BranchAt(0).BranchAt(0)
	be.Equal(t, factor.Rule, RuleFactor)
	be.Equal(t, factor.LeafAt(0).Kind, TOK_LITERAL)
	be.Equal(t, factor.LeafAt(0).Lit, int64(0))
	be.True(t, factor.LeafAt(0).Synthetic)
}

func TestParseDeclarations(t *testing.T) {
	ast, errs := parseString("var x: int; y: int; begin read x; read y; write x + y; end")
	be.True(t, errs.Empty())
	checkComplete(t, ast)

	vars := ast.BranchAt(1)
	be.Equal(t, vars.Len(), 2)
	be.Equal(t, vars.BranchAt(0).LeafAt(0).Value, "x")
	be.Equal(t, vars.BranchAt(1).LeafAt(0).Value, "y")
	be.Equal(t, ast.BranchAt(3).Len(), 3)
}

func TestParseLeftAssociative(t *testing.T) {
	ast, errs := parseString("var begin write 1 - 2 - 3 * 4 / 5 end")
	be.True(t, errs.Empty())

	expr := ast.BranchAt(3).BranchAt(0).BranchAt(1)
	be.Equal(t, expr.Rule, RuleExpression)
	be.Equal(t, expr.Len(), 5)
	be.Equal(t, expr.LeafAt(1).Kind, TOK_MINUS)
	be.Equal(t, expr.LeafAt(3).Kind, TOK_MINUS)

	term := expr.BranchAt(4)
	be.Equal(t, term.Len(), 5)
	be.Equal(t, term.LeafAt(1).Kind, TOK_MUL)
	be.Equal(t, term.LeafAt(3).Kind, TOK_DIV)
}

func TestParseControlFlow(t *testing.T) {
	src := `var i: int;
begin
	i := 0;
	while (i < 3) begin
		if (i <> 1) begin write i; else write -i; end;
		i := i + 1;
	end;
end`

	ast, errs := parseString(src)
	be.True(t, errs.Empty())
	checkComplete(t, ast)

	loop := ast.BranchAt(3).BranchAt(1)
	be.Equal(t, loop.Rule, RuleLoop)
	be.Equal(t, loop.BranchAt(1).LeafAt(1).Kind, TOK_LT)

	branch := loop.BranchAt(2).BranchAt(0)
	be.Equal(t, branch.Rule, RuleBranch)
	be.Equal(t, branch.BranchAt(2).Len(), 1)
	be.Equal(t, branch.BranchAt(3).Len(), 1)
}

func TestParseSkipsBadStatement(t *testing.T) {
	ast, errs := parseString("var begin ; write 1; end")
	be.Equal(t, errs.Len(), 1)
	checkComplete(t, ast)

	ute := errs.At(0).(*UnexpectedTokenError)
	be.Equal(t, ute.Actual, TOK_SEMICOLON)
	be.Equal(t, ute.Expected, stmtStartKinds)
	be.Equal(t, ast.BranchAt(3).Len(), 1)
}

func TestParseMissingSemicolon(t *testing.T) {
	ast, errs := parseString("var begin write 1 write 2 end")
	be.Equal(t, errs.Len(), 1)
	checkComplete(t, ast)

	ute := errs.At(0).(*UnexpectedTokenError)
	be.Equal(t, ute.Expected, TOK_SEMICOLON)
	be.Equal(t, ute.Actual, TOK_WRITE)
	be.Equal(t, ast.BranchAt(3).Len(), 2)
}

func TestParseMissingElse(t *testing.T) {
	ast, errs := parseString("var begin if (1 = 1) begin write 1; end; end")
	be.Equal(t, errs.Len(), 1)
	checkComplete(t, ast)
	be.Equal(t, errs.At(0).Error(), `expected token "else" but found token "end"`)
}

func TestParseSynthesizesMissingTokens(t *testing.T) {
	ast, errs := parseString("var x int; begin read ; end")
	be.Equal(t, errs.Len(), 2)
	checkComplete(t, ast)

	decl := ast.BranchAt(1).BranchAt(0)
	be.True(t, decl.LeafAt(1).Synthetic)
	be.Equal(t, decl.LeafAt(1).Kind, TOK_COLON)

	input := ast.BranchAt(3).BranchAt(0)
	be.True(t, input.LeafAt(1).Synthetic)
	be.Equal(t, input.LeafAt(1).Kind, TOK_IDENTIFIER)
}

func TestParseTrailingTokens(t *testing.T) {
	_, errs := parseString("var begin end end")
	be.Equal(t, errs.Len(), 1)

	ute := errs.At(0).(*UnexpectedTokenError)
	be.Equal(t, ute.Expected, TOK_EOF)
	be.Equal(t, *ute.Position, report.TextPosition{Line: 1, Col: 15})
}

func TestDumpAST(t *testing.T) {
	ast, _ := parseString("var begin write -1 end")

	sb := &strings.Builder{}
	DumpAST(sb, ast)

	want := `source
  var
  variables
  begin
  statements
    output
      write
      expression
        term
          factor
            -
            factor
              literal(1)
  end
`
	be.Equal(t, sb.String(), want)
}
