package syntax

import (
	"fmt"
	"io"
	"strings"

	"yog/report"
)

// ASTNode represents a node in the abstract syntax tree: either a leaf holding
// a token or a branch produced by a grammar rule.
type ASTNode interface {
	// Position returns the position of the first token of the node or nil if
	// the node contains no tokens.
	Position() *report.TextPosition
}

// ASTLeaf is a terminal node of the AST.
type ASTLeaf struct {
	Tok *Token
}

func (leaf *ASTLeaf) Position() *report.TextPosition {
	return leaf.Tok.Position
}

// ASTBranch is a nonterminal node of the AST.  The children of a branch always
// correspond positionally to the grammar rule that produced it.
type ASTBranch struct {
	// Rule must be one of the enumerated grammar rules.
	Rule int

	Content []ASTNode
}

// Enumeration of grammar rules and the layout of their children.
const (
	RuleSource      = iota // `var` variables `begin` statements `end`
	RuleVariables          // declaration*
	RuleDeclaration        // identifier `:` `int` `;`
	RuleStatements         // (assign | input | output | branch | loop)*
	RuleAssign             // identifier `:=` expression
	RuleInput              // `read` identifier
	RuleOutput             // `write` expression
	RuleBranch             // `if` condition statements statements
	RuleLoop               // `while` condition statements
	RuleCondition          // expression rel-op expression
	RuleExpression         // term ((`+` | `-`) term)*
	RuleTerm               // factor ((`*` | `/`) factor)*
	RuleFactor             // literal | identifier | (`+` | `-`) factor | `(` expression `)`
)

var ruleNames = [...]string{
	"source",
	"variables",
	"declaration",
	"statements",
	"assign",
	"input",
	"output",
	"branch",
	"loop",
	"condition",
	"expression",
	"term",
	"factor",
}

// RuleName returns the name of a grammar rule.
func RuleName(rule int) string {
	return ruleNames[rule]
}

func newBranch(rule int, content ...ASTNode) *ASTBranch {
	return &ASTBranch{Rule: rule, Content: content}
}

func (b *ASTBranch) add(node ASTNode) {
	b.Content = append(b.Content, node)
}

func (b *ASTBranch) addLeaf(tok *Token) {
	b.Content = append(b.Content, &ASTLeaf{Tok: tok})
}

func (b *ASTBranch) Position() *report.TextPosition {
	for _, node := range b.Content {
		if pos := node.Position(); pos != nil {
			return pos
		}
	}

	return nil
}

// BranchAt returns the branch at the given index.
func (b *ASTBranch) BranchAt(ndx int) *ASTBranch {
	return b.Content[ndx].(*ASTBranch)
}

// LeafAt returns the token of the leaf at the given index.
func (b *ASTBranch) LeafAt(ndx int) *Token {
	return b.Content[ndx].(*ASTLeaf).Tok
}

// Len returns the number of children of the branch.
func (b *ASTBranch) Len() int {
	return len(b.Content)
}

// -----------------------------------------------------------------------------

// DumpAST writes an indented representation of an AST.
func DumpAST(w io.Writer, node ASTNode) {
	dumpNode(w, node, 0)
}

func dumpNode(w io.Writer, node ASTNode, depth int) {
	indent := strings.Repeat("  ", depth)

	switch v := node.(type) {
	case *ASTLeaf:
		if v.Tok.Synthetic {
			fmt.Fprintf(w, "%s%s (missing)\n", indent, v.Tok)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, v.Tok)
		}
	case *ASTBranch:
		fmt.Fprintf(w, "%s%s\n", indent, RuleName(v.Rule))
		for _, child := range v.Content {
			dumpNode(w, child, depth+1)
		}
	}
}
