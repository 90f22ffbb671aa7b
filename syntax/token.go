package syntax

import (
	"fmt"
	"math/bits"
	"strings"

	"yog/report"
	"yog/symtab"
)

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be exactly one of the enumerated token
	// kinds: never a set of kinds.
	Kind TokenKind

	// The source text of the token.
	Value string

	// The value of a literal token.
	Lit int64

	// The symbol an identifier token refers to.  The symbol is owned by the
	// symbol table.
	Sym *symtab.Symbol

	// The position of the first character of the token.
	Position *report.TextPosition

	// Whether the token was synthesized by the parser in place of a missing
	// token rather than read from the source.
	Synthetic bool
}

func (tok *Token) String() string {
	switch tok.Kind {
	case TOK_LITERAL:
		return fmt.Sprintf("%s(%d)", tok.Kind, tok.Lit)
	case TOK_IDENTIFIER:
		return fmt.Sprintf("%s(%s)", tok.Kind, tok.Value)
	default:
		return tok.Kind.String()
	}
}

// TokenKind is a set of token kinds: every kind is a distinct bit so that the
// set of kinds expected at some point of the grammar is a single value.
type TokenKind uint32

// Enumeration of token kinds.
const (
	TOK_EOF TokenKind = 1 << iota

	TOK_VAR
	TOK_BEGIN
	TOK_END
	TOK_INT
	TOK_READ
	TOK_WRITE
	TOK_IF
	TOK_ELSE
	TOK_WHILE

	TOK_COLON
	TOK_SEMICOLON
	TOK_ASSIGN
	TOK_LPAREN
	TOK_RPAREN

	TOK_LITERAL
	TOK_IDENTIFIER

	TOK_PLUS
	TOK_MINUS
	TOK_MUL
	TOK_DIV

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_LTEQ
	TOK_GT
	TOK_GTEQ

	// tokKindCount is the number of token kinds.
	tokKindCount = iota
)

// Common sets of token kinds.
const (
	TOK_ADD_OPS = TOK_PLUS | TOK_MINUS
	TOK_MUL_OPS = TOK_MUL | TOK_DIV
	TOK_REL_OPS = TOK_EQ | TOK_NEQ | TOK_LT | TOK_LTEQ | TOK_GT | TOK_GTEQ
)

var tokKindNames = [tokKindCount]string{
	"EOF",
	"var", "begin", "end", "int", "read", "write", "if", "else", "while",
	":", ";", ":=", "(", ")",
	"literal", "identifier",
	"+", "-", "*", "/",
	"=", "<>", "<", "<=", ">", ">=",
}

// Kinds splits a set of token kinds into its individual kinds, ordered by
// their enumeration.
func (tk TokenKind) Kinds() []TokenKind {
	var kinds []TokenKind
	for set := tk; set != 0; set &= set - 1 {
		kinds = append(kinds, TokenKind(1)<<bits.TrailingZeros32(uint32(set)))
	}

	return kinds
}

// First returns the first kind in a set of token kinds.
func (tk TokenKind) First() TokenKind {
	return tk & -tk
}

// Has returns whether the set contains any of the given kinds.
func (tk TokenKind) Has(kinds TokenKind) bool {
	return tk&kinds != 0
}

// String returns the name of a single token kind or, for a set of kinds, the
// quoted names of every kind joined by `or`.
func (tk TokenKind) String() string {
	if tk == 0 {
		return "nothing"
	}

	if tk&(tk-1) == 0 {
		return tokKindNames[bits.TrailingZeros32(uint32(tk))]
	}

	names := make([]string, 0, bits.OnesCount32(uint32(tk)))
	for _, kind := range tk.Kinds() {
		names = append(names, `"`+kind.String()+`"`)
	}

	return strings.Join(names, " or ")
}

// keywordPatterns maps keyword strings to their token kind.
var keywordPatterns = map[string]TokenKind{
	"var":   TOK_VAR,
	"begin": TOK_BEGIN,
	"end":   TOK_END,
	"int":   TOK_INT,
	"read":  TOK_READ,
	"write": TOK_WRITE,
	"if":    TOK_IF,
	"else":  TOK_ELSE,
	"while": TOK_WHILE,
}

// symbolPatterns maps punctuation and operator strings to their token kind.
var symbolPatterns = map[string]TokenKind{
	":":  TOK_COLON,
	";":  TOK_SEMICOLON,
	":=": TOK_ASSIGN,
	"(":  TOK_LPAREN,
	")":  TOK_RPAREN,
	"+":  TOK_PLUS,
	"-":  TOK_MINUS,
	"*":  TOK_MUL,
	"/":  TOK_DIV,
	"=":  TOK_EQ,
	"<>": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,
}
