package syntax

import (
	"io"

	"yog/report"
	"yog/symtab"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is a recursive descent parser with one token of lookahead.  All
// parsing functions assume that they begin with the parser positioned on the
// first token of their production and must consume all tokens of their
// production, leaving the parser on the next token.  Syntax errors never stop
// the parser: missing tokens are synthesized so that the resulting AST is
// always complete.
type Parser struct {
	// sc is the scanner the parser is reading tokens from.
	sc *Scanner

	// tok is the current token the parser is positioned on.
	tok *Token

	// errs is the list syntax errors are appended to.
	errs *report.ErrorList
}

// NewParser creates a new parser reading tokens from a scanner.
func NewParser(sc *Scanner, errs *report.ErrorList) *Parser {
	return &Parser{sc: sc, errs: errs}
}

// Parse parses a whole source file.  The returned AST is never nil, even if
// syntax errors were recorded.
func (p *Parser) Parse() *ASTBranch {
	// move the parser onto the first token
	p.next()

	src := p.parseSource()

	if !p.check(TOK_EOF) {
		p.reject(TOK_EOF)
	}

	return src
}

// ParseSource scans and parses the source text read from r.
func ParseSource(r io.Reader, table *symtab.Table, errs *report.ErrorList, wrapLiterals bool) *ASTBranch {
	sc := NewScanner(r, table, errs)
	sc.WrapLiterals = wrapLiterals

	return NewParser(sc, errs).Parse()
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	p.tok = p.sc.NextToken()
}

// check returns whether the current token is one of the given kinds.
func (p *Parser) check(kinds TokenKind) bool {
	return p.tok.Kind.Has(kinds)
}

// accept consumes the current token if it is one of the given kinds.  It
// returns the consumed token or nil if the token didn't match.
func (p *Parser) accept(kinds TokenKind) *Token {
	if p.check(kinds) {
		tok := p.tok
		p.next()
		return tok
	}

	return nil
}

// expect consumes the current token if it is one of the given kinds.  If not,
// it records an error and returns a synthesized token of the first expected
// kind positioned on the current token.  The current token is left in place.
func (p *Parser) expect(kinds TokenKind) *Token {
	if tok := p.accept(kinds); tok != nil {
		return tok
	}

	p.reject(kinds)
	return p.synthesize(kinds.First())
}

// reject records an unexpected token error on the current token.
func (p *Parser) reject(expected TokenKind) {
	p.errs.Add(&UnexpectedTokenError{
		Actual:   p.tok.Kind,
		Expected: expected,
		Position: p.tok.Position,
	})
}

// synthesize creates a placeholder token of the given kind.
func (p *Parser) synthesize(kind TokenKind) *Token {
	tok := &Token{
		Kind:      kind,
		Value:     kind.String(),
		Position:  p.tok.Position,
		Synthetic: true,
	}

	if kind == TOK_LITERAL {
		tok.Value = "0"
	}

	return tok
}

// -----------------------------------------------------------------------------

// source = 'var' variables 'begin' statements 'end' ;
func (p *Parser) parseSource() *ASTBranch {
	src := newBranch(RuleSource)

	src.addLeaf(p.expect(TOK_VAR))
	src.add(p.parseVariables())
	src.addLeaf(p.expect(TOK_BEGIN))
	src.add(p.parseStatements())
	src.addLeaf(p.expect(TOK_END))

	return src
}

// variables = {identifier ':' 'int' ';'} ;
func (p *Parser) parseVariables() *ASTBranch {
	vars := newBranch(RuleVariables)

	for {
		idTok := p.accept(TOK_IDENTIFIER)
		if idTok == nil {
			break
		}

		decl := newBranch(RuleDeclaration)
		decl.addLeaf(idTok)
		decl.addLeaf(p.expect(TOK_COLON))
		decl.addLeaf(p.expect(TOK_INT))
		decl.addLeaf(p.expect(TOK_SEMICOLON))

		vars.add(decl)
	}

	return vars
}
