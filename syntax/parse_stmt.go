package syntax

// stmtStartKinds is the set of token kinds that can begin a statement.
const stmtStartKinds = TOK_IDENTIFIER | TOK_READ | TOK_WRITE | TOK_IF | TOK_WHILE

// stmtEndKinds is the set of token kinds that end a sequence of statements.
// The semicolon after the last statement before one of these may be omitted.
const stmtEndKinds = TOK_END | TOK_ELSE | TOK_EOF

// statements = {statement ';'} ;
// statement = assign | input | output | branch | loop ;
func (p *Parser) parseStatements() *ASTBranch {
	stmts := newBranch(RuleStatements)

	for !p.check(stmtEndKinds) {
		var stmt *ASTBranch

		if idTok := p.accept(TOK_IDENTIFIER); idTok != nil {
			stmt = p.parseAssign(idTok)
		} else if readTok := p.accept(TOK_READ); readTok != nil {
			stmt = p.parseInput(readTok)
		} else if writeTok := p.accept(TOK_WRITE); writeTok != nil {
			stmt = p.parseOutput(writeTok)
		} else if ifTok := p.accept(TOK_IF); ifTok != nil {
			stmt = p.parseBranch(ifTok)
		} else if whileTok := p.accept(TOK_WHILE); whileTok != nil {
			stmt = p.parseLoop(whileTok)
		} else {
			// skip the token and resume at the next statement
			p.reject(stmtStartKinds)
			p.next()
			continue
		}

		stmts.add(stmt)

		if p.accept(TOK_SEMICOLON) == nil && !p.check(stmtEndKinds) {
			p.reject(TOK_SEMICOLON)
		}
	}

	return stmts
}

// assign = identifier ':=' expression ;
func (p *Parser) parseAssign(idTok *Token) *ASTBranch {
	assign := newBranch(RuleAssign)
	assign.addLeaf(idTok)
	assign.addLeaf(p.expect(TOK_ASSIGN))
	assign.add(p.parseExpression())

	return assign
}

// input = 'read' identifier ;
func (p *Parser) parseInput(readTok *Token) *ASTBranch {
	input := newBranch(RuleInput)
	input.addLeaf(readTok)
	input.addLeaf(p.expect(TOK_IDENTIFIER))

	return input
}

// output = 'write' expression ;
func (p *Parser) parseOutput(writeTok *Token) *ASTBranch {
	return newBranch(RuleOutput, &ASTLeaf{Tok: writeTok}, p.parseExpression())
}

// branch = 'if' '(' condition ')' 'begin' statements 'else' statements 'end' ;
func (p *Parser) parseBranch(ifTok *Token) *ASTBranch {
	branch := newBranch(RuleBranch)
	branch.addLeaf(ifTok)

	p.expect(TOK_LPAREN)
	branch.add(p.parseCondition())
	p.expect(TOK_RPAREN)

	p.expect(TOK_BEGIN)
	branch.add(p.parseStatements())
	p.expect(TOK_ELSE)
	branch.add(p.parseStatements())
	p.expect(TOK_END)

	return branch
}

// loop = 'while' '(' condition ')' 'begin' statements 'end' ;
func (p *Parser) parseLoop(whileTok *Token) *ASTBranch {
	loop := newBranch(RuleLoop)
	loop.addLeaf(whileTok)

	p.expect(TOK_LPAREN)
	loop.add(p.parseCondition())
	p.expect(TOK_RPAREN)

	p.expect(TOK_BEGIN)
	loop.add(p.parseStatements())
	p.expect(TOK_END)

	return loop
}
