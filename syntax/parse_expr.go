package syntax

// factorStartKinds is the set of token kinds that can begin a factor.
const factorStartKinds = TOK_LITERAL | TOK_IDENTIFIER | TOK_ADD_OPS | TOK_LPAREN

// condition = expression rel_op expression ;
func (p *Parser) parseCondition() *ASTBranch {
	cond := newBranch(RuleCondition)
	cond.add(p.parseExpression())
	cond.addLeaf(p.expect(TOK_REL_OPS))
	cond.add(p.parseExpression())

	return cond
}

// expression = term {('+' | '-') term} ;
func (p *Parser) parseExpression() *ASTBranch {
	expr := newBranch(RuleExpression, p.parseTerm())

	for {
		opTok := p.accept(TOK_ADD_OPS)
		if opTok == nil {
			break
		}

		expr.addLeaf(opTok)
		expr.add(p.parseTerm())
	}

	return expr
}

// term = factor {('*' | '/') factor} ;
func (p *Parser) parseTerm() *ASTBranch {
	term := newBranch(RuleTerm, p.parseFactor())

	for {
		opTok := p.accept(TOK_MUL_OPS)
		if opTok == nil {
			break
		}

		term.addLeaf(opTok)
		term.add(p.parseFactor())
	}

	return term
}

// factor = literal | identifier | ('+' | '-') factor | '(' expression ')' ;
func (p *Parser) parseFactor() *ASTBranch {
	factor := newBranch(RuleFactor)

	if tok := p.accept(TOK_LITERAL | TOK_IDENTIFIER); tok != nil {
		factor.addLeaf(tok)
	} else if signTok := p.accept(TOK_ADD_OPS); signTok != nil {
		factor.addLeaf(signTok)
		factor.add(p.parseFactor())
	} else if lparenTok := p.accept(TOK_LPAREN); lparenTok != nil {
		factor.addLeaf(lparenTok)
		factor.add(p.parseExpression())
		factor.addLeaf(p.expect(TOK_RPAREN))
	} else {
		// the offending token is left for the enclosing rule to deal with and
		// a literal zero stands in for the factor
		p.reject(factorStartKinds)
		factor.addLeaf(p.synthesize(TOK_LITERAL))
	}

	return factor
}
