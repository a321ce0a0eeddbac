package parser

import (
	"ccparse/ast"
	"ccparse/token"
)

// parseStatement dispatches on the lookahead to one of the statement forms.
// A leading identifier is ambiguous between a labeled statement and an
// expression statement with only one token of lookahead; it is resolved the
// same way the legacy designated-initializer form is, by peeking past the
// identifier for a following colon.
func (p *parser) parseStatement() (ast.Stmt, *Error) {
	pos := p.tok.Pos
	switch p.tok.Kind {
	case token.IDENT, token.TYPEDEF_NAME:
		return p.parseIdentLeadStatement(pos)
	case token.CASE:
		return p.parseCaseStatement(pos)
	case token.DEFAULT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return &ast.DefaultStmt{Stmt: stmt, StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
	case token.LBRACE:
		return p.parseCompoundStatement()
	case token.IF:
		return p.parseIfStatement(pos)
	case token.SWITCH:
		return p.parseSwitchStatement(pos)
	case token.WHILE:
		return p.parseWhileStatement(pos)
	case token.DO:
		return p.parseDoWhileStatement(pos)
	case token.FOR:
		return p.parseForStatement(pos)
	case token.GOTO:
		return p.parseGotoStatement(pos)
	case token.CONTINUE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMI); err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
	case token.BREAK:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMI); err != nil {
			return nil, err
		}
		return &ast.BreakStmt{StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
	case token.RETURN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var expr ast.Expr
		if !p.at(token.SEMI) {
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			expr = e
		}
		if _, err := p.expect(token.SEMI); err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Expr: expr, StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
	case token.ASM:
		stmt, err := p.parseAsmStatement(pos)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMI); err != nil {
			return nil, err
		}
		return stmt, nil
	case token.SEMI:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.ExprStmt{StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMI); err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Expr: expr, StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
	}
}

// parseIdentLeadStatement resolves the labeled-statement/expression-statement
// ambiguity: it consumes the leading identifier and looks at the following
// token. A colon commits to a label (with its own optional trailing
// attributes); anything else resumes a full expression parse from the
// identifier already consumed, via continueAssignmentExpressionFrom.
func (p *parser) parseIdentLeadStatement(pos token.Position) (ast.Stmt, *Error) {
	name := p.ident()
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.at(token.COLON) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		attrs, err := p.parseOptionalAttributes()
		if err != nil {
			return nil, err
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return &ast.LabeledStmt{Label: name, Attributes: attrs, Stmt: stmt, StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
	}
	primary := &ast.VarExpr{Name: name, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}
	expr, err := p.continueAssignmentExpressionFrom(primary)
	if err != nil {
		return nil, err
	}
	full, err := p.parseExpressionTail(expr)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: full, StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
}

// parseExpressionTail is the comma-operator continuation of an
// already-parsed assignment-expression, mirroring parseExpression for
// callers that have already consumed the first operand.
func (p *parser) parseExpressionTail(first ast.Expr) (ast.Expr, *Error) {
	if !p.at(token.COMMA) {
		return first, nil
	}
	pos := first.Position()
	exprs := []ast.Expr{first}
	for p.at(token.COMMA) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, next)
	}
	return &ast.CommaExpr{Exprs: exprs, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
}

func (p *parser) parseCaseStatement(pos token.Position) (ast.Stmt, *Error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	low, err := p.parseConditionalExpression()
	if err != nil {
		return nil, err
	}
	var high ast.Expr
	if p.atRange() {
		if err := p.advance(); err != nil {
			return nil, err
		}
		h, err := p.parseConditionalExpression()
		if err != nil {
			return nil, err
		}
		high = h
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.CaseStmt{Low: low, High: high, Stmt: stmt, StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
}

func (p *parser) parseIfStatement(pos token.Position) (ast.Stmt, *Error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var els ast.Stmt
	if p.at(token.ELSE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		els = e
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els, StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
}

func (p *parser) parseSwitchStatement(pos token.Position) (ast.Stmt, *Error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	tag, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.SwitchStmt{Tag: tag, Body: body, StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
}

func (p *parser) parseWhileStatement(pos token.Position) (ast.Stmt, *Error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body, StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
}

func (p *parser) parseDoWhileStatement(pos token.Position) (ast.Stmt, *Error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.WHILE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.DoWhileStmt{Body: body, Cond: cond, StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
}

// parseForStatement opens a scope before parsing the init clause, since a
// C99 declaration there (`for (int i = 0; ...)`) must be visible to cond,
// post, and body, and closes it after the body, per §4.3.
func (p *parser) parseForStatement(pos token.Position) (ast.Stmt, *Error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	p.enterScope()
	stmt := &ast.ForStmt{}
	if p.at(token.SEMI) {
		if err := p.advance(); err != nil {
			p.leaveScope()
			return nil, err
		}
	} else if p.startsDeclarationSpecifier() {
		decl, err := p.parseDeclaration()
		if err != nil {
			p.leaveScope()
			return nil, err
		}
		stmt.HasInit = true
		stmt.InitDecl = decl
	} else {
		expr, err := p.parseExpression()
		if err != nil {
			p.leaveScope()
			return nil, err
		}
		if _, err := p.expect(token.SEMI); err != nil {
			p.leaveScope()
			return nil, err
		}
		stmt.HasInit = true
		stmt.InitExpr = expr
	}
	if !p.at(token.SEMI) {
		cond, err := p.parseExpression()
		if err != nil {
			p.leaveScope()
			return nil, err
		}
		stmt.Cond = cond
	}
	if _, err := p.expect(token.SEMI); err != nil {
		p.leaveScope()
		return nil, err
	}
	if !p.at(token.RPAREN) {
		post, err := p.parseExpression()
		if err != nil {
			p.leaveScope()
			return nil, err
		}
		stmt.Post = post
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		p.leaveScope()
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		p.leaveScope()
		return nil, err
	}
	stmt.Body = body
	p.leaveScope()
	stmt.Attrs = p.stamp(pos)
	return stmt, nil
}

func (p *parser) parseGotoStatement(pos token.Position) (ast.Stmt, *Error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.at(token.STAR) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		target, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMI); err != nil {
			return nil, err
		}
		return &ast.ComputedGotoStmt{Target: target, StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
	}
	name, err := p.expectFieldName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.GotoStmt{Label: name, StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}, nil
}

// parseCompoundStatement parses `{ __label__ decls; block-items }`, opening
// a fresh scope so any typedef declared inside does not leak past the
// closing brace.
func (p *parser) parseCompoundStatement() (*ast.CompoundStatement, *Error) {
	pos := p.tok.Pos
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	p.enterScope()
	cs := &ast.CompoundStatement{}
	for p.at(token.LABEL) {
		if err := p.advance(); err != nil {
			p.leaveScope()
			return nil, err
		}
		for {
			name, err := p.expectFieldName()
			if err != nil {
				p.leaveScope()
				return nil, err
			}
			cs.LocalLabels = append(cs.LocalLabels, name)
			if !p.at(token.COMMA) {
				break
			}
			if err := p.advance(); err != nil {
				p.leaveScope()
				return nil, err
			}
		}
		if _, err := p.expect(token.SEMI); err != nil {
			p.leaveScope()
			return nil, err
		}
	}
	for !p.at(token.RBRACE) {
		item, err := p.parseBlockItem()
		if err != nil {
			p.leaveScope()
			return nil, err
		}
		cs.Items = append(cs.Items, item)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		p.leaveScope()
		return nil, err
	}
	p.leaveScope()
	cs.Attrs = p.stamp(pos)
	return cs, nil
}

// parseBlockItem distinguishes a declaration from a statement by whether the
// lookahead can start a declaration-specifier list; a GNU nested function
// definition is syntactically a declaration whose declarator is a function
// declarator immediately followed by '{' instead of ';', so that case is
// checked after the declarator is already in hand.
func (p *parser) parseBlockItem() (ast.BlockItem, *Error) {
	if p.at(token.EXTENSION) {
		if err := p.advance(); err != nil {
			return ast.BlockItem{}, err
		}
		return p.parseBlockItem()
	}
	if p.startsDeclarationSpecifier() {
		return p.parseDeclarationOrNestedFunction()
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return ast.BlockItem{}, err
	}
	return ast.BlockItem{Stmt: stmt}, nil
}
