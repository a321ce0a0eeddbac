package parser

import (
	"ccparse/ast"
	"ccparse/grammar"
	"ccparse/token"
)

// parseExpression is the comma-operator entry point: `assignment-expression
// (, assignment-expression)*`.
func (p *parser) parseExpression() (ast.Expr, *Error) {
	first, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
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

var assignmentOps = map[token.Kind]string{
	token.ASSIGN: "=", token.MUL_ASSIGN: "*=", token.DIV_ASSIGN: "/=",
	token.MOD_ASSIGN: "%=", token.ADD_ASSIGN: "+=", token.SUB_ASSIGN: "-=",
	token.LEFT_ASSIGN: "<<=", token.RIGHT_ASSIGN: ">>=", token.AND_ASSIGN: "&=",
	token.XOR_ASSIGN: "^=", token.OR_ASSIGN: "|=",
}

// parseAssignmentExpression is right-associative, with the lhs restricted
// to a unary-expression-shaped conditional (stricter than gcc, per §4.3).
// Since the grammar here does not distinguish unary from conditional at
// parse time, the restriction is not enforced structurally; a semantic
// pass may reject an invalid lhs shape.
func (p *parser) parseAssignmentExpression() (ast.Expr, *Error) {
	lhs, err := p.parseConditionalExpression()
	if err != nil {
		return nil, err
	}
	return p.parseAssignmentTail(lhs)
}

// parseAssignmentTail is the `=`-or-compound-assignment continuation of an
// already-parsed conditional-expression-shaped lhs; factored out so a
// designated-initializer's legacy `member: value` form (which has already
// consumed its first identifier as a bare primary expression by the time it
// learns that identifier was not a designator) can resume the ladder from
// mid-expression instead of re-parsing from scratch.
func (p *parser) parseAssignmentTail(lhs ast.Expr) (ast.Expr, *Error) {
	op, ok := assignmentOps[p.tok.Kind]
	if !ok {
		return lhs, nil
	}
	pos := lhs.Position()
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	binOp := ""
	if op != "=" {
		binOp = grammar.ConvertAssignmentOpToBinaryOp(op)
	}
	return &ast.AssignExpr{LHS: lhs, RHS: rhs, Op: op, BinaryOp: binOp, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
}

// parseConditionalExpression handles `cond ? then : else` and its GNU
// elision `cond ?: else`, right-associatively.
func (p *parser) parseConditionalExpression() (ast.Expr, *Error) {
	cond, err := p.parseBinaryExpression(0)
	if err != nil {
		return nil, err
	}
	return p.parseConditionalTail(cond)
}

// parseConditionalTail is the `? then : else` continuation of an
// already-parsed binary-expression-shaped cond; see parseAssignmentTail.
func (p *parser) parseConditionalTail(cond ast.Expr) (ast.Expr, *Error) {
	if !p.at(token.QUESTION) {
		return cond, nil
	}
	pos := cond.Position()
	if err := p.advance(); err != nil {
		return nil, err
	}
	var then ast.Expr
	var err *Error
	if !p.at(token.COLON) {
		then, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	els, err := p.parseConditionalExpression()
	if err != nil {
		return nil, err
	}
	return &ast.TernaryExpr{Cond: cond, Then: then, Else: els, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
}

// binaryLevels is the precedence ladder from loosest (||) to tightest (%),
// one level per slice entry, each mapping the operator token kinds
// recognized at that level to their lexeme.
var binaryLevels = []map[token.Kind]string{
	{token.OROR: "||"},
	{token.ANDAND: "&&"},
	{token.PIPE: "|"},
	{token.CARET: "^"},
	{token.AMP: "&"},
	{token.EQ: "==", token.NE: "!="},
	{token.LT: "<", token.LE: "<=", token.GT: ">", token.GE: ">="},
	{token.SHL: "<<", token.SHR: ">>"},
	{token.PLUS: "+", token.MINUS: "-"},
	{token.STAR: "*", token.SLASH: "/", token.PERCENT: "%"},
}

// parseBinaryExpression implements the left-associative binary ladder
// (logical-or down to multiplicative) with a single precedence-climbing
// function instead of one hand-written function per level: level indexes
// binaryLevels, and level == len(binaryLevels) bottoms out at cast-expression.
func (p *parser) parseBinaryExpression(level int) (ast.Expr, *Error) {
	if level == len(binaryLevels) {
		return p.parseCastExpression()
	}
	lhs, err := p.parseBinaryExpression(level + 1)
	if err != nil {
		return nil, err
	}
	ops := binaryLevels[level]
	for {
		op, ok := ops[p.tok.Kind]
		if !ok {
			return lhs, nil
		}
		pos := lhs.Position()
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseBinaryExpression(level + 1)
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{LHS: lhs, RHS: rhs, Op: op, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}
	}
}

// climbBinaryLevels runs the binary-operator ladder's loop at every level,
// tightest to loosest, starting from an already-parsed cast-expression-level
// operand instead of descending into parseCastExpression for it. Used by
// continueAssignmentExpressionFrom.
func (p *parser) climbBinaryLevels(operand ast.Expr) (ast.Expr, *Error) {
	lhs := operand
	for level := len(binaryLevels) - 1; level >= 0; level-- {
		ops := binaryLevels[level]
		for {
			op, ok := ops[p.tok.Kind]
			if !ok {
				break
			}
			pos := lhs.Position()
			if err := p.advance(); err != nil {
				return nil, err
			}
			rhs, err := p.parseBinaryExpression(level + 1)
			if err != nil {
				return nil, err
			}
			lhs = &ast.BinaryExpr{LHS: lhs, RHS: rhs, Op: op, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}
		}
	}
	return lhs, nil
}

// continueAssignmentExpressionFrom resumes a full assignment-expression
// parse (postfix, then the binary ladder, then conditional, then assignment)
// given a primary expression that has already been consumed as a bare token
// — the shape an initializer entry's legacy designator lookahead leaves
// behind when the identifier it peeked at turns out not to be followed by
// a colon.
func (p *parser) continueAssignmentExpressionFrom(primary ast.Expr) (ast.Expr, *Error) {
	post, err := p.parsePostfixTail(primary)
	if err != nil {
		return nil, err
	}
	climbed, err := p.climbBinaryLevels(post)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseConditionalTail(climbed)
	if err != nil {
		return nil, err
	}
	return p.parseAssignmentTail(cond)
}

// parseCastExpression distinguishes `(type-name) cast-expression` from a
// parenthesized expression by whether the token after '(' can start a
// type-name (grammar.StartsTypeName), the documented cast-vs-paren-expr
// ambiguity.
func (p *parser) parseCastExpression() (ast.Expr, *Error) {
	if !p.at(token.LPAREN) {
		return p.parseUnaryExpression()
	}
	pos := p.tok.Pos
	if err := p.advance(); err != nil {
		return nil, err
	}
	// The single token of lookahead now sitting past '(' is exactly what
	// decides cast-vs-paren-expr: a type-name starter commits to a cast (or
	// compound literal), anything else means '(' opened a parenthesized
	// expression that must now be finished and have postfix operators
	// applied, since the monad gives no backtracking.
	if !grammar.StartsTypeName(token.KindName(p.tok.Kind)) {
		return p.finishParenExpressionThenPostfix(pos)
	}
	tn, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if p.at(token.LBRACE) {
		init, err := p.parseInitializerList()
		if err != nil {
			return nil, err
		}
		return &ast.CompoundLiteralExpr{Type: tn, Initializer: init, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
	}
	operand, err := p.parseCastExpression()
	if err != nil {
		return nil, err
	}
	return &ast.CastExpr{Type: tn, Expr: operand, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
}

func (p *parser) parseUnaryExpression() (ast.Expr, *Error) {
	pos := p.tok.Pos
	switch p.tok.Kind {
	case token.INC, token.DEC:
		op := ast.PreInc
		if p.tok.Kind == token.DEC {
			op = ast.PreDec
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnaryExpression()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Operand: operand, Op: op, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
	case token.AMP, token.STAR, token.PLUS, token.MINUS, token.TILDE, token.NOT:
		op := unaryOpFor(p.tok.Kind)
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseCastExpression()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Operand: operand, Op: op, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
	case token.SIZEOF:
		return p.parseSizeofOrAlignof(pos, false)
	case token.ALIGNOF:
		return p.parseSizeofOrAlignof(pos, true)
	case token.ANDAND:
		// GNU label-address `&&label`.
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		return &ast.LabelAddressExpr{Label: ast.Identifier{Name: name.Literal, Pos: name.Pos}, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
	case token.REAL, token.IMAG:
		imag := p.tok.Kind == token.IMAG
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseCastExpression()
		if err != nil {
			return nil, err
		}
		return &ast.ComplexPartExpr{Operand: operand, Imag: imag, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
	case token.BUILTIN_VA_ARG:
		return p.parseBuiltinVaArg(pos)
	case token.BUILTIN_OFFSETOF:
		return p.parseBuiltinOffsetof(pos)
	case token.BUILTIN_TYPES_COMPATIBLE_P:
		return p.parseBuiltinTypesCompatible(pos)
	case token.EXTENSION:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseCastExpression()
	default:
		return p.parsePostfixExpression()
	}
}

func unaryOpFor(k token.Kind) ast.UnaryOp {
	switch k {
	case token.AMP:
		return ast.AddressOf
	case token.STAR:
		return ast.Indirection
	case token.PLUS:
		return ast.UnaryPlus
	case token.MINUS:
		return ast.UnaryMinus
	case token.TILDE:
		return ast.BitwiseNot
	case token.NOT:
		return ast.LogicalNot
	}
	panic("parser: unreachable unary operator")
}

func (p *parser) parseSizeofOrAlignof(pos token.Position, isAlignof bool) (ast.Expr, *Error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.at(token.LPAREN) {
		save := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		if grammar.StartsTypeName(token.KindName(p.tok.Kind)) {
			tn, err := p.parseTypeName()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			if isAlignof {
				return &ast.AlignofTypeExpr{Type: tn, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
			}
			return &ast.SizeofTypeExpr{Type: tn, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
		}
		// Not a type-name: this '(' starts a parenthesized expression that
		// is the sizeof/alignof operand; reparse it as a unary-expression
		// starting from the already-consumed '(' by delegating to
		// parsePostfixExpression's primary-expression paren handling.
		operand, err := p.finishParenExpressionThenPostfix(save.Pos)
		if err != nil {
			return nil, err
		}
		if isAlignof {
			return &ast.AlignofExprExpr{Operand: operand, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
		}
		return &ast.SizeofExprExpr{Operand: operand, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
	}
	operand, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}
	if isAlignof {
		return &ast.AlignofExprExpr{Operand: operand, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
	}
	return &ast.SizeofExprExpr{Operand: operand, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
}

// finishParenExpressionThenPostfix parses the remainder of an already-open
// parenthesized expression or GNU statement-expression (the '(' has been
// consumed and the current lookahead is its first token) and applies any
// trailing postfix operators. Every site that has already committed to "not
// a cast/sizeof/alignof type-name" funnels through here, so a statement
// expression is recognized no matter which of those call sites' '(' it
// followed — a plain `(expr)` and `({ stmts; })` are otherwise
// indistinguishable with one token of lookahead past '('.
func (p *parser) finishParenExpressionThenPostfix(parenPos token.Position) (ast.Expr, *Error) {
	if p.at(token.LBRACE) {
		body, err := p.parseCompoundStatement()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return p.parsePostfixTail(&ast.StatementExpr{Body: body, ExprBase: ast.ExprBase{Attrs: p.stamp(parenPos)}})
	}
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return p.parsePostfixTail(inner)
}

func (p *parser) parseBuiltinVaArg(pos token.Position) (ast.Expr, *Error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	list, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COMMA); err != nil {
		return nil, err
	}
	tn, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.BuiltinVaArgExpr{List: list, Type: tn, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
}

func (p *parser) parseBuiltinOffsetof(pos token.Position) (ast.Expr, *Error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	tn, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COMMA); err != nil {
		return nil, err
	}
	designators, err := p.parseOffsetofMemberDesignator()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.BuiltinOffsetofExpr{Type: tn, Designators: designators, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
}

// parseOffsetofMemberDesignator parses `a.b[3]`-shaped designator chains,
// the form __builtin_offsetof's second argument takes.
func (p *parser) parseOffsetofMemberDesignator() ([]ast.Designator, *Error) {
	firstPos := p.tok.Pos
	first, err := p.expectFieldName()
	if err != nil {
		return nil, err
	}
	designators := []ast.Designator{{
		Kind:   ast.MemberDesignator,
		Member: first,
		Attrs:  p.stamp(firstPos),
	}}
	for {
		switch p.tok.Kind {
		case token.DOT:
			pos := p.tok.Pos
			if err := p.advance(); err != nil {
				return nil, err
			}
			name, err := p.expectFieldName()
			if err != nil {
				return nil, err
			}
			designators = append(designators, ast.Designator{
				Kind: ast.MemberDesignator, Member: name, Attrs: p.stamp(pos),
			})
		case token.LBRACKET:
			pos := p.tok.Pos
			if err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			designators = append(designators, ast.Designator{Kind: ast.IndexDesignator, Index: idx, Attrs: p.stamp(pos)})
		default:
			return designators, nil
		}
	}
}

func (p *parser) parseBuiltinTypesCompatible(pos token.Position) (ast.Expr, *Error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	t1, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COMMA); err != nil {
		return nil, err
	}
	t2, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.BuiltinTypesCompatibleExpr{Type1: t1, Type2: t2, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
}

func (p *parser) parsePostfixExpression() (ast.Expr, *Error) {
	primary, err := p.parsePrimaryExpression()
	if err != nil {
		return nil, err
	}
	return p.parsePostfixTail(primary)
}

func (p *parser) parsePostfixTail(base ast.Expr) (ast.Expr, *Error) {
	for {
		pos := base.Position()
		switch p.tok.Kind {
		case token.LBRACKET:
			if err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			base = &ast.IndexExpr{Base: base, Index: idx, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}
		case token.LPAREN:
			if err := p.advance(); err != nil {
				return nil, err
			}
			var args []ast.Expr
			if !p.at(token.RPAREN) {
				var err *Error
				args, err = p.parseArgumentExpressionList()
				if err != nil {
					return nil, err
				}
			}
			if _, err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			base = &ast.CallExpr{Callee: base, Args: args, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}
		case token.DOT, token.ARROW:
			arrow := p.tok.Kind == token.ARROW
			if err := p.advance(); err != nil {
				return nil, err
			}
			name, err := p.expectFieldName()
			if err != nil {
				return nil, err
			}
			base = &ast.MemberExpr{Base: base, Field: name, Arrow: arrow, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}
		case token.INC, token.DEC:
			op := ast.PostInc
			if p.tok.Kind == token.DEC {
				op = ast.PostDec
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			base = &ast.UnaryExpr{Operand: base, Op: op, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}
		default:
			return base, nil
		}
	}
}

func (p *parser) parseArgumentExpressionList() ([]ast.Expr, *Error) {
	first, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	args := []ast.Expr{first}
	for p.at(token.COMMA) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
	return args, nil
}

func (p *parser) parsePrimaryExpression() (ast.Expr, *Error) {
	pos := p.tok.Pos
	switch p.tok.Kind {
	case token.IDENT:
		t := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.VarExpr{Name: ast.Identifier{Name: t.Literal, Pos: t.Pos}, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
	case token.INT_CONST:
		t := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.ConstantExpr{Kind: ast.IntConstant, Literal: t.Literal, IntSuffix: t.IntSuffix, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
	case token.FLOAT_CONST:
		t := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.ConstantExpr{Kind: ast.FloatConstant, Literal: t.Literal, FloatSuffix: t.FloatSuffix, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
	case token.CHAR_CONST:
		t := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.ConstantExpr{Kind: ast.CharConstant, Literal: t.Literal, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
	case token.STRING_CONST:
		literals := []string{p.tok.Literal}
		if err := p.advance(); err != nil {
			return nil, err
		}
		for p.at(token.STRING_CONST) {
			literals = append(literals, p.tok.Literal)
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		joined := p.builder.ConcatStringLiterals(literals)
		return &ast.ConstantExpr{Kind: ast.StringConstant, Literal: joined, ExprBase: ast.ExprBase{Attrs: p.stamp(pos)}}, nil
	case token.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.finishParenExpressionThenPostfix(pos)
	default:
		return nil, p.fail(newSyntaxError(p.tok.Pos, "syntax error before %s: expected expression", p.tok))
	}
}
