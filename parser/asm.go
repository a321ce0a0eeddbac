package parser

import (
	"ccparse/ast"
	"ccparse/token"
)

// parseAsmStatement parses a GNU inline-assembly statement or top-level asm
// declaration, up to but not including the trailing ';' (callers consume
// that themselves, since both a statement and an external declaration
// expect it in their own way).
func (p *parser) parseAsmStatement(pos token.Position) (*ast.AsmStmt, *Error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	volatile := false
	if p.at(token.VOLATILE) {
		volatile = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	tmpl, err := p.parseAsmTemplate()
	if err != nil {
		return nil, err
	}
	stmt := &ast.AsmStmt{Volatile: volatile, Template: tmpl, StmtBase: ast.StmtBase{Attrs: p.stamp(pos)}}
	if p.at(token.COLON) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		outs, err := p.parseAsmOperandList()
		if err != nil {
			return nil, err
		}
		stmt.Outputs = outs
		if p.at(token.COLON) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			ins, err := p.parseAsmOperandList()
			if err != nil {
				return nil, err
			}
			stmt.Inputs = ins
			if p.at(token.COLON) {
				if err := p.advance(); err != nil {
					return nil, err
				}
				clobbers, err := p.parseAsmClobberList()
				if err != nil {
					return nil, err
				}
				stmt.Clobbers = clobbers
			}
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseAsmTemplate parses one or more adjacent string-literal tokens and
// concatenates them, the same rule a primary-expression string literal
// follows.
func (p *parser) parseAsmTemplate() (string, *Error) {
	if !p.at(token.STRING_CONST) {
		return "", p.fail(newSyntaxError(p.tok.Pos, "syntax error before %s: expected string literal", p.tok))
	}
	var literals []string
	for p.at(token.STRING_CONST) {
		literals = append(literals, p.tok.Literal)
		if err := p.advance(); err != nil {
			return "", err
		}
	}
	return p.builder.ConcatStringLiterals(literals), nil
}

func (p *parser) parseAsmOperandList() ([]ast.AsmOperand, *Error) {
	if p.at(token.COLON) || p.at(token.RPAREN) {
		return nil, nil
	}
	var ops []ast.AsmOperand
	for {
		op, err := p.parseAsmOperand()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		if !p.at(token.COMMA) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return ops, nil
}

// parseAsmOperand parses `[name] "constraint" (expr)`.
func (p *parser) parseAsmOperand() (ast.AsmOperand, *Error) {
	var op ast.AsmOperand
	if p.at(token.LBRACKET) {
		if err := p.advance(); err != nil {
			return op, err
		}
		name, err := p.expectFieldName()
		if err != nil {
			return op, err
		}
		op.Name = name
		op.HasName = true
		if _, err := p.expect(token.RBRACKET); err != nil {
			return op, err
		}
	}
	constraint, err := p.parseAsmTemplate()
	if err != nil {
		return op, err
	}
	op.Constraint = constraint
	if _, err := p.expect(token.LPAREN); err != nil {
		return op, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return op, err
	}
	op.Expr = expr
	if _, err := p.expect(token.RPAREN); err != nil {
		return op, err
	}
	return op, nil
}

func (p *parser) parseAsmClobberList() ([]string, *Error) {
	if p.at(token.RPAREN) {
		return nil, nil
	}
	var clobbers []string
	for {
		if !p.at(token.STRING_CONST) {
			return nil, p.fail(newSyntaxError(p.tok.Pos, "syntax error before %s: expected string literal", p.tok))
		}
		clobbers = append(clobbers, p.tok.Literal)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.at(token.COMMA) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return clobbers, nil
}

// parseOptionalAsmLabel parses the GNU assembler-name clause that may
// follow a declarator, before any initializer: `asm ("name")` (also spelled
// `__asm__`, which the lexer folds into the same token kind).
func (p *parser) parseOptionalAsmLabel() (string, bool, *Error) {
	if !p.at(token.ASM) {
		return "", false, nil
	}
	if err := p.advance(); err != nil {
		return "", false, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return "", false, err
	}
	name, err := p.parseAsmTemplate()
	if err != nil {
		return "", false, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return "", false, err
	}
	return name, true, nil
}
