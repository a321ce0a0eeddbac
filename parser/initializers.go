package parser

import (
	"ccparse/ast"
	"ccparse/token"
)

// parseInitializer parses the initializer of a declarator's `= ...` clause
// or a compound literal's body: either a single assignment-expression, or a
// brace-enclosed list handled by parseInitializerList.
func (p *parser) parseInitializer() (*ast.Initializer, *Error) {
	if p.at(token.LBRACE) {
		return p.parseInitializerList()
	}
	pos := p.tok.Pos
	expr, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Initializer{Expr: expr, Attrs: p.stamp(pos)}, nil
}

// parseInitializerList parses `{ designator-list? initializer (, ...)* [,] }`,
// accepting a trailing comma per §4.3.
func (p *parser) parseInitializerList() (*ast.Initializer, *Error) {
	pos := p.tok.Pos
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	var entries []ast.InitializerEntry
	for !p.at(token.RBRACE) {
		entry, err := p.parseInitializerEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		if !p.at(token.COMMA) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.Initializer{Entries: entries, Attrs: p.stamp(pos)}, nil
}

// parseInitializerEntry parses one `designator-list? initializer` entry.
// The legacy GNU form `member: value` (no leading dot, no trailing `=`) is
// lexically ambiguous against a bare identifier-initializer with only one
// token of lookahead: the parser peeks past the identifier and, finding a
// colon, commits to the legacy designator; otherwise it resumes a normal
// expression parse from the identifier it already consumed.
func (p *parser) parseInitializerEntry() (ast.InitializerEntry, *Error) {
	if p.at(token.IDENT) || p.at(token.TYPEDEF_NAME) {
		save := p.tok
		if err := p.advance(); err != nil {
			return ast.InitializerEntry{}, err
		}
		if p.at(token.COLON) {
			if err := p.advance(); err != nil {
				return ast.InitializerEntry{}, err
			}
			value, err := p.parseInitializer()
			if err != nil {
				return ast.InitializerEntry{}, err
			}
			return ast.InitializerEntry{
				Designators: []ast.Designator{{
					Kind:   ast.MemberDesignator,
					Member: ast.Identifier{Name: save.Literal, Pos: save.Pos},
					Attrs:  p.stamp(save.Pos),
				}},
				Value: value,
			}, nil
		}
		primary := &ast.VarExpr{
			Name:     ast.Identifier{Name: save.Literal, Pos: save.Pos},
			ExprBase: ast.ExprBase{Attrs: p.stamp(save.Pos)},
		}
		expr, err := p.continueAssignmentExpressionFrom(primary)
		if err != nil {
			return ast.InitializerEntry{}, err
		}
		return ast.InitializerEntry{Value: &ast.Initializer{Expr: expr, Attrs: p.stamp(save.Pos)}}, nil
	}

	designators, err := p.parseDesignatorList()
	if err != nil {
		return ast.InitializerEntry{}, err
	}
	if len(designators) > 0 {
		if _, err := p.expect(token.ASSIGN); err != nil {
			return ast.InitializerEntry{}, err
		}
	}
	value, err := p.parseInitializer()
	if err != nil {
		return ast.InitializerEntry{}, err
	}
	return ast.InitializerEntry{Designators: designators, Value: value}, nil
}

// parseDesignatorList parses a chain of `.member`, `[index]`, or the GNU
// `[lo ... hi]` range designators (e.g. `.x.y[3]`), stopping (with an empty
// result) at anything else, which leaves a bare initializer value.
func (p *parser) parseDesignatorList() ([]ast.Designator, *Error) {
	var designators []ast.Designator
	for {
		switch {
		case p.at(token.DOT):
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
		case p.at(token.LBRACKET):
			pos := p.tok.Pos
			if err := p.advance(); err != nil {
				return nil, err
			}
			low, err := p.parseConditionalExpression()
			if err != nil {
				return nil, err
			}
			if p.atRange() {
				if err := p.advance(); err != nil {
					return nil, err
				}
				high, err := p.parseConditionalExpression()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.RBRACKET); err != nil {
					return nil, err
				}
				designators = append(designators, ast.Designator{
					Kind: ast.RangeDesignator, RangeLow: low, RangeHigh: high, Attrs: p.stamp(pos),
				})
				continue
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			designators = append(designators, ast.Designator{Kind: ast.IndexDesignator, Index: low, Attrs: p.stamp(pos)})
		default:
			return designators, nil
		}
	}
}
