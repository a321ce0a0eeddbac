package parser

import (
	"ccparse/ast"
	"ccparse/token"
)

// parseOptionalAttributes parses zero or more back-to-back
// `__attribute__ ((...))` specifiers, as they may legally stack at most of
// the attachment points listed in §4.3 (after a struct/union/enum tag,
// after its closing brace, before a declarator, ...).
func (p *parser) parseOptionalAttributes() ([]ast.Attribute, *Error) {
	var all []ast.Attribute
	for p.at(token.ATTRIBUTE) {
		attrs, err := p.parseAttributeSpecifier()
		if err != nil {
			return nil, err
		}
		all = append(all, attrs...)
	}
	return all, nil
}

// parseAttributeSpecifier parses one `__attribute__ (( attribute-list ))`,
// where attribute-list is a comma-separated sequence of zero or more items:
// empty (ignored), a bare identifier, an identifier with a parenthesized
// argument list, or the keyword `const` (special-cased to the attribute
// name "const", since it would otherwise collide with the type-qualifier
// keyword).
func (p *parser) parseAttributeSpecifier() ([]ast.Attribute, *Error) {
	if _, err := p.expect(token.ATTRIBUTE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var attrs []ast.Attribute
	for !p.at(token.RPAREN) {
		if p.at(token.COMMA) {
			// An empty item between two commas contributes nothing.
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		a, err := p.parseAttributeItem()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
		if p.at(token.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return attrs, nil
}

func (p *parser) parseAttributeItem() (ast.Attribute, *Error) {
	pos := p.tok.Pos
	var name ast.Identifier
	switch {
	case p.at(token.CONST):
		name = ast.Identifier{Name: "const", Pos: pos}
		if err := p.advance(); err != nil {
			return ast.Attribute{}, err
		}
	case p.at(token.IDENT) || p.at(token.TYPEDEF_NAME):
		name = p.ident()
		if err := p.advance(); err != nil {
			return ast.Attribute{}, err
		}
	default:
		return ast.Attribute{}, p.fail(newSyntaxError(pos, "syntax error before %s: expected attribute name", p.tok))
	}
	var args []ast.Expr
	if p.at(token.LPAREN) {
		if err := p.advance(); err != nil {
			return ast.Attribute{}, err
		}
		if !p.at(token.RPAREN) {
			as, err := p.parseArgumentExpressionList()
			if err != nil {
				return ast.Attribute{}, err
			}
			args = as
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return ast.Attribute{}, err
		}
	}
	return ast.Attribute{Name: name, Arguments: args, Attrs: p.stamp(pos)}, nil
}
