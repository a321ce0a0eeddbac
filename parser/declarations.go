package parser

import (
	"ccparse/ast"
	"ccparse/token"
)

// declSpecsHaveTypedef reports whether specs carries the `typedef` storage
// class, which switches every declarator it introduces from an ordinary
// identifier into a name the lexer hack must classify as TYPEDEF_NAME from
// then on.
func declSpecsHaveTypedef(specs []ast.DeclSpec) bool {
	for _, s := range specs {
		if s.Kind == ast.StorageClassSpec && s.Storage == ast.Typedef {
			return true
		}
	}
	return false
}

// parseDeclaration parses a full `specifiers declarator-list ;`, including
// its trailing semicolon. It is used everywhere a function definition
// cannot follow: struct/block-scope is handled by parseStructDeclaration
// and parseDeclarationOrFunctionDefinition respectively, but a for-loop's
// init clause and a K&R parameter declaration list both go through this
// directly.
func (p *parser) parseDeclaration() (*ast.Declaration, *Error) {
	pos := p.tok.Pos
	specs, err := p.parseDeclarationSpecifiers()
	if err != nil {
		return nil, err
	}
	isTypedef := declSpecsHaveTypedef(specs)
	var decls []ast.InitDeclarator
	if !p.at(token.SEMI) {
		for {
			leading, err := p.parseOptionalAttributes()
			if err != nil {
				return nil, err
			}
			d, err := p.parseDeclarator(identifierOrTypedefDeclarator)
			if err != nil {
				return nil, err
			}
			id, err := p.finishInitDeclarator(d, isTypedef, leading)
			if err != nil {
				return nil, err
			}
			decls = append(decls, id)
			if !p.at(token.COMMA) {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.Declaration{Specifiers: specs, Declarators: decls, Attrs: p.stamp(pos)}, nil
}

// finishInitDeclarator attaches an already-parsed declarator's optional asm
// name, trailing attributes, typedef-environment update, and initializer.
// The typedef-environment update happens here, immediately once the name is
// known and before any initializer is parsed, since an initializer's own
// tokens must already see it (consider `typedef int T; T x = (T)0;` parsed
// as one declaration list is not legal C, but the ordering still matters
// within a single declarator for e.g. a self-referential compound literal
// type use).
func (p *parser) finishInitDeclarator(d *ast.Declarator, isTypedef bool, leadingAttrs []ast.Attribute) (ast.InitDeclarator, *Error) {
	asmName, hasAsmName, err := p.parseOptionalAsmLabel()
	if err != nil {
		return ast.InitDeclarator{}, err
	}
	attrs, err := p.parseOptionalAttributes()
	if err != nil {
		return ast.InitDeclarator{}, err
	}
	if len(leadingAttrs) > 0 {
		attrs = append(append([]ast.Attribute{}, leadingAttrs...), attrs...)
	}
	if hasAsmName || len(attrs) > 0 {
		annotated, aerr := p.builder.AnnotateTopLevelDeclarator(d, asmName, hasAsmName, attrs)
		if aerr != nil {
			return ast.InitDeclarator{}, p.fail(newSemanticError(d.Position(), "%s", aerr.Error()))
		}
		d = annotated
	}
	inner := d.Innermost()
	if inner.HasName {
		if isTypedef {
			p.addTypedef(inner.Name.Name)
		} else {
			p.shadowTypedef(inner.Name.Name)
		}
	}
	var init *ast.Initializer
	if p.at(token.ASSIGN) {
		if err := p.advance(); err != nil {
			return ast.InitDeclarator{}, err
		}
		in, err := p.parseInitializer()
		if err != nil {
			return ast.InitDeclarator{}, err
		}
		init = in
	}
	return ast.InitDeclarator{Declarator: d, Initializer: init}, nil
}

// parseDeclarationOrFunctionDefinition parses one top-level or block-scope
// entity that begins with a declaration-specifier list: a plain
// declaration, or a function definition (prototype- or K&R-style). Exactly
// one of the two return values is non-nil on success.
//
// The two are disjoint on a single further lookahead once the first
// declarator is in hand: a function definition is a sole declarator whose
// direct wrapper (ast.Declarator.DirectWrapper) is a function layer,
// immediately followed by either '{' (prototype form) or a run of
// declarations terminated by '{' (K&R form, only legal when the function's
// parameter list was itself an old-style identifier list). Anything else
// — a ';', a '=', a ',', or a function-typed declarator that isn't the
// direct wrapper (e.g. `(*fp)(void)`) — is a plain declaration.
func (p *parser) parseDeclarationOrFunctionDefinition() (*ast.Declaration, *ast.FunctionDefinition, *Error) {
	pos := p.tok.Pos
	specs, err := p.parseDeclarationSpecifiers()
	if err != nil {
		return nil, nil, err
	}
	isTypedef := declSpecsHaveTypedef(specs)

	if p.at(token.SEMI) {
		if err := p.advance(); err != nil {
			return nil, nil, err
		}
		return &ast.Declaration{Specifiers: specs, Attrs: p.stamp(pos)}, nil, nil
	}

	leading, err := p.parseOptionalAttributes()
	if err != nil {
		return nil, nil, err
	}
	d, err := p.parseDeclarator(identifierOrTypedefDeclarator)
	if err != nil {
		return nil, nil, err
	}

	fnLayer := d.DirectWrapper()
	isFunctionDef := !isTypedef && fnLayer.Kind == ast.FunctionDeclaratorKind &&
		(p.at(token.LBRACE) || (fnLayer.Params != nil && fnLayer.Params.OldStyle && p.startsDeclarationSpecifier()))

	if isFunctionDef {
		if len(leading) > 0 {
			annotated, aerr := p.builder.AnnotateTopLevelDeclarator(d, "", false, leading)
			if aerr != nil {
				return nil, nil, p.fail(newSemanticError(d.Position(), "%s", aerr.Error()))
			}
			d = annotated
		}
		return p.finishFunctionDefinition(pos, specs, d, fnLayer)
	}

	id, err := p.finishInitDeclarator(d, isTypedef, leading)
	if err != nil {
		return nil, nil, err
	}
	decls := []ast.InitDeclarator{id}
	for p.at(token.COMMA) {
		if err := p.advance(); err != nil {
			return nil, nil, err
		}
		nleading, err := p.parseOptionalAttributes()
		if err != nil {
			return nil, nil, err
		}
		nd, err := p.parseDeclarator(identifierOrTypedefDeclarator)
		if err != nil {
			return nil, nil, err
		}
		nid, err := p.finishInitDeclarator(nd, isTypedef, nleading)
		if err != nil {
			return nil, nil, err
		}
		decls = append(decls, nid)
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, nil, err
	}
	return &ast.Declaration{Specifiers: specs, Declarators: decls, Attrs: p.stamp(pos)}, nil, nil
}

// finishFunctionDefinition opens the function's parameter/body scope,
// shadows every parameter name in it (so a parameter whose name happens to
// match an outer typedef is treated as an ordinary identifier for the rest
// of the body, per the declarator-chain's own scoping rules), consumes any
// K&R parameter-declaration list, then parses the body.
func (p *parser) finishFunctionDefinition(pos token.Position, specs []ast.DeclSpec, d, fnLayer *ast.Declarator) (*ast.Declaration, *ast.FunctionDefinition, *Error) {
	p.enterScope()
	if fnLayer.Params != nil {
		if fnLayer.Params.OldStyle {
			for _, id := range fnLayer.Params.Identifiers {
				p.shadowTypedef(id.Name)
			}
		} else {
			for _, pd := range fnLayer.Params.Declarations {
				if pd.Declarator == nil {
					continue
				}
				if inner := pd.Declarator.Innermost(); inner.HasName {
					p.shadowTypedef(inner.Name.Name)
				}
			}
		}
	}
	var oldStyleDecls []ast.Declaration
	for p.startsDeclarationSpecifier() {
		pd, err := p.parseDeclaration()
		if err != nil {
			p.leaveScope()
			return nil, nil, err
		}
		oldStyleDecls = append(oldStyleDecls, *pd)
	}
	body, err := p.parseCompoundStatement()
	if err != nil {
		p.leaveScope()
		return nil, nil, err
	}
	p.leaveScope()
	return nil, &ast.FunctionDefinition{
		Specifiers:         specs,
		Declarator:         d,
		OldStyleParamDecls: oldStyleDecls,
		Body:               body,
		Attrs:              p.stamp(pos),
	}, nil
}

// parseDeclarationOrNestedFunction adapts
// parseDeclarationOrFunctionDefinition's two-value result to a block item.
func (p *parser) parseDeclarationOrNestedFunction() (ast.BlockItem, *Error) {
	decl, fn, err := p.parseDeclarationOrFunctionDefinition()
	if err != nil {
		return ast.BlockItem{}, err
	}
	if fn != nil {
		return ast.BlockItem{NestedFn: fn}, nil
	}
	return ast.BlockItem{Decl: decl}, nil
}

// parseTranslationUnit is the root production: a run of external
// declarations up to end of input.
func (p *parser) parseTranslationUnit() (*ast.TranslationUnit, *Error) {
	pos := p.tok.Pos
	tu := &ast.TranslationUnit{}
	for !p.at(token.EOF) {
		ext, err := p.parseExternalDeclaration()
		if err != nil {
			return nil, err
		}
		if ext != nil {
			tu.Decls = append(tu.Decls, *ext)
		}
	}
	tu.Attrs = p.stamp(pos)
	return tu, nil
}

// parseExternalDeclaration parses one top-level entity: a function
// definition, a plain declaration, a top-level inline-assembly statement,
// a `__extension__`-wrapped instance of any of those, or a stray `;` (which
// contributes no entity).
func (p *parser) parseExternalDeclaration() (*ast.ExternalDecl, *Error) {
	if p.at(token.SEMI) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if p.at(token.EXTENSION) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseExternalDeclaration()
	}
	if p.at(token.ASM) {
		pos := p.tok.Pos
		stmt, err := p.parseAsmStatement(pos)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMI); err != nil {
			return nil, err
		}
		return &ast.ExternalDecl{Asm: stmt}, nil
	}
	decl, fn, err := p.parseDeclarationOrFunctionDefinition()
	if err != nil {
		return nil, err
	}
	if fn != nil {
		return &ast.ExternalDecl{FunctionDef: fn}, nil
	}
	return &ast.ExternalDecl{Decl: decl}, nil
}
