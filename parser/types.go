package parser

import (
	"ccparse/ast"
	"ccparse/token"
)

// storageClassKinds / qualifierKinds / basicTypeKinds map keyword tokens to
// their AST-level classification, used by parseDeclarationSpecifiers to
// stay table-driven instead of one hand-written branch per keyword.
var storageClassKinds = map[token.Kind]ast.StorageClass{
	token.TYPEDEF: ast.Typedef, token.EXTERN: ast.Extern, token.STATIC: ast.Static,
	token.AUTO: ast.Auto, token.REGISTER: ast.Register, token.THREAD_LOCAL: ast.ThreadLocal,
}

var qualifierKinds = map[token.Kind]ast.TypeQualifierKind{
	token.CONST: ast.Const, token.VOLATILE: ast.Volatile,
	token.RESTRICT: ast.Restrict, token.INLINE: ast.Inline,
}

var basicTypeKinds = map[token.Kind]ast.BasicTypeKind{
	token.VOID: ast.Void, token.CHAR: ast.Char, token.SHORT: ast.Short,
	token.INT: ast.Int, token.LONG: ast.Long, token.FLOAT: ast.Float,
	token.DOUBLE: ast.Double, token.SIGNED: ast.Signed, token.UNSIGNED: ast.Unsigned,
	token.BOOL: ast.Bool, token.COMPLEX: ast.Complex,
}

// startsDeclarationSpecifier reports whether the lookahead can begin a
// declaration-specifier list: any of the storage/qualifier/basic-type
// keyword tables above, a typedef-name, struct/union/enum, typeof, or a
// GNU attribute.
func (p *parser) startsDeclarationSpecifier() bool {
	if _, ok := storageClassKinds[p.tok.Kind]; ok {
		return true
	}
	if p.tok.Kind.IsTypeQualifierKeyword() {
		return true
	}
	if _, ok := basicTypeKinds[p.tok.Kind]; ok {
		return true
	}
	switch p.tok.Kind {
	case token.TYPEDEF_NAME, token.STRUCT, token.UNION, token.ENUM, token.TYPEOF, token.ATTRIBUTE:
		return true
	}
	return false
}

// parseDeclarationSpecifiers parses a permutation of storage-classes,
// type-qualifiers, and type-specifiers (§4.3's "declaration specifier
// permutations"). Unlike the teacher's four-nonterminal factoring (which
// exists purely to keep an LALR grammar unambiguous), a recursive-descent
// loop can simply append one specifier at a time, in source order,
// and stop at the first lookahead that cannot extend it — the ambiguity
// that factoring resolves does not exist once the engine has one token of
// lookahead and no table-driven shift/reduce conflicts to avoid. Atomic
// GNU attributes are folded in via Builder.LiftSpecifierAttributes as they
// are seen, wherever they appear in the list.
//
// sawTypeName tracks whether a basic/struct/union/enum/typedef/typeof
// specifier has been seen yet. Once one has, a typedef-name ends the list
// instead of being consumed (it is the following declarator's identifier);
// further basic-type, struct/union/enum, and typeof specifiers are still
// consumed, which is what lets combinations like `unsigned long int` through.
func (p *parser) parseDeclarationSpecifiers() ([]ast.DeclSpec, *Error) {
	return p.parseDeclarationSpecifiersInto(nil)
}

func (p *parser) parseDeclarationSpecifiersInto(seed []ast.DeclSpec) ([]ast.DeclSpec, *Error) {
	specs := append([]ast.DeclSpec(nil), seed...)
	sawTypeName := false
	for {
		pos := p.tok.Pos
		if sc, ok := storageClassKinds[p.tok.Kind]; ok {
			if err := p.advance(); err != nil {
				return nil, err
			}
			specs = append(specs, ast.DeclSpec{Kind: ast.StorageClassSpec, Storage: sc, Attrs: p.stamp(pos)})
			continue
		}
		if qk, ok := qualifierKinds[p.tok.Kind]; ok {
			if err := p.advance(); err != nil {
				return nil, err
			}
			specs = append(specs, ast.DeclSpec{Kind: ast.TypeQualifierSpec, Qualifier: ast.TypeQualifier{Kind: qk}, Attrs: p.stamp(pos)})
			continue
		}
		if p.at(token.ATTRIBUTE) {
			attrs, err := p.parseAttributeSpecifier()
			if err != nil {
				return nil, err
			}
			specs = p.builder.LiftSpecifierAttributes(specs, attrs, pos)
			continue
		}
		if bk, ok := basicTypeKinds[p.tok.Kind]; ok {
			if err := p.advance(); err != nil {
				return nil, err
			}
			specs = append(specs, ast.DeclSpec{Kind: ast.BasicTypeSpec, Basic: bk, Attrs: p.stamp(pos)})
			sawTypeName = true
			continue
		}
		if p.at(token.STRUCT) || p.at(token.UNION) {
			su, err := p.parseStructOrUnionSpecifier()
			if err != nil {
				return nil, err
			}
			specs = append(specs, ast.DeclSpec{Kind: ast.StructOrUnionSpec, StructOrUnion: su, Attrs: p.stamp(pos)})
			sawTypeName = true
			continue
		}
		if p.at(token.ENUM) {
			es, err := p.parseEnumSpecifier()
			if err != nil {
				return nil, err
			}
			specs = append(specs, ast.DeclSpec{Kind: ast.EnumSpecKind, Enum: es, Attrs: p.stamp(pos)})
			sawTypeName = true
			continue
		}
		if p.at(token.TYPEOF) {
			ts, err := p.parseTypeofSpecifier(pos)
			if err != nil {
				return nil, err
			}
			specs = append(specs, ts)
			sawTypeName = true
			continue
		}
		if p.at(token.TYPEDEF_NAME) && !sawTypeName {
			name := p.ident()
			if err := p.advance(); err != nil {
				return nil, err
			}
			specs = append(specs, ast.DeclSpec{Kind: ast.TypedefNameSpec, TypedefName: name, Attrs: p.stamp(pos)})
			sawTypeName = true
			continue
		}
		break
	}
	if len(specs) == 0 {
		return nil, p.fail(newSyntaxError(p.tok.Pos, "syntax error before %s: expected a declaration specifier", p.tok))
	}
	return specs, nil
}

func (p *parser) parseTypeofSpecifier(pos token.Position) (ast.DeclSpec, *Error) {
	if err := p.advance(); err != nil {
		return ast.DeclSpec{}, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return ast.DeclSpec{}, err
	}
	if p.startsDeclarationSpecifier() {
		tn, err := p.parseTypeName()
		if err != nil {
			return ast.DeclSpec{}, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return ast.DeclSpec{}, err
		}
		return ast.DeclSpec{Kind: ast.TypeofTypeSpec, TypeofType: tn, Attrs: p.stamp(pos)}, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return ast.DeclSpec{}, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return ast.DeclSpec{}, err
	}
	return ast.DeclSpec{Kind: ast.TypeofExprSpec, TypeofExpr: expr, Attrs: p.stamp(pos)}, nil
}

// parseStructOrUnionSpecifier parses `struct|union [attrs] [tag] [{ fields }]`.
func (p *parser) parseStructOrUnionSpecifier() (*ast.StructOrUnionSpecifier, *Error) {
	pos := p.tok.Pos
	tag := ast.StructTag
	if p.at(token.UNION) {
		tag = ast.UnionTag
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	attrs, err := p.parseOptionalAttributes()
	if err != nil {
		return nil, err
	}
	spec := &ast.StructOrUnionSpecifier{Tag: tag, Attributes: attrs, Attrs: p.stamp(pos)}
	if p.at(token.IDENT) || p.at(token.TYPEDEF_NAME) {
		spec.Name = p.ident()
		spec.HasName = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.at(token.LBRACE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		fields, err := p.parseStructDeclarationList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACE); err != nil {
			return nil, err
		}
		spec.Fields = fields
		spec.HasFields = true
		more, err := p.parseOptionalAttributes()
		if err != nil {
			return nil, err
		}
		spec.Attributes = append(spec.Attributes, more...)
	} else if !spec.HasName {
		return nil, p.fail(newSyntaxError(p.tok.Pos, "syntax error before %s: expected struct/union tag or body", p.tok))
	}
	return spec, nil
}

func (p *parser) parseStructDeclarationList() ([]ast.FieldDeclaration, *Error) {
	var decls []ast.FieldDeclaration
	for !p.at(token.RBRACE) {
		if p.at(token.SEMI) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		fd, err := p.parseStructDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, fd)
	}
	return decls, nil
}

func (p *parser) parseStructDeclaration() (ast.FieldDeclaration, *Error) {
	pos := p.tok.Pos
	specs, err := p.parseDeclarationSpecifiers()
	if err != nil {
		return ast.FieldDeclaration{}, err
	}
	var fds []ast.FieldDeclarator
	for {
		fd, err := p.parseStructFieldDeclarator()
		if err != nil {
			return ast.FieldDeclaration{}, err
		}
		fds = append(fds, fd)
		if !p.at(token.COMMA) {
			break
		}
		if err := p.advance(); err != nil {
			return ast.FieldDeclaration{}, err
		}
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return ast.FieldDeclaration{}, err
	}
	return ast.FieldDeclaration{Specifiers: specs, Declarators: fds, Attrs: p.stamp(pos)}, nil
}

// parseStructFieldDeclarator parses one comma-separated entry of a field
// declaration: `[attrs] [declarator] [: bit-width] [attrs]`. Both attribute
// positions funnel into the same FieldDeclarator.Attributes slot, since an
// unnamed bit-field has no declarator of its own to carry them on.
func (p *parser) parseStructFieldDeclarator() (ast.FieldDeclarator, *Error) {
	leading, err := p.parseOptionalAttributes()
	if err != nil {
		return ast.FieldDeclarator{}, err
	}
	var decl *ast.Declarator
	if !p.at(token.COLON) {
		d, err := p.parseDeclarator(identifierOrTypedefDeclarator)
		if err != nil {
			return ast.FieldDeclarator{}, err
		}
		decl = d
	}
	var width ast.Expr
	if p.at(token.COLON) {
		if err := p.advance(); err != nil {
			return ast.FieldDeclarator{}, err
		}
		w, err := p.parseConditionalExpression()
		if err != nil {
			return ast.FieldDeclarator{}, err
		}
		width = w
	}
	trailing, err := p.parseOptionalAttributes()
	if err != nil {
		return ast.FieldDeclarator{}, err
	}
	attrs := append(leading, trailing...)
	return ast.FieldDeclarator{Declarator: decl, BitWidth: width, Attributes: attrs}, nil
}

func (p *parser) parseEnumSpecifier() (*ast.EnumSpecifier, *Error) {
	pos := p.tok.Pos
	if err := p.advance(); err != nil {
		return nil, err
	}
	attrs, err := p.parseOptionalAttributes()
	if err != nil {
		return nil, err
	}
	spec := &ast.EnumSpecifier{Attributes: attrs, Attrs: p.stamp(pos)}
	if p.at(token.IDENT) || p.at(token.TYPEDEF_NAME) {
		spec.Name = p.ident()
		spec.HasName = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.at(token.LBRACE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		members, err := p.parseEnumeratorList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACE); err != nil {
			return nil, err
		}
		spec.Members = members
		spec.HasMembers = true
		more, err := p.parseOptionalAttributes()
		if err != nil {
			return nil, err
		}
		spec.Attributes = append(spec.Attributes, more...)
	} else if !spec.HasName {
		return nil, p.fail(newSyntaxError(p.tok.Pos, "syntax error before %s: expected enum tag or body", p.tok))
	}
	return spec, nil
}

func (p *parser) parseEnumeratorList() ([]ast.Enumerator, *Error) {
	var members []ast.Enumerator
	for {
		name, err := p.expectFieldName()
		if err != nil {
			return nil, err
		}
		e := ast.Enumerator{Name: name}
		if p.at(token.ASSIGN) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			val, err := p.parseConditionalExpression()
			if err != nil {
				return nil, err
			}
			e.Value = val
		}
		members = append(members, e)
		if !p.at(token.COMMA) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.at(token.RBRACE) {
			break
		}
	}
	return members, nil
}

// parseTypeName parses a specifier-qualifier list plus an optional
// abstract declarator, used in casts, sizeof/alignof, compound-literal
// types, and typeof.
func (p *parser) parseTypeName() (*ast.TypeName, *Error) {
	pos := p.tok.Pos
	specs, err := p.parseDeclarationSpecifiers()
	if err != nil {
		return nil, err
	}
	var decl *ast.Declarator
	if p.at(token.STAR) || p.at(token.LPAREN) || p.at(token.LBRACKET) {
		d, err := p.parseDeclarator(abstractDeclarator)
		if err != nil {
			return nil, err
		}
		decl = d
	}
	return &ast.TypeName{Specifiers: specs, Declarator: decl, Attrs: p.stamp(pos)}, nil
}

// declaratorFamily selects which of §4.3's four mutually exclusive
// declarator non-terminals parseDeclarator builds. A hand-written
// recursive-descent engine does not need four separate grammars to stay
// unambiguous (that separation exists to keep an LALR table conflict-free);
// it needs only to know, at the one place it matters (must the core name
// be an identifier, a typedef-name, both, or neither), what the core is
// allowed to consume.
type declaratorFamily int

const (
	identifierDeclarator declaratorFamily = iota
	identifierOrTypedefDeclarator
	abstractDeclarator
	// parameterDeclarator accepts an identifier or typedef-name core if one
	// is present and falls back to the empty abstract core otherwise. A
	// parameter's name, if any, can be arbitrarily many pointer/array/
	// function layers deep (`int *p`, `int (*fp)(void)`, ...), so the
	// identifier-vs-abstract choice cannot be made once from the lookahead
	// immediately after the specifiers — it has to stay available at
	// whatever depth parseDirectDeclarator's core actually is, which is
	// exactly what a single family threaded through the recursion gives.
	parameterDeclarator
)

// parseDeclarator parses a pointer/array/function declarator chain around
// a core name per family, outside-in for pointers and left-to-right for
// array/function postfixes, composing by wrapping the inner declarator
// (§4.3's "declarator chains").
func (p *parser) parseDeclarator(family declaratorFamily) (*ast.Declarator, *Error) {
	pos := p.tok.Pos
	if p.at(token.STAR) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		quals, err := p.parseTypeQualifierList()
		if err != nil {
			return nil, err
		}
		inner, err := p.parseDeclarator(family)
		if err != nil {
			return nil, err
		}
		return &ast.Declarator{Kind: ast.PointerDeclaratorKind, Inner: inner, Qualifiers: quals, Attrs: p.stamp(pos)}, nil
	}
	return p.parseDirectDeclarator(family)
}

func (p *parser) parseTypeQualifierList() ([]ast.TypeQualifier, *Error) {
	var quals []ast.TypeQualifier
	for {
		if qk, ok := qualifierKinds[p.tok.Kind]; ok {
			if err := p.advance(); err != nil {
				return nil, err
			}
			quals = append(quals, ast.TypeQualifier{Kind: qk})
			continue
		}
		if p.at(token.ATTRIBUTE) {
			attrs, err := p.parseAttributeSpecifier()
			if err != nil {
				return nil, err
			}
			quals = append(quals, ast.TypeQualifier{Kind: ast.AttributeQualifier, Attributes: attrs})
			continue
		}
		return quals, nil
	}
}

// parseDirectDeclarator parses the core (identifier/typedef-name/nothing,
// or a parenthesized nested declarator) and then folds in left-to-right
// array and function postfixes.
func (p *parser) parseDirectDeclarator(family declaratorFamily) (*ast.Declarator, *Error) {
	pos := p.tok.Pos
	var core *ast.Declarator
	switch {
	case p.at(token.IDENT) && family != abstractDeclarator:
		name := p.ident()
		if err := p.advance(); err != nil {
			return nil, err
		}
		core = &ast.Declarator{Kind: ast.VariableDeclaratorKind, Name: name, HasName: true, Attrs: p.stamp(pos)}
	case p.at(token.TYPEDEF_NAME) && (family == identifierOrTypedefDeclarator || family == parameterDeclarator):
		name := p.ident()
		if err := p.advance(); err != nil {
			return nil, err
		}
		core = &ast.Declarator{Kind: ast.VariableDeclaratorKind, Name: name, HasName: true, Attrs: p.stamp(pos)}
	case p.at(token.LPAREN):
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseDeclarator(family)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		core = inner
	default:
		if family == abstractDeclarator || family == parameterDeclarator {
			core = &ast.Declarator{Kind: ast.VariableDeclaratorKind, Attrs: p.stamp(pos)}
		} else {
			return nil, p.fail(newSyntaxError(p.tok.Pos, "syntax error before %s: expected declarator", p.tok))
		}
	}
	return p.parseDeclaratorPostfixes(core, family)
}

// declaratorLayer is one already-parsed array/function postfix, captured
// with its stamp at the point its tokens were read (preserving the parse's
// unique-id allocation order) but not yet attached to anything: it is
// applied later, by wrap, once the whole run of postfixes has been read.
type declaratorLayer struct {
	wrap func(inner *ast.Declarator) *ast.Declarator
}

// parseDeclaratorPostfixes parses zero or more trailing `[...]`/`(...)`
// postfixes and folds them, left to right, around core as a whole (§4.4's
// declarator-chain folding). When core is a parenthesized nested declarator
// the postfixes wrap that whole group: `(*fp)(void)` yields a function
// layer around fp's pointer layer, while `*f(void)` yields a pointer layer
// around f's function layer.
func (p *parser) parseDeclaratorPostfixes(core *ast.Declarator, family declaratorFamily) (*ast.Declarator, *Error) {
	var layers []declaratorLayer
	for {
		pos := p.tok.Pos
		switch {
		case p.at(token.LBRACKET):
			if err := p.advance(); err != nil {
				return nil, err
			}
			quals, size, hasSize, err := p.parseArraySizeClause()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			attrs := p.stamp(pos)
			layers = append(layers, declaratorLayer{wrap: func(inner *ast.Declarator) *ast.Declarator {
				return &ast.Declarator{Kind: ast.ArrayDeclaratorKind, Inner: inner, Qualifiers: quals, Size: size, HasSize: hasSize, Attrs: attrs}
			}})
		case p.at(token.LPAREN):
			if err := p.advance(); err != nil {
				return nil, err
			}
			params, err := p.parseParameters()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			attrs := p.stamp(pos)
			layers = append(layers, declaratorLayer{wrap: func(inner *ast.Declarator) *ast.Declarator {
				return &ast.Declarator{Kind: ast.FunctionDeclaratorKind, Inner: inner, Params: params, Attrs: attrs}
			}})
		default:
			wrapped := core
			for _, l := range layers {
				wrapped = l.wrap(wrapped)
			}
			return wrapped, nil
		}
	}
}

// parseArraySizeClause parses the optional `static`/qualifier prefix and
// size expression inside `[ ... ]`. The C99 `static` marker is accepted
// and discarded, per the documented decision to preserve that information
// loss rather than invent a new AST slot for it (see the project's design
// notes on this point).
func (p *parser) parseArraySizeClause() ([]ast.TypeQualifier, ast.Expr, bool, *Error) {
	// Leading `static`.
	if p.at(token.STATIC) {
		if err := p.advance(); err != nil {
			return nil, nil, false, err
		}
	}
	quals, err := p.parseTypeQualifierList()
	if err != nil {
		return nil, nil, false, err
	}
	// A `static` may also follow the qualifier list.
	if p.at(token.STATIC) {
		if err := p.advance(); err != nil {
			return nil, nil, false, err
		}
	}
	if p.at(token.RBRACKET) {
		return quals, nil, false, nil
	}
	if p.at(token.STAR) {
		// Unspecified VLA size `[*]`: accepted syntactically, recorded as
		// an unsized array since no downstream pass in this core needs to
		// distinguish it from `[]`.
		if err := p.advance(); err != nil {
			return nil, nil, false, err
		}
		return quals, nil, false, nil
	}
	size, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, nil, false, err
	}
	return quals, size, true, nil
}

func (p *parser) parseParameters() (*ast.Parameters, *Error) {
	if p.at(token.RPAREN) {
		return &ast.Parameters{}, nil
	}
	// An old-style (K&R) identifier list is a comma-separated run of plain
	// identifiers with no type information; a prototype list always has a
	// specifier starting each entry (or is exactly `void`). These shapes
	// are disjoint on the very first token, so one token of lookahead
	// decides it.
	if p.at(token.IDENT) {
		return p.parseOldStyleIdentifierList()
	}
	if p.at(token.VOID) {
		// Could be `(void)` (no parameters) or `(void *p)`, `(void a[])`,
		// etc; only a bare `void)` means no parameters. In every other
		// case the `void` already consumed is just this first parameter's
		// type-specifier, not a finished parameter on its own — it seeds
		// the normal specifier-then-declarator parse so a declarator
		// following it (`*p`) still gets parsed.
		pos := p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.at(token.RPAREN) {
			return &ast.Parameters{}, nil
		}
		seed := []ast.DeclSpec{{Kind: ast.BasicTypeSpec, Basic: ast.Void, Attrs: p.stamp(pos)}}
		return p.parseParameterTypeList(seed, pos)
	}
	return p.parseParameterTypeList(nil, p.tok.Pos)
}

func (p *parser) parseOldStyleIdentifierList() (*ast.Parameters, *Error) {
	var idents []ast.Identifier
	for {
		name, err := p.expectFieldName()
		if err != nil {
			return nil, err
		}
		idents = append(idents, name)
		if !p.at(token.COMMA) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return &ast.Parameters{OldStyle: true, Identifiers: idents}, nil
}

// parseParameterTypeList parses a prototype parameter list. seed, if
// non-nil, is a declaration-specifier list already parsed for the first
// parameter (currently only ever a single leading `void`) at seedPos; the
// first parameter continues from there through parseDeclarationSpecifiersInto
// so any declarator following the seed is still parsed, instead of treating
// the seed alone as a finished parameter.
func (p *parser) parseParameterTypeList(seed []ast.DeclSpec, seedPos token.Position) (*ast.Parameters, *Error) {
	first, err := p.parseParameterDeclarationFrom(seed, seedPos)
	if err != nil {
		return nil, err
	}
	decls := []ast.ParameterDeclaration{first}
	variadic := false
	for p.at(token.COMMA) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.at(token.ELLIPSIS) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			variadic = true
			break
		}
		pd, err := p.parseParameterDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, pd)
	}
	return &ast.Parameters{Declarations: decls, Variadic: variadic}, nil
}

func (p *parser) parseParameterDeclaration() (ast.ParameterDeclaration, *Error) {
	return p.parseParameterDeclarationFrom(nil, p.tok.Pos)
}

// parseParameterDeclarationFrom parses one parameter declaration's
// specifiers (continuing from seed, if any already parsed) and its
// optional declarator.
func (p *parser) parseParameterDeclarationFrom(seed []ast.DeclSpec, pos token.Position) (ast.ParameterDeclaration, *Error) {
	specs, err := p.parseDeclarationSpecifiersInto(seed)
	if err != nil {
		return ast.ParameterDeclaration{}, err
	}
	if p.at(token.COMMA) || p.at(token.RPAREN) {
		return ast.ParameterDeclaration{Specifiers: specs, Attrs: p.stamp(pos)}, nil
	}
	decl, err := p.parseDeclarator(parameterDeclarator)
	if err != nil {
		return ast.ParameterDeclaration{}, err
	}
	return ast.ParameterDeclaration{Specifiers: specs, Declarator: decl, Attrs: p.stamp(pos)}, nil
}
