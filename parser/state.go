// Package parser implements the grammar engine and scoped parser state
// described for a preprocessed-C99+GNU source file: a hand-written
// recursive-descent/operator-precedence engine (the non-generic-LALR
// alternative explicitly sanctioned for this grammar) driven by a single
// state struct that owns lookahead, the typedef scope stack, and the AST
// builder's fresh-id counter.
package parser

import (
	"ccparse/ast"
	"ccparse/scope"
	"ccparse/token"
)

// TypedefLookup is the view of the typedef environment the lexer consults
// to classify an identifier lexeme at token-production time (the "lexer
// hack"). *scope.Env satisfies it.
type TypedefLookup interface {
	IsTypedef(ident string) bool
}

// Lexer is the external collaborator that produces tokens. It must
// classify identifier tokens against lookup at the moment each token is
// produced, since add-typedef/shadow-typedef may have fired since the
// previous token.
type Lexer interface {
	Next(lookup TypedefLookup) (token.Token, error)
}

// parser carries the L2 monad state: the lookahead token, the typedef
// scope stack, the AST builder (fresh-id allocation), and the first error
// encountered. All its methods are sequential; there is no concurrency.
type parser struct {
	lex     Lexer
	env     *scope.Env
	builder *ast.Builder

	tok     token.Token
	firstErr *Error
}

func newParser(lex Lexer, builtinTypedefNames []string, initialUniqueID uint64) *parser {
	return &parser{
		lex:     lex,
		env:     scope.New(builtinTypedefNames),
		builder: ast.NewBuilder(initialUniqueID),
	}
}

// fail records err as the first error if none has been recorded yet, and
// always returns it; every call site propagates the return value
// immediately, so the parse aborts at the first failure as if it were a
// single error slot (§4.1's `fail`).
func (p *parser) fail(err *Error) *Error {
	if p.firstErr == nil {
		p.firstErr = err
	}
	return err
}

// advance is `next-token`: it fetches the next token via the lexer,
// classifying identifiers against the live typedef environment, and
// installs it as the new lookahead.
func (p *parser) advance() *Error {
	t, err := p.lex.Next(p.env)
	if err != nil {
		return p.fail(newLexicalError(p.tok.Pos, err.Error()))
	}
	p.tok = t
	return nil
}

func (p *parser) at(k token.Kind) bool {
	return p.tok.Kind == k
}

func (p *parser) atAny(ks ...token.Kind) bool {
	for _, k := range ks {
		if p.tok.Kind == k {
			return true
		}
	}
	return false
}

// atRange reports whether the lookahead is the "..." that separates the two
// bounds of a GNU case-range or array-range designator. The lexer is free to
// emit either ELLIPSIS or the dedicated DOTDOTDOT_RANGE kind for that
// lexeme outside of a parameter list, so both are accepted here.
func (p *parser) atRange() bool {
	return p.at(token.ELLIPSIS) || p.at(token.DOTDOTDOT_RANGE)
}

// expect consumes the lookahead if it has kind k, advancing past it;
// otherwise it fails with a syntax error naming what was expected.
func (p *parser) expect(k token.Kind) (token.Token, *Error) {
	if p.tok.Kind != k {
		return token.Token{}, p.fail(newSyntaxError(p.tok.Pos, "syntax error before %s: expected %s", p.tok, token.Token{Kind: k}))
	}
	t := p.tok
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return t, nil
}

// accept consumes the lookahead and reports true if it has kind k,
// otherwise leaves the lookahead untouched and reports false.
func (p *parser) accept(k token.Kind) (token.Token, bool, *Error) {
	if p.tok.Kind != k {
		return token.Token{}, false, nil
	}
	t := p.tok
	if err := p.advance(); err != nil {
		return token.Token{}, false, err
	}
	return t, true, nil
}

// stamp is `fresh-name` plus the given position (callers pass the position
// of the node's first token), i.e. the (position, unique-id) pair every AST
// node embeds.
func (p *parser) stamp(pos token.Position) ast.Attrs {
	return p.builder.Stamp(pos)
}

// enterScope / leaveScope / addTypedef / shadowTypedef mirror §4.1 exactly;
// they exist as parser methods (rather than calling p.env directly
// everywhere) so every grammar action goes through one place that could
// add tracing later.
func (p *parser) enterScope()         { p.env.EnterScope() }
func (p *parser) leaveScope()         { p.env.LeaveScope() }
func (p *parser) addTypedef(id string)    { p.env.AddTypedef(id) }
func (p *parser) shadowTypedef(id string) { p.env.ShadowTypedef(id) }

func (p *parser) ident() ast.Identifier {
	return ast.Identifier{Name: p.tok.Literal, Pos: p.tok.Pos}
}

// expectFieldName consumes a struct/union member name. A member name is
// syntactically just an identifier, but the lexer hack classifies any
// identifier lexeme that currently names a typedef as TYPEDEF_NAME
// regardless of position, so `.member`/`->member` must accept either kind
// here even though the member itself never denotes a type.
func (p *parser) expectFieldName() (ast.Identifier, *Error) {
	if !p.at(token.IDENT) && !p.at(token.TYPEDEF_NAME) {
		return ast.Identifier{}, p.fail(newSyntaxError(p.tok.Pos, "syntax error before %s: expected identifier", p.tok))
	}
	id := p.ident()
	if err := p.advance(); err != nil {
		return ast.Identifier{}, err
	}
	return id, nil
}
