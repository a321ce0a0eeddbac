package parser

import "ccparse/ast"

// Parse runs the grammar engine over lex to completion, seeding the typedef
// environment with builtinTypedefNames and numbering the first AST node
// starting at initialUniqueID so a caller composing several parses into one
// namespace can chain their unique-id ranges. It returns either the first
// error encountered (lexical, syntax, or semantic) or the completed
// translation unit.
func Parse(lex Lexer, builtinTypedefNames []string, initialUniqueID uint64) (*ast.TranslationUnit, *Error) {
	p := newParser(lex, builtinTypedefNames, initialUniqueID)
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseTranslationUnit()
}
