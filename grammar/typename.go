package grammar

// TypeNameStarterGrammar describes, as data, the specifier-qualifier
// alternatives that can begin a type-name: exactly the production the
// parser needs FIRST() of to decide, at its type-name lookahead points (a
// parenthesized cast vs. a parenthesized expression, and a sizeof/alignof
// operand), whether the next token can start a type-name. Terminal
// names are the lexeme strings token.KindName produces, so a parser
// decision is a plain StartsWith(firsts, "type_name", token.KindName(k))
// call with no separate naming scheme to keep in sync.
func TypeNameStarterGrammar() *Grammar {
	basicTypeKeywords := []string{
		"void", "char", "short", "int", "long", "float", "double", "signed",
		"unsigned", "_Bool", "_Complex",
	}
	qualifierKeywords := []string{"const", "volatile", "restrict", "__attribute__"}

	g := &Grammar{
		Nonterminals: []string{"type_name", "specifier_qualifier_list", "type_qualifier"},
		Terminals:    append(append(append([]string{}, basicTypeKeywords...), qualifierKeywords...), "struct", "union", "enum", "<typedef-name>", "typeof"),
		Productions: []*Production{
			{From: "type_name", To: []Symbol{Nonterminal("specifier_qualifier_list")}},
		},
	}
	for _, kw := range basicTypeKeywords {
		g.Productions = append(g.Productions, &Production{From: "specifier_qualifier_list", To: []Symbol{Terminal(kw)}})
	}
	for _, kw := range []string{"struct", "union", "enum", "<typedef-name>", "typeof"} {
		g.Productions = append(g.Productions, &Production{From: "specifier_qualifier_list", To: []Symbol{Terminal(kw)}})
	}
	g.Productions = append(g.Productions, &Production{From: "specifier_qualifier_list", To: []Symbol{Nonterminal("type_qualifier")}})
	for _, kw := range qualifierKeywords {
		g.Productions = append(g.Productions, &Production{From: "type_qualifier", To: []Symbol{Terminal(kw)}})
	}
	return g
}

var typeNameFirsts = FirstSets(TypeNameStarterGrammar())

// StartsTypeName reports whether terminal (a token.KindName result) can
// begin a type-name, per the declarative grammar above.
func StartsTypeName(terminal string) bool {
	return StartsWith(typeNameFirsts, "type_name", terminal)
}
