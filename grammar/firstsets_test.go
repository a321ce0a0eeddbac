package grammar

import "testing"

// typeNameGrammar is a small declarative description of the part of the C99
// grammar the parser needs FIRST(type_name) for: deciding, on seeing '(',
// whether the parenthesized thing ahead is a cast's type-name or a plain
// parenthesized expression. It is not the whole grammar, only the slice
// whose FIRST set the decision depends on.
func typeNameGrammar() *Grammar {
	return &Grammar{
		Nonterminals: []string{"type_name", "specifier_qualifier_list", "type_qualifier"},
		Terminals: []string{
			"VOID", "CHAR", "INT", "LONG", "FLOAT", "DOUBLE", "SIGNED", "UNSIGNED",
			"BOOL", "COMPLEX", "STRUCT", "UNION", "ENUM", "TYPEDEF_NAME",
			"CONST", "VOLATILE", "RESTRICT", "ATTRIBUTE",
		},
		Productions: []*Production{
			{From: "type_name", To: []Symbol{Nonterminal("specifier_qualifier_list")}},
			{From: "specifier_qualifier_list", To: []Symbol{Terminal("VOID")}},
			{From: "specifier_qualifier_list", To: []Symbol{Terminal("CHAR")}},
			{From: "specifier_qualifier_list", To: []Symbol{Terminal("INT")}},
			{From: "specifier_qualifier_list", To: []Symbol{Terminal("LONG")}},
			{From: "specifier_qualifier_list", To: []Symbol{Terminal("FLOAT")}},
			{From: "specifier_qualifier_list", To: []Symbol{Terminal("DOUBLE")}},
			{From: "specifier_qualifier_list", To: []Symbol{Terminal("SIGNED")}},
			{From: "specifier_qualifier_list", To: []Symbol{Terminal("UNSIGNED")}},
			{From: "specifier_qualifier_list", To: []Symbol{Terminal("BOOL")}},
			{From: "specifier_qualifier_list", To: []Symbol{Terminal("COMPLEX")}},
			{From: "specifier_qualifier_list", To: []Symbol{Terminal("STRUCT")}},
			{From: "specifier_qualifier_list", To: []Symbol{Terminal("UNION")}},
			{From: "specifier_qualifier_list", To: []Symbol{Terminal("ENUM")}},
			{From: "specifier_qualifier_list", To: []Symbol{Terminal("TYPEDEF_NAME")}},
			{From: "specifier_qualifier_list", To: []Symbol{Nonterminal("type_qualifier")}},
			{From: "type_qualifier", To: []Symbol{Terminal("CONST")}},
			{From: "type_qualifier", To: []Symbol{Terminal("VOLATILE")}},
			{From: "type_qualifier", To: []Symbol{Terminal("RESTRICT")}},
			{From: "type_qualifier", To: []Symbol{Terminal("ATTRIBUTE")}},
		},
	}
}

func TestFirstSetOfTypeNameMatchesDeclarationSpecifierStarters(t *testing.T) {
	firsts := FirstSets(typeNameGrammar())
	want := []string{
		"VOID", "CHAR", "INT", "LONG", "FLOAT", "DOUBLE", "SIGNED", "UNSIGNED",
		"BOOL", "COMPLEX", "STRUCT", "UNION", "ENUM", "TYPEDEF_NAME",
		"CONST", "VOLATILE", "RESTRICT", "ATTRIBUTE",
	}
	for _, terminal := range want {
		if !StartsWith(firsts, "type_name", terminal) {
			t.Errorf("expected %s in FIRST(type_name)", terminal)
		}
	}
	if StartsWith(firsts, "type_name", "IDENT") {
		t.Error("plain identifier must not be in FIRST(type_name)")
	}
}

func TestFirstSetExcludesUnrelatedTerminal(t *testing.T) {
	firsts := FirstSets(typeNameGrammar())
	if StartsWith(firsts, "specifier_qualifier_list", "STRING_CONST") {
		t.Error("STRING_CONST must not start a specifier-qualifier-list")
	}
}
