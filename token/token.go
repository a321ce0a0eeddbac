// Package token defines the abstract token kinds and source positions that
// the parser consumes. The lexer that produces them is an external
// collaborator (see the lexer package for a reference implementation); this
// package only fixes the contract between lexer and parser.
package token

import "fmt"

// Position is a (file, line, column) triple, totally ordered first by file,
// then line, then column.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Less reports whether p sorts strictly before other.
func (p Position) Less(other Position) bool {
	if p.File != other.File {
		return p.File < other.File
	}
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// LessEq reports p <= other under Position's ordering.
func (p Position) LessEq(other Position) bool {
	return p == other || p.Less(other)
}

// Kind classifies a token. IDENT and TYPEDEF_NAME are intentionally distinct:
// the lexer must pick between them at token-production time by consulting the
// parser's typedef environment (the "lexer hack"), since that is what lets
// the grammar disambiguate a declaration from an expression statement.
type Kind int

const (
	EOF Kind = iota
	ILLEGAL

	IDENT        // ordinary identifier, not currently bound as a typedef name
	TYPEDEF_NAME // identifier currently bound as a typedef name in scope
	INT_CONST
	FLOAT_CONST
	CHAR_CONST
	STRING_CONST

	// Keywords
	AUTO
	BREAK
	CASE
	CHAR
	CONST
	CONTINUE
	DEFAULT
	DO
	DOUBLE
	ELSE
	ENUM
	EXTERN
	FLOAT
	FOR
	GOTO
	IF
	INLINE
	INT
	LONG
	REGISTER
	RESTRICT
	RETURN
	SHORT
	SIGNED
	SIZEOF
	STATIC
	STRUCT
	SWITCH
	TYPEDEF
	UNION
	UNSIGNED
	VOID
	VOLATILE
	WHILE
	ALIGNOF
	BOOL
	COMPLEX
	IMAGINARY
	THREAD_LOCAL // _Thread_local / __thread

	// GNU extension markers
	ATTRIBUTE
	EXTENSION
	REAL
	IMAG
	LABEL
	ASM
	TYPEOF
	BUILTIN_VA_ARG
	BUILTIN_OFFSETOF
	BUILTIN_TYPES_COMPATIBLE_P

	// Punctuators
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE
	ARROW
	DOT
	ELLIPSIS
	COMMA
	SEMI
	COLON
	QUESTION

	ASSIGN
	MUL_ASSIGN
	DIV_ASSIGN
	MOD_ASSIGN
	ADD_ASSIGN
	SUB_ASSIGN
	LEFT_ASSIGN
	RIGHT_ASSIGN
	AND_ASSIGN
	XOR_ASSIGN
	OR_ASSIGN

	EQ
	NE
	LT
	LE
	GT
	GE

	PLUS
	MINUS
	STAR
	SLASH
	PERCENT

	AMP
	PIPE
	CARET
	TILDE
	NOT
	ANDAND
	OROR

	SHL
	SHR
	INC
	DEC

	DOTDOTDOT_RANGE // GNU case-range "..." inside `case lo ... hi:`
)

// IntSuffix records which suffix flags decorated an integer constant.
type IntSuffix struct {
	Unsigned  bool
	Long      bool
	LongLong  bool
}

// FloatSuffix records which suffix flags decorated a floating constant.
type FloatSuffix struct {
	Float      bool // f/F
	LongDouble bool // l/L
}

// Token is one lexical unit together with its source position. Literal
// carries the raw/decoded textual value (decoded for char/string constants);
// IntSuffix/FloatSuffix are only meaningful for INT_CONST/FLOAT_CONST.
type Token struct {
	Kind        Kind
	Literal     string
	Pos         Position
	IntSuffix   IntSuffix
	FloatSuffix FloatSuffix
}

func (t Token) String() string {
	if t.Literal != "" {
		return t.Literal
	}
	return kindNames[t.Kind]
}

var kindNames = map[Kind]string{
	EOF: "<eof>", ILLEGAL: "<illegal>",
	IDENT: "<identifier>", TYPEDEF_NAME: "<typedef-name>",
	INT_CONST: "<integer-constant>", FLOAT_CONST: "<floating-constant>",
	CHAR_CONST: "<character-constant>", STRING_CONST: "<string-literal>",

	AUTO: "auto", BREAK: "break", CASE: "case", CHAR: "char", CONST: "const",
	CONTINUE: "continue", DEFAULT: "default", DO: "do", DOUBLE: "double",
	ELSE: "else", ENUM: "enum", EXTERN: "extern", FLOAT: "float", FOR: "for",
	GOTO: "goto", IF: "if", INLINE: "inline", INT: "int", LONG: "long",
	REGISTER: "register", RESTRICT: "restrict", RETURN: "return", SHORT: "short",
	SIGNED: "signed", SIZEOF: "sizeof", STATIC: "static", STRUCT: "struct",
	SWITCH: "switch", TYPEDEF: "typedef", UNION: "union", UNSIGNED: "unsigned",
	VOID: "void", VOLATILE: "volatile", WHILE: "while", ALIGNOF: "_Alignof",
	BOOL: "_Bool", COMPLEX: "_Complex", IMAGINARY: "_Imaginary",
	THREAD_LOCAL: "_Thread_local",

	ATTRIBUTE: "__attribute__", EXTENSION: "__extension__", REAL: "__real__",
	IMAG: "__imag__", LABEL: "__label__", ASM: "asm", TYPEOF: "typeof",
	BUILTIN_VA_ARG: "__builtin_va_arg", BUILTIN_OFFSETOF: "__builtin_offsetof",
	BUILTIN_TYPES_COMPATIBLE_P: "__builtin_types_compatible_p",

	LPAREN: "(", RPAREN: ")", LBRACKET: "[", RBRACKET: "]",
	LBRACE: "{", RBRACE: "}", ARROW: "->", DOT: ".", ELLIPSIS: "...",
	COMMA: ",", SEMI: ";", COLON: ":", QUESTION: "?",
	ASSIGN: "=", EQ: "==", NE: "!=", LT: "<", LE: "<=", GT: ">", GE: ">=",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%",
	AMP: "&", PIPE: "|", CARET: "^", TILDE: "~", NOT: "!",
	ANDAND: "&&", OROR: "||", SHL: "<<", SHR: ">>", INC: "++", DEC: "--",

	MUL_ASSIGN: "*=", DIV_ASSIGN: "/=", MOD_ASSIGN: "%=", ADD_ASSIGN: "+=",
	SUB_ASSIGN: "-=", LEFT_ASSIGN: "<<=", RIGHT_ASSIGN: ">>=",
	AND_ASSIGN: "&=", XOR_ASSIGN: "^=", OR_ASSIGN: "|=",

	DOTDOTDOT_RANGE: "...",
}

// KindName returns the canonical lexeme or placeholder name for k, used both
// for diagnostics and as the terminal-symbol name the grammar package's
// FIRST-set descriptions key on.
func KindName(k Kind) string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "<unknown>"
}

// IsTypeQualifierKeyword reports whether k is one of const/volatile/restrict/
// inline — the type-qualifier keywords that may also appear as storage-class
// adjacent modifiers in a declaration-specifier list.
func (k Kind) IsTypeQualifierKeyword() bool {
	switch k {
	case CONST, VOLATILE, RESTRICT, INLINE:
		return true
	}
	return false
}
