// Package lexer is a reference Lexer implementation for the ccparse/parser
// package's Lexer contract: a single-token-lookahead scanner over an
// in-memory source buffer that classifies identifier lexemes against the
// live typedef environment at the moment each token is produced, as the
// "lexer hack" (see ccparse/parser's package doc) requires.
//
// It is not part of the parser core — ccparse/parser depends only on the
// Lexer interface, never on this package — but cmd/ccparse needs a real
// scanner to drive the parser against an actual file, and the pack's own
// C-compiler teacher only ever produced unclassified raw-string tokens
// (see DESIGN.md), so this package fills that gap from scratch in the
// teacher's single-buffered-line, index-cursor scanning style.
package lexer

import (
	"fmt"
	"strings"

	"ccparse/parser"
	"ccparse/token"
)

// Lexer scans src one token at a time. The zero value is not usable;
// construct with New.
type Lexer struct {
	file string
	src  []byte
	pos  int // byte offset of the next unread rune
	line int
	col  int
}

// New returns a Lexer over src, whose positions are reported under file and
// start at startLine/startCol — mirroring the `initial-position` parameter
// of the parser's entry point, so a caller that stitches preprocessed
// output back to original source lines can seed both consistently.
func New(file string, src []byte, startLine, startCol int) *Lexer {
	return &Lexer{file: file, src: src, pos: 0, line: startLine, col: startCol}
}

func (l *Lexer) pos0() token.Position {
	return token.Position{File: l.file, Line: l.line, Column: l.col}
}

func (l *Lexer) peekByte() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekByteAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

func (l *Lexer) advanceByte() byte {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return b
}

func (l *Lexer) skipWhitespaceAndComments() error {
	for l.pos < len(l.src) {
		switch b := l.peekByte(); {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			l.advanceByte()
		case b == '/' && l.peekByteAt(1) == '/':
			for l.pos < len(l.src) && l.peekByte() != '\n' {
				l.advanceByte()
			}
		case b == '/' && l.peekByteAt(1) == '*':
			start := l.pos0()
			l.advanceByte()
			l.advanceByte()
			closed := false
			for l.pos < len(l.src) {
				if l.peekByte() == '*' && l.peekByteAt(1) == '/' {
					l.advanceByte()
					l.advanceByte()
					closed = true
					break
				}
				l.advanceByte()
			}
			if !closed {
				return fmt.Errorf("%s: unterminated block comment", start)
			}
		default:
			return nil
		}
	}
	return nil
}

// Next implements parser.Lexer. It is a direct transliteration of §4.2's
// classify-identifier contract: every IDENT-shaped lexeme is looked up
// against lookup before the token is returned.
func (l *Lexer) Next(lookup parser.TypedefLookup) (token.Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}
	if l.pos >= len(l.src) {
		return token.Token{Kind: token.EOF, Pos: l.pos0()}, nil
	}
	pos := l.pos0()
	b := l.peekByte()
	switch {
	case isIdentStart(b):
		return l.scanIdentOrKeyword(pos, lookup)
	case isDigit(b) || (b == '.' && isDigit(l.peekByteAt(1))):
		return l.scanNumber(pos)
	case b == '"':
		return l.scanString(pos)
	case b == '\'':
		return l.scanChar(pos)
	default:
		return l.scanPunctuator(pos)
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func (l *Lexer) scanIdentOrKeyword(pos token.Position, lookup parser.TypedefLookup) (token.Token, error) {
	start := l.pos
	for l.pos < len(l.src) && isIdentCont(l.peekByte()) {
		l.advanceByte()
	}
	lit := string(l.src[start:l.pos])
	if kind, ok := keywords[lit]; ok {
		return token.Token{Kind: kind, Literal: lit, Pos: pos}, nil
	}
	kind := token.IDENT
	if lookup.IsTypedef(lit) {
		kind = token.TYPEDEF_NAME
	}
	return token.Token{Kind: kind, Literal: lit, Pos: pos}, nil
}

func (l *Lexer) scanNumber(pos token.Position) (token.Token, error) {
	start := l.pos
	isFloat := false
	if l.peekByte() == '0' && (l.peekByteAt(1) == 'x' || l.peekByteAt(1) == 'X') {
		l.advanceByte()
		l.advanceByte()
		for l.pos < len(l.src) && isHexDigit(l.peekByte()) {
			l.advanceByte()
		}
	} else {
		for l.pos < len(l.src) && isDigit(l.peekByte()) {
			l.advanceByte()
		}
		if l.peekByte() == '.' {
			isFloat = true
			l.advanceByte()
			for l.pos < len(l.src) && isDigit(l.peekByte()) {
				l.advanceByte()
			}
		}
		if l.peekByte() == 'e' || l.peekByte() == 'E' {
			isFloat = true
			l.advanceByte()
			if l.peekByte() == '+' || l.peekByte() == '-' {
				l.advanceByte()
			}
			for l.pos < len(l.src) && isDigit(l.peekByte()) {
				l.advanceByte()
			}
		}
	}
	digits := string(l.src[start:l.pos])
	if isFloat {
		var suf token.FloatSuffix
		for {
			switch l.peekByte() {
			case 'f', 'F':
				suf.Float = true
				l.advanceByte()
				continue
			case 'l', 'L':
				suf.LongDouble = true
				l.advanceByte()
				continue
			}
			break
		}
		return token.Token{Kind: token.FLOAT_CONST, Literal: digits, Pos: pos, FloatSuffix: suf}, nil
	}
	var suf token.IntSuffix
loop:
	for {
		switch l.peekByte() {
		case 'u', 'U':
			suf.Unsigned = true
			l.advanceByte()
		case 'l', 'L':
			if suf.Long {
				suf.LongLong = true
			}
			suf.Long = true
			l.advanceByte()
		default:
			break loop
		}
	}
	return token.Token{Kind: token.INT_CONST, Literal: digits, Pos: pos, IntSuffix: suf}, nil
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// decodeEscapes turns the backslash escapes recognized inside a char/string
// literal body into their represented bytes; unrecognized escapes pass the
// character through verbatim rather than failing the whole scan, since
// decoding exactness is not this module's concern (the AST only needs the
// literal's content, not a byte-perfect re-encoding).
func decodeEscapes(body string) string {
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] != '\\' || i+1 >= len(body) {
			b.WriteByte(body[i])
			continue
		}
		i++
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case '\\', '\'', '"':
			b.WriteByte(body[i])
		default:
			b.WriteByte(body[i])
		}
	}
	return b.String()
}

func (l *Lexer) scanString(pos token.Position) (token.Token, error) {
	l.advanceByte() // opening quote
	start := l.pos
	for {
		if l.pos >= len(l.src) {
			return token.Token{}, fmt.Errorf("%s: unterminated string literal", pos)
		}
		b := l.peekByte()
		if b == '\\' {
			l.advanceByte()
			if l.pos < len(l.src) {
				l.advanceByte()
			}
			continue
		}
		if b == '"' {
			break
		}
		l.advanceByte()
	}
	body := string(l.src[start:l.pos])
	l.advanceByte() // closing quote
	return token.Token{Kind: token.STRING_CONST, Literal: decodeEscapes(body), Pos: pos}, nil
}

func (l *Lexer) scanChar(pos token.Position) (token.Token, error) {
	l.advanceByte() // opening quote
	start := l.pos
	for {
		if l.pos >= len(l.src) {
			return token.Token{}, fmt.Errorf("%s: unterminated character constant", pos)
		}
		b := l.peekByte()
		if b == '\\' {
			l.advanceByte()
			if l.pos < len(l.src) {
				l.advanceByte()
			}
			continue
		}
		if b == '\'' {
			break
		}
		l.advanceByte()
	}
	body := string(l.src[start:l.pos])
	l.advanceByte() // closing quote
	return token.Token{Kind: token.CHAR_CONST, Literal: decodeEscapes(body), Pos: pos}, nil
}

// punctuators is checked longest-match-first so e.g. "..." is never split
// into "." followed by "..".
var punctuators = []struct {
	text string
	kind token.Kind
}{
	{"...", token.ELLIPSIS},
	{"<<=", token.LEFT_ASSIGN},
	{">>=", token.RIGHT_ASSIGN},
	{"->", token.ARROW},
	{"++", token.INC},
	{"--", token.DEC},
	{"<<", token.SHL},
	{">>", token.SHR},
	{"<=", token.LE},
	{">=", token.GE},
	{"==", token.EQ},
	{"!=", token.NE},
	{"&&", token.ANDAND},
	{"||", token.OROR},
	{"+=", token.ADD_ASSIGN},
	{"-=", token.SUB_ASSIGN},
	{"*=", token.MUL_ASSIGN},
	{"/=", token.DIV_ASSIGN},
	{"%=", token.MOD_ASSIGN},
	{"&=", token.AND_ASSIGN},
	{"^=", token.XOR_ASSIGN},
	{"|=", token.OR_ASSIGN},
	{"(", token.LPAREN}, {")", token.RPAREN},
	{"[", token.LBRACKET}, {"]", token.RBRACKET},
	{"{", token.LBRACE}, {"}", token.RBRACE},
	{".", token.DOT}, {",", token.COMMA}, {";", token.SEMI},
	{":", token.COLON}, {"?", token.QUESTION},
	{"=", token.ASSIGN},
	{"<", token.LT}, {">", token.GT},
	{"+", token.PLUS}, {"-", token.MINUS}, {"*", token.STAR},
	{"/", token.SLASH}, {"%", token.PERCENT},
	{"&", token.AMP}, {"|", token.PIPE}, {"^", token.CARET},
	{"~", token.TILDE}, {"!", token.NOT},
}

func (l *Lexer) scanPunctuator(pos token.Position) (token.Token, error) {
	rest := l.src[l.pos:]
	for _, p := range punctuators {
		if strings.HasPrefix(string(rest), p.text) {
			for range p.text {
				l.advanceByte()
			}
			return token.Token{Kind: p.kind, Pos: pos}, nil
		}
	}
	return token.Token{}, fmt.Errorf("%s: unexpected character %q", pos, l.peekByte())
}

var keywords = map[string]token.Kind{
	"auto": token.AUTO, "break": token.BREAK, "case": token.CASE,
	"char": token.CHAR, "const": token.CONST, "continue": token.CONTINUE,
	"default": token.DEFAULT, "do": token.DO, "double": token.DOUBLE,
	"else": token.ELSE, "enum": token.ENUM, "extern": token.EXTERN,
	"float": token.FLOAT, "for": token.FOR, "goto": token.GOTO,
	"if": token.IF, "inline": token.INLINE, "int": token.INT,
	"long": token.LONG, "register": token.REGISTER, "restrict": token.RESTRICT,
	"return": token.RETURN, "short": token.SHORT, "signed": token.SIGNED,
	"sizeof": token.SIZEOF, "static": token.STATIC, "struct": token.STRUCT,
	"switch": token.SWITCH, "typedef": token.TYPEDEF, "union": token.UNION,
	"unsigned": token.UNSIGNED, "void": token.VOID, "volatile": token.VOLATILE,
	"while": token.WHILE,
	"_Alignof": token.ALIGNOF, "alignof": token.ALIGNOF,
	"_Bool": token.BOOL, "_Complex": token.COMPLEX, "_Imaginary": token.IMAGINARY,
	"_Thread_local": token.THREAD_LOCAL, "__thread": token.THREAD_LOCAL,

	"__attribute__": token.ATTRIBUTE, "__attribute": token.ATTRIBUTE,
	"__extension__": token.EXTENSION,
	"__real__":      token.REAL, "__imag__": token.IMAG,
	"__label__": token.LABEL, "asm": token.ASM, "__asm__": token.ASM, "__asm": token.ASM,
	"typeof": token.TYPEOF, "__typeof__": token.TYPEOF, "__typeof": token.TYPEOF,
	"__builtin_va_arg":             token.BUILTIN_VA_ARG,
	"__builtin_offsetof":           token.BUILTIN_OFFSETOF,
	"__builtin_types_compatible_p": token.BUILTIN_TYPES_COMPATIBLE_P,

	"__inline__": token.INLINE, "__inline": token.INLINE,
	"__const__": token.CONST, "__const": token.CONST,
	"__volatile__": token.VOLATILE, "__volatile": token.VOLATILE,
	"__restrict__": token.RESTRICT, "__restrict": token.RESTRICT,
	"__signed__": token.SIGNED, "__signed": token.SIGNED,
}
