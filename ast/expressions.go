package ast

import "ccparse/token"

// Expr is implemented by every expression node variant. It is a closed
// interface by convention (only the types in this file implement it); a
// type switch over Expr is expected to be exhaustive against them.
type Expr interface {
	Positioned
	exprNode()
}

type ExprBase struct{ Attrs }

func (ExprBase) exprNode() {}

// CommaExpr is the sequence-point comma operator: evaluate each in order,
// yield the value of the last.
type CommaExpr struct {
	Exprs []Expr
	ExprBase
}

// AssignExpr is `lhs op rhs` for op in {=, +=, -=, ...}. Op is the literal
// assignment operator lexeme ("=", "+=", ...); BinaryOp is the plain binary
// operator a compound form desugars to ("+=" -> "+"), or "" for plain "=".
type AssignExpr struct {
	LHS, RHS Expr
	Op       string
	BinaryOp string
	ExprBase
}

// TernaryExpr is `cond ? then : els`. Then may be nil, representing GNU's
// elided then-branch (`cond ?: els`), whose value is cond itself.
type TernaryExpr struct {
	Cond, Then, Else Expr
	ExprBase
}

// BinaryExpr covers the full binary-operator ladder (||, &&, |, ^, &, ==,
// !=, <, <=, >, >=, <<, >>, +, -, *, /, %). Op is the operator lexeme.
type BinaryExpr struct {
	LHS, RHS Expr
	Op       string
	ExprBase
}

// CastExpr is `(TypeName) expr`.
type CastExpr struct {
	Type *TypeName
	Expr Expr
	ExprBase
}

type UnaryOp int

const (
	PreInc UnaryOp = iota
	PreDec
	PostInc
	PostDec
	AddressOf
	Indirection
	UnaryPlus
	UnaryMinus
	LogicalNot
	BitwiseNot
)

// UnaryExpr covers pre/post inc-dec, address-of, indirection, and the
// arithmetic/logical/bitwise unary operators.
type UnaryExpr struct {
	Operand Expr
	Op      UnaryOp
	ExprBase
}

// SizeofExprExpr is `sizeof expr`.
type SizeofExprExpr struct {
	Operand Expr
	ExprBase
}

// SizeofTypeExpr is `sizeof(TypeName)`.
type SizeofTypeExpr struct {
	Type *TypeName
	ExprBase
}

// AlignofExprExpr is GNU `__alignof__ expr` / `__alignof__(expr)` without a
// type-name operand.
type AlignofExprExpr struct {
	Operand Expr
	ExprBase
}

// AlignofTypeExpr is `_Alignof(TypeName)` / `__alignof__(TypeName)`.
type AlignofTypeExpr struct {
	Type *TypeName
	ExprBase
}

// IndexExpr is `base[index]`.
type IndexExpr struct {
	Base, Index Expr
	ExprBase
}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	ExprBase
}

// MemberExpr is `base.field` (Arrow=false) or `base->field` (Arrow=true).
type MemberExpr struct {
	Base  Expr
	Field Identifier
	Arrow bool
	ExprBase
}

// CompoundLiteralExpr is `(TypeName){ initializer-list }`.
type CompoundLiteralExpr struct {
	Type        *TypeName
	Initializer *Initializer
	ExprBase
}

// StatementExpr is the GNU statement expression `({ ...; expr; })`.
type StatementExpr struct {
	Body *CompoundStatement
	ExprBase
}

// LabelAddressExpr is the GNU computed-goto operand `&&label`.
type LabelAddressExpr struct {
	Label Identifier
	ExprBase
}

// ComplexPartExpr is `__real__ expr` (Imag=false) or `__imag__ expr`
// (Imag=true).
type ComplexPartExpr struct {
	Operand Expr
	Imag    bool
	ExprBase
}

// VarExpr is a reference to a previously declared identifier, ordinary or
// enumeration-constant; distinguishing it from a typedef-name use is the
// parser's job at the point it is consumed, not this node's.
type VarExpr struct {
	Name Identifier
	ExprBase
}

type ConstantKind int

const (
	IntConstant ConstantKind = iota
	FloatConstant
	CharConstant
	StringConstant
)

// ConstantExpr is a literal constant. Literal carries the lexer's decoded
// text (already-concatenated for adjacent string literals, see
// Builder.ConcatStringLiterals); IntSuffix/FloatSuffix mirror token.Token's
// suffix flags and are only meaningful for their matching Kind.
type ConstantExpr struct {
	Kind        ConstantKind
	Literal     string
	IntSuffix   token.IntSuffix
	FloatSuffix token.FloatSuffix
	ExprBase
}

// BuiltinVaArgExpr is `__builtin_va_arg(expr, TypeName)`.
type BuiltinVaArgExpr struct {
	List Expr
	Type *TypeName
	ExprBase
}

// BuiltinOffsetofExpr is `__builtin_offsetof(TypeName, designator-chain)`.
type BuiltinOffsetofExpr struct {
	Type        *TypeName
	Designators []Designator
	ExprBase
}

// BuiltinTypesCompatibleExpr is `__builtin_types_compatible_p(T1, T2)`.
type BuiltinTypesCompatibleExpr struct {
	Type1, Type2 *TypeName
	ExprBase
}
