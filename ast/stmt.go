package ast

// Stmt is implemented by every statement node variant.
type Stmt interface {
	Positioned
	stmtNode()
}

type StmtBase struct{ Attrs }

func (StmtBase) stmtNode() {}

// LabeledStmt is `label: stmt`.
type LabeledStmt struct {
	Label      Identifier
	Attributes []Attribute
	Stmt       Stmt
	StmtBase
}

// CaseStmt is `case expr: stmt`, or, when High is non-nil, the GNU case
// range `case Low ... High: stmt`.
type CaseStmt struct {
	Low, High Expr
	Stmt      Stmt
	StmtBase
}

// DefaultStmt is `default: stmt`.
type DefaultStmt struct {
	Stmt Stmt
	StmtBase
}

// ExprStmt is an expression statement; Expr is nil for a bare `;`.
type ExprStmt struct {
	Expr Expr
	StmtBase
}

// IfStmt is `if (Cond) Then [else Else]`. Dangling else binds to the
// nearest enclosing if, which falls out of this being parsed greedily.
type IfStmt struct {
	Cond       Expr
	Then, Else Stmt
	StmtBase
}

// SwitchStmt is `switch (Tag) Body`.
type SwitchStmt struct {
	Tag  Expr
	Body Stmt
	StmtBase
}

// WhileStmt is `while (Cond) Body`.
type WhileStmt struct {
	Cond Expr
	Body Stmt
	StmtBase
}

// DoWhileStmt is `do Body while (Cond);`.
type DoWhileStmt struct {
	Body Stmt
	Cond Expr
	StmtBase
}

// ForStmt is `for (Init; Cond; Post) Body`. Exactly one of InitExpr/InitDecl
// is meaningful when HasInit is true; C99 allows a declaration in the init
// clause, which opens a scope spanning the entire loop (§4.3).
type ForStmt struct {
	HasInit bool
	InitExpr Expr
	InitDecl *Declaration
	Cond     Expr
	Post     Expr
	Body     Stmt
	StmtBase
}

// GotoStmt is `goto label;`.
type GotoStmt struct {
	Label Identifier
	StmtBase
}

// ComputedGotoStmt is the GNU `goto *expr;`.
type ComputedGotoStmt struct {
	Target Expr
	StmtBase
}

// ContinueStmt is `continue;`.
type ContinueStmt struct{ StmtBase }

// BreakStmt is `break;`.
type BreakStmt struct{ StmtBase }

// ReturnStmt is `return [expr];`; Expr is nil for a bare return.
type ReturnStmt struct {
	Expr Expr
	StmtBase
}

// AsmOperand is one entry of an inline-asm operand list:
// `[name] "constraint" (expr)`.
type AsmOperand struct {
	Name       Identifier
	HasName    bool
	Constraint string
	Expr       Expr
}

// AsmStmt is a GNU inline-assembly statement:
// `asm [volatile] ( template : outputs : inputs : clobbers );`.
type AsmStmt struct {
	Volatile  bool
	Template  string
	Outputs   []AsmOperand
	Inputs    []AsmOperand
	Clobbers  []string
	StmtBase
}

// BlockItem is one entry of a compound statement's body: a statement, a
// declaration, or a nested (GNU) function definition. Exactly one field
// is non-nil.
type BlockItem struct {
	Stmt      Stmt
	Decl      *Declaration
	NestedFn  *FunctionDefinition
}

// CompoundStatement is `{ local-labels block-items }`. LocalLabels holds
// the GNU `__label__ a, b;` declarations, which must precede all other
// block items.
type CompoundStatement struct {
	LocalLabels []Identifier
	Items       []BlockItem
	Attrs
}

func (*CompoundStatement) stmtNode() {}

// FunctionDefinition is a function definition, K&R or prototype; the
// parameter-list shape (old-style vs. prototype) lives on Declarator's
// innermost function layer's Params.
type FunctionDefinition struct {
	Specifiers []DeclSpec
	Declarator *Declarator
	// OldStyleParamDecls holds the declaration list following a K&R
	// parameter-name list (empty for a prototype definition).
	OldStyleParamDecls []Declaration
	Body               *CompoundStatement
	Attrs
}

// ExternalDecl is one top-level entity in a translation unit: a function
// definition, a plain declaration, or a top-level inline-assembly
// declaration. Exactly one field is non-nil.
type ExternalDecl struct {
	FunctionDef *FunctionDefinition
	Decl        *Declaration
	Asm         *AsmStmt
}

// TranslationUnit is the root of the AST: an ordered sequence of external
// declarations.
type TranslationUnit struct {
	Decls []ExternalDecl
	Attrs
}
