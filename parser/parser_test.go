package parser

import (
	"testing"

	"ccparse/ast"
	"ccparse/token"
)

func TestParseSimpleDeclaration(t *testing.T) {
	// int x;
	toks := []token.Token{tk(token.INT), tkl(token.IDENT, "x"), tk(token.SEMI)}
	tu, err := Parse(newFakeLexer(toks), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tu.Decls) != 1 || tu.Decls[0].Decl == nil {
		t.Fatalf("expected one plain declaration, got %+v", tu.Decls)
	}
	decl := tu.Decls[0].Decl
	if len(decl.Declarators) != 1 {
		t.Fatalf("expected one declarator, got %d", len(decl.Declarators))
	}
	name := decl.Declarators[0].Declarator.Innermost().Name.Name
	if name != "x" {
		t.Fatalf("expected declarator name x, got %q", name)
	}
}

func TestParseTypedefFeedsLexerHack(t *testing.T) {
	// typedef int T; T x;
	toks := []token.Token{
		tk(token.TYPEDEF), tk(token.INT), tkl(token.IDENT, "T"), tk(token.SEMI),
		tkl(token.IDENT, "T"), tkl(token.IDENT, "x"), tk(token.SEMI),
	}
	tu, err := Parse(newFakeLexer(toks), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tu.Decls) != 2 {
		t.Fatalf("expected two declarations, got %d", len(tu.Decls))
	}
	second := tu.Decls[1].Decl
	if second == nil {
		t.Fatalf("expected second entity to be a declaration")
	}
	if len(second.Specifiers) != 1 || second.Specifiers[0].Kind != ast.TypedefNameSpec {
		t.Fatalf("expected second declaration's type to resolve to the typedef-name specifier, got %+v", second.Specifiers)
	}
	if second.Specifiers[0].TypedefName.Name != "T" {
		t.Fatalf("expected typedef name T, got %q", second.Specifiers[0].TypedefName.Name)
	}
}

func TestParseTypedefShadowedByOrdinaryDeclarationInNestedScope(t *testing.T) {
	// typedef int T; void f(void) { int T; T = 1; }
	toks := []token.Token{
		tk(token.TYPEDEF), tk(token.INT), tkl(token.IDENT, "T"), tk(token.SEMI),
		tk(token.VOID), tkl(token.IDENT, "f"), tk(token.LPAREN), tk(token.VOID), tk(token.RPAREN),
		tk(token.LBRACE),
		tk(token.INT), tkl(token.IDENT, "T"), tk(token.SEMI),
		tkl(token.IDENT, "T"), tk(token.ASSIGN), tkl(token.INT_CONST, "1"), tk(token.SEMI),
		tk(token.RBRACE),
	}
	tu, err := Parse(newFakeLexer(toks), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := tu.Decls[1].FunctionDef
	if fn == nil {
		t.Fatalf("expected a function definition")
	}
	if len(fn.Body.Items) != 2 {
		t.Fatalf("expected two block items, got %d", len(fn.Body.Items))
	}
	second := fn.Body.Items[1]
	if second.Stmt == nil {
		t.Fatalf("expected the second item, `T = 1;`, to parse as an expression statement now that T is shadowed, got %+v", second)
	}
	assign, ok := second.Stmt.(*ast.ExprStmt).Expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected an assignment expression, got %T", second.Stmt.(*ast.ExprStmt).Expr)
	}
	if _, ok := assign.LHS.(*ast.VarExpr); !ok {
		t.Fatalf("expected shadowed T to parse as a plain variable reference, got %T", assign.LHS)
	}
}

func TestParseFunctionPointerDeclaratorNestsCorrectly(t *testing.T) {
	// int (*fp)(void);
	toks := []token.Token{
		tk(token.INT), tk(token.LPAREN), tk(token.STAR), tkl(token.IDENT, "fp"), tk(token.RPAREN),
		tk(token.LPAREN), tk(token.VOID), tk(token.RPAREN), tk(token.SEMI),
	}
	tu, err := Parse(newFakeLexer(toks), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := tu.Decls[0].Decl.Declarators[0].Declarator
	if d.Kind != ast.FunctionDeclaratorKind {
		t.Fatalf("expected outermost layer to be the function layer, got %v", d.Kind)
	}
	if d.Inner.Kind != ast.PointerDeclaratorKind {
		t.Fatalf("expected the pointer layer directly inside the function layer (fp is a pointer to function), got %v", d.Inner.Kind)
	}
	if d.Inner.Inner.Kind != ast.VariableDeclaratorKind || d.Inner.Inner.Name.Name != "fp" {
		t.Fatalf("expected the pointer layer to wrap the fp variable directly, got %+v", d.Inner.Inner)
	}
}

func TestParseArrayOfPointersKeepsPlainCaseUnaffected(t *testing.T) {
	// int *a[5];
	toks := []token.Token{
		tk(token.INT), tk(token.STAR), tkl(token.IDENT, "a"), tk(token.LBRACKET),
		tkl(token.INT_CONST, "5"), tk(token.RBRACKET), tk(token.SEMI),
	}
	tu, err := Parse(newFakeLexer(toks), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := tu.Decls[0].Decl.Declarators[0].Declarator
	if d.Kind != ast.PointerDeclaratorKind {
		t.Fatalf("expected outer pointer layer (a is an array of pointers), got %v", d.Kind)
	}
	if d.Inner.Kind != ast.ArrayDeclaratorKind {
		t.Fatalf("expected array layer directly wrapping the identifier, got %v", d.Inner.Kind)
	}
	if d.Inner.Inner.Name.Name != "a" {
		t.Fatalf("expected array layer to wrap a directly, got %+v", d.Inner.Inner)
	}
}

func TestParseFunctionDefinitionWithPrototypeParams(t *testing.T) {
	// int add(int a, int b) { return a + b; }
	toks := []token.Token{
		tk(token.INT), tkl(token.IDENT, "add"), tk(token.LPAREN),
		tk(token.INT), tkl(token.IDENT, "a"), tk(token.COMMA),
		tk(token.INT), tkl(token.IDENT, "b"), tk(token.RPAREN),
		tk(token.LBRACE),
		tk(token.RETURN), tkl(token.IDENT, "a"), tk(token.PLUS), tkl(token.IDENT, "b"), tk(token.SEMI),
		tk(token.RBRACE),
	}
	tu, err := Parse(newFakeLexer(toks), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := tu.Decls[0].FunctionDef
	if fn == nil {
		t.Fatalf("expected a function definition, got %+v", tu.Decls[0])
	}
	if len(fn.Body.Items) != 1 {
		t.Fatalf("expected one block item (the return), got %d", len(fn.Body.Items))
	}
	ret, ok := fn.Body.Items[0].Stmt.(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected a return statement, got %T", fn.Body.Items[0].Stmt)
	}
	bin, ok := ret.Expr.(*ast.BinaryExpr)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected a `+` binary expression, got %+v", ret.Expr)
	}
}

func TestParseFunctionDeclarationWithPointerParameters(t *testing.T) {
	// int strcmp(const char *a, const char *b);
	toks := []token.Token{
		tk(token.INT), tkl(token.IDENT, "strcmp"), tk(token.LPAREN),
		tk(token.CONST), tk(token.CHAR), tk(token.STAR), tkl(token.IDENT, "a"), tk(token.COMMA),
		tk(token.CONST), tk(token.CHAR), tk(token.STAR), tkl(token.IDENT, "b"), tk(token.RPAREN),
		tk(token.SEMI),
	}
	tu, err := Parse(newFakeLexer(toks), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := tu.Decls[0].Decl.Declarators[0].Declarator
	fn := d.DirectWrapper()
	if fn.Kind != ast.FunctionDeclaratorKind {
		t.Fatalf("expected a function declarator, got %+v", d)
	}
	if len(fn.Params.Declarations) != 2 {
		t.Fatalf("expected two parameter declarations, got %d", len(fn.Params.Declarations))
	}
	for i, name := range []string{"a", "b"} {
		pd := fn.Params.Declarations[i]
		if pd.Declarator == nil || pd.Declarator.Kind != ast.PointerDeclaratorKind {
			t.Fatalf("expected parameter %d to be a pointer declarator, got %+v", i, pd.Declarator)
		}
		inner := pd.Declarator.Innermost()
		if !inner.HasName || inner.Name.Name != name {
			t.Fatalf("expected parameter %d to be named %q, got %+v", i, name, inner)
		}
	}
}

// externalDeclPositioned picks out whichever of ExternalDecl's three
// alternatives is present, as an ast.Positioned.
func externalDeclPositioned(ext ast.ExternalDecl) ast.Positioned {
	switch {
	case ext.FunctionDef != nil:
		return ext.FunctionDef
	case ext.Decl != nil:
		return ext.Decl
	default:
		return ext.Asm
	}
}

func TestExternalDeclarationsAreInSourceOrder(t *testing.T) {
	// int a; on line 1, int b; on line 2, int c; on line 3
	toks := []token.Token{
		{Kind: token.INT, Pos: tp(1)}, {Kind: token.IDENT, Literal: "a", Pos: tp(1)}, {Kind: token.SEMI, Pos: tp(1)},
		{Kind: token.INT, Pos: tp(2)}, {Kind: token.IDENT, Literal: "b", Pos: tp(2)}, {Kind: token.SEMI, Pos: tp(2)},
		{Kind: token.INT, Pos: tp(3)}, {Kind: token.IDENT, Literal: "c", Pos: tp(3)}, {Kind: token.SEMI, Pos: tp(3)},
	}
	tu, err := Parse(newFakeLexer(toks), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tu.Decls) != 3 {
		t.Fatalf("expected three external declarations, got %d", len(tu.Decls))
	}
	siblings := make([]ast.Positioned, len(tu.Decls))
	for i, ext := range tu.Decls {
		siblings[i] = externalDeclPositioned(ext)
	}
	if idx := ast.SiblingsInSourceOrder(siblings); idx != -1 {
		t.Fatalf("expected declarations in source order, found %s before %s at index %d",
			siblings[idx-1].Position(), siblings[idx].Position(), idx)
	}
}

func TestParseCompoundAssignmentRecordsDesugaredBinaryOp(t *testing.T) {
	// x += 1
	toks := []token.Token{tkl(token.IDENT, "x"), tk(token.ADD_ASSIGN), tkl(token.INT_CONST, "1")}
	p := newTestParser(toks)
	if err := p.advance(); err != nil {
		t.Fatalf("unexpected error priming lookahead: %v", err)
	}
	expr, err := p.parseExpression()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assign, ok := expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected an assignment expression, got %T", expr)
	}
	if assign.Op != "+=" || assign.BinaryOp != "+" {
		t.Fatalf("expected op %q to desugar to binary op %q, got Op=%q BinaryOp=%q", "+=", "+", assign.Op, assign.BinaryOp)
	}
}

func TestParsePlainAssignmentHasNoDesugaredBinaryOp(t *testing.T) {
	// x = 1
	toks := []token.Token{tkl(token.IDENT, "x"), tk(token.ASSIGN), tkl(token.INT_CONST, "1")}
	p := newTestParser(toks)
	if err := p.advance(); err != nil {
		t.Fatalf("unexpected error priming lookahead: %v", err)
	}
	expr, err := p.parseExpression()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assign, ok := expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected an assignment expression, got %T", expr)
	}
	if assign.BinaryOp != "" {
		t.Fatalf("expected no desugared binary op for plain '=', got %q", assign.BinaryOp)
	}
}

func TestParseFunctionDeclarationWithVoidPointerFirstParameter(t *testing.T) {
	// int f(void *p, int n);
	toks := []token.Token{
		tk(token.INT), tkl(token.IDENT, "f"), tk(token.LPAREN),
		tk(token.VOID), tk(token.STAR), tkl(token.IDENT, "p"), tk(token.COMMA),
		tk(token.INT), tkl(token.IDENT, "n"), tk(token.RPAREN),
		tk(token.SEMI),
	}
	tu, err := Parse(newFakeLexer(toks), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := tu.Decls[0].Decl.Declarators[0].Declarator
	fn := d.DirectWrapper()
	if fn.Kind != ast.FunctionDeclaratorKind {
		t.Fatalf("expected a function declarator, got %+v", d)
	}
	if len(fn.Params.Declarations) != 2 {
		t.Fatalf("expected two parameter declarations, got %d", len(fn.Params.Declarations))
	}
	p0 := fn.Params.Declarations[0]
	if p0.Declarator == nil || p0.Declarator.Kind != ast.PointerDeclaratorKind {
		t.Fatalf("expected the first parameter to be a pointer declarator, got %+v", p0.Declarator)
	}
	if len(p0.Specifiers) != 1 || p0.Specifiers[0].Kind != ast.BasicTypeSpec || p0.Specifiers[0].Basic != ast.Void {
		t.Fatalf("expected the first parameter's specifier to be plain void, got %+v", p0.Specifiers)
	}
	inner := p0.Declarator.Innermost()
	if !inner.HasName || inner.Name.Name != "p" {
		t.Fatalf("expected the first parameter to be named p, got %+v", inner)
	}
	p1 := fn.Params.Declarations[1]
	if p1.Declarator == nil || !p1.Declarator.Innermost().HasName || p1.Declarator.Innermost().Name.Name != "n" {
		t.Fatalf("expected the second parameter to be named n, got %+v", p1.Declarator)
	}
}

func TestParseIfElseDanglingElseBindsToInnerIf(t *testing.T) {
	// if (a) if (b) x; else y;
	toks := []token.Token{
		tk(token.IF), tk(token.LPAREN), tkl(token.IDENT, "a"), tk(token.RPAREN),
		tk(token.IF), tk(token.LPAREN), tkl(token.IDENT, "b"), tk(token.RPAREN),
		tkl(token.IDENT, "x"), tk(token.SEMI),
		tk(token.ELSE), tkl(token.IDENT, "y"), tk(token.SEMI),
	}
	p := newTestParser(toks)
	if err := p.advance(); err != nil {
		t.Fatalf("unexpected error priming lookahead: %v", err)
	}
	stmt, err := p.parseStatement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, ok := stmt.(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected outer if, got %T", stmt)
	}
	if outer.Else != nil {
		t.Fatalf("expected outer if to have no else (dangling else binds inward), got %+v", outer.Else)
	}
	inner, ok := outer.Then.(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected inner if, got %T", outer.Then)
	}
	if inner.Else == nil {
		t.Fatalf("expected the else to bind to the inner if")
	}
}

func TestParseForLoopDeclarationScopeDoesNotLeakTypedef(t *testing.T) {
	// With T already bound as a typedef name: for (int T = 0; T < 1; T++) ;
	toks := []token.Token{
		tk(token.FOR), tk(token.LPAREN),
		tk(token.INT), tkl(token.IDENT, "T"), tk(token.ASSIGN), tkl(token.INT_CONST, "0"), tk(token.SEMI),
		tkl(token.IDENT, "T"), tk(token.LT), tkl(token.INT_CONST, "1"), tk(token.SEMI),
		tkl(token.IDENT, "T"), tk(token.INC),
		tk(token.RPAREN), tk(token.SEMI),
	}
	p := newTestParser(toks)
	p.addTypedef("T")
	if err := p.advance(); err != nil {
		t.Fatalf("unexpected error priming lookahead: %v", err)
	}
	stmt, err := p.parseStatement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	forStmt, ok := stmt.(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected a for statement, got %T", stmt)
	}
	if forStmt.InitDecl == nil {
		t.Fatalf("expected the init clause to parse as a declaration")
	}
	if !p.env.IsTypedef("T") {
		t.Fatalf("expected T to still be a typedef once the for-loop's own scope has closed")
	}
}

func TestParseLegacyDesignatedInitializerColonForm(t *testing.T) {
	// { x: 1, y: 2 }
	toks := []token.Token{
		tk(token.LBRACE),
		tkl(token.IDENT, "x"), tk(token.COLON), tkl(token.INT_CONST, "1"), tk(token.COMMA),
		tkl(token.IDENT, "y"), tk(token.COLON), tkl(token.INT_CONST, "2"),
		tk(token.RBRACE),
	}
	p := newTestParser(toks)
	if err := p.advance(); err != nil {
		t.Fatalf("unexpected error priming lookahead: %v", err)
	}
	init, err := p.parseInitializerList()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(init.Entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(init.Entries))
	}
	for i, want := range []string{"x", "y"} {
		entry := init.Entries[i]
		if len(entry.Designators) != 1 || entry.Designators[0].Kind != ast.MemberDesignator {
			t.Fatalf("expected entry %d to carry a legacy member designator, got %+v", i, entry.Designators)
		}
		if entry.Designators[0].Member.Name != want {
			t.Fatalf("expected designator member %q, got %q", want, entry.Designators[0].Member.Name)
		}
	}
}

func TestParseGNUCaseRange(t *testing.T) {
	// switch (x) { case 1 ... 3: break; }
	toks := []token.Token{
		tk(token.SWITCH), tk(token.LPAREN), tkl(token.IDENT, "x"), tk(token.RPAREN),
		tk(token.LBRACE),
		tk(token.CASE), tkl(token.INT_CONST, "1"), tk(token.ELLIPSIS), tkl(token.INT_CONST, "3"), tk(token.COLON),
		tk(token.BREAK), tk(token.SEMI),
		tk(token.RBRACE),
	}
	p := newTestParser(toks)
	if err := p.advance(); err != nil {
		t.Fatalf("unexpected error priming lookahead: %v", err)
	}
	stmt, err := p.parseStatement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sw, ok := stmt.(*ast.SwitchStmt)
	if !ok {
		t.Fatalf("expected switch statement, got %T", stmt)
	}
	body, ok := sw.Body.(*ast.CompoundStatement)
	if !ok {
		t.Fatalf("expected compound statement as switch body, got %T", sw.Body)
	}
	if len(body.Items) != 1 {
		t.Fatalf("expected one block item in the switch body, got %d", len(body.Items))
	}
	caseStmt, ok := body.Items[0].Stmt.(*ast.CaseStmt)
	if !ok {
		t.Fatalf("expected case statement as the switch body's item, got %T", body.Items[0].Stmt)
	}
	if caseStmt.High == nil {
		t.Fatalf("expected a case range with a high bound")
	}
}

func TestParseStatementExpression(t *testing.T) {
	// ({ 1; 2; })
	toks := []token.Token{
		tk(token.LPAREN), tk(token.LBRACE),
		tkl(token.INT_CONST, "1"), tk(token.SEMI),
		tkl(token.INT_CONST, "2"), tk(token.SEMI),
		tk(token.RBRACE), tk(token.RPAREN),
	}
	p := newTestParser(toks)
	if err := p.advance(); err != nil {
		t.Fatalf("unexpected error priming lookahead: %v", err)
	}
	expr, err := p.parseExpression()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	se, ok := expr.(*ast.StatementExpr)
	if !ok {
		t.Fatalf("expected a statement expression, got %T", expr)
	}
	if len(se.Body.Items) != 2 {
		t.Fatalf("expected two block items inside the statement expression, got %d", len(se.Body.Items))
	}
}

func TestParseGotoAndComputedGoto(t *testing.T) {
	// goto done; goto *p;
	toks := []token.Token{
		tk(token.GOTO), tkl(token.IDENT, "done"), tk(token.SEMI),
		tk(token.GOTO), tk(token.STAR), tkl(token.IDENT, "p"), tk(token.SEMI),
	}
	p := newTestParser(toks)
	if err := p.advance(); err != nil {
		t.Fatalf("unexpected error priming lookahead: %v", err)
	}
	s1, err := p.parseStatement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g, ok := s1.(*ast.GotoStmt)
	if !ok || g.Label.Name != "done" {
		t.Fatalf("expected goto done, got %+v", s1)
	}
	s2, err := p.parseStatement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s2.(*ast.ComputedGotoStmt); !ok {
		t.Fatalf("expected computed goto, got %T", s2)
	}
}

func TestParseAsmStatementWithOperands(t *testing.T) {
	// asm volatile ("nop" : "=r" (out) : "r" (in));
	toks := []token.Token{
		tk(token.ASM), tk(token.VOLATILE), tk(token.LPAREN),
		tkl(token.STRING_CONST, "nop"), tk(token.COLON),
		tkl(token.STRING_CONST, "=r"), tk(token.LPAREN), tkl(token.IDENT, "out"), tk(token.RPAREN),
		tk(token.COLON),
		tkl(token.STRING_CONST, "r"), tk(token.LPAREN), tkl(token.IDENT, "in"), tk(token.RPAREN),
		tk(token.RPAREN), tk(token.SEMI),
	}
	p := newTestParser(toks)
	if err := p.advance(); err != nil {
		t.Fatalf("unexpected error priming lookahead: %v", err)
	}
	stmt, err := p.parseStatement()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	asm, ok := stmt.(*ast.AsmStmt)
	if !ok {
		t.Fatalf("expected asm statement, got %T", stmt)
	}
	if !asm.Volatile || asm.Template != "nop" {
		t.Fatalf("expected volatile nop asm, got %+v", asm)
	}
	if len(asm.Outputs) != 1 || len(asm.Inputs) != 1 {
		t.Fatalf("expected one output and one input, got %+v", asm)
	}
}

func TestParseOldStyleKAndRFunctionDefinition(t *testing.T) {
	// int add(a, b) int a; int b; { return a + b; }
	toks := []token.Token{
		tk(token.INT), tkl(token.IDENT, "add"), tk(token.LPAREN),
		tkl(token.IDENT, "a"), tk(token.COMMA), tkl(token.IDENT, "b"), tk(token.RPAREN),
		tk(token.INT), tkl(token.IDENT, "a"), tk(token.SEMI),
		tk(token.INT), tkl(token.IDENT, "b"), tk(token.SEMI),
		tk(token.LBRACE),
		tk(token.RETURN), tkl(token.IDENT, "a"), tk(token.PLUS), tkl(token.IDENT, "b"), tk(token.SEMI),
		tk(token.RBRACE),
	}
	tu, err := Parse(newFakeLexer(toks), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := tu.Decls[0].FunctionDef
	if fn == nil {
		t.Fatalf("expected a function definition, got %+v", tu.Decls[0])
	}
	if len(fn.OldStyleParamDecls) != 2 {
		t.Fatalf("expected two K&R parameter declarations, got %d", len(fn.OldStyleParamDecls))
	}
	if !fn.Declarator.DirectWrapper().Params.OldStyle {
		t.Fatalf("expected the declarator's parameter list to be recorded as old-style")
	}
}

func TestParseBuiltinAttributeOnDeclaration(t *testing.T) {
	// int x __attribute__((aligned(4)));
	toks := []token.Token{
		tk(token.INT), tkl(token.IDENT, "x"),
		tk(token.ATTRIBUTE), tk(token.LPAREN), tk(token.LPAREN),
		tkl(token.IDENT, "aligned"), tk(token.LPAREN), tkl(token.INT_CONST, "4"), tk(token.RPAREN),
		tk(token.RPAREN), tk(token.RPAREN),
		tk(token.SEMI),
	}
	tu, err := Parse(newFakeLexer(toks), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := tu.Decls[0].Decl.Declarators[0].Declarator
	inner := d.Innermost()
	if len(inner.Attributes) != 1 || inner.Attributes[0].Name.Name != "aligned" {
		t.Fatalf("expected the attribute to land on the innermost declarator, got %+v", inner.Attributes)
	}
	if len(inner.Attributes[0].Arguments) != 1 {
		t.Fatalf("expected one argument to aligned(), got %+v", inner.Attributes[0].Arguments)
	}
}

func TestParseBuiltinTypesCompatible(t *testing.T) {
	// __builtin_types_compatible_p(int, int)
	toks := []token.Token{
		tk(token.BUILTIN_TYPES_COMPATIBLE_P), tk(token.LPAREN),
		tk(token.INT), tk(token.COMMA), tk(token.INT),
		tk(token.RPAREN),
	}
	p := newTestParser(toks)
	if err := p.advance(); err != nil {
		t.Fatalf("unexpected error priming lookahead: %v", err)
	}
	expr, err := p.parseExpression()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := expr.(*ast.BuiltinTypesCompatibleExpr); !ok {
		t.Fatalf("expected BuiltinTypesCompatibleExpr, got %T", expr)
	}
}

func attrToks() []token.Token {
	// __attribute__((packed))
	return []token.Token{
		tk(token.ATTRIBUTE), tk(token.LPAREN), tk(token.LPAREN),
		tkl(token.IDENT, "packed"),
		tk(token.RPAREN), tk(token.RPAREN),
	}
}

func TestParseUnnamedBitFieldAttribute(t *testing.T) {
	// struct s { int : 4 __attribute__((packed)); };
	toks := []token.Token{tk(token.STRUCT), tkl(token.IDENT, "s"), tk(token.LBRACE),
		tk(token.INT), tk(token.COLON), tkl(token.INT_CONST, "4"),
	}
	toks = append(toks, attrToks()...)
	toks = append(toks, tk(token.SEMI), tk(token.RBRACE))
	p := newTestParser(toks)
	if err := p.advance(); err != nil {
		t.Fatalf("unexpected error priming lookahead: %v", err)
	}
	spec, err := p.parseStructOrUnionSpecifier()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spec.Fields) != 1 || len(spec.Fields[0].Declarators) != 1 {
		t.Fatalf("expected one field with one declarator, got %+v", spec.Fields)
	}
	fd := spec.Fields[0].Declarators[0]
	if fd.Declarator != nil {
		t.Fatalf("expected an unnamed bit-field (nil Declarator), got %+v", fd.Declarator)
	}
	if len(fd.Attributes) != 1 || fd.Attributes[0].Name.Name != "packed" {
		t.Fatalf("expected the attribute to land on the field declarator, got %+v", fd.Attributes)
	}
}

func TestParseEnumSpecifierTrailingAttribute(t *testing.T) {
	// enum e { A, B } __attribute__((packed))
	toks := []token.Token{
		tk(token.ENUM), tkl(token.IDENT, "e"), tk(token.LBRACE),
		tkl(token.IDENT, "A"), tk(token.COMMA), tkl(token.IDENT, "B"),
		tk(token.RBRACE),
	}
	toks = append(toks, attrToks()...)
	p := newTestParser(toks)
	if err := p.advance(); err != nil {
		t.Fatalf("unexpected error priming lookahead: %v", err)
	}
	spec, err := p.parseEnumSpecifier()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spec.Members) != 2 {
		t.Fatalf("expected two enumerators, got %+v", spec.Members)
	}
	if len(spec.Attributes) != 1 || spec.Attributes[0].Name.Name != "packed" {
		t.Fatalf("expected the trailing attribute on the enum specifier, got %+v", spec.Attributes)
	}
}

func TestParseLeadingAttributeBeforeDeclaratorInList(t *testing.T) {
	// int x, __attribute__((packed)) y;
	toks := []token.Token{tk(token.INT), tkl(token.IDENT, "x"), tk(token.COMMA)}
	toks = append(toks, attrToks()...)
	toks = append(toks, tkl(token.IDENT, "y"), tk(token.SEMI))
	tu, err := Parse(newFakeLexer(toks), nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decls := tu.Decls[0].Decl.Declarators
	if len(decls) != 2 {
		t.Fatalf("expected two declarators, got %d", len(decls))
	}
	yInner := decls[1].Declarator.Innermost()
	if len(yInner.Attributes) != 1 || yInner.Attributes[0].Name.Name != "packed" {
		t.Fatalf("expected the leading attribute to land on y's declarator, got %+v", yInner.Attributes)
	}
	xInner := decls[0].Declarator.Innermost()
	if len(xInner.Attributes) != 0 {
		t.Fatalf("expected x to carry no attributes, got %+v", xInner.Attributes)
	}
}
