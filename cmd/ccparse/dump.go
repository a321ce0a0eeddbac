package main

import (
	"fmt"
	"io"

	"ccparse/ast"
)

// dumpTranslationUnit prints one line per function definition, per
// top-level asm, and per declarator of each declaration (a declaration with
// no declarators prints nothing): its source position, its kind, and the
// name it introduces, if any. This is a diagnostic summary, not a pretty-printer —
// reconstructing compilable C source from the AST is explicitly out of
// scope (§1), and this command must not grow into one by accretion.
func dumpTranslationUnit(w io.Writer, tu *ast.TranslationUnit) {
	for _, decl := range tu.Decls {
		switch {
		case decl.FunctionDef != nil:
			fn := decl.FunctionDef
			name := declaratorName(fn.Declarator)
			fmt.Fprintf(w, "%s: function-definition %s\n", fn.Position(), name)
		case decl.Decl != nil:
			for _, d := range decl.Decl.Declarators {
				name := "<none>"
				if d.Declarator != nil {
					name = declaratorName(d.Declarator)
				}
				fmt.Fprintf(w, "%s: declaration %s\n", decl.Decl.Position(), name)
			}
		case decl.Asm != nil:
			fmt.Fprintf(w, "%s: top-level-asm\n", decl.Asm.Position())
		}
	}
}

func declaratorName(d *ast.Declarator) string {
	inner := d.Innermost()
	if !inner.HasName {
		return "<unnamed>"
	}
	return inner.Name.Name
}
