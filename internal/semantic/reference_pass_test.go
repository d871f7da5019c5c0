package semantic

import (
	"testing"

	"github.com/cwbudde/semc/internal/ast"
)

func runReferencePass(t *testing.T, src string) (*ast.TranslationUnit, *PassContext) {
	t.Helper()
	return runPasses(t, src, &DeclarationPass{}, &TypeAliasPass{}, &ReferenceValidationPass{})
}

func TestReferencePassResolvesLocalReference(t *testing.T) {
	unit, ctx := runReferencePass(t, `
		def f {
			var x: int32 = 1;
			var y: int32 = x;
		}
	`)
	if ctx.Diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", ctx.Diags.Format(false))
	}
	fn := unit.Decls[0].(*ast.FunctionDeclaration)
	y := fn.Body.Stmts[1].(*ast.VariableDeclaration)
	name := y.Init.Child.(*ast.Name)
	if name.Symbol == nil {
		t.Fatal("Symbol = nil, want the resolved local x")
	}
}

func TestReferencePassRejectsUnknownName(t *testing.T) {
	_, ctx := runReferencePass(t, `var x: int32 = y;`)
	if !ctx.Diags.HasErrors() {
		t.Fatal("expected a name-not-declared diagnostic")
	}
}

func TestReferencePassRejectsLocalUseBeforeDeclaration(t *testing.T) {
	_, ctx := runReferencePass(t, `
		def f {
			x = 1;
			var x: int32 = 0;
		}
	`)
	if !ctx.Diags.HasErrors() {
		t.Fatal("expected a use-before-declaration diagnostic")
	}
}

func TestReferencePassAllowsGlobalUseBeforeTextualDeclaration(t *testing.T) {
	_, ctx := runReferencePass(t, `
		def f: int32 {
			return g;
		}
		var g: int32 = 5;
	`)
	if ctx.Diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", ctx.Diags.Format(false))
	}
}

func TestReferencePassAllowsForwardFunctionCall(t *testing.T) {
	_, ctx := runReferencePass(t, `
		def caller: int32 {
			return callee;
		}
		def callee: int32 {
			return 1;
		}
	`)
	if ctx.Diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", ctx.Diags.Format(false))
	}
}

func TestReferencePassParameterCountsAsDeclaredAtFunctionStart(t *testing.T) {
	_, ctx := runReferencePass(t, `def f(a: int32): int32 { return a; }`)
	if ctx.Diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", ctx.Diags.Format(false))
	}
}

func TestReferencePassShadowedLocalResolvesToInnerScope(t *testing.T) {
	unit, ctx := runReferencePass(t, `
		def f {
			var x: int32 = 1;
			if (1 < 2) {
				var x: int32 = 2;
				var y: int32 = x;
			}
		}
	`)
	if ctx.Diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", ctx.Diags.Format(false))
	}
	fn := unit.Decls[0].(*ast.FunctionDeclaration)
	ifStmt := fn.Body.Stmts[1].(*ast.IfStatement)
	innerX := ifStmt.Then.Stmts[0].(*ast.VariableDeclaration)
	y := ifStmt.Then.Stmts[1].(*ast.VariableDeclaration)
	name := y.Init.Child.(*ast.Name)
	if name.Symbol != innerX.Symbol {
		t.Error("a reference inside the inner scope should resolve to the shadowing declaration")
	}
}
