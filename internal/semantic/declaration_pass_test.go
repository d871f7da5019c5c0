package semantic

import (
	"testing"

	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/symtab"
)

// runDeclarationPass parses src and runs only the declaration pass,
// returning the unit and context for lower-level assertions that don't
// need the full pipeline.
func runDeclarationPass(t *testing.T, src string) (*ast.TranslationUnit, *PassContext) {
	t.Helper()
	return runPasses(t, src, &DeclarationPass{})
}

func TestDeclarationPassBuildsGlobalScope(t *testing.T) {
	unit, _ := runDeclarationPass(t, `var x: int32 = 1;`)
	if unit.Scope == nil {
		t.Fatal("Scope = nil, want a global scope to be attached")
	}
	if unit.Scope.Kind != symtab.Global {
		t.Errorf("Scope.Kind = %v, want Global", unit.Scope.Kind)
	}
	v := unit.Decls[0].(*ast.VariableDeclaration)
	if v.Symbol == nil {
		t.Fatal("Symbol = nil, want the declaration to be entered into scope")
	}
	if v.Name.Symbol != v.Symbol {
		t.Error("Name.Symbol should mirror the declaration's Symbol")
	}
}

func TestDeclarationPassRejectsDuplicateGlobal(t *testing.T) {
	_, ctx := runDeclarationPass(t, `
		var x: int32 = 1;
		var x: int32 = 2;
	`)
	if !ctx.Diags.HasErrors() {
		t.Fatal("expected a duplicate-symbol diagnostic")
	}
}

func TestDeclarationPassFunctionParamsGetOwnScope(t *testing.T) {
	unit, _ := runDeclarationPass(t, `def f(a: int32, b: int32): int32 { return a + b; }`)
	fn := unit.Decls[0].(*ast.FunctionDeclaration)
	if fn.Scope == nil {
		t.Fatal("FunctionDeclaration.Scope = nil, want a parameter scope")
	}
	if fn.Scope.Enclosing != unit.Scope {
		t.Error("a function's parameter scope should enclose directly in the global scope")
	}
	for _, param := range fn.Params {
		if param.Symbol == nil {
			t.Errorf("parameter %q has no Symbol", param.DeclName())
		}
	}
}

func TestDeclarationPassBodyScopeNestsUnderParams(t *testing.T) {
	unit, _ := runDeclarationPass(t, `def f { var x: int32 = 1; }`)
	fn := unit.Decls[0].(*ast.FunctionDeclaration)
	if fn.Body.Scope.Enclosing != fn.Scope {
		t.Error("the function body's scope should be nested under the parameter scope")
	}
}

func TestDeclarationPassIfBranchesGetDistinctScopes(t *testing.T) {
	unit, _ := runDeclarationPass(t, `
		def f {
			if (1 < 2) {
				var x: int32 = 1;
			} else {
				var x: int32 = 2;
			}
		}
	`)
	fn := unit.Decls[0].(*ast.FunctionDeclaration)
	ifStmt := fn.Body.Stmts[0].(*ast.IfStatement)
	elseBlock := ifStmt.Else.(*ast.Block)
	if ifStmt.Then.Scope == elseBlock.Scope {
		t.Error("the then-branch and else-branch must not share a scope")
	}
}

func TestDeclarationPassAggregateFieldsShareAMemberScope(t *testing.T) {
	unit, _ := runDeclarationPass(t, `
		struct Point {
			var x: int32;
			var y: int32;
		}
	`)
	agg := unit.Decls[0].(*ast.AggregateDeclaration)
	if agg.Scope == nil || agg.Scope.Kind != symtab.Structure {
		t.Fatalf("AggregateDeclaration.Scope kind = %v, want Structure", agg.Scope)
	}
	for _, f := range agg.Fields {
		if f.Name.Scope != agg.Scope {
			t.Errorf("field %q's Name.Scope should be the structure's member scope", f.DeclName())
		}
	}
}

func TestDeclarationPassNameNodesGetScopeAttached(t *testing.T) {
	unit, _ := runDeclarationPass(t, `var x: int32 = 1; var y: int32 = x;`)
	y := unit.Decls[1].(*ast.VariableDeclaration)
	name := y.Init.Child.(*ast.Name)
	if name.Scope == nil {
		t.Error("a Name referenced in an initializer should have Scope attached by the declaration pass")
	}
}
