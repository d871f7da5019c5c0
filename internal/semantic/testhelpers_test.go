package semantic

import (
	"testing"

	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/config"
	"github.com/cwbudde/semc/internal/diag"
	"github.com/cwbudde/semc/internal/lexer"
	"github.com/cwbudde/semc/internal/parser"
	"github.com/cwbudde/semc/internal/symtab"
)

// newTestPassContext builds a fresh PassContext over a new builtin scope, for
// tests that exercise a single pass directly rather than the full Analyzer
// pipeline.
func newTestPassContext(source string) *PassContext {
	return &PassContext{
		Builtin: symtab.NewBuiltinScope(),
		Diags: diag.NewSink(source),
		Config: config.Default(),
	}
}

// runPasses parses src and runs exactly the given passes, in order, against
// a fresh PassContext. Useful for a pass that depends on attributes an
// earlier pass fills in without pulling in the entire seven-pass pipeline.
func runPasses(t *testing.T, src string, passes ...Pass) (*ast.TranslationUnit, *PassContext) {
	t.Helper()
	p := parser.New(lexer.New(src))
	unit := p.ParseTranslationUnit()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	ctx := newTestPassContext(src)
	for _, pass := range passes {
		if err := pass.Run(unit, ctx); err != nil {
			t.Fatalf("%s pass error = %v", pass.Name(), err)
		}
	}
	return unit, ctx
}
