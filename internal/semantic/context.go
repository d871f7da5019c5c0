package semantic

import (
	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/config"
	"github.com/cwbudde/semc/internal/diag"
	"github.com/cwbudde/semc/internal/symtab"
)

// PassContext is the shared state threaded through every pass. The
// scope/symbol model already lives in package symtab, so PassContext only
// carries what passes need beyond the tree itself — the analyzer context is
// passed explicitly rather than held in a global.
type PassContext struct {
	// Builtin is the shared, read-only scope seeded with every primitive
	// type. One Analyzer owns exactly one Builtin scope, reused across
	// translation units.
	Builtin *symtab.Scope

	// Diags collects every diagnostic reported by any pass.
	Diags *diag.Sink

	// TopoOrder is nil until the global dependency pass runs, and nil again
	// if that pass detected a cycle among global declarations — in which
	// case global inference skips its work entirely.
	TopoOrder []*ast.VariableDeclaration

	// Config carries the CLI/file-derived tunables.
	Config *config.Config
}

// HasCriticalErrors reports whether the pipeline should stop early. An
// ordinary semantic error is never critical on its own; only a configured
// MaxErrors budget being exceeded is, giving the CLI a way to bound
// pathological inputs. WarningsAsErrors additionally counts warnings toward
// that budget.
func (ctx *PassContext) HasCriticalErrors() bool {
	if ctx.Config == nil || ctx.Config.MaxErrors <= 0 {
		return false
	}
	count := 0
	for _, d := range ctx.Diags.Diagnostics() {
		if d.Severity == diag.Error || (ctx.Config.WarningsAsErrors && d.Severity == diag.Warning) {
			count++
		}
	}
	return count >= ctx.Config.MaxErrors
}
