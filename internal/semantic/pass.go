// Package semantic implements the fixed seven-pass pipeline: declaration &
// scope, type-alias resolution, reference validation, global dependency
// ordering, global inference, local inference, and constant-expression
// checking. Each pass only reads attributes written by earlier passes and
// annotates the tree in place. The only shape changes are the PromoteCast
// and WidenCast nodes that expression typing and local inference wrap
// around existing expressions.
package semantic

import (
	"context"

	"github.com/cwbudde/semc/internal/ast"
)

// Pass is a single stage of the pipeline.
type Pass interface {
	// Name identifies the pass for diagnostic phase tagging and
	// logging; it doubles as the diag.Sink phase key.
	Name() string

	// Run executes the pass over unit, reading/writing ctx and annotating
	// unit's nodes in place. A returned error is reserved for fatal internal
	// failures, never for an ordinary semantic error — those are reported
	// through ctx.Diags.
	Run(unit *ast.TranslationUnit, ctx *PassContext) error
}

// PassManager runs a fixed sequence of passes in order.
type PassManager struct {
	passes []Pass
}

// NewPassManager creates a manager that runs passes in the given order.
func NewPassManager(passes ...Pass) *PassManager {
	return &PassManager{passes: passes}
}

// RunAll runs every pass in order. An ordinary semantic error never halts
// the pipeline early — only ctx.HasCriticalErrors() (a configured MaxErrors
// budget) does. Passes missing a prerequisite attribute (e.g. global
// inference after a dependency cycle) are expected to guard themselves and
// return early. goctx is checked once per pass boundary for cooperative
// cancellation, never mid-pass.
func (pm *PassManager) RunAll(goctx context.Context, unit *ast.TranslationUnit, ctx *PassContext) error {
	for _, pass := range pm.passes {
		if err := goctx.Err(); err != nil {
			return err
		}
		if err := pass.Run(unit, ctx); err != nil {
			return err
		}
		if ctx.HasCriticalErrors() {
			break
		}
	}
	return nil
}
