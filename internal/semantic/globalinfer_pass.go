package semantic

import (
	"github.com/cwbudde/semc/internal/ast"
)

// GlobalInferencePass types every global initializer in dependency order
// (as computed by GlobalDependencyPass) and, for a global declared with an
// inferred (alpha) type, writes the inferred type back onto both the
// TypeSpec and the symbol. If the dependency pass found a cycle,
// ctx.TopoOrder is nil and this pass is a deliberate no-op — a pass is
// skipped, not aborted, when a prerequisite attribute is entirely absent.
type GlobalInferencePass struct{}

func (p *GlobalInferencePass) Name() string { return "globalinfer" }

func (p *GlobalInferencePass) Run(unit *ast.TranslationUnit, ctx *PassContext) error {
	if ctx.TopoOrder == nil {
		return nil
	}
	k := NewKernel(ctx, p.Name())
	for _, g := range ctx.TopoOrder {
		initType := k.TypeRoot(g.Init)

		alpha, isAlpha := g.TypeSpec.(*ast.AlphaType)
		if !isAlpha {
			if g.Symbol != nil {
				g.Symbol.Type = ast.ResolvedTypeOf(g.TypeSpec)
			}
		} else {
			alpha.Resolved = initType
			if g.Symbol != nil {
				g.Symbol.Type = initType
			}
		}

		if g.Init != nil && g.Symbol != nil {
			if v, ok := evalConstInt(g.Init.Child); ok {
				g.Symbol.ConstValue = &v
			}
		}
	}
	return nil
}
