package semantic

import (
	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/diag"
	"github.com/cwbudde/semc/internal/types"
)

// ConstantCheckPass computes is_constant bottom-up for every expression root
// and enforces the constant-expression requirement specifically for
// global initializers and array sizes — other expression roots get their
// IsConstant attribute filled in (useful to a future constant-folding pass)
// but are never rejected for being non-constant. It then folds the integral
// value of every constant array-size expression into the array type's
// Resolved.Size.
type ConstantCheckPass struct{}

func (p *ConstantCheckPass) Name() string { return "constantcheck" }

func (p *ConstantCheckPass) Run(unit *ast.TranslationUnit, ctx *PassContext) error {
	WalkExpressionRoots(unit, func(root *ast.ExpressionRoot, kind ExprRootKind) {
		isConst := computeConstant(root.Child)
		root.IsConstant = &isConst
		if !isConst && (kind == RootGlobalInit || kind == RootArraySize) {
			what := "initializer"
			if kind == RootArraySize {
				what = "array size"
			}
			ctx.Diags.Reportf(diag.Error, p.Name(), root.Pos(), "%s must be a constant expression", what)
		}
	})
	WalkArrayTypeSpecs(unit, func(arr *ast.ArrayType) {
		if arr.SizeExpr == nil || arr.SizeExpr.IsConstant == nil || !*arr.SizeExpr.IsConstant {
			return
		}
		v, ok := evalConstInt(arr.SizeExpr.Child)
		if !ok {
			return
		}
		if at, ok := arr.Resolved.(*types.ArrayType); ok {
			at.Size = int(v)
		}
	})
	return nil
}

// computeConstant treats a Name as constant iff its resolved symbol's
// IsConstant flag is set (the const/final qualifier). A global variable
// without that qualifier is not constant, even though its own initializer
// is itself required to be constant by this same pass.
func computeConstant(e ast.Expression) bool {
	switch n := e.(type) {
	case *ast.Literal:
		return true
	case *ast.Name:
		return n.Symbol != nil && n.Symbol.IsConstant
	case *ast.UnaryExpression:
		return computeConstant(n.Operand)
	case *ast.BinaryExpression:
		return computeConstant(n.Left) && computeConstant(n.Right)
	case *ast.PromoteCast:
		return computeConstant(n.Child)
	case *ast.WidenCast:
		return computeConstant(n.Child)
	case *ast.IndexExpression, *ast.CallExpression:
		return false
	}
	return false
}
