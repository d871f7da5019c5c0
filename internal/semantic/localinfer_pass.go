package semantic

import (
	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/diag"
	"github.com/cwbudde/semc/internal/types"
)

// LocalInferencePass types every local variable, statement condition,
// assignment, and return value inside every function body. A
// concrete-typed local gets a WidenCast inserted when its initializer's
// type is narrower than its declared type; an alpha-typed local's declared
// type is the initializer's inferred type verbatim, and a missing
// initializer on one is an error (there is nothing to infer from).
type LocalInferencePass struct{}

func (p *LocalInferencePass) Name() string { return "localinfer" }

func (p *LocalInferencePass) Run(unit *ast.TranslationUnit, ctx *PassContext) error {
	k := NewKernel(ctx, p.Name())
	for _, d := range unit.Decls {
		fn, ok := d.(*ast.FunctionDeclaration)
		if !ok {
			continue
		}
		for _, param := range fn.Params {
			if arr, ok := param.TypeSpec.(*ast.ArrayType); ok && arr.SizeExpr != nil {
				k.TypeRoot(arr.SizeExpr)
			}
		}
		if fn.Body != nil {
			p.typeBlock(fn.Body, ctx, k)
		}
	}
	return nil
}

func (p *LocalInferencePass) typeBlock(b *ast.Block, ctx *PassContext, k *Kernel) {
	for _, stmt := range b.Stmts {
		p.typeStmt(stmt, ctx, k)
	}
}

func (p *LocalInferencePass) typeStmt(s ast.Statement, ctx *PassContext, k *Kernel) {
	switch stmt := s.(type) {
	case *ast.VariableDeclaration:
		p.typeLocal(stmt, ctx, k)
	case *ast.ExpressionStatement:
		k.TypeRoot(stmt.Expr)
	case *ast.AssignmentStatement:
		k.TypeRoot(stmt.Target)
		k.TypeRoot(stmt.Value)
	case *ast.ReturnStatement:
		if stmt.Value != nil {
			k.TypeRoot(stmt.Value)
		}
	case *ast.IfStatement:
		k.TypeRoot(stmt.Cond)
		p.typeBlock(stmt.Then, ctx, k)
		if stmt.Else != nil {
			p.typeStmt(stmt.Else, ctx, k)
		}
	case *ast.WhileStatement:
		k.TypeRoot(stmt.Cond)
		p.typeBlock(stmt.Body, ctx, k)
	case *ast.ForStatement:
		if stmt.Init != nil {
			p.typeStmt(stmt.Init, ctx, k)
		}
		if stmt.Cond != nil {
			k.TypeRoot(stmt.Cond)
		}
		if stmt.Post != nil {
			p.typeStmt(stmt.Post, ctx, k)
		}
		p.typeBlock(stmt.Body, ctx, k)
	case *ast.Block:
		p.typeBlock(stmt, ctx, k)
	case *ast.BreakStatement, *ast.ContinueStatement:
	}
}

func (p *LocalInferencePass) typeLocal(d *ast.VariableDeclaration, ctx *PassContext, k *Kernel) {
	if arr, ok := d.TypeSpec.(*ast.ArrayType); ok && arr.SizeExpr != nil {
		k.TypeRoot(arr.SizeExpr)
	}

	alpha, isAlpha := d.TypeSpec.(*ast.AlphaType)
	if isAlpha {
		if d.Init == nil {
			ctx.Diags.Reportf(diag.Error, p.Name(), d.Pos(), "missing initializer for inferred local %q", d.DeclName())
			return
		}
		initType := k.TypeRoot(d.Init)
		alpha.Resolved = initType
		if d.Symbol != nil {
			d.Symbol.Type = initType
			p.cacheConstValue(d)
		}
		return
	}

	declared := ResolveTypeSpec(d.TypeSpec, d.Name.Scope, ctx.Builtin, ctx.Diags, p.Name())
	if d.Init != nil {
		initType := k.TypeRoot(d.Init)
		if initType != nil && declared != nil && canWiden(initType, declared) {
			d.Init.Child = &ast.WidenCast{Child: d.Init.Child, Type: declared}
			d.Init.Type = declared
		}
	}
	if d.Symbol != nil {
		d.Symbol.Type = declared
		p.cacheConstValue(d)
	}
}

// cacheConstValue folds d's initializer to an integral value, if possible,
// and caches it on the symbol so a later array-size expression referencing
// this local (only legal when d is declared final/const, per the constant
// checker's rule) can fold through it too.
func (p *LocalInferencePass) cacheConstValue(d *ast.VariableDeclaration) {
	if d.Init == nil {
		return
	}
	if v, ok := evalConstInt(d.Init.Child); ok {
		d.Symbol.ConstValue = &v
	}
}

// canWiden reports whether a value of type from may be implicitly widened to
// the wider type to when binding a local's declared type to its narrower
// initializer: same-signedness integral widening to equal-or-higher rank,
// any integral widening to a float, or float32 widening to float64.
func canWiden(from, to types.Type) bool {
	if from.Equals(to) {
		return false
	}
	if types.IsIntegral(from) && types.IsIntegral(to) {
		sameSign := (types.IsSigned(from) && types.IsSigned(to)) || (types.IsUnsigned(from) && types.IsUnsigned(to))
		return sameSign && types.Rank(to) >= types.Rank(from)
	}
	if types.IsIntegral(from) && types.IsFloat(to) {
		return true
	}
	if isF32(from) && isF64(to) {
		return true
	}
	return false
}
