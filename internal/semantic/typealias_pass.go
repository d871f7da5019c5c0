package semantic

import (
	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/diag"
	"github.com/cwbudde/semc/internal/symtab"
	"github.com/cwbudde/semc/internal/types"
)

// TypeAliasPass resolves every typealias's right-hand side to a concrete
// type, following forward references to aliases declared later in the
// translation unit and detecting cycles via a `visiting` set. A cyclic
// alias is reported and its Underlying left nil rather than silently
// picking a partial type.
//
// It also resolves function signatures and aggregate field types. Those
// aren't typealias resolution as such, but share this pass's rationale
// (types must be known before expression typing) and its exact resolution
// machinery, so folding them in here avoids a near-duplicate pass.
type TypeAliasPass struct{}

func (p *TypeAliasPass) Name() string { return "typealias" }

func (p *TypeAliasPass) Run(unit *ast.TranslationUnit, ctx *PassContext) error {
	aliasDecls := map[string]*ast.TypealiasDeclaration{}
	for _, d := range unit.Decls {
		if a, ok := d.(*ast.TypealiasDeclaration); ok {
			aliasDecls[a.DeclName()] = a
		}
	}

	visiting := map[string]bool{}
	for _, d := range unit.Decls {
		if a, ok := d.(*ast.TypealiasDeclaration); ok {
			p.resolveAlias(a, unit.Scope, ctx, aliasDecls, visiting)
		}
	}

	for _, d := range unit.Decls {
		switch decl := d.(type) {
		case *ast.FunctionDeclaration:
			p.resolveFunctionSignature(decl, ctx)
		case *ast.AggregateDeclaration:
			p.resolveAggregateFields(decl, ctx)
		case *ast.VariableDeclaration:
			p.resolveGlobalTypeSpec(decl, unit.Scope, ctx)
		}
	}
	return nil
}

// resolveGlobalTypeSpec resolves a global variable's own concrete (non-alpha)
// type specifier against the translation unit's scope. An alpha-typed global
// is left untouched here; global inference fills it in from the initializer
// once the dependency order is known.
func (p *TypeAliasPass) resolveGlobalTypeSpec(d *ast.VariableDeclaration, global *symtab.Scope, ctx *PassContext) {
	if _, isAlpha := d.TypeSpec.(*ast.AlphaType); isAlpha {
		return
	}
	resolved := ResolveTypeSpec(d.TypeSpec, global, ctx.Builtin, ctx.Diags, p.Name())
	if d.Symbol != nil {
		d.Symbol.Type = resolved
	}
}

func (p *TypeAliasPass) resolveAlias(a *ast.TypealiasDeclaration, global *symtab.Scope, ctx *PassContext, aliasDecls map[string]*ast.TypealiasDeclaration, visiting map[string]bool) types.Type {
	if a.Symbol == nil {
		return nil // redeclared; declaration construction already reported it
	}
	aliasType, ok := a.Symbol.Type.(*types.TypealiasType)
	if !ok {
		return nil
	}
	if aliasType.Underlying != nil {
		return aliasType.Underlying
	}
	if visiting[a.DeclName()] {
		ctx.Diags.Reportf(diag.Error, p.Name(), a.Pos(), "circular type alias definition: %s", a.DeclName())
		return nil
	}
	visiting[a.DeclName()] = true
	defer delete(visiting, a.DeclName())

	underlying := p.resolveRHS(a.TypeSpec, global, ctx, aliasDecls, visiting)
	aliasType.Underlying = underlying
	return underlying
}

// resolveRHS resolves a typealias's own right-hand-side type specifier,
// chasing a NominalType that names another (possibly not-yet-resolved)
// alias, unlike the general-purpose ResolveTypeSpec.
func (p *TypeAliasPass) resolveRHS(ts ast.TypeSpec, scope *symtab.Scope, ctx *PassContext, aliasDecls map[string]*ast.TypealiasDeclaration, visiting map[string]bool) types.Type {
	switch t := ts.(type) {
	case *ast.PrimitiveType:
		sym, ok := ctx.Builtin.Lookup(t.Tok.Lexeme)
		if !ok {
			ctx.Diags.Reportf(diag.Error, p.Name(), t.Pos(), "unknown primitive type: %s", t.Tok.Lexeme)
			return nil
		}
		t.Resolved = sym.Type
		return sym.Type
	case *ast.NominalType:
		if aliasDecl, ok := aliasDecls[t.Tok.Lexeme]; ok {
			underlying := p.resolveAlias(aliasDecl, scope, ctx, aliasDecls, visiting)
			t.Resolved = aliasDecl.Symbol.Type
			return underlying
		}
		sym, ok := scope.Resolve(t.Tok.Lexeme)
		if !ok {
			ctx.Diags.Reportf(diag.Error, p.Name(), t.Pos(), "invalid alias resolution: unknown nominal type %s", t.Tok.Lexeme)
			return nil
		}
		t.Resolved = sym.Type
		return sym.Type
	case *ast.PointerType:
		base := p.resolveRHS(t.Base, scope, ctx, aliasDecls, visiting)
		if base == nil {
			return nil
		}
		t.Resolved = &types.PointerType{Base: base}
		return t.Resolved
	case *ast.ArrayType:
		base := p.resolveRHS(t.Base, scope, ctx, aliasDecls, visiting)
		if base == nil {
			return nil
		}
		t.Resolved = &types.ArrayType{Base: base, Size: t.Size}
		return t.Resolved
	}
	return nil
}

func (p *TypeAliasPass) resolveFunctionSignature(d *ast.FunctionDeclaration, ctx *PassContext) {
	params := make([]types.Type, len(d.Params))
	for i, param := range d.Params {
		params[i] = ResolveTypeSpec(param.TypeSpec, d.Scope, ctx.Builtin, ctx.Diags, p.Name())
		if param.Symbol != nil {
			param.Symbol.Type = params[i]
		}
	}
	ret := types.VoidType
	if d.RetType != nil {
		if r := ResolveTypeSpec(d.RetType, d.Scope, ctx.Builtin, ctx.Diags, p.Name()); r != nil {
			ret = r
		}
	}
	if d.Symbol != nil {
		d.Symbol.Type = &types.FunctionType{Params: params, Ret: ret}
	}
}

func (p *TypeAliasPass) resolveAggregateFields(d *ast.AggregateDeclaration, ctx *PassContext) {
	for _, f := range d.Fields {
		if _, isAlpha := f.TypeSpec.(*ast.AlphaType); isAlpha {
			continue // untyped fields are resolved like locals, deferred to local inference
		}
		resolved := ResolveTypeSpec(f.TypeSpec, d.Scope, ctx.Builtin, ctx.Diags, p.Name())
		if f.Symbol != nil {
			f.Symbol.Type = resolved
		}
	}
}
