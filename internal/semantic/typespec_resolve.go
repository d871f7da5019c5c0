package semantic

import (
	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/diag"
	"github.com/cwbudde/semc/internal/symtab"
	"github.com/cwbudde/semc/internal/types"
)

// ResolveTypeSpec resolves a type specifier to a concrete types.Type against
// scope (for nominal references) and builtin (for primitive keywords),
// writing the result onto the node's Resolved field. It assumes any
// typealias reachable from ts has already had its Underlying filled in by
// TypeAliasPass — it does not itself chase forward alias references, unlike
// TypeAliasPass.resolveRHS, which needs to for the aliases it is resolving.
// Reused by function-signature and aggregate-field resolution and by
// local-variable declared-type resolution.
func ResolveTypeSpec(ts ast.TypeSpec, scope, builtin *symtab.Scope, diags *diag.Sink, phase string) types.Type {
	switch t := ts.(type) {
	case *ast.PrimitiveType:
		sym, ok := builtin.Lookup(t.Tok.Lexeme)
		if !ok {
			diags.Reportf(diag.Error, phase, t.Pos(), "unknown primitive type: %s", t.Tok.Lexeme)
			return nil
		}
		t.Resolved = sym.Type
		return sym.Type
	case *ast.NominalType:
		sym, ok := scope.Resolve(t.Tok.Lexeme)
		if !ok {
			diags.Reportf(diag.Error, phase, t.Pos(), "invalid alias resolution: unknown nominal type %s", t.Tok.Lexeme)
			return nil
		}
		t.Resolved = sym.Type
		return sym.Type
	case *ast.PointerType:
		base := ResolveTypeSpec(t.Base, scope, builtin, diags, phase)
		if base == nil {
			return nil
		}
		t.Resolved = &types.PointerType{Base: base}
		return t.Resolved
	case *ast.ArrayType:
		base := ResolveTypeSpec(t.Base, scope, builtin, diags, phase)
		if base == nil {
			return nil
		}
		t.Resolved = &types.ArrayType{Base: base, Size: t.Size}
		return t.Resolved
	case *ast.AlphaType:
		return t.Resolved
	}
	return nil
}
