package ast

import (
	"github.com/cwbudde/semc/internal/token"
	"github.com/cwbudde/semc/internal/types"
)

// AlphaType is the type-inference placeholder meaning "infer from
// initializer". A VariableDeclaration/Parameter with an AlphaType specifier
// has its Resolved field filled in by global or local inference, replacing
// the placeholder's semantics in place (the node itself is left in the
// tree; only Resolved becomes meaningful).
type AlphaType struct {
	Tok token.Token
	Resolved types.Type // filled in by global inference (globals) or local inference (locals)
}

func (a *AlphaType) Pos() token.Position { return a.Tok.Pos }
func (a *AlphaType) typeSpecNode() {}

// PrimitiveType names one of the reserved primitive-type keywords.
type PrimitiveType struct {
	Tok token.Token
	Resolved types.Type // looked up against the built-in scope
}

func (p *PrimitiveType) Pos() token.Position { return p.Tok.Pos }
func (p *PrimitiveType) typeSpecNode() {}

// NominalType references a structure/union/class/typealias by name. It is
// resolved against the enclosing scope, reused by local-variable
// declared-type resolution and by function-signature/field resolution.
type NominalType struct {
	Tok token.Token
	Resolved types.Type // filled in by type-spec resolution
}

func (n *NominalType) Pos() token.Position { return n.Tok.Pos }
func (n *NominalType) typeSpecNode() {}

// PointerType: `Base*`.
type PointerType struct {
	Star token.Token
	Base TypeSpec

	Resolved types.Type
}

func (p *PointerType) Pos() token.Position { return p.Star.Pos }
func (p *PointerType) typeSpecNode() {}

// ArrayType: `Base[Size]`, where Size is either a parsed integer literal
// (Literal != nil, SizeExpr == nil) or a symbolic expression wrapped in its
// own ExpressionRoot so the global dependency pass and the constant checker
// can visit it uniformly.
type ArrayType struct {
	LBrack token.Token
	Base TypeSpec
	Size int // parsed literal size, or -1 if SizeExpr is used
	SizeExpr *ExpressionRoot // non-nil when the size is a symbolic expression

	Resolved types.Type
	DepList []Declaration // global declarations SizeExpr references, when any
}

func (a *ArrayType) Pos() token.Position { return a.LBrack.Pos }
func (a *ArrayType) typeSpecNode() {}

// ResolvedTypeOf reads the Resolved field off whichever concrete TypeSpec
// variant ts is, without every call site needing its own type switch.
func ResolvedTypeOf(ts TypeSpec) types.Type {
	switch t := ts.(type) {
	case *PrimitiveType:
		return t.Resolved
	case *NominalType:
		return t.Resolved
	case *PointerType:
		return t.Resolved
	case *ArrayType:
		return t.Resolved
	case *AlphaType:
		return t.Resolved
	}
	return nil
}
