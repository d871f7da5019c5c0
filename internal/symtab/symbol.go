// Package symtab implements the Symbol and Scope model: named entries
// living in a nested lexical scope chain rooted at a shared built-in scope.
package symtab

import (
	"github.com/cwbudde/semc/internal/token"
	"github.com/cwbudde/semc/internal/types"
)

// Kind tags the concrete variant of a Symbol, mirroring the sum variant
// TypeSymbol/VariableSymbol/FunctionSymbol/ClassSymbol/StructureSymbol/
// UnionSymbol.
type Kind int

const (
	TypeSymbolKind Kind = iota
	VariableSymbolKind
	FunctionSymbolKind
	ClassSymbolKind
	StructureSymbolKind
	UnionSymbolKind
)

// Declaration is the minimal shape reference validation and the global
// dependency pass need from a declaration AST node: its source position,
// its declared name, and whether it lives at translation-unit scope.
// Declaring it here (rather than depending on package ast) keeps symtab
// free of a symtab<->ast import cycle — any ast.Declaration already
// satisfies this interface structurally.
type Declaration interface {
	Pos() token.Position
	DeclName() string
	IsGlobal() bool
	// NamePos is the position of the declared name token specifically
	// (distinct from Pos, which may be the leading keyword), used by
	// reference validation's declare-before-use comparison.
	NamePos() token.Position
}

// Symbol is a named entry in a Scope. Not every field applies to every Kind;
// see the per-kind constructors below for which fields are meaningful.
type Symbol struct {
	Kind Kind
	Name string

	// Type holds:
	// TypeSymbolKind: the resolved type (primitive, or TypealiasType
	// whose Underlying is nil until alias resolution runs).
	// VariableSymbolKind: the variable's type, nil until type inference runs.
	// FunctionSymbolKind: the *types.FunctionType signature, nil until
	// resolved.
	// Class/Structure/UnionSymbolKind: the *types.NamedType.
	Type types.Type

	// Decl is a non-owning back-reference to the declaration node, used by
	// reference validation for position checks and the global dependency
	// pass for dependency edges. Only meaningful for VariableSymbolKind.
	Decl Declaration

	// IsConstant is true for symbols usable inside a constant expression,
	// set at declaration time from the `const` qualifier, not derived from
	// the initializer's own constant-ness.
	IsConstant bool

	// IsFinal mirrors the `const` qualifier used to declare the symbol
	// (immutability, a later-pass/code-gen concern recorded here for
	// completeness).
	IsFinal bool

	// ConstValue caches the folded integral value of a VariableSymbol's
	// initializer when the expression kernel can evaluate it (literal
	// integers, and arithmetic over other folded constants). nil when the
	// initializer isn't integral or couldn't be folded. Consulted when an
	// array-size expression references this symbol.
	ConstValue *int64
}

// NewTypeSymbol creates a symbol naming a primitive or type-alias.
func NewTypeSymbol(name string, t types.Type) *Symbol {
	return &Symbol{Kind: TypeSymbolKind, Name: name, Type: t}
}

// NewVariableSymbol creates a symbol for a global or local variable. decl is
// the owning declaration node; isConstant/isFinal are copied from the
// `const` qualifier at declaration time.
func NewVariableSymbol(name string, decl Declaration, isConstant, isFinal bool) *Symbol {
	return &Symbol{Kind: VariableSymbolKind, Name: name, Decl: decl, IsConstant: isConstant, IsFinal: isFinal}
}

// NewFunctionSymbol creates a symbol for a function; its signature is filled
// in once the function's parameter and return type-specifiers are resolved.
func NewFunctionSymbol(name string) *Symbol {
	return &Symbol{Kind: FunctionSymbolKind, Name: name}
}

// NewClassSymbol, NewStructureSymbol, NewUnionSymbol create symbols for the
// corresponding named aggregate declarations.
func NewClassSymbol(name string) *Symbol {
	return &Symbol{Kind: ClassSymbolKind, Name: name, Type: types.NewClass(name)}
}

func NewStructureSymbol(name string) *Symbol {
	return &Symbol{Kind: StructureSymbolKind, Name: name, Type: types.NewStructure(name)}
}

func NewUnionSymbol(name string) *Symbol {
	return &Symbol{Kind: UnionSymbolKind, Name: name, Type: types.NewUnion(name)}
}
