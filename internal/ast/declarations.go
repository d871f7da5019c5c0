package ast

import (
	"github.com/cwbudde/semc/internal/symtab"
	"github.com/cwbudde/semc/internal/token"
)

// VariableDeclaration has exactly three children in fixed positions: Name,
// TypeSpec (concrete or AlphaType), and an optional Init expression,
// already wrapped in an ExpressionRoot by the parser.
type VariableDeclaration struct {
	Tok token.Token // the `var`/`const` keyword
	Name *Name
	TypeSpec TypeSpec
	Init *ExpressionRoot // nil if no initializer
	Global bool // is_global, set by the parser
	Final bool // `const` qualifier, mirrored onto Symbol.IsFinal

	Symbol *symtab.Symbol // filled in during scope/symbol construction
}

func (v *VariableDeclaration) Pos() token.Position { return v.Tok.Pos }
func (v *VariableDeclaration) stmtNode() {}
func (v *VariableDeclaration) DeclName() string { return v.Name.Tok.Lexeme }
func (v *VariableDeclaration) IsGlobal() bool { return v.Global }
func (v *VariableDeclaration) NamePos() token.Position { return v.Name.Pos() }

// Parameter is a single function parameter (name plus declared type). It
// satisfies symtab.Declaration directly (IsGlobal always false) so a
// parameter reference can be position-checked the same way as a local.
type Parameter struct {
	Name *Name
	TypeSpec TypeSpec

	Symbol *symtab.Symbol // filled in during scope/symbol construction
}

func (p *Parameter) Pos() token.Position { return p.Name.Pos() }
func (p *Parameter) DeclName() string { return p.Name.Tok.Lexeme }
func (p *Parameter) IsGlobal() bool { return false }
func (p *Parameter) NamePos() token.Position { return p.Name.Pos() }

// FunctionDeclaration. Params are entered into Scope (the function's own
// scope, pushed before walking parameters and Body); Body is a nested
// Block whose own Scope encloses Scope.
type FunctionDeclaration struct {
	Tok token.Token
	Name *Name
	Params []*Parameter
	RetType TypeSpec // nil means void
	Body *Block

	Scope *symtab.Scope // parameter scope
	Symbol *symtab.Symbol
}

func (f *FunctionDeclaration) Pos() token.Position { return f.Tok.Pos }
func (f *FunctionDeclaration) stmtNode() {}
func (f *FunctionDeclaration) DeclName() string { return f.Name.Tok.Lexeme }
func (f *FunctionDeclaration) IsGlobal() bool { return true }

// AggregateKind distinguishes the three member-holding declaration shapes
// that share a layout: structure, union, class.
type AggregateKind int

const (
	AggregateStructure AggregateKind = iota
	AggregateUnion
	AggregateClass
)

// AggregateDeclaration covers StructureDeclaration, UnionDeclaration, and
// ClassDeclaration: a named list of field VariableDeclarations sharing a
// member scope pushed before recursing into members.
type AggregateDeclaration struct {
	Tok token.Token
	AggKind AggregateKind
	Name *Name
	Fields []*VariableDeclaration

	Scope *symtab.Scope // member scope
	Symbol *symtab.Symbol
}

func (a *AggregateDeclaration) Pos() token.Position { return a.Tok.Pos }
func (a *AggregateDeclaration) stmtNode() {}
func (a *AggregateDeclaration) DeclName() string { return a.Name.Tok.Lexeme }
func (a *AggregateDeclaration) IsGlobal() bool { return true }

// TypealiasDeclaration: `type Name = TypeSpec;`. The alias's resolved
// underlying type is written onto Symbol.Type.(*types.TypealiasType).Underlying
// once alias resolution runs.
type TypealiasDeclaration struct {
	Tok token.Token
	Name *Name
	TypeSpec TypeSpec

	Symbol *symtab.Symbol // declaration creates the TypeSymbol; alias resolution fills Underlying
}

func (t *TypealiasDeclaration) Pos() token.Position { return t.Tok.Pos }
func (t *TypealiasDeclaration) stmtNode() {}
func (t *TypealiasDeclaration) DeclName() string { return t.Name.Tok.Lexeme }
func (t *TypealiasDeclaration) IsGlobal() bool { return true }
