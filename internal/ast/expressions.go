package ast

import (
	"github.com/cwbudde/semc/internal/symtab"
	"github.com/cwbudde/semc/internal/token"
	"github.com/cwbudde/semc/internal/types"
)

// ExpressionRoot is the synthetic node marking the top of every syntactic
// expression. The global dependency pass attaches DepList; the constant
// checker attaches IsConstant; expression typing attaches Type by copying
// Child's.
type ExpressionRoot struct {
	Child Expression

	Type types.Type // filled in by expression typing
	DepList []Declaration // only meaningful for global initializers/array sizes
	IsConstant *bool // nil until the constant checker computes it
}

func (e *ExpressionRoot) Pos() token.Position { return e.Child.Pos() }
func (e *ExpressionRoot) exprNode() {}

// LiteralKind tags which literal production produced a Literal node.
type LiteralKind int

const (
	LiteralBool LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralString
	LiteralChar
	LiteralNull
)

// Literal is a leaf expression node for a single lexical literal. SuffixKind
// holds the primitive kind for LiteralInt/LiteralFloat: the suffix-derived
// kind when HasSuffix is set, otherwise the default kind the parser chose
// for the unsuffixed literal.
type Literal struct {
	Tok token.Token
	Kind LiteralKind

	// SuffixKind is the primitive kind implied by a literal's suffix
	// (e.g. `7i64` -> Int64), or the parser's default kind (int32, int64 or
	// float64) if no suffix was present.
	SuffixKind types.PrimitiveKind
	HasSuffix bool

	Type types.Type
}

func (l *Literal) Pos() token.Position { return l.Tok.Pos }
func (l *Literal) exprNode() {}

// Name is a reference to an identifier, either as an expression operand or
// as the declared name of a declaration. Scope is attached during scope
// construction so later passes resolve without threading a current-scope
// parameter; Symbol is attached once resolution succeeds (at the
// declaration site during scope construction, or at the reference site
// during reference validation).
type Name struct {
	Tok token.Token

	Scope *symtab.Scope
	Symbol *symtab.Symbol
	Type types.Type // propagated from Symbol.Type
}

func (n *Name) Pos() token.Position { return n.Tok.Pos }
func (n *Name) exprNode() {}

// UnaryExpression: `+ - ! ~ *` applied to Operand.
type UnaryExpression struct {
	Op token.Token
	Operand Expression

	Type types.Type
}

func (u *UnaryExpression) Pos() token.Position { return u.Op.Pos }
func (u *UnaryExpression) exprNode() {}

// BinaryExpression: Left Op Right.
type BinaryExpression struct {
	Op token.Token
	Left, Right Expression

	Type types.Type
}

func (b *BinaryExpression) Pos() token.Position { return b.Op.Pos }
func (b *BinaryExpression) exprNode() {}

// IndexExpression: Base[Index], typed as Base's array element type.
type IndexExpression struct {
	Base Expression
	Index Expression
	RBrack token.Token

	Type types.Type
}

func (i *IndexExpression) Pos() token.Position { return i.Base.Pos() }
func (i *IndexExpression) exprNode() {}

// CallExpression: Callee(Args...). Argument-to-parameter compatibility
// checking is final type checking after conversions are inserted and is
// out of scope here; the kernel only types Callee/Args and, when Callee
// resolves to a FunctionSymbol, propagates its return type.
type CallExpression struct {
	Callee Expression
	Args []Expression
	RParen token.Token

	Type types.Type
}

func (c *CallExpression) Pos() token.Position { return c.Callee.Pos() }
func (c *CallExpression) exprNode() {}

// PromoteCast wraps Child with an inserted implicit promotion (usual
// unary/binary conversions). Type is the promoted destination type.
type PromoteCast struct {
	Child Expression
	Type types.Type
}

func (p *PromoteCast) Pos() token.Position { return p.Child.Pos() }
func (p *PromoteCast) exprNode() {}

// WidenCast wraps Child with an inserted implicit widening conversion
// distinct from a usual-conversion promotion — specifically, a local
// variable's mandatory numeric widening from its initializer's inferred
// type up to a wider declared type.
type WidenCast struct {
	Child Expression
	Type types.Type
}

func (w *WidenCast) Pos() token.Position { return w.Child.Pos() }
func (w *WidenCast) exprNode() {}
