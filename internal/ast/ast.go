// Package ast defines the abstract syntax tree produced by the parser and
// annotated in place by the semantic passes.
//
// Rather than a dynamic name->value attribute dictionary per node, each node
// kind carries a typed set of fields for the attributes the passes write
// (scope, symbol, type, dep list, is_constant). A field's zero value means
// the attribute has not yet been written; later passes must check for that
// before trusting it.
package ast

import (
	"github.com/cwbudde/semc/internal/symtab"
	"github.com/cwbudde/semc/internal/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() token.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	exprNode()
}

// Statement is any node that appears in a function body or at top level.
type Statement interface {
	Node
	stmtNode()
}

// Declaration is a Statement that introduces a name into a scope.
type Declaration interface {
	Statement
	DeclName() string
	IsGlobal() bool
}

// TypeSpec is any node occurring in type-specifier position: a primitive
// name, a nominal reference, a pointer, an array, or the AlphaType
// placeholder meaning "infer from initializer".
type TypeSpec interface {
	Node
	typeSpecNode()
}

// TranslationUnit is the root of the tree; it owns every node beneath it.
type TranslationUnit struct {
	Decls []Declaration
	Scope *symtab.Scope // the global scope, attached during scope/symbol construction
}

func (u *TranslationUnit) Pos() token.Position {
	if len(u.Decls) == 0 {
		return token.Position{}
	}
	return u.Decls[0].Pos()
}

// Block is a brace-delimited sequence of statements (a function body, or
// the body of an if/while/for).
type Block struct {
	LBrace token.Token
	Stmts []Statement
	Scope *symtab.Scope // its own Local scope
}

func (b *Block) Pos() token.Position { return b.LBrace.Pos }
func (b *Block) stmtNode() {}

// A FunctionDeclaration's body (the grammar's "TopBlock") is represented by
// the same Block type as a nested if/while body; scope/symbol construction
// opens a fresh Local scope for either.
