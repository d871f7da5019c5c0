package ast

import "github.com/cwbudde/semc/internal/token"

// ExpressionStatement is a bare expression used for its side effect (e.g. a
// call), or the left-hand side of an assignment.
type ExpressionStatement struct {
	Expr *ExpressionRoot
}

func (e *ExpressionStatement) Pos() token.Position { return e.Expr.Pos() }
func (e *ExpressionStatement) stmtNode() {}

// AssignmentStatement: Target = Value. Target is typed by the expression
// kernel like any other expression; whether Target is a valid assignment
// target (an lvalue) is a later-pass/code-gen concern, out of scope here.
type AssignmentStatement struct {
	Eq token.Token
	Target *ExpressionRoot
	Value *ExpressionRoot
}

func (a *AssignmentStatement) Pos() token.Position { return a.Target.Pos() }
func (a *AssignmentStatement) stmtNode() {}

// ReturnStatement. Value is nil for a bare `return;`.
type ReturnStatement struct {
	Tok token.Token
	Value *ExpressionRoot
}

func (r *ReturnStatement) Pos() token.Position { return r.Tok.Pos }
func (r *ReturnStatement) stmtNode() {}

// IfStatement. Else is nil when there is no else-branch; it holds either a
// *Block or another *IfStatement (for `else if`).
type IfStatement struct {
	Tok token.Token
	Cond *ExpressionRoot
	Then *Block
	Else Statement
}

func (i *IfStatement) Pos() token.Position { return i.Tok.Pos }
func (i *IfStatement) stmtNode() {}

// WhileStatement.
type WhileStatement struct {
	Tok token.Token
	Cond *ExpressionRoot
	Body *Block
}

func (w *WhileStatement) Pos() token.Position { return w.Tok.Pos }
func (w *WhileStatement) stmtNode() {}

// ForStatement: C-style `for (Init; Cond; Post) Body`, each clause optional.
type ForStatement struct {
	Tok token.Token
	Init Statement // *VariableDeclaration, *AssignmentStatement, or *ExpressionStatement; nil if absent
	Cond *ExpressionRoot
	Post Statement
	Body *Block
}

func (f *ForStatement) Pos() token.Position { return f.Tok.Pos }
func (f *ForStatement) stmtNode() {}

// BreakStatement / ContinueStatement.
type BreakStatement struct{ Tok token.Token }

func (b *BreakStatement) Pos() token.Position { return b.Tok.Pos }
func (b *BreakStatement) stmtNode() {}

type ContinueStatement struct{ Tok token.Token }

func (c *ContinueStatement) Pos() token.Position { return c.Tok.Pos }
func (c *ContinueStatement) stmtNode() {}
