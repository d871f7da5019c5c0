package semantic

import (
	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/diag"
	"github.com/cwbudde/semc/internal/symtab"
)

// ReferenceValidationPass resolves every Name node inside an ExpressionRoot
// against its attached Scope, and for a local variable or parameter
// reference, rejects use before the declaration's own name-node position
// (declare-before-use; globals and functions are exempt — they may be
// referenced anywhere in the unit).
type ReferenceValidationPass struct{}

func (p *ReferenceValidationPass) Name() string { return "reference" }

func (p *ReferenceValidationPass) Run(unit *ast.TranslationUnit, ctx *PassContext) error {
	WalkExpressionRoots(unit, func(root *ast.ExpressionRoot, kind ExprRootKind) {
		p.validateExpr(root.Child, ctx)
	})
	return nil
}

func (p *ReferenceValidationPass) validateExpr(e ast.Expression, ctx *PassContext) {
	switch n := e.(type) {
	case *ast.Name:
		p.validateName(n, ctx)
	case *ast.Literal:
	case *ast.UnaryExpression:
		p.validateExpr(n.Operand, ctx)
	case *ast.BinaryExpression:
		p.validateExpr(n.Left, ctx)
		p.validateExpr(n.Right, ctx)
	case *ast.IndexExpression:
		p.validateExpr(n.Base, ctx)
		p.validateExpr(n.Index, ctx)
	case *ast.CallExpression:
		p.validateExpr(n.Callee, ctx)
		for _, a := range n.Args {
			p.validateExpr(a, ctx)
		}
	}
}

func (p *ReferenceValidationPass) validateName(n *ast.Name, ctx *PassContext) {
	if n.Scope == nil {
		return
	}
	sym, ok := n.Scope.Resolve(n.Tok.Lexeme)
	if !ok {
		ctx.Diags.Reportf(diag.Error, p.Name(), n.Pos(), "name not declared: %s", n.Tok.Lexeme)
		return
	}
	n.Symbol = sym
	if sym.Kind == symtab.VariableSymbolKind && sym.Decl != nil && !sym.Decl.IsGlobal() {
		if n.Pos().Before(sym.Decl.NamePos()) {
			ctx.Diags.Reportf(diag.Error, p.Name(), n.Pos(), "variable %q referenced before its declaration", n.Tok.Lexeme)
		}
	}
}
