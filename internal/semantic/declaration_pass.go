package semantic

import (
	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/diag"
	"github.com/cwbudde/semc/internal/symtab"
	"github.com/cwbudde/semc/internal/types"
)

// DeclarationPass builds the scope tree, enters every declared name into
// its scope, links each Declaration to the Symbol it created, and attaches
// the enclosing Scope to every Name node so later passes resolve without
// threading a current-scope parameter.
type DeclarationPass struct{}

func (p *DeclarationPass) Name() string { return "declaration" }

func (p *DeclarationPass) Run(unit *ast.TranslationUnit, ctx *PassContext) error {
	global := symtab.NewScope(symtab.Global, ctx.Builtin)
	unit.Scope = global
	for _, decl := range unit.Decls {
		p.declareTop(decl, global, ctx)
	}
	return nil
}

func (p *DeclarationPass) declareTop(decl ast.Declaration, global *symtab.Scope, ctx *PassContext) {
	switch d := decl.(type) {
	case *ast.VariableDeclaration:
		p.declareVariable(d, global, ctx)
	case *ast.FunctionDeclaration:
		p.declareFunction(d, global, ctx)
	case *ast.AggregateDeclaration:
		p.declareAggregate(d, global, ctx)
	case *ast.TypealiasDeclaration:
		p.declareTypealias(d, global, ctx)
	}
}

func (p *DeclarationPass) declareVariable(d *ast.VariableDeclaration, scope *symtab.Scope, ctx *PassContext) {
	sym := symtab.NewVariableSymbol(d.DeclName(), d, d.Final, d.Final)
	if err := scope.Define(sym); err != nil {
		ctx.Diags.Reportf(diag.Error, p.Name(), d.Name.Pos(), "%s", err.Error())
	} else {
		d.Symbol = sym
		d.Name.Symbol = sym
	}
	d.Name.Scope = scope
	p.declareTypeSpec(d.TypeSpec, scope, ctx)
	if d.Init != nil {
		p.declareExprRoot(d.Init, scope, ctx)
	}
}

func (p *DeclarationPass) declareFunction(d *ast.FunctionDeclaration, global *symtab.Scope, ctx *PassContext) {
	sym := symtab.NewFunctionSymbol(d.DeclName())
	if err := global.Define(sym); err != nil {
		ctx.Diags.Reportf(diag.Error, p.Name(), d.Name.Pos(), "%s", err.Error())
	} else {
		d.Symbol = sym
		d.Name.Symbol = sym
	}
	d.Name.Scope = global

	paramScope := symtab.NewScope(symtab.Local, global)
	d.Scope = paramScope
	for _, param := range d.Params {
		psym := symtab.NewVariableSymbol(param.DeclName(), param, false, false)
		if err := paramScope.Define(psym); err != nil {
			ctx.Diags.Reportf(diag.Error, p.Name(), param.Pos(), "%s", err.Error())
		} else {
			param.Symbol = psym
			param.Name.Symbol = psym
		}
		param.Name.Scope = paramScope
		p.declareTypeSpec(param.TypeSpec, paramScope, ctx)
	}
	p.declareTypeSpec(d.RetType, paramScope, ctx)

	if d.Body != nil {
		bodyScope := symtab.NewScope(symtab.Local, paramScope)
		d.Body.Scope = bodyScope
		p.declareBlockStatements(d.Body.Stmts, bodyScope, ctx)
	}
}

func (p *DeclarationPass) declareAggregate(d *ast.AggregateDeclaration, global *symtab.Scope, ctx *PassContext) {
	var sym *symtab.Symbol
	var kind symtab.ScopeKind
	switch d.AggKind {
	case ast.AggregateStructure:
		sym, kind = symtab.NewStructureSymbol(d.DeclName()), symtab.Structure
	case ast.AggregateUnion:
		sym, kind = symtab.NewUnionSymbol(d.DeclName()), symtab.Union
	case ast.AggregateClass:
		sym, kind = symtab.NewClassSymbol(d.DeclName()), symtab.Class
	}
	if err := global.Define(sym); err != nil {
		ctx.Diags.Reportf(diag.Error, p.Name(), d.Name.Pos(), "%s", err.Error())
	} else {
		d.Symbol = sym
		d.Name.Symbol = sym
	}
	d.Name.Scope = global

	memberScope := symtab.NewScope(kind, global)
	d.Scope = memberScope
	for _, f := range d.Fields {
		p.declareVariable(f, memberScope, ctx)
	}
}

func (p *DeclarationPass) declareTypealias(d *ast.TypealiasDeclaration, global *symtab.Scope, ctx *PassContext) {
	sym := symtab.NewTypeSymbol(d.DeclName(), &types.TypealiasType{Name: d.DeclName()})
	if err := global.Define(sym); err != nil {
		ctx.Diags.Reportf(diag.Error, p.Name(), d.Name.Pos(), "%s", err.Error())
	} else {
		d.Symbol = sym
		d.Name.Symbol = sym
	}
	d.Name.Scope = global
	p.declareTypeSpec(d.TypeSpec, global, ctx)
}

func (p *DeclarationPass) declareBlockStatements(stmts []ast.Statement, scope *symtab.Scope, ctx *PassContext) {
	for _, stmt := range stmts {
		p.declareStatement(stmt, scope, ctx)
	}
}

func (p *DeclarationPass) declareStatement(stmt ast.Statement, scope *symtab.Scope, ctx *PassContext) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		p.declareVariable(s, scope, ctx)
	case *ast.ExpressionStatement:
		p.declareExprRoot(s.Expr, scope, ctx)
	case *ast.AssignmentStatement:
		p.declareExprRoot(s.Target, scope, ctx)
		p.declareExprRoot(s.Value, scope, ctx)
	case *ast.ReturnStatement:
		if s.Value != nil {
			p.declareExprRoot(s.Value, scope, ctx)
		}
	case *ast.IfStatement:
		p.declareExprRoot(s.Cond, scope, ctx)
		thenScope := symtab.NewScope(symtab.Local, scope)
		s.Then.Scope = thenScope
		p.declareBlockStatements(s.Then.Stmts, thenScope, ctx)
		if s.Else != nil {
			p.declareStatement(s.Else, scope, ctx)
		}
	case *ast.WhileStatement:
		p.declareExprRoot(s.Cond, scope, ctx)
		bodyScope := symtab.NewScope(symtab.Local, scope)
		s.Body.Scope = bodyScope
		p.declareBlockStatements(s.Body.Stmts, bodyScope, ctx)
	case *ast.ForStatement:
		forScope := symtab.NewScope(symtab.Local, scope)
		if s.Init != nil {
			p.declareStatement(s.Init, forScope, ctx)
		}
		if s.Cond != nil {
			p.declareExprRoot(s.Cond, forScope, ctx)
		}
		if s.Post != nil {
			p.declareStatement(s.Post, forScope, ctx)
		}
		bodyScope := symtab.NewScope(symtab.Local, forScope)
		s.Body.Scope = bodyScope
		p.declareBlockStatements(s.Body.Stmts, bodyScope, ctx)
	case *ast.Block:
		nested := symtab.NewScope(symtab.Local, scope)
		s.Scope = nested
		p.declareBlockStatements(s.Stmts, nested, ctx)
	case *ast.BreakStatement, *ast.ContinueStatement:
	}
}

func (p *DeclarationPass) declareExprRoot(root *ast.ExpressionRoot, scope *symtab.Scope, ctx *PassContext) {
	if root == nil {
		return
	}
	p.declareExpr(root.Child, scope, ctx)
}

func (p *DeclarationPass) declareExpr(e ast.Expression, scope *symtab.Scope, ctx *PassContext) {
	switch n := e.(type) {
	case *ast.Name:
		n.Scope = scope
	case *ast.Literal:
	case *ast.UnaryExpression:
		p.declareExpr(n.Operand, scope, ctx)
	case *ast.BinaryExpression:
		p.declareExpr(n.Left, scope, ctx)
		p.declareExpr(n.Right, scope, ctx)
	case *ast.IndexExpression:
		p.declareExpr(n.Base, scope, ctx)
		p.declareExpr(n.Index, scope, ctx)
	case *ast.CallExpression:
		p.declareExpr(n.Callee, scope, ctx)
		for _, a := range n.Args {
			p.declareExpr(a, scope, ctx)
		}
	case *ast.PromoteCast:
		p.declareExpr(n.Child, scope, ctx)
	case *ast.WidenCast:
		p.declareExpr(n.Child, scope, ctx)
	}
}

// declareTypeSpec recurses into a type specifier's Base (pointer/array) and,
// for an array with a symbolic size, attaches scope to the Name nodes inside
// its size expression. Nominal/primitive resolution itself happens later,
// in ResolveTypeSpec.
func (p *DeclarationPass) declareTypeSpec(ts ast.TypeSpec, scope *symtab.Scope, ctx *PassContext) {
	if ts == nil {
		return
	}
	switch t := ts.(type) {
	case *ast.PointerType:
		p.declareTypeSpec(t.Base, scope, ctx)
	case *ast.ArrayType:
		p.declareTypeSpec(t.Base, scope, ctx)
		if t.SizeExpr != nil {
			p.declareExprRoot(t.SizeExpr, scope, ctx)
		}
	}
}
