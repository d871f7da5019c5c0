package semantic

import "github.com/cwbudde/semc/internal/ast"

// ExprRootKind distinguishes the three contexts an ExpressionRoot can occur
// in, for passes (reference validation, the constant checker) that treat
// global initializers and array sizes specially.
type ExprRootKind int

const (
	RootOther ExprRootKind = iota
	RootGlobalInit
	RootArraySize
)

// ExprRootVisitor is called once for every ExpressionRoot reachable from the
// translation unit: every global/local initializer, every array-size
// expression, and every statement-level expression inside a function body.
type ExprRootVisitor func(root *ast.ExpressionRoot, kind ExprRootKind)

// WalkExpressionRoots visits every ExpressionRoot in unit. Declaration Name
// nodes themselves are never visited (they aren't wrapped in an
// ExpressionRoot), matching reference validation's "Name node inside an
// ExpressionRoot" scoping.
func WalkExpressionRoots(unit *ast.TranslationUnit, visit ExprRootVisitor) {
	for _, d := range unit.Decls {
		walkDeclExpressionRoots(d, visit)
	}
}

func walkDeclExpressionRoots(d ast.Declaration, visit ExprRootVisitor) {
	switch decl := d.(type) {
	case *ast.VariableDeclaration:
		if arr, ok := decl.TypeSpec.(*ast.ArrayType); ok && arr.SizeExpr != nil {
			visit(arr.SizeExpr, RootArraySize)
		}
		if decl.Init != nil {
			kind := RootOther
			if decl.Global {
				kind = RootGlobalInit
			}
			visit(decl.Init, kind)
		}
	case *ast.FunctionDeclaration:
		for _, param := range decl.Params {
			if arr, ok := param.TypeSpec.(*ast.ArrayType); ok && arr.SizeExpr != nil {
				visit(arr.SizeExpr, RootArraySize)
			}
		}
		if decl.Body != nil {
			walkBlockExpressionRoots(decl.Body, visit)
		}
	case *ast.AggregateDeclaration:
		for _, f := range decl.Fields {
			walkDeclExpressionRoots(f, visit)
		}
	case *ast.TypealiasDeclaration:
		// no expressions
	}
}

func walkBlockExpressionRoots(b *ast.Block, visit ExprRootVisitor) {
	for _, stmt := range b.Stmts {
		walkStmtExpressionRoots(stmt, visit)
	}
}

func walkStmtExpressionRoots(s ast.Statement, visit ExprRootVisitor) {
	switch stmt := s.(type) {
	case *ast.VariableDeclaration:
		walkDeclExpressionRoots(stmt, visit)
	case *ast.ExpressionStatement:
		visit(stmt.Expr, RootOther)
	case *ast.AssignmentStatement:
		visit(stmt.Target, RootOther)
		visit(stmt.Value, RootOther)
	case *ast.ReturnStatement:
		if stmt.Value != nil {
			visit(stmt.Value, RootOther)
		}
	case *ast.IfStatement:
		visit(stmt.Cond, RootOther)
		walkBlockExpressionRoots(stmt.Then, visit)
		if stmt.Else != nil {
			walkStmtExpressionRoots(stmt.Else, visit)
		}
	case *ast.WhileStatement:
		visit(stmt.Cond, RootOther)
		walkBlockExpressionRoots(stmt.Body, visit)
	case *ast.ForStatement:
		if stmt.Init != nil {
			walkStmtExpressionRoots(stmt.Init, visit)
		}
		if stmt.Cond != nil {
			visit(stmt.Cond, RootOther)
		}
		if stmt.Post != nil {
			walkStmtExpressionRoots(stmt.Post, visit)
		}
		walkBlockExpressionRoots(stmt.Body, visit)
	case *ast.Block:
		walkBlockExpressionRoots(stmt, visit)
	case *ast.BreakStatement, *ast.ContinueStatement:
	}
}

// ArrayTypeVisitor is called once for every ArrayType TypeSpec reachable from
// the translation unit, including nested array bases (array-of-array) and
// pointer-to-array bases.
type ArrayTypeVisitor func(arr *ast.ArrayType)

// WalkArrayTypeSpecs visits every ArrayType reachable from unit: global and
// local variable type specifiers, function parameter and field types. Used
// by the constant checker to fold a symbolic array size into its Resolved
// type once the size expression's constant-ness is known .
func WalkArrayTypeSpecs(unit *ast.TranslationUnit, visit ArrayTypeVisitor) {
	for _, d := range unit.Decls {
		walkDeclArrayTypes(d, visit)
	}
}

func walkTypeSpecArrayTypes(ts ast.TypeSpec, visit ArrayTypeVisitor) {
	switch t := ts.(type) {
	case *ast.ArrayType:
		visit(t)
		walkTypeSpecArrayTypes(t.Base, visit)
	case *ast.PointerType:
		walkTypeSpecArrayTypes(t.Base, visit)
	}
}

func walkDeclArrayTypes(d ast.Declaration, visit ArrayTypeVisitor) {
	switch decl := d.(type) {
	case *ast.VariableDeclaration:
		walkTypeSpecArrayTypes(decl.TypeSpec, visit)
	case *ast.FunctionDeclaration:
		for _, param := range decl.Params {
			walkTypeSpecArrayTypes(param.TypeSpec, visit)
		}
		if decl.RetType != nil {
			walkTypeSpecArrayTypes(decl.RetType, visit)
		}
		if decl.Body != nil {
			walkBlockArrayTypes(decl.Body, visit)
		}
	case *ast.AggregateDeclaration:
		for _, f := range decl.Fields {
			walkDeclArrayTypes(f, visit)
		}
	case *ast.TypealiasDeclaration:
		walkTypeSpecArrayTypes(decl.TypeSpec, visit)
	}
}

func walkBlockArrayTypes(b *ast.Block, visit ArrayTypeVisitor) {
	for _, stmt := range b.Stmts {
		walkStmtArrayTypes(stmt, visit)
	}
}

func walkStmtArrayTypes(s ast.Statement, visit ArrayTypeVisitor) {
	switch stmt := s.(type) {
	case *ast.VariableDeclaration:
		walkDeclArrayTypes(stmt, visit)
	case *ast.IfStatement:
		walkBlockArrayTypes(stmt.Then, visit)
		if stmt.Else != nil {
			walkStmtArrayTypes(stmt.Else, visit)
		}
	case *ast.WhileStatement:
		walkBlockArrayTypes(stmt.Body, visit)
	case *ast.ForStatement:
		if stmt.Init != nil {
			walkStmtArrayTypes(stmt.Init, visit)
		}
		walkBlockArrayTypes(stmt.Body, visit)
	case *ast.Block:
		walkBlockArrayTypes(stmt, visit)
	}
}

// collectNames returns every *ast.Name leaf reachable from e, in left-to-right
// order, used by the global dependency pass to find a global declaration's
// dependency edges.
func collectNames(e ast.Expression) []*ast.Name {
	var out []*ast.Name
	var walk func(ast.Expression)
	walk = func(e ast.Expression) {
		switch n := e.(type) {
		case *ast.Name:
			out = append(out, n)
		case *ast.Literal:
		case *ast.UnaryExpression:
			walk(n.Operand)
		case *ast.BinaryExpression:
			walk(n.Left)
			walk(n.Right)
		case *ast.IndexExpression:
			walk(n.Base)
			walk(n.Index)
		case *ast.CallExpression:
			walk(n.Callee)
			for _, a := range n.Args {
				walk(a)
			}
		case *ast.PromoteCast:
			walk(n.Child)
		case *ast.WidenCast:
			walk(n.Child)
		}
	}
	walk(e)
	return out
}
