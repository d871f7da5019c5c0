package semantic

import (
	"testing"

	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/token"
	"github.com/cwbudde/semc/internal/types"
)

func newKernel(t *testing.T) *Kernel {
	t.Helper()
	return NewKernel(newTestPassContext(""), "test")
}

func intLit(lexeme string, kind types.PrimitiveKind) *ast.Literal {
	return &ast.Literal{Tok: token.Token{Kind: token.INT, Lexeme: lexeme}, Kind: ast.LiteralInt, SuffixKind: kind}
}

func TestKernelTypesIntLiteralBySuffix(t *testing.T) {
	k := newKernel(t)
	root := &ast.ExpressionRoot{Child: intLit("5", types.Int8)}
	got := k.TypeRoot(root)
	if got != types.Int8Type {
		t.Errorf("TypeRoot = %v, want int8", got)
	}
}

func TestKernelUnaryPromotesNarrowIntegral(t *testing.T) {
	k := newKernel(t)
	root := &ast.ExpressionRoot{Child: &ast.UnaryExpression{
		Op: token.Token{Kind: token.MINUS, Lexeme: "-"},
		Operand: intLit("1", types.Int8),
	}}
	got := k.TypeRoot(root)
	if got != types.Int32Type {
		t.Errorf("TypeRoot = %v, want int32 (usual unary conversion)", got)
	}
	un := root.Child.(*ast.UnaryExpression)
	if _, ok := un.Operand.(*ast.PromoteCast); !ok {
		t.Errorf("Operand type = %T, want *ast.PromoteCast wrapping the narrow operand", un.Operand)
	}
}

func TestKernelUnaryDereferenceOfNonPointerRejected(t *testing.T) {
	k := newKernel(t)
	name := &ast.Name{Tok: token.Token{Kind: token.IDENT, Lexeme: "p"}}
	name.Symbol = nil
	// typeName requires a live Symbol, which this unit test does not
	// construct, so the operand is an int32 literal rather than the name p.
	lit := &ast.Literal{Tok: token.Token{Kind: token.INT, Lexeme: "0"}, Kind: ast.LiteralInt, SuffixKind: types.Int32}
	root := &ast.ExpressionRoot{Child: &ast.UnaryExpression{
		Op: token.Token{Kind: token.ASTERISK, Lexeme: "*"},
		Operand: lit,
	}}
	got := k.TypeRoot(root)
	// int32 is not a pointer, so dereference must fail cleanly (nil type,
	// one diagnostic), exercising the non-pointer-operand branch.
	if got != nil {
		t.Errorf("TypeRoot = %v, want nil for dereferencing a non-pointer", got)
	}
	if !k.ctx.Diags.HasErrors() {
		t.Error("expected a diagnostic for dereferencing a non-pointer type")
	}
}

func TestKernelBinaryPromotesToHigherRank(t *testing.T) {
	k := newKernel(t)
	root := &ast.ExpressionRoot{Child: &ast.BinaryExpression{
		Op: token.Token{Kind: token.PLUS, Lexeme: "+"},
		Left: intLit("1", types.Int8),
		Right: intLit("2", types.Int32),
	}}
	got := k.TypeRoot(root)
	if got != types.Int32Type {
		t.Errorf("TypeRoot = %v, want int32 (higher rank wins)", got)
	}
	bin := root.Child.(*ast.BinaryExpression)
	if _, ok := bin.Left.(*ast.PromoteCast); !ok {
		t.Errorf("Left type = %T, want *ast.PromoteCast promoting int8 to int32", bin.Left)
	}
}

func TestKernelBinaryFloatDominates(t *testing.T) {
	k := newKernel(t)
	root := &ast.ExpressionRoot{Child: &ast.BinaryExpression{
		Op: token.Token{Kind: token.PLUS, Lexeme: "+"},
		Left: intLit("1", types.Int32),
		Right: intLit("2", types.Float64),
	}}
	got := k.TypeRoot(root)
	if got != types.Float64Type {
		t.Errorf("TypeRoot = %v, want float64", got)
	}
	bin := root.Child.(*ast.BinaryExpression)
	if _, ok := bin.Left.(*ast.PromoteCast); !ok {
		t.Errorf("Left type = %T, want *ast.PromoteCast promoting int32 to float64", bin.Left)
	}
}

func TestKernelMixedSignednessRejected(t *testing.T) {
	k := newKernel(t)
	root := &ast.ExpressionRoot{Child: &ast.BinaryExpression{
		Op: token.Token{Kind: token.PLUS, Lexeme: "+"},
		Left: intLit("1", types.Int32),
		Right: intLit("2", types.Uint32),
	}}
	got := k.TypeRoot(root)
	if got != nil {
		t.Errorf("TypeRoot = %v, want nil (mixed signedness needs an explicit conversion)", got)
	}
	if !k.ctx.Diags.HasErrors() {
		t.Error("expected a diagnostic for the mixed-signedness operands")
	}
}

func TestKernelShiftTakesLeftOperandType(t *testing.T) {
	k := newKernel(t)
	root := &ast.ExpressionRoot{Child: &ast.BinaryExpression{
		Op: token.Token{Kind: token.SHL, Lexeme: "<<"},
		Left: intLit("1", types.Int64),
		Right: intLit("2", types.Int8),
	}}
	got := k.TypeRoot(root)
	if got != types.Int64Type {
		t.Errorf("TypeRoot = %v, want int64 (shift result follows the left operand)", got)
	}
	bin := root.Child.(*ast.BinaryExpression)
	if _, ok := bin.Right.(*ast.PromoteCast); ok {
		t.Error("a shift's right operand must not be co-promoted")
	}
}

func TestKernelComparisonYieldsBool(t *testing.T) {
	k := newKernel(t)
	root := &ast.ExpressionRoot{Child: &ast.BinaryExpression{
		Op: token.Token{Kind: token.LESS, Lexeme: "<"},
		Left: intLit("1", types.Int32),
		Right: intLit("2", types.Int32),
	}}
	got := k.TypeRoot(root)
	if got != types.BoolType {
		t.Errorf("TypeRoot = %v, want bool", got)
	}
}

func TestKernelBoolComparableToIntegral(t *testing.T) {
	k := newKernel(t)
	boolLit := &ast.Literal{Tok: token.Token{Kind: token.TRUE, Lexeme: "true"}, Kind: ast.LiteralBool}
	root := &ast.ExpressionRoot{Child: &ast.BinaryExpression{
		Op: token.Token{Kind: token.EQ, Lexeme: "=="},
		Left: boolLit,
		Right: intLit("1", types.Int32),
	}}
	got := k.TypeRoot(root)
	if got != types.BoolType {
		t.Errorf("TypeRoot = %v, want bool (bool is comparable to a numeric operand)", got)
	}
	if k.ctx.Diags.HasErrors() {
		t.Error("bool == int32 should not report an incompatible-operand-types diagnostic")
	}
}

func TestKernelLogicalOperatorRequiresBool(t *testing.T) {
	k := newKernel(t)
	root := &ast.ExpressionRoot{Child: &ast.BinaryExpression{
		Op: token.Token{Kind: token.AND_AND, Lexeme: "&&"},
		Left: intLit("1", types.Int32),
		Right: intLit("2", types.Int32),
	}}
	got := k.TypeRoot(root)
	if got != nil {
		t.Errorf("TypeRoot = %v, want nil for non-bool operands to &&", got)
	}
}

func TestKernelVoidOperandRejected(t *testing.T) {
	k := newKernel(t)
	voidLit := &ast.Literal{Tok: token.Token{Kind: token.NULL, Lexeme: "null"}, Kind: ast.LiteralNull}
	// Force a void-typed operand the way a void function call result would
	// produce, by wrapping it so typeExpr sees it already typed to void.
	wrapped := &ast.PromoteCast{Child: voidLit, Type: types.VoidType}
	root := &ast.ExpressionRoot{Child: &ast.UnaryExpression{
		Op: token.Token{Kind: token.MINUS, Lexeme: "-"},
		Operand: wrapped,
	}}
	got := k.TypeRoot(root)
	if got != nil {
		t.Errorf("TypeRoot = %v, want nil for a void operand", got)
	}
}
