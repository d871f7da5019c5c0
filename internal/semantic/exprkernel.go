package semantic

import (
	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/diag"
	"github.com/cwbudde/semc/internal/symtab"
	"github.com/cwbudde/semc/internal/token"
	"github.com/cwbudde/semc/internal/types"
)

// Kernel is the shared expression-typing machinery, invoked by both global
// and local inference so the usual unary/binary conversion rules and
// PromoteCast insertion are implemented exactly once. Because Go expression
// fields are plain interface-typed struct fields rather than a
// mutable-in-place tree handle, cast insertion works by returning a
// (possibly wrapped) replacement node that the caller assigns back into the
// parent's field.
type Kernel struct {
	ctx *PassContext
	phase string
}

// NewKernel creates a Kernel that reports diagnostics tagged with phase
// (the invoking pass's name, so diagnostics sort correctly).
func NewKernel(ctx *PassContext, phase string) *Kernel {
	return &Kernel{ctx: ctx, phase: phase}
}

// TypeRoot types root's child expression in place and returns its type (nil
// on error). A nil root is a no-op returning nil.
func (k *Kernel) TypeRoot(root *ast.ExpressionRoot) types.Type {
	if root == nil {
		return nil
	}
	child, t := k.typeExpr(root.Child)
	root.Child = child
	root.Type = t
	return t
}

func (k *Kernel) errorf(pos token.Position, format string, args ...any) {
	k.ctx.Diags.Reportf(diag.Error, k.phase, pos, format, args...)
}

func (k *Kernel) typeExpr(e ast.Expression) (ast.Expression, types.Type) {
	switch n := e.(type) {
	case *ast.Literal:
		return k.typeLiteral(n)
	case *ast.Name:
		return k.typeName(n)
	case *ast.UnaryExpression:
		return k.typeUnary(n)
	case *ast.BinaryExpression:
		return k.typeBinary(n)
	case *ast.IndexExpression:
		return k.typeIndex(n)
	case *ast.CallExpression:
		return k.typeCall(n)
	case *ast.PromoteCast:
		return n, n.Type
	case *ast.WidenCast:
		return n, n.Type
	}
	return e, nil
}

func (k *Kernel) typeLiteral(n *ast.Literal) (ast.Expression, types.Type) {
	switch n.Kind {
	case ast.LiteralBool:
		n.Type = types.BoolType
	case ast.LiteralNull:
		n.Type = types.NullType
	case ast.LiteralInt, ast.LiteralFloat:
		n.Type = types.Primitive(n.SuffixKind)
	case ast.LiteralString:
		n.Type = &types.PointerType{Base: types.Uint8Type}
	case ast.LiteralChar:
		n.Type = types.Uint8Type
	}
	return n, n.Type
}

func (k *Kernel) typeName(n *ast.Name) (ast.Expression, types.Type) {
	if n.Symbol == nil {
		// Reference validation already reported an unresolved name; leave
		// this node untyped rather than erroring twice.
		return n, nil
	}
	n.Type = n.Symbol.Type
	return n, n.Type
}

func isNarrowIntegral(t types.Type) bool {
	p, ok := t.(*types.PrimitiveType)
	if !ok {
		return false
	}
	switch p.PrimitiveKind {
	case types.Int8, types.Int16, types.Uint8, types.Uint16:
		return true
	}
	return false
}

func (k *Kernel) typeUnary(n *ast.UnaryExpression) (ast.Expression, types.Type) {
	operand, operandType := k.typeExpr(n.Operand)
	n.Operand = operand
	if operandType == nil {
		return n, nil
	}
	if types.IsVoid(operandType) {
		k.errorf(n.Op.Pos, "invalid operand type: void")
		return n, nil
	}

	// Usual unary conversions: an integral operand narrower than int32 is
	// promoted to int32 before the operator is applied.
	promoted := operandType
	if isNarrowIntegral(operandType) {
		promoted = types.Int32Type
		n.Operand = &ast.PromoteCast{Child: n.Operand, Type: promoted}
	}

	switch n.Op.Kind {
	case token.PLUS, token.MINUS:
		if !types.IsNumeric(promoted) {
			k.errorf(n.Op.Pos, "incompatible operand type for unary %s: %s", n.Op.Lexeme, promoted.String())
			return n, nil
		}
		n.Type = promoted
	case token.EXCLAMATION:
		if !(types.IsBool(promoted) || types.IsNumeric(promoted) || types.IsPointer(promoted)) {
			k.errorf(n.Op.Pos, "incompatible operand type for '!': %s", promoted.String())
			return n, nil
		}
		n.Type = types.BoolType
	case token.TILDE:
		if !types.IsIntegral(promoted) {
			k.errorf(n.Op.Pos, "incompatible operand type for '~': %s", promoted.String())
			return n, nil
		}
		n.Type = promoted
	case token.ASTERISK:
		ptr, ok := promoted.(*types.PointerType)
		if !ok {
			k.errorf(n.Op.Pos, "cannot dereference non-pointer type: %s", promoted.String())
			return n, nil
		}
		n.Type = ptr.Base
	}
	return n, n.Type
}

func (k *Kernel) typeBinary(n *ast.BinaryExpression) (ast.Expression, types.Type) {
	left, leftType := k.typeExpr(n.Left)
	right, rightType := k.typeExpr(n.Right)
	n.Left, n.Right = left, right
	if leftType == nil || rightType == nil {
		return n, nil
	}
	if types.IsVoid(leftType) || types.IsVoid(rightType) {
		k.errorf(n.Op.Pos, "invalid operand type: void")
		return n, nil
	}

	// Shift operators: result takes the left operand's type; the right
	// operand is not co-promoted.
	if n.Op.Kind == token.SHL || n.Op.Kind == token.SHR {
		if !types.IsIntegral(leftType) || !types.IsIntegral(rightType) {
			k.errorf(n.Op.Pos, "incompatible operand types for shift; explicit conversion required")
			return n, nil
		}
		n.Type = leftType
		return n, n.Type
	}

	cleft, cright, common, ok := k.applyBinaryConversions(n, left, leftType, right, rightType)
	n.Left, n.Right = cleft, cright
	if !ok {
		return n, nil
	}

	switch n.Op.Kind {
	case token.ASTERISK, token.SLASH, token.PLUS, token.MINUS:
		if !types.IsNumeric(common) {
			k.errorf(n.Op.Pos, "incompatible operand types; explicit conversion required")
			return n, nil
		}
		n.Type = common
	case token.PERCENT, token.AMPERSAND, token.CARET, token.PIPE:
		if !types.IsIntegral(common) {
			k.errorf(n.Op.Pos, "incompatible operand types; explicit conversion required")
			return n, nil
		}
		n.Type = common
	case token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ:
		if !(types.IsNumeric(common) || types.IsPointer(common)) {
			k.errorf(n.Op.Pos, "incompatible operand types; explicit conversion required")
			return n, nil
		}
		n.Type = types.BoolType
	case token.EQ, token.NOT_EQ:
		// bool is comparable to bool or to a numeric operand: a mismatched
		// bool/numeric pair reaches here with common set to one side's type
		// by applyBinaryConversions' pass-through case.
		if !(types.IsNumeric(common) || types.IsBool(common) || types.IsPointer(common)) {
			k.errorf(n.Op.Pos, "incompatible operand types; explicit conversion required")
			return n, nil
		}
		n.Type = types.BoolType
	case token.AND_AND, token.OR_OR:
		if !types.IsBool(common) {
			k.errorf(n.Op.Pos, "logical operator requires bool operands")
			return n, nil
		}
		n.Type = types.BoolType
	default:
		k.errorf(n.Op.Pos, "unsupported binary operator %s", n.Op.Lexeme)
		return n, nil
	}
	return n, n.Type
}

func isF32(t types.Type) bool {
	p, ok := t.(*types.PrimitiveType)
	return ok && p.PrimitiveKind == types.Float32
}

func isF64(t types.Type) bool {
	p, ok := t.(*types.PrimitiveType)
	return ok && p.PrimitiveKind == types.Float64
}

// applyBinaryConversions implements the usual binary conversion rules,
// wrapping whichever operand needs promoting in a PromoteCast and returning
// the resulting common type. Operands of identical type need no promotion
// and are returned unchanged.
func (k *Kernel) applyBinaryConversions(n *ast.BinaryExpression, left ast.Expression, leftType types.Type, right ast.Expression, rightType types.Type) (ast.Expression, ast.Expression, types.Type, bool) {
	if leftType.Equals(rightType) {
		return left, right, leftType, true
	}

	li, ri := types.IsIntegral(leftType), types.IsIntegral(rightType)

	switch {
	case isF64(leftType) && (isF32(rightType) || ri):
		right = &ast.PromoteCast{Child: right, Type: types.Float64Type}
		return left, right, types.Float64Type, true
	case isF64(rightType) && (isF32(leftType) || li):
		left = &ast.PromoteCast{Child: left, Type: types.Float64Type}
		return left, right, types.Float64Type, true
	case isF32(leftType) && ri:
		right = &ast.PromoteCast{Child: right, Type: types.Float32Type}
		return left, right, types.Float32Type, true
	case isF32(rightType) && li:
		left = &ast.PromoteCast{Child: left, Type: types.Float32Type}
		return left, right, types.Float32Type, true
	case li && ri && types.IsUnsigned(leftType) && types.IsUnsigned(rightType):
		return k.promoteToHigherRank(left, leftType, right, rightType)
	case li && ri && types.IsSigned(leftType) && types.IsSigned(rightType):
		return k.promoteToHigherRank(left, leftType, right, rightType)
	case li && ri:
		// mixed signed/unsigned integral: the only pairing the usual binary
		// conversions reject outright, per the signed/unsigned rule.
		k.errorf(n.Op.Pos, "incompatible operand types; explicit conversion required")
		return left, right, nil, false
	default:
		// Neither operand is a float nor are both integral (e.g. bool vs
		// int32): no conversion applies, so operands pass through unchanged
		// and the operator switch in typeBinary decides compatibility.
		return left, right, leftType, true
	}
}

func (k *Kernel) promoteToHigherRank(left ast.Expression, leftType types.Type, right ast.Expression, rightType types.Type) (ast.Expression, ast.Expression, types.Type, bool) {
	if types.Rank(leftType) < types.Rank(rightType) {
		return &ast.PromoteCast{Child: left, Type: rightType}, right, rightType, true
	}
	return left, &ast.PromoteCast{Child: right, Type: leftType}, leftType, true
}

func (k *Kernel) typeIndex(n *ast.IndexExpression) (ast.Expression, types.Type) {
	base, baseType := k.typeExpr(n.Base)
	index, _ := k.typeExpr(n.Index)
	n.Base, n.Index = base, index
	if baseType == nil {
		return n, nil
	}
	switch bt := baseType.(type) {
	case *types.ArrayType:
		n.Type = bt.Base
	case *types.PointerType:
		n.Type = bt.Base
	default:
		k.errorf(n.RBrack.Pos, "cannot index non-array/pointer type: %s", baseType.String())
		return n, nil
	}
	return n, n.Type
}

func (k *Kernel) typeCall(n *ast.CallExpression) (ast.Expression, types.Type) {
	callee, _ := k.typeExpr(n.Callee)
	n.Callee = callee
	for i, a := range n.Args {
		typed, _ := k.typeExpr(a)
		n.Args[i] = typed
	}
	// Argument/parameter compatibility is final type checking after
	// conversions are inserted, out of scope here; only the return type
	// propagates so the call expression itself carries a type.
	if name, ok := n.Callee.(*ast.Name); ok && name.Symbol != nil && name.Symbol.Kind == symtab.FunctionSymbolKind {
		if fn, ok := name.Symbol.Type.(*types.FunctionType); ok {
			n.Type = fn.Ret
			return n, n.Type
		}
	}
	return n, nil
}
