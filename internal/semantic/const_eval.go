package semantic

import (
	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/token"
)

// evalConstInt folds an integral constant expression to its value, for array
// sizes and for caching a constant global/local's value so later array-size
// expressions that reference it can fold too. It recognizes only the node
// shapes the constant-expression checker itself accepts as constant
// (literals, Names, casts, unary/binary arithmetic); anything else, or a
// float/string/bool literal, reports ok=false.
func evalConstInt(e ast.Expression) (int64, bool) {
	switch n := e.(type) {
	case *ast.Literal:
		if n.Kind != ast.LiteralInt {
			return 0, false
		}
		return parseIntLexeme(n.Tok.Lexeme)
	case *ast.Name:
		if n.Symbol == nil || n.Symbol.ConstValue == nil {
			return 0, false
		}
		return *n.Symbol.ConstValue, true
	case *ast.UnaryExpression:
		v, ok := evalConstInt(n.Operand)
		if !ok {
			return 0, false
		}
		switch n.Op.Kind {
		case token.PLUS:
			return v, true
		case token.MINUS:
			return -v, true
		case token.TILDE:
			return ^v, true
		}
		return 0, false
	case *ast.BinaryExpression:
		l, ok := evalConstInt(n.Left)
		if !ok {
			return 0, false
		}
		r, ok := evalConstInt(n.Right)
		if !ok {
			return 0, false
		}
		switch n.Op.Kind {
		case token.PLUS:
			return l + r, true
		case token.MINUS:
			return l - r, true
		case token.ASTERISK:
			return l * r, true
		case token.SLASH:
			if r == 0 {
				return 0, false
			}
			return l / r, true
		case token.PERCENT:
			if r == 0 {
				return 0, false
			}
			return l % r, true
		case token.AMPERSAND:
			return l & r, true
		case token.PIPE:
			return l | r, true
		case token.CARET:
			return l ^ r, true
		case token.SHL:
			return l << uint(r), true
		case token.SHR:
			return l >> uint(r), true
		}
		return 0, false
	case *ast.PromoteCast:
		return evalConstInt(n.Child)
	case *ast.WidenCast:
		return evalConstInt(n.Child)
	}
	return 0, false
}

// parseIntLexeme parses the leading decimal digits of an integer-literal
// lexeme, stopping at the first suffix letter (SuffixKind carries that
// separately; e.g. "7i64" folds to 7).
func parseIntLexeme(s string) (int64, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	var v int64
	for _, r := range s[:i] {
		v = v*10 + int64(r-'0')
	}
	return v, true
}
