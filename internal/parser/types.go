package parser

import (
	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/token"
)

// parseTypeSpec parses a primitive name, nominal reference, pointer, or
// array type specifier. AlphaType is never produced here; it is only
// synthesized by the caller when no `: Type` was written at all.
func (p *Parser) parseTypeSpec() ast.TypeSpec {
	var base ast.TypeSpec
	if p.cur.Kind.IsPrimitiveType() {
		tok := p.cur
		p.advance()
		base = &ast.PrimitiveType{Tok: tok}
	} else if p.cur.Kind == token.IDENT {
		tok := p.cur
		p.advance()
		base = &ast.NominalType{Tok: tok}
	} else {
		p.errorf(p.cur.Pos, "expected type, got %s %q", p.cur.Kind, p.cur.Lexeme)
		return &ast.PrimitiveType{Tok: p.cur}
	}

	for {
		switch p.cur.Kind {
		case token.ASTERISK:
			star := p.cur
			p.advance()
			base = &ast.PointerType{Star: star, Base: base}
		case token.LBRACK:
			lbrack := p.cur
			p.advance()
			base = p.parseArraySuffix(lbrack, base)
		default:
			return base
		}
	}
}

// parseArraySuffix parses the `[N]` or `[expr]` following an already-parsed
// base type and LBRACK token.
func (p *Parser) parseArraySuffix(lbrack token.Token, base ast.TypeSpec) ast.TypeSpec {
	arr := &ast.ArrayType{LBrack: lbrack, Base: base, Size: -1}
	if p.cur.Kind == token.INT {
		lit := p.parseNumericLiteral(p.cur)
		p.advance()
		if n, ok := literalIntValue(lit); ok {
			arr.Size = n
		}
	} else {
		arr.SizeExpr = p.parseExpressionRoot()
	}
	p.expect(token.RBRACK)
	return arr
}

// literalIntValue extracts the parsed integer value of an int Literal for
// use as a parsed-literal array size.
func literalIntValue(lit *ast.Literal) (int, bool) {
	n, ok := parseIntDigits(digitsOf(lit.Tok.Lexeme))
	return n, ok
}
