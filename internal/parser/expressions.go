package parser

import (
	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/token"
)

// parseExpressionRoot parses one syntactic expression and wraps it in the
// synthetic ExpressionRoot node every expression carries.
func (p *Parser) parseExpressionRoot() *ast.ExpressionRoot {
	return &ast.ExpressionRoot{Child: p.parseExpression(LOWEST)}
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.cur.Kind]; ok {
		return prec
	}
	return LOWEST
}

// parseExpression implements Pratt-style precedence climbing: parse a
// prefix/primary term, then fold in infix operators whose precedence is
// at least minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}
	left = p.parsePostfix(left)

	for {
		prec, ok := precedences[p.cur.Kind]
		if !ok || prec < minPrec || prec == POSTFIX {
			break
		}
		op := p.cur
		p.advance()
		right := p.parseExpression(prec + 1)
		left = &ast.BinaryExpression{Op: op, Left: left, Right: right}
	}
	return left
}

// parsePostfix folds `(...)` call and `[...]` index suffixes onto left,
// binding tighter than every binary operator.
func (p *Parser) parsePostfix(left ast.Expression) ast.Expression {
	for {
		switch p.cur.Kind {
		case token.LPAREN:
			p.advance()
			var args []ast.Expression
			for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
				args = append(args, p.parseExpression(LOWEST))
				if p.cur.Kind == token.COMMA {
					p.advance()
				} else {
					break
				}
			}
			rparen := p.expect(token.RPAREN)
			left = &ast.CallExpression{Callee: left, Args: args, RParen: rparen}
		case token.LBRACK:
			p.advance()
			index := p.parseExpression(LOWEST)
			rbrack := p.expect(token.RBRACK)
			left = &ast.IndexExpression{Base: left, Index: index, RBrack: rbrack}
		default:
			return left
		}
	}
}

func isUnaryOp(k token.Kind) bool {
	switch k {
	case token.PLUS, token.MINUS, token.EXCLAMATION, token.TILDE, token.ASTERISK:
		return true
	}
	return false
}

// parsePrefix parses a primary expression: a literal, a name, a
// parenthesized expression, or a unary-operator application. Unary binds
// tighter than all binary operators.
func (p *Parser) parsePrefix() ast.Expression {
	switch {
	case isUnaryOp(p.cur.Kind):
		op := p.cur
		p.advance()
		operand := p.parseExpression(UNARY)
		return &ast.UnaryExpression{Op: op, Operand: operand}
	case p.cur.Kind == token.LPAREN:
		p.advance()
		expr := p.parseExpression(LOWEST)
		p.expect(token.RPAREN)
		return expr
	case p.cur.Kind == token.INT, p.cur.Kind == token.FLOAT:
		tok := p.cur
		p.advance()
		return p.parseNumericLiteral(tok)
	case p.cur.Kind == token.STRING:
		tok := p.cur
		p.advance()
		return &ast.Literal{Tok: tok, Kind: ast.LiteralString}
	case p.cur.Kind == token.CHAR:
		tok := p.cur
		p.advance()
		return &ast.Literal{Tok: tok, Kind: ast.LiteralChar}
	case p.cur.Kind == token.TRUE, p.cur.Kind == token.FALSE:
		tok := p.cur
		p.advance()
		return &ast.Literal{Tok: tok, Kind: ast.LiteralBool}
	case p.cur.Kind == token.NULL:
		tok := p.cur
		p.advance()
		return &ast.Literal{Tok: tok, Kind: ast.LiteralNull}
	case p.cur.Kind == token.IDENT:
		tok := p.cur
		p.advance()
		return &ast.Name{Tok: tok}
	default:
		p.errorf(p.cur.Pos, "unexpected token in expression: %s %q", p.cur.Kind, p.cur.Lexeme)
		tok := p.cur
		p.advance()
		return &ast.Literal{Tok: tok, Kind: ast.LiteralNull}
	}
}
