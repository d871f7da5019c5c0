package parser

import (
	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/token"
)

func (p *Parser) parseBlock() *ast.Block {
	lbrace := p.expect(token.LBRACE)
	block := &ast.Block{LBrace: lbrace}
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		} else {
			p.synchronize()
		}
	}
	p.expect(token.RBRACE)
	return block
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Kind {
	case token.VAR, token.CONST:
		return p.parseVarDecl(false)
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		tok := p.cur
		p.advance()
		p.expect(token.SEMICOLON)
		return &ast.BreakStatement{Tok: tok}
	case token.CONTINUE:
		tok := p.cur
		p.advance()
		p.expect(token.SEMICOLON)
		return &ast.ContinueStatement{Tok: tok}
	case token.SEMICOLON:
		p.advance()
		return p.parseStatement()
	default:
		return p.parseExpressionOrAssignment()
	}
}

// parseExpressionOrAssignment parses `Expr;` or `Expr = Expr;`, disambiguated
// by whether `=` follows the first expression.
func (p *Parser) parseExpressionOrAssignment() ast.Statement {
	first := p.parseExpressionRoot()
	if first == nil {
		return nil
	}
	if p.cur.Kind == token.ASSIGN {
		eq := p.cur
		p.advance()
		value := p.parseExpressionRoot()
		p.expect(token.SEMICOLON)
		return &ast.AssignmentStatement{Eq: eq, Target: first, Value: value}
	}
	p.expect(token.SEMICOLON)
	return &ast.ExpressionStatement{Expr: first}
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	tok := p.expect(token.IF)
	p.expect(token.LPAREN)
	cond := p.parseExpressionRoot()
	p.expect(token.RPAREN)
	then := p.parseBlock()
	stmt := &ast.IfStatement{Tok: tok, Cond: cond, Then: then}
	if p.cur.Kind == token.ELSE {
		p.advance()
		if p.cur.Kind == token.IF {
			stmt.Else = p.parseIfStatement()
		} else {
			stmt.Else = p.parseBlock()
		}
	}
	return stmt
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	tok := p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpressionRoot()
	p.expect(token.RPAREN)
	body := p.parseBlock()
	return &ast.WhileStatement{Tok: tok, Cond: cond, Body: body}
}

func (p *Parser) parseForStatement() *ast.ForStatement {
	tok := p.expect(token.FOR)
	p.expect(token.LPAREN)

	stmt := &ast.ForStatement{Tok: tok}
	if p.cur.Kind != token.SEMICOLON {
		if p.cur.Kind == token.VAR || p.cur.Kind == token.CONST {
			stmt.Init = p.parseVarDeclNoTerminator()
		} else {
			stmt.Init = p.parseExpressionOrAssignmentNoTerminator()
		}
	}
	p.expect(token.SEMICOLON)

	if p.cur.Kind != token.SEMICOLON {
		stmt.Cond = p.parseExpressionRoot()
	}
	p.expect(token.SEMICOLON)

	if p.cur.Kind != token.RPAREN {
		stmt.Post = p.parseExpressionOrAssignmentNoTerminator()
	}
	p.expect(token.RPAREN)

	stmt.Body = p.parseBlock()
	return stmt
}

// parseVarDeclNoTerminator / parseExpressionOrAssignmentNoTerminator parse a
// for-loop clause without consuming the trailing `;`, which the caller
// (parseForStatement) consumes explicitly between clauses.
func (p *Parser) parseVarDeclNoTerminator() *ast.VariableDeclaration {
	tok := p.cur
	final := tok.Kind == token.CONST
	p.advance()
	nameTok := p.expect(token.IDENT)
	name := &ast.Name{Tok: nameTok}
	var spec ast.TypeSpec
	if p.cur.Kind == token.COLON {
		p.advance()
		spec = p.parseTypeSpec()
	} else {
		spec = &ast.AlphaType{Tok: nameTok}
	}
	var init *ast.ExpressionRoot
	if p.cur.Kind == token.ASSIGN {
		p.advance()
		init = p.parseExpressionRoot()
	}
	return &ast.VariableDeclaration{Tok: tok, Name: name, TypeSpec: spec, Init: init, Global: false, Final: final}
}

func (p *Parser) parseExpressionOrAssignmentNoTerminator() ast.Statement {
	first := p.parseExpressionRoot()
	if first == nil {
		return nil
	}
	if p.cur.Kind == token.ASSIGN {
		eq := p.cur
		p.advance()
		value := p.parseExpressionRoot()
		return &ast.AssignmentStatement{Eq: eq, Target: first, Value: value}
	}
	return &ast.ExpressionStatement{Expr: first}
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	tok := p.expect(token.RETURN)
	stmt := &ast.ReturnStatement{Tok: tok}
	if p.cur.Kind != token.SEMICOLON {
		stmt.Value = p.parseExpressionRoot()
	}
	p.expect(token.SEMICOLON)
	return stmt
}
