// Package parser implements a recursive-descent parser with Pratt-style
// binary-operator precedence climbing, turning a token stream into an AST.
package parser

import (
	"fmt"

	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/lexer"
	"github.com/cwbudde/semc/internal/token"
)

// ParseError is a syntax error recorded during parsing; the parser recovers
// in panic mode and keeps going so a whole file's errors accumulate.
type ParseError struct {
	Pos token.Position
	Message string
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s: %s", e.Pos, e.Message) }

// Precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	OROR
	ANDAND
	BITOR
	BITXOR
	BITAND
	EQUALITY
	RELATIONAL
	SHIFT
	ADDITIVE
	MULTIPLICATIVE
	UNARY
	POSTFIX // call, index
)

var precedences = map[token.Kind]int{
	token.OR_OR: OROR,
	token.AND_AND: ANDAND,
	token.PIPE: BITOR,
	token.CARET: BITXOR,
	token.AMPERSAND: BITAND,
	token.EQ: EQUALITY,
	token.NOT_EQ: EQUALITY,
	token.LESS: RELATIONAL,
	token.LESS_EQ: RELATIONAL,
	token.GREATER: RELATIONAL,
	token.GREATER_EQ: RELATIONAL,
	token.SHL: SHIFT,
	token.SHR: SHIFT,
	token.PLUS: ADDITIVE,
	token.MINUS: ADDITIVE,
	token.ASTERISK: MULTIPLICATIVE,
	token.SLASH: MULTIPLICATIVE,
	token.PERCENT: MULTIPLICATIVE,
	token.LPAREN: POSTFIX,
	token.LBRACK: POSTFIX,
}

// statementStart is the panic-mode recovery synchronization set: the token
// kinds that may begin a new statement or declaration.
var statementStart = map[token.Kind]bool{
	token.VAR: true, token.CONST: true, token.DEF: true, token.STRUCT: true,
	token.UNION: true, token.CLASS: true, token.TYPE: true, token.SEMICOLON: true,
	token.IF: true, token.WHILE: true, token.FOR: true, token.RETURN: true,
	token.BREAK: true, token.CONTINUE: true, token.LBRACE: true, token.RBRACE: true,
}

// Parser turns a token stream into an AST, collecting ParseErrors rather
// than stopping at the first syntax error.
type Parser struct {
	lex *lexer.Lexer

	cur, peek token.Token
	errors []*ParseError
}

// New creates a Parser reading tokens from lex.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.advance()
	p.advance()
	return p
}

// Errors returns the syntax errors accumulated so far.
func (p *Parser) Errors() []*ParseError { return p.errors }

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) errorf(pos token.Position, format string, args ...any) {
	p.errors = append(p.errors, &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) expect(kind token.Kind) token.Token {
	if p.cur.Kind != kind {
		p.errorf(p.cur.Pos, "expected %s, got %s %q", kind, p.cur.Kind, p.cur.Lexeme)
		return p.cur
	}
	tok := p.cur
	p.advance()
	return tok
}

// synchronize discards tokens until one that may start a new statement or
// declaration, so a single syntax error doesn't derail the rest of the file.
func (p *Parser) synchronize() {
	for p.cur.Kind != token.EOF && !statementStart[p.cur.Kind] {
		p.advance()
	}
}

// ParseTranslationUnit parses an entire source file.
func (p *Parser) ParseTranslationUnit() *ast.TranslationUnit {
	unit := &ast.TranslationUnit{}
	for p.cur.Kind != token.EOF {
		decl := p.parseDeclaration(true)
		if decl != nil {
			unit.Decls = append(unit.Decls, decl)
		} else {
			p.advance()
			p.synchronize()
		}
	}
	return unit
}

// parseDeclaration parses one top-level or member declaration. isGlobal is
// true at translation-unit scope and false when called for struct/union/
// class members (which are never global-dependency participants, but are
// still declarations).
func (p *Parser) parseDeclaration(isGlobal bool) ast.Declaration {
	switch p.cur.Kind {
	case token.VAR, token.CONST:
		return p.parseVarDecl(isGlobal)
	case token.DEF:
		return p.parseFuncDecl()
	case token.STRUCT:
		return p.parseAggregate(ast.AggregateStructure)
	case token.UNION:
		return p.parseAggregate(ast.AggregateUnion)
	case token.CLASS:
		return p.parseAggregate(ast.AggregateClass)
	case token.TYPE:
		return p.parseTypealias()
	default:
		p.errorf(p.cur.Pos, "expected declaration, got %s %q", p.cur.Kind, p.cur.Lexeme)
		return nil
	}
}

func (p *Parser) parseVarDecl(isGlobal bool) *ast.VariableDeclaration {
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
	p.expect(token.SEMICOLON)

	return &ast.VariableDeclaration{
		Tok: tok, Name: name, TypeSpec: spec, Init: init, Global: isGlobal, Final: final,
	}
}

func (p *Parser) parseFuncDecl() *ast.FunctionDeclaration {
	tok := p.expect(token.DEF)
	nameTok := p.expect(token.IDENT)
	name := &ast.Name{Tok: nameTok}

	var params []*ast.Parameter
	if p.cur.Kind == token.LPAREN {
		p.advance()
		for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
			pn := p.expect(token.IDENT)
			p.expect(token.COLON)
			pt := p.parseTypeSpec()
			params = append(params, &ast.Parameter{Name: &ast.Name{Tok: pn}, TypeSpec: pt})
			if p.cur.Kind == token.COMMA {
				p.advance()
			} else {
				break
			}
		}
		p.expect(token.RPAREN)
	}

	var ret ast.TypeSpec
	if p.cur.Kind == token.COLON {
		p.advance()
		ret = p.parseTypeSpec()
	}

	body := p.parseBlock()
	return &ast.FunctionDeclaration{Tok: tok, Name: name, Params: params, RetType: ret, Body: body}
}

func (p *Parser) parseAggregate(kind ast.AggregateKind) *ast.AggregateDeclaration {
	tok := p.cur
	p.advance()
	nameTok := p.expect(token.IDENT)
	p.expect(token.LBRACE)

	var fields []*ast.VariableDeclaration
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		fields = append(fields, p.parseVarDecl(false))
	}
	p.expect(token.RBRACE)

	return &ast.AggregateDeclaration{Tok: tok, AggKind: kind, Name: &ast.Name{Tok: nameTok}, Fields: fields}
}

func (p *Parser) parseTypealias() *ast.TypealiasDeclaration {
	tok := p.expect(token.TYPE)
	nameTok := p.expect(token.IDENT)
	p.expect(token.ASSIGN)
	spec := p.parseTypeSpec()
	p.expect(token.SEMICOLON)
	return &ast.TypealiasDeclaration{Tok: tok, Name: &ast.Name{Tok: nameTok}, TypeSpec: spec}
}
