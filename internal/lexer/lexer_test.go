package lexer

import (
	"testing"

	"github.com/cwbudde/semc/internal/token"
)

func TestNextTokenBasic(t *testing.T) {
	input := `var x = 5;
	x = x + 10;
	`

	tests := []struct {
		expectedLexeme string
		expectedKind token.Kind
	}{
		{"var", token.VAR},
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"5", token.INT},
		{";", token.SEMICOLON},
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"x", token.IDENT},
		{"+", token.PLUS},
		{"10", token.INT},
		{";", token.SEMICOLON},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v (lexeme=%q)",
				i, tt.expectedKind, tok.Kind, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestKeywordsAndPrimitiveTypes(t *testing.T) {
	input := `def struct union class type return if else while for break continue true false null
		bool int8 int16 int32 int64 uint8 uint16 uint32 uint64 float32 float64 void null_t`

	tests := []struct {
		expectedLexeme string
		expectedKind token.Kind
	}{
		{"def", token.DEF}, {"struct", token.STRUCT}, {"union", token.UNION},
		{"class", token.CLASS}, {"type", token.TYPE}, {"return", token.RETURN},
		{"if", token.IF}, {"else", token.ELSE}, {"while", token.WHILE}, {"for", token.FOR},
		{"break", token.BREAK}, {"continue", token.CONTINUE},
		{"true", token.TRUE}, {"false", token.FALSE}, {"null", token.NULL},
		{"bool", token.BOOL}, {"int8", token.INT8}, {"int16", token.INT16},
		{"int32", token.INT32}, {"int64", token.INT64},
		{"uint8", token.UINT8}, {"uint16", token.UINT16}, {"uint32", token.UINT32}, {"uint64", token.UINT64},
		{"float32", token.FLOAT32}, {"float64", token.FLOAT64}, {"void", token.VOID}, {"null_t", token.NULL_T},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.expectedKind || tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] = {%v,%q}, want {%v,%q}", i, tok.Kind, tok.Lexeme, tt.expectedKind, tt.expectedLexeme)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `+ - * / % & | ^ ~ ! = == != < <= > >= << >> && ||`
	tests := []token.Kind{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT,
		token.AMPERSAND, token.PIPE, token.CARET, token.TILDE, token.EXCLAMATION,
		token.ASSIGN, token.EQ, token.NOT_EQ, token.LESS, token.LESS_EQ,
		token.GREATER, token.GREATER_EQ, token.SHL, token.SHR, token.AND_AND, token.OR_OR,
	}

	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Kind != want {
			t.Errorf("tests[%d] kind = %v, want %v", i, tok.Kind, want)
		}
	}
}

func TestDelimiters(t *testing.T) {
	input := `( ) { } [ ] , ; : .`
	tests := []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACK, token.RBRACK, token.COMMA, token.SEMICOLON, token.COLON, token.DOT,
	}

	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Kind != want {
			t.Errorf("tests[%d] kind = %v, want %v", i, tok.Kind, want)
		}
	}
}

func TestNumberSuffixes(t *testing.T) {
	tests := []struct {
		input string
		kind token.Kind
	}{
		{"42", token.INT},
		{"7i64", token.INT},
		{"7u8", token.INT},
		{"3.14", token.FLOAT},
		{"2f", token.FLOAT},
		{"2d", token.FLOAT},
		{"1.5f32", token.FLOAT},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Kind != tt.kind {
			t.Errorf("NextToken(%q).Kind = %v, want %v", tt.input, tok.Kind, tt.kind)
		}
		if tok.Lexeme != tt.input {
			t.Errorf("NextToken(%q).Lexeme = %q, want %q", tt.input, tok.Lexeme, tt.input)
		}
	}
}

func TestStringLiteral(t *testing.T) {
	l := New(`"hello\nworld"`)
	tok := l.NextToken()
	if tok.Kind != token.STRING {
		t.Fatalf("Kind = %v, want STRING", tok.Kind)
	}
	if tok.Lexeme != `hello\nworld` {
		t.Errorf("Lexeme = %q, want %q", tok.Lexeme, `hello\nworld`)
	}
}

func TestUnterminatedStringRecordsError(t *testing.T) {
	l := New(`"hello`)
	tok := l.NextToken()
	if tok.Kind != token.ILLEGAL {
		t.Fatalf("Kind = %v, want ILLEGAL", tok.Kind)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(l.Errors()))
	}
}

func TestCharLiteral(t *testing.T) {
	l := New(`'a'`)
	tok := l.NextToken()
	if tok.Kind != token.CHAR || tok.Lexeme != "a" {
		t.Errorf("got {%v,%q}, want {CHAR,%q}", tok.Kind, tok.Lexeme, "a")
	}
}

func TestLineComments(t *testing.T) {
	input := "var x = 1; // trailing comment\nvar y = 2;"
	l := New(input)

	var kinds []token.Kind
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}

	want := []token.Kind{token.VAR, token.IDENT, token.ASSIGN, token.INT, token.SEMICOLON,
		token.VAR, token.IDENT, token.ASSIGN, token.INT, token.SEMICOLON}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(kinds), len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestIllegalCharacterRecordsError(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Kind != token.ILLEGAL {
		t.Fatalf("Kind = %v, want ILLEGAL", tok.Kind)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(l.Errors()))
	}
}

func TestUnicodeColumnsCountRunes(t *testing.T) {
	// "café" has 4 runes but 5 bytes; the identifier after it must start at
	// rune column 6, not byte column 7, so carets in diagnostics stay aligned.
	l := New(`café x`)
	first := l.NextToken()
	if first.Kind != token.IDENT || first.Lexeme != "café" {
		t.Fatalf("first token = {%v,%q}, want {IDENT,café}", first.Kind, first.Lexeme)
	}
	second := l.NextToken()
	if second.Pos.Column != 6 {
		t.Errorf("second token column = %d, want 6", second.Pos.Column)
	}
}

func TestLinePositionAdvancesAcrossNewlines(t *testing.T) {
	l := New("x\ny")
	first := l.NextToken()
	if first.Pos.Line != 1 {
		t.Errorf("first token line = %d, want 1", first.Pos.Line)
	}
	second := l.NextToken()
	if second.Pos.Line != 2 {
		t.Errorf("second token line = %d, want 2", second.Pos.Line)
	}
	if second.Pos.Column != 1 {
		t.Errorf("second token column = %d, want 1", second.Pos.Column)
	}
}

func TestWithFilenameOption(t *testing.T) {
	l := New("x", WithFilename("main.sm"))
	tok := l.NextToken()
	if tok.Pos.Filename != "main.sm" {
		t.Errorf("Filename = %q, want main.sm", tok.Pos.Filename)
	}
}

func TestWithTracingOption(t *testing.T) {
	l := New("x", WithTracing(true))
	if !l.tracing {
		t.Error("WithTracing(true) should set tracing")
	}
	// Trace must not panic and returns whatever the lexer accumulated
	// (empty here since NextToken doesn't append trace lines itself).
	_ = l.Trace()
}
