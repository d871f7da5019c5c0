package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/token"
	"github.com/cwbudde/semc/internal/types"
)

// suffixKinds maps a numeric literal's trailing letters (`123u32`,
// `7i64`, `f`/`d`) to the primitive kind it selects.
var suffixKinds = map[string]types.PrimitiveKind{
	"i8": types.Int8, "i16": types.Int16, "i32": types.Int32, "i64": types.Int64,
	"u8": types.Uint8, "u16": types.Uint16, "u32": types.Uint32, "u64": types.Uint64,
	"f": types.Float32, "d": types.Float64,
}

// digitsOf splits lexeme into its leading digits/decimal-point portion,
// discarding any trailing suffix letters.
func digitsOf(lexeme string) string {
	i := 0
	for i < len(lexeme) && (lexeme[i] == '.' || (lexeme[i] >= '0' && lexeme[i] <= '9')) {
		i++
	}
	return lexeme[:i]
}

func suffixOf(lexeme string) string {
	i := 0
	for i < len(lexeme) && (lexeme[i] == '.' || (lexeme[i] >= '0' && lexeme[i] <= '9')) {
		i++
	}
	return lexeme[i:]
}

func parseIntDigits(digits string) (int, bool) {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// parseNumericLiteral builds a Literal node from an INT or FLOAT token,
// deriving SuffixKind from the lexeme's suffix, and applying the
// unsuffixed defaults: int32 if it fits else int64; float64.
func (p *Parser) parseNumericLiteral(tok token.Token) *ast.Literal {
	digits := digitsOf(tok.Lexeme)
	suffix := strings.ToLower(suffixOf(tok.Lexeme))

	if tok.Kind == token.FLOAT {
		lit := &ast.Literal{Tok: tok, Kind: ast.LiteralFloat, SuffixKind: types.Float64}
		if kind, ok := suffixKinds[suffix]; ok && (kind == types.Float32 || kind == types.Float64) {
			lit.SuffixKind, lit.HasSuffix = kind, true
		}
		return lit
	}

	lit := &ast.Literal{Tok: tok, Kind: ast.LiteralInt}
	if kind, ok := suffixKinds[suffix]; ok {
		lit.SuffixKind, lit.HasSuffix = kind, true
		return lit
	}
	// Unsuffixed: int32 if it fits, else int64.
	if n, ok := parseIntDigits(digits); ok && n >= -(1<<31) && n <= (1<<31)-1 {
		lit.SuffixKind = types.Int32
	} else {
		lit.SuffixKind = types.Int64
	}
	return lit
}
