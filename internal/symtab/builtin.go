package symtab

import "github.com/cwbudde/semc/internal/types"

// primitiveKeywords maps every reserved primitive-type identifier to
// its PrimitiveKind, used once by NewBuiltinScope.
var primitiveKeywords = map[string]types.PrimitiveKind{
	"null_t": types.NullT,
	"bool": types.Bool,
	"int8": types.Int8,
	"int16": types.Int16,
	"int32": types.Int32,
	"int64": types.Int64,
	"uint8": types.Uint8,
	"uint16": types.Uint16,
	"uint32": types.Uint32,
	"uint64": types.Uint64,
	"float32": types.Float32,
	"float64": types.Float64,
	"void": types.Void,
}

func primitiveTypeFor(kind types.PrimitiveKind) types.Type { return types.Primitive(kind) }
