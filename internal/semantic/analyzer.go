package semantic

import (
	"context"

	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/config"
	"github.com/cwbudde/semc/internal/diag"
	"github.com/cwbudde/semc/internal/lexer"
	"github.com/cwbudde/semc/internal/parser"
	"github.com/cwbudde/semc/internal/symtab"
)

// Result is the outcome of analyzing one translation unit: the (now fully
// attributed) AST plus every diagnostic collected across lexing, parsing,
// and the semantic passes.
type Result struct {
	Unit *ast.TranslationUnit
	Sink *diag.Sink
	ParseErrs []*parser.ParseError
}

// Analyzer holds the state shared across every file analyzed in a single
// run: the built-in scope (built once, since it never varies per file) and
// the resolved configuration governing diagnostic behavior.
type Analyzer struct {
	Builtin *symtab.Scope
	Config *config.Config
}

// New creates an Analyzer with a fresh built-in scope. cfg may be nil, in
// which case config.Default governs.
func New(cfg *config.Config) *Analyzer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Analyzer{Builtin: symtab.NewBuiltinScope(), Config: cfg}
}

// Analyze lexes, parses, and fully attributes source, running every
// semantic pass in the fixed order. goctx is checked for cancellation once
// per pass boundary; a cancelled context aborts the remaining passes but
// still returns whatever diagnostics and partial attribution were produced.
func (a *Analyzer) Analyze(goctx context.Context, source string) *Result {
	lex := lexer.New(source)
	p := parser.New(lex)
	unit := p.ParseTranslationUnit()

	sink := diag.NewSink(source)
	for _, le := range lex.Errors() {
		sink.Report(diag.Error, "lexer", le.Pos, le.Message)
	}
	ctx := &PassContext{Builtin: a.Builtin, Diags: sink, Config: a.Config}

	pm := NewPassManager(
		&DeclarationPass{},
		&TypeAliasPass{},
		&ReferenceValidationPass{},
		&GlobalDependencyPass{},
		&GlobalInferencePass{},
		&LocalInferencePass{},
		&ConstantCheckPass{},
	)
	_ = pm.RunAll(goctx, unit, ctx)

	return &Result{Unit: unit, Sink: sink, ParseErrs: p.Errors()}
}
