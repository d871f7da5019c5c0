package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/lexer"
	"github.com/cwbudde/semc/internal/parser"
	"github.com/spf13/cobra"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use: "parse [file]",
	Short: "Parse a source file and dump its AST",
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(parseEval, args)
	if err != nil {
		return err
	}

	l := lexer.New(input, lexer.WithFilename(filename))
	p := parser.New(l)
	unit := p.ParseTranslationUnit()

	if len(p.Errors()) > 0 {
		for _, perr := range p.Errors() {
			fmt.Fprintf(os.Stderr, "%s: %s\n", perr.Pos, perr.Message)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	for _, d := range unit.Decls {
		dumpDecl(d, 0)
	}
	return nil
}

func indent(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += " "
	}
	return out
}

func dumpDecl(d ast.Declaration, depth int) {
	switch decl := d.(type) {
	case *ast.VariableDeclaration:
		fmt.Printf("%sVariableDeclaration %s (global=%v final=%v)\n", indent(depth), decl.DeclName(), decl.Global, decl.Final)
	case *ast.FunctionDeclaration:
		fmt.Printf("%sFunctionDeclaration %s (%d params)\n", indent(depth), decl.DeclName(), len(decl.Params))
	case *ast.AggregateDeclaration:
		fmt.Printf("%sAggregateDeclaration %s (%d fields)\n", indent(depth), decl.Name.Tok.Lexeme, len(decl.Fields))
		for _, f := range decl.Fields {
			dumpDecl(f, depth+1)
		}
	case *ast.TypealiasDeclaration:
		fmt.Printf("%sTypealiasDeclaration %s\n", indent(depth), decl.DeclName())
	default:
		fmt.Printf("%s%T\n", indent(depth), d)
	}
}
