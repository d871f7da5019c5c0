package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/semc/internal/lexer"
	"github.com/cwbudde/semc/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexEval string
	lexShowPos bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use: "lex [file]",
	Short: "Tokenize a source file or expression",
	Long: `Tokenize a source file and print the resulting tokens.

Examples:
 semc lex script.sc
 semc lex -e "var x = 42;"
 semc lex --show-pos --only-errors script.sc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only illegal tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(lexEval, args)
	if err != nil {
		return err
	}

	l := lexer.New(input, lexer.WithFilename(filename))
	count, errCount := 0, 0
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		if lexOnlyErrors && tok.Kind != token.ILLEGAL {
			continue
		}
		count++
		if tok.Kind == token.ILLEGAL {
			errCount++
		}
		printToken(tok)
	}

	if errCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errCount)
	}
	return nil
}

func printToken(tok token.Token) {
	out := fmt.Sprintf("[%-10s] %q", tok.Kind.String(), tok.Lexeme)
	if lexShowPos {
		out += " @" + tok.Pos.String()
	}
	fmt.Println(out)
}

func readSource(eval string, args []string) (input, filename string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}
