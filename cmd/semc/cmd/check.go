package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cwbudde/semc/internal/config"
	"github.com/cwbudde/semc/internal/diag"
	"github.com/cwbudde/semc/internal/semantic"
	"github.com/spf13/cobra"
)

var (
	checkWarningsAsErrors bool
	checkNoColor bool
	checkMaxErrors int
	checkJSON bool
)

var checkCmd = &cobra.Command{
	Use: "check [file]",
	Short: "Run full semantic analysis on a source file",
	Long: `Run the full seven-pass semantic analysis pipeline on a source file:
declaration and scoping, type-alias resolution, reference validation,
global dependency ordering, global and local type inference, and
constant-expression checking.

Exits non-zero if any error-severity diagnostic (or, with
--warnings-as-errors, any warning) was reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkWarningsAsErrors, "warnings-as-errors", false, "treat warnings as errors")
	checkCmd.Flags().BoolVar(&checkNoColor, "no-color", false, "disable ANSI color in diagnostic output")
	checkCmd.Flags().IntVar(&checkMaxErrors, "max-errors", 0, "abort analysis after this many diagnostics (0 = unbounded)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "emit diagnostics as JSON instead of GCC-style text")
}

func runCheck(cmd *cobra.Command, args []string) error {
	filename := args[0]
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".semcrc.yaml"
	}
	cfg, err := config.LoadOptional(configPath)
	if err != nil {
		return err
	}

	overrides := config.FlagOverrides{}
	if cmd.Flags().Changed("warnings-as-errors") {
		overrides.WarningsAsErrors = &checkWarningsAsErrors
	}
	if cmd.Flags().Changed("no-color") {
		noColor := !checkNoColor
		overrides.Color = &noColor
	}
	if cmd.Flags().Changed("max-errors") {
		overrides.MaxErrors = &checkMaxErrors
	}
	overrides.Apply(cfg)

	analyzer := semantic.New(cfg)
	result := analyzer.Analyze(context.Background(), string(data))

	for _, perr := range result.ParseErrs {
		result.Sink.Reportf(diag.Error, "parser", perr.Pos, "%s", perr.Message)
	}

	if checkJSON {
		out, err := result.Sink.FormatJSON()
		if err != nil {
			return fmt.Errorf("marshaling diagnostics: %w", err)
		}
		fmt.Println(string(out))
	} else {
		fmt.Print(result.Sink.Format(cfg.Color))
	}

	if hasFailures(result.Sink, cfg) {
		return fmt.Errorf("semantic analysis failed for %s", filename)
	}
	fmt.Printf("%s: OK\n", filename)
	return nil
}

func hasFailures(sink *diag.Sink, cfg *config.Config) bool {
	for _, d := range sink.Diagnostics() {
		if d.Severity == diag.Error {
			return true
		}
		if cfg.WarningsAsErrors && d.Severity == diag.Warning {
			return true
		}
	}
	return false
}
