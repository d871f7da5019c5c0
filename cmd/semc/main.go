// Command semc is the command-line front end for the semantic analyzer:
// subcommands for lexing, parsing, and fully checking a source file.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/semc/cmd/semc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
