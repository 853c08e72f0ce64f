// Command truthtable prints truth tables for propositional formulas and
// checks truth-table suites.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/truthtable/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.GetExitCode(err))
}
