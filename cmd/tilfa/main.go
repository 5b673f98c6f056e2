package main

import (
	"fmt"
	"os"

	"github.com/okdaichi/tilfa/internal/cli"
)

// runAnalyze is overridable for easier unit-testing of run().
var runAnalyze = cli.RunAnalyze

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command logic and returns an exit code (0 =
// success). Keeping this function small makes unit-testing
// straightforward.
func run(args []string) int {
	if err := runAnalyze(args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
