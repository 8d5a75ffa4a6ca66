// cmd/cli/main.go runs Monday's commands from a terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(newRootCmd(os.Stdout, os.Stderr), os.Stderr))
}

// run executes root and reports a failure on stderr, since the root command
// silences cobra's own error output.
func run(root *cobra.Command, stderr io.Writer) int {
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
