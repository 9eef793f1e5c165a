package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/candicorner/inventory/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// ExitError means the command already rendered the failure.
		// Everything else is a usage or flag error cobra suppressed.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		}
		os.Exit(cli.GetExitCode(err))
	}
}
