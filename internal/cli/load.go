package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	invapp "github.com/candicorner/inventory/internal/application/inventory"
	"github.com/candicorner/inventory/internal/domain/shared"
)

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Bulk-load bracelets from a delimited text file",
		Long: `Bulk-load bracelets from a text file, one record per line:

  id,description,quantity,price,status

Fields are trimmed before validation and blank lines are ignored. A
malformed or invalid line is skipped with a warning naming its line
number and never aborts the rest of the file. Only an unreadable file
or a storage fault fails the whole call.

Example:
  invctl load bracelets.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runLoad(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	repo, cleanup, err := openRepository(opts, f)
	if err != nil {
		return reportSetupError(f, err)
	}
	defer cleanup()

	report, err := invapp.NewBulkLoader(repo).LoadFile(commandContext(cmd), path)
	if err != nil {
		if report == nil {
			return reportSetupError(f, err)
		}
		return reportAbortedLoad(f, report, err)
	}

	if f.Format == "json" {
		return f.Success(report)
	}
	RenderLoadReport(f.Writer, report, path)
	return nil
}

// reportAbortedLoad renders a load cut short by a storage fault. The
// partial report travels with the error so the operator can see how
// far the file got.
func reportAbortedLoad(f *OutputFormatter, report *invapp.LoadReport, err error) error {
	code := CodeCommandError
	message := err.Error()
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code = domainErr.Code
		message = domainErr.Message
	}

	if f.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   report,
			Error:  &CLIError{Code: code, Message: message},
		}
		if encodeErr := json.NewEncoder(f.Writer).Encode(response); encodeErr != nil {
			return encodeErr
		}
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
		fmt.Fprintf(f.Writer, "Load aborted: %d loaded, %d skipped before the failure.\n", report.Loaded, report.Skipped)
	}
	return WrapExitError(ExitCommandError, message, err)
}
