package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	invapp "github.com/candicorner/inventory/internal/application/inventory"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <id> <description> <quantity> <price>",
		Short: "Add a new bracelet to the catalog",
		Long: `Add a new bracelet to the catalog.

All four values arrive as text and are validated in order: the ID must
be non-empty and unique (case-insensitive), the description non-empty,
the quantity a non-negative integer and the price a non-negative
number. New records always start In Stock.

Example:
  invctl add B001 "Silver charm bracelet" 12 24.99`,
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runAdd(opts *RootOptions, args []string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	repo, cleanup, err := openRepository(opts, f)
	if err != nil {
		return reportSetupError(f, err)
	}
	defer cleanup()

	bracelet, err := invapp.NewInventoryService(repo).Add(commandContext(cmd), args[0], args[1], args[2], args[3])
	if err != nil {
		return reportDomainError(f, err)
	}

	if f.Format == "json" {
		return f.Success(newBraceletPayload(bracelet))
	}
	fmt.Fprintf(f.Writer, "Successfully added: %s\n", FormatBracelet(bracelet))
	return nil
}
