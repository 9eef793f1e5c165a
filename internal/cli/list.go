package cli

import (
	"github.com/spf13/cobra"

	invapp "github.com/candicorner/inventory/internal/application/inventory"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Display all bracelets in the catalog",
		Long: `Display every bracelet currently in storage, in storage order.

Example:
  invctl list
  invctl list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	repo, cleanup, err := openRepository(opts, f)
	if err != nil {
		return reportSetupError(f, err)
	}
	defer cleanup()

	items, err := invapp.NewInventoryService(repo).List(commandContext(cmd))
	if err != nil {
		return reportDomainError(f, err)
	}

	if f.Format == "json" {
		return f.Success(newBraceletPayloads(items))
	}
	RenderInventory(f.Writer, items)
	return nil
}
