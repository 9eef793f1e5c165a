package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	invapp "github.com/candicorner/inventory/internal/application/inventory"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a bracelet from the catalog",
		Long: `Remove the bracelet with the given ID. The ID matches
case-insensitively; removing an ID that does not exist is an error and
leaves storage untouched.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRemove(opts *RootOptions, id string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	repo, cleanup, err := openRepository(opts, f)
	if err != nil {
		return reportSetupError(f, err)
	}
	defer cleanup()

	res, err := invapp.NewInventoryService(repo).Remove(commandContext(cmd), id)
	if err != nil {
		return reportDomainError(f, err)
	}

	if f.Format == "json" {
		return f.Success(res)
	}
	fmt.Fprintf(f.Writer, "Successfully removed: ID: %s, Description: %s\n", res.ID, res.Description)
	return nil
}
