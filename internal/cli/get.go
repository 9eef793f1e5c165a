package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	invapp "github.com/candicorner/inventory/internal/application/inventory"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Look up one bracelet by its ID",
		Long: `Look up one bracelet by its ID.

IDs match case-insensitively, so 'invctl get b001' finds B001.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runGet(opts *RootOptions, id string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	repo, cleanup, err := openRepository(opts, f)
	if err != nil {
		return reportSetupError(f, err)
	}
	defer cleanup()

	bracelet, err := invapp.NewInventoryService(repo).Get(commandContext(cmd), id)
	if err != nil {
		return reportDomainError(f, err)
	}

	if f.Format == "json" {
		return f.Success(newBraceletPayload(bracelet))
	}
	fmt.Fprintln(f.Writer, FormatBracelet(bracelet))
	return nil
}
