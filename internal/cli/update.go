package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	invapp "github.com/candicorner/inventory/internal/application/inventory"
)

// updatePayload mirrors the engine's update outcome for JSON output.
type updatePayload struct {
	Bracelet      braceletPayload `json:"bracelet"`
	Field         string          `json:"field"`
	Changed       bool            `json:"changed"`
	StatusFlipped bool            `json:"status_flipped"`
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id> <field> <value>",
		Short: "Update one field of an existing bracelet",
		Long: `Update one field of an existing bracelet. The field must be one of
quantity, price or status.

Setting the quantity to zero flips the status to Out of Stock, and a
positive quantity lifts it back to In Stock; price and status updates
touch only their own field. Supplying the already-stored value is a
successful no-op.

Example:
  invctl update B001 quantity 0
  invctl update B001 price 19.99
  invctl update B001 status "In Stock"`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runUpdate(opts *RootOptions, args []string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	repo, cleanup, err := openRepository(opts, f)
	if err != nil {
		return reportSetupError(f, err)
	}
	defer cleanup()

	res, err := invapp.NewInventoryService(repo).UpdateField(commandContext(cmd), args[0], args[1], args[2])
	if err != nil {
		return reportDomainError(f, err)
	}

	if f.Format == "json" {
		return f.Success(updatePayload{
			Bracelet:      newBraceletPayload(res.Bracelet),
			Field:         res.Field,
			Changed:       res.Changed,
			StatusFlipped: res.StatusFlipped,
		})
	}
	fmt.Fprintln(f.Writer, updateMessage(res))
	fmt.Fprintln(f.Writer, FormatBracelet(res.Bracelet))
	return nil
}
