package cli

import (
	"github.com/spf13/cobra"

	invapp "github.com/candicorner/inventory/internal/application/inventory"
)

// reportPayload is the JSON shape of a low-stock report.
type reportPayload struct {
	Threshold string            `json:"threshold"`
	Items     []braceletPayload `json:"items"`
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <threshold>",
		Short: "List bracelets with stock below a threshold",
		Long: `List bracelets with quantity strictly below the given threshold.

The threshold must be a non-negative integer. Matches are sorted by
ascending quantity; ties keep their storage order. An empty result is
a success, distinct from an invalid threshold.

Example:
  invctl report 5`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runReport(opts *RootOptions, threshold string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	repo, cleanup, err := openRepository(opts, f)
	if err != nil {
		return reportSetupError(f, err)
	}
	defer cleanup()

	items, err := invapp.NewInventoryService(repo).LowStock(commandContext(cmd), threshold)
	if err != nil {
		return reportDomainError(f, err)
	}

	if f.Format == "json" {
		return f.Success(reportPayload{Threshold: threshold, Items: newBraceletPayloads(items)})
	}
	RenderLowStock(f.Writer, items, threshold)
	return nil
}
