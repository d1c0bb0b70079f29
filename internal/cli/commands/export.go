package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the articulation table as CSV",
		Long: `Write every articulation row as CSV, grouped by receiving institution.
Sending courses of one row are joined with " + ".`,
		Example: `  transfer export > articulations.csv
  transfer export --out articulations.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			store, err := cc.OpenDataset(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out) //nolint:gosec // G304: path is from trusted CLI input
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			n, err := dataset.ExportCSV(cmd.Context(), store, w)
			if err != nil {
				return err
			}
			cc.Logger.Info("articulations exported", "rows", n, "out", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")

	return cmd
}
