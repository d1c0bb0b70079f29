package commands

import (
	"github.com/spf13/cobra"
)

// NewLocationCommand creates the location command.
func NewLocationCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "location <institution>",
		Short:   "Show an institution's address and coordinates",
		Example: `  transfer location "Valley College"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			store, err := cc.OpenDataset(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			inst, err := store.GetInstitution(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return cc.Renderer.Institution(inst)
		},
	}
}
