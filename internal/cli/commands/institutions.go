package commands

import (
	"strings"

	"github.com/leapstack-labs/transfer/internal/cli/output"
	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/leapstack-labs/transfer/pkg/core"
	"github.com/spf13/cobra"
)

// InstitutionsOptions holds options for the institutions command.
type InstitutionsOptions struct {
	Type  string
	Query string
}

// NewInstitutionsCommand creates the institutions command.
func NewInstitutionsCommand() *cobra.Command {
	opts := &InstitutionsOptions{}
	cmd := &cobra.Command{
		Use:   "institutions",
		Short: "List institutions in the dataset",
		Long: `List universities and community colleges, ordered by name.

Output adapts to environment:
  - Terminal: table
  - Piped/Scripted: Markdown table
  - JSON: full institution records`,
		Example: `  # All universities
  transfer institutions --type university

  # Colleges whose name contains "valley"
  transfer institutions --type community_college --query valley`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstitutions(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", "", "Institution type: university, community_college")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "Case-insensitive name filter")
	_ = cmd.RegisterFlagCompletionFunc("type", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(core.InstitutionTypeUniversity), string(core.InstitutionTypeCommunityCollege)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runInstitutions(cmd *cobra.Command, opts *InstitutionsOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	var typ core.InstitutionType
	if strings.TrimSpace(opts.Type) != "" {
		if typ, err = core.ParseInstitutionType(opts.Type); err != nil {
			return err
		}
	}

	store, err := cc.OpenDataset(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	insts, err := store.ListInstitutions(cmd.Context(), typ)
	if err != nil {
		return err
	}
	insts = dataset.FilterInstitutions(insts, opts.Query)

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(insts)
	}

	rows := make([][]string, len(insts))
	for i, inst := range insts {
		rows[i] = []string{inst.Name, string(inst.Type), inst.DisplayLocation()}
	}
	r.Table([]string{"Name", "Type", "Location"}, rows)
	return nil
}
