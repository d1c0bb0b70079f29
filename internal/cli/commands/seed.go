package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/transfer/internal/cli/output"
	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/leapstack-labs/transfer/pkg/adapter"
	"github.com/spf13/cobra"
)

// SeedOptions holds options for the seed command.
type SeedOptions struct {
	Fixture string
	Replace bool
}

// NewSeedCommand creates the seed command.
func NewSeedCommand() *cobra.Command {
	opts := &SeedOptions{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Build the dataset from a YAML fixture",
		Long: `Validate a YAML fixture, run the dataset migrations and load the
fixture in a single transaction.

Seeding a dataset that already holds institutions fails unless --replace
is given. Only sqlite and postgres datasets can be built.`,
		Example: `  # Build assist.db from a fixture
  transfer seed --fixture dataset.yaml

  # Rebuild an existing dataset
  transfer seed --fixture dataset.yaml --replace`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Fixture, "fixture", "f", "", "Path to the YAML fixture (required)")
	cmd.Flags().BoolVar(&opts.Replace, "replace", false, "Delete existing rows before loading")
	_ = cmd.MarkFlagRequired("fixture")

	return cmd
}

func runSeed(cmd *cobra.Command, opts *SeedOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	fx, err := dataset.LoadFixture(opts.Fixture)
	if err != nil {
		return err
	}

	acfg := cc.Cfg.Dataset.AdapterConfig(true)
	adp, err := adapter.Connect(ctx, acfg, cc.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = adp.Close() }()

	stats, err := dataset.Seed(ctx, adp, fx, dataset.SeedOptions{Replace: opts.Replace}, cc.Logger)
	if err != nil {
		return err
	}

	r := cc.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(stats)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Seed"))
		r.Println("")
		r.Println(output.FormatKeyValue("Institutions", strconv.Itoa(stats.Institutions)))
		r.Println(output.FormatKeyValue("Courses", strconv.Itoa(stats.Courses)))
		r.Println(output.FormatKeyValue("Articulations", strconv.Itoa(stats.Articulations)))
	default:
		r.Success(fmt.Sprintf("Seeded %s dataset: %d institutions, %d courses, %d articulations",
			adp.DialectName(), stats.Institutions, stats.Courses, stats.Articulations))
	}
	return nil
}
