package commands

import (
	"github.com/leapstack-labs/transfer/internal/cli/output"
	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/spf13/cobra"
)

// NewCoursesCommand creates the courses command.
func NewCoursesCommand() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List course identifiers in the dataset",
		Example: `  transfer courses
  transfer courses --query math`,
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

			courses, err := store.ListCourses(cmd.Context())
			if err != nil {
				return err
			}
			courses = dataset.FilterCourses(courses, query)

			ids := make([]string, len(courses))
			for i, c := range courses {
				ids[i] = c.Identifier
			}
			if cc.Renderer.EffectiveMode() == output.ModeJSON {
				return cc.Renderer.JSON(ids)
			}
			cc.Renderer.List(ids)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive identifier filter")

	return cmd
}
