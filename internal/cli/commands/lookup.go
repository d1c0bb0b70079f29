package commands

import (
	"strings"

	"github.com/leapstack-labs/transfer/internal/lookup"
	"github.com/leapstack-labs/transfer/pkg/core"
	"github.com/spf13/cobra"
)

// NewLookupCommand creates the lookup command.
func NewLookupCommand() *cobra.Command {
	var university string
	cmd := &cobra.Command{
		Use:   "lookup --university <name> <course>...",
		Short: "Find equivalent university courses for community college courses",
		Long: `Find the courses at a university that the given community college
courses satisfy, grouped by community college.

A university course is listed only when every course it requires was given.
Courses may be passed as separate arguments or comma-separated.`,
		Example: `  transfer lookup --university "State University" ENGL101
  transfer lookup -u "State University" MATH200,MATH201 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			req := core.LookupRequest{University: university, Courses: SplitCourses(args)}
			if _, err := lookup.Validate(req); err != nil {
				return err
			}

			store, err := cc.OpenDataset(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			res, err := lookup.New(store, cc.Logger).LookupEquivalents(cmd.Context(), req)
			if err != nil {
				return err
			}
			return cc.Renderer.LookupResult(res)
		},
	}

	cmd.Flags().StringVarP(&university, "university", "u", "", "Target university (required)")
	_ = cmd.MarkFlagRequired("university")

	return cmd
}

// SplitCourses splits arguments on commas and trims each course.
// Empty pieces are dropped.
func SplitCourses(args []string) []string {
	var courses []string
	for _, arg := range args {
		for _, c := range strings.Split(arg, ",") {
			if c = strings.TrimSpace(c); c != "" {
				courses = append(courses, c)
			}
		}
	}
	return courses
}
