package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/leapstack-labs/transfer/internal/cli/output"
	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/leapstack-labs/transfer/pkg/core"
	"github.com/spf13/cobra"
)

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the dataset is reachable and consistent",
		Long: `Connect to the configured dataset and report:
- Backend and migration version
- Institution, course and articulation counts
- Articulation rows that break dataset invariants

Exits non-zero when the dataset is unreachable or any check fails.`,
		Example: `  transfer doctor
  transfer doctor --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd)
		},
	}
}

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	Backend          string              `json:"backend"`
	MigrationVersion *int64              `json:"migration_version,omitempty"`
	Universities     int                 `json:"universities"`
	Colleges         int                 `json:"community_colleges"`
	Courses          int                 `json:"courses"`
	Articulations    int                 `json:"articulations"`
	Violations       []dataset.Violation `json:"violations"`
}

func runDoctor(cmd *cobra.Command) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	store, err := cc.OpenDataset(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Ping(ctx); err != nil {
		return err
	}

	report, err := diagnose(ctx, store)
	if err != nil {
		return err
	}

	renderDoctor(cc.Renderer, report)
	if len(report.Violations) > 0 {
		return fmt.Errorf("dataset has %d integrity violation(s)", len(report.Violations))
	}
	return nil
}

func diagnose(ctx context.Context, store *dataset.Store) (*DoctorOutput, error) {
	report := &DoctorOutput{Backend: store.Adapter().DialectName(), Violations: []dataset.Violation{}}

	if store.Adapter().MigrationDialect() != "" {
		if v, err := dataset.MigrationVersion(ctx, store.Adapter()); err == nil {
			report.MigrationVersion = &v
		}
	}

	insts, err := store.ListInstitutions(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, inst := range insts {
		switch inst.Type {
		case core.InstitutionTypeUniversity:
			report.Universities++
		case core.InstitutionTypeCommunityCollege:
			report.Colleges++
		}
	}

	courses, err := store.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	report.Courses = len(courses)

	rows, err := store.AllArticulations(ctx)
	if err != nil {
		return nil, err
	}
	report.Articulations = len(rows)

	violations, err := store.Check(ctx)
	if err != nil {
		return nil, err
	}
	report.Violations = append(report.Violations, violations...)

	return report, nil
}

func renderDoctor(r *output.Renderer, report *DoctorOutput) {
	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(report)
		return
	}

	version := "untracked"
	if report.MigrationVersion != nil {
		version = strconv.FormatInt(*report.MigrationVersion, 10)
	}

	r.Header(1, "Dataset Health")
	r.Println(output.FormatKeyValue("Backend", report.Backend))
	r.Println(output.FormatKeyValue("Migration version", version))
	r.Println(output.FormatKeyValue("Universities", strconv.Itoa(report.Universities)))
	r.Println(output.FormatKeyValue("Community colleges", strconv.Itoa(report.Colleges)))
	r.Println(output.FormatKeyValue("Courses", strconv.Itoa(report.Courses)))
	r.Println(output.FormatKeyValue("Articulations", strconv.Itoa(report.Articulations)))
	r.Println("")

	if len(report.Violations) == 0 {
		if r.EffectiveMode() == output.ModeMarkdown {
			r.Println("All checks passed.")
		} else {
			r.Success("All checks passed")
		}
		return
	}

	r.Header(2, "Violations")
	rows := make([][]string, len(report.Violations))
	for i, v := range report.Violations {
		rows[i] = []string{v.Rule, v.Subject, v.Message}
	}
	r.Table([]string{"Rule", "Subject", "Message"}, rows)
}
