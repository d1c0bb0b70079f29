package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/transfer/pkg/core"
)

// SendingCourseSeparator joins the courses of one AND group in exports.
const SendingCourseSeparator = " + "

// ExportCSV writes every articulation row as CSV with a header line.
func ExportCSV(ctx context.Context, table core.ArticulationTable, w io.Writer) (int, error) {
	rows, err := table.AllArticulations(ctx)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"receiving_institution", "receiving_course", "sending_institution", "sending_courses"}); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write([]string{
			row.ReceivingInstitution,
			row.ReceivingCourse,
			row.SendingInstitution,
			strings.Join(row.SendingCourses, SendingCourseSeparator),
		}); err != nil {
			return 0, fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush export: %w", err)
	}
	return len(rows), nil
}
