package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/transfer/pkg/core"
)

// SeedOptions controls Seed.
type SeedOptions struct {
	// Replace deletes existing rows before loading. Without it, seeding a
	// non-empty dataset fails.
	Replace bool
}

// SeedStats reports what Seed wrote.
type SeedStats struct {
	Institutions  int `json:"institutions"`
	Courses       int `json:"courses"`
	Articulations int `json:"articulations"`
}

// Seed validates fx, migrates the dataset behind adp and loads fx in one
// transaction. adp must be connected read-write.
func Seed(ctx context.Context, adp core.Adapter, fx *Fixture, opts SeedOptions, logger *slog.Logger) (*SeedStats, error) {
	logger = orDiscard(logger)

	if err := fx.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixture:\n%w", err)
	}
	if err := Migrate(ctx, adp, logger); err != nil {
		return nil, err
	}

	tx, err := adp.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ph := adp.Placeholder
	if err := prepareTables(ctx, tx, opts.Replace); err != nil {
		return nil, err
	}

	stats := &SeedStats{}

	insertInstitution := fmt.Sprintf(
		`INSERT INTO institutions (%s) VALUES (%s)`, institutionColumns, placeholders(ph, 9))
	for _, inst := range fx.Institutions {
		typ, _ := core.ParseInstitutionType(string(inst.Type))
		if _, err := tx.ExecContext(ctx, insertInstitution,
			inst.Name, string(typ), inst.DisplayLocation(), inst.Address, inst.City,
			inst.State, inst.ZipCode, nullFloat(inst.Latitude), nullFloat(inst.Longitude),
		); err != nil {
			return nil, fmt.Errorf("failed to insert institution %q: %w", inst.Name, err)
		}
		stats.Institutions++
	}

	insertCourse := `INSERT INTO courses (identifier) VALUES (` + ph(1) + `)`
	for _, c := range fx.CourseCatalog() {
		if _, err := tx.ExecContext(ctx, insertCourse, c); err != nil {
			return nil, fmt.Errorf("failed to insert course %q: %w", c, err)
		}
		stats.Courses++
	}

	insertArticulation := fmt.Sprintf(
		`INSERT INTO articulations (id, receiving_institution, receiving_course, sending_institution) VALUES (%s)`,
		placeholders(ph, 4))
	insertArticulationCourse := fmt.Sprintf(
		`INSERT INTO articulation_courses (articulation_id, ordinal, course) VALUES (%s)`,
		placeholders(ph, 3))
	for i, row := range fx.Articulations {
		id := i + 1
		if _, err := tx.ExecContext(ctx, insertArticulation,
			id, row.ReceivingInstitution, row.ReceivingCourse, row.SendingInstitution,
		); err != nil {
			return nil, fmt.Errorf("failed to insert articulation %s / %s: %w", row.ReceivingInstitution, row.ReceivingCourse, err)
		}
		for ordinal, course := range row.SendingCourses {
			if _, err := tx.ExecContext(ctx, insertArticulationCourse, id, ordinal, course); err != nil {
				return nil, fmt.Errorf("failed to insert sending course %q: %w", course, err)
			}
		}
		stats.Articulations++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit dataset: %w", err)
	}

	logger.Info("dataset seeded",
		slog.Int("institutions", stats.Institutions),
		slog.Int("courses", stats.Courses),
		slog.Int("articulations", stats.Articulations))
	return stats, nil
}

// prepareTables empties the dataset when replace is set, otherwise checks it is empty.
func prepareTables(ctx context.Context, tx *sql.Tx, replace bool) error {
	if replace {
		for _, table := range []string{"articulation_courses", "articulations", "courses", "institutions"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil { //nolint:gosec // fixed table names
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	}

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM institutions`).Scan(&n); err != nil {
		return fmt.Errorf("failed to inspect dataset: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("dataset already contains %d institutions; use --replace to overwrite", n)
	}
	return nil
}

func placeholders(ph func(int) string, n int) string {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = ph(i + 1)
	}
	return strings.Join(marks, ", ")
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
