// Package dataset provides read access to the transfer reference dataset:
// the institution catalog, the course catalog and the articulation table.
//
// The serving process only reads. Datasets are built ahead of time with
// Seed, which runs the embedded goose migrations and loads a Fixture.
package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/transfer/pkg/adapter"
	"github.com/leapstack-labs/transfer/pkg/core"
)

// Store implements core.Dataset on top of a connected adapter.
type Store struct {
	adp    core.Adapter
	logger *slog.Logger
}

var _ core.Dataset = (*Store)(nil)

// NewStore wraps an already-connected adapter.
func NewStore(adp core.Adapter, logger *slog.Logger) *Store {
	return &Store{adp: adp, logger: orDiscard(logger)}
}

// Open creates the adapter named by cfg.Type, connects it and returns a Store.
func Open(ctx context.Context, cfg core.AdapterConfig, logger *slog.Logger) (*Store, error) {
	logger = orDiscard(logger)

	adp, err := adapter.Connect(ctx, cfg, logger)
	if err != nil {
		var unknown *adapter.UnknownAdapterError
		if errors.As(err, &unknown) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", core.ErrDataUnavailable, err)
	}

	logger.Debug("dataset opened", slog.String("type", cfg.Type), slog.String("path", cfg.Path))
	return NewStore(adp, logger), nil
}

// Adapter returns the underlying adapter.
func (s *Store) Adapter() core.Adapter {
	return s.adp
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.adp.Close()
}

// Ping checks that the dataset is reachable.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.db()
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		return unavailable("ping dataset", err)
	}
	return nil
}

const institutionColumns = `name, type, location, address, city, state, zip_code, latitude, longitude`

// ListInstitutions returns institutions of the given type ordered by name,
// or every institution when typ is empty.
func (s *Store) ListInstitutions(ctx context.Context, typ core.InstitutionType) ([]core.Institution, error) {
	db, err := s.db()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + institutionColumns + ` FROM institutions`
	var args []any
	if typ != "" {
		query += ` WHERE type = ` + s.adp.Placeholder(1)
		args = append(args, string(typ))
	}
	query += ` ORDER BY name`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("list institutions", err)
	}
	defer func() { _ = rows.Close() }()

	institutions := []core.Institution{}
	for rows.Next() {
		inst, err := scanInstitution(rows)
		if err != nil {
			return nil, unavailable("scan institution", err)
		}
		institutions = append(institutions, *inst)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate institutions", err)
	}
	return institutions, nil
}

// GetInstitution returns the named institution. The match is exact.
func (s *Store) GetInstitution(ctx context.Context, name string) (*core.Institution, error) {
	db, err := s.db()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		`SELECT `+institutionColumns+` FROM institutions WHERE name = `+s.adp.Placeholder(1), name)
	inst, err := scanInstitution(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: institution %q", core.ErrNotFound, name)
	}
	if err != nil {
		return nil, unavailable("get institution", err)
	}
	return inst, nil
}

// ListCourses returns every course identifier in the catalog, sorted.
func (s *Store) ListCourses(ctx context.Context) ([]core.Course, error) {
	db, err := s.db()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT identifier FROM courses ORDER BY identifier`)
	if err != nil {
		return nil, unavailable("list courses", err)
	}
	defer func() { _ = rows.Close() }()

	courses := []core.Course{}
	for rows.Next() {
		var c core.Course
		if err := rows.Scan(&c.Identifier); err != nil {
			return nil, unavailable("scan course", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate courses", err)
	}
	return courses, nil
}

const articulationSelect = `
	SELECT a.id, a.receiving_institution, a.receiving_course, a.sending_institution, c.course
	FROM articulations a
	JOIN articulation_courses c ON c.articulation_id = a.id`

// ArticulationsFor returns the rows received by university in storage order.
func (s *Store) ArticulationsFor(ctx context.Context, university string) ([]core.ArticulationRow, error) {
	return s.queryArticulations(ctx,
		articulationSelect+` WHERE a.receiving_institution = `+s.adp.Placeholder(1)+` ORDER BY a.id, c.ordinal`,
		university)
}

// AllArticulations returns every row grouped by receiving institution.
func (s *Store) AllArticulations(ctx context.Context) ([]core.ArticulationRow, error) {
	return s.queryArticulations(ctx,
		articulationSelect+` ORDER BY a.receiving_institution, a.id, c.ordinal`)
}

// queryArticulations folds the (articulation, course) join back into rows.
// The query must order by articulation id within each row.
func (s *Store) queryArticulations(ctx context.Context, query string, args ...any) ([]core.ArticulationRow, error) {
	db, err := s.db()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("query articulations", err)
	}
	defer func() { _ = rows.Close() }()

	result := []core.ArticulationRow{}
	var lastID int64 = -1
	for rows.Next() {
		var (
			id     int64
			row    core.ArticulationRow
			course string
		)
		if err := rows.Scan(&id, &row.ReceivingInstitution, &row.ReceivingCourse, &row.SendingInstitution, &course); err != nil {
			return nil, unavailable("scan articulation", err)
		}
		if id != lastID {
			result = append(result, row)
			lastID = id
		}
		last := &result[len(result)-1]
		last.SendingCourses = append(last.SendingCourses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate articulations", err)
	}
	return result, nil
}

func (s *Store) db() (*sql.DB, error) {
	if s.adp == nil || s.adp.DB() == nil {
		return nil, fmt.Errorf("%w: database not opened", core.ErrDataUnavailable)
	}
	return s.adp.DB(), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInstitution(sc scanner) (*core.Institution, error) {
	var (
		inst     core.Institution
		typ      string
		lat, lon sql.NullFloat64
	)
	if err := sc.Scan(&inst.Name, &typ, &inst.Location, &inst.Address, &inst.City,
		&inst.State, &inst.ZipCode, &lat, &lon); err != nil {
		return nil, err
	}
	inst.Type = core.InstitutionType(strings.TrimSpace(typ))
	if lat.Valid {
		inst.Latitude = &lat.Float64
	}
	if lon.Valid {
		inst.Longitude = &lon.Float64
	}
	return &inst, nil
}

func unavailable(action string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", core.ErrDataUnavailable, action, err)
}
