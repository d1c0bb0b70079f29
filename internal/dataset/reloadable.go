package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/leapstack-labs/transfer/pkg/core"
)

// OpenFunc opens a fresh Store.
type OpenFunc func(ctx context.Context) (*Store, error)

// Reloadable is a core.Dataset whose underlying Store can be swapped while
// serving. Reads hold a read lock for their whole duration, so Reload waits
// for in-flight reads before the old Store is closed.
type Reloadable struct {
	open   OpenFunc
	logger *slog.Logger

	mu     sync.RWMutex
	cur    *Store
	closed bool
}

var _ core.Dataset = (*Reloadable)(nil)

// NewReloadable opens the first Store with open.
func NewReloadable(ctx context.Context, open OpenFunc, logger *slog.Logger) (*Reloadable, error) {
	s, err := open(ctx)
	if err != nil {
		return nil, err
	}
	return &Reloadable{open: open, logger: orDiscard(logger), cur: s}, nil
}

// Reload opens a new Store and swaps it in. On failure the current Store
// keeps serving and the error is returned.
func (r *Reloadable) Reload(ctx context.Context) error {
	next, err := r.open(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload dataset: %w", err)
	}
	if err := next.Ping(ctx); err != nil {
		_ = next.Close()
		return fmt.Errorf("failed to reload dataset: %w", err)
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		_ = next.Close()
		return fmt.Errorf("%w: dataset closed", core.ErrDataUnavailable)
	}
	old := r.cur
	r.cur = next
	r.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			r.logger.Warn("failed to close previous dataset", "error", err)
		}
	}
	r.logger.Info("dataset reloaded")
	return nil
}

// Close closes the current Store. Later reads and reloads fail with
// ErrDataUnavailable.
func (r *Reloadable) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	if r.cur == nil {
		return nil
	}
	err := r.cur.Close()
	r.cur = nil
	return err
}

// with runs fn against the current Store under the read lock.
func with[T any](r *Reloadable, fn func(*Store) (T, error)) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.cur == nil {
		var zero T
		return zero, fmt.Errorf("%w: dataset closed", core.ErrDataUnavailable)
	}
	return fn(r.cur)
}

// Ping implements core.Dataset.
func (r *Reloadable) Ping(ctx context.Context) error {
	_, err := with(r, func(s *Store) (struct{}, error) {
		return struct{}{}, s.Ping(ctx)
	})
	return err
}

// ListInstitutions implements core.InstitutionCatalog.
func (r *Reloadable) ListInstitutions(ctx context.Context, typ core.InstitutionType) ([]core.Institution, error) {
	return with(r, func(s *Store) ([]core.Institution, error) {
		return s.ListInstitutions(ctx, typ)
	})
}

// GetInstitution implements core.InstitutionCatalog.
func (r *Reloadable) GetInstitution(ctx context.Context, name string) (*core.Institution, error) {
	return with(r, func(s *Store) (*core.Institution, error) {
		return s.GetInstitution(ctx, name)
	})
}

// ListCourses implements core.CourseCatalog.
func (r *Reloadable) ListCourses(ctx context.Context) ([]core.Course, error) {
	return with(r, func(s *Store) ([]core.Course, error) {
		return s.ListCourses(ctx)
	})
}

// ArticulationsFor implements core.ArticulationTable.
func (r *Reloadable) ArticulationsFor(ctx context.Context, university string) ([]core.ArticulationRow, error) {
	return with(r, func(s *Store) ([]core.ArticulationRow, error) {
		return s.ArticulationsFor(ctx, university)
	})
}

// AllArticulations implements core.ArticulationTable.
func (r *Reloadable) AllArticulations(ctx context.Context) ([]core.ArticulationRow, error) {
	return with(r, func(s *Store) ([]core.ArticulationRow, error) {
		return s.AllArticulations(ctx)
	})
}
