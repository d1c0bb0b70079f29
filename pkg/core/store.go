package core

import "context"

// InstitutionCatalog is the read-only store of institutions.
type InstitutionCatalog interface {
	// ListInstitutions returns institutions of the given type, or all when typ is empty.
	ListInstitutions(ctx context.Context, typ InstitutionType) ([]Institution, error)

	// GetInstitution returns the named institution or an error wrapping ErrNotFound.
	GetInstitution(ctx context.Context, name string) (*Institution, error)
}

// CourseCatalog is the read-only store of course identifiers.
type CourseCatalog interface {
	ListCourses(ctx context.Context) ([]Course, error)
}

// ArticulationTable is the read-only store of articulation rows.
type ArticulationTable interface {
	// ArticulationsFor returns every row whose receiving institution is university,
	// in storage order.
	ArticulationsFor(ctx context.Context, university string) ([]ArticulationRow, error)

	// AllArticulations returns every row, ordered by receiving institution.
	AllArticulations(ctx context.Context) ([]ArticulationRow, error)
}

// Dataset is the full read-only reference dataset.
type Dataset interface {
	InstitutionCatalog
	CourseCatalog
	ArticulationTable

	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}
