// Package datasettest builds seeded in-memory datasets for tests.
package datasettest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/leapstack-labs/transfer/internal/testutil"
	"github.com/leapstack-labs/transfer/pkg/adapter"
	"github.com/leapstack-labs/transfer/pkg/adapters/sqlite"
	"github.com/leapstack-labs/transfer/pkg/core"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Sample institution and course names used by SampleFixture.
const (
	StateUniversity = "State University"
	CoastUniversity = "Coast University"
	EmptyUniversity = "Empty University"
	ValleyCollege   = "Valley College"
	MountainCollege = "Mountain College"
	HarborCollege   = "Harbor College"
)

func float(f float64) *float64 { return &f }

// SampleFixture returns a small dataset covering the lookup scenarios:
// single-course rows, a two-course AND group, a university without rows and
// colleges that appear out of alphabetical order.
func SampleFixture() *dataset.Fixture {
	return &dataset.Fixture{
		Institutions: []core.Institution{
			{Name: StateUniversity, Type: core.InstitutionTypeUniversity, City: "Davis", State: "CA"},
			{Name: CoastUniversity, Type: core.InstitutionTypeUniversity, Location: "Long Beach, CA"},
			{Name: EmptyUniversity, Type: core.InstitutionTypeUniversity},
			{
				Name: ValleyCollege, Type: core.InstitutionTypeCommunityCollege,
				Address: "5800 Fulton Ave", City: "Van Nuys", State: "CA", ZipCode: "91401",
				Latitude: float(34.1761), Longitude: float(-118.4419),
			},
			{Name: MountainCollege, Type: core.InstitutionTypeCommunityCollege, City: "Walnut", State: "CA"},
			{Name: HarborCollege, Type: core.InstitutionTypeCommunityCollege, City: "Wilmington", State: "CA"},
		},
		Courses: []string{"HIST110"},
		Articulations: []core.ArticulationRow{
			{ReceivingInstitution: StateUniversity, ReceivingCourse: "ENGL 1A", SendingInstitution: ValleyCollege, SendingCourses: []string{"ENGL101"}},
			{ReceivingInstitution: StateUniversity, ReceivingCourse: "CALC 3", SendingInstitution: MountainCollege, SendingCourses: []string{"MATH200", "MATH201"}},
			{ReceivingInstitution: StateUniversity, ReceivingCourse: "MATH 21A", SendingInstitution: ValleyCollege, SendingCourses: []string{"MATH200"}},
			{ReceivingInstitution: StateUniversity, ReceivingCourse: "ENGL 1A", SendingInstitution: MountainCollege, SendingCourses: []string{"ENGL101"}},
			{ReceivingInstitution: CoastUniversity, ReceivingCourse: "ENGL 100", SendingInstitution: HarborCollege, SendingCourses: []string{"ENGL101"}},
		},
	}
}

// NewStore seeds fx into a private in-memory SQLite dataset. The store is
// closed when the test ends.
func NewStore(t testing.TB, fx *dataset.Fixture) *dataset.Store {
	t.Helper()
	ctx := context.Background()
	logger := testutil.NewTestLogger(t)

	adp := sqlite.New(logger)
	require.NoError(t, adp.Connect(ctx, adapter.Config{Type: "sqlite", Path: sqlite.MemoryPath, ReadWrite: true}))
	t.Cleanup(func() { _ = adp.Close() })

	_, err := dataset.Seed(ctx, adp, fx, dataset.SeedOptions{}, logger)
	require.NoError(t, err)

	return dataset.NewStore(adp, logger)
}

// WriteFile seeds fx into a SQLite file under dir and returns its path.
func WriteFile(t testing.TB, dir string, fx *dataset.Fixture) string {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(dir, "assist.db")
	adp := sqlite.New(nil)
	require.NoError(t, adp.Connect(ctx, adapter.Config{Type: "sqlite", Path: path, ReadWrite: true}))
	defer func() { _ = adp.Close() }()

	_, err := dataset.Seed(ctx, adp, fx, dataset.SeedOptions{Replace: true}, nil)
	require.NoError(t, err)
	return path
}

// WriteFixture writes fx as YAML under dir and returns its path.
func WriteFixture(t testing.TB, dir string, fx *dataset.Fixture) string {
	t.Helper()
	data, err := yaml.Marshal(fx)
	require.NoError(t, err)
	path := filepath.Join(dir, "dataset.yaml")
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}
