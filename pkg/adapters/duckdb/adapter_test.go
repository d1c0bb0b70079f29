package duckdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/transfer/pkg/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_Connect(t *testing.T) {
	tests := []struct {
		name      string
		setupPath func(t *testing.T) string
	}{
		{
			name: "in-memory",
			setupPath: func(_ *testing.T) string {
				return ":memory:"
			},
		},
		{
			name: "file-based",
			setupPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "assist.duckdb")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			adp := New(nil)

			require.NoError(t, adp.Connect(ctx, adapter.Config{Path: tt.setupPath(t), ReadWrite: true}))
			defer func() { _ = adp.Close() }()

			var one int
			require.NoError(t, adp.DB().QueryRowContext(ctx, "SELECT 1").Scan(&one))
			assert.Equal(t, 1, one)
		})
	}
}

func TestAdapter_ReadOnlyFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "assist.duckdb")

	rw := New(nil)
	require.NoError(t, rw.Connect(ctx, adapter.Config{Path: path, ReadWrite: true}))
	_, err := rw.DB().ExecContext(ctx, "CREATE TABLE courses (identifier VARCHAR PRIMARY KEY)")
	require.NoError(t, err)
	_, err = rw.DB().ExecContext(ctx, "INSERT INTO courses VALUES ('ENGL101')")
	require.NoError(t, err)
	require.NoError(t, rw.Close())

	ro := New(nil)
	require.NoError(t, ro.Connect(ctx, adapter.Config{Path: path}))
	defer func() { _ = ro.Close() }()

	var got string
	require.NoError(t, ro.DB().QueryRowContext(ctx, "SELECT identifier FROM courses WHERE identifier = ?", "ENGL101").Scan(&got))
	assert.Equal(t, "ENGL101", got)

	_, err = ro.DB().ExecContext(ctx, "INSERT INTO courses VALUES ('MATH200')")
	assert.Error(t, err)
}

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  adapter.Config
		want string
	}{
		{"memory", adapter.Config{Path: ":memory:"}, ""},
		{"empty", adapter.Config{}, ""},
		{"read-only file", adapter.Config{Path: "a.duckdb"}, "a.duckdb?access_mode=READ_ONLY"},
		{"read-write file", adapter.Config{Path: "a.duckdb", ReadWrite: true}, "a.duckdb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildDSN(tt.cfg))
		})
	}
}
