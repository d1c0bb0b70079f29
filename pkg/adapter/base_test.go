package adapter

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseSQLAdapter_Close(t *testing.T) {
	tests := []struct {
		name      string
		setupDB   bool
		expectErr bool
	}{
		{
			name:      "close with nil DB",
			setupDB:   false,
			expectErr: false,
		},
		{
			name:      "close with open DB",
			setupDB:   true,
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := NewBase(nil)

			if tt.setupDB {
				db, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectClose()
				base.Conn = db
			}

			err := base.Close()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Nil(t, base.DB())
		})
	}
}

func TestBaseSQLAdapter_Open(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		base := NewBase(nil)
		err := base.Open(context.Background(), "no-such-driver", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open no-such-driver connection")
		assert.Nil(t, base.DB())
	})

	t.Run("ping failure closes pool", func(t *testing.T) {
		db, mock, err := sqlmock.NewWithDSN("base_open_ping_fail", sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		mock.ExpectPing().WillReturnError(assert.AnError)

		base := NewBase(nil)
		err = base.Open(context.Background(), "sqlmock", "base_open_ping_fail")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to ping sqlmock")
		assert.Nil(t, base.DB())
	})

	t.Run("success keeps pool", func(t *testing.T) {
		db, mock, err := sqlmock.NewWithDSN("base_open_ok", sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		mock.ExpectPing()

		base := NewBase(nil)
		require.NoError(t, base.Open(context.Background(), "sqlmock", "base_open_ok"))
		require.NotNil(t, base.DB())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlaceholders(t *testing.T) {
	base := NewBase(nil)
	assert.Equal(t, "?", base.Placeholder(1))
	assert.Equal(t, "?", base.Placeholder(7))
	assert.Equal(t, "$1", DollarPlaceholder(1))
	assert.Equal(t, "$12", DollarPlaceholder(12))
}
