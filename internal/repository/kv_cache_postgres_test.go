package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sariops/sariops/internal/repository/testutil"
)

func TestKVCacheRepository_Get(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewKVCacheRepository(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"key", "value", "cached_at"}).
		AddRow("psgc:regions", []byte(`[{"code":"130000000"}]`), now)

	mock.ExpectQuery(`SELECT key, value, cached_at FROM kv_cache WHERE key = \$1`).
		WithArgs("psgc:regions").
		WillReturnRows(rows)

	entry, err := repo.Get(context.Background(), "psgc:regions")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "psgc:regions", entry.Key)
	assert.JSONEq(t, `[{"code":"130000000"}]`, string(entry.Value))

	// A miss is not an error.
	mock.ExpectQuery(`SELECT key, value, cached_at FROM kv_cache WHERE key = \$1`).
		WithArgs("psgc:unknown").
		WillReturnError(sql.ErrNoRows)

	entry, err = repo.Get(context.Background(), "psgc:unknown")
	require.NoError(t, err)
	assert.Nil(t, entry)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVCacheRepository_Set(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewKVCacheRepository(db)

	mock.ExpectExec(`INSERT INTO kv_cache .* ON CONFLICT \(key\)`).
		WithArgs("psgc:regions", []byte(`[]`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Set(context.Background(), "psgc:regions", []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVCacheRepository_DeleteExpired(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewKVCacheRepository(db)
	boundary := time.Now().UTC().Add(-7 * 24 * time.Hour)

	mock.ExpectExec(`DELETE FROM kv_cache WHERE cached_at < \$1`).
		WithArgs(boundary).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteExpired(context.Background(), boundary))
	assert.NoError(t, mock.ExpectationsWereMet())
}
