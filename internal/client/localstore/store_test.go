package localstore

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSetItemAndGetItem(t *testing.T) {
	s := New(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.SetItem(ctx, "user", []byte(`{"token":"abc"}`)))

	v, err := s.GetItem(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, `{"token":"abc"}`, string(v))
}

func TestGetItem_AbsentReturnsNilNil(t *testing.T) {
	s := New(openTestDB(t))

	v, err := s.GetItem(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSetItem_Overwrites(t *testing.T) {
	s := New(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.SetItem(ctx, "k", []byte("old")))
	require.NoError(t, s.SetItem(ctx, "k", []byte("new")))

	v, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestRemoveItem_IsIdempotent(t *testing.T) {
	s := New(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.SetItem(ctx, "x", []byte{1}))
	require.NoError(t, s.RemoveItem(ctx, "x"))

	v, err := s.GetItem(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.RemoveItem(ctx, "x"))
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.db")
	ctx := context.Background()

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, New(db).SetItem(ctx, "user", []byte("persisted")))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	v, err := New(db).GetItem(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(v))
}

func TestOpen_CreatesStorageDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "local.db")

	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, New(db).SetItem(context.Background(), "k", []byte("v")))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(context.Background(), db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='local_storage'`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestStore_ErrorsAreWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("disk I/O error")
	mock.ExpectQuery(`SELECT value FROM local_storage`).WithArgs("k").WillReturnError(boom)
	mock.ExpectExec(`INSERT INTO local_storage`).WithArgs("k", []byte("v")).WillReturnError(boom)
	mock.ExpectExec(`DELETE FROM local_storage WHERE key`).WithArgs("k").WillReturnError(boom)

	s := New(db)
	ctx := context.Background()

	_, err = s.GetItem(ctx, "k")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to get item[k]")

	err = s.SetItem(ctx, "k", []byte("v"))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to set item[k]")

	err = s.RemoveItem(ctx, "k")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to remove item[k]")

	require.NoError(t, mock.ExpectationsWereMet())
}
