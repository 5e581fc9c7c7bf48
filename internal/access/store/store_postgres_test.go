package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgres(db), mock
}

func TestPostgresStore_MissingPackages(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT COALESCE\\(array_agg\\(section\\)").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"sections"}).AddRow("{basic}"))
	mock.ExpectQuery("SELECT code FROM profile_packages").
		WithArgs(pq.Array([]string{"basic"})).
		WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("work").AddRow("family"))

	missing, err := store.MissingPackages(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "family"}, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_FindSurvey(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery("SELECT title, is_active, allow_multiple FROM surveys").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"title", "is_active", "allow_multiple"}).AddRow("Habits", true, false))

		survey, err := store.FindSurvey(context.Background(), 7)
		require.NoError(t, err)
		assert.True(t, survey.IsActive)
		assert.False(t, survey.AllowMultiple)
		assert.Equal(t, "Habits", survey.Title)
	})

	t.Run("missing", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery("SELECT title").WillReturnRows(sqlmock.NewRows([]string{"title", "is_active", "allow_multiple"}))

		survey, err := store.FindSurvey(context.Background(), 7)
		require.NoError(t, err)
		assert.Nil(t, survey)
	})
}

func TestPostgresStore_HasResponded(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(7), int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := store.HasResponded(context.Background(), 42, 7)
	require.NoError(t, err)
	assert.True(t, ok)
}
