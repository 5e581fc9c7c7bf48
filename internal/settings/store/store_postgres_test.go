package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_GetValues(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	keys := []string{"opt_cities", "opt_degrees"}
	mock.ExpectQuery("SELECT key, value FROM app_settings").
		WithArgs(pq.Array(keys)).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("opt_cities", `["Erbil"]`))

	values, err := NewPostgres(db).GetValues(context.Background(), keys)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"opt_cities": `["Erbil"]`}, values)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SetValues(t *testing.T) {
	t.Run("upserts in one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO app_settings").WithArgs("opt_cities", `["Erbil"]`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO app_settings").WithArgs("opt_degrees", `[]`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = NewPostgres(db).SetValues(context.Background(), map[string]string{
			"opt_degrees": `[]`,
			"opt_cities":  `["Erbil"]`,
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO app_settings").WillReturnError(errors.New("constraint"))
		mock.ExpectRollback()

		err = NewPostgres(db).SetValues(context.Background(), map[string]string{"opt_cities": `[]`})
		assert.ErrorContains(t, err, "save setting opt_cities")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
