package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	audit "surveygate/pkg/platform/audit"
	txcontext "surveygate/pkg/platform/tx"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO audit_events").
		WithArgs(sqlmock.AnyArg(), "compliance", ts,
			nil, int64(7),
			"", "survey_rules_updated", "", "", "req-1", "admin").
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := New(db)
	err = store.Append(context.Background(), audit.Event{
		Timestamp: ts,
		SurveyID:  7,
		Action:    string(audit.EventSurveyRulesUpdated),
		RequestID: "req-1",
		ActorID:   "admin",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_AppendJoinsTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO audit_events").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := txcontext.WithTx(context.Background(), tx)

	require.NoError(t, New(db).Append(ctx, audit.Event{Action: string(audit.EventSurveyAccessDenied)}))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_AppendError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO audit_events").WillReturnError(errors.New("connection reset"))

	err = New(db).Append(context.Background(), audit.Event{Action: "x"})
	assert.ErrorContains(t, err, "insert audit event")
}

func TestStore_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"category", "timestamp", "user_id", "survey_id", "subject", "action",
		"decision", "reason", "request_id", "actor_id",
	}).AddRow("operations", ts, int64(12), int64(3), "", "survey_access_denied", "denied", "not_eligible", "req-9", "")

	mock.ExpectQuery("SELECT category, timestamp").WithArgs(int64(12)).WillReturnRows(rows)

	events, err := New(db).ListByUser(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.CategoryOperations, events[0].Category)
	assert.EqualValues(t, 12, events[0].UserID)
	assert.EqualValues(t, 3, events[0].SurveyID)
	assert.Equal(t, "not_eligible", events[0].Reason)
	assert.NoError(t, mock.ExpectationsWereMet())
}
