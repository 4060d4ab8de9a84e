package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

func newTestSQLRepo(t *testing.T) (StateRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo, err := NewSQLStateRepository(newSQLiteDB(db, logger.Nop()), logger.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})
	return repo, mock
}

func TestNewSQLStateRepository_NilDB(t *testing.T) {
	_, err := NewSQLStateRepository(nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestSQLStateRepository_Load(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	mock.ExpectQuery("SELECT id, username, secret_hash, role, phone FROM accounts ORDER BY position").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "secret_hash", "role", "phone"}).
			AddRow("u1", "admin", "hash-1", "ADMIN", "5491111111111"))

	mock.ExpectQuery("SELECT id, visible_code, color, address, status, checkout_log, deletion_log, history FROM keys ORDER BY position").
		WillReturnRows(sqlmock.NewRows([]string{"id", "visible_code", "color", "address", "status", "checkout_log", "deletion_log", "history"}).
			AddRow("k1", "A1", "GREEN", "Misiones 576", "AVAILABLE", nil, nil, "[]").
			AddRow("k2", "A2", "RED", "Salta 81", "CHECKED_OUT",
				`{"personName":"Juan","personPhone":"54911","date":"2026-03-02T10:00:00Z"}`, nil,
				`[{"personName":"Juan","personPhone":"54911","date":"2026-03-02T10:00:00Z"}]`))

	mock.ExpectQuery("SELECT id, date, type, key_id, key_visible_code, actor, phone, reason, key_address FROM audit_log ORDER BY seq DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "type", "key_id", "key_visible_code", "actor", "phone", "reason", "key_address"}).
			AddRow("e2", testDate, "KEY_CHECKED_OUT", "k2", "A2", "Juan", "54911", "", "Salta 81"))

	snapshot, err := repo.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.Accounts, 1)
	assert.Equal(t, models.RoleAdmin, snapshot.Accounts[0].Role)

	require.Len(t, snapshot.Keys, 2)
	assert.Nil(t, snapshot.Keys[0].CheckoutLog)
	assert.Equal(t, []models.CheckoutRecord{}, snapshot.Keys[0].History)
	require.NotNil(t, snapshot.Keys[1].CheckoutLog)
	assert.Equal(t, "Juan", snapshot.Keys[1].CheckoutLog.PersonName)
	assert.Len(t, snapshot.Keys[1].History, 1)

	require.Len(t, snapshot.AuditLog, 1)
	assert.Equal(t, models.EventKeyCheckedOut, snapshot.AuditLog[0].Type)
	assert.Equal(t, "Salta 81", snapshot.AuditLog[0].Details.KeyAddress)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStateRepository_LoadCorruptedKey(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	mock.ExpectQuery("FROM accounts").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "secret_hash", "role", "phone"}))
	mock.ExpectQuery("FROM keys").
		WillReturnRows(sqlmock.NewRows([]string{"id", "visible_code", "color", "address", "status", "checkout_log", "deletion_log", "history"}).
			AddRow("k1", "A1", "GREEN", "Misiones 576", "AVAILABLE", nil, nil, "{broken"))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptedRecord)
}

func TestSQLStateRepository_Save_AppendsOnlyNewEntries(t *testing.T) {
	repo, mock := newTestSQLRepo(t)
	snapshot := testSnapshot()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM accounts").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(
			"u1", 0, "admin", "hash-1", "ADMIN", "5491111111111",
			"u2", 1, "user", "hash-2", "USER", "",
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM keys").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO keys").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT seq, id FROM audit_log ORDER BY seq DESC LIMIT 1")).
		WillReturnRows(sqlmock.NewRows([]string{"seq", "id"}).AddRow(1, "e1"))
	// only the newest entry has not been stored yet
	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs(2, "e2", testDate, "KEY_CHECKED_OUT", "k2", "A2", "Juan", "54911", "", "Salta 81").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), snapshot))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStateRepository_Save_NothingToAppend(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM accounts").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM keys").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM audit_log").WillReturnRows(sqlmock.NewRows([]string{"seq", "id"}))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), models.Snapshot{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStateRepository_Save_RejectsRewrittenAuditLog(t *testing.T) {
	tests := []struct {
		name      string
		storedSeq int
		storedID  string
	}{
		{name: "snapshot shorter than stored log", storedSeq: 3, storedID: "e3"},
		{name: "entry at stored position differs", storedSeq: 2, storedID: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSQLRepo(t)

			mock.ExpectBegin()
			mock.ExpectExec("DELETE FROM accounts").WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectExec("INSERT INTO accounts").WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectExec("DELETE FROM keys").WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectExec("INSERT INTO keys").WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectQuery("FROM audit_log").
				WillReturnRows(sqlmock.NewRows([]string{"seq", "id"}).AddRow(tt.storedSeq, tt.storedID))
			// no DELETE or INSERT on audit_log
			mock.ExpectRollback()

			err := repo.Save(context.Background(), testSnapshot())

			assert.ErrorIs(t, err, ErrCorruptedRecord)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLStateRepository_Save_RollsBackOnError(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM accounts").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO accounts").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), testSnapshot())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStateRepository_Save_BeginFails(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := repo.Save(context.Background(), testSnapshot())
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "not a postgres error", err: errors.New("plain"), want: NonRetryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "wrapped lock timeout", err: fmt.Errorf("save: %w", &pgconn.PgError{Code: pgerrcode.LockNotAvailable}), want: Retryable},
		{name: "duplicate active code", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "undefined table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
