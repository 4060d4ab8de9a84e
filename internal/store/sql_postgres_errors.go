package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells a failed Save apart: a transient failure is
// worth repeating on the next state change, a permanent one is not.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// retryablePgCodes are single codes outside the retryable classes.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.CannotConnectNow:   {},
	pgerrcode.AdminShutdown:      {},
	pgerrcode.CrashShutdown:      {},
	pgerrcode.LockNotAvailable:   {},
	pgerrcode.TooManyConnections: {},
}

// PostgresErrorClassifier classifies pgx errors by SQLSTATE.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify treats connection exceptions (class 08), transaction rollbacks
// such as serialization failures and deadlocks (class 40) and a few server
// availability codes as retryable. Everything else, constraint violations on
// the keys table included, is not.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code):
		return Retryable
	}
	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}

	return NonRetryable
}
