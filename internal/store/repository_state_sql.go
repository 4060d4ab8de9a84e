package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

// sqlStateRepository keeps the snapshot in the accounts, keys and audit_log
// tables. Accounts and keys are rewritten on every Save, the audit log is
// append-only and only the entries the database has not seen are inserted.
type sqlStateRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLStateRepository returns a [StateRepository] over an already migrated
// database connection.
func NewSQLStateRepository(db *DB, logger *logger.Logger) (StateRepository, error) {
	if db == nil || db.DB == nil {
		return nil, ErrNilDB
	}
	logger.Debug().Str("dialect", db.dialect).Msg("creating sql state repository")
	return &sqlStateRepository{db: db, logger: logger}, nil
}

func (r *sqlStateRepository) Load(ctx context.Context) (models.Snapshot, error) {
	var (
		snapshot models.Snapshot
		err      error
	)

	if snapshot.Accounts, err = r.loadAccounts(ctx); err != nil {
		return models.Snapshot{}, err
	}
	if snapshot.Keys, err = r.loadKeys(ctx); err != nil {
		return models.Snapshot{}, err
	}
	if snapshot.AuditLog, err = r.loadAuditLog(ctx); err != nil {
		return models.Snapshot{}, err
	}

	return snapshot, nil
}

func (r *sqlStateRepository) loadAccounts(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectAccounts().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlStateRepository.loadAccounts").Msg("error selecting accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var accounts []models.User
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.ID, &user.Username, &user.SecretHash, &user.Role, &user.Phone); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

func (r *sqlStateRepository) loadKeys(ctx context.Context) ([]models.Key, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectKeys().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlStateRepository.loadKeys").Msg("error selecting keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var keys []models.Key
	for rows.Next() {
		var (
			key                   models.Key
			checkoutLog, deletion sql.NullString
			history               string
		)
		if err = rows.Scan(&key.ID, &key.VisibleCode, &key.Color, &key.Address, &key.Status, &checkoutLog, &deletion, &history); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if checkoutLog.Valid && checkoutLog.String != "" {
			key.CheckoutLog = new(models.CheckoutRecord)
			if err = json.Unmarshal([]byte(checkoutLog.String), key.CheckoutLog); err != nil {
				return nil, fmt.Errorf("%w: checkout log of key %s: %w", ErrCorruptedRecord, key.ID, err)
			}
		}
		if deletion.Valid && deletion.String != "" {
			key.DeletionLog = new(models.DeletionRecord)
			if err = json.Unmarshal([]byte(deletion.String), key.DeletionLog); err != nil {
				return nil, fmt.Errorf("%w: deletion log of key %s: %w", ErrCorruptedRecord, key.ID, err)
			}
		}
		if history != "" {
			if err = json.Unmarshal([]byte(history), &key.History); err != nil {
				return nil, fmt.Errorf("%w: history of key %s: %w", ErrCorruptedRecord, key.ID, err)
			}
		}
		if key.History == nil {
			key.History = []models.CheckoutRecord{}
		}

		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}

func (r *sqlStateRepository) loadAuditLog(ctx context.Context) ([]models.LogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectAuditLog().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlStateRepository.loadAuditLog").Msg("error selecting audit log")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.LogEntry
	for rows.Next() {
		var entry models.LogEntry
		if err = rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.Type,
			&entry.KeyID,
			&entry.KeyVisibleCode,
			&entry.Details.Actor,
			&entry.Details.Phone,
			&entry.Details.Reason,
			&entry.Details.KeyAddress,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entry.Date = entry.Date.UTC()
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *sqlStateRepository) Save(ctx context.Context, snapshot models.Snapshot) (err error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sqlStateRepository.Save").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Err(rbErr).Str("func", "*sqlStateRepository.Save").Msg("error rolling back transaction")
			}
			if r.db.retryable(err) {
				log.Warn().Str("func", "*sqlStateRepository.Save").Msg("transient database error, the next save will retry")
			}
		}
	}()

	if err = r.replaceAccounts(ctx, tx, snapshot.Accounts); err != nil {
		return err
	}
	if err = r.replaceKeys(ctx, tx, snapshot.Keys); err != nil {
		return err
	}
	if err = r.appendAuditLog(ctx, tx, snapshot.AuditLog); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sqlStateRepository.Save").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *sqlStateRepository) replaceAccounts(ctx context.Context, tx *sql.Tx, accounts []models.User) error {
	if err := r.exec(ctx, tx, r.db.deleteAll(accountsTable)); err != nil {
		return err
	}
	if len(accounts) == 0 {
		return nil
	}

	insert := r.db.insertInto(accountsTable, accountColumns)
	for i, user := range accounts {
		insert = insert.Values(user.ID, i, user.Username, user.SecretHash, string(user.Role), user.Phone)
	}

	return r.exec(ctx, tx, insert)
}

func (r *sqlStateRepository) replaceKeys(ctx context.Context, tx *sql.Tx, keys []models.Key) error {
	if err := r.exec(ctx, tx, r.db.deleteAll(keysTable)); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	insert := r.db.insertInto(keysTable, keyColumns)
	for i, key := range keys {
		checkoutLog, err := nullableJSON(key.CheckoutLog != nil, key.CheckoutLog)
		if err != nil {
			return err
		}
		deletionLog, err := nullableJSON(key.DeletionLog != nil, key.DeletionLog)
		if err != nil {
			return err
		}
		history, err := json.Marshal(nonNil(key.History))
		if err != nil {
			return fmt.Errorf("encode history of key %s: %w", key.ID, err)
		}

		insert = insert.Values(
			key.ID,
			i,
			key.VisibleCode,
			string(key.Color),
			key.Address,
			string(key.Status),
			checkoutLog,
			deletionLog,
			string(history),
		)
	}

	return r.exec(ctx, tx, insert)
}

// appendAuditLog inserts the entries of the newest-first log the database
// does not hold yet. The sequence number of an entry is its 1-based position
// in chronological order. Stored rows are never removed: a snapshot shorter
// than the stored log, or one whose entry at the last stored position has a
// different id, is rejected with [ErrCorruptedRecord].
func (r *sqlStateRepository) appendAuditLog(ctx context.Context, tx *sql.Tx, entries []models.LogEntry) error {
	query, args, err := r.db.selectLastAuditEntry().ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		last   int
		lastID string
	)
	err = tx.QueryRowContext(ctx, query, args...).Scan(&last, &lastID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	total := len(entries)
	if last > total {
		return fmt.Errorf("%w: audit log holds %d entries, snapshot has %d", ErrCorruptedRecord, last, total)
	}
	if last > 0 && entries[total-last].ID != lastID {
		return fmt.Errorf("%w: audit entry %d is %s, snapshot has %s", ErrCorruptedRecord, last, lastID, entries[total-last].ID)
	}

	// entries[total-seq] has sequence number seq
	for from := last + 1; from <= total; from += auditLogInsertChunk {
		to := min(from+auditLogInsertChunk-1, total)

		insert := r.db.insertInto(auditLogTable, auditLogColumns)
		for seq := from; seq <= to; seq++ {
			entry := entries[total-seq]
			insert = insert.Values(
				seq,
				entry.ID,
				entry.Date.UTC(),
				string(entry.Type),
				entry.KeyID,
				entry.KeyVisibleCode,
				entry.Details.Actor,
				entry.Details.Phone,
				entry.Details.Reason,
				entry.Details.KeyAddress,
			)
		}
		if err = r.exec(ctx, tx, insert); err != nil {
			return err
		}
	}

	return nil
}

func (r *sqlStateRepository) exec(ctx context.Context, tx *sql.Tx, statement sq.Sqlizer) error {
	query, args, err := statement.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlStateRepository.exec").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sqlStateRepository) Close() error {
	return r.db.Close()
}

func nullableJSON(present bool, value any) (sql.NullString, error) {
	if !present {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode column: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
