package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	accountsTable = "accounts"
	keysTable     = "keys"
	auditLogTable = "audit_log"

	// rows per INSERT statement when appending audit entries
	auditLogInsertChunk = 100
)

var (
	accountColumns = []string{"id", "position", "username", "secret_hash", "role", "phone"}

	keyColumns = []string{"id", "position", "visible_code", "color", "address", "status", "checkout_log", "deletion_log", "history"}

	auditLogColumns = []string{"seq", "id", "date", "type", "key_id", "key_visible_code", "actor", "phone", "reason", "key_address"}
)

func (db *DB) selectAccounts() sq.SelectBuilder {
	return db.builder().
		Select("id", "username", "secret_hash", "role", "phone").
		From(accountsTable).
		OrderBy("position")
}

func (db *DB) selectKeys() sq.SelectBuilder {
	return db.builder().
		Select("id", "visible_code", "color", "address", "status", "checkout_log", "deletion_log", "history").
		From(keysTable).
		OrderBy("position")
}

func (db *DB) selectAuditLog() sq.SelectBuilder {
	return db.builder().
		Select(auditLogColumns[1:]...).
		From(auditLogTable).
		OrderBy("seq DESC")
}

func (db *DB) selectLastAuditEntry() sq.SelectBuilder {
	return db.builder().
		Select("seq", "id").
		From(auditLogTable).
		OrderBy("seq DESC").
		Limit(1)
}

func (db *DB) deleteAll(table string) sq.DeleteBuilder {
	return db.builder().Delete(table)
}

func (db *DB) insertInto(table string, columns []string) sq.InsertBuilder {
	return db.builder().
		Insert(table).
		Columns(columns...)
}
