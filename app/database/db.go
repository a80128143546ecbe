package database

import (
	"database/sql"

	"github.com/lib/pq"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx. Storage
// functions take it so check-then-write paths can run inside one transaction.
type DBTX interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation. Unique indexes are the storage-level second line of defense
// behind the application-level conflict validation.
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}

// IsExclusionViolation reports whether err is a PostgreSQL exclusion
// constraint violation, raised by the gist overlap constraint on
// schedule_templates when two slots would share a classroom.
func IsExclusionViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23P01"
	}
	return false
}
