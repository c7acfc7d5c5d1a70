package database

import (
	"context"
	"database/sql"
)

// DB is the subset of a Postgres pool the snapshot backend and the
// migration runner need.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	SQLDB() *sql.DB
}

type Row interface {
	Scan(dest ...any) error
}
