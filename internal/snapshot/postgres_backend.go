package snapshot

import (
	"context"
	"errors"

	"skill-manager/internal/database"

	"github.com/jackc/pgx/v5"
)

// PostgresBackend keeps each document as one row of the snapshots table.
// The document is stored as text so its key order survives.
type PostgresBackend struct {
	db database.DB
}

func NewPostgresBackend(db database.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (b *PostgresBackend) Read(ctx context.Context, name string) ([]byte, error) {
	var doc string
	err := b.db.QueryRow(ctx, `SELECT document FROM snapshots WHERE name = $1`, name).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return []byte(doc), nil
}

func (b *PostgresBackend) Write(ctx context.Context, name string, data []byte) error {
	_, err := b.db.Exec(ctx, `
INSERT INTO snapshots (name, document, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		name, string(data))
	return err
}
