package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const createTable = `CREATE TABLE IF NOT EXISTS web_storage (
	origin     TEXT        NOT NULL,
	key        TEXT        NOT NULL,
	value      TEXT        NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (origin, key)
)`

// StorageRepo keeps per-origin web storage rows in Postgres.
type StorageRepo struct {
	db     *sql.DB
	origin string
}

func NewStorageRepo(db *sql.DB, origin string) *StorageRepo {
	return &StorageRepo{db: db, origin: origin}
}

func (r *StorageRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("create web_storage: %w", err)
	}
	return nil
}

func (r *StorageRepo) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM web_storage WHERE origin = $1 AND key = $2`,
		r.origin, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *StorageRepo) SetItem(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO web_storage (origin, key, value) VALUES ($1, $2, $3)
		 ON CONFLICT (origin, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		r.origin, key, value,
	)
	return err
}

func (r *StorageRepo) RemoveItem(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM web_storage WHERE origin = $1 AND key = $2`,
		r.origin, key,
	)
	return err
}
