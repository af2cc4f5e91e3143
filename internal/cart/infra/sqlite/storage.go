package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Storage persists per-origin web storage in a SQLite file.
type Storage struct {
	db     *sql.DB
	origin string
}

func Open(path, origin string) (*Storage, error) {
	if path == "" {
		path = "cart-widget.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer; avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS web_storage (
		origin TEXT NOT NULL,
		key    TEXT NOT NULL,
		value  TEXT NOT NULL,
		PRIMARY KEY (origin, key)
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create web_storage: %w", err)
	}
	return &Storage{db: db, origin: origin}, nil
}

func (s *Storage) Close() error { return s.db.Close() }

func (s *Storage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM web_storage WHERE origin = ? AND key = ?`, s.origin, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO web_storage(origin, key, value) VALUES(?, ?, ?)
		 ON CONFLICT(origin, key) DO UPDATE SET value = excluded.value`,
		s.origin, key, value,
	)
	return err
}

func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM web_storage WHERE origin = ? AND key = ?`, s.origin, key,
	)
	return err
}
