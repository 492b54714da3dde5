package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS saves (
	key TEXT PRIMARY KEY,
	timestamp INTEGER NOT NULL,
	data BLOB NOT NULL
);
`

// SQLiteRepository stores save data in a single-table sqlite database.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %v", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	q := `SELECT data FROM saves WHERE key = ?;`
	var data []byte
	if err := r.db.QueryRowContext(ctx, q, key).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query save: %v", err)
	}
	return data, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	q := `
	INSERT OR REPLACE INTO saves (key, timestamp, data)
	VALUES (?, ?, ?);
	`
	if _, err := r.db.ExecContext(ctx, q, key, time.Now().UnixMilli(), data); err != nil {
		return fmt.Errorf("failed to insert save: %v", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	q := `DELETE FROM saves WHERE key = ?;`
	if _, err := r.db.ExecContext(ctx, q, key); err != nil {
		return fmt.Errorf("failed to delete save: %v", err)
	}
	return nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}
