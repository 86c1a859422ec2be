package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/finkeeper/internal/dbx"
)

// SQLiteRepository implements Repository on top of a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, time.Time, error) {
	var payload []byte
	var fetchedAt time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM snapshots WHERE key = ?`, key).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to get snapshot[%s]: %w", key, err)
	}
	return payload, fetchedAt, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, key string, payload []byte) error {
	return put(ctx, r.db, key, payload)
}

// PutAll writes every snapshot inside a single transaction so a partially
// updated cache can never be observed.
func (r *SQLiteRepository) PutAll(ctx context.Context, snapshots map[string][]byte) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for key, payload := range snapshots {
			if err := put(ctx, tx, key, payload); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM snapshots`)
	if err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	return nil
}

func put(ctx context.Context, q dbx.DBTX, key string, payload []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO snapshots (key, payload, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at
	`, key, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to put snapshot[%s]: %w", key, err)
	}
	return nil
}
