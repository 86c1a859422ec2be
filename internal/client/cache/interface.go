// Package cache persists snapshots of last-fetched list data so the CLI
// can show something useful while the backend is unreachable. Snapshots
// are opaque JSON payloads keyed by resource name; they are advisory data,
// never a source of truth.
package cache

import (
	"context"
	"time"
)

// Snapshot keys used by the CLI.
const (
	KeyExpenses   = "expenses"
	KeyIncome     = "income"
	KeyCategories = "categories"
	KeyBudgets    = "budgets"
)

type Repository interface {
	// Get returns the payload stored under key and the time it was
	// fetched. A missing key yields a nil payload and no error.
	Get(ctx context.Context, key string) ([]byte, time.Time, error)

	// Put stores or replaces the payload under key.
	Put(ctx context.Context, key string, payload []byte) error

	// PutAll stores every entry in one transaction: all or nothing.
	PutAll(ctx context.Context, snapshots map[string][]byte) error

	// Clear wipes all snapshots, e.g. on logout.
	Clear(ctx context.Context) error
}
