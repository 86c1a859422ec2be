package cli

import (
	"context"
	"encoding/json"
	"log"

	"github.com/dmitrijs2005/finkeeper/internal/client/api"
	"github.com/dmitrijs2005/finkeeper/internal/client/cache"
	"github.com/dmitrijs2005/finkeeper/internal/client/models"
)

// snapshot stores items in the local cache; failures are logged, never fatal.
func (a *App) snapshot(ctx context.Context, key string, items any) {
	payload, err := json.Marshal(items)
	if err != nil {
		log.Printf("error encoding %s snapshot: %v", key, err)
		return
	}
	if err := a.cache.Put(ctx, key, payload); err != nil {
		log.Printf("error caching %s snapshot: %v", key, err)
	}
}

// cachedList prints the last stored snapshot for key. Every list command
// falls back to it when the server is unreachable; a missing or unreadable
// snapshot degrades to the plain connectivity failure.
func cachedList[T any](ctx context.Context, a *App, key string, print func(T)) error {
	payload, fetchedAt, err := a.cache.Get(ctx, key)
	if err != nil || payload == nil {
		log.Println(userMessage(api.ErrUnavailable))
		return api.ErrUnavailable
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		log.Println(userMessage(api.ErrUnavailable))
		return api.ErrUnavailable
	}

	log.Printf("Server unreachable, showing data cached at %s", fetchedAt.Format("2006-01-02 15:04"))
	for _, item := range items {
		print(item)
	}
	return nil
}

// syncSnapshots refetches every list resource and replaces the local
// snapshots in one transaction, so the offline view is never a mix of old
// and new data. Resources that fail to fetch keep their previous snapshot.
// Failures are logged, never fatal.
func (a *App) syncSnapshots(ctx context.Context) {
	entries := make(map[string][]byte)

	if env, err := a.api.ListCategories(ctx, models.ListFilter{Limit: 100}); err == nil && env.Success {
		addSnapshot(entries, cache.KeyCategories, env.Data.Items)
	}
	if env, err := a.api.ListExpenses(ctx, models.ListFilter{Limit: 20}); err == nil && env.Success {
		addSnapshot(entries, cache.KeyExpenses, env.Data.Items)
	}
	if env, err := a.api.ListIncome(ctx, models.ListFilter{Limit: 20}); err == nil && env.Success {
		addSnapshot(entries, cache.KeyIncome, env.Data.Items)
	}
	if env, err := a.api.ListBudgets(ctx, models.ListFilter{Limit: 100}); err == nil && env.Success {
		addSnapshot(entries, cache.KeyBudgets, env.Data.Items)
	}

	if len(entries) == 0 {
		return
	}
	if err := a.cache.PutAll(ctx, entries); err != nil {
		log.Printf("error syncing snapshot cache: %v", err)
	}
}

func addSnapshot(entries map[string][]byte, key string, items any) {
	payload, err := json.Marshal(items)
	if err != nil {
		log.Printf("error encoding %s snapshot: %v", key, err)
		return
	}
	entries[key] = payload
}
