package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sariops/sariops/internal/domain"
)

// KVCacheRepository implements domain.KVCacheRepository. It backs the
// persistent tier of the location cache with a plain key/value table.
type KVCacheRepository struct {
	db *sql.DB
}

// NewKVCacheRepository creates a new instance of the repository
func NewKVCacheRepository(db *sql.DB) *KVCacheRepository {
	return &KVCacheRepository{db: db}
}

// Get retrieves a cache entry by key. A miss returns (nil, nil): the cache
// is advisory, not a lookup that can fail.
func (r *KVCacheRepository) Get(ctx context.Context, key string) (*domain.KVCacheEntry, error) {
	var entry domain.KVCacheEntry
	err := r.db.QueryRowContext(ctx,
		"SELECT key, value, cached_at FROM kv_cache WHERE key = $1",
		key,
	).Scan(&entry.Key, &entry.Value, &entry.CachedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}

	return &entry, nil
}

// Set upserts a cache entry, refreshing cached_at
func (r *KVCacheRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv_cache (key, value, cached_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET
			value = EXCLUDED.value,
			cached_at = EXCLUDED.cached_at
	`, key, value, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("failed to set cache entry: %w", err)
	}

	return nil
}

// DeleteExpired evicts entries cached before the boundary
func (r *KVCacheRepository) DeleteExpired(ctx context.Context, olderThan time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM kv_cache WHERE cached_at < $1",
		olderThan,
	)
	if err != nil {
		return fmt.Errorf("failed to delete expired cache entries: %w", err)
	}

	return nil
}
