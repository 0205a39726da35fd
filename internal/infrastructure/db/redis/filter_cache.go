package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nightshift/gigboard/internal/core/ports"
)

const (
	filterOptionsKey      = "catalog:filter_options"
	defaultFilterCacheTTL = 5 * time.Minute
)

// FilterCache keeps the search form's filter options for a short TTL.
// New jobs show up in the options once the entry expires.
type FilterCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.FilterCache = (*FilterCache)(nil)

// NewFilterCache creates a FilterCache. A non-positive ttl uses the default.
func NewFilterCache(client *redis.Client, ttl time.Duration) *FilterCache {
	if ttl <= 0 {
		ttl = defaultFilterCacheTTL
	}
	return &FilterCache{client: client, ttl: ttl}
}

// Get returns the cached options; ok is false on a miss.
func (c *FilterCache) Get(ctx context.Context) (*ports.FilterOptions, bool, error) {
	raw, err := c.client.Get(ctx, filterOptionsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("filter cache get: %w", err)
	}

	var opts ports.FilterOptions
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, false, fmt.Errorf("filter cache decode: %w", err)
	}
	return &opts, true, nil
}

func (c *FilterCache) Set(ctx context.Context, opts *ports.FilterOptions) error {
	raw, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("filter cache encode: %w", err)
	}
	if err := c.client.Set(ctx, filterOptionsKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("filter cache set: %w", err)
	}
	return nil
}
