package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nightshift/gigboard/internal/core/ports"
)

// TokenRevoker records logged-out identity tokens until they would expire.
// Key format: revoked:<token_id>
type TokenRevoker struct {
	client *redis.Client
}

var _ ports.TokenRevoker = (*TokenRevoker)(nil)

// NewTokenRevoker creates a TokenRevoker wrapping the given Redis client.
func NewTokenRevoker(client *redis.Client) *TokenRevoker {
	return &TokenRevoker{client: client}
}

// Revoke marks tokenID as revoked for ttl.
func (r *TokenRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID has been revoked.
func (r *TokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (r *TokenRevoker) key(tokenID string) string {
	return "revoked:" + tokenID
}
