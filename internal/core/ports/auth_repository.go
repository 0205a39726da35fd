package ports

import (
	"context"
	"time"

	"github.com/nightshift/gigboard/internal/core/domain"
)

// UserRepository defines persistence for registered users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs returns the users that exist among ids, keyed by id.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
}

// TokenRevoker tracks identity tokens invalidated before their expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
