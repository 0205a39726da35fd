package ports

import (
	"context"

	"github.com/nightshift/gigboard/internal/core/domain"
)

// VenueRepository persists venue names. Names are unique.
type VenueRepository interface {
	Create(ctx context.Context, v *domain.Venue) error
	// List returns venues sorted by name; a non-empty search is a
	// case-insensitive substring match.
	List(ctx context.Context, search string) ([]*domain.Venue, error)
}
