package ports

import (
	"context"

	"github.com/nightshift/gigboard/internal/core/domain"
)

// FilterOptions are the values offered in the search form.
type FilterOptions struct {
	Cities []string `json:"cities"`
	Roles  []string `json:"roles"`
}

// FilterCache stores FilterOptions for a short time.
type FilterCache interface {
	Get(ctx context.Context) (*FilterOptions, bool, error)
	Set(ctx context.Context, opts *FilterOptions) error
}

// CatalogService serves lookup lists used when posting and searching.
type CatalogService interface {
	FilterOptions(ctx context.Context) (*FilterOptions, error)
	SearchRoles(ctx context.Context, search string) ([]string, error)
	ListVenues(ctx context.Context, search string) ([]*domain.Venue, error)
	CreateVenue(ctx context.Context, name string) (*domain.Venue, error)
	ListCities(search string) []string
}
