package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nightshift/gigboard/internal/api/metrics"
	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

// CatalogService serves the lookup lists behind the post and search forms.
type CatalogService struct {
	jobs   ports.JobRepository
	venues ports.VenueRepository
	cache  ports.FilterCache
	cities []string
	now    Clock
	log    zerolog.Logger
}

var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService returns a CatalogService. cache may be nil, in which case
// filter options are read from the job store on every call.
func NewCatalogService(
	jobs ports.JobRepository,
	venues ports.VenueRepository,
	cache ports.FilterCache,
	cities []string,
	now Clock,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{jobs: jobs, venues: venues, cache: cache, cities: cities, now: now, log: log}
}

// FilterOptions returns the distinct cities and roles of non-deleted jobs.
func (s *CatalogService) FilterOptions(ctx context.Context) (*ports.FilterOptions, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("filter cache read failed, querying store")
		case ok:
			metrics.FilterCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.FilterCacheTotal.WithLabelValues("miss").Inc()
	}

	cities, err := s.jobs.Distinct(ctx, ports.JobFieldCity, domain.JobFilter{})
	if err != nil {
		return nil, err
	}
	roles, err := s.jobs.Distinct(ctx, ports.JobFieldRole, domain.JobFilter{})
	if err != nil {
		return nil, err
	}
	opts := &ports.FilterOptions{Cities: cities, Roles: roles}

	if s.cache != nil {
		if err := s.cache.Set(ctx, opts); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache filter options")
		}
	}
	return opts, nil
}

// SearchRoles returns the distinct roles containing search, case-insensitively.
func (s *CatalogService) SearchRoles(ctx context.Context, search string) ([]string, error) {
	roles, err := s.jobs.Distinct(ctx, ports.JobFieldRole, domain.JobFilter{})
	if err != nil {
		return nil, err
	}
	return containsFold(roles, search), nil
}

func (s *CatalogService) ListVenues(ctx context.Context, search string) ([]*domain.Venue, error) {
	return s.venues.List(ctx, strings.TrimSpace(search))
}

// CreateVenue adds a venue. Names are unique after trimming.
func (s *CatalogService) CreateVenue(ctx context.Context, name string) (*domain.Venue, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Validation("venue name is required")
	}
	v := &domain.Venue{ID: uuid.NewString(), Name: name, CreatedAt: s.now()}
	if err := s.venues.Create(ctx, v); err != nil {
		return nil, err
	}
	s.log.Info().Str("venue_id", v.ID).Str("name", name).Msg("venue created")
	return v, nil
}

// ListCities filters the configured city list.
func (s *CatalogService) ListCities(search string) []string {
	return containsFold(s.cities, search)
}

func containsFold(values []string, search string) []string {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if search == "" || strings.Contains(strings.ToLower(v), search) {
			out = append(out, v)
		}
	}
	return out
}
