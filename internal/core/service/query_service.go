package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nightshift/gigboard/internal/api/metrics"
	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

// QueryService is the job query engine. It reads the registry and consults
// the ledger for exclusion rules but never writes either.
type QueryService struct {
	jobs  ports.JobRepository
	apps  ports.ApplicationRepository
	users ports.UserRepository
	now   Clock
	log   zerolog.Logger
}

var _ ports.QueryService = (*QueryService)(nil)

func NewQueryService(
	jobs ports.JobRepository,
	apps ports.ApplicationRepository,
	users ports.UserRepository,
	now Clock,
	log zerolog.Logger,
) *QueryService {
	return &QueryService{jobs: jobs, apps: apps, users: users, now: now, log: log}
}

// QueryJobs runs a job search.
//
// Without a date range only jobs active at query time are returned. A date
// range replaces the activity predicate with an inclusive calendar window;
// deleted jobs stay excluded either way.
func (s *QueryService) QueryJobs(ctx context.Context, in ports.JobSearchInput) (*ports.JobPage, error) {
	started := time.Now()
	dateRange, err := domain.ParseDateRange(string(in.DateRange))
	if err != nil {
		return nil, err
	}

	now := s.now()
	page := domain.Page{Number: in.Page, Size: in.PageSize}.Normalize()
	filter := domain.JobFilter{City: in.City, Role: in.Role, At: now}

	mode := "active"
	if from, to, ok := dateRange.Window(now); ok {
		filter.DateFrom, filter.DateTo = from, to
		mode = "date_range"
	} else {
		filter.Activity = domain.ActiveOnly
	}

	if in.RequesterID != "" {
		if in.ExcludePostedByMe {
			filter.ExcludeOwnerID = in.RequesterID
		}
		if in.ExcludeApplied {
			applied, err := s.apps.LiveJobIDs(ctx, in.RequesterID)
			if err != nil {
				return nil, err
			}
			filter.ExcludeJobIDs = applied
		}
	}

	result, err := s.page(ctx, filter, page, now)
	if err != nil {
		return nil, err
	}
	metrics.JobQueryDuration.WithLabelValues(mode).Observe(time.Since(started).Seconds())
	return result, nil
}

// ListMyJobs pages through ownerID's jobs that are not deleted, expired ones included.
func (s *QueryService) ListMyJobs(ctx context.Context, ownerID string, page domain.Page) (*ports.JobPage, error) {
	started := time.Now()
	now := s.now()
	result, err := s.page(ctx, domain.JobFilter{OwnerID: ownerID, At: now}, page.Normalize(), now)
	if err != nil {
		return nil, err
	}
	metrics.JobQueryDuration.WithLabelValues("owner").Observe(time.Since(started).Seconds())
	return result, nil
}

// ListPostedHistory returns ownerID's jobs that are deleted or have ended.
func (s *QueryService) ListPostedHistory(ctx context.Context, ownerID string) ([]ports.JobView, error) {
	now := s.now()
	jobs, _, err := s.jobs.List(ctx, domain.JobFilter{OwnerID: ownerID, Activity: domain.InactiveOnly, At: now}, nil)
	if err != nil {
		return nil, err
	}
	out := make([]ports.JobView, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, newJobView(j, now))
	}
	return out, nil
}

func (s *QueryService) page(ctx context.Context, filter domain.JobFilter, page domain.Page, now time.Time) (*ports.JobPage, error) {
	jobs, total, err := s.jobs.List(ctx, filter, &page)
	if err != nil {
		return nil, err
	}
	items, err := s.withOwners(ctx, jobs, now)
	if err != nil {
		return nil, err
	}
	return &ports.JobPage{
		Items:      items,
		TotalCount: total,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: page.TotalPages(total),
	}, nil
}

// withOwners builds views joined with each poster's public identity.
func (s *QueryService) withOwners(ctx context.Context, jobs []*domain.Job, now time.Time) ([]ports.JobView, error) {
	out := make([]ports.JobView, 0, len(jobs))
	if len(jobs) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.CreatedBy)
	}
	owners, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, j := range jobs {
		v := newJobView(j, now)
		if u, ok := owners[j.CreatedBy]; ok {
			id := u.Identity()
			v.Owner = &id
		}
		out = append(out, v)
	}
	return out, nil
}
