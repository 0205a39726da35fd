package ports

import (
	"context"

	"github.com/nightshift/gigboard/internal/core/domain"
)

// JobSearchInput carries all parameters of a job search.
type JobSearchInput struct {
	RequesterID       string
	Page              int // 1-based
	PageSize          int
	ExcludeApplied    bool
	ExcludePostedByMe bool
	City              string
	Role              string
	DateRange         domain.DateRange
}

// JobPage is one page of jobs plus the size of the whole filtered set.
type JobPage struct {
	Items      []JobView
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}

// QueryService builds read-only job listings.
type QueryService interface {
	QueryJobs(ctx context.Context, input JobSearchInput) (*JobPage, error)
	// ListMyJobs pages through the owner's non-deleted jobs.
	ListMyJobs(ctx context.Context, ownerID string, page domain.Page) (*JobPage, error)
	// ListPostedHistory returns the owner's deleted or expired jobs.
	ListPostedHistory(ctx context.Context, ownerID string) ([]JobView, error)
}
