package ports

import (
	"context"
	"time"

	"github.com/nightshift/gigboard/internal/core/domain"
)

// ApplicationFilter selects applications. With Status empty and
// IncludeWithdrawn false only live (non-withdrawn) applications match.
type ApplicationFilter struct {
	ApplicantID      string
	JobIDs           []string
	Status           domain.ApplicationStatus // optional exact match, overrides IncludeWithdrawn
	IncludeWithdrawn bool
}

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	// Create inserts a. A live application for the same (job, applicant)
	// pair yields ErrDuplicateApplication.
	Create(ctx context.Context, a *domain.Application) error
	// FindByID returns the application whatever its status.
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	// FindLive returns the non-withdrawn application for the pair.
	FindLive(ctx context.Context, jobID, applicantID string) (*domain.Application, error)
	// List returns matching applications, newest applied_at first.
	List(ctx context.Context, filter ApplicationFilter) ([]*domain.Application, error)
	// LiveJobIDs returns the ids of jobs the applicant holds a live application for.
	LiveJobIDs(ctx context.Context, applicantID string) ([]string, error)
	// UpdateStatus moves the application from -> to in one atomic write. If
	// the stored status is no longer from, ErrInvalidTransition is returned.
	UpdateStatus(ctx context.Context, id string, from, to domain.ApplicationStatus, at time.Time) (*domain.Application, error)
}
