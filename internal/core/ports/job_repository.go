package ports

import (
	"context"
	"time"

	"github.com/nightshift/gigboard/internal/core/domain"
)

// JobField names a job attribute that can be listed with Distinct.
type JobField string

const (
	JobFieldCity JobField = "location.city"
	JobFieldRole JobField = "role"
)

// JobRepository defines persistence operations for jobs. Soft-deleted jobs
// are only returned when the caller asks for them explicitly.
type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) error
	// FindByID returns ErrJobNotFound for missing jobs, and for soft-deleted
	// jobs unless includeDeleted is set.
	FindByID(ctx context.Context, id string, includeDeleted bool) (*domain.Job, error)
	// FindByIDs returns the jobs that exist among ids, deleted ones included.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Job, error)
	// Update replaces the editable fields and updated_at of a non-deleted job.
	Update(ctx context.Context, j *domain.Job) error
	// SoftDelete sets deleted_at when it is not set yet. Deleting twice is not an error.
	SoftDelete(ctx context.Context, id string, at time.Time) error
	// Delete removes the document for good.
	Delete(ctx context.Context, id string) error
	// List returns jobs matching filter sorted by domain.CompareSchedule, and
	// the total match count. A nil page returns every match.
	List(ctx context.Context, filter domain.JobFilter, page *domain.Page) ([]*domain.Job, int64, error)
	// Distinct returns the sorted distinct values of field among matching jobs.
	Distinct(ctx context.Context, field JobField, filter domain.JobFilter) ([]string, error)
}
