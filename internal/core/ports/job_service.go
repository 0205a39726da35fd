package ports

import (
	"context"

	"github.com/nightshift/gigboard/internal/core/domain"
)

// JobView is a job as presented to a reader: the stored record plus values
// derived at read time.
type JobView struct {
	Job      *domain.Job
	IsActive bool
	State    domain.JobState
	// Owner is the poster's public identity; nil when not joined.
	Owner *domain.Identity
}

// GetJobInput carries the parameters for a single job lookup.
type GetJobInput struct {
	JobID       string
	RequesterID string
	// IncludeDeleted lets the owner keep managing a job after deleting it.
	// Non-owners never see deleted jobs.
	IncludeDeleted bool
}

// JobService is the job registry: it owns job records and their lifecycle.
type JobService interface {
	CreateJob(ctx context.Context, ownerID string, fields domain.JobFields) (*domain.Job, error)
	UpdateJob(ctx context.Context, jobID, ownerID string, fields domain.JobFields) (*domain.Job, error)
	SoftDeleteJob(ctx context.Context, jobID, ownerID string) error
	GetJob(ctx context.Context, input GetJobInput) (*JobView, error)
	// PurgeJob hard-deletes a job of ownerID that is already deleted or expired.
	PurgeJob(ctx context.Context, jobID, ownerID string) error
}
