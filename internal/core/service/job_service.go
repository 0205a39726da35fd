package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nightshift/gigboard/internal/api/metrics"
	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

// JobService is the job registry.
type JobService struct {
	jobs  ports.JobRepository
	users ports.UserRepository
	now   Clock
	log   zerolog.Logger
}

var _ ports.JobService = (*JobService)(nil)

func NewJobService(jobs ports.JobRepository, users ports.UserRepository, now Clock, log zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, users: users, now: now, log: log}
}

// CreateJob validates fields and stores a new active job owned by ownerID.
func (s *JobService) CreateJob(ctx context.Context, ownerID string, fields domain.JobFields) (*domain.Job, error) {
	fields = trimFields(fields)
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	now := s.now()
	if err := requireFutureEnd(fields, now); err != nil {
		return nil, err
	}

	job := &domain.Job{
		ID:        uuid.NewString(),
		CreatedBy: ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetFields(fields)

	if err := s.jobs.Create(ctx, job); err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create job")
		return nil, err
	}

	metrics.JobsCreatedTotal.WithLabelValues(string(job.PaymentType)).Inc()
	s.log.Info().Str("job_id", job.ID).Str("owner_id", ownerID).Str("date", job.Date).Msg("job created")
	return job, nil
}

// UpdateJob replaces every editable field of a non-deleted job. The future
// end rule is only re-checked when Date or EndTime change.
func (s *JobService) UpdateJob(ctx context.Context, jobID, ownerID string, fields domain.JobFields) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID, false)
	if err != nil {
		return nil, err
	}
	if !job.OwnedBy(ownerID) {
		return nil, domain.ErrNotJobOwner
	}

	fields = trimFields(fields)
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	now := s.now()
	if fields.Date != job.Date || fields.EndTime != job.EndTime {
		if err := requireFutureEnd(fields, now); err != nil {
			return nil, err
		}
	}

	job.SetFields(fields)
	job.UpdatedAt = now
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	s.log.Info().Str("job_id", job.ID).Str("owner_id", ownerID).Msg("job updated")
	return job, nil
}

// SoftDeleteJob marks the job deleted. Deleting an already deleted job is a no-op.
func (s *JobService) SoftDeleteJob(ctx context.Context, jobID, ownerID string) error {
	job, err := s.jobs.FindByID(ctx, jobID, true)
	if err != nil {
		return err
	}
	if !job.OwnedBy(ownerID) {
		return domain.ErrNotJobOwner
	}
	if job.IsDeleted() {
		return nil
	}
	if err := s.jobs.SoftDelete(ctx, jobID, s.now()); err != nil {
		return err
	}

	metrics.JobsDeletedTotal.WithLabelValues("soft").Inc()
	s.log.Info().Str("job_id", jobID).Str("owner_id", ownerID).Msg("job soft-deleted")
	return nil
}

// GetJob returns a job with its derived state and the owner's public identity.
func (s *JobService) GetJob(ctx context.Context, input ports.GetJobInput) (*ports.JobView, error) {
	job, err := s.jobs.FindByID(ctx, input.JobID, true)
	if err != nil {
		return nil, err
	}
	if job.IsDeleted() && !(input.IncludeDeleted && job.OwnedBy(input.RequesterID)) {
		return nil, domain.ErrJobNotFound
	}

	view := newJobView(job, s.now())
	owner, err := s.users.FindByID(ctx, job.CreatedBy)
	switch {
	case err == nil:
		id := owner.Identity()
		view.Owner = &id
	case errors.Is(err, domain.ErrUserNotFound):
	default:
		s.log.Warn().Err(err).Str("job_id", job.ID).Msg("owner lookup failed, returning job without owner")
	}
	return &view, nil
}

// PurgeJob removes a deleted or expired job for good. Applications keep
// their weak reference and simply lose the joined job data.
func (s *JobService) PurgeJob(ctx context.Context, jobID, ownerID string) error {
	job, err := s.jobs.FindByID(ctx, jobID, true)
	if err != nil {
		return err
	}
	if !job.OwnedBy(ownerID) {
		return domain.ErrNotJobOwner
	}
	if job.IsActive(s.now()) {
		return domain.ErrJobStillActive
	}
	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return err
	}

	metrics.JobsDeletedTotal.WithLabelValues("purge").Inc()
	s.log.Info().Str("job_id", jobID).Str("owner_id", ownerID).Msg("job purged")
	return nil
}

func newJobView(job *domain.Job, now time.Time) ports.JobView {
	return ports.JobView{Job: job, IsActive: job.IsActive(now), State: job.State(now)}
}

func requireFutureEnd(f domain.JobFields, now time.Time) error {
	end, err := f.EndsAt(now.Location())
	if err != nil {
		return domain.Validation("date and endTime do not form a valid instant")
	}
	if !end.After(now) {
		return domain.ErrJobInPast
	}
	return nil
}

func trimFields(f domain.JobFields) domain.JobFields {
	f.Role = strings.TrimSpace(f.Role)
	f.Venue = strings.TrimSpace(f.Venue)
	f.Location.City = strings.TrimSpace(f.Location.City)
	f.Location.Street = strings.TrimSpace(f.Location.Street)
	f.Location.Number = strings.TrimSpace(f.Location.Number)
	f.Date = strings.TrimSpace(f.Date)
	f.StartTime = strings.TrimSpace(f.StartTime)
	f.EndTime = strings.TrimSpace(f.EndTime)
	f.Description = strings.TrimSpace(f.Description)
	return f
}
