package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

// ReviewService lets owners review applicants. Status changes are delegated
// to the ledger so the transition rules live in one place.
type ReviewService struct {
	jobs   ports.JobRepository
	apps   ports.ApplicationRepository
	ledger *ApplicationService
	now    Clock
	log    zerolog.Logger
}

var _ ports.ReviewService = (*ReviewService)(nil)

func NewReviewService(
	jobs ports.JobRepository,
	apps ports.ApplicationRepository,
	ledger *ApplicationService,
	now Clock,
	log zerolog.Logger,
) *ReviewService {
	return &ReviewService{jobs: jobs, apps: apps, ledger: ledger, now: now, log: log}
}

// ListApplicantsGrouped returns every job of ownerID, deleted and expired
// ones included, each with its live applicants. Jobs without applicants are
// kept with an empty list.
func (s *ReviewService) ListApplicantsGrouped(ctx context.Context, ownerID string) ([]ports.JobApplicants, error) {
	jobs, _, err := s.jobs.List(ctx, domain.JobFilter{OwnerID: ownerID, IncludeDeleted: true}, nil)
	if err != nil {
		return nil, err
	}
	out := make([]ports.JobApplicants, 0, len(jobs))
	if len(jobs) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	apps, err := s.apps.List(ctx, ports.ApplicationFilter{JobIDs: ids})
	if err != nil {
		return nil, err
	}
	entries, err := s.ledger.withApplicants(ctx, apps)
	if err != nil {
		return nil, err
	}

	byJob := make(map[string][]ports.ApplicantEntry, len(jobs))
	for _, e := range entries {
		byJob[e.Application.JobID] = append(byJob[e.Application.JobID], e)
	}

	now := s.now()
	for _, j := range jobs {
		applicants := byJob[j.ID]
		if applicants == nil {
			applicants = []ports.ApplicantEntry{}
		}
		out = append(out, ports.JobApplicants{Job: newJobView(j, now), Applicants: applicants})
	}
	return out, nil
}

func (s *ReviewService) ListApplicantsForJob(ctx context.Context, jobID, ownerID string) (*ports.JobApplicants, error) {
	job, err := s.ownedJob(ctx, jobID, ownerID)
	if err != nil {
		return nil, err
	}
	applicants, err := s.ledger.ListForJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &ports.JobApplicants{Job: newJobView(job, s.now()), Applicants: applicants}, nil
}

func (s *ReviewService) Connect(ctx context.Context, jobID, applicantID, ownerID string) (*ports.ApplicantEntry, error) {
	return s.answer(ctx, jobID, applicantID, ownerID, domain.StatusConnected)
}

func (s *ReviewService) Decline(ctx context.Context, jobID, applicantID, ownerID string) (*ports.ApplicantEntry, error) {
	return s.answer(ctx, jobID, applicantID, ownerID, domain.StatusDeclined)
}

func (s *ReviewService) answer(ctx context.Context, jobID, applicantID, ownerID string, status domain.ApplicationStatus) (*ports.ApplicantEntry, error) {
	if _, err := s.ownedJob(ctx, jobID, ownerID); err != nil {
		return nil, err
	}
	app, err := s.ledger.FindLive(ctx, jobID, applicantID)
	if err != nil {
		return nil, err
	}
	updated, err := s.ledger.SetStatus(ctx, app.ID, ownerID, status)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("job_id", jobID).Str("applicant_id", applicantID).Str("status", string(status)).Msg("applicant reviewed")

	entries, err := s.ledger.withApplicants(ctx, []*domain.Application{updated})
	if err != nil {
		return nil, err
	}
	return &entries[0], nil
}

// ownedJob loads jobID, soft-deleted included, and checks it belongs to ownerID.
func (s *ReviewService) ownedJob(ctx context.Context, jobID, ownerID string) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID, true)
	if err != nil {
		return nil, err
	}
	if !job.OwnedBy(ownerID) {
		return nil, domain.ErrNotJobOwner
	}
	return job, nil
}
