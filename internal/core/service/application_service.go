package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nightshift/gigboard/internal/api/metrics"
	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

// ApplicationService is the application ledger.
type ApplicationService struct {
	apps  ports.ApplicationRepository
	jobs  ports.JobRepository
	users ports.UserRepository
	now   Clock
	log   zerolog.Logger
}

var _ ports.ApplicationService = (*ApplicationService)(nil)

func NewApplicationService(
	apps ports.ApplicationRepository,
	jobs ports.JobRepository,
	users ports.UserRepository,
	now Clock,
	log zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, users: users, now: now, log: log}
}

// Apply records applicantID's interest in jobID.
//
// Checks run in a fixed order: the job must exist, the applicant must not own
// it (whatever its activity), it must still be active, and no live application
// for the pair may exist. The store's unique index backs the last check when
// two requests race.
func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantID string) (*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID, true)
	if err != nil {
		return nil, err
	}
	if job.OwnedBy(applicantID) {
		metrics.ApplicationErrorsTotal.WithLabelValues("self_apply").Inc()
		return nil, domain.ErrSelfApply
	}
	now := s.now()
	if !job.IsActive(now) {
		metrics.ApplicationErrorsTotal.WithLabelValues("job_inactive").Inc()
		return nil, domain.ErrJobInactive
	}

	if _, err := s.apps.FindLive(ctx, jobID, applicantID); err == nil {
		metrics.ApplicationErrorsTotal.WithLabelValues("duplicate").Inc()
		return nil, domain.ErrDuplicateApplication
	} else if !errors.Is(err, domain.ErrApplicationNotFound) {
		return nil, err
	}

	app := &domain.Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      domain.StatusApplied,
		AppliedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			metrics.ApplicationErrorsTotal.WithLabelValues("duplicate").Inc()
		}
		return nil, err
	}

	metrics.ApplicationsCreatedTotal.Inc()
	s.log.Info().Str("application_id", app.ID).Str("job_id", jobID).Str("applicant_id", applicantID).Msg("application created")
	return app, nil
}

// SetStatus moves an application to next on behalf of actorID.
func (s *ApplicationService) SetStatus(ctx context.Context, applicationID, actorID string, next domain.ApplicationStatus) (*domain.Application, error) {
	if !next.Valid() {
		return nil, domain.Validation("status must be one of connected, declined, withdrawn")
	}
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	actor, ok := domain.RequiredActor(next)
	if !ok {
		metrics.ApplicationErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return nil, domain.ErrInvalidTransition
	}

	job, err := s.jobs.FindByID(ctx, app.JobID, true)
	if err != nil {
		return nil, err
	}

	switch actor {
	case domain.ActorOwner:
		if !job.OwnedBy(actorID) {
			metrics.ApplicationErrorsTotal.WithLabelValues("not_authorized").Inc()
			return nil, domain.ErrNotJobOwner
		}
	case domain.ActorApplicant:
		if app.ApplicantID != actorID {
			metrics.ApplicationErrorsTotal.WithLabelValues("not_authorized").Inc()
			return nil, domain.ErrNotApplicant
		}
	}

	if !app.Status.CanTransitionTo(next) {
		metrics.ApplicationErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return nil, domain.ErrInvalidTransition
	}
	now := s.now()
	if next == domain.StatusWithdrawn && job.HasEnded(now) {
		metrics.ApplicationErrorsTotal.WithLabelValues("job_ended").Inc()
		return nil, domain.ErrJobEnded
	}

	updated, err := s.apps.UpdateStatus(ctx, app.ID, app.Status, next, now)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			metrics.ApplicationErrorsTotal.WithLabelValues("invalid_transition").Inc()
		}
		return nil, err
	}

	metrics.ApplicationTransitionsTotal.WithLabelValues(string(next)).Inc()
	s.log.Info().
		Str("application_id", app.ID).
		Str("job_id", app.JobID).
		Str("from", string(app.Status)).
		Str("status", string(next)).
		Msg("application status changed")
	return updated, nil
}

// Withdraw is SetStatus to withdrawn by the applicant.
func (s *ApplicationService) Withdraw(ctx context.Context, applicationID, applicantID string) (*domain.Application, error) {
	return s.SetStatus(ctx, applicationID, applicantID, domain.StatusWithdrawn)
}

func (s *ApplicationService) GetApplication(ctx context.Context, applicationID, requesterID string) (*ports.ApplicationView, error) {
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.FindByID(ctx, app.JobID, true)
	if err != nil && !errors.Is(err, domain.ErrJobNotFound) {
		return nil, err
	}
	if app.ApplicantID != requesterID && (job == nil || !job.OwnedBy(requesterID)) {
		return nil, domain.ErrNotInvolved
	}

	view := &ports.ApplicationView{Application: app}
	if job != nil {
		jv := newJobView(job, s.now())
		view.Job = &jv
	}
	return view, nil
}

func (s *ApplicationService) ListForApplicant(ctx context.Context, applicantID string) ([]ports.ApplicationView, error) {
	return s.listForApplicant(ctx, ports.ApplicationFilter{ApplicantID: applicantID})
}

func (s *ApplicationService) ListHistoryForApplicant(ctx context.Context, applicantID string) ([]ports.ApplicationView, error) {
	return s.listForApplicant(ctx, ports.ApplicationFilter{ApplicantID: applicantID, Status: domain.StatusWithdrawn})
}

func (s *ApplicationService) listForApplicant(ctx context.Context, filter ports.ApplicationFilter) ([]ports.ApplicationView, error) {
	apps, err := s.apps.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return []ports.ApplicationView{}, nil
	}

	ids := make([]string, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.JobID)
	}
	jobs, err := s.jobs.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}

	now := s.now()
	out := make([]ports.ApplicationView, 0, len(apps))
	for _, a := range apps {
		v := ports.ApplicationView{Application: a}
		if j, ok := byID[a.JobID]; ok {
			jv := newJobView(j, now)
			v.Job = &jv
		}
		out = append(out, v)
	}
	return out, nil
}

// ListForJob returns the live applications for jobID with applicant profiles.
// Ownership is checked by the caller.
func (s *ApplicationService) ListForJob(ctx context.Context, jobID string) ([]ports.ApplicantEntry, error) {
	apps, err := s.apps.List(ctx, ports.ApplicationFilter{JobIDs: []string{jobID}})
	if err != nil {
		return nil, err
	}
	return s.withApplicants(ctx, apps)
}

func (s *ApplicationService) FindLive(ctx context.Context, jobID, applicantID string) (*domain.Application, error) {
	return s.apps.FindLive(ctx, jobID, applicantID)
}

// withApplicants joins applications with their applicants' profiles. An
// applicant whose account is gone is reported with its id only.
func (s *ApplicationService) withApplicants(ctx context.Context, apps []*domain.Application) ([]ports.ApplicantEntry, error) {
	out := make([]ports.ApplicantEntry, 0, len(apps))
	if len(apps) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.ApplicantID)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, a := range apps {
		entry := ports.ApplicantEntry{Application: a}
		if u, ok := users[a.ApplicantID]; ok {
			entry.Applicant = u.ApplicantProfileAt(now)
		} else {
			entry.Applicant.ID = a.ApplicantID
		}
		out = append(out, entry)
	}
	return out, nil
}
