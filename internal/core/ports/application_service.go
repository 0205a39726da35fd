package ports

import (
	"context"

	"github.com/nightshift/gigboard/internal/core/domain"
)

// ApplicationView is an application joined with the job it targets.
// Job is nil when the job has been purged.
type ApplicationView struct {
	Application *domain.Application
	Job         *JobView
}

// ApplicantEntry is an application joined with the applicant's profile.
type ApplicantEntry struct {
	Application *domain.Application
	Applicant   domain.ApplicantProfile
}

// ApplicationService is the application ledger.
type ApplicationService interface {
	Apply(ctx context.Context, jobID, applicantID string) (*domain.Application, error)
	SetStatus(ctx context.Context, applicationID, actorID string, status domain.ApplicationStatus) (*domain.Application, error)
	Withdraw(ctx context.Context, applicationID, applicantID string) (*domain.Application, error)
	// GetApplication is visible to the applicant and to the job owner.
	GetApplication(ctx context.Context, applicationID, requesterID string) (*ApplicationView, error)
	// ListForApplicant returns live applications, newest first.
	ListForApplicant(ctx context.Context, applicantID string) ([]ApplicationView, error)
	// ListHistoryForApplicant returns withdrawn applications only.
	ListHistoryForApplicant(ctx context.Context, applicantID string) ([]ApplicationView, error)
	// ListForJob returns live applications for a job with applicant profiles.
	ListForJob(ctx context.Context, jobID string) ([]ApplicantEntry, error)
	// FindLive returns the live application of applicantID for jobID.
	FindLive(ctx context.Context, jobID, applicantID string) (*domain.Application, error)
}
