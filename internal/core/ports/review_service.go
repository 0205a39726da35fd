package ports

import "context"

// JobApplicants groups one job with its live applicants.
type JobApplicants struct {
	Job        JobView
	Applicants []ApplicantEntry
}

// ReviewService lets a job owner review and answer applicants.
type ReviewService interface {
	// ListApplicantsGrouped covers every job of the owner, deleted and expired included.
	ListApplicantsGrouped(ctx context.Context, ownerID string) ([]JobApplicants, error)
	ListApplicantsForJob(ctx context.Context, jobID, ownerID string) (*JobApplicants, error)
	Connect(ctx context.Context, jobID, applicantID, ownerID string) (*ApplicantEntry, error)
	Decline(ctx context.Context, jobID, applicantID, ownerID string) (*ApplicantEntry, error)
}
