package domain

import (
	"slices"
	"time"
)

// ApplicationStatus is the lifecycle state of an application.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusConnected ApplicationStatus = "connected"
	StatusDeclined  ApplicationStatus = "declined"
	StatusWithdrawn ApplicationStatus = "withdrawn"
)

// LiveStatuses are the statuses that count towards the one-application-per-job rule.
var LiveStatuses = []ApplicationStatus{StatusApplied, StatusConnected, StatusDeclined}

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusApplied:   {StatusConnected, StatusDeclined, StatusWithdrawn},
	StatusConnected: {StatusWithdrawn},
	StatusDeclined:  {StatusWithdrawn},
}

// Actor identifies which party may drive a transition.
type Actor string

const (
	ActorOwner     Actor = "owner"
	ActorApplicant Actor = "applicant"
)

func (s ApplicationStatus) Valid() bool {
	return s == StatusWithdrawn || slices.Contains(LiveStatuses, s)
}

// IsLive reports whether s still blocks a new application for the same pair.
func (s ApplicationStatus) IsLive() bool { return slices.Contains(LiveStatuses, s) }

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	return slices.Contains(validTransitions[s], next)
}

// RequiredActor returns the party allowed to move an application into next.
// ok is false for targets no one may request (applied).
func RequiredActor(next ApplicationStatus) (actor Actor, ok bool) {
	switch next {
	case StatusConnected, StatusDeclined:
		return ActorOwner, true
	case StatusWithdrawn:
		return ActorApplicant, true
	default:
		return "", false
	}
}

// Application is a worker's interest in a job.
type Application struct {
	ID          string            `json:"id" bson:"_id"`
	JobID       string            `json:"job_id" bson:"job_id"`
	ApplicantID string            `json:"applicant_id" bson:"applicant_id"`
	Status      ApplicationStatus `json:"status" bson:"status"`
	AppliedAt   time.Time         `json:"applied_at" bson:"applied_at"`
	UpdatedAt   time.Time         `json:"updated_at" bson:"updated_at"`
}
