package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the core unwraps to exactly one of
// these, so transport layers branch with errors.Is(err, domain.ErrConflict).
var (
	ErrValidation    = errors.New("validation failed")
	ErrAuthorization = errors.New("not authorized")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrDependency    = errors.New("dependency failure")
)

// Identity collaborator failures.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrTokenExpired    = fmt.Errorf("token expired: %w", ErrUnauthenticated)
)

var (
	ErrJobNotFound         = kind(ErrNotFound, "job not found")
	ErrApplicationNotFound = kind(ErrNotFound, "application not found")
	ErrUserNotFound        = kind(ErrNotFound, "user not found")
	ErrJobInactive         = kind(ErrNotFound, "job is no longer open for applications")

	ErrNotJobOwner  = kind(ErrAuthorization, "only the job owner can do this")
	ErrNotApplicant = kind(ErrAuthorization, "only the applicant can do this")
	ErrNotInvolved  = kind(ErrAuthorization, "only the applicant or the job owner can see this application")

	ErrSelfApply            = kind(ErrConflict, "cannot apply to a job you posted")
	ErrDuplicateApplication = kind(ErrConflict, "already applied to this job")
	ErrInvalidTransition    = kind(ErrConflict, "invalid status transition")
	ErrJobEnded             = kind(ErrConflict, "job has already ended")
	ErrJobStillActive       = kind(ErrConflict, "job is still active")
	ErrUserExists           = kind(ErrConflict, "email is already in use")
	ErrVenueExists          = kind(ErrConflict, "venue already exists")

	ErrJobInPast          = kind(ErrValidation, "job end time must be in the future")
	ErrInvalidCredentials = kind(ErrUnauthenticated, "invalid email or password")
)

// KindError is a concrete core error tagged with its kind.
type KindError struct {
	Kind error
	Msg  string
}

func (e *KindError) Error() string { return e.Msg }

func (e *KindError) Unwrap() error { return e.Kind }

func kind(k error, msg string) *KindError {
	return &KindError{Kind: k, Msg: msg}
}

// Validation builds a ValidationError with a caller-facing message.
func Validation(format string, args ...any) error {
	return kind(ErrValidation, fmt.Sprintf(format, args...))
}

// DependencyError wraps a storage or collaborator failure. It matches both
// ErrDependency and the underlying cause.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() []error { return []error{ErrDependency, e.Err} }

// Dependency wraps err as a DependencyError for op. A nil err stays nil.
func Dependency(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DependencyError{Op: op, Err: err}
}
