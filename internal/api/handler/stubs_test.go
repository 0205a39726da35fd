package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nightshift/gigboard/internal/api/middleware"
	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

var alice = domain.Identity{ID: "u1", Name: "Alice", Email: "alice@example.com"}

// newTestContext builds an echo context for one request. A non-empty
// identity is injected the way the Auth middleware does it.
func newTestContext(method, target, body string, id domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id.ID != "" {
		c.Set(middleware.IdentityKey, id)
	}
	return c, rec
}

func withParams(c echo.Context, kv ...string) echo.Context {
	var names, values []string
	for i := 0; i+1 < len(kv); i += 2 {
		names = append(names, kv[i])
		values = append(values, kv[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c
}

// ---------------------------------------------------------------------------
// Service stubs
// ---------------------------------------------------------------------------

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.Session, *domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.Session, *domain.User, error)
	logoutFn   func(ctx context.Context, tokenID string, expiresAt time.Time) error
	meFn       func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.Session, *domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.Session, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return s.logoutFn(ctx, tokenID, expiresAt)
}

func (s *stubAuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.meFn(ctx, userID)
}

type stubJobService struct {
	createFn func(ctx context.Context, ownerID string, f domain.JobFields) (*domain.Job, error)
	updateFn func(ctx context.Context, jobID, ownerID string, f domain.JobFields) (*domain.Job, error)
	deleteFn func(ctx context.Context, jobID, ownerID string) error
	getFn    func(ctx context.Context, in ports.GetJobInput) (*ports.JobView, error)
	purgeFn  func(ctx context.Context, jobID, ownerID string) error
}

func (s *stubJobService) CreateJob(ctx context.Context, ownerID string, f domain.JobFields) (*domain.Job, error) {
	return s.createFn(ctx, ownerID, f)
}

func (s *stubJobService) UpdateJob(ctx context.Context, jobID, ownerID string, f domain.JobFields) (*domain.Job, error) {
	return s.updateFn(ctx, jobID, ownerID, f)
}

func (s *stubJobService) SoftDeleteJob(ctx context.Context, jobID, ownerID string) error {
	return s.deleteFn(ctx, jobID, ownerID)
}

func (s *stubJobService) GetJob(ctx context.Context, in ports.GetJobInput) (*ports.JobView, error) {
	return s.getFn(ctx, in)
}

func (s *stubJobService) PurgeJob(ctx context.Context, jobID, ownerID string) error {
	return s.purgeFn(ctx, jobID, ownerID)
}

type stubQueryService struct {
	queryFn   func(ctx context.Context, in ports.JobSearchInput) (*ports.JobPage, error)
	mineFn    func(ctx context.Context, ownerID string, page domain.Page) (*ports.JobPage, error)
	historyFn func(ctx context.Context, ownerID string) ([]ports.JobView, error)
}

func (s *stubQueryService) QueryJobs(ctx context.Context, in ports.JobSearchInput) (*ports.JobPage, error) {
	return s.queryFn(ctx, in)
}

func (s *stubQueryService) ListMyJobs(ctx context.Context, ownerID string, page domain.Page) (*ports.JobPage, error) {
	return s.mineFn(ctx, ownerID, page)
}

func (s *stubQueryService) ListPostedHistory(ctx context.Context, ownerID string) ([]ports.JobView, error) {
	return s.historyFn(ctx, ownerID)
}

type stubApplicationService struct {
	applyFn     func(ctx context.Context, jobID, applicantID string) (*domain.Application, error)
	setStatusFn func(ctx context.Context, applicationID, actorID string, status domain.ApplicationStatus) (*domain.Application, error)
	getFn       func(ctx context.Context, applicationID, requesterID string) (*ports.ApplicationView, error)
	listFn      func(ctx context.Context, applicantID string) ([]ports.ApplicationView, error)
	historyFn   func(ctx context.Context, applicantID string) ([]ports.ApplicationView, error)
}

func (s *stubApplicationService) Apply(ctx context.Context, jobID, applicantID string) (*domain.Application, error) {
	return s.applyFn(ctx, jobID, applicantID)
}

func (s *stubApplicationService) SetStatus(ctx context.Context, applicationID, actorID string, status domain.ApplicationStatus) (*domain.Application, error) {
	return s.setStatusFn(ctx, applicationID, actorID, status)
}

func (s *stubApplicationService) Withdraw(ctx context.Context, applicationID, applicantID string) (*domain.Application, error) {
	return s.setStatusFn(ctx, applicationID, applicantID, domain.StatusWithdrawn)
}

func (s *stubApplicationService) GetApplication(ctx context.Context, applicationID, requesterID string) (*ports.ApplicationView, error) {
	return s.getFn(ctx, applicationID, requesterID)
}

func (s *stubApplicationService) ListForApplicant(ctx context.Context, applicantID string) ([]ports.ApplicationView, error) {
	return s.listFn(ctx, applicantID)
}

func (s *stubApplicationService) ListHistoryForApplicant(ctx context.Context, applicantID string) ([]ports.ApplicationView, error) {
	return s.historyFn(ctx, applicantID)
}

func (s *stubApplicationService) ListForJob(context.Context, string) ([]ports.ApplicantEntry, error) {
	return nil, nil
}

func (s *stubApplicationService) FindLive(context.Context, string, string) (*domain.Application, error) {
	return nil, domain.ErrApplicationNotFound
}

type stubReviewService struct {
	groupedFn func(ctx context.Context, ownerID string) ([]ports.JobApplicants, error)
	forJobFn  func(ctx context.Context, jobID, ownerID string) (*ports.JobApplicants, error)
	answerFn  func(ctx context.Context, jobID, applicantID, ownerID string, status domain.ApplicationStatus) (*ports.ApplicantEntry, error)
}

func (s *stubReviewService) ListApplicantsGrouped(ctx context.Context, ownerID string) ([]ports.JobApplicants, error) {
	return s.groupedFn(ctx, ownerID)
}

func (s *stubReviewService) ListApplicantsForJob(ctx context.Context, jobID, ownerID string) (*ports.JobApplicants, error) {
	return s.forJobFn(ctx, jobID, ownerID)
}

func (s *stubReviewService) Connect(ctx context.Context, jobID, applicantID, ownerID string) (*ports.ApplicantEntry, error) {
	return s.answerFn(ctx, jobID, applicantID, ownerID, domain.StatusConnected)
}

func (s *stubReviewService) Decline(ctx context.Context, jobID, applicantID, ownerID string) (*ports.ApplicantEntry, error) {
	return s.answerFn(ctx, jobID, applicantID, ownerID, domain.StatusDeclined)
}

type stubCatalogService struct {
	filters *ports.FilterOptions
	roles   []string
	venues  []*domain.Venue
	cities  []string
	created string
	err     error
}

func (s *stubCatalogService) FilterOptions(context.Context) (*ports.FilterOptions, error) {
	return s.filters, s.err
}

func (s *stubCatalogService) SearchRoles(context.Context, string) ([]string, error) {
	return s.roles, s.err
}

func (s *stubCatalogService) ListVenues(context.Context, string) ([]*domain.Venue, error) {
	return s.venues, s.err
}

func (s *stubCatalogService) CreateVenue(_ context.Context, name string) (*domain.Venue, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = name
	return &domain.Venue{ID: "v1", Name: name}, nil
}

func (s *stubCatalogService) ListCities(string) []string { return s.cities }
