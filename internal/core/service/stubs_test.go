package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubJobRepo struct {
	byID    map[string]*domain.Job
	failErr error // if set, every call returns this error
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{byID: make(map[string]*domain.Job)}
}

func cloneJob(j *domain.Job) *domain.Job {
	clone := *j
	return &clone
}

func (r *stubJobRepo) Create(_ context.Context, j *domain.Job) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.byID[j.ID] = cloneJob(j)
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string, includeDeleted bool) (*domain.Job, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	j, ok := r.byID[id]
	if !ok || (j.IsDeleted() && !includeDeleted) {
		return nil, domain.ErrJobNotFound
	}
	return cloneJob(j), nil
}

func (r *stubJobRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Job, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	var out []*domain.Job
	for _, id := range ids {
		if j, ok := r.byID[id]; ok {
			out = append(out, cloneJob(j))
		}
	}
	return out, nil
}

func (r *stubJobRepo) Update(_ context.Context, j *domain.Job) error {
	if r.failErr != nil {
		return r.failErr
	}
	cur, ok := r.byID[j.ID]
	if !ok || cur.IsDeleted() {
		return domain.ErrJobNotFound
	}
	r.byID[j.ID] = cloneJob(j)
	return nil
}

func (r *stubJobRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	if r.failErr != nil {
		return r.failErr
	}
	j, ok := r.byID[id]
	if !ok {
		return domain.ErrJobNotFound
	}
	if j.DeletedAt == nil {
		j.DeletedAt = &at
	}
	return nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if r.failErr != nil {
		return r.failErr
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.byID, id)
	return nil
}

// List applies domain.JobFilter.Matches, which the Mongo filter mirrors.
func (r *stubJobRepo) List(_ context.Context, f domain.JobFilter, page *domain.Page) ([]*domain.Job, int64, error) {
	if r.failErr != nil {
		return nil, 0, r.failErr
	}
	var matched []*domain.Job
	for _, j := range r.byID {
		if f.Matches(j) {
			matched = append(matched, cloneJob(j))
		}
	}
	slices.SortFunc(matched, domain.CompareSchedule)
	total := int64(len(matched))
	if page == nil {
		return matched, total, nil
	}
	skip := min(page.Offset(), len(matched))
	end := min(skip+page.Size, len(matched))
	return matched[skip:end], total, nil
}

func (r *stubJobRepo) Distinct(_ context.Context, field ports.JobField, f domain.JobFilter) ([]string, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	var out []string
	for _, j := range r.byID {
		if !f.Matches(j) {
			continue
		}
		v := j.Role
		if field == ports.JobFieldCity {
			v = j.Location.City
		}
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out, nil
}

type stubAppRepo struct {
	byID      map[string]*domain.Application
	createErr error
	// casConflict makes the next UpdateStatus lose the race.
	casConflict bool
}

func newStubAppRepo() *stubAppRepo {
	return &stubAppRepo{byID: make(map[string]*domain.Application)}
}

func cloneApp(a *domain.Application) *domain.Application {
	clone := *a
	return &clone
}

func (r *stubAppRepo) Create(_ context.Context, a *domain.Application) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, cur := range r.byID {
		if cur.JobID == a.JobID && cur.ApplicantID == a.ApplicantID && cur.Status.IsLive() {
			return domain.ErrDuplicateApplication
		}
	}
	r.byID[a.ID] = cloneApp(a)
	return nil
}

func (r *stubAppRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	return cloneApp(a), nil
}

func (r *stubAppRepo) FindLive(_ context.Context, jobID, applicantID string) (*domain.Application, error) {
	for _, a := range r.byID {
		if a.JobID == jobID && a.ApplicantID == applicantID && a.Status.IsLive() {
			return cloneApp(a), nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubAppRepo) List(_ context.Context, f ports.ApplicationFilter) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, a := range r.byID {
		if f.ApplicantID != "" && a.ApplicantID != f.ApplicantID {
			continue
		}
		if f.JobIDs != nil && !slices.Contains(f.JobIDs, a.JobID) {
			continue
		}
		switch {
		case f.Status != "":
			if a.Status != f.Status {
				continue
			}
		case !f.IncludeWithdrawn:
			if !a.Status.IsLive() {
				continue
			}
		}
		out = append(out, cloneApp(a))
	}
	slices.SortFunc(out, func(a, b *domain.Application) int {
		if c := b.AppliedAt.Compare(a.AppliedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *stubAppRepo) LiveJobIDs(_ context.Context, applicantID string) ([]string, error) {
	var ids []string
	for _, a := range r.byID {
		if a.ApplicantID == applicantID && a.Status.IsLive() {
			ids = append(ids, a.JobID)
		}
	}
	return ids, nil
}

func (r *stubAppRepo) UpdateStatus(_ context.Context, id string, from, to domain.ApplicationStatus, at time.Time) (*domain.Application, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	if r.casConflict || a.Status != from {
		r.casConflict = false
		return nil, domain.ErrInvalidTransition
	}
	a.Status = to
	a.UpdatedAt = at
	return cloneApp(a), nil
}

type stubUserRepo struct {
	byID    map[string]*domain.User
	findErr error
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{byID: make(map[string]*domain.User)}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.byID[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make(map[string]*domain.User)
	for _, id := range ids {
		if u, ok := r.byID[id]; ok {
			out[id] = cloneUser(u)
		}
	}
	return out, nil
}

type stubVenueRepo struct {
	venues []*domain.Venue
}

func (r *stubVenueRepo) Create(_ context.Context, v *domain.Venue) error {
	for _, cur := range r.venues {
		if cur.Name == v.Name {
			return domain.ErrVenueExists
		}
	}
	r.venues = append(r.venues, v)
	return nil
}

func (r *stubVenueRepo) List(_ context.Context, search string) ([]*domain.Venue, error) {
	var out []*domain.Venue
	for _, v := range r.venues {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(search)) {
			out = append(out, v)
		}
	}
	return out, nil
}

type stubRevoker struct {
	revoked map[string]time.Duration
	err     error
}

func (r *stubRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if r.err != nil {
		return r.err
	}
	if r.revoked == nil {
		r.revoked = make(map[string]time.Duration)
	}
	r.revoked[tokenID] = ttl
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := r.revoked[tokenID]
	return ok, r.err
}

type stubFilterCache struct {
	opts   *ports.FilterOptions
	getErr error
	sets   int
}

func (c *stubFilterCache) Get(context.Context) (*ports.FilterOptions, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.opts, c.opts != nil, nil
}

func (c *stubFilterCache) Set(_ context.Context, opts *ports.FilterOptions) error {
	c.opts = opts
	c.sets++
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

// refNow is Wednesday 2026-10-14 21:00 UTC.
var refNow = time.Date(2026, 10, 14, 21, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock { return func() time.Time { return t } }

func jobFields(date, start, end string) domain.JobFields {
	return domain.JobFields{
		Role:          "Bartender",
		Venue:         "The Blue Room",
		Location:      domain.Location{City: "Berlin"},
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		PaymentType:   domain.PaymentPerHour,
		PaymentAmount: 18,
		Currency:      domain.CurrencyEUR,
	}
}

// seedJob stores a job owned by ownerID ending at date/end.
func seedJob(repo *stubJobRepo, id, ownerID, date, end string) *domain.Job {
	j := &domain.Job{ID: id, CreatedBy: ownerID, CreatedAt: refNow.Add(-24 * time.Hour)}
	j.SetFields(jobFields(date, "18:00", end))
	repo.byID[id] = j
	return j
}

func seedApp(repo *stubAppRepo, id, jobID, applicantID string, status domain.ApplicationStatus, appliedAt time.Time) *domain.Application {
	a := &domain.Application{ID: id, JobID: jobID, ApplicantID: applicantID, Status: status, AppliedAt: appliedAt, UpdatedAt: appliedAt}
	repo.byID[id] = a
	return a
}

func testUser(id, name string) *domain.User {
	return &domain.User{ID: id, Name: name, Email: id + "@example.com", AvatarURL: "https://i.pravatar.cc/150?u=" + id}
}
