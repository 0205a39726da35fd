package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nightshift/gigboard/internal/core/domain"
)

type ledgerFixture struct {
	jobs  *stubJobRepo
	apps  *stubAppRepo
	users *stubUserRepo
	svc   *ApplicationService
}

func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		jobs:  newStubJobRepo(),
		apps:  newStubAppRepo(),
		users: newStubUserRepo(testUser("owner_1", "Olga"), testUser("worker_1", "Wes")),
	}
	f.svc = NewApplicationService(f.apps, f.jobs, f.users, fixedClock(refNow), discardLogger)
	return f
}

// ---------------------------------------------------------------------------
// Apply tests
// ---------------------------------------------------------------------------

func TestApplicationService_Apply_Success(t *testing.T) {
	f := newLedgerFixture()
	seedJob(f.jobs, "j1", "owner_1", "2026-10-14", "23:00")

	app, err := f.svc.Apply(context.Background(), "j1", "worker_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != domain.StatusApplied {
		t.Errorf("expected status applied, got %s", app.Status)
	}
	if !app.AppliedAt.Equal(refNow) {
		t.Errorf("AppliedAt: want %v, got %v", refNow, app.AppliedAt)
	}
	if len(f.apps.byID) != 1 {
		t.Errorf("expected 1 stored application, got %d", len(f.apps.byID))
	}
}

func TestApplicationService_Apply_MissingJob(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.svc.Apply(context.Background(), "nope", "worker_1")
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationService_Apply_SelfApplyRegardlessOfActivity(t *testing.T) {
	f := newLedgerFixture()
	seedJob(f.jobs, "active", "owner_1", "2026-10-14", "23:00")
	seedJob(f.jobs, "expired", "owner_1", "2026-10-14", "20:00")

	for _, id := range []string{"active", "expired"} {
		_, err := f.svc.Apply(context.Background(), id, "owner_1")
		if !errors.Is(err, domain.ErrSelfApply) {
			t.Errorf("job %s: expected ErrSelfApply, got %v", id, err)
		}
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("job %s: self-apply must be a conflict", id)
		}
	}
	if len(f.apps.byID) != 0 {
		t.Error("no application may be stored for a self-apply")
	}
}

func TestApplicationService_Apply_InactiveJobIsNotFound(t *testing.T) {
	f := newLedgerFixture()
	seedJob(f.jobs, "expired", "owner_1", "2026-10-14", "21:00") // ends exactly now
	j := seedJob(f.jobs, "deleted", "owner_1", "2026-10-20", "23:00")
	at := refNow.Add(-time.Minute)
	j.DeletedAt = &at

	for _, id := range []string{"expired", "deleted"} {
		_, err := f.svc.Apply(context.Background(), id, "worker_1")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("job %s: expected not found, got %v", id, err)
		}
	}
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	f := newLedgerFixture()
	seedJob(f.jobs, "j1", "owner_1", "2026-10-20", "23:00")

	if _, err := f.svc.Apply(context.Background(), "j1", "worker_1"); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	_, err := f.svc.Apply(context.Background(), "j1", "worker_1")
	if !errors.Is(err, domain.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
}

func TestApplicationService_Apply_DuplicateRaceLostAtStore(t *testing.T) {
	f := newLedgerFixture()
	seedJob(f.jobs, "j1", "owner_1", "2026-10-20", "23:00")
	f.apps.createErr = domain.ErrDuplicateApplication

	_, err := f.svc.Apply(context.Background(), "j1", "worker_1")
	if !errors.Is(err, domain.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication from the store, got %v", err)
	}
}

func TestApplicationService_Apply_AgainAfterWithdraw(t *testing.T) {
	f := newLedgerFixture()
	seedJob(f.jobs, "j1", "owner_1", "2026-10-20", "23:00")
	seedApp(f.apps, "a0", "j1", "worker_1", domain.StatusWithdrawn, refNow.Add(-time.Hour))

	if _, err := f.svc.Apply(context.Background(), "j1", "worker_1"); err != nil {
		t.Fatalf("withdrawn applications must not block a new one, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// SetStatus / Withdraw tests
// ---------------------------------------------------------------------------

func TestApplicationService_SetStatus_OwnerConnects(t *testing.T) {
	f := newLedgerFixture()
	seedJob(f.jobs, "j1", "owner_1", "2026-10-20", "23:00")
	seedApp(f.apps, "a1", "j1", "worker_1", domain.StatusApplied, refNow)

	app, err := f.svc.SetStatus(context.Background(), "a1", "owner_1", domain.StatusConnected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != domain.StatusConnected {
		t.Errorf("expected connected, got %s", app.Status)
	}
}

func TestApplicationService_SetStatus_Authorization(t *testing.T) {
	f := newLedgerFixture()
	seedJob(f.jobs, "j1", "owner_1", "2026-10-20", "23:00")
	seedApp(f.apps, "a1", "j1", "worker_1", domain.StatusApplied, refNow)
	ctx := context.Background()

	if _, err := f.svc.SetStatus(ctx, "a1", "worker_1", domain.StatusConnected); !errors.Is(err, domain.ErrNotJobOwner) {
		t.Errorf("applicant connecting: expected ErrNotJobOwner, got %v", err)
	}
	if _, err := f.svc.SetStatus(ctx, "a1", "owner_1", domain.StatusWithdrawn); !errors.Is(err, domain.ErrNotApplicant) {
		t.Errorf("owner withdrawing: expected ErrNotApplicant, got %v", err)
	}
	if f.apps.byID["a1"].Status != domain.StatusApplied {
		t.Error("status must be unchanged after rejected requests")
	}
}

func TestApplicationService_SetStatus_InvalidTransitions(t *testing.T) {
	f := newLedgerFixture()
	seedJob(f.jobs, "j1", "owner_1", "2026-10-20", "23:00")
	seedApp(f.apps, "connected", "j1", "worker_1", domain.StatusConnected, refNow)
	seedApp(f.apps, "withdrawn", "j1", "worker_2", domain.StatusWithdrawn, refNow)
	ctx := context.Background()

	if _, err := f.svc.SetStatus(ctx, "connected", "owner_1", domain.StatusDeclined); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("connected -> declined: expected ErrInvalidTransition, got %v", err)
	}
	if _, err := f.svc.SetStatus(ctx, "connected", "owner_1", domain.StatusConnected); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("connected -> connected: expected ErrInvalidTransition, got %v", err)
	}
	if _, err := f.svc.SetStatus(ctx, "withdrawn", "worker_2", domain.StatusWithdrawn); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("withdrawn is terminal: expected ErrInvalidTransition, got %v", err)
	}
	if _, err := f.svc.SetStatus(ctx, "connected", "owner_1", domain.StatusApplied); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("-> applied: expected conflict, got %v", err)
	}
	if _, err := f.svc.SetStatus(ctx, "connected", "owner_1", "pending"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown status: expected validation error, got %v", err)
	}
}

func TestApplicationService_SetStatus_LosesRace(t *testing.T) {
	f := newLedgerFixture()
	seedJob(f.jobs, "j1", "owner_1", "2026-10-20", "23:00")
	seedApp(f.apps, "a1", "j1", "worker_1", domain.StatusApplied, refNow)
	f.apps.casConflict = true

	_, err := f.svc.SetStatus(context.Background(), "a1", "owner_1", domain.StatusDeclined)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict when the stored status moved, got %v", err)
	}
}

func TestApplicationService_Withdraw(t *testing.T) {
	f := newLedgerFixture()
	seedJob(f.jobs, "j1", "owner_1", "2026-10-20", "23:00")
	seedApp(f.apps, "a1", "j1", "worker_1", domain.StatusDeclined, refNow)

	app, err := f.svc.Withdraw(context.Background(), "a1", "worker_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != domain.StatusWithdrawn {
		t.Errorf("expected withdrawn, got %s", app.Status)
	}
	if _, ok := f.apps.byID["a1"]; !ok {
		t.Error("withdrawn applications are kept for history")
	}
}

func TestApplicationService_Withdraw_AfterJobEnded(t *testing.T) {
	f := newLedgerFixture()
	seedJob(f.jobs, "j1", "owner_1", "2026-10-14", "20:00")
	seedApp(f.apps, "a1", "j1", "worker_1", domain.StatusApplied, refNow.Add(-2*time.Hour))

	_, err := f.svc.Withdraw(context.Background(), "a1", "worker_1")
	if !errors.Is(err, domain.ErrJobEnded) {
		t.Fatalf("expected ErrJobEnded, got %v", err)
	}
}

func TestApplicationService_Withdraw_FromSoftDeletedFutureJob(t *testing.T) {
	f := newLedgerFixture()
	j := seedJob(f.jobs, "j1", "owner_1", "2026-10-20", "23:00")
	at := refNow
	j.DeletedAt = &at
	seedApp(f.apps, "a1", "j1", "worker_1", domain.StatusApplied, refNow)

	if _, err := f.svc.Withdraw(context.Background(), "a1", "worker_1"); err != nil {
		t.Fatalf("soft delete does not block withdrawal, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Listing tests
// ---------------------------------------------------------------------------

func TestApplicationService_ListForApplicant(t *testing.T) {
	f := newLedgerFixture()
	seedJob(f.jobs, "j1", "owner_1", "2026-10-20", "23:00")
	seedJob(f.jobs, "j2", "owner_1", "2026-10-21", "23:00")
	seedApp(f.apps, "old", "j1", "worker_1", domain.StatusApplied, refNow.Add(-2*time.Hour))
	seedApp(f.apps, "new", "j2", "worker_1", domain.StatusConnected, refNow.Add(-time.Hour))
	seedApp(f.apps, "gone", "j1", "worker_1", domain.StatusWithdrawn, refNow.Add(-3*time.Hour))
	seedApp(f.apps, "purged", "j9", "worker_1", domain.StatusApplied, refNow.Add(-4*time.Hour))
	seedApp(f.apps, "other", "j1", "worker_2", domain.StatusApplied, refNow)

	views, err := f.svc.ListForApplicant(context.Background(), "worker_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ids []string
	for _, v := range views {
		ids = append(ids, v.Application.ID)
	}
	want := []string{"new", "old", "purged"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
	if views[0].Job == nil || views[0].Job.Job.ID != "j2" {
		t.Error("job data not joined")
	}
	if views[2].Job != nil {
		t.Error("purged job must yield a nil job")
	}

	history, err := f.svc.ListHistoryForApplicant(context.Background(), "worker_1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].Application.ID != "gone" {
		t.Errorf("history must only hold the withdrawn application, got %+v", history)
	}
}

func TestApplicationService_ListForJob_JoinsProfiles(t *testing.T) {
	f := newLedgerFixture()
	dob := time.Date(2000, 11, 1, 0, 0, 0, 0, time.UTC)
	w := f.users.byID["worker_1"]
	w.Phone = "+49 151 000"
	w.DateOfBirth = &dob
	seedJob(f.jobs, "j1", "owner_1", "2026-10-20", "23:00")
	seedApp(f.apps, "a1", "j1", "worker_1", domain.StatusApplied, refNow)
	seedApp(f.apps, "a2", "j1", "ghost", domain.StatusApplied, refNow.Add(-time.Minute))
	seedApp(f.apps, "a3", "j1", "worker_3", domain.StatusWithdrawn, refNow)

	entries, err := f.svc.ListForJob(context.Background(), "j1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 live entries, got %d", len(entries))
	}
	p := entries[0].Applicant
	if p.Name != "Wes" || p.Phone != "+49 151 000" {
		t.Errorf("profile not joined: %+v", p)
	}
	if p.Age == nil || *p.Age != 25 {
		t.Errorf("expected age 25 before the November birthday, got %v", p.Age)
	}
	if entries[1].Applicant.ID != "ghost" || entries[1].Applicant.Name != "" {
		t.Errorf("missing user must be reported by id only, got %+v", entries[1].Applicant)
	}
}

func TestApplicationService_GetApplication_Visibility(t *testing.T) {
	f := newLedgerFixture()
	seedJob(f.jobs, "j1", "owner_1", "2026-10-20", "23:00")
	seedApp(f.apps, "a1", "j1", "worker_1", domain.StatusApplied, refNow)
	ctx := context.Background()

	for _, who := range []string{"worker_1", "owner_1"} {
		v, err := f.svc.GetApplication(ctx, "a1", who)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", who, err)
		}
		if v.Job == nil || !v.Job.IsActive {
			t.Errorf("%s: expected joined active job", who)
		}
	}
	if _, err := f.svc.GetApplication(ctx, "a1", "stranger"); !errors.Is(err, domain.ErrAuthorization) {
		t.Errorf("stranger: expected authorization error, got %v", err)
	}
	if _, err := f.svc.GetApplication(ctx, "missing", "worker_1"); !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Errorf("missing: expected ErrApplicationNotFound, got %v", err)
	}
}
