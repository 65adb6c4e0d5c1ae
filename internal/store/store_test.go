package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"barabom/internal/adapters/storage/memory"
	"barabom/internal/domain/family"
	"barabom/internal/domain/medications"
	"barabom/internal/domain/notifications"
	"barabom/internal/domain/timeline"
	"barabom/internal/platform/dates"
	"barabom/internal/platform/logger"
	"barabom/internal/ports/auth"
)

func fixedNow() time.Time {
	return time.Date(2026, 1, 22, 12, 0, 0, 0, time.UTC)
}

func newTestStore(t *testing.T, kvs *memory.KV) *Store {
	t.Helper()
	st := New(kvs, logger.NewNop())
	st.now = fixedNow
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return st
}

func TestLoad_SeedsFreshInstall(t *testing.T) {
	st := newTestStore(t, memory.NewKV(0))

	if len(st.timeline) != 4 {
		t.Fatalf("expected 4 seed records, got %d", len(st.timeline))
	}
	if len(st.medications) != 2 {
		t.Fatalf("expected 2 seed medications, got %d", len(st.medications))
	}
	if len(st.notifications) != 3 {
		t.Fatalf("expected 3 seed notifications, got %d", len(st.notifications))
	}
	if len(st.chat) == 0 {
		t.Fatal("expected seeded chat thread")
	}
	if st.mode != family.ModeFamily {
		t.Fatalf("expected family mode default, got %q", st.mode)
	}
	if st.settings != notifications.DefaultSettings() {
		t.Fatalf("expected default settings, got %+v", st.settings)
	}
	if st.session != nil {
		t.Fatal("fresh install must have no session")
	}

	// Seed dates track startup so the calendar is never empty.
	if st.timeline[0].Date != dates.Key(fixedNow()) {
		t.Fatalf("expected seed record dated today, got %q", st.timeline[0].Date)
	}
}

func TestWriteThrough_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	kvs := memory.NewKV(0)
	st := newTestStore(t, kvs)

	rec := timeline.Record{ID: "r1", Type: timeline.TypeWalk, Content: "산책", Date: "2026-01-22"}
	if err := (TimelineRepo{S: st}).Insert(ctx, rec); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := st.SetUserMode(ctx, family.ModeProfessional); err != nil {
		t.Fatalf("SetUserMode: %v", err)
	}
	set := notifications.DefaultSettings()
	set.Enabled = true
	if err := st.SetSettings(ctx, set); err != nil {
		t.Fatalf("SetSettings: %v", err)
	}
	if err := st.SaveSession(ctx, auth.User{ID: "u1", Email: "demo@repet.com", Name: "김철수", Provider: "email"}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	// Same blob store, fresh process.
	st2 := newTestStore(t, kvs)

	if st2.timeline[0].ID != "r1" {
		t.Fatalf("expected restored record first, got %+v", st2.timeline[0])
	}
	if st2.mode != family.ModeProfessional {
		t.Fatalf("expected restored mode, got %q", st2.mode)
	}
	if !st2.settings.Enabled {
		t.Fatal("expected restored settings")
	}
	u, ok, err := st2.Session(ctx)
	if err != nil || !ok || u.Email != "demo@repet.com" {
		t.Fatalf("expected restored session, got %+v ok=%v err=%v", u, ok, err)
	}
}

func TestClearSession(t *testing.T) {
	ctx := context.Background()
	kvs := memory.NewKV(0)
	st := newTestStore(t, kvs)

	if err := st.SaveSession(ctx, auth.User{ID: "u1", Email: "demo@repet.com"}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if err := st.ClearSession(ctx); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	// Clearing an already-clear session is fine.
	if err := st.ClearSession(ctx); err != nil {
		t.Fatalf("second ClearSession: %v", err)
	}

	st2 := newTestStore(t, kvs)
	if _, ok, _ := st2.Session(ctx); ok {
		t.Fatal("cleared session must not survive restart")
	}
}

// A quota failure sweeps entries older than 30 days and retries the write
// once. Pending medications and unread notifications survive the sweep
// regardless of age.
func TestSave_QuotaSweepAndRetry(t *testing.T) {
	ctx := context.Background()
	kvs := memory.NewKV(2000)
	st := New(kvs, logger.NewNop())
	st.now = fixedNow

	oldDate := dates.Key(fixedNow().AddDate(0, 0, -40))
	recentDate := dates.Key(fixedNow())

	st.timeline = []timeline.Record{
		{ID: "old", Type: timeline.TypeWalk, Content: strings.Repeat("x", 2500), Date: oldDate},
	}
	st.medications = []medications.Request{
		{ID: "old-pending", Status: medications.StatusPending, Date: oldDate},
		{ID: "old-done", Status: medications.StatusCompleted, Date: oldDate},
	}
	st.notifications = []notifications.Notification{
		{ID: "old-unread", Read: false, Timestamp: fixedNow().AddDate(0, 0, -40)},
		{ID: "old-read", Read: true, Timestamp: fixedNow().AddDate(0, 0, -40)},
	}

	rec := timeline.Record{ID: "new", Type: timeline.TypeMeal, Content: "밥", Date: recentDate}
	if err := (TimelineRepo{S: st}).Insert(ctx, rec); err != nil {
		t.Fatalf("Insert should succeed after the sweep, got %v", err)
	}

	if len(st.timeline) != 1 || st.timeline[0].ID != "new" {
		t.Fatalf("expected only the new record after sweep, got %+v", st.timeline)
	}
	if len(st.medications) != 1 || st.medications[0].ID != "old-pending" {
		t.Fatalf("pending medication must survive, got %+v", st.medications)
	}
	if len(st.notifications) != 1 || st.notifications[0].ID != "old-unread" {
		t.Fatalf("unread notification must survive, got %+v", st.notifications)
	}

	// The write made it to storage.
	if _, err := kvs.Get(ctx, keyTimeline); err != nil {
		t.Fatalf("timeline blob missing after retry: %v", err)
	}
}

func TestSave_QuotaFailureAfterSweepSurfaces(t *testing.T) {
	ctx := context.Background()
	kvs := memory.NewKV(100)
	st := New(kvs, logger.NewNop())
	st.now = fixedNow

	// Nothing sweepable: one recent oversized record.
	rec := timeline.Record{ID: "big", Type: timeline.TypeWalk, Content: strings.Repeat("x", 500), Date: dates.Key(fixedNow())}
	if err := (TimelineRepo{S: st}).Insert(ctx, rec); err == nil {
		t.Fatal("expected the post-sweep retry failure to surface")
	}
}

func TestResetAll(t *testing.T) {
	ctx := context.Background()
	kvs := memory.NewKV(0)
	st := newTestStore(t, kvs)

	if err := (TimelineRepo{S: st}).Insert(ctx, timeline.Record{ID: "extra", Type: timeline.TypeWalk, Date: "2026-01-22"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := st.SaveSession(ctx, auth.User{ID: "u1", Email: "demo@repet.com"}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	if err := st.ResetAll(ctx); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}

	if len(st.timeline) != 4 {
		t.Fatalf("expected seed timeline after reset, got %d", len(st.timeline))
	}
	if _, ok, _ := st.Session(ctx); ok {
		t.Fatal("reset must drop the session")
	}

	st2 := newTestStore(t, kvs)
	for _, r := range st2.timeline {
		if r.ID == "extra" {
			t.Fatal("reset must wipe persisted extras")
		}
	}
}

func TestRepos_NotFound(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, memory.NewKV(0))

	if err := (TimelineRepo{S: st}).Delete(ctx, "nope"); err != timeline.ErrNotFound {
		t.Fatalf("expected timeline.ErrNotFound, got %v", err)
	}
	if err := (MedicationRepo{S: st}).Update(ctx, medications.Request{ID: "nope"}); err != medications.ErrNotFound {
		t.Fatalf("expected medications.ErrNotFound, got %v", err)
	}
	if err := (NotificationRepo{S: st}).Delete(ctx, "nope"); err != notifications.ErrNotFound {
		t.Fatalf("expected notifications.ErrNotFound, got %v", err)
	}
}
