package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"barabom/internal/platform/logger"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	feed []Notification
}

func (r *testRepo) Insert(ctx context.Context, n Notification) error {
	r.feed = append([]Notification{n}, r.feed...)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Notification, error) {
	out := make([]Notification, len(r.feed))
	copy(out, r.feed)
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, n Notification) error {
	for i := range r.feed {
		if r.feed[i].ID == n.ID {
			r.feed[i] = n
			return nil
		}
	}
	return ErrNotFound
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	for i := range r.feed {
		if r.feed[i].ID == id {
			r.feed = append(r.feed[:i], r.feed[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type testSettings struct {
	set Settings
}

func (s *testSettings) Settings(ctx context.Context) (Settings, error) { return s.set, nil }
func (s *testSettings) SetSettings(ctx context.Context, set Settings) error {
	s.set = set
	return nil
}

type testBadge struct {
	counts []int
}

func (b *testBadge) RefreshBadge(count int) { b.counts = append(b.counts, count) }

type testPusher struct {
	pushed []string
}

func (p *testPusher) Push(title, body, tag string) { p.pushed = append(p.pushed, body) }

func at(hhmm string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse("15:04", hhmm)
		return time.Date(2026, 1, 22, t.Hour(), t.Minute(), 0, 0, time.UTC)
	}
}

func allOn() Settings {
	return Settings{Enabled: true, Medication: true, Report: true, Activity: true, StartTime: "08:00", EndTime: "22:00"}
}

// -------------------------
// Tests
// -------------------------

func TestAdd_BadgeAndPush(t *testing.T) {
	ctx := context.Background()
	badge := &testBadge{}
	pusher := &testPusher{}
	svc := NewService(&testRepo{}, &testSettings{set: allOn()}, badge, pusher, logger.NewNop())
	svc.now = at("12:00")

	n, err := svc.Add(ctx, "초코가 약 먹을 시간이에요", TypeMedication)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if n.Read {
		t.Fatal("new notifications start unread")
	}
	if n.Time != "12:00" {
		t.Fatalf("expected display time, got %q", n.Time)
	}

	if len(badge.counts) != 1 || badge.counts[0] != 1 {
		t.Fatalf("expected badge refresh to 1, got %v", badge.counts)
	}
	if len(pusher.pushed) != 1 || pusher.pushed[0] != "초코가 약 먹을 시간이에요" {
		t.Fatalf("expected push delivery, got %v", pusher.pushed)
	}
}

func TestAdd_EmptyMessageRejected(t *testing.T) {
	svc := NewService(&testRepo{}, &testSettings{set: allOn()}, nil, nil, logger.NewNop())

	if _, err := svc.Add(context.Background(), "   ", TypeInfo); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAdd_DefaultType(t *testing.T) {
	svc := NewService(&testRepo{}, &testSettings{set: allOn()}, nil, nil, logger.NewNop())

	n, err := svc.Add(context.Background(), "메시지", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if n.Type != TypeInfo {
		t.Fatalf("expected info default, got %q", n.Type)
	}
}

func TestPush_SuppressedOutsideWindow(t *testing.T) {
	pusher := &testPusher{}
	svc := NewService(&testRepo{}, &testSettings{set: allOn()}, nil, pusher, logger.NewNop())
	svc.now = at("23:30")

	if _, err := svc.Add(context.Background(), "늦은 알림", TypeMedication); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(pusher.pushed) != 0 {
		t.Fatal("push outside the window must be dropped")
	}
}

func TestPush_SuppressedWithoutPermission(t *testing.T) {
	set := allOn()
	set.Enabled = false
	pusher := &testPusher{}
	svc := NewService(&testRepo{}, &testSettings{set: set}, nil, pusher, logger.NewNop())
	svc.now = at("12:00")

	if _, err := svc.Add(context.Background(), "알림", TypeMedication); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(pusher.pushed) != 0 {
		t.Fatal("push without permission must be dropped")
	}
}

func TestPush_CategoryGate(t *testing.T) {
	set := allOn()
	set.Medication = false
	pusher := &testPusher{}
	svc := NewService(&testRepo{}, &testSettings{set: set}, nil, pusher, logger.NewNop())
	svc.now = at("12:00")

	if _, err := svc.Add(context.Background(), "약 알림", TypeMedication); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(pusher.pushed) != 0 {
		t.Fatal("disabled category must not push")
	}

	// Success/info fall under the activity toggle, still on.
	if _, err := svc.Add(context.Background(), "활동 알림", TypeSuccess); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(pusher.pushed) != 1 {
		t.Fatal("activity-category push expected")
	}
}

func TestWithinWindow_InclusiveBounds(t *testing.T) {
	set := allOn()

	cases := []struct {
		clock string
		want  bool
	}{
		{"07:59", false},
		{"08:00", true},
		{"15:00", true},
		{"22:00", true},
		{"22:01", false},
	}
	for _, c := range cases {
		if got := WithinWindow(at(c.clock)(), set); got != c.want {
			t.Fatalf("WithinWindow(%s) = %v, want %v", c.clock, got, c.want)
		}
	}
}

func TestWithinWindow_MalformedAllowsEverything(t *testing.T) {
	set := allOn()
	set.StartTime = "bogus"

	if !WithinWindow(at("03:00")(), set) {
		t.Fatal("malformed window must allow delivery")
	}
}

func TestMarkReadAndUnreadCount(t *testing.T) {
	ctx := context.Background()
	badge := &testBadge{}
	svc := NewService(&testRepo{}, &testSettings{set: allOn()}, badge, nil, logger.NewNop())

	a, _ := svc.Add(ctx, "하나", TypeInfo)
	if _, err := svc.Add(ctx, "둘", TypeInfo); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := svc.MarkRead(ctx, a.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	count, _ := svc.UnreadCount(ctx)
	if count != 1 {
		t.Fatalf("expected 1 unread, got %d", count)
	}
	if badge.counts[len(badge.counts)-1] != 1 {
		t.Fatalf("expected badge 1, got %v", badge.counts)
	}

	if err := svc.MarkRead(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := svc.MarkAllRead(ctx); err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	count, _ = svc.UnreadCount(ctx)
	if count != 0 {
		t.Fatalf("expected 0 unread, got %d", count)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&testRepo{}, &testSettings{set: allOn()}, nil, nil, logger.NewNop())

	n, _ := svc.Add(ctx, "지울 알림", TypeInfo)
	if err := svc.Delete(ctx, n.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, n.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateSettings_ValidatesWindow(t *testing.T) {
	ctx := context.Background()
	store := &testSettings{set: DefaultSettings()}
	svc := NewService(&testRepo{}, store, nil, nil, logger.NewNop())

	bad := allOn()
	bad.EndTime = "25:00"
	if err := svc.UpdateSettings(ctx, bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	good := allOn()
	good.StartTime = "09:30"
	if err := svc.UpdateSettings(ctx, good); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if store.set.StartTime != "09:30" {
		t.Fatalf("settings not persisted, got %+v", store.set)
	}
}
