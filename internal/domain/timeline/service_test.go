package timeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"barabom/internal/platform/logger"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	records []Record
}

func (r *testRepo) Insert(ctx context.Context, rec Record) error {
	r.records = append([]Record{rec}, r.records...)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Record, error) {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, rec Record) error {
	for i := range r.records {
		if r.records[i].ID == rec.ID {
			r.records[i] = rec
			return nil
		}
	}
	return ErrNotFound
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type testIndex struct {
	rebuilds int
	last     []Record
}

func (ix *testIndex) Rebuild(records []Record) {
	ix.rebuilds++
	ix.last = records
}

func newTestService(repo *testRepo, ix *testIndex) *Service {
	var reb Rebuilder
	if ix != nil {
		reb = ix
	}
	svc := NewService(repo, reb, logger.NewNop())
	svc.now = func() time.Time {
		return time.Date(2026, 1, 22, 14, 30, 0, 0, time.UTC)
	}
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestAdd_DefaultsAndIcon(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{}
	ix := &testIndex{}
	svc := newTestService(repo, ix)

	rec, err := svc.Add(ctx, CreateInput{Type: TypeWalk, Content: "  한강공원 산책  "})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if rec.Date != "2026-01-22" {
		t.Fatalf("expected today default, got %q", rec.Date)
	}
	if rec.Time != "14:30" {
		t.Fatalf("expected clock default, got %q", rec.Time)
	}
	if rec.Author != "나" || rec.AuthorKind != AuthorFamily {
		t.Fatalf("expected author defaults, got %q/%q", rec.Author, rec.AuthorKind)
	}
	if rec.Icon != "🚶" {
		t.Fatalf("expected walk icon, got %q", rec.Icon)
	}
	if rec.Content != "한강공원 산책" {
		t.Fatalf("expected trimmed content, got %q", rec.Content)
	}
	if rec.ID == "" {
		t.Fatal("expected generated id")
	}
	if ix.rebuilds != 1 {
		t.Fatalf("expected 1 index rebuild, got %d", ix.rebuilds)
	}
}

func TestAdd_UnknownTypeGetsFallbackIcon(t *testing.T) {
	svc := newTestService(&testRepo{}, &testIndex{})

	rec, err := svc.Add(context.Background(), CreateInput{Type: "mystery", Content: "???"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if rec.Icon != "📝" {
		t.Fatalf("expected fallback icon, got %q", rec.Icon)
	}
}

func TestAdd_MissingTypeRejected(t *testing.T) {
	svc := newTestService(&testRepo{}, &testIndex{})

	if _, err := svc.Add(context.Background(), CreateInput{Content: "no type"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecent_ClampsCount(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{}
	svc := newTestService(repo, nil)

	for i := 0; i < 5; i++ {
		if _, err := svc.Add(ctx, CreateInput{Type: TypeMeal, Content: "밥"}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, err := svc.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected clamp to 1, got %d", len(got))
	}

	got, err = svc.Recent(ctx, 1000)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected all 5, got %d", len(got))
	}
}

func TestRecordsByDate_FiltersExactDay(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&testRepo{}, nil)

	if _, err := svc.Add(ctx, CreateInput{Type: TypeWalk, Content: "a", Date: "2026-01-20"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Add(ctx, CreateInput{Type: TypeWalk, Content: "b", Date: "2026-01-21"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := svc.RecordsByDate(ctx, "2026-01-20")
	if err != nil {
		t.Fatalf("RecordsByDate: %v", err)
	}
	if len(got) != 1 || got[0].Content != "a" {
		t.Fatalf("expected only the 01-20 record, got %+v", got)
	}
}

func TestDelete_RefreshesIndex(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{}
	ix := &testIndex{}
	svc := newTestService(repo, ix)

	rec, err := svc.Add(ctx, CreateInput{Type: TypePlay, Content: "공놀이"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := svc.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(ix.last) != 0 {
		t.Fatalf("expected empty ledger after delete, index saw %d records", len(ix.last))
	}

	if err := svc.Delete(ctx, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCompleteMedicationRecord_MatchesByLink(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{}
	svc := newTestService(repo, nil)

	linked, err := svc.Add(ctx, CreateInput{
		Type:         TypeMedication,
		Content:      "점심 뒤 알러지약 투약 의뢰 (1알)",
		Date:         "2026-01-22",
		MedicationID: "med-1",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	// Decoy with the same content but no link.
	if _, err := svc.Add(ctx, CreateInput{
		Type:    TypeMedication,
		Content: "점심 뒤 알러지약 투약 의뢰 (1알)",
		Date:    "2026-01-22",
	}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := svc.CompleteMedicationRecord(ctx, "med-1", "알러지약", "2026-01-22", "photo.jpg"); err != nil {
		t.Fatalf("CompleteMedicationRecord: %v", err)
	}

	all, _ := svc.List(ctx)
	for _, r := range all {
		if r.ID == linked.ID {
			if r.Content != "알러지약 투약 완료 ✓" {
				t.Fatalf("expected rewritten content, got %q", r.Content)
			}
			if len(r.Photos) != 1 || r.Photos[0] != "photo.jpg" {
				t.Fatalf("expected completion photo appended, got %v", r.Photos)
			}
		} else if r.Content == "알러지약 투약 완료 ✓" {
			t.Fatal("decoy record must not be rewritten when a linked record exists")
		}
	}
}

func TestCompleteMedicationRecord_LegacyFallback(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&testRepo{}, nil)

	// Old record written before the link field existed.
	old, err := svc.Add(ctx, CreateInput{
		Type:    TypeMedication,
		Content: "아침 영양제 투약 의뢰 (2.5ml)",
		Date:    "2026-01-21",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := svc.CompleteMedicationRecord(ctx, "med-9", "영양제", "2026-01-21", ""); err != nil {
		t.Fatalf("CompleteMedicationRecord: %v", err)
	}

	all, _ := svc.List(ctx)
	for _, r := range all {
		if r.ID == old.ID && r.Content != "영양제 투약 완료 ✓" {
			t.Fatalf("expected legacy match rewrite, got %q", r.Content)
		}
	}
}

func TestCompleteMedicationRecord_NoMatchIsNotAnError(t *testing.T) {
	svc := newTestService(&testRepo{}, nil)

	if err := svc.CompleteMedicationRecord(context.Background(), "nope", "없는약", "2026-01-01", ""); err != nil {
		t.Fatalf("expected nil on no match, got %v", err)
	}
}
