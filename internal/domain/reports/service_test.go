package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"barabom/internal/domain/family"
	"barabom/internal/domain/timeline"
	"barabom/internal/platform/dates"
	"barabom/internal/platform/logger"
)

type testPets struct {
	pet family.Pet
	err error
}

func (p testPets) DefaultPet(ctx context.Context) (family.Pet, error) { return p.pet, p.err }

type testLedger struct {
	records []timeline.Record
}

func (l testLedger) List(ctx context.Context) ([]timeline.Record, error) {
	return l.records, nil
}

func fixedNow() time.Time {
	return time.Date(2026, 1, 22, 12, 0, 0, 0, time.UTC)
}

func newTestService(pets testPets, ledger testLedger) *Service {
	svc := NewService(pets, ledger, logger.NewNop())
	svc.now = fixedNow
	svc.randn = func(n int) int { return 0 }
	return svc
}

func walkOn(daysAgo int) timeline.Record {
	return timeline.Record{Type: timeline.TypeWalk, Date: dates.Key(fixedNow().AddDate(0, 0, -daysAgo))}
}

func TestPercentile(t *testing.T) {
	if got := Percentile(5.0, 5.0, 0.8); got != 50 {
		t.Fatalf("value at mean must be the 50th percentile, got %d", got)
	}
	if got := Percentile(100, 5, 0.8); got != 99 {
		t.Fatalf("expected clamp to 99, got %d", got)
	}
	if got := Percentile(-100, 5, 0.8); got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}
	lo := Percentile(4.0, 5.0, 0.8)
	hi := Percentile(6.0, 5.0, 0.8)
	if !(lo < 50 && hi > 50) {
		t.Fatalf("percentile must grow with the value, got %d and %d", lo, hi)
	}
}

func TestParseWeight(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"5.2kg", 5.2},
		{" 7kg ", 7},
		{"3.5", 3.5},
		{"", 5.2},
		{"많이", 5.2},
	}
	for _, c := range cases {
		if got := parseWeight(c.in); got != c.want {
			t.Fatalf("parseWeight(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestGenerate_UsesBreedBaseline(t *testing.T) {
	ctx := context.Background()
	pets := testPets{pet: family.Pet{Name: "초코", Breed: "푸들", Age: "3살", Weight: "5.2kg"}}
	svc := newTestService(pets, testLedger{})

	r, err := svc.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if r.PetName != "초코" || r.Breed != "푸들" {
		t.Fatalf("unexpected header %+v", r)
	}
	if r.Weight.Average != 4.8 {
		t.Fatalf("expected 푸들 baseline 4.8, got %v", r.Weight.Average)
	}
	if r.Activity.Average != 15 {
		t.Fatalf("expected 푸들 walk baseline 15, got %v", r.Activity.Average)
	}
	if r.TotalPeers != 1000 {
		t.Fatalf("expected cohort floor with zeroed rand, got %d", r.TotalPeers)
	}
	if r.Health.Score != 85 {
		t.Fatalf("expected score floor with zeroed rand, got %d", r.Health.Score)
	}
	if r.Weight.Insight == "" || r.Activity.Insight == "" {
		t.Fatal("insights must not be empty")
	}
	if len(r.Recommendations) == 0 {
		t.Fatal("the checkup recommendation is always present")
	}
}

func TestGenerate_UnknownBreedFallsBack(t *testing.T) {
	pets := testPets{pet: family.Pet{Name: "초코", Breed: "보더콜리", Weight: "4.8kg"}}
	svc := newTestService(pets, testLedger{})

	r, err := svc.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if r.Weight.Average != 4.8 {
		t.Fatalf("expected 푸들 fallback baseline, got %v", r.Weight.Average)
	}
}

func TestGenerate_CountsRecentWalksOnly(t *testing.T) {
	pets := testPets{pet: family.Pet{Name: "초코", Breed: "푸들", Weight: "4.8kg"}}
	ledger := testLedger{records: []timeline.Record{
		walkOn(0),
		walkOn(5),
		walkOn(29),
		walkOn(31), // outside the 30-day window
		{Type: timeline.TypePlay, Date: dates.Key(fixedNow())},
		{Type: timeline.TypeWalk, Date: "not-a-date"},
	}}
	svc := newTestService(pets, ledger)

	r, err := svc.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if r.Activity.Value != 3 {
		t.Fatalf("expected 3 recent walks, got %v", r.Activity.Value)
	}
}

func TestGenerate_NoPet(t *testing.T) {
	svc := newTestService(testPets{err: family.ErrNoPet}, testLedger{})

	if _, err := svc.Generate(context.Background()); !errors.Is(err, ErrNoPet) {
		t.Fatalf("expected ErrNoPet, got %v", err)
	}
}

func TestWeightStatus(t *testing.T) {
	cases := []struct {
		current float64
		want    string
	}{
		{6.0, "과체중 주의"},
		{5.2, "평균보다 약간 높음"},
		{4.8, "정상 범위"},
		{4.4, "평균보다 약간 낮음"},
		{3.9, "저체중 주의"},
	}
	for _, c := range cases {
		if got := weightStatus(c.current, 4.8); got.Label != c.want {
			t.Fatalf("weightStatus(%v) = %q, want %q", c.current, got.Label, c.want)
		}
	}
}

func TestActivityStatus(t *testing.T) {
	cases := []struct {
		pct  int
		want string
	}{
		{90, "매우 활발"},
		{60, "활발"},
		{40, "보통"},
		{20, "부족"},
		{5, "매우 부족"},
	}
	for _, c := range cases {
		if got := activityStatus(c.pct); got.Label != c.want {
			t.Fatalf("activityStatus(%d) = %q, want %q", c.pct, got.Label, c.want)
		}
	}
}

func TestRecommendations(t *testing.T) {
	// Overweight and inactive: diet food, indoor toys, joint supplement,
	// plus the standing checkup suggestion.
	recs := recommendations(1.2, 30)
	if len(recs) != 4 {
		t.Fatalf("expected 4 recommendations, got %d", len(recs))
	}

	// Healthy and active: only the checkup remains.
	recs = recommendations(0, 80)
	if len(recs) != 1 || recs[0].Title != "정기 건강검진" {
		t.Fatalf("expected checkup only, got %+v", recs)
	}
}
