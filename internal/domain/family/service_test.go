package family

import (
	"context"
	"testing"
)

type testModeStore struct {
	mode UserMode
	sets int
}

func (s *testModeStore) UserMode(ctx context.Context) (UserMode, error) { return s.mode, nil }
func (s *testModeStore) SetUserMode(ctx context.Context, m UserMode) error {
	s.mode = m
	s.sets++
	return nil
}

func TestDefaultPet(t *testing.T) {
	svc := NewService(&testModeStore{mode: ModeFamily})

	pet, err := svc.DefaultPet(context.Background())
	if err != nil {
		t.Fatalf("DefaultPet: %v", err)
	}
	if pet.Name != "초코" || pet.Breed != "푸들" {
		t.Fatalf("unexpected seed pet %+v", pet)
	}
}

func TestSeedShape(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&testModeStore{mode: ModeFamily})

	if len(svc.Members(ctx)) != 3 {
		t.Fatalf("expected 3 members, got %d", len(svc.Members(ctx)))
	}
	if len(svc.Professionals(ctx)) != 2 {
		t.Fatalf("expected 2 professionals, got %d", len(svc.Professionals(ctx)))
	}
	if svc.Stats(ctx).TotalPets != 25 {
		t.Fatalf("unexpected stats %+v", svc.Stats(ctx))
	}
}

func TestMode_InvalidFallsBackToFamily(t *testing.T) {
	svc := NewService(&testModeStore{mode: "weird"})

	m, err := svc.Mode(context.Background())
	if err != nil {
		t.Fatalf("Mode: %v", err)
	}
	if m != ModeFamily {
		t.Fatalf("expected family fallback, got %q", m)
	}
}

func TestToggleMode_FlipsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := &testModeStore{mode: ModeFamily}
	svc := NewService(store)

	m, err := svc.ToggleMode(ctx)
	if err != nil {
		t.Fatalf("ToggleMode: %v", err)
	}
	if m != ModeProfessional || store.mode != ModeProfessional {
		t.Fatalf("expected professional, got %q (stored %q)", m, store.mode)
	}

	m, err = svc.ToggleMode(ctx)
	if err != nil {
		t.Fatalf("ToggleMode: %v", err)
	}
	if m != ModeFamily {
		t.Fatalf("expected flip back to family, got %q", m)
	}
	if store.sets != 2 {
		t.Fatalf("expected 2 persists, got %d", store.sets)
	}
}
