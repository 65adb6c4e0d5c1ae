package family

import (
	"context"
	"errors"
)

var (
	ErrNoPet       = errors.New("no pet configured")
	ErrInvalidMode = errors.New("invalid user mode")
)

// ModeStore persists the user mode across restarts. Everything else in this
// package is static seed data.
type ModeStore interface {
	UserMode(ctx context.Context) (UserMode, error)
	SetUserMode(ctx context.Context, m UserMode) error
}

type Service struct {
	data  Family
	stats Stats
	modes ModeStore
}

func NewService(modes ModeStore) *Service {
	return &Service{
		data:  Seed(),
		stats: SeedStats(),
		modes: modes,
	}
}

// DefaultPet is the first configured pet. Features needing a denormalized
// pet snapshot (medications, chat, reports) resolve it here and must treat
// ErrNoPet as a first-class failure.
func (s *Service) DefaultPet(ctx context.Context) (Pet, error) {
	if len(s.data.Pets) == 0 {
		return Pet{}, ErrNoPet
	}
	return s.data.Pets[0], nil
}

func (s *Service) Pets(ctx context.Context) []Pet {
	out := make([]Pet, len(s.data.Pets))
	copy(out, s.data.Pets)
	return out
}

func (s *Service) Members(ctx context.Context) []Member {
	out := make([]Member, len(s.data.Members))
	copy(out, s.data.Members)
	return out
}

func (s *Service) Professionals(ctx context.Context) []Professional {
	out := make([]Professional, len(s.data.Professionals))
	copy(out, s.data.Professionals)
	return out
}

func (s *Service) Family(ctx context.Context) Family {
	return s.data
}

func (s *Service) Stats(ctx context.Context) Stats {
	return s.stats
}

func (s *Service) Mode(ctx context.Context) (UserMode, error) {
	m, err := s.modes.UserMode(ctx)
	if err != nil {
		return "", err
	}
	if !ValidMode(m) {
		return ModeFamily, nil
	}
	return m, nil
}

// ToggleMode flips family <-> professional and persists the result.
func (s *Service) ToggleMode(ctx context.Context) (UserMode, error) {
	cur, err := s.Mode(ctx)
	if err != nil {
		return "", err
	}
	next := ModeFamily
	if cur == ModeFamily {
		next = ModeProfessional
	}
	if err := s.modes.SetUserMode(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
