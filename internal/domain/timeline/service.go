package timeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"barabom/internal/platform/dates"
	"barabom/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("record not found")
)

const maxRecent = 100

// Rebuilder receives the full ledger after every mutation. The calendar
// index implements it; the reference is optional and checked once at
// construction.
type Rebuilder interface {
	Rebuild(records []Record)
}

type Service struct {
	repo  Repository
	index Rebuilder // may be nil
	log   logger.Logger
	now   func() time.Time
}

func NewService(repo Repository, index Rebuilder, log logger.Logger) *Service {
	return &Service{
		repo:  repo,
		index: index,
		log:   log,
		now:   time.Now,
	}
}

type CreateInput struct {
	Type         RecordType
	Content      string
	Date         string
	Time         string
	Author       string
	AuthorKind   AuthorKind
	Photos       []string
	MedicationID string
}

// Add creates a record at the head of the ledger. Date, time, author and
// author kind default when omitted; the icon is always derived from the
// type. Returns a defensive copy.
func (s *Service) Add(ctx context.Context, in CreateInput) (Record, error) {
	if in.Type == "" {
		return Record{}, ErrInvalidInput
	}

	now := s.now()

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = dates.Key(now)
	}
	clock := strings.TrimSpace(in.Time)
	if clock == "" {
		clock = dates.Clock(now)
	}
	author := strings.TrimSpace(in.Author)
	if author == "" {
		author = "나"
	}
	kind := in.AuthorKind
	if kind == "" {
		kind = AuthorFamily
	}

	photos := make([]string, 0, len(in.Photos))
	photos = append(photos, in.Photos...)

	r := Record{
		ID:           uuid.NewString(),
		Type:         in.Type,
		Author:       author,
		AuthorKind:   kind,
		Content:      strings.TrimSpace(in.Content),
		Icon:         IconFor(in.Type),
		Photos:       photos,
		Date:         date,
		Time:         clock,
		MedicationID: in.MedicationID,
	}

	if err := s.repo.Insert(ctx, r); err != nil {
		s.log.Error("timeline: insert failed", map[string]any{"err": err.Error()})
		return Record{}, err
	}

	s.refreshIndex(ctx)
	return cloneRecord(r), nil
}

// RecordsByDate returns every record whose date equals the given
// calendar-day string.
func (s *Service) RecordsByDate(ctx context.Context, date string) ([]Record, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0)
	for _, r := range all {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

// Recent returns the first n records. n is clamped to [1,100]; the ledger
// is already most-recent-first so no sorting happens here.
func (s *Service) Recent(ctx context.Context, n int) ([]Record, error) {
	if n < 1 {
		n = 1
	}
	if n > maxRecent {
		n = maxRecent
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}

// List returns the full ledger snapshot.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("timeline: delete failed", map[string]any{"err": err.Error(), "id": id})
		}
		return err
	}
	s.refreshIndex(ctx)
	return nil
}

// CompleteMedicationRecord rewrites the ledger entry linked to a completed
// medication request. This is the one sanctioned in-place content mutation;
// nothing else may update records after creation.
//
// The linked record is found by medication id. Records persisted before the
// link field existed are matched the old way: type, date, and the
// medication name appearing in the content. No match is not an error.
func (s *Service) CompleteMedicationRecord(ctx context.Context, medicationID, medicationName, date, completionPhoto string) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	var match *Record
	for i := range all {
		if medicationID != "" && all[i].MedicationID == medicationID {
			match = &all[i]
			break
		}
	}
	if match == nil {
		for i := range all {
			r := &all[i]
			if r.Type == TypeMedication && r.Date == date && strings.Contains(r.Content, medicationName) {
				match = r
				break
			}
		}
	}
	if match == nil {
		s.log.Debug("timeline: no linked record for completed medication", map[string]any{
			"medication_id": medicationID,
		})
		return nil
	}

	match.Content = medicationName + " 투약 완료 ✓"
	if completionPhoto != "" {
		match.Photos = append(match.Photos, completionPhoto)
	}

	if err := s.repo.Update(ctx, *match); err != nil {
		s.log.Error("timeline: completion rewrite failed", map[string]any{"err": err.Error()})
		return err
	}

	s.refreshIndex(ctx)
	return nil
}

// RefreshIndex rebuilds the derived calendar index from the current ledger.
// Called once after load; every mutation path refreshes on its own.
func (s *Service) RefreshIndex(ctx context.Context) error {
	if s.index == nil {
		return nil
	}
	all, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	s.index.Rebuild(all)
	return nil
}

func (s *Service) refreshIndex(ctx context.Context) {
	if err := s.RefreshIndex(ctx); err != nil {
		s.log.Warn("timeline: index rebuild failed", map[string]any{"err": err.Error()})
	}
}
