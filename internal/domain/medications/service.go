package medications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"barabom/internal/domain/family"
	"barabom/internal/domain/notifications"
	"barabom/internal/domain/timeline"
	"barabom/internal/platform/dates"
	"barabom/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("medication not found")
	ErrNoPet        = family.ErrNoPet
)

// Pets resolves the default pet whose name/photo get denormalized into each
// request.
type Pets interface {
	DefaultPet(ctx context.Context) (family.Pet, error)
}

// Ledger is the slice of the timeline service this workflow needs: creating
// the linked record and rewriting it on completion.
type Ledger interface {
	Add(ctx context.Context, in timeline.CreateInput) (timeline.Record, error)
	CompleteMedicationRecord(ctx context.Context, medicationID, medicationName, date, completionPhoto string) error
}

// Notifier appends to the notification feed.
type Notifier interface {
	Add(ctx context.Context, message string, typ notifications.Type) (notifications.Notification, error)
}

type Service struct {
	repo     Repository
	pets     Pets
	ledger   Ledger
	notifier Notifier
	log      logger.Logger
	now      func() time.Time
}

func NewService(repo Repository, pets Pets, ledger Ledger, notifier Notifier, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		pets:     pets,
		ledger:   ledger,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

type CreateInput struct {
	Time            string
	Timing          string
	Dosage          string
	MedicationName  string
	MedicationPhoto string
	Instructions    string
	SpecialNotes    string
	RequestedBy     string
	AssignedTo      string
	Date            string
	Priority        Priority
}

// Add creates a pending request, appends the linked timeline record, and
// notifies the assignee. Nothing is mutated when the default pet is missing.
func (s *Service) Add(ctx context.Context, in CreateInput) (Request, error) {
	if strings.TrimSpace(in.MedicationName) == "" {
		return Request{}, ErrInvalidInput
	}

	pet, err := s.pets.DefaultPet(ctx)
	if err != nil {
		return Request{}, ErrNoPet
	}

	now := s.now()

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = dates.Key(now)
	}
	requestedBy := strings.TrimSpace(in.RequestedBy)
	if requestedBy == "" {
		requestedBy = "나"
	}
	priority := in.Priority
	if priority == "" {
		priority = PriorityNormal
	}

	m := Request{
		ID:              uuid.NewString(),
		PetName:         pet.Name,
		PetPhoto:        pet.Photo,
		Time:            strings.TrimSpace(in.Time),
		Timing:          strings.TrimSpace(in.Timing),
		Dosage:          strings.TrimSpace(in.Dosage),
		MedicationName:  strings.TrimSpace(in.MedicationName),
		MedicationPhoto: strings.TrimSpace(in.MedicationPhoto),
		Instructions:    strings.TrimSpace(in.Instructions),
		SpecialNotes:    strings.TrimSpace(in.SpecialNotes),
		Status:          StatusPending,
		RequestedBy:     requestedBy,
		RequestedAt:     dates.Clock(now),
		AssignedTo:      strings.TrimSpace(in.AssignedTo),
		Date:            date,
		Priority:        priority,
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		s.log.Error("medications: insert failed", map[string]any{"err": err.Error()})
		return Request{}, err
	}

	var photos []string
	if m.MedicationPhoto != "" {
		photos = []string{m.MedicationPhoto}
	}
	content := strings.TrimSpace(fmt.Sprintf("%s %s 투약 의뢰 (%s)", m.Timing, m.MedicationName, m.Dosage))
	if _, err := s.ledger.Add(ctx, timeline.CreateInput{
		Type:         timeline.TypeMedication,
		Content:      content,
		Date:         m.Date,
		Photos:       photos,
		MedicationID: m.ID,
	}); err != nil {
		s.log.Warn("medications: linked timeline record failed", map[string]any{"err": err.Error(), "id": m.ID})
	}

	assignee := m.AssignedTo
	if assignee == "" {
		assignee = "전문가"
	}
	msg := fmt.Sprintf("투약 의뢰가 %s에 전송되었습니다", assignee)
	if _, err := s.notifier.Add(ctx, msg, notifications.TypeMedication); err != nil {
		s.log.Warn("medications: request notification failed", map[string]any{"err": err.Error(), "id": m.ID})
	}

	return m, nil
}

type CompletionInput struct {
	Photo       string
	Note        string
	CompletedBy string
}

// Complete marks the request completed and rewrites the linked timeline
// record. Completing an already-completed request succeeds again and
// refreshes the completion fields; the rewrite stays idempotent on content.
func (s *Service) Complete(ctx context.Context, id string, in CompletionInput) (Request, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Request{}, err
	}

	var m *Request
	for i := range all {
		if all[i].ID == id {
			m = &all[i]
			break
		}
	}
	if m == nil {
		return Request{}, ErrNotFound
	}

	completedBy := strings.TrimSpace(in.CompletedBy)
	if completedBy == "" {
		completedBy = "선생님"
	}

	m.Status = StatusCompleted
	m.CompletedAt = dates.Clock(s.now())
	m.CompletedBy = completedBy
	m.CompletionPhoto = strings.TrimSpace(in.Photo)
	m.CompletionNote = strings.TrimSpace(in.Note)

	if err := s.repo.Update(ctx, *m); err != nil {
		s.log.Error("medications: completion update failed", map[string]any{"err": err.Error(), "id": id})
		return Request{}, err
	}

	if err := s.ledger.CompleteMedicationRecord(ctx, m.ID, m.MedicationName, m.Date, m.CompletionPhoto); err != nil {
		s.log.Warn("medications: ledger rewrite failed", map[string]any{"err": err.Error(), "id": id})
	}

	msg := strings.TrimSpace(fmt.Sprintf("%s가 %s %s을 씩씩하게 잘 먹었어요! 💊", m.PetName, m.Timing, m.MedicationName))
	if _, err := s.notifier.Add(ctx, msg, notifications.TypeSuccess); err != nil {
		s.log.Warn("medications: completion notification failed", map[string]any{"err": err.Error(), "id": id})
	}

	return *m, nil
}

func (s *Service) Pending(ctx context.Context) ([]Request, error) {
	return s.filter(ctx, func(m Request) bool { return m.Status == StatusPending })
}

func (s *Service) Completed(ctx context.Context) ([]Request, error) {
	return s.filter(ctx, func(m Request) bool { return m.Status == StatusCompleted })
}

func (s *Service) ByDate(ctx context.Context, date string) ([]Request, error) {
	return s.filter(ctx, func(m Request) bool { return m.Date == date })
}

func (s *Service) List(ctx context.Context) ([]Request, error) {
	return s.repo.List(ctx)
}

func (s *Service) filter(ctx context.Context, keep func(Request) bool) ([]Request, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Request, 0)
	for _, m := range all {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out, nil
}
