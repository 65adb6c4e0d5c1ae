package notifications

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
	ErrNotFound     = errors.New("notification not found")
)

// BadgeRefresher is told the new unread count after any change that can
// move it. Optional collaborator, checked once at construction; the
// websocket hub implements it.
type BadgeRefresher interface {
	RefreshBadge(count int)
}

// Pusher delivers a platform push notification. Optional; delivery is
// attempted only inside the allowed window with permission granted.
type Pusher interface {
	Push(title, body, tag string)
}

type Service struct {
	repo     Repository
	settings SettingsStore
	badge    BadgeRefresher // may be nil
	pusher   Pusher         // may be nil
	log      logger.Logger
	now      func() time.Time
}

func NewService(repo Repository, settings SettingsStore, badge BadgeRefresher, pusher Pusher, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		settings: settings,
		badge:    badge,
		pusher:   pusher,
		log:      log,
		now:      time.Now,
	}
}

// Add appends a notification at the head of the feed and, when allowed,
// pushes it. Returns a copy of the created entry.
func (s *Service) Add(ctx context.Context, message string, typ Type) (Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Notification{}, ErrInvalidInput
	}
	if typ == "" {
		typ = TypeInfo
	}

	now := s.now()
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Type:      typ,
		Time:      dates.Clock(now),
		Timestamp: now,
		Read:      false,
	}

	if err := s.repo.Insert(ctx, n); err != nil {
		s.log.Error("notifications: insert failed", map[string]any{"err": err.Error()})
		return Notification{}, err
	}

	s.refreshBadge(ctx)
	s.tryPush(ctx, n)
	return n, nil
}

func (s *Service) List(ctx context.Context) ([]Notification, error) {
	return s.repo.List(ctx)
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, n := range all {
		if n.ID == id {
			n.Read = true
			if err := s.repo.Update(ctx, n); err != nil {
				return err
			}
			s.refreshBadge(ctx)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Service) MarkAllRead(ctx context.Context) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, n := range all {
		if n.Read {
			continue
		}
		n.Read = true
		if err := s.repo.Update(ctx, n); err != nil {
			return err
		}
	}
	s.refreshBadge(ctx)
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshBadge(ctx)
	return nil
}

func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range all {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *Service) Settings(ctx context.Context) (Settings, error) {
	return s.settings.Settings(ctx)
}

func (s *Service) UpdateSettings(ctx context.Context, set Settings) error {
	if _, ok := dates.MinutesOfDay(set.StartTime); !ok {
		return ErrInvalidInput
	}
	if _, ok := dates.MinutesOfDay(set.EndTime); !ok {
		return ErrInvalidInput
	}
	return s.settings.SetSettings(ctx, set)
}

func (s *Service) refreshBadge(ctx context.Context) {
	if s.badge == nil {
		return
	}
	count, err := s.UnreadCount(ctx)
	if err != nil {
		s.log.Warn("notifications: badge refresh failed", map[string]any{"err": err.Error()})
		return
	}
	s.badge.RefreshBadge(count)
}

// tryPush delivers via the platform pusher when permission is granted, the
// category is enabled, and the current time is inside the allowed window.
// Suppressed pushes are dropped, never queued or deferred.
func (s *Service) tryPush(ctx context.Context, n Notification) {
	if s.pusher == nil {
		return
	}
	set, err := s.settings.Settings(ctx)
	if err != nil {
		s.log.Warn("notifications: settings read failed", map[string]any{"err": err.Error()})
		return
	}
	if !set.Enabled || !categoryEnabled(set, n.Type) {
		return
	}
	if !WithinWindow(s.now(), set) {
		return
	}
	s.pusher.Push("바라봄 알림", n.Message, "barabom-"+string(n.Type))
}

func categoryEnabled(set Settings, typ Type) bool {
	switch typ {
	case TypeMedication:
		return set.Medication
	case TypeReport:
		return set.Report
	default:
		return set.Activity
	}
}

// WithinWindow reports whether t falls inside the daily allowed window,
// inclusive on both ends. A malformed window allows everything.
func WithinWindow(t time.Time, set Settings) bool {
	start, ok := dates.MinutesOfDay(set.StartTime)
	if !ok {
		return true
	}
	end, ok := dates.MinutesOfDay(set.EndTime)
	if !ok {
		return true
	}
	cur := t.Hour()*60 + t.Minute()
	return cur >= start && cur <= end
}
