// Package store keeps all persisted app state in memory and writes it
// through to a keyed blob store. Every collection lives under its own key,
// so a failed write never corrupts the others.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"barabom/internal/domain/chat"
	"barabom/internal/domain/family"
	"barabom/internal/domain/medications"
	"barabom/internal/domain/notifications"
	"barabom/internal/domain/timeline"
	"barabom/internal/platform/dates"
	"barabom/internal/platform/logger"
	"barabom/internal/ports/auth"
	"barabom/internal/ports/kv"
)

const (
	keyTimeline      = "timeline"
	keyMedications   = "medications"
	keyNotifications = "notifications"
	keyChat          = "chat_messages"
	keyUserMode      = "user_mode"
	keySettings      = "notification_settings"
	keySession       = "session_user"
)

// retentionDays is how far back the sweep keeps dated entries.
const retentionDays = 30

type Store struct {
	kv  kv.Store
	log logger.Logger
	now func() time.Time

	mu            sync.RWMutex
	timeline      []timeline.Record
	medications   []medications.Request
	notifications []notifications.Notification
	chat          []chat.Message
	mode          family.UserMode
	settings      notifications.Settings
	session       *auth.User
}

func New(kvs kv.Store, log logger.Logger) *Store {
	return &Store{
		kv:  kvs,
		log: log,
		now: time.Now,
	}
}

// Load restores every collection from the blob store, falling back to seed
// data for keys that have never been written. A corrupt blob also falls
// back to the seed rather than failing startup.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx, keyTimeline, &s.timeline); err != nil {
		s.timeline = SeedTimeline(s.now())
	}
	if err := s.load(ctx, keyMedications, &s.medications); err != nil {
		s.medications = SeedMedications(s.now())
	}
	if err := s.load(ctx, keyNotifications, &s.notifications); err != nil {
		s.notifications = SeedNotifications(s.now())
	}
	if err := s.load(ctx, keyChat, &s.chat); err != nil {
		pet := family.Seed().Pets[0]
		s.chat = chat.Seed(s.now(), pet.Name)
	}

	var mode family.UserMode
	if err := s.load(ctx, keyUserMode, &mode); err != nil || !family.ValidMode(mode) {
		mode = family.ModeFamily
	}
	s.mode = mode

	if err := s.load(ctx, keySettings, &s.settings); err != nil {
		s.settings = notifications.DefaultSettings()
	}

	var u auth.User
	if err := s.load(ctx, keySession, &u); err == nil && u.Email != "" {
		s.session = &u
	}

	return nil
}

func (s *Store) load(ctx context.Context, key string, dst any) error {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.log.Warn("store: reading key failed", map[string]any{"key": key, "err": err.Error()})
		}
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warn("store: corrupt blob, falling back to seed", map[string]any{"key": key, "err": err.Error()})
		return err
	}
	return nil
}

// save writes one key. On a quota failure it sweeps old entries, persists
// the shrunk collections, then retries the original write exactly once.
// Callers hold s.mu.
func (s *Store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}

	err = s.kv.Set(ctx, key, data)
	if err == nil {
		return nil
	}
	if !errors.Is(err, kv.ErrQuotaExceeded) {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	s.log.Warn("store: quota exceeded, sweeping old entries", map[string]any{"key": key})
	s.sweepLocked()
	s.persistSweptLocked(ctx)

	// The sweep may have shrunk the payload itself, so marshal the live
	// collection rather than the caller's snapshot.
	if data, err = json.Marshal(s.valueFor(key, v)); err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("writing %s after sweep: %w", key, err)
	}
	return nil
}

// sweepLocked drops entries older than the retention window: dated timeline
// records, completed medications, and read notifications. Pending
// medications and unread notifications survive regardless of age.
func (s *Store) sweepLocked() {
	cutoffTime := s.now().AddDate(0, 0, -retentionDays)
	cutoff := dates.Key(cutoffTime)

	kept := s.timeline[:0]
	for _, r := range s.timeline {
		if r.Date >= cutoff {
			kept = append(kept, r)
		}
	}
	s.timeline = kept

	meds := s.medications[:0]
	for _, m := range s.medications {
		if m.Status == medications.StatusPending || m.Date >= cutoff {
			meds = append(meds, m)
		}
	}
	s.medications = meds

	notifs := s.notifications[:0]
	for _, n := range s.notifications {
		if !n.Read || !n.Timestamp.Before(cutoffTime) {
			notifs = append(notifs, n)
		}
	}
	s.notifications = notifs
}

// valueFor maps a swept key back to its live collection.
func (s *Store) valueFor(key string, fallback any) any {
	switch key {
	case keyTimeline:
		return s.timeline
	case keyMedications:
		return s.medications
	case keyNotifications:
		return s.notifications
	default:
		return fallback
	}
}

// persistSweptLocked writes the swept collections back, best effort.
func (s *Store) persistSweptLocked(ctx context.Context) {
	for key, v := range map[string]any{
		keyTimeline:      s.timeline,
		keyMedications:   s.medications,
		keyNotifications: s.notifications,
	} {
		data, err := json.Marshal(v)
		if err != nil {
			continue
		}
		if err := s.kv.Set(ctx, key, data); err != nil {
			s.log.Warn("store: persisting swept collection failed", map[string]any{"key": key, "err": err.Error()})
		}
	}
}

// ResetAll wipes the blob store and reloads the seeds.
func (s *Store) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Clear(ctx); err != nil {
		return fmt.Errorf("clearing storage: %w", err)
	}

	pet := family.Seed().Pets[0]
	s.timeline = SeedTimeline(s.now())
	s.medications = SeedMedications(s.now())
	s.notifications = SeedNotifications(s.now())
	s.chat = chat.Seed(s.now(), pet.Name)
	s.mode = family.ModeFamily
	s.settings = notifications.DefaultSettings()
	s.session = nil
	return nil
}

// UserMode implements family.ModeStore.
func (s *Store) UserMode(ctx context.Context) (family.UserMode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode, nil
}

func (s *Store) SetUserMode(ctx context.Context, m family.UserMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
	return s.save(ctx, keyUserMode, m)
}

// Settings implements notifications.SettingsStore.
func (s *Store) Settings(ctx context.Context) (notifications.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

func (s *Store) SetSettings(ctx context.Context, set notifications.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = set
	return s.save(ctx, keySettings, set)
}

// SaveSession implements the auth session store.
func (s *Store) SaveSession(ctx context.Context, u auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &u
	return s.save(ctx, keySession, u)
}

func (s *Store) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	if err := s.kv.Delete(ctx, keySession); err != nil && !errors.Is(err, kv.ErrNotFound) {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

func (s *Store) Session(ctx context.Context) (auth.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return auth.User{}, false, nil
	}
	return *s.session, true, nil
}
